package cli

import (
	"fmt"

	"resumelens/internal/analyzer"

	"github.com/spf13/cobra"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List the industries the analyzer can detect",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported industries:")
		for _, industry := range analyzer.Industries() {
			fmt.Printf("  %s\n", industry)
		}
	},
}
