package cli

import (
	"context"
	"fmt"

	"resumelens/internal/analyzer"
	"resumelens/internal/common"
	"resumelens/internal/types"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume for scoring, keywords, and ATS compatibility",
	Long: `Analyze a resume to evaluate its structure, keyword coverage, readability,
and ATS compatibility. Plain text, Markdown, PDF, and DOCX resumes are
supported.

The analysis includes:
- Overall, ATS, readability, and keyword density scores
- Section-by-section coverage with concrete improvements
- Industry detection with confidence and keyword suggestions
- Keyword matching against an optional job description
- Prioritized recommendations and a peer benchmark`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var (
	analyzeConfig   common.CommandConfig
	analyzeJobFile  string
	analyzeIndustry string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Job description file to match keywords against")
	analyzeCmd.Flags().StringVar(&analyzeIndustry, "industry", "", "Target industry (overrides detection)")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})

	_ = analyzeCmd.RegisterFlagCompletionFunc("industry", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return analyzer.Industries(), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	engine := analyzer.New()

	// The resume file is the positional argument, the job description is an
	// optional flag. Both go through the same extraction pipeline.
	paths := args
	if analyzeJobFile != "" {
		paths = append(paths, analyzeJobFile)
	}

	createInput := func(contents []string) (types.AnalyzeResumeInput, error) {
		if len(contents) == 0 {
			return types.AnalyzeResumeInput{}, fmt.Errorf("expected at least 1 file path")
		}
		input := types.AnalyzeResumeInput{
			ResumeText:     contents[0],
			TargetIndustry: analyzeIndustry,
		}
		if len(contents) > 1 {
			input.JobDescription = contents[1]
		}
		return input, nil
	}

	logDetails := func(input types.AnalyzeResumeInput, cfg common.CommandConfig) {
		logger.Info("Starting resume analysis",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobDescription),
			"target_industry", input.TargetIndustry,
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeResumeInput) (types.ResumeAnalysis, error) {
		return engine.Analyze(input), nil
	}

	err := common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		paths,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("Resume analysis completed successfully")
	return nil
}
