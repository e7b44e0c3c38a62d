package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ResumeAnalysis", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "ResumeAnalysis", &AnalysisMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ResumeAnalysis:
		return "ResumeAnalysis"
	default:
		return "any"
	}
}

// sectionDisplayOrder fixes the order sections are rendered in
var sectionDisplayOrder = []string{"contact", "summary", "experience", "education", "skills", "projects"}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ResumeAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score:     %d/10\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("ATS Score:         %d/10\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("Readability:       %d/10\n", result.ReadabilityScore))
	output.WriteString(fmt.Sprintf("Keyword Density:   %d%%\n\n", result.KeywordDensity))

	output.WriteString("Summary:\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("=== SECTIONS ===\n")
	for _, name := range sectionDisplayOrder {
		section, ok := result.Sections[name]
		if !ok {
			continue
		}
		status := "present"
		if !section.Present {
			status = "missing"
		}
		output.WriteString(fmt.Sprintf("%s (%s): %.1f/10\n", name, status, section.Score))
		output.WriteString(fmt.Sprintf("  %s\n", section.Feedback))
		for _, improvement := range section.Improvements {
			output.WriteString(fmt.Sprintf("  - %s\n", improvement))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== INDUSTRY FIT ===\n")
	output.WriteString(fmt.Sprintf("Detected Industry: %s\n", result.IndustryFit.DetectedIndustry))
	output.WriteString(fmt.Sprintf("Confidence: %d%%\n", result.IndustryFit.Confidence))
	for _, suggestion := range result.IndustryFit.Suggestions {
		output.WriteString(fmt.Sprintf("- %s\n", suggestion))
	}
	output.WriteString("\n")

	output.WriteString("=== KEYWORDS ===\n")
	if len(result.KeywordMatching.Matched) > 0 {
		output.WriteString(fmt.Sprintf("Matched: %s\n", strings.Join(result.KeywordMatching.Matched, ", ")))
	}
	if len(result.KeywordMatching.Missing) > 0 {
		output.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(result.KeywordMatching.Missing, ", ")))
	}
	if len(result.KeywordMatching.Suggestions) > 0 {
		output.WriteString("Suggestions:\n")
		for _, suggestion := range result.KeywordMatching.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
	}
	output.WriteString("\n")

	output.WriteString("=== STRENGTHS ===\n")
	for _, strength := range result.Strengths {
		output.WriteString(fmt.Sprintf("- %s\n", strength))
	}
	output.WriteString("\n")

	output.WriteString("=== IMPROVEMENTS ===\n")
	for _, improvement := range result.Improvements {
		output.WriteString(fmt.Sprintf("- %s\n", improvement))
	}
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, rec.Type, rec.Title))
			output.WriteString(fmt.Sprintf("   %s\n", rec.Description))
			output.WriteString(fmt.Sprintf("   Impact: %s, Category: %s\n", rec.Impact, rec.Category))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== BENCHMARK ===\n")
	output.WriteString(fmt.Sprintf("Percentile: %d\n", result.CompetitorComparison.Percentile))
	output.WriteString(fmt.Sprintf("Benchmark: %s\n", result.CompetitorComparison.Benchmark))
	output.WriteString(fmt.Sprintf("Similar Profiles: %d\n", result.CompetitorComparison.SimilarProfiles))

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "ResumeAnalysis"
}

// AnalysisMarkdownFormatter handles markdown formatting for analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ResumeAnalysis)
	if !ok {
		return "", fmt.Errorf("expected ResumeAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %d/10\n", result.OverallScore))
	output.WriteString(fmt.Sprintf("**ATS Score:** %d/10\n", result.ATSScore))
	output.WriteString(fmt.Sprintf("**Readability:** %d/10\n", result.ReadabilityScore))
	output.WriteString(fmt.Sprintf("**Keyword Density:** %d%%\n\n", result.KeywordDensity))

	output.WriteString("## Summary\n\n")
	output.WriteString(result.Summary)
	output.WriteString("\n\n")

	output.WriteString("## Sections\n\n")
	for _, name := range sectionDisplayOrder {
		section, ok := result.Sections[name]
		if !ok {
			continue
		}
		output.WriteString(fmt.Sprintf("### %s\n\n", capitalizeTitle(name)))
		output.WriteString(fmt.Sprintf("**Score:** %.1f/10\n\n", section.Score))
		output.WriteString(section.Feedback)
		output.WriteString("\n\n")
		if len(section.Improvements) > 0 {
			for _, improvement := range section.Improvements {
				output.WriteString(fmt.Sprintf("- %s\n", improvement))
			}
			output.WriteString("\n")
		}
	}

	output.WriteString("## Industry Fit\n\n")
	output.WriteString(fmt.Sprintf("**Detected Industry:** %s\n", result.IndustryFit.DetectedIndustry))
	output.WriteString(fmt.Sprintf("**Confidence:** %d%%\n\n", result.IndustryFit.Confidence))
	if len(result.IndustryFit.Suggestions) > 0 {
		for _, suggestion := range result.IndustryFit.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Keywords\n\n")
	if len(result.KeywordMatching.Matched) > 0 {
		output.WriteString(fmt.Sprintf("**Matched:** %s\n\n", strings.Join(result.KeywordMatching.Matched, ", ")))
	}
	if len(result.KeywordMatching.Missing) > 0 {
		output.WriteString(fmt.Sprintf("**Missing:** %s\n\n", strings.Join(result.KeywordMatching.Missing, ", ")))
	}
	if len(result.KeywordMatching.Suggestions) > 0 {
		output.WriteString("### Suggestions\n\n")
		for _, suggestion := range result.KeywordMatching.Suggestions {
			output.WriteString(fmt.Sprintf("- %s\n", suggestion))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Strengths\n\n")
	for _, strength := range result.Strengths {
		output.WriteString(fmt.Sprintf("- %s\n", strength))
	}
	output.WriteString("\n")

	output.WriteString("## Improvements\n\n")
	for _, improvement := range result.Improvements {
		output.WriteString(fmt.Sprintf("- %s\n", improvement))
	}
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, rec := range result.Recommendations {
			output.WriteString(fmt.Sprintf("### %d. %s\n\n", i+1, rec.Title))
			output.WriteString(rec.Description)
			output.WriteString("\n\n")
			output.WriteString(fmt.Sprintf("**Type:** %s, **Impact:** %s, **Category:** %s\n\n", rec.Type, rec.Impact, rec.Category))
		}
	}

	output.WriteString("## Benchmark\n\n")
	output.WriteString(fmt.Sprintf("**Percentile:** %d\n", result.CompetitorComparison.Percentile))
	output.WriteString(fmt.Sprintf("**Benchmark:** %s\n", result.CompetitorComparison.Benchmark))
	output.WriteString(fmt.Sprintf("**Similar Profiles:** %d\n", result.CompetitorComparison.SimilarProfiles))

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "ResumeAnalysis"
}

func capitalizeTitle(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
