package formatters

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleAnalysis() types.ResumeAnalysis {
	return types.ResumeAnalysis{
		OverallScore:     7,
		ATSScore:         5,
		ReadabilityScore: 8,
		KeywordDensity:   33,
		Strengths:        []string{"Clear structure"},
		Improvements:     []string{"Add more quantifiable achievements and metrics"},
		MissingSkills:    []string{"docker"},
		KeywordMatching: types.KeywordMatching{
			Matched:     []string{"python", "react"},
			Missing:     []string{"docker", "aws"},
			Suggestions: []string{"Include specific technologies and tools you've used"},
		},
		Sections: map[string]types.SectionAnalysis{
			"contact": {Present: true, Score: 10, Feedback: "Contact information is complete"},
			"summary": {Present: false, Score: 0, Feedback: "Missing professional summary", Improvements: []string{"Add a professional summary at the top"}},
		},
		IndustryFit: types.IndustryFit{
			DetectedIndustry: "software",
			Confidence:       44,
			Suggestions:      []string{"Add more software-specific keywords"},
		},
		CompetitorComparison: types.CompetitorComparison{
			Percentile:      70,
			SimilarProfiles: 750,
			Benchmark:       "Good",
		},
		Summary: "Your resume scores 7/10 overall.",
		Recommendations: []types.Recommendation{
			{Type: "important", Title: "Improve ATS Compatibility", Description: "Add more keywords", Impact: "high", Category: "keywords"},
		},
	}
}

func TestFormatterRegistryJSON(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{`"overallScore": 7`, `"atsScore": 5`, `"detectedIndustry": "software"`, `"benchmark": "Good"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected JSON output to contain %q", want)
		}
	}
}

func TestFormatterRegistryText(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"=== RESUME ANALYSIS ===",
		"Overall Score:     7/10",
		"Detected Industry: software",
		"Matched: python, react",
		"[important] Improve ATS Compatibility",
		"Similar Profiles: 750",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected text output to contain %q", want)
		}
	}

	// Sections render in document order with contact before summary
	contactIdx := strings.Index(output, "contact (present)")
	summaryIdx := strings.Index(output, "summary (missing)")
	if contactIdx == -1 || summaryIdx == -1 || contactIdx > summaryIdx {
		t.Errorf("expected contact section before summary section, got output:\n%s", output)
	}
}

func TestFormatterRegistryMarkdown(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleAnalysis(), "markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Resume Analysis",
		"**Overall Score:** 7/10",
		"## Industry Fit",
		"### Contact",
		"**Percentile:** 70",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected markdown output to contain %q", want)
		}
	}
}

func TestFormatterRegistryUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleAnalysis(), "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestFormatterRegistryJSONFallbackForUnknownType(t *testing.T) {
	output, err := GlobalRegistry.Format(map[string]string{"status": "ok"}, "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, `"status": "ok"`) {
		t.Errorf("expected fallback JSON output, got %q", output)
	}
}
