package analyzer

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestCalculateScoresEmptyInput(t *testing.T) {
	sections := analyzeSections("")
	scores := calculateScores("", sections, "general")

	if scores.Overall != 0 {
		t.Errorf("Expected overall 0, got %d", scores.Overall)
	}
	if scores.ATS != 0 {
		t.Errorf("Expected ATS 0, got %d", scores.ATS)
	}
	// No words at all reads as maximally readable.
	if scores.Readability != 10 {
		t.Errorf("Expected readability 10, got %d", scores.Readability)
	}
	// "general" has no vocabulary, so density is defined as zero.
	if scores.Density != 0 {
		t.Errorf("Expected density 0, got %d", scores.Density)
	}
}

func TestCalculateScoresATS(t *testing.T) {
	allKeywords := strings.Join(atsKeywords, ". ")
	scores := calculateScores(allKeywords, analyzeSections(allKeywords), "general")

	if scores.ATS != 10 {
		t.Errorf("Expected ATS 10 with every keyword present, got %d", scores.ATS)
	}

	half := strings.Join(atsKeywords[:8], ". ")
	scores = calculateScores(half, analyzeSections(half), "general")
	if scores.ATS != 5 {
		t.Errorf("Expected ATS 5 with half the keywords, got %d", scores.ATS)
	}
}

func TestCalculateScoresReadabilityFloor(t *testing.T) {
	// One long run-on sentence: 60 words, no terminator.
	text := strings.TrimSpace(strings.Repeat("word ", 60))
	scores := calculateScores(text, analyzeSections(text), "general")

	if scores.Readability != 1 {
		t.Errorf("Expected readability floored at 1, got %d", scores.Readability)
	}
}

func TestCalculateScoresReadabilityShortSentences(t *testing.T) {
	text := "I build tools. I ship fast. I test well."
	scores := calculateScores(text, analyzeSections(text), "general")

	// 9 words over 3 sentences (plus the trailing empty split) keeps the
	// average low, so the score stays near the ceiling.
	if scores.Readability < 9 {
		t.Errorf("Expected readability >= 9 for short sentences, got %d", scores.Readability)
	}
}

func TestCalculateScoresDensity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		industry string
		expected int
	}{
		{
			name:     "two of nine software keywords",
			text:     "python and git daily",
			industry: "software",
			expected: 22,
		},
		{
			name:     "full marketing coverage",
			text:     "seo analytics campaign social media content brand conversion",
			industry: "marketing",
			expected: 100,
		},
		{
			name:     "unknown industry",
			text:     "python and git daily",
			industry: "underwater basket weaving",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := calculateScores(tt.text, analyzeSections(tt.text), tt.industry)
			if scores.Density != tt.expected {
				t.Errorf("Expected density %d, got %d", tt.expected, scores.Density)
			}
		})
	}
}

func TestCalculateScoresOverallIsMeanOfSections(t *testing.T) {
	sections := map[string]types.SectionAnalysis{
		"contact":    {Score: 10},
		"summary":    {Score: 10},
		"experience": {Score: 10},
		"education":  {Score: 4},
		"skills":     {Score: 4},
		"projects":   {Score: 4},
	}
	scores := calculateScores("", sections, "general")

	if scores.Overall != 7 {
		t.Errorf("Expected overall 7, got %d", scores.Overall)
	}
}
