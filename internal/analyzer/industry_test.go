package analyzer

import "testing"

func TestDetectIndustry(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "software stack",
			text:     "python javascript react docker",
			expected: "software",
		},
		{
			name:     "marketing vocabulary",
			text:     "ran seo campaigns, analytics dashboards and brand work",
			expected: "marketing",
		},
		{
			name:     "finance vocabulary",
			text:     "excel financial modeling and risk compliance",
			expected: "finance",
		},
		{
			name:     "no signal",
			text:     "gardening and cooking",
			expected: "general",
		},
		{
			name:     "empty text",
			text:     "",
			expected: "general",
		},
		{
			name:     "one-keyword tie resolves to earliest industry",
			text:     "python and seo",
			expected: "software",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectIndustry(tt.text); got != tt.expected {
				t.Errorf("Expected industry '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestAnalyzeIndustryFit(t *testing.T) {
	tests := []struct {
		name                string
		text                string
		industry            string
		expectedConfidence  int
		expectedSuggestions int
	}{
		{
			name:                "strong coverage has no suggestions",
			text:                "javascript python react node aws docker git api database",
			industry:            "software",
			expectedConfidence:  100,
			expectedSuggestions: 0,
		},
		{
			name:                "moderate coverage gets the three keyword suggestions",
			text:                "python react node aws",
			industry:            "software",
			expectedConfidence:  44,
			expectedSuggestions: 3,
		},
		{
			name:                "weak coverage also suggests retargeting",
			text:                "python",
			industry:            "software",
			expectedConfidence:  11,
			expectedSuggestions: 4,
		},
		{
			name:                "unknown industry degrades to zero confidence",
			text:                "python react aws",
			industry:            "quantum computing",
			expectedConfidence:  0,
			expectedSuggestions: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := analyzeIndustryFit(tt.text, tt.industry)

			if result.DetectedIndustry != tt.industry {
				t.Errorf("Expected industry '%s', got '%s'", tt.industry, result.DetectedIndustry)
			}
			if result.Confidence != tt.expectedConfidence {
				t.Errorf("Expected confidence %d, got %d", tt.expectedConfidence, result.Confidence)
			}
			if len(result.Suggestions) != tt.expectedSuggestions {
				t.Errorf("Expected %d suggestions, got %d: %v",
					tt.expectedSuggestions, len(result.Suggestions), result.Suggestions)
			}
		})
	}
}
