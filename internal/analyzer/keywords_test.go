package analyzer

import (
	"testing"
)

func TestAnalyzeKeywordsIndustryOnly(t *testing.T) {
	result := analyzeKeywords("python and git daily", "software", "")

	expectedMatched := []string{"python", "git"}
	if len(result.Matched) != len(expectedMatched) {
		t.Fatalf("Expected %d matched, got %d: %v", len(expectedMatched), len(result.Matched), result.Matched)
	}
	for i, want := range expectedMatched {
		if result.Matched[i] != want {
			t.Errorf("Expected matched[%d]='%s', got '%s'", i, want, result.Matched[i])
		}
	}

	// Missing keeps vocabulary order.
	expectedMissing := []string{"javascript", "react", "node", "aws", "docker", "api", "database"}
	if len(result.Missing) != len(expectedMissing) {
		t.Fatalf("Expected %d missing, got %d: %v", len(expectedMissing), len(result.Missing), result.Missing)
	}
	for i, want := range expectedMissing {
		if result.Missing[i] != want {
			t.Errorf("Expected missing[%d]='%s', got '%s'", i, want, result.Missing[i])
		}
	}
}

func TestAnalyzeKeywordsJobDescriptionUnion(t *testing.T) {
	text := "javascript python react node aws docker git api database"
	jd := "We need kubernetes, sql and leadership. Python a plus."
	result := analyzeKeywords(text, "software", jd)

	// Vocabulary is the 9 software terms plus the new closed-list terms from
	// the job description; python appears in both and must not repeat.
	if got := len(result.Matched) + len(result.Missing); got != 12 {
		t.Errorf("Expected union of 12 unique keywords, got %d", got)
	}

	expectedMissing := []string{"sql", "kubernetes", "leadership"}
	if len(result.Missing) != len(expectedMissing) {
		t.Fatalf("Expected %d missing, got %d: %v", len(expectedMissing), len(result.Missing), result.Missing)
	}
	for i, want := range expectedMissing {
		if result.Missing[i] != want {
			t.Errorf("Expected missing[%d]='%s', got '%s'", i, want, result.Missing[i])
		}
	}
}

func TestAnalyzeKeywordsMissingCap(t *testing.T) {
	jd := "sql kubernetes mongodb postgresql redis elasticsearch leadership communication teamwork"
	result := analyzeKeywords("", "software", jd)

	if len(result.Missing) != 10 {
		t.Errorf("Expected missing capped at 10, got %d", len(result.Missing))
	}
	if len(result.Matched) != 0 {
		t.Errorf("Expected no matches on empty text, got %v", result.Matched)
	}
}

func TestExtractJobKeywordsClosedList(t *testing.T) {
	tests := []struct {
		name     string
		jd       string
		expected []string
	}{
		{
			name:     "finds known terms",
			jd:       "experience with docker and kubernetes, strong communication",
			expected: []string{"docker", "kubernetes", "communication"},
		},
		{
			name:     "ignores unknown terms",
			jd:       "must know cobol and fortran",
			expected: nil,
		},
		{
			name:     "empty description",
			jd:       "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractJobKeywords(tt.jd)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d keywords, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("Expected keyword[%d]='%s', got '%s'", i, want, got[i])
				}
			}
		})
	}
}

func TestKeywordSuggestions(t *testing.T) {
	tests := []struct {
		name     string
		industry string
		matched  []string
		expected []string
	}{
		{
			name:     "software with no matches offers industry terms first",
			industry: "software",
			matched:  nil,
			expected: []string{
				"microservices", "ci/cd", "testing", "debugging", "code review",
				"results-driven", "cross-functional", "stakeholder management",
			},
		},
		{
			name:     "matched terms are skipped",
			industry: "software",
			matched:  []string{"testing", "results-driven"},
			expected: []string{
				"microservices", "ci/cd", "debugging", "code review",
				"cross-functional", "stakeholder management", "process improvement",
				"data-driven",
			},
		},
		{
			name:     "unknown industry falls back to generic phrases",
			industry: "general",
			matched:  nil,
			expected: []string{
				"results-driven", "cross-functional", "stakeholder management",
				"process improvement", "data-driven", "innovative",
				"strategic thinking", "customer-focused",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordSuggestions(tt.industry, tt.matched)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d suggestions, got %d: %v", len(tt.expected), len(got), got)
			}
			for i, want := range tt.expected {
				if got[i] != want {
					t.Errorf("Expected suggestion[%d]='%s', got '%s'", i, want, got[i])
				}
			}
		})
	}
}
