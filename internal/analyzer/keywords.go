package analyzer

import (
	"strings"

	"resumelens/internal/types"
)

// analyzeKeywords matches the lowercased resume text against the target
// vocabulary: the detected industry's lexicon plus any closed-list terms
// found in the job description.
func analyzeKeywords(text, industry, jobDescription string) types.KeywordMatching {
	relevant := make([]string, 0, len(industryKeywords[industry]))
	seen := make(map[string]bool)
	for _, keyword := range industryKeywords[industry] {
		if !seen[keyword] {
			seen[keyword] = true
			relevant = append(relevant, keyword)
		}
	}
	if jobDescription != "" {
		for _, keyword := range extractJobKeywords(jobDescription) {
			if !seen[keyword] {
				seen[keyword] = true
				relevant = append(relevant, keyword)
			}
		}
	}

	var matched, missing []string
	for _, keyword := range relevant {
		if strings.Contains(text, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	if len(missing) > 10 {
		missing = missing[:10]
	}

	return types.KeywordMatching{
		Matched:     matched,
		Missing:     missing,
		Suggestions: keywordSuggestions(industry, matched),
	}
}

// extractJobKeywords scans the job description against the closed term list.
func extractJobKeywords(jobDescription string) []string {
	text := strings.ToLower(jobDescription)
	var found []string
	for _, keyword := range jobDescriptionKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// keywordSuggestions offers industry-specific terms first, then generic
// professional phrases, skipping anything already matched. Capped at 8.
func keywordSuggestions(industry string, matched []string) []string {
	matchedSet := make(map[string]bool, len(matched))
	for _, m := range matched {
		matchedSet[m] = true
	}

	var suggestions []string
	for _, s := range industrySuggestions[industry] {
		if !matchedSet[s] {
			suggestions = append(suggestions, s)
		}
	}
	for _, s := range genericSuggestions {
		if !matchedSet[s] {
			suggestions = append(suggestions, s)
		}
	}

	if len(suggestions) > 8 {
		suggestions = suggestions[:8]
	}
	return suggestions
}
