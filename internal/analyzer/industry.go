package analyzer

import (
	"fmt"
	"math"
	"strings"

	"resumelens/internal/types"
)

// detectIndustry scores the lowercased text against every known industry
// vocabulary and returns the best match. Ties resolve to the earliest entry
// in industryOrder; "general" when nothing matches at all.
func detectIndustry(text string) string {
	maxScore := 0
	detected := "general"

	for _, industry := range industryOrder {
		score := 0
		for _, keyword := range industryKeywords[industry] {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > maxScore {
			maxScore = score
			detected = industry
		}
	}

	return detected
}

// analyzeIndustryFit measures how much of the detected industry's vocabulary
// the resume covers. Unknown industries carry an empty vocabulary and score
// zero confidence rather than failing.
func analyzeIndustryFit(text, detectedIndustry string) types.IndustryFit {
	keywords := industryKeywords[detectedIndustry]

	confidence := 0.0
	if len(keywords) > 0 {
		matched := 0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				matched++
			}
		}
		confidence = float64(matched) / float64(len(keywords)) * 100
	}

	var suggestions []string
	if confidence < 50 {
		suggestions = append(suggestions,
			fmt.Sprintf("Add more %s-specific keywords and terminology", detectedIndustry),
			fmt.Sprintf("Include relevant tools and technologies used in %s", detectedIndustry),
			fmt.Sprintf("Highlight %s industry experience and projects", detectedIndustry),
		)
	}
	if confidence < 30 {
		suggestions = append(suggestions, "Consider targeting a different industry that better matches your background")
	}

	return types.IndustryFit{
		DetectedIndustry: detectedIndustry,
		Confidence:       int(math.Round(confidence)),
		Suggestions:      suggestions,
	}
}
