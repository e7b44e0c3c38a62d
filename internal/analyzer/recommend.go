package analyzer

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// generateRecommendations applies the prioritization rules in a fixed order
// and returns at most the first eight hits.
func generateRecommendations(resumeText string, sections map[string]types.SectionAnalysis, scores scoreSet) []types.Recommendation {
	var recommendations []types.Recommendation

	if scores.Overall < 6 {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "critical",
			Title:       "Resume Needs Major Improvements",
			Description: "Your resume score is below average. Focus on strengthening core sections and adding more relevant content.",
			Impact:      "high",
			Category:    "Overall Quality",
		})
	}

	if scores.ATS < 5 {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "critical",
			Title:       "Poor ATS Compatibility",
			Description: "Your resume may not pass Applicant Tracking Systems. Add more industry keywords and action verbs.",
			Impact:      "high",
			Category:    "ATS Optimization",
		})
	}

	for _, name := range sectionOrder {
		section := sections[name]
		if !section.Present {
			recommendations = append(recommendations, types.Recommendation{
				Type:        "important",
				Title:       fmt.Sprintf("Missing %s Section", capitalize(name)),
				Description: fmt.Sprintf("Add a %s section to provide comprehensive information about your background.", name),
				Impact:      "medium",
				Category:    "Content Structure",
			})
		} else if section.Score < 5 {
			description := fmt.Sprintf("Enhance your %s section with more detailed information.", name)
			if len(section.Improvements) > 0 {
				description = section.Improvements[0]
			}
			recommendations = append(recommendations, types.Recommendation{
				Type:        "important",
				Title:       fmt.Sprintf("Improve %s Section", capitalize(name)),
				Description: description,
				Impact:      "medium",
				Category:    "Content Quality",
			})
		}
	}

	if scores.Density < 30 {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "important",
			Title:       "Low Keyword Density",
			Description: "Include more industry-specific keywords to improve relevance and searchability.",
			Impact:      "medium",
			Category:    "SEO & Keywords",
		})
	}

	if scores.Readability < 6 {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "nice-to-have",
			Title:       "Improve Readability",
			Description: "Use shorter sentences and simpler language to improve readability.",
			Impact:      "low",
			Category:    "Writing Style",
		})
	}

	text := strings.ToLower(resumeText)
	if !strings.Contains(text, "http") && !strings.Contains(text, "portfolio") {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "nice-to-have",
			Title:       "Add Portfolio Links",
			Description: "Include links to your portfolio, GitHub, or professional profiles.",
			Impact:      "medium",
			Category:    "Professional Presence",
		})
	}

	if len(resumeText) < 1000 {
		recommendations = append(recommendations, types.Recommendation{
			Type:        "important",
			Title:       "Expand Resume Content",
			Description: "Your resume is quite short. Add more details about your experience and achievements.",
			Impact:      "high",
			Category:    "Content Length",
		})
	}

	if len(recommendations) > 8 {
		recommendations = recommendations[:8]
	}
	return recommendations
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
