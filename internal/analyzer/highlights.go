package analyzer

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// generateStrengths collects observed strengths, pads them from the default
// list to a floor of three, and caps the result at five.
func generateStrengths(resumeText string, sections map[string]types.SectionAnalysis) []string {
	var strengths []string
	text := strings.ToLower(resumeText)

	for _, name := range sectionOrder {
		if sections[name].Score >= 8 {
			strengths = append(strengths, fmt.Sprintf("Excellent %s section with comprehensive information", name))
		}
	}

	if containsAny(text, "%", "increased", "improved") {
		strengths = append(strengths, "Quantified achievements with measurable results")
	}
	if containsAny(text, "led", "managed", "supervised") {
		strengths = append(strengths, "Demonstrates leadership and management experience")
	}
	if strings.Contains(text, "project") && strings.Contains(text, "team") {
		strengths = append(strengths, "Shows collaborative project experience")
	}
	if len(resumeText) > 1500 {
		strengths = append(strengths, "Comprehensive and detailed professional presentation")
	}
	if containsAny(text, "certification", "certified") {
		strengths = append(strengths, "Professional certifications enhance credibility")
	}

	for len(strengths) < 3 {
		strengths = append(strengths, defaultStrengths[len(strengths)%len(defaultStrengths)])
	}
	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

// generateImprovements mirrors generateStrengths for the gaps: weak sections
// contribute their first improvement, content checks add the rest, with the
// same floor of three and cap of five.
func generateImprovements(resumeText string, sections map[string]types.SectionAnalysis) []string {
	var improvements []string
	text := strings.ToLower(resumeText)

	for _, name := range sectionOrder {
		section := sections[name]
		if section.Score < 6 && len(section.Improvements) > 0 {
			improvements = append(improvements, section.Improvements[0])
		}
	}

	if !containsAny(text, "%", "increased", "reduced") {
		improvements = append(improvements, "Add quantifiable achievements with specific metrics and percentages")
	}
	if !containsAny(text, "award", "recognition", "achievement") {
		improvements = append(improvements, "Include notable awards, recognitions, or achievements")
	}
	if len(resumeText) < 1000 {
		improvements = append(improvements, "Expand content with more detailed descriptions and examples")
	}
	if !containsAny(text, "volunteer", "community") {
		improvements = append(improvements, "Consider adding volunteer work or community involvement")
	}
	if !containsAny(text, "http", "github", "portfolio") {
		improvements = append(improvements, "Add portfolio links or professional online presence")
	}

	for len(improvements) < 3 {
		improvements = append(improvements, defaultImprovements[len(improvements)%len(defaultImprovements)])
	}
	if len(improvements) > 5 {
		improvements = improvements[:5]
	}
	return improvements
}
