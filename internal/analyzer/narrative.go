package analyzer

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// generateSummary assembles the narrative verdict from fixed clause
// templates. Identical inputs always produce identical prose.
func generateSummary(scores scoreSet, sections map[string]types.SectionAnalysis, industryFit types.IndustryFit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your resume receives an overall score of %d/10, ", scores.Overall)
	switch {
	case scores.Overall >= 8:
		b.WriteString("indicating an excellent professional presentation that should perform well in competitive job markets. ")
	case scores.Overall >= 6:
		b.WriteString("showing a solid foundation with room for strategic improvements to enhance competitiveness. ")
	default:
		b.WriteString("suggesting significant opportunities for improvement to meet current industry standards. ")
	}

	fmt.Fprintf(&b, "Your ATS compatibility score of %d/10 ", scores.ATS)
	if scores.ATS >= 7 {
		b.WriteString("indicates strong keyword optimization for applicant tracking systems. ")
	} else {
		b.WriteString("suggests the need for better keyword integration to pass initial screening filters. ")
	}

	fmt.Fprintf(&b, "The analysis detected a %d%% fit for the %s industry. ", industryFit.Confidence, industryFit.DetectedIndustry)
	if industryFit.Confidence >= 70 {
		b.WriteString("Your background aligns well with industry expectations. ")
	} else {
		b.WriteString("Consider strengthening industry-specific keywords and relevant experience. ")
	}

	var strong, weak []string
	for _, name := range sectionOrder {
		switch {
		case sections[name].Score >= 8:
			strong = append(strong, name)
		case sections[name].Score < 5:
			weak = append(weak, name)
		}
	}
	if len(strong) > 0 {
		fmt.Fprintf(&b, "Your strongest sections include %s, which effectively showcase your qualifications. ", strings.Join(strong, ", "))
	}
	if len(weak) > 0 {
		fmt.Fprintf(&b, "Priority improvements should focus on %s sections. ", strings.Join(weak, ", "))
	}

	b.WriteString("Focus on adding quantifiable achievements, optimizing for relevant keywords, and ensuring all sections provide comprehensive information about your professional background.")
	return b.String()
}
