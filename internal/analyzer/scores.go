package analyzer

import (
	"math"
	"regexp"
	"strings"

	"resumelens/internal/types"
)

var sentencePattern = regexp.MustCompile(`[.!?]+`)

// scoreSet holds the four composite scores derived from the section results
// and the raw text.
type scoreSet struct {
	Overall     int
	ATS         int
	Readability int
	Density     int
}

// calculateScores derives the composite scores. Every division is guarded so
// that arbitrary input (including the empty string) yields defined values.
func calculateScores(resumeText string, sections map[string]types.SectionAnalysis, industry string) scoreSet {
	text := strings.ToLower(resumeText)

	// Overall: mean of section scores, rounded.
	total := 0.0
	for _, section := range sections {
		total += section.Score
	}
	avgSectionScore := 0.0
	if len(sections) > 0 {
		avgSectionScore = total / float64(len(sections))
	}

	// ATS: fraction of screening keywords present, scaled to 10.
	atsHits := 0
	for _, keyword := range atsKeywords {
		if strings.Contains(text, keyword) {
			atsHits++
		}
	}
	atsScore := math.Min(float64(atsHits)/float64(len(atsKeywords))*10, 10)

	// Readability: penalize long sentences, floor at 1.
	wordCount := len(strings.Fields(resumeText))
	sentences := len(sentencePattern.Split(resumeText, -1))
	avgWordsPerSentence := 0.0
	if sentences > 0 {
		avgWordsPerSentence = float64(wordCount) / float64(sentences)
	}
	readability := math.Max(10-avgWordsPerSentence/5, 1)
	if readability > 10 {
		readability = 10
	}

	// Density: fraction of the industry vocabulary present, as a percentage.
	// Empty vocabulary (unknown or "general" industry) reads as zero.
	density := 0.0
	if keywords := industryKeywords[industry]; len(keywords) > 0 {
		hits := 0
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				hits++
			}
		}
		density = float64(hits) / float64(len(keywords)) * 100
	}

	return scoreSet{
		Overall:     int(math.Round(avgSectionScore)),
		ATS:         int(math.Round(atsScore)),
		Readability: int(math.Round(readability)),
		Density:     int(math.Round(density)),
	}
}
