// Package analyzer implements the deterministic resume scoring pipeline:
// section analysis, industry detection, composite scores, keyword matching,
// recommendations, a narrative summary, and a simulated peer benchmark.
//
// Every operation is a total function over plain text. Arbitrary input,
// including the empty string, yields a structurally complete result; the
// only randomness is the benchmark cohort size, drawn through an injectable
// integer source.
package analyzer

import (
	"math/rand/v2"
	"strings"

	"resumelens/internal/types"
)

// Engine runs the analysis pipeline. It is stateless and safe for
// concurrent use. Construct with New or NewWithRand.
type Engine struct {
	intn func(n int) int
}

// New returns an Engine using math/rand/v2 for the benchmark draw.
func New() *Engine {
	return &Engine{intn: rand.IntN}
}

// NewWithRand returns an Engine drawing benchmark cohort sizes from intn,
// which must return a value in [0, n). Used by tests to pin the draw.
func NewWithRand(intn func(n int) int) *Engine {
	return &Engine{intn: intn}
}

// Analyze runs the full pipeline over the input. TargetIndustry, when set,
// is trusted verbatim and skips detection; unknown industries degrade to an
// empty vocabulary rather than an error. Analyze never fails.
func (e *Engine) Analyze(input types.AnalyzeResumeInput) types.ResumeAnalysis {
	text := strings.ToLower(input.ResumeText)

	industry := input.TargetIndustry
	if industry == "" {
		industry = detectIndustry(text)
	}

	sections := analyzeSections(input.ResumeText)
	scores := calculateScores(input.ResumeText, sections, industry)
	keywordMatching := analyzeKeywords(text, industry, input.JobDescription)
	industryFit := analyzeIndustryFit(text, industry)

	missingSkills := keywordMatching.Missing
	if len(missingSkills) > 5 {
		missingSkills = missingSkills[:5]
	}

	return types.ResumeAnalysis{
		OverallScore:         scores.Overall,
		ATSScore:             scores.ATS,
		ReadabilityScore:     scores.Readability,
		KeywordDensity:       scores.Density,
		Strengths:            generateStrengths(input.ResumeText, sections),
		Improvements:         generateImprovements(input.ResumeText, sections),
		MissingSkills:        missingSkills,
		KeywordMatching:      keywordMatching,
		Sections:             sections,
		IndustryFit:          industryFit,
		CompetitorComparison: compareToBenchmark(scores.Overall, e.intn),
		Summary:              generateSummary(scores, sections, industryFit),
		Recommendations:      generateRecommendations(input.ResumeText, sections, scores),
	}
}
