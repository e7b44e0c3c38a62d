package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/types"
)

const sampleResume = `Jane Doe
jane@example.com | 555-123-4567 | linkedin.com/in/janedoe | Austin, State

Professional Summary
Experienced software developer passionate about building reliable systems.
Seeking a senior role on a platform team.

Work Experience
Senior Developer, Acme Inc, 2019 - present.
Led a team of five. Improved deployment frequency by 40%.
Developed internal APIs in Python and JavaScript, managed AWS infrastructure,
implemented Docker-based CI workflows with Git.

Education
Bachelor of Science, State University, graduated 2015. GPA 3.7.

Skills
Technical: programming in Python, JavaScript, React, Node. Databases.
Soft skills: communication, leadership, teamwork. Tools: Microsoft Office, Google Cloud.

Projects
Built an open-source scheduling tool using React and Node, live demo on GitHub.
Measurable impact: 2k monthly users. https://github.com/janedoe/scheduler
`

func fixedEngine() *Engine {
	return NewWithRand(func(n int) int { return 123 })
}

func TestAnalyzeSampleResume(t *testing.T) {
	result := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: sampleResume})

	assert.Equal(t, "software", result.IndustryFit.DetectedIndustry)
	assert.True(t, result.Sections["contact"].Present)
	assert.True(t, result.Sections["experience"].Present)
	assert.InDelta(t, 10, result.Sections["contact"].Score, 0.001)

	assert.GreaterOrEqual(t, result.OverallScore, 7)
	assert.LessOrEqual(t, result.OverallScore, 10)
	assert.GreaterOrEqual(t, result.ReadabilityScore, 1)
	assert.LessOrEqual(t, result.ReadabilityScore, 10)
	assert.GreaterOrEqual(t, result.KeywordDensity, 0)
	assert.LessOrEqual(t, result.KeywordDensity, 100)

	assert.Equal(t, 623, result.CompetitorComparison.SimilarProfiles)
	assert.GreaterOrEqual(t, len(result.Strengths), 3)
	assert.LessOrEqual(t, len(result.Strengths), 5)
	assert.GreaterOrEqual(t, len(result.Improvements), 3)
	assert.LessOrEqual(t, len(result.Improvements), 5)
	assert.LessOrEqual(t, len(result.Recommendations), 8)
	assert.LessOrEqual(t, len(result.MissingSkills), 5)
}

func TestAnalyzeDeterministic(t *testing.T) {
	input := types.AnalyzeResumeInput{
		ResumeText:     sampleResume,
		JobDescription: "Looking for a developer with Kubernetes and SQL experience.",
	}

	first := fixedEngine().Analyze(input)
	second := fixedEngine().Analyze(input)

	assert.Equal(t, first, second)
}

func TestAnalyzeEmptyInputIsTotal(t *testing.T) {
	result := fixedEngine().Analyze(types.AnalyzeResumeInput{})

	assert.Equal(t, 0, result.OverallScore)
	assert.Equal(t, 10, result.ReadabilityScore)
	assert.Equal(t, "general", result.IndustryFit.DetectedIndustry)
	assert.Len(t, result.Sections, 6)
	assert.Len(t, result.Strengths, 3)
	assert.Len(t, result.Improvements, 5)

	for _, name := range sectionOrder {
		section, ok := result.Sections[name]
		require.True(t, ok, "section %s must always be reported", name)
		assert.False(t, section.Present)
	}

	assert.Len(t, result.Recommendations, 8)
	assert.Equal(t, 20, result.CompetitorComparison.Percentile)
	assert.Equal(t, "Needs Improvement", result.CompetitorComparison.Benchmark)
	assert.NotEmpty(t, result.Summary)
}

func TestAnalyzeTargetIndustryOverride(t *testing.T) {
	input := types.AnalyzeResumeInput{
		ResumeText:     sampleResume,
		TargetIndustry: "marketing",
	}

	result := fixedEngine().Analyze(input)

	// The override is trusted verbatim, even when detection would disagree.
	assert.Equal(t, "marketing", result.IndustryFit.DetectedIndustry)
}

func TestAnalyzeUnknownTargetIndustry(t *testing.T) {
	input := types.AnalyzeResumeInput{
		ResumeText:     sampleResume,
		TargetIndustry: "astrology",
	}

	result := fixedEngine().Analyze(input)

	assert.Equal(t, "astrology", result.IndustryFit.DetectedIndustry)
	assert.Equal(t, 0, result.IndustryFit.Confidence)
	assert.Equal(t, 0, result.KeywordDensity)
	assert.Empty(t, result.KeywordMatching.Matched)
}

func TestAnalyzeSimilarProfilesRange(t *testing.T) {
	engine := New()
	for range 20 {
		result := engine.Analyze(types.AnalyzeResumeInput{ResumeText: sampleResume})
		profiles := result.CompetitorComparison.SimilarProfiles
		require.GreaterOrEqual(t, profiles, 500)
		require.Less(t, profiles, 1500)
	}
}

func TestAnalyzeJSONContract(t *testing.T) {
	result := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: sampleResume})

	data, err := json.Marshal(result)
	require.NoError(t, err)

	for _, field := range []string{
		`"overallScore"`, `"atsScore"`, `"readabilityScore"`, `"keywordDensity"`,
		`"strengths"`, `"improvements"`, `"missingSkills"`, `"keywordMatching"`,
		`"matched"`, `"missing"`, `"suggestions"`, `"sections"`, `"industryFit"`,
		`"detectedIndustry"`, `"confidence"`, `"competitorComparison"`,
		`"percentile"`, `"similarProfiles"`, `"benchmark"`, `"summary"`,
		`"recommendations"`,
	} {
		assert.Contains(t, string(data), field)
	}
}

func TestAnalyzeMoreSignalNeverLowersSectionScore(t *testing.T) {
	base := "experience at acme"
	richer := base + " inc as developer, 2020 to present, improved results by 20%"

	baseResult := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: base})
	richResult := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: richer})

	assert.GreaterOrEqual(t,
		richResult.Sections["experience"].Score,
		baseResult.Sections["experience"].Score)
}

func TestAnalyzeJobDescriptionWidensVocabulary(t *testing.T) {
	withoutJD := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: sampleResume})
	withJD := fixedEngine().Analyze(types.AnalyzeResumeInput{
		ResumeText:     sampleResume,
		JobDescription: "Requires kubernetes, elasticsearch and mentoring experience.",
	})

	total := func(r types.ResumeAnalysis) int {
		return len(r.KeywordMatching.Matched) + len(r.KeywordMatching.Missing)
	}
	assert.Greater(t, total(withJD), total(withoutJD))
}

func TestAnalyzeSummaryMentionsScores(t *testing.T) {
	result := fixedEngine().Analyze(types.AnalyzeResumeInput{ResumeText: sampleResume})

	assert.True(t, strings.HasPrefix(result.Summary, "Your resume receives an overall score of"))
	assert.Contains(t, result.Summary, "ATS compatibility score")
	assert.Contains(t, result.Summary, "software industry")
}
