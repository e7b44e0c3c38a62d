package analyzer

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestGenerateStrengthsFloorAndDefaults(t *testing.T) {
	strengths := generateStrengths("", analyzeSections(""))

	expected := []string{
		"Professional presentation and formatting",
		"Clear communication of qualifications",
		"Relevant industry experience highlighted",
	}
	if len(strengths) != len(expected) {
		t.Fatalf("Expected %d strengths, got %d: %v", len(expected), len(strengths), strengths)
	}
	for i, want := range expected {
		if strengths[i] != want {
			t.Errorf("Expected strength[%d]='%s', got '%s'", i, want, strengths[i])
		}
	}
}

func TestGenerateStrengthsCap(t *testing.T) {
	sections := map[string]types.SectionAnalysis{
		"contact": {Score: 9}, "summary": {Score: 9}, "experience": {Score: 9},
		"education": {Score: 9}, "skills": {Score: 9}, "projects": {Score: 9},
	}
	text := strings.Repeat("Led and managed certified project teams, increased results by 40%. ", 30)

	strengths := generateStrengths(text, sections)

	if len(strengths) != 5 {
		t.Fatalf("Expected cap of 5 strengths, got %d", len(strengths))
	}
	// Section strengths come first, in section order.
	for i, name := range []string{"contact", "summary", "experience", "education", "skills"} {
		want := "Excellent " + name + " section with comprehensive information"
		if strengths[i] != want {
			t.Errorf("Expected strength[%d]='%s', got '%s'", i, want, strengths[i])
		}
	}
}

func TestGenerateStrengthsContentSignals(t *testing.T) {
	text := "Managed a project team, increased revenue by 15%. Certified scrum master."

	strengths := generateStrengths(text, analyzeSections(text))

	assertContains(t, strengths, "Quantified achievements with measurable results")
	assertContains(t, strengths, "Demonstrates leadership and management experience")
	assertContains(t, strengths, "Shows collaborative project experience")
	assertContains(t, strengths, "Professional certifications enhance credibility")
}

func TestGenerateImprovementsWeakSectionsFirst(t *testing.T) {
	improvements := generateImprovements("", analyzeSections(""))

	expected := []string{
		"Add professional email address",
		"Add a professional summary or objective statement",
		"Add work experience section",
		"Add education section",
		"Add a dedicated skills section",
	}
	if len(improvements) != len(expected) {
		t.Fatalf("Expected %d improvements, got %d: %v", len(expected), len(improvements), improvements)
	}
	for i, want := range expected {
		if improvements[i] != want {
			t.Errorf("Expected improvement[%d]='%s', got '%s'", i, want, improvements[i])
		}
	}
}

func TestGenerateImprovementsFloorFromDefaults(t *testing.T) {
	// Strong everywhere: awards, metrics, volunteering, links, length, and
	// every section above the weak threshold.
	text := strings.Repeat(
		"Award-winning volunteer work, increased community reach by 30%, see github portfolio. ", 15)
	sections := map[string]types.SectionAnalysis{
		"contact": {Score: 8}, "summary": {Score: 8}, "experience": {Score: 8},
		"education": {Score: 8}, "skills": {Score: 8}, "projects": {Score: 8},
	}

	improvements := generateImprovements(text, sections)

	expected := []string{
		"Optimize with more industry-specific keywords",
		"Use stronger action verbs to describe accomplishments",
		"Include a professional summary at the top",
	}
	if len(improvements) != len(expected) {
		t.Fatalf("Expected %d improvements, got %d: %v", len(expected), len(improvements), improvements)
	}
	for i, want := range expected {
		if improvements[i] != want {
			t.Errorf("Expected improvement[%d]='%s', got '%s'", i, want, improvements[i])
		}
	}
}

func assertContains(t *testing.T, list []string, want string) {
	t.Helper()
	for _, item := range list {
		if item == want {
			return
		}
	}
	t.Errorf("Expected list to contain '%s', got %v", want, list)
}
