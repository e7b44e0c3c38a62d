package analyzer

import (
	"regexp"
	"strings"

	"resumelens/internal/types"
)

// sectionOrder fixes the iteration order over the sections map wherever the
// result depends on it (recommendations, strengths, improvements, summary).
var sectionOrder = []string{"contact", "summary", "experience", "education", "skills", "projects"}

var (
	emailPattern = regexp.MustCompile(`@`)
	phonePattern = regexp.MustCompile(`\d{3}[-.]?\d{3}[-.]?\d{4}`)
	yearPattern  = regexp.MustCompile(`\d{4}`)
)

// containsAny reports whether text contains at least one of the terms.
func containsAny(text string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// probeScore converts boolean probe hits into a section score clamped to 10.
func probeScore(weight float64, probes ...bool) float64 {
	hits := 0
	for _, p := range probes {
		if p {
			hits++
		}
	}
	score := float64(hits) * weight
	if score > 10 {
		return 10
	}
	return score
}

// analyzeSections runs every section analyzer over the lowercased text.
func analyzeSections(resumeText string) map[string]types.SectionAnalysis {
	text := strings.ToLower(resumeText)

	return map[string]types.SectionAnalysis{
		"contact":    analyzeContactSection(text),
		"summary":    analyzeSummarySection(text),
		"experience": analyzeExperienceSection(text),
		"education":  analyzeEducationSection(text),
		"skills":     analyzeSkillsSection(text),
		"projects":   analyzeProjectsSection(text),
	}
}

func analyzeContactSection(text string) types.SectionAnalysis {
	hasEmail := emailPattern.MatchString(text)
	hasPhone := phonePattern.MatchString(text)
	hasLinkedIn := strings.Contains(text, "linkedin")
	hasLocation := containsAny(text, "city", "state")

	score := probeScore(2.5, hasEmail, hasPhone, hasLinkedIn, hasLocation)

	feedback := "Contact section needs improvement"
	if score >= 7 {
		feedback = "Contact information is comprehensive"
	}

	var improvements []string
	if !hasEmail {
		improvements = append(improvements, "Add professional email address")
	}
	if !hasPhone {
		improvements = append(improvements, "Include phone number")
	}
	if !hasLinkedIn {
		improvements = append(improvements, "Add LinkedIn profile URL")
	}
	if !hasLocation {
		improvements = append(improvements, "Include location (city, state)")
	}

	return types.SectionAnalysis{
		Present:      hasEmail || hasPhone,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}

func analyzeSummarySection(text string) types.SectionAnalysis {
	hasSummary := containsAny(text, "summary", "objective", "profile")
	hasCareerGoal := containsAny(text, "seeking", "looking", "passionate")
	hasKeySkills := containsAny(text, "experienced", "skilled", "proficient")

	score := probeScore(3.33, hasSummary, hasCareerGoal, hasKeySkills)

	feedback := "Consider adding a compelling professional summary"
	if score >= 7 {
		feedback = "Professional summary is well-crafted"
	}

	var improvements []string
	if !hasSummary {
		improvements = append(improvements, "Add a professional summary or objective statement")
	}
	if !hasCareerGoal {
		improvements = append(improvements, "Include clear career goals and aspirations")
	}
	if !hasKeySkills {
		improvements = append(improvements, "Highlight key skills and expertise in summary")
	}

	return types.SectionAnalysis{
		Present:      hasSummary,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}

func analyzeExperienceSection(text string) types.SectionAnalysis {
	hasExperience := containsAny(text, "experience", "work", "employment")
	hasJobTitles := containsAny(text, "manager", "developer", "analyst", "coordinator")
	hasCompanies := containsAny(text, "company", "inc", "corp", "ltd")
	hasDates := yearPattern.MatchString(text) || containsAny(text, "present", "current")
	hasAchievements := containsAny(text, "achieved", "improved", "increased", "%")

	score := probeScore(2, hasExperience, hasJobTitles, hasCompanies, hasDates, hasAchievements)

	feedback := "Work experience needs more detail"
	if score >= 8 {
		feedback = "Work experience section is comprehensive"
	}

	var improvements []string
	if !hasExperience {
		improvements = append(improvements, "Add work experience section")
	}
	if !hasJobTitles {
		improvements = append(improvements, "Include specific job titles and roles")
	}
	if !hasCompanies {
		improvements = append(improvements, "Add company names and details")
	}
	if !hasDates {
		improvements = append(improvements, "Include employment dates")
	}
	if !hasAchievements {
		improvements = append(improvements, "Add quantifiable achievements and results")
	}

	return types.SectionAnalysis{
		Present:      hasExperience,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}

func analyzeEducationSection(text string) types.SectionAnalysis {
	hasEducation := containsAny(text, "education", "degree", "university", "college")
	hasDegree := containsAny(text, "bachelor", "master", "phd", "diploma")
	hasInstitution := containsAny(text, "university", "college", "institute")
	hasGradYear := yearPattern.MatchString(text) && containsAny(text, "graduated", "degree")
	hasGPA := containsAny(text, "gpa", "grade", "honors")

	score := probeScore(2, hasEducation, hasDegree, hasInstitution, hasGradYear, hasGPA)

	feedback := "Education section could be more detailed"
	if score >= 6 {
		feedback = "Education section is well-documented"
	}

	var improvements []string
	if !hasEducation {
		improvements = append(improvements, "Add education section")
	}
	if !hasDegree {
		improvements = append(improvements, "Specify degree type and field of study")
	}
	if !hasInstitution {
		improvements = append(improvements, "Include institution names")
	}
	if !hasGradYear {
		improvements = append(improvements, "Add graduation dates")
	}
	if !hasGPA {
		improvements = append(improvements, "Consider adding GPA if above 3.5 or relevant honors")
	}

	return types.SectionAnalysis{
		Present:      hasEducation,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}

func analyzeSkillsSection(text string) types.SectionAnalysis {
	hasSkills := containsAny(text, "skills", "competencies", "proficiencies")
	hasTechnicalSkills := containsAny(text, "programming", "software", "technical")
	hasSoftSkills := containsAny(text, "communication", "leadership", "teamwork")
	hasTools := containsAny(text, "microsoft", "adobe", "google", "salesforce")
	hasLanguages := containsAny(text, "language", "spanish", "french", "bilingual")

	score := probeScore(2, hasSkills, hasTechnicalSkills, hasSoftSkills, hasTools, hasLanguages)

	feedback := "Skills section needs expansion"
	if score >= 6 {
		feedback = "Skills section showcases diverse competencies"
	}

	var improvements []string
	if !hasSkills {
		improvements = append(improvements, "Add a dedicated skills section")
	}
	if !hasTechnicalSkills {
		improvements = append(improvements, "Include relevant technical skills")
	}
	if !hasSoftSkills {
		improvements = append(improvements, "Add important soft skills")
	}
	if !hasTools {
		improvements = append(improvements, "List software tools and platforms you know")
	}
	if !hasLanguages {
		improvements = append(improvements, "Include language proficiencies if applicable")
	}

	return types.SectionAnalysis{
		Present:      hasSkills,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}

func analyzeProjectsSection(text string) types.SectionAnalysis {
	hasProjects := containsAny(text, "project", "portfolio", "personal work")
	hasProjectTitles := containsAny(text, "built", "developed", "created")
	hasTechnologies := containsAny(text, "using", "with", "technologies")
	hasResults := containsAny(text, "result", "outcome", "impact")
	hasLinks := containsAny(text, "github", "demo", "live", "http")

	score := probeScore(2, hasProjects, hasProjectTitles, hasTechnologies, hasResults, hasLinks)

	feedback := "Consider adding relevant projects"
	if score >= 6 {
		feedback = "Projects section demonstrates practical experience"
	}

	var improvements []string
	if !hasProjects {
		improvements = append(improvements, "Add a projects section to showcase your work")
	}
	if !hasProjectTitles {
		improvements = append(improvements, "Include specific project names and descriptions")
	}
	if !hasTechnologies {
		improvements = append(improvements, "List technologies and tools used in projects")
	}
	if !hasResults {
		improvements = append(improvements, "Describe project outcomes and impact")
	}
	if !hasLinks {
		improvements = append(improvements, "Add links to GitHub repos or live demos")
	}

	return types.SectionAnalysis{
		Present:      hasProjects,
		Score:        score,
		Feedback:     feedback,
		Improvements: improvements,
	}
}
