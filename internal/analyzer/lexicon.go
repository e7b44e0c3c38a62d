package analyzer

// industryOrder fixes the iteration order for industry detection so that
// ties resolve to the earliest entry.
var industryOrder = []string{"software", "marketing", "finance", "design", "sales"}

// industryKeywords maps each known industry to its signal vocabulary.
// All entries are lowercase; matching is substring-based on lowercased text.
var industryKeywords = map[string][]string{
	"software":  {"javascript", "python", "react", "node", "aws", "docker", "git", "api", "database"},
	"marketing": {"seo", "analytics", "campaign", "social media", "content", "brand", "conversion"},
	"finance":   {"excel", "financial modeling", "analysis", "risk", "bloomberg", "trading", "compliance"},
	"design":    {"figma", "adobe", "ui/ux", "typography", "branding", "prototype", "user research"},
	"sales":     {"crm", "pipeline", "quotas", "b2b", "negotiation", "relationship", "revenue"},
}

// atsKeywords are the terms applicant tracking systems commonly screen for.
var atsKeywords = []string{
	"experience", "skills", "education", "achievements", "responsibilities",
	"managed", "developed", "implemented", "created", "improved", "increased",
	"reduced", "led", "collaborated", "analyzed", "designed",
}

// jobDescriptionKeywords is the closed list scanned when a job description
// is supplied. Terms found in the description join the target vocabulary.
var jobDescriptionKeywords = []string{
	// Technical skills
	"javascript", "python", "react", "node", "sql", "aws", "docker", "kubernetes",
	"git", "api", "database", "mongodb", "postgresql", "redis", "elasticsearch",

	// Soft skills
	"leadership", "communication", "teamwork", "problem-solving", "analytical",
	"project management", "agile", "scrum", "collaboration", "mentoring",

	// Business skills
	"strategy", "analysis", "reporting", "optimization", "automation", "testing",
	"deployment", "monitoring", "security", "performance", "scalability",
}

// industrySuggestions holds per-industry keyword suggestions offered when
// the resume has not already matched them.
var industrySuggestions = map[string][]string{
	"software":  {"microservices", "ci/cd", "testing", "debugging", "code review"},
	"marketing": {"a/b testing", "customer acquisition", "retention", "roi", "kpi"},
	"finance":   {"forecasting", "budgeting", "valuation", "portfolio management", "derivatives"},
	"design":    {"wireframing", "user testing", "accessibility", "design systems", "prototyping"},
	"sales":     {"lead generation", "customer success", "account management", "forecasting", "closing"},
}

// genericSuggestions are profession-neutral phrases appended after the
// industry-specific suggestions.
var genericSuggestions = []string{
	"results-driven", "cross-functional", "stakeholder management", "process improvement",
	"data-driven", "innovative", "strategic thinking", "customer-focused",
}

// defaultStrengths pads the strengths list up to its floor of three entries.
var defaultStrengths = []string{
	"Professional presentation and formatting",
	"Clear communication of qualifications",
	"Relevant industry experience highlighted",
	"Strong technical skill set demonstrated",
	"Professional development and growth shown",
}

// defaultImprovements pads the improvements list up to its floor of three entries.
var defaultImprovements = []string{
	"Optimize with more industry-specific keywords",
	"Use stronger action verbs to describe accomplishments",
	"Include a professional summary at the top",
	"Add more context about company size and industry",
	"Highlight transferable skills for career changes",
}

// Industries returns the known industry names in detection order.
func Industries() []string {
	out := make([]string, len(industryOrder))
	copy(out, industryOrder)
	return out
}
