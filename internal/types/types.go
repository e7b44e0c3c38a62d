package types

// AnalyzeResumeInput represents the input for a full resume analysis
type AnalyzeResumeInput struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription,omitempty"`
	TargetIndustry string `json:"targetIndustry,omitempty"`
}

// SectionAnalysis represents the assessment of one resume section
type SectionAnalysis struct {
	Present      bool     `json:"present"`
	Score        float64  `json:"score"`        // 0-10
	Feedback     string   `json:"feedback"`     // One-line verdict
	Improvements []string `json:"improvements"` // Concrete gaps, in fixed order
}

// KeywordMatching represents keyword coverage against the target vocabulary
type KeywordMatching struct {
	Matched     []string `json:"matched"`
	Missing     []string `json:"missing"`     // Capped at 10
	Suggestions []string `json:"suggestions"` // Capped at 8
}

// IndustryFit represents detected-industry alignment
type IndustryFit struct {
	DetectedIndustry string   `json:"detectedIndustry"`
	Confidence       int      `json:"confidence"` // 0-100
	Suggestions      []string `json:"suggestions"`
}

// CompetitorComparison represents the simulated peer benchmark
type CompetitorComparison struct {
	Percentile      int    `json:"percentile"`
	SimilarProfiles int    `json:"similarProfiles"`
	Benchmark       string `json:"benchmark"`
}

// Recommendation represents a single prioritized action item
type Recommendation struct {
	Type        string `json:"type"` // "critical", "important", or "nice-to-have"
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // "high", "medium", or "low"
	Category    string `json:"category"`
}

// ResumeAnalysis represents the complete output of the analysis pipeline
type ResumeAnalysis struct {
	OverallScore         int                        `json:"overallScore"`     // 0-10
	ATSScore             int                        `json:"atsScore"`         // 0-10
	ReadabilityScore     int                        `json:"readabilityScore"` // 1-10
	KeywordDensity       int                        `json:"keywordDensity"`   // 0-100
	Strengths            []string                   `json:"strengths"`        // 3-5 entries
	Improvements         []string                   `json:"improvements"`     // 3-5 entries
	MissingSkills        []string                   `json:"missingSkills"`    // Up to 5 entries
	KeywordMatching      KeywordMatching            `json:"keywordMatching"`
	Sections             map[string]SectionAnalysis `json:"sections"`
	IndustryFit          IndustryFit                `json:"industryFit"`
	CompetitorComparison CompetitorComparison       `json:"competitorComparison"`
	Summary              string                     `json:"summary"`
	Recommendations      []Recommendation           `json:"recommendations"` // Capped at 8
}
