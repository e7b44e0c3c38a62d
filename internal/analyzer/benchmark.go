package analyzer

import "resumelens/internal/types"

// compareToBenchmark buckets the overall score into a percentile band and
// draws a simulated cohort size from intn. The cohort size is the only
// non-deterministic value in the whole pipeline.
func compareToBenchmark(overallScore int, intn func(n int) int) types.CompetitorComparison {
	percentile := 50
	benchmark := "Average"

	switch {
	case overallScore >= 9:
		percentile, benchmark = 95, "Exceptional"
	case overallScore >= 8:
		percentile, benchmark = 85, "Excellent"
	case overallScore >= 7:
		percentile, benchmark = 70, "Good"
	case overallScore >= 6:
		percentile, benchmark = 55, "Above Average"
	case overallScore >= 5:
		percentile, benchmark = 40, "Below Average"
	default:
		percentile, benchmark = 20, "Needs Improvement"
	}

	return types.CompetitorComparison{
		Percentile:      percentile,
		SimilarProfiles: intn(1000) + 500,
		Benchmark:       benchmark,
	}
}
