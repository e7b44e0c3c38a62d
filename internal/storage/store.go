// Package storage persists completed analyses and serves the history view.
// Persistence is best-effort: callers treat failures as degraded operation,
// never as analysis failure.
package storage

import (
	"context"
	"time"

	"resumelens/internal/types"
)

// AnalysisRecord is the document written for every completed analysis.
// Resume and job description text are truncated by the store before writing.
type AnalysisRecord struct {
	ResumeText     string
	JobDescription string
	TargetIndustry string
	Analysis       types.ResumeAnalysis
	IPAddress      string
	UserAgent      string
}

// HistoryEntry is the lightweight view returned by the history listing.
type HistoryEntry struct {
	ID               string    `json:"id"`
	OverallScore     int       `json:"overallScore"`
	ATSScore         int       `json:"atsScore"`
	ReadabilityScore int       `json:"readabilityScore"`
	KeywordDensity   int       `json:"keywordDensity"`
	Industry         string    `json:"industry"`
	Percentile       int       `json:"percentile"`
	Benchmark        string    `json:"benchmark"`
	CreatedAt        time.Time `json:"createdAt"`
	Preview          string    `json:"preview"`
}

// Store is the persistence surface used by the server and CLI.
type Store interface {
	// SaveAnalysis writes a record and returns its id.
	SaveAnalysis(ctx context.Context, record AnalysisRecord) (string, error)

	// ListRecent returns the most recent entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases any held resources.
	Close()
}

// previewLength is the number of resume characters exposed in history entries.
const previewLength = 150

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
