package storage

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS resume_analyses (
	id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	resume_text     TEXT NOT NULL,
	job_description TEXT NOT NULL DEFAULT '',
	target_industry TEXT NOT NULL DEFAULT '',
	analysis        JSONB NOT NULL,
	ip_address      TEXT NOT NULL DEFAULT '',
	user_agent      TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS resume_analyses_created_at_idx ON resume_analyses (created_at DESC);
`

// PostgresStore persists analyses in PostgreSQL via a pgx connection pool.
type PostgresStore struct {
	pool          *pgxpool.Pool
	cfg           config.StorageConfig
	resumePreview int
	jobPreview    int
	logger        *errors.Logger
}

// NewPostgresStore connects to the database, verifies connectivity, and
// ensures the schema exists.
func NewPostgresStore(ctx context.Context, cfg config.StorageConfig, logger *errors.Logger) (*PostgresStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.DatabaseURL)
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to connect to database", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to ping database", err)
	}

	if _, err := pool.Exec(connectCtx, schema); err != nil {
		pool.Close()
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to ensure schema", err)
	}

	logger.Info("Connected to analysis store", "resume_preview", cfg.ResumePreview, "job_preview", cfg.JobPreview)

	return &PostgresStore{
		pool:          pool,
		cfg:           cfg,
		resumePreview: cfg.ResumePreview,
		jobPreview:    cfg.JobPreview,
		logger:        logger,
	}, nil
}

// SaveAnalysis writes a truncated copy of the inputs plus the full analysis
// document and returns the generated id.
func (s *PostgresStore) SaveAnalysis(ctx context.Context, record AnalysisRecord) (string, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	analysisJSON, err := json.Marshal(record.Analysis)
	if err != nil {
		return "", errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to marshal analysis", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(queryCtx,
		`INSERT INTO resume_analyses (resume_text, job_description, target_industry, analysis, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		truncate(record.ResumeText, s.resumePreview),
		truncate(record.JobDescription, s.jobPreview),
		record.TargetIndustry,
		analysisJSON,
		record.IPAddress,
		record.UserAgent,
	).Scan(&id)
	if err != nil {
		return "", errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to save analysis", err)
	}

	return id.String(), nil
}

// ListRecent returns the newest entries with score summaries and a short
// resume preview.
func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	rows, err := s.pool.Query(queryCtx,
		`SELECT id, resume_text, analysis, created_at
		 FROM resume_analyses
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to list analyses", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var (
			id           uuid.UUID
			resumeText   string
			analysisJSON []byte
			entry        HistoryEntry
		)
		if err := rows.Scan(&id, &resumeText, &analysisJSON, &entry.CreatedAt); err != nil {
			return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to scan analysis row", err)
		}

		var doc struct {
			OverallScore     int `json:"overallScore"`
			ATSScore         int `json:"atsScore"`
			ReadabilityScore int `json:"readabilityScore"`
			KeywordDensity   int `json:"keywordDensity"`
			IndustryFit      struct {
				DetectedIndustry string `json:"detectedIndustry"`
			} `json:"industryFit"`
			CompetitorComparison struct {
				Percentile int    `json:"percentile"`
				Benchmark  string `json:"benchmark"`
			} `json:"competitorComparison"`
		}
		if err := json.Unmarshal(analysisJSON, &doc); err != nil {
			s.logger.Warn("Skipping malformed analysis document", "id", id.String())
			continue
		}

		entry.ID = id.String()
		entry.OverallScore = doc.OverallScore
		entry.ATSScore = doc.ATSScore
		entry.ReadabilityScore = doc.ReadabilityScore
		entry.KeywordDensity = doc.KeywordDensity
		entry.Industry = doc.IndustryFit.DetectedIndustry
		entry.Percentile = doc.CompetitorComparison.Percentile
		entry.Benchmark = doc.CompetitorComparison.Benchmark
		entry.Preview = truncate(resumeText, previewLength)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError(errors.ErrCodeStorageFailed, "failed to read analysis rows", err)
	}

	return entries, nil
}

// Ping verifies database connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	queryCtx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
	defer cancel()

	if err := s.pool.Ping(queryCtx); err != nil {
		return errors.NewStorageError(errors.ErrCodeStorageFailed, "database unreachable", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

var _ Store = (*PostgresStore)(nil)
