package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"resumelens/internal/observability"
	"resumelens/internal/storage"
	"resumelens/internal/types"
)

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if err := s.validateAnalyzeRequest(req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid analyze request", err.Error(), http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		input := types.AnalyzeResumeInput{
			ResumeText:     req.ResumeText,
			JobDescription: req.JobDescription,
			TargetIndustry: req.TargetIndustry,
		}

		// Run the analysis with observability
		metrics := om.GetMetrics()
		var result types.ResumeAnalysis
		err := metrics.TrackAnalysis(ctx, "resume", func(ctx context.Context) *observability.AnalysisOutcome {
			result = s.Engine.Analyze(input)
			return &observability.AnalysisOutcome{
				OverallScore: result.OverallScore,
				ATSScore:     result.ATSScore,
				Industry:     result.IndustryFit.DetectedIndustry,
			}
		}, om)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordResumeSize(ctx, len(req.ResumeText), om)

		// Persistence is best-effort. A storage failure degrades to a
		// temporary id rather than failing the analysis.
		id, saved := s.saveAnalysis(ctx, req, result, r, om)

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Int("analysis.overall_score", result.OverallScore),
			attribute.Bool("analysis.saved", saved))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("analysis.overall_score", result.OverallScore),
			attribute.Int("analysis.ats_score", result.ATSScore),
			attribute.String("analysis.industry", result.IndustryFit.DetectedIndustry),
			attribute.Bool("analysis.saved", saved),
		)

		w.Header().Set("Content-Type", "application/json")
		response := AnalyzeResponse{ID: id, Saved: saved, Analysis: result}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// validateAnalyzeRequest applies structural and length validation
func (s *Server) validateAnalyzeRequest(req AnalyzeRequest) error {
	if err := s.Validate.Struct(req); err != nil {
		return fmt.Errorf("resumeText field is required")
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return fmt.Errorf("resumeText field is required")
	}

	analysisCfg := s.AppConfig.Analysis
	if len(req.ResumeText) < analysisCfg.MinResumeChars {
		return fmt.Errorf("resumeText must be at least %d characters", analysisCfg.MinResumeChars)
	}
	if len(req.ResumeText) > analysisCfg.MaxResumeChars {
		return fmt.Errorf("resumeText exceeds the limit of %d characters", analysisCfg.MaxResumeChars)
	}

	return nil
}

// saveAnalysis persists the analysis and returns the stored id, falling back
// to a temporary id when storage is unavailable.
func (s *Server) saveAnalysis(ctx context.Context, req AnalyzeRequest, result types.ResumeAnalysis, r *http.Request, om *observability.ObservabilityManager) (string, bool) {
	metrics := om.GetMetrics()

	record := storage.AnalysisRecord{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		TargetIndustry: req.TargetIndustry,
		Analysis:       result,
		IPAddress:      getClientIP(r),
		UserAgent:      r.UserAgent(),
	}

	id, err := s.Store.SaveAnalysis(ctx, record)
	if err != nil {
		s.Logger.Warn("Failed to persist analysis, returning temporary id", "error", err.Error())
		metrics.RecordStorageOperation(ctx, "save", false, om)
		return fmt.Sprintf("temp-%d", time.Now().UnixMilli()), false
	}

	metrics.RecordStorageOperation(ctx, "save", true, om)
	return id, true
}

// createHistoryHandler wraps the history handler with observability
func (s *Server) createHistoryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.history")
		defer span.End()

		metrics := om.GetMetrics()

		if !s.AppConfig.Storage.Enabled {
			writeErrorResponse(w, "History unavailable", "analysis storage is disabled", http.StatusServiceUnavailable)
			return
		}

		limit := s.AppConfig.Analysis.HistoryLimit
		entries, err := s.Store.ListRecent(ctx, limit)
		if err != nil {
			span.RecordError(err)
			metrics.RecordStorageOperation(ctx, "list", false, om)
			metrics.RecordBusinessMetric(ctx, "history_listed", false, om)
			writeErrorResponse(w, "Failed to load history", err.Error(), http.StatusServiceUnavailable)
			return
		}

		metrics.RecordStorageOperation(ctx, "list", true, om)
		metrics.RecordBusinessMetric(ctx, "history_listed", true, om,
			attribute.Int("history.count", len(entries)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("history.count", len(entries)),
		)

		if entries == nil {
			entries = []storage.HistoryEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		response := map[string]any{
			"count":   len(entries),
			"history": entries,
		}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
