package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"resumelens/internal/storage"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// getStorageCheckTimeout returns the configured storage check timeout,
// falling back to the general health check timeout
func (s *Server) getStorageCheckTimeout() time.Duration {
	if t := s.AppConfig.Observability.HealthCheck.StorageCheckTimeout; t > 0 {
		return t
	}
	return s.getHealthCheckTimeout()
}

// healthHandler provides a comprehensive health check endpoint including
// analysis engine and storage status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumelens",
		"version": s.Version,
	}

	// The engine is deterministic and in-process, so its health reduces to
	// whether it is wired up at all
	response["engine"] = map[string]any{
		"available": s.Engine != nil,
		"message":   "deterministic analysis engine",
	}

	storageStatus := s.checkStorageHealth()
	response["storage"] = storageStatus

	// Storage is best-effort for analyses but required for history, so an
	// unreachable database degrades the service instead of failing it
	if healthy, ok := storageStatus["healthy"].(bool); ok && !healthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkStorageHealth checks the health of the analysis store
func (s *Server) checkStorageHealth() map[string]any {
	storageStatus := map[string]any{
		"enabled": s.AppConfig.Storage.Enabled,
	}

	if !s.AppConfig.Storage.Enabled {
		storageStatus["healthy"] = true
		storageStatus["message"] = "analysis storage is disabled"
		return storageStatus
	}

	timeout := s.getStorageCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Store.Ping(ctx); err != nil {
		storageStatus["healthy"] = false
		storageStatus["error"] = fmt.Sprintf("database unreachable: %v", err)
	} else {
		storageStatus["healthy"] = true
		storageStatus["message"] = "database reachable"
	}

	if breaker, ok := s.Store.(*storage.BreakerStore); ok {
		storageStatus["circuit_breaker"] = breaker.Stats()
		if !breaker.IsHealthy() {
			storageStatus["healthy"] = false
		}
	}

	return storageStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumelens",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	// Add storage breaker stats
	if breaker, ok := s.Store.(*storage.BreakerStore); ok {
		response["storage_circuit_breaker"] = breaker.Stats()
	} else {
		response["storage_circuit_breaker"] = map[string]any{
			"enabled": false,
		}
	}

	response["analysis_config"] = map[string]any{
		"min_resume_chars": s.AppConfig.Analysis.MinResumeChars,
		"max_resume_chars": s.AppConfig.Analysis.MaxResumeChars,
		"history_limit":    s.AppConfig.Analysis.HistoryLimit,
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
