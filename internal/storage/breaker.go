package storage

import (
	"context"

	"github.com/sony/gobreaker/v2"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

// BreakerStore decorates a Store with circuit breaker protection so a
// misbehaving database stops eating request latency. Persistence is
// best-effort, so an open breaker surfaces as a storage error the caller
// already tolerates.
type BreakerStore struct {
	inner Store
	save  *gobreaker.CircuitBreaker[string]
	list  *gobreaker.CircuitBreaker[[]HistoryEntry]
}

// NewBreakerStore wraps store with circuit breakers configured from cfg.
// Returns the store unwrapped when the breaker is disabled.
func NewBreakerStore(store Store, cfg config.CircuitBreakerConfig, logger *errors.Logger) Store {
	if !cfg.Enabled {
		return store
	}

	settings := func(name string) gobreaker.Settings {
		return gobreaker.Settings{
			Name:        name,
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= cfg.MinRequests &&
					failureRatio >= cfg.FailureThreshold
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String(),
					"max_requests", cfg.MaxRequests,
					"failure_threshold", cfg.FailureThreshold)
			},
		}
	}

	return &BreakerStore{
		inner: store,
		save:  gobreaker.NewCircuitBreaker[string](settings("Storage-Save")),
		list:  gobreaker.NewCircuitBreaker[[]HistoryEntry](settings("Storage-List")),
	}
}

func (b *BreakerStore) SaveAnalysis(ctx context.Context, record AnalysisRecord) (string, error) {
	return b.save.Execute(func() (string, error) {
		return b.inner.SaveAnalysis(ctx, record)
	})
}

func (b *BreakerStore) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	return b.list.Execute(func() ([]HistoryEntry, error) {
		return b.inner.ListRecent(ctx, limit)
	})
}

func (b *BreakerStore) Ping(ctx context.Context) error {
	return b.inner.Ping(ctx)
}

func (b *BreakerStore) Close() {
	b.inner.Close()
}

// Stats returns circuit breaker statistics for the stats endpoint.
func (b *BreakerStore) Stats() map[string]any {
	return map[string]any{
		"enabled": true,
		"save": map[string]any{
			"name":   b.save.Name(),
			"state":  b.save.State().String(),
			"counts": b.save.Counts(),
		},
		"list": map[string]any{
			"name":   b.list.Name(),
			"state":  b.list.State().String(),
			"counts": b.list.Counts(),
		},
	}
}

// IsHealthy returns true while the save path breaker is closed.
func (b *BreakerStore) IsHealthy() bool {
	return b.save.State() == gobreaker.StateClosed
}

var _ Store = (*BreakerStore)(nil)
