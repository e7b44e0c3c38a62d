package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumelens/internal/config"
	"resumelens/internal/errors"
)

// fakeStore counts calls and fails on demand.
type fakeStore struct {
	failing   bool
	saveCalls int
	listCalls int
}

func (f *fakeStore) SaveAnalysis(ctx context.Context, record AnalysisRecord) (string, error) {
	f.saveCalls++
	if f.failing {
		return "", fmt.Errorf("save failed")
	}
	return "11111111-2222-3333-4444-555555555555", nil
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	f.listCalls++
	if f.failing {
		return nil, fmt.Errorf("list failed")
	}
	return []HistoryEntry{{ID: "a"}}, nil
}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }
func (f *fakeStore) Close()                         {}

func testBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

func testLogger() *errors.Logger {
	logger, err := errors.New("error")
	if err != nil {
		panic(err)
	}
	return logger
}

func TestNewBreakerStoreDisabledPassthrough(t *testing.T) {
	inner := &fakeStore{}
	cfg := testBreakerConfig()
	cfg.Enabled = false

	store := NewBreakerStore(inner, cfg, testLogger())

	assert.Same(t, Store(inner), store)
}

func TestBreakerStoreDelegates(t *testing.T) {
	inner := &fakeStore{}
	store := NewBreakerStore(inner, testBreakerConfig(), testLogger())

	id, err := store.SaveAnalysis(context.Background(), AnalysisRecord{ResumeText: "text"})
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", id)
	assert.Equal(t, 1, inner.saveCalls)

	entries, err := store.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBreakerStoreOpensAfterFailures(t *testing.T) {
	inner := &fakeStore{failing: true}
	store := NewBreakerStore(inner, testBreakerConfig(), testLogger()).(*BreakerStore)

	for range 5 {
		_, err := store.SaveAnalysis(context.Background(), AnalysisRecord{})
		assert.Error(t, err)
	}

	// Past the threshold the breaker stops calling through.
	assert.False(t, store.IsHealthy())
	callsBefore := inner.saveCalls
	_, err := store.SaveAnalysis(context.Background(), AnalysisRecord{})
	assert.Error(t, err)
	assert.Equal(t, callsBefore, inner.saveCalls)
}

func TestBreakerStoreStats(t *testing.T) {
	store := NewBreakerStore(&fakeStore{}, testBreakerConfig(), testLogger()).(*BreakerStore)

	stats := store.Stats()

	assert.Equal(t, true, stats["enabled"])
	save, ok := stats["save"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Storage-Save", save["name"])
	assert.Equal(t, "closed", save["state"])
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()

	_, err := store.SaveAnalysis(context.Background(), AnalysisRecord{})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeStorageDisabled, appErr.Code)

	_, err = store.ListRecent(context.Background(), 5)
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		max      int
		expected string
	}{
		{"shorter than max", "abc", 10, "abc"},
		{"exactly max", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 5, "abcde"},
		{"zero max keeps everything", "abcdefgh", 0, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.in, tt.max))
		})
	}
}
