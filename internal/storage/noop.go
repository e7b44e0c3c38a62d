package storage

import (
	"context"

	"resumelens/internal/errors"
)

// NoopStore is used when persistence is disabled. Saves and listings fail
// with a storage-disabled error that callers map to degraded behavior.
type NoopStore struct{}

func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (*NoopStore) SaveAnalysis(context.Context, AnalysisRecord) (string, error) {
	return "", errors.NewStorageError(errors.ErrCodeStorageDisabled, "analysis storage is disabled", nil)
}

func (*NoopStore) ListRecent(context.Context, int) ([]HistoryEntry, error) {
	return nil, errors.NewStorageError(errors.ErrCodeStorageDisabled, "analysis storage is disabled", nil)
}

func (*NoopStore) Ping(context.Context) error {
	return errors.NewStorageError(errors.ErrCodeStorageDisabled, "analysis storage is disabled", nil)
}

func (*NoopStore) Close() {}

var _ Store = (*NoopStore)(nil)
