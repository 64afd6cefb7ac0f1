package domain

import (
	"context"
	"time"
)

type Repository interface {
	// Dataset cache
	GetDataset(ctx context.Context, key string) (*Dataset, error)

	// Session management. BindSession stores the dataset if it is not cached
	// yet and releases whatever the session held before.
	BindSession(ctx context.Context, sessionID string, dataset *Dataset) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, *Dataset, error)
	DeleteSession(ctx context.Context, sessionID string) error
	PurgeExpired(ctx context.Context, now time.Time) int

	Stats(ctx context.Context) StoreStats
}

type StoreStats struct {
	Sessions int `json:"sessions"`
	Datasets int `json:"datasets"`
}
