package port

import (
	"context"
	"time"

	"passwordSecurityDemo/internal/core/domain"
)

// KeyValueStorage is a string store keyed by string. Get reports false when
// the key is absent.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type SnapshotStore interface {
	Save(ctx context.Context, snapshot domain.SimulationSnapshot) error
	Load(ctx context.Context) (*domain.SimulationSnapshot, bool)
	Clear(ctx context.Context) error
}

// Scheduler calls fn every interval until Stop. Start replaces any running
// schedule.
type Scheduler interface {
	Start(interval time.Duration, fn func())
	Stop()
}

type MetricsRecorder interface {
	StartCollection(runID string)
	RecordTick(runID string, attempts uint64)
	StopCollection(runID string) *domain.ResourceMetrics
}

type Clipboard interface {
	WriteText(text string) error
}
