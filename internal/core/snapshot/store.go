package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/pkg/validation"
	"passwordSecurityDemo/internal/port"
)

// Key is where the simulation view keeps its state.
const Key = "brute-force-simulation-state"

// record mirrors the stored JSON. Pointers tell a missing field from a zero
// one.
type record struct {
	IsRunning       *bool    `json:"isRunning" validate:"required"`
	Password        *string  `json:"password" validate:"required"`
	SelectedMethod  *string  `json:"selectedMethod" validate:"required,oneof=brute-force dictionary smart"`
	SpeedMultiplier *float64 `json:"speedMultiplier" validate:"required,gte=1"`
	AttemptNumber   *uint64  `json:"attemptNumber" validate:"required"`
	IsComplete      *bool    `json:"isComplete" validate:"required"`
}

// Store persists a single simulation snapshot. With no storage every call is
// a no-op.
type Store struct {
	storage port.KeyValueStorage
	key     string
	logger  *slog.Logger
}

var _ port.SnapshotStore = (*Store)(nil)

func NewStore(storage port.KeyValueStorage, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = Key
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{storage: storage, key: key, logger: logger.With(slog.String("key", key))}
}

// Save overwrites the stored snapshot.
func (s *Store) Save(ctx context.Context, snap domain.SimulationSnapshot) error {
	if s.storage == nil {
		return nil
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	return errors.Wrap(s.storage.Set(ctx, s.key, string(data)), "save snapshot")
}

// Load returns the stored snapshot. Unreadable or mis-shaped data is logged
// and reported as absent.
func (s *Store) Load(ctx context.Context) (*domain.SimulationSnapshot, bool) {
	if s.storage == nil {
		return nil, false
	}
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("snapshot read failed", slog.Any("error", err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	snap, err := decode(raw)
	if err != nil {
		s.logger.Warn("discarding stored snapshot", slog.Any("error", err))
		return nil, false
	}
	return snap, true
}

func (s *Store) Clear(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	return errors.Wrap(s.storage.Remove(ctx, s.key), "clear snapshot")
}

func decode(raw string) (*domain.SimulationSnapshot, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errors.Wrap(err, "decode snapshot")
	}
	if err := validation.Struct(rec); err != nil {
		return nil, err
	}
	return &domain.SimulationSnapshot{
		IsRunning:       *rec.IsRunning,
		Password:        *rec.Password,
		SelectedMethod:  domain.MethodID(*rec.SelectedMethod),
		SpeedMultiplier: *rec.SpeedMultiplier,
		AttemptNumber:   *rec.AttemptNumber,
		IsComplete:      *rec.IsComplete,
	}, nil
}
