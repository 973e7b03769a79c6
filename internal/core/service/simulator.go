package service

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/config"
	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/estimator"
	"passwordSecurityDemo/internal/port"
)

// Simulator animates an attack on one password. All state changes are
// serialised by mu; ticks from a cancelled schedule are ignored.
type Simulator struct {
	mu sync.Mutex

	scheduler port.Scheduler
	store     port.SnapshotStore
	metrics   port.MetricsRecorder
	logger    *slog.Logger
	cfg       config.SimulationConfig
	now       func() time.Time
	newRunID  func() string
	onUpdate  func(domain.SimulationProgress)

	password string
	method   domain.AttackMethod
	speed    float64
	plan     *plan
	estimate domain.AttackEstimate

	attempt        uint64
	running        bool
	complete       bool
	cracked        bool
	crackedAttempt string

	runID     string
	startedAt time.Time
	elapsed   time.Duration
	// Bumped whenever the schedule is cancelled.
	generation uint64
	closed     bool
}

// NewSimulator accepts a nil store or metrics recorder.
func NewSimulator(
	scheduler port.Scheduler,
	store port.SnapshotStore,
	metrics port.MetricsRecorder,
	logger *slog.Logger,
	cfg config.SimulationConfig,
) *Simulator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = config.Default().Simulation.TickInterval
	}
	method, err := domain.LookupMethod(domain.MethodID(cfg.DefaultMethod))
	if err != nil {
		method = domain.DefaultMethod()
	}
	speed := cfg.DefaultSpeed
	if speed < 1 {
		speed = 1
	}

	return &Simulator{
		scheduler: scheduler,
		store:     store,
		metrics:   metrics,
		logger:    logger.With(slog.String("component", "simulator")),
		cfg:       cfg,
		now:       time.Now,
		newRunID:  uuid.NewString,
		method:    method,
		speed:     speed,
		estimate:  estimator.EstimateAttack("", method, speed),
	}
}

// OnUpdate registers fn to receive progress after every change. fn runs
// outside the simulator's lock.
func (s *Simulator) OnUpdate(fn func(domain.SimulationProgress)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = fn
}

// SetPassword cancels any run and targets password. A stored snapshot for
// the same password restores its method, speed, counter and flags, and a
// snapshot saved mid-run resumes from its counter.
func (s *Simulator) SetPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSimulatorClosed
	}

	s.cancelLocked("password changed")
	s.password = password
	s.clearRunLocked()

	resume := false
	if password != "" {
		if snap, ok := s.loadSnapshot(ctx); ok && snap.Password == password {
			s.restoreLocked(snap)
			resume = snap.IsRunning
		}
	}

	if err := s.replanLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.complete && s.plan != nil && s.plan.reachable && s.attempt >= s.plan.target {
		s.cracked = true
		s.crackedAttempt = password
		s.estimate.CurrentAttempt = password
	}
	if resume {
		s.startLocked(s.attempt)
		s.logger.Info("resumed simulation", slog.String("runId", s.runID), slog.Uint64("attempt", s.attempt))
	}
	s.saveLocked(ctx)
	s.notifyUnlock()
	return nil
}

// SelectMethod applies to the next run; a running simulation keeps the
// method it started with.
func (s *Simulator) SelectMethod(ctx context.Context, id domain.MethodID) error {
	method, err := domain.LookupMethod(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.method = method
	if !s.running {
		if err := s.replanLocked(); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.saveLocked(ctx)
	s.notifyUnlock()
	return nil
}

// SetSpeedMultiplier accepts values from 1 to the configured maximum. Like
// SelectMethod it applies to the next run.
func (s *Simulator) SetSpeedMultiplier(ctx context.Context, speed float64) error {
	if math.IsNaN(speed) || speed < 1 || (s.cfg.MaxSpeed > 0 && speed > s.cfg.MaxSpeed) {
		return domain.ErrInvalidSpeed
	}

	s.mu.Lock()
	s.speed = speed
	if !s.running {
		if err := s.replanLocked(); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.saveLocked(ctx)
	s.notifyUnlock()
	return nil
}

// Start begins a fresh run from attempt 0, replacing any run in progress.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSimulatorClosed
	}
	if s.password == "" {
		s.mu.Unlock()
		return domain.ErrEmptyPassword
	}

	s.cancelLocked("restarted")
	if err := s.replanLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.clearRunLocked()
	s.startLocked(0)
	s.logger.Info("simulation started",
		slog.String("runId", s.runID),
		slog.String("method", string(s.method.ID)),
		slog.Float64("speed", s.speed),
		slog.Uint64("ceiling", s.plan.ceiling),
		slog.Uint64("batch", s.plan.batch),
	)
	s.saveLocked(ctx)
	s.notifyUnlock()
	return nil
}

// Stop pauses the run, keeping the counter.
func (s *Simulator) Stop(ctx context.Context) {
	s.mu.Lock()
	wasRunning := s.running
	s.cancelLocked("stopped")
	if wasRunning {
		s.saveLocked(ctx)
	}
	s.notifyUnlock()
}

// Reset cancels any run, zeroes the counter, clears the flags and the stored
// snapshot, and recomputes the estimate.
func (s *Simulator) Reset(ctx context.Context) {
	s.mu.Lock()
	s.cancelLocked("reset")
	s.clearRunLocked()
	if s.store != nil {
		if err := s.store.Clear(ctx); err != nil {
			s.logger.Warn("clear snapshot failed", slog.Any("error", err))
		}
	}
	if err := s.replanLocked(); err != nil {
		s.logger.Warn("recompute estimate failed", slog.Any("error", err))
	}
	s.notifyUnlock()
}

// Close cancels any run for good. Later calls to SetPassword and Start fail.
func (s *Simulator) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked("closed")
	s.closed = true
	s.onUpdate = nil
}

func (s *Simulator) Progress() domain.SimulationProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progressLocked()
}

// Snapshot is the state that would be persisted now.
func (s *Simulator) Snapshot() domain.SimulationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulator) startLocked(from uint64) {
	s.attempt = from
	s.running = true
	s.complete = false
	s.cracked = false
	s.crackedAttempt = ""
	s.runID = s.newRunID()
	s.startedAt = s.now()
	s.elapsed = 0

	s.generation++
	gen := s.generation
	if s.metrics != nil {
		s.metrics.StartCollection(s.runID)
	}
	s.scheduler.Start(s.cfg.TickInterval, func() { s.tick(gen) })
}

func (s *Simulator) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || !s.running {
		s.mu.Unlock()
		return
	}

	p := s.plan
	if p.reachable && s.attempt >= p.target {
		// A restored counter may already be past the target.
		s.estimate.CurrentAttempt = s.password
		s.finishLocked(true)
		s.notifyUnlock()
		return
	}
	if s.attempt >= p.ceiling {
		s.finishLocked(false)
		s.notifyUnlock()
		return
	}

	end := min(addSat(s.attempt, p.batch), p.ceiling)
	if hit, ok := p.firstHit(s.attempt, end); ok {
		s.attempt = hit
		s.estimate.CurrentAttempt = s.password
		s.finishLocked(true)
		s.notifyUnlock()
		return
	}

	s.attempt = end
	s.estimate.CurrentAttempt = p.generator.Attempt(end - 1)
	s.estimate.Progress = p.progress(s.attempt)
	if s.metrics != nil {
		s.metrics.RecordTick(s.runID, s.attempt)
	}
	if s.attempt >= p.ceiling {
		s.finishLocked(false)
	}
	s.notifyUnlock()
}

// finishLocked ends the run, on a match when cracked is set, otherwise at
// the ceiling.
func (s *Simulator) finishLocked(cracked bool) {
	s.elapsed = s.now().Sub(s.startedAt)
	s.running = false
	s.complete = true
	s.cracked = cracked
	s.estimate.Progress = 100
	if cracked {
		s.crackedAttempt = s.password
	}

	s.generation++
	s.scheduler.Stop()

	attrs := []any{
		slog.String("runId", s.runID),
		slog.Uint64("attempt", s.attempt),
		slog.Duration("elapsed", s.elapsed),
	}
	if s.metrics != nil {
		s.metrics.RecordTick(s.runID, s.attempt)
		if m := s.metrics.StopCollection(s.runID); m != nil {
			attrs = append(attrs, slog.Int64("ticks", m.Ticks), slog.Float64("cpu", m.CPUUsage))
		}
	}
	if cracked {
		s.logger.Info("password cracked", attrs...)
	} else {
		s.logger.Info("attempt limit reached", attrs...)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.storeTimeout())
	defer cancel()
	s.saveLocked(ctx)
}

// cancelLocked stops the schedule. It is a no-op when nothing runs.
func (s *Simulator) cancelLocked(reason string) {
	if !s.running {
		return
	}
	s.generation++
	s.scheduler.Stop()
	s.running = false
	s.elapsed = s.now().Sub(s.startedAt)
	if s.metrics != nil {
		s.metrics.StopCollection(s.runID)
	}
	s.logger.Info("simulation stopped",
		slog.String("runId", s.runID),
		slog.String("reason", reason),
		slog.Uint64("attempt", s.attempt),
	)
}

func (s *Simulator) clearRunLocked() {
	s.attempt = 0
	s.complete = false
	s.cracked = false
	s.crackedAttempt = ""
	s.runID = ""
	s.elapsed = 0
}

func (s *Simulator) restoreLocked(snap *domain.SimulationSnapshot) {
	if method, err := domain.LookupMethod(snap.SelectedMethod); err == nil {
		s.method = method
	}
	if snap.SpeedMultiplier >= 1 {
		s.speed = snap.SpeedMultiplier
	}
	s.attempt = snap.AttemptNumber
	s.complete = snap.IsComplete
}

// replanLocked recomputes the estimate and ceiling for the current settings.
func (s *Simulator) replanLocked() error {
	if s.password == "" {
		s.plan = nil
		s.estimate = estimator.EstimateAttack("", s.method, s.speed)
		return nil
	}
	p, err := newPlan(s.password, s.method, s.speed, s.cfg.TickInterval)
	if err != nil {
		return errors.Wrap(err, "plan simulation")
	}
	s.plan = p
	s.estimate = p.estimate
	if s.complete {
		s.estimate.Progress = 100
	} else {
		s.estimate.Progress = p.progress(s.attempt)
	}
	return nil
}

func (s *Simulator) loadSnapshot(ctx context.Context) (*domain.SimulationSnapshot, bool) {
	if s.store == nil {
		return nil, false
	}
	return s.store.Load(ctx)
}

func (s *Simulator) saveLocked(ctx context.Context) {
	if s.store == nil || s.password == "" {
		return
	}
	if err := s.store.Save(ctx, s.snapshotLocked()); err != nil {
		s.logger.Warn("save snapshot failed", slog.Any("error", err))
	}
}

func (s *Simulator) snapshotLocked() domain.SimulationSnapshot {
	return domain.SimulationSnapshot{
		IsRunning:       s.running,
		Password:        s.password,
		SelectedMethod:  s.method.ID,
		SpeedMultiplier: s.speed,
		AttemptNumber:   s.attempt,
		IsComplete:      s.complete,
	}
}

func (s *Simulator) progressLocked() domain.SimulationProgress {
	p := domain.SimulationProgress{
		RunID:          s.runID,
		Password:       s.password,
		Method:         s.method.ID,
		Speed:          s.speed,
		Estimate:       s.estimate,
		AttemptNumber:  s.attempt,
		IsRunning:      s.running,
		IsComplete:     s.complete,
		WasCracked:     s.cracked,
		CrackedAttempt: s.crackedAttempt,
		Elapsed:        s.elapsed,
	}
	if s.plan != nil {
		p.MaxAttempts = s.plan.ceiling
	}
	if s.running {
		p.Method = s.plan.method.ID
		p.Speed = s.plan.speed
		p.Elapsed = s.now().Sub(s.startedAt)
	}
	return p
}

// notifyUnlock releases mu and then reports the new state.
func (s *Simulator) notifyUnlock() {
	fn := s.onUpdate
	var p domain.SimulationProgress
	if fn != nil {
		p = s.progressLocked()
	}
	s.mu.Unlock()
	if fn != nil {
		fn(p)
	}
}

func (s *Simulator) storeTimeout() time.Duration {
	if s.cfg.StoreTimeout > 0 {
		return s.cfg.StoreTimeout
	}
	return config.Default().Simulation.StoreTimeout
}
