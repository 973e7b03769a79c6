package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordSecurityDemo/internal/adapter/storage"
	"passwordSecurityDemo/internal/config"
	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/core/snapshot"
	"passwordSecurityDemo/internal/mocks"
	"passwordSecurityDemo/internal/pkg/metrics"
)

type simulatorFixture struct {
	sim   *Simulator
	sched *mocks.ManualScheduler
	store *snapshot.Store
	clock time.Time
}

func newFixture(t *testing.T) *simulatorFixture {
	t.Helper()
	f := &simulatorFixture{
		sched: mocks.NewManualScheduler(),
		store: snapshot.NewStore(storage.NewMemory(), snapshot.Key, nil),
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	f.sim = NewSimulator(f.sched, f.store, metrics.NewCollector(time.Hour, nil), nil, config.Default().Simulation)
	f.sim.now = func() time.Time { return f.clock }
	ids := 0
	f.sim.newRunID = func() string {
		ids++
		return "run-" + string(rune('0'+ids))
	}
	t.Cleanup(f.sim.Close)
	return f
}

func TestSimulator_CracksBruteForceAtTarget(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	before := f.sim.Progress()
	assert.Equal(t, uint64(17576), before.MaxAttempts)
	assert.Equal(t, "Less than a second", before.Estimate.TimeToCrack)
	assert.Equal(t, "aaa", before.Estimate.CurrentAttempt)

	require.NoError(t, f.sim.Start(ctx))
	assert.Equal(t, 16*time.Millisecond, f.sched.Interval())
	assert.Equal(t, 1, f.sched.Tick(10))

	p := f.sim.Progress()
	assert.True(t, p.IsComplete)
	assert.True(t, p.WasCracked)
	assert.False(t, p.IsRunning)
	assert.Equal(t, uint64(28), p.AttemptNumber)
	assert.Equal(t, "abc", p.CrackedAttempt)
	assert.Equal(t, "abc", p.Estimate.CurrentAttempt)
	assert.Equal(t, 100.0, p.Estimate.Progress)
	assert.False(t, f.sched.Active())
}

func TestSimulator_ProgressIsMonotonic(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "zzzz"))
	require.NoError(t, f.sim.SelectMethod(ctx, domain.MethodDictionary))
	require.NoError(t, f.sim.Start(ctx))

	last := -1.0
	for i := 1; i <= 10; i++ {
		require.Equal(t, 1, f.sched.Tick(1))
		p := f.sim.Progress()
		assert.Equal(t, uint64(i*160), p.AttemptNumber)
		assert.Greater(t, p.Estimate.Progress, last)
		assert.Less(t, p.Estimate.Progress, 100.0)
		last = p.Estimate.Progress
	}

	assert.Equal(t, 2847, f.sched.Tick(5000))
	p := f.sim.Progress()
	assert.True(t, p.WasCracked)
	assert.Equal(t, uint64(456975), p.AttemptNumber)
	assert.Equal(t, uint64(456976), p.MaxAttempts)
	assert.Equal(t, 100.0, p.Estimate.Progress)
}

func TestSimulator_CoincidentalMatch(t *testing.T) {
	tests := []struct {
		password string
		method   domain.MethodID
		attempt  uint64
	}{
		{password: "p@ssword", method: domain.MethodSmart, attempt: 14},
		{password: "admin!", method: domain.MethodDictionary, attempt: 46},
		{password: "password", method: domain.MethodDictionary, attempt: 0},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			require.NoError(t, f.sim.SetPassword(ctx, tt.password))
			require.NoError(t, f.sim.SelectMethod(ctx, tt.method))
			require.NoError(t, f.sim.Start(ctx))

			assert.Equal(t, 1, f.sched.Tick(3))
			p := f.sim.Progress()
			assert.True(t, p.WasCracked)
			assert.Equal(t, tt.attempt, p.AttemptNumber)
			assert.Equal(t, tt.password, p.Estimate.CurrentAttempt)
		})
	}
}

func TestSimulator_UnreachableRunsToCeiling(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "héllo"))
	require.NoError(t, f.sim.SetSpeedMultiplier(ctx, 100))
	require.NoError(t, f.sim.Start(ctx))

	f.sched.Tick(1000)
	p := f.sim.Progress()
	assert.True(t, p.IsComplete)
	assert.False(t, p.WasCracked)
	assert.Empty(t, p.CrackedAttempt)
	assert.Equal(t, uint64(656356768), p.MaxAttempts)
	assert.Equal(t, p.MaxAttempts, p.AttemptNumber)
	assert.Equal(t, 100.0, p.Estimate.Progress)
}

func TestSimulator_StartReplacesRun(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "zzzz"))
	require.NoError(t, f.sim.SelectMethod(ctx, domain.MethodDictionary))
	require.NoError(t, f.sim.Start(ctx))
	f.sched.Tick(3)
	stale := f.sched.Callback()

	require.NoError(t, f.sim.Start(ctx))
	assert.Equal(t, 2, f.sched.Starts())
	assert.Equal(t, uint64(0), f.sim.Progress().AttemptNumber)

	stale()
	assert.Equal(t, uint64(0), f.sim.Progress().AttemptNumber, "cancelled schedule ticked")

	f.sched.Tick(1)
	assert.Equal(t, uint64(160), f.sim.Progress().AttemptNumber)
	assert.Equal(t, "run-2", f.sim.Progress().RunID)
}

func TestSimulator_StopKeepsCounterAndSaves(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "zzzz"))
	require.NoError(t, f.sim.SelectMethod(ctx, domain.MethodDictionary))
	require.NoError(t, f.sim.Start(ctx))
	f.clock = f.clock.Add(time.Second)
	f.sched.Tick(4)

	f.sim.Stop(ctx)
	assert.False(t, f.sched.Active())

	p := f.sim.Progress()
	assert.False(t, p.IsRunning)
	assert.False(t, p.IsComplete)
	assert.Equal(t, uint64(640), p.AttemptNumber)
	assert.Equal(t, time.Second, p.Elapsed)

	snap, ok := f.store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, domain.SimulationSnapshot{
		Password:        "zzzz",
		SelectedMethod:  domain.MethodDictionary,
		SpeedMultiplier: 1,
		AttemptNumber:   640,
	}, *snap)
}

func TestSimulator_Reset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	baseline := f.sim.Progress().Estimate
	require.NoError(t, f.sim.Start(ctx))
	f.sched.Tick(1)
	require.True(t, f.sim.Progress().WasCracked)

	f.sim.Reset(ctx)
	p := f.sim.Progress()
	assert.Zero(t, p.AttemptNumber)
	assert.False(t, p.IsRunning)
	assert.False(t, p.IsComplete)
	assert.False(t, p.WasCracked)
	assert.Empty(t, p.CrackedAttempt)
	assert.Equal(t, baseline, p.Estimate)

	_, ok := f.store.Load(ctx)
	assert.False(t, ok, "snapshot not cleared")
}

func TestSimulator_ResumesRunningSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Save(ctx, domain.SimulationSnapshot{
		IsRunning:       true,
		Password:        "zzzz",
		SelectedMethod:  domain.MethodDictionary,
		SpeedMultiplier: 2,
		AttemptNumber:   320,
	}))

	require.NoError(t, f.sim.SetPassword(ctx, "zzzz"))
	p := f.sim.Progress()
	assert.True(t, p.IsRunning)
	assert.Equal(t, domain.MethodDictionary, p.Method)
	assert.Equal(t, 2.0, p.Speed)
	assert.Equal(t, uint64(320), p.AttemptNumber)

	f.sched.Tick(1)
	assert.Equal(t, uint64(640), f.sim.Progress().AttemptNumber)
}

func TestSimulator_ResumedCounterPastTarget(t *testing.T) {
	tests := []struct {
		name    string
		attempt uint64
	}{
		{"past target", 100},
		{"past ceiling", 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := newFixture(t)
			require.NoError(t, f.store.Save(ctx, domain.SimulationSnapshot{
				IsRunning:       true,
				Password:        "abc",
				SelectedMethod:  domain.MethodBruteForce,
				SpeedMultiplier: 1,
				AttemptNumber:   tt.attempt,
			}))

			require.NoError(t, f.sim.SetPassword(ctx, "abc"))
			f.sched.Tick(1)

			p := f.sim.Progress()
			assert.True(t, p.IsComplete)
			assert.True(t, p.WasCracked)
			assert.Equal(t, tt.attempt, p.AttemptNumber)
			assert.Equal(t, "abc", p.CrackedAttempt)
			assert.False(t, f.sched.Active())
		})
	}
}

func TestSimulator_RestoresCompletedSnapshot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Save(ctx, domain.SimulationSnapshot{
		Password:        "abc",
		SelectedMethod:  domain.MethodBruteForce,
		SpeedMultiplier: 1,
		AttemptNumber:   28,
		IsComplete:      true,
	}))

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	p := f.sim.Progress()
	assert.False(t, p.IsRunning)
	assert.True(t, p.IsComplete)
	assert.True(t, p.WasCracked)
	assert.Equal(t, 100.0, p.Estimate.Progress)
	assert.False(t, f.sched.Active())
}

func TestSimulator_IgnoresSnapshotForOtherPassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Save(ctx, domain.SimulationSnapshot{
		IsRunning:       true,
		Password:        "other",
		SelectedMethod:  domain.MethodSmart,
		SpeedMultiplier: 50,
		AttemptNumber:   999,
	}))

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	p := f.sim.Progress()
	assert.False(t, p.IsRunning)
	assert.Equal(t, domain.MethodBruteForce, p.Method)
	assert.Equal(t, 1.0, p.Speed)
	assert.Zero(t, p.AttemptNumber)

	snap, ok := f.store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "abc", snap.Password)
}

func TestSimulator_SettingsWhileRunning(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.sim.SetPassword(ctx, "zzzz"))
	require.NoError(t, f.sim.SelectMethod(ctx, domain.MethodDictionary))
	require.NoError(t, f.sim.Start(ctx))

	require.NoError(t, f.sim.SetSpeedMultiplier(ctx, 10))
	require.NoError(t, f.sim.SelectMethod(ctx, domain.MethodSmart))
	f.sched.Tick(1)

	p := f.sim.Progress()
	assert.Equal(t, uint64(160), p.AttemptNumber, "running plan changed")
	assert.Equal(t, domain.MethodDictionary, p.Method)
	assert.Equal(t, 1.0, p.Speed)

	assert.Equal(t, domain.MethodSmart, f.sim.Snapshot().SelectedMethod)
	assert.Equal(t, 10.0, f.sim.Snapshot().SpeedMultiplier)
}

func TestSimulator_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.ErrorIs(t, f.sim.Start(ctx), domain.ErrEmptyPassword)
	assert.ErrorIs(t, f.sim.SelectMethod(ctx, "rainbow"), domain.ErrUnknownMethod)
	assert.ErrorIs(t, f.sim.SetSpeedMultiplier(ctx, 0), domain.ErrInvalidSpeed)
	assert.ErrorIs(t, f.sim.SetSpeedMultiplier(ctx, 101), domain.ErrInvalidSpeed)
	assert.Equal(t, 0, f.sched.Starts())

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	require.NoError(t, f.sim.Start(ctx))
	f.sim.Close()
	assert.False(t, f.sched.Active())
	assert.ErrorIs(t, f.sim.Start(ctx), domain.ErrSimulatorClosed)
	assert.ErrorIs(t, f.sim.SetPassword(ctx, "abc"), domain.ErrSimulatorClosed)
}

func TestSimulator_OnUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	var updates []domain.SimulationProgress
	f.sim.OnUpdate(func(p domain.SimulationProgress) {
		// Reading back from the callback must not deadlock.
		_ = f.sim.Progress()
		updates = append(updates, p)
	})

	require.NoError(t, f.sim.SetPassword(ctx, "abc"))
	require.NoError(t, f.sim.Start(ctx))
	f.sched.Tick(1)

	require.Len(t, updates, 3)
	assert.False(t, updates[0].IsRunning)
	assert.True(t, updates[1].IsRunning)
	assert.True(t, updates[2].WasCracked)
}

func TestSimulator_WithoutStore(t *testing.T) {
	ctx := context.Background()
	sched := mocks.NewManualScheduler()
	sim := NewSimulator(sched, nil, nil, nil, config.SimulationConfig{})
	defer sim.Close()

	require.NoError(t, sim.SetPassword(ctx, "abc"))
	require.NoError(t, sim.Start(ctx))
	sched.Tick(1)
	assert.True(t, sim.Progress().WasCracked)
}
