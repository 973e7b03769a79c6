package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"passwordSecurityDemo/internal/core/domain"
	"passwordSecurityDemo/internal/port"
)

type run struct {
	metrics domain.ResourceMetrics
	stop    chan struct{}
}

// Collector samples process and host resources while a simulation run is
// active and counts the attempts it reports.
type Collector struct {
	mu             sync.RWMutex
	runs           map[string]*run
	updateInterval time.Duration
	reporter       *Reporter
	now            func() time.Time
}

var _ port.MetricsRecorder = (*Collector)(nil)

// NewCollector samples every interval. Finished runs go to reporter when it
// is not nil.
func NewCollector(interval time.Duration, reporter *Reporter) *Collector {
	return &Collector{
		runs:           make(map[string]*run),
		updateInterval: interval,
		reporter:       reporter,
		now:            time.Now,
	}
}

func (c *Collector) StartCollection(runID string) {
	now := c.now()
	r := &run{
		metrics: domain.ResourceMetrics{RunID: runID, StartedAt: now, LastUpdated: now},
		stop:    make(chan struct{}),
	}

	c.mu.Lock()
	if prev, ok := c.runs[runID]; ok {
		close(prev.stop)
	}
	c.runs[runID] = r
	c.mu.Unlock()

	go c.collect(runID, r.stop)
}

// RecordTick stores the cumulative attempt count of a run after a tick.
func (c *Collector) RecordTick(runID string, attempts uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.runs[runID]
	if !ok {
		return
	}
	now := c.now()
	r.metrics.Ticks++
	r.metrics.TotalAttempts = attempts
	if elapsed := now.Sub(r.metrics.StartedAt).Seconds(); elapsed > 0 {
		r.metrics.AttemptsPerSec = float64(attempts) / elapsed
	}
	r.metrics.LastUpdated = now
}

// StopCollection ends sampling and returns the final figures, or nil for an
// unknown run.
func (c *Collector) StopCollection(runID string) *domain.ResourceMetrics {
	c.mu.Lock()
	r, ok := c.runs[runID]
	if ok {
		close(r.stop)
		delete(c.runs, runID)
	}
	c.mu.Unlock()

	if !ok {
		return nil
	}
	final := r.metrics
	if c.reporter != nil {
		c.reporter.RecordRun(final)
	}
	return &final
}

// GetMetrics returns a copy of a live run's figures.
func (c *Collector) GetMetrics(runID string) *domain.ResourceMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if r, ok := c.runs[runID]; ok {
		m := r.metrics
		return &m
	}
	return nil
}

func (c *Collector) collect(runID string, stop <-chan struct{}) {
	ticker := time.NewTicker(c.updateInterval)
	defer ticker.Stop()

	for {
		c.sample(runID)

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func (c *Collector) sample(runID string) {
	// Zero interval compares against the previous call instead of blocking.
	cpuUsage, _ := cpu.Percent(0, false)
	vm, _ := mem.VirtualMemory()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.runs[runID]
	if !ok {
		return
	}
	if len(cpuUsage) > 0 {
		r.metrics.CPUUsage = cpuUsage[0]
	}
	if vm != nil {
		r.metrics.HostMemoryPct = vm.UsedPercent
	}
	r.metrics.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)
}
