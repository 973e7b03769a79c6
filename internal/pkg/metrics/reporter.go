package metrics

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"

	"passwordSecurityDemo/internal/core/domain"
)

// RunRecord is one line of the report: the final figures of a finished
// simulation run.
type RunRecord struct {
	ReportedAt time.Time `json:"reportedAt"`
	Elapsed    string    `json:"elapsed"`
	domain.ResourceMetrics
}

// Reporter buffers finished runs and appends them to a JSON-lines file, one
// run per line.
type Reporter struct {
	mu      sync.Mutex
	logFile *os.File
	pending []RunRecord
	now     func() time.Time
}

func NewReporter(logPath string) (*Reporter, error) {
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open metrics report %s", logPath)
	}

	return &Reporter{
		logFile: file,
		now:     time.Now,
	}, nil
}

func (r *Reporter) RecordRun(m domain.ResourceMetrics) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, RunRecord{
		ReportedAt:      r.now(),
		Elapsed:         m.LastUpdated.Sub(m.StartedAt).String(),
		ResourceMetrics: m,
	})
}

// Flush writes every pending run. Records that fail to encode stay pending.
func (r *Reporter) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	enc := json.NewEncoder(r.logFile)
	for len(r.pending) > 0 {
		if err := enc.Encode(r.pending[0]); err != nil {
			return errors.Wrapf(err, "write run %s", r.pending[0].RunID)
		}
		r.pending = r.pending[1:]
	}
	r.pending = nil
	return nil
}

func (r *Reporter) Close() error {
	if err := r.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush metrics")
	}
	return r.logFile.Close()
}
