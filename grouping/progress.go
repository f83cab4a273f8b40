package grouping

import (
	"sync"
	"time"
)

// Progress tracks completed outer iterations of the comparison loop
// against a fixed total and derives a linear-extrapolation ETA. It is
// purely observational and never influences the grouping outcome.
type Progress struct {
	mu        sync.Mutex
	total     int
	completed int
	start     time.Time
}

// NewProgress starts the wall clock for a run over total images.
func NewProgress(total int) *Progress {
	return &Progress{total: total, start: time.Now()}
}

// Advance records one completed outer iteration.
func (p *Progress) Advance() {
	p.mu.Lock()
	p.completed++
	p.mu.Unlock()
}

// Snapshot returns the completed count, the fixed total, the elapsed
// wall time, and the estimated time remaining. With nothing completed
// yet the ETA is reported as zero rather than dividing by zero.
func (p *Progress) Snapshot() (completed, total int, elapsed, eta time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed = time.Since(p.start)
	if p.completed > 0 {
		perItem := float64(elapsed) / float64(p.completed)
		eta = time.Duration(perItem*float64(p.total)) - elapsed
		if eta < 0 {
			eta = 0
		}
	}

	return p.completed, p.total, elapsed, eta
}
