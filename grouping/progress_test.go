package grouping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgressWithNothingCompleted(t *testing.T) {
	t.Parallel()

	progress := NewProgress(100)

	completed, total, _, eta := progress.Snapshot()
	assert.Equal(t, 0, completed)
	assert.Equal(t, 100, total)
	assert.Equal(t, time.Duration(0), eta)
}

func TestProgressLinearExtrapolation(t *testing.T) {
	t.Parallel()

	progress := NewProgress(10)
	progress.start = time.Now().Add(-2 * time.Second)
	for i := 0; i < 5; i++ {
		progress.Advance()
	}

	completed, total, elapsed, eta := progress.Snapshot()
	assert.Equal(t, 5, completed)
	assert.Equal(t, 10, total)

	// Half done after ~2s, so roughly 2s remain.
	assert.InDelta(t, 2.0, elapsed.Seconds(), 0.5)
	assert.InDelta(t, 2.0, eta.Seconds(), 0.5)
}

func TestProgressETANeverNegative(t *testing.T) {
	t.Parallel()

	progress := NewProgress(3)
	progress.start = time.Now().Add(-time.Second)

	// More iterations completed than the total predicts.
	for i := 0; i < 6; i++ {
		progress.Advance()
	}

	_, _, _, eta := progress.Snapshot()
	assert.GreaterOrEqual(t, eta, time.Duration(0))
}
