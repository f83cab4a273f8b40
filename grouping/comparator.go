package grouping

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"imagegrouper/imageprocessor"
	"imagegrouper/logging"
	"imagegrouper/types"
)

// Options configures a comparison run.
type Options struct {
	// Threshold is the minimum similarity index for a pair to join a
	// group.
	Threshold float64
	// BatchSize is the number of fingerprints computed concurrently
	// during the precompute phase. 1 computes them sequentially.
	BatchSize int
	// Verbose streams per-pair similarity indices and per-image
	// progress lines to stdout.
	Verbose bool
}

// Comparator enumerates every unordered pair of discovered images
// exactly once, in row-major order over the discovery order, and
// feeds qualifying edges to the grouping engine.
type Comparator struct {
	provider imageprocessor.Provider
	opts     Options
}

// NewComparator returns a comparator backed by the given fingerprint
// provider.
func NewComparator(provider imageprocessor.Provider, opts Options) *Comparator {
	if opts.BatchSize < 1 {
		opts.BatchSize = 1
	}
	return &Comparator{provider: provider, opts: opts}
}

// Run fingerprints every image once, then walks the N(N-1)/2 pairs
// and emits qualifying edges to engine. Progress advances once per
// outer index, not once per pair, and the context is checked once per
// outer iteration so long runs stay interruptible. The first
// fingerprint failure aborts the whole run.
func (c *Comparator) Run(ctx context.Context, records []types.ImageRecord, engine *Engine, progress *Progress) error {
	fingerprints, err := c.computeFingerprints(ctx, records)
	if err != nil {
		return err
	}

	for i := range records {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("comparison interrupted: %w", err)
		}

		engine.StartAnchor()
		for j := i + 1; j < len(records); j++ {
			distance := fingerprints[i].Distance(fingerprints[j])
			score := NormalizeDistance(distance, fingerprints[i].BitLen())

			logging.DebugLog("similarity index between %s and %s: %v", records[i].Path, records[j].Path, score)
			if c.opts.Verbose {
				fmt.Printf("Similarity index between %s and %s: %v\n", records[i].Path, records[j].Path, score)
			}

			if score >= c.opts.Threshold {
				engine.Observe(records[i], records[j], score)
			}
		}

		progress.Advance()
		if c.opts.Verbose {
			completed, total, elapsed, eta := progress.Snapshot()
			fmt.Printf("Progress: %d/%d, Elapsed Time: %.2fs, ETA: %.2fs\n",
				completed, total, elapsed.Seconds(), eta.Seconds())
		}
	}

	return nil
}

// computeFingerprints hashes every image exactly once, up to
// BatchSize at a time, failing fast on the first error. Results land
// in a position-indexed slice so the pair loop sees the canonical
// discovery order regardless of completion order.
func (c *Comparator) computeFingerprints(ctx context.Context, records []types.ImageRecord) ([]imageprocessor.Fingerprint, error) {
	fingerprints := make([]imageprocessor.Fingerprint, len(records))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(c.opts.BatchSize)

	for i, record := range records {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			fp, err := c.provider.Fingerprint(record.Path)
			if err != nil {
				logging.LogImageProcessed(record.Path, false, err.Error())
				return err
			}

			logging.LogImageProcessed(record.Path, true, "")
			logging.DebugLog("fingerprint for %s: %s", record.Path, fp)
			fingerprints[i] = fp
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return fingerprints, nil
}
