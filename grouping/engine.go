package grouping

import (
	"fmt"

	"imagegrouper/types"
)

// Engine assigns images to similarity groups. Grouping is per-anchor:
// the first qualifying edge found for an anchor opens a new
// sequentially labeled group, and every later qualifying edge for the
// same anchor appends to that group, re-appending the anchor entry
// each time. Groups from different anchors are never merged, even
// when they share images, so membership reflects per-anchor
// clustering rather than connected components.
type Engine struct {
	groups  []*types.SimilarityGroup
	current *types.SimilarityGroup
}

// NewEngine returns an empty grouping engine.
func NewEngine() *Engine {
	return &Engine{}
}

// StartAnchor begins a fresh anchor. The previous anchor's group, if
// one was opened, is closed permanently.
func (e *Engine) StartAnchor() {
	e.current = nil
}

// Observe records a qualifying edge between the current anchor and a
// partner image. Both display names are appended with the edge score.
func (e *Engine) Observe(anchor, partner types.ImageRecord, score float64) {
	if e.current == nil {
		e.current = &types.SimilarityGroup{
			Label: fmt.Sprintf("Similarity Group %d", len(e.groups)+1),
		}
		e.groups = append(e.groups, e.current)
	}

	e.current.Entries = append(e.current.Entries,
		types.GroupEntry{Image: anchor.DisplayName(), Score: score},
		types.GroupEntry{Image: partner.DisplayName(), Score: score},
	)
}

// Groups returns every group opened so far, in creation order.
func (e *Engine) Groups() []*types.SimilarityGroup {
	return e.groups
}
