package types

import "path/filepath"

// ImageRecord identifies an image file discovered under the search root.
// Records are immutable once discovered.
type ImageRecord struct {
	Path string
}

// DisplayName returns the base filename used in reports. It is not
// guaranteed unique across subdirectories.
func (r ImageRecord) DisplayName() string {
	return filepath.Base(r.Path)
}

// GroupEntry is a single (image, similarity index) row inside a group.
type GroupEntry struct {
	Image string
	Score float64
}

// SimilarityGroup holds the ordered entries collected for one anchor
// image. Entries may repeat: the anchor is re-appended for every
// qualifying partner.
type SimilarityGroup struct {
	Label   string
	Entries []GroupEntry
}
