package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"imagegrouper/types"
)

// DiscoverImages walks root recursively and returns an ImageRecord for
// every file with a supported image extension, sorted by path. The
// sorted order fixes the pair enumeration order, which makes the
// resulting groups deterministic. Entries that cannot be accessed are
// skipped.
func DiscoverImages(root string) ([]types.ImageRecord, error) {
	var records []types.ImageRecord

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip files that can't be accessed
		}
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if IsImageFile(path) {
			records = append(records, types.ImageRecord{Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})

	return records, nil
}
