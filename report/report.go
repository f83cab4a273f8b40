package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"imagegrouper/types"
)

// header matches the report layout consumed downstream.
var header = []string{"Similarity Group", "Image File", "Similarity Index"}

// WriteCSV writes one row per group entry, in group creation order,
// preceded by the header row. The file is created here, after all
// comparison work has finished, so an aborted run never leaves a
// partial report behind.
func WriteCSV(path string, groups []*types.SimilarityGroup) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	w.Write(header)
	for _, group := range groups {
		for _, entry := range group.Entries {
			w.Write([]string{
				group.Label,
				entry.Image,
				strconv.FormatFloat(entry.Score, 'g', -1, 64),
			})
		}
	}
	w.Flush()

	err = w.Error()
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}

	return nil
}
