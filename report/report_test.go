package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagegrouper/types"
)

func TestWriteCSVHeaderOnlyWhenNoGroups(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "groups.csv")
	require.NoError(t, WriteCSV(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Similarity Group,Image File,Similarity Index\n", string(data))
}

func TestWriteCSVRowsInGroupOrder(t *testing.T) {
	t.Parallel()

	groups := []*types.SimilarityGroup{
		{
			Label: "Similarity Group 1",
			Entries: []types.GroupEntry{
				{Image: "a.jpg", Score: 0.5},
				{Image: "c.jpg", Score: 0.5},
			},
		},
		{
			Label: "Similarity Group 2",
			Entries: []types.GroupEntry{
				{Image: "b.jpg", Score: 0.546875},
				{Image: "c.jpg", Score: 0.546875},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "groups.csv")
	require.NoError(t, WriteCSV(path, groups))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Similarity Group,Image File,Similarity Index\n"+
			"Similarity Group 1,a.jpg,0.5\n"+
			"Similarity Group 1,c.jpg,0.5\n"+
			"Similarity Group 2,b.jpg,0.546875\n"+
			"Similarity Group 2,c.jpg,0.546875\n",
		string(data))
}

func TestWriteCSVDuplicateAnchorEntriesSurvive(t *testing.T) {
	t.Parallel()

	groups := []*types.SimilarityGroup{
		{
			Label: "Similarity Group 1",
			Entries: []types.GroupEntry{
				{Image: "a.jpg", Score: 0.046875},
				{Image: "b.jpg", Score: 0.046875},
				{Image: "a.jpg", Score: 0.5},
				{Image: "c.jpg", Score: 0.5},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "groups.csv")
	require.NoError(t, WriteCSV(path, groups))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Similarity Group,Image File,Similarity Index\n"+
			"Similarity Group 1,a.jpg,0.046875\n"+
			"Similarity Group 1,b.jpg,0.046875\n"+
			"Similarity Group 1,a.jpg,0.5\n"+
			"Similarity Group 1,c.jpg,0.5\n",
		string(data))
}

func TestWriteCSVUnwritablePath(t *testing.T) {
	t.Parallel()

	err := WriteCSV(filepath.Join(t.TempDir(), "missing", "groups.csv"), nil)
	require.Error(t, err)
}
