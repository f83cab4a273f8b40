package imageprocessor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeGradientPNG writes a small gradient image so the average hash
// has structure to latch onto.
func writeGradientPNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(x * 8)})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLightProviderIdenticalImagesHaveZeroDistance(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")
	writeGradientPNG(t, first)
	writeGradientPNG(t, second)

	provider := &LightProvider{}
	fpFirst, err := provider.Fingerprint(first)
	require.NoError(t, err)
	fpSecond, err := provider.Fingerprint(second)
	require.NoError(t, err)

	assert.Equal(t, 64, fpFirst.BitLen())
	assert.Equal(t, 0, fpFirst.Distance(fpSecond))
}

func TestLightProviderCorruptImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0o644))

	_, err := (&LightProvider{}).Fingerprint(path)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, path, decodeErr.Path)
}

func TestLightProviderMissingFile(t *testing.T) {
	t.Parallel()

	_, err := (&LightProvider{}).Fingerprint(filepath.Join(t.TempDir(), "nope.png"))

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestNewProviderSelectsVariant(t *testing.T) {
	t.Parallel()

	assert.IsType(t, &DCTProvider{}, NewProvider(Options{}))
	assert.IsType(t, &LightProvider{}, NewProvider(Options{UseLightModel: true}))
}
