package imageprocessor

import (
	"os"

	"github.com/corona10/goimagehash"
	"github.com/disintegration/imaging"
)

// lightHashBits is the size of the average hash used by the light model.
const lightHashBits = 64

// LightProvider computes a 64-bit average hash on a pure-Go decode
// stack. It is the cheaper and smaller variant behind the
// --use_light_model flag and does not require OpenCV.
type LightProvider struct{}

// Fingerprint decodes the image, honoring EXIF orientation, and
// computes its average hash.
func (p *LightProvider) Fingerprint(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, newDecodeError(path, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return Fingerprint{}, newDecodeError(path, err)
	}

	hash, err := goimagehash.AverageHash(img)
	if err != nil {
		return Fingerprint{}, newDecodeError(path, err)
	}

	return NewFingerprint([]uint64{hash.GetHash()}, lightHashBits), nil
}
