package imageprocessor

import (
	"image"
	"math"
	"sort"

	"gocv.io/x/gocv"
)

const (
	// dctSampleSide is the side the image is resized to before the DCT.
	dctSampleSide = 64
	// dctHashSide is the side of the low-frequency DCT block kept for
	// the hash: 16x16 coefficients = 256 bits.
	dctHashSide = 16
)

// DCTProvider computes a 256-bit DCT-based perceptual hash using
// OpenCV. It is the default fingerprint variant.
type DCTProvider struct{}

// Fingerprint loads the image in grayscale and computes its hash.
func (p *DCTProvider) Fingerprint(path string) (Fingerprint, error) {
	img := gocv.IMRead(path, gocv.IMReadGrayScale)
	if img.Empty() {
		return Fingerprint{}, newDecodeError(path, nil)
	}
	defer img.Close()

	return computeDCTHash(img), nil
}

// computeDCTHash computes a DCT-based perceptual hash for the image
func computeDCTHash(img gocv.Mat) Fingerprint {
	// Resize before the transform
	resized := gocv.NewMat()
	defer resized.Close()

	gocv.Resize(img, &resized, image.Point{X: dctSampleSide, Y: dctSampleSide}, 0, 0, gocv.InterpolationLinear)

	// Convert to float for DCT
	floatImg := gocv.NewMat()
	defer floatImg.Close()
	resized.ConvertTo(&floatImg, gocv.MatTypeCV32F)

	// Apply DCT
	dct := gocv.NewMat()
	defer dct.Close()

	gocv.DCT(floatImg, &dct, 0)
	if dct.Empty() {
		// Fall back to custom DCT implementation
		dct = applyDCT(floatImg)
	}

	// Extract the low frequency components
	lowFreq := dct.Region(image.Rect(0, 0, dctHashSide, dctHashSide))
	defer lowFreq.Close()

	values := make([]float32, 0, dctHashSide*dctHashSide)
	for y := 0; y < lowFreq.Rows(); y++ {
		for x := 0; x < lowFreq.Cols(); x++ {
			values = append(values, lowFreq.GetFloatAt(y, x))
		}
	}

	median := calculateMedian(values)

	// One bit per coefficient, set when at or above the median
	words := make([]uint64, (len(values)+63)/64)
	for i, v := range values {
		if v >= median {
			words[i/64] |= 1 << (63 - uint(i%64))
		}
	}

	return NewFingerprint(words, len(values))
}

// applyDCT applies a Discrete Cosine Transform to an image
// Simplified implementation when OpenCV's DCT is not available
func applyDCT(img gocv.Mat) gocv.Mat {
	rows, cols := img.Rows(), img.Cols()
	result := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV32F)

	for u := 0; u < rows; u++ {
		for v := 0; v < cols; v++ {
			sum := float32(0.0)
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					// DCT-II formula
					cosU := float32(math.Cos(float64(math.Pi*float64(u)*(2*float64(i)+1)) / (2 * float64(rows))))
					cosV := float32(math.Cos(float64(math.Pi*float64(v)*(2*float64(j)+1)) / (2 * float64(cols))))
					sum += img.GetFloatAt(i, j) * cosU * cosV
				}
			}

			// Apply scaling factors
			scaleU := float32(1.0)
			if u == 0 {
				scaleU = 1.0 / float32(math.Sqrt(2.0))
			}

			scaleV := float32(1.0)
			if v == 0 {
				scaleV = 1.0 / float32(math.Sqrt(2.0))
			}

			scaleFactor := (2.0 * scaleU * scaleV) / float32(math.Sqrt(float64(rows*cols)))
			result.SetFloatAt(u, v, sum*scaleFactor)
		}
	}

	return result
}

// calculateMedian calculates the median value of a float32 array
func calculateMedian(values []float32) float32 {
	// Make a copy to avoid modifying the original slice
	valuesCopy := make([]float32, len(values))
	copy(valuesCopy, values)

	sort.Slice(valuesCopy, func(i, j int) bool {
		return valuesCopy[i] < valuesCopy[j]
	})

	length := len(valuesCopy)
	if length == 0 {
		return 0
	} else if length%2 == 0 {
		return (valuesCopy[length/2-1] + valuesCopy[length/2]) / 2
	}
	return valuesCopy[length/2]
}
