package imageprocessor

import (
	"fmt"
	"math/bits"
	"strings"
)

// Fingerprint is a fixed-length bit-vector summarizing an image's
// coarse visual structure. Bits are packed MSB-first into 64-bit
// words. Visually similar images yield fingerprints with a low
// Hamming distance.
type Fingerprint struct {
	words  []uint64
	length int
}

// NewFingerprint wraps packed hash words. length is the number of
// significant bits.
func NewFingerprint(words []uint64, length int) Fingerprint {
	return Fingerprint{words: words, length: length}
}

// BitLen returns the number of bits in the fingerprint.
func (f Fingerprint) BitLen() int {
	return f.length
}

// Distance returns the Hamming distance to other. A provider always
// produces equal-length fingerprints within a run; missing words on
// either side count as zero.
func (f Fingerprint) Distance(other Fingerprint) int {
	distance := 0
	for i, w := range f.words {
		var o uint64
		if i < len(other.words) {
			o = other.words[i]
		}
		distance += bits.OnesCount64(w ^ o)
	}
	for i := len(f.words); i < len(other.words); i++ {
		distance += bits.OnesCount64(other.words[i])
	}
	return distance
}

// String renders the fingerprint as a hexadecimal string for logging.
func (f Fingerprint) String() string {
	var sb strings.Builder
	for _, w := range f.words {
		fmt.Fprintf(&sb, "%016x", w)
	}
	return sb.String()
}
