package grouping

// NormalizeDistance converts a raw Hamming distance between two
// fingerprints of bitLen bits into a similarity index in [0, 1],
// where 0 means identical and 1 means maximally dissimilar.
func NormalizeDistance(raw, bitLen int) float64 {
	return float64(raw) / float64(bitLen)
}
