package scanner

import "strings"

// IsImageFile checks if a file has one of the supported image
// extensions. The match is case-sensitive: only lowercase .jpg, .jpeg
// and .png names qualify.
func IsImageFile(path string) bool {
	return strings.HasSuffix(path, ".jpg") ||
		strings.HasSuffix(path, ".jpeg") ||
		strings.HasSuffix(path, ".png")
}
