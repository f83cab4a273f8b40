package imageprocessor

import "fmt"

// DecodeError reports an image file that could not be read or decoded.
// It is fatal to a grouping run: comparisons against a missing
// fingerprint would produce a misleading partial group set.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode image %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to decode image %s", e.Path)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// newDecodeError creates a standardized error for image decode failures
func newDecodeError(path string, err error) error {
	return &DecodeError{Path: path, Err: err}
}
