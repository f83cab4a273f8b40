package imageprocessor

// Provider computes a perceptual fingerprint for an image file.
// Implementations must produce equal-length fingerprints for every
// image, with distance(x, x) = 0.
type Provider interface {
	Fingerprint(path string) (Fingerprint, error)
}

// Options selects the fingerprint variant.
type Options struct {
	// UseLightModel selects the cheaper 64-bit average hash instead
	// of the default 256-bit DCT perceptual hash.
	UseLightModel bool
}

// NewProvider returns the fingerprint provider for the given options.
func NewProvider(opts Options) Provider {
	if opts.UseLightModel {
		return &LightProvider{}
	}
	return &DCTProvider{}
}
