package colorblind

// SpaceOption configures a Space during creation.
// Use functional options to customize Space behavior.
//
// Example:
//
//	// Default accurate sRGB curve
//	s := colorblind.NewSpace()
//
//	// Cheaper approximation for per-pixel work
//	s := colorblind.NewSpace(colorblind.WithGamma(colorblind.GammaFast))
type SpaceOption func(*spaceOptions)

// spaceOptions holds optional configuration for Space creation.
type spaceOptions struct {
	mode  GammaMode
	curve Curve
}

// defaultOptions returns the default space options.
func defaultOptions() spaceOptions {
	return spaceOptions{
		mode:  GammaAccurate,
		curve: nil, // Derived from mode if nil
	}
}

// WithGamma selects one of the built-in gamma curves.
func WithGamma(mode GammaMode) SpaceOption {
	return func(o *spaceOptions) {
		o.mode = mode
		o.curve = nil
	}
}

// WithCurve injects a custom gamma strategy, overriding WithGamma.
// A nil curve is ignored.
//
// Example:
//
//	type identity struct{}
//
//	func (identity) Apply(x float32) float32  { return x }
//	func (identity) Remove(x float32) float32 { return x }
//
//	s := colorblind.NewSpace(colorblind.WithCurve(identity{}))
func WithCurve(c Curve) SpaceOption {
	return func(o *spaceOptions) {
		if c != nil {
			o.curve = c
		}
	}
}
