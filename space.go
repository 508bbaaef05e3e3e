package colorblind

import (
	"log/slog"

	icolor "github.com/gogpu/colorblind/internal/color"
)

// Space binds the color functions to one gamma strategy.
//
// The package-level functions use a default Space with the accurate sRGB
// curve. Build another Space when a cheaper curve or a custom Curve is
// wanted. A Space is immutable and safe for concurrent use.
type Space struct {
	curve Curve

	// decode maps encoded bytes straight to linear values for RGB8 input.
	decode *icolor.DecodeTable
}

// std is the default Space behind the package-level functions.
var std = NewSpace()

// NewSpace creates a Space configured by opts.
func NewSpace(opts ...SpaceOption) *Space {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	curve := o.curve
	if curve == nil {
		curve = o.mode.Curve()
	}

	s := &Space{curve: curve}
	if _, ok := curve.(srgbCurve); ok {
		s.decode = icolor.SRGBTable
	} else {
		s.decode = icolor.NewDecodeTable(curve.Remove)
	}

	Logger().Debug("colorblind: space created", slog.Any("curve", curve))
	return s
}

// Default returns the Space used by the package-level functions.
func Default() *Space { return std }

// Curve returns the gamma strategy of s.
func (s *Space) Curve() Curve { return s.curve }

// ApplyGamma converts a linear color to gamma-encoded form.
func (s *Space) ApplyGamma(c RGB) RGB {
	return RGB{
		R: s.curve.Apply(c.R),
		G: s.curve.Apply(c.G),
		B: s.curve.Apply(c.B),
	}
}

// RemoveGamma converts a gamma-encoded color to linear form.
func (s *Space) RemoveGamma(c RGB) RGB {
	return RGB{
		R: s.curve.Remove(c.R),
		G: s.curve.Remove(c.G),
		B: s.curve.Remove(c.B),
	}
}

// Linear8 decodes an 8-bit gamma-encoded color to linear form through the
// lookup table of s.
func (s *Space) Linear8(c RGB8) RGB {
	return RGB{
		R: s.decode.Lookup(c.R),
		G: s.decode.Lookup(c.G),
		B: s.decode.Lookup(c.B),
	}
}
