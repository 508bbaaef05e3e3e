package colorblind

import (
	"fmt"

	icolor "github.com/gogpu/colorblind/internal/color"
)

// Curve is a gamma strategy: the transfer function between linear light
// and encoded (display) values for a single component.
//
// A Curve is fixed when a Space is built, so the hot paths call one
// implementation without branching on precision.
type Curve interface {
	// Apply encodes a linear component (linear → sRGB-like).
	Apply(linear float32) float32
	// Remove decodes an encoded component (sRGB-like → linear).
	Remove(encoded float32) float32
}

// GammaMode selects one of the built-in curves.
type GammaMode int

const (
	// GammaAccurate uses the piecewise sRGB curve (default).
	GammaAccurate GammaMode = iota

	// GammaFast approximates sRGB with a plain power of 2.2.
	// No linear segment near black; about twice as fast as GammaAccurate.
	GammaFast

	// GammaFastest approximates sRGB with square and square root.
	// Least accurate, no math.Pow at all.
	GammaFastest
)

// String returns the gamma mode name.
func (m GammaMode) String() string {
	switch m {
	case GammaAccurate:
		return "Accurate"
	case GammaFast:
		return "Fast"
	case GammaFastest:
		return "Fastest"
	default:
		return "Unknown"
	}
}

// Curve returns the strategy for m. Unknown modes fall back to the
// accurate sRGB curve.
func (m GammaMode) Curve() Curve {
	switch m {
	case GammaFast:
		return powerCurve{}
	case GammaFastest:
		return squareCurve{}
	default:
		return srgbCurve{}
	}
}

// ParseGammaMode resolves a mode name such as "fast", ignoring case.
func ParseGammaMode(name string) (GammaMode, error) {
	key := foldName(name)
	for _, m := range []GammaMode{GammaAccurate, GammaFast, GammaFastest} {
		if foldName(m.String()) == key {
			return m, nil
		}
	}
	return GammaAccurate, fmt.Errorf("colorblind: unknown gamma mode %q", name)
}

type srgbCurve struct{}

func (srgbCurve) Apply(x float32) float32  { return icolor.LinearToSRGB(x) }
func (srgbCurve) Remove(x float32) float32 { return icolor.SRGBToLinear(x) }
func (srgbCurve) String() string           { return "sRGB" }

type powerCurve struct{}

func (powerCurve) Apply(x float32) float32  { return icolor.LinearToPower(x) }
func (powerCurve) Remove(x float32) float32 { return icolor.PowerToLinear(x) }
func (powerCurve) String() string           { return "power 2.2" }

type squareCurve struct{}

func (squareCurve) Apply(x float32) float32  { return icolor.LinearToSquare(x) }
func (squareCurve) Remove(x float32) float32 { return icolor.SquareToLinear(x) }
func (squareCurve) String() string           { return "square" }

// ApplyGamma converts a linear color to sRGB using the default space.
func ApplyGamma(c RGB) RGB { return std.ApplyGamma(c) }

// RemoveGamma converts an sRGB color to linear using the default space.
func RemoveGamma(c RGB) RGB { return std.RemoveGamma(c) }

// ApplyGammaComponent encodes a single linear component with the default space.
func ApplyGammaComponent(x float32) float32 { return std.curve.Apply(x) }

// RemoveGammaComponent decodes a single sRGB component with the default space.
func RemoveGammaComponent(x float32) float32 { return std.curve.Remove(x) }
