package color

import "math"

// sRGB piecewise curve constants (IEC 61966-2-1).
const (
	srgbEncodeKnee = 0.0031308
	srgbDecodeKnee = 0.04045
	srgbSlope      = 12.92
	srgbScale      = 1.055
	srgbOffset     = 0.055
	srgbExponent   = 2.4

	// powerExponent is the display gamma of the pure power approximation.
	powerExponent = 2.2
)

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= srgbDecodeKnee {
		return s / srgbSlope
	}
	return float32(math.Pow(float64((s+srgbOffset)/srgbScale), srgbExponent))
}

// LinearToSRGB converts a linear component to sRGB (OETF - Opto-Electronic Transfer Function).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float32) float32 {
	if l <= srgbEncodeKnee {
		return l * srgbSlope
	}
	return srgbScale*float32(math.Pow(float64(l), 1.0/srgbExponent)) - srgbOffset
}

// PowerToLinear decodes with a plain 2.2 power curve.
// There is no linear toe, so negative inputs yield NaN.
func PowerToLinear(s float32) float32 {
	return float32(math.Pow(float64(s), powerExponent))
}

// LinearToPower encodes with a plain 1/2.2 power curve.
func LinearToPower(l float32) float32 {
	return float32(math.Pow(float64(l), 1.0/powerExponent))
}

// SquareToLinear decodes by squaring, the cheapest gamma 2.0 approximation.
func SquareToLinear(s float32) float32 {
	return s * s
}

// LinearToSquare encodes with a square root.
func LinearToSquare(l float32) float32 {
	return float32(math.Sqrt(float64(l)))
}
