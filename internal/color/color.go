// Package color holds the scalar transfer functions and lookup tables
// behind colorblind's gamma strategies.
//
// Every function here works on a single channel. Whole-colour types live
// in the root package; this package only knows about float32 and uint8.
package color

// Normalize maps an 8-bit channel [0,255] to float32 [0,1].
func Normalize(v uint8) float32 {
	return float32(v) / 255.0
}

// Denormalize maps a float32 channel [0,1] to 8 bits with rounding.
//
// The input is not clamped. Values outside [0,1] produce an
// implementation-dependent byte; callers clamp first when that matters.
func Denormalize(v float32) uint8 {
	return uint8(v*255.0 + 0.5)
}

// Clamp01 restricts v to the [0,1] range.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
