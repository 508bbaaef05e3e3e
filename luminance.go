package colorblind

// ITU-R BT.709 luminance weights.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Luminance returns the relative luminance of the gamma-encoded color c:
// gamma is removed from each component, then the BT.709 weights applied.
// The result is in [0, 1] for components in [0, 1].
func (s *Space) Luminance(c RGB) float32 {
	return weigh(s.RemoveGamma(c))
}

// Luminance8 is Luminance for 8-bit input. It decodes through the lookup
// table of s and agrees with Luminance(c.Norm()) exactly.
func (s *Space) Luminance8(c RGB8) float32 {
	return weigh(s.Linear8(c))
}

func weigh(lin RGB) float32 {
	return lumaR*lin.R + lumaG*lin.G + lumaB*lin.B
}

// Luminance returns the relative luminance of c using the default space.
func Luminance[C Color](c C) float32 {
	return c.luminance(std)
}
