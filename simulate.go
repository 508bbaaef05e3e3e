package colorblind

// Matrix is a row-major 3×3 transform applied to linear RGB as new = M·old.
type Matrix [3][3]float32

// Apply returns m·c.
func (m Matrix) Apply(c RGB) RGB {
	return RGB{
		R: m[0][0]*c.R + m[0][1]*c.G + m[0][2]*c.B,
		G: m[1][0]*c.R + m[1][1]*c.G + m[1][2]*c.B,
		B: m[2][0]*c.R + m[2][1]*c.G + m[2][2]*c.B,
	}
}

// identityMatrix leaves colors unchanged.
var identityMatrix = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// Cone-response simulation coefficients, indexed by Impairment. From
// http://ixora.io/projects/colorblindness/color-blindness-simulation-research/
// These are data, not derived at runtime; keep every digit.
var deficiencyMatrices = [NumImpairments]Matrix{
	Unimpaired: identityMatrix,
	Protanopia: {
		{0.17055699213417, 0.82944301379913, 2.91188e-9},
		{0.17055699092998, 0.82944300785005, -5.98679e-10},
		{-0.00451714424166, 0.00451714427397, 1},
	},
	Deuteranopia: {
		{0.33066007266046, 0.66933992517563, 3.559314e-9},
		{0.33066007387760, 0.66933992719147, -1.758327e-9},
		{-0.02785538261323, 0.02785538252318, 1},
	},
	Tritanopia: {
		{1, 0.12739886310880, -0.12739886341072},
		{-4.486e-11, 0.87390929928361, 0.12609070101523},
		{3.1113e-10, 0.87390929725848, 0.12609070067115},
	},
}

// Matrix returns a copy of the linear transform for i. Unimpaired and
// unknown values return the identity.
func (i Impairment) Matrix() Matrix {
	if !i.simulates() {
		return identityMatrix
	}
	return deficiencyMatrices[i]
}

// Simulate applies the deficiency transform for i to a linear,
// normalized color. The result is not clamped and may leave [0, 1].
// Unimpaired and unknown impairments return c unchanged.
func Simulate(i Impairment, c RGB) RGB {
	if !i.simulates() {
		return c
	}
	return deficiencyMatrices[i].Apply(c)
}

// Simulate8 is Simulate for 8-bit colors that are already linear:
// normalize, transform, clamp, denormalize. No gamma is involved.
func Simulate8(i Impairment, c RGB8) RGB8 {
	if !i.simulates() {
		return c
	}
	return Simulate(i, c.Norm()).Clamp().Denorm()
}

// SimulateGamma simulates i on a gamma-encoded, normalized color:
// gamma is removed, the transform applied, the result clamped to [0, 1]
// and gamma reapplied.
func (s *Space) SimulateGamma(i Impairment, c RGB) RGB {
	if !i.simulates() {
		return c
	}
	return s.ApplyGamma(Simulate(i, s.RemoveGamma(c)).Clamp())
}

// SimulateGamma8 simulates i on an 8-bit gamma-encoded color, the form
// on-screen colors are stored in.
func (s *Space) SimulateGamma8(i Impairment, c RGB8) RGB8 {
	if !i.simulates() {
		return c
	}
	return s.ApplyGamma(Simulate(i, s.Linear8(c)).Clamp()).Denorm()
}

// SimulateGamma is Space.SimulateGamma on the default space.
func SimulateGamma(i Impairment, c RGB) RGB { return std.SimulateGamma(i, c) }

// SimulateGamma8 is Space.SimulateGamma8 on the default space.
func SimulateGamma8(i Impairment, c RGB8) RGB8 { return std.SimulateGamma8(i, c) }
