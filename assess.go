package colorblind

// Assessment reports how a color pair fares against a guideline under
// every impairment.
type Assessment struct {
	Guideline Guideline

	// Values holds the metric value per impairment, indexed by Impairment.
	Values [NumImpairments]float32

	// Worst is the impairment with the least favorable value.
	Worst Impairment

	// Pass reports whether the worst value still meets the guideline.
	Pass bool
}

// Value returns the metric value under the worst impairment.
func (a Assessment) Value() float32 {
	return a.Values[a.Worst]
}

// Assess simulates the gamma-encoded colors a and b under every impairment,
// measures each pair with the metric of g and reports the worst case.
//
// For AtLeast guidelines the worst value is the smallest; for AtMost the
// largest. Ties keep the earlier impairment.
func (s *Space) Assess(g Guideline, a, b RGB) Assessment {
	c := g.Criterion()
	res := Assessment{Guideline: g, Worst: Unimpaired}

	for _, imp := range Impairments() {
		v := c.Metric.Between(
			s.Luminance(s.SimulateGamma(imp, a)),
			s.Luminance(s.SimulateGamma(imp, b)),
		)
		res.Values[imp] = v
		if imp != Unimpaired && worse(c.Comparison, v, res.Values[res.Worst]) {
			res.Worst = imp
		}
	}

	res.Pass = c.Comparison.Holds(res.Value(), c.Threshold)
	return res
}

// Assess is Space.Assess on the default space.
func Assess[C Color](g Guideline, a, b C) Assessment {
	return std.Assess(g, a.Norm(), b.Norm())
}

func worse(c Comparison, v, current float32) bool {
	if c == AtMost {
		return v > current
	}
	return v < current
}
