package colorblind

import (
	"errors"
	"fmt"
)

// ErrUnknownGuideline is returned by ParseGuideline for unrecognized names.
var ErrUnknownGuideline = errors.New("colorblind: unknown guideline")

// Comparison is the sense in which a metric value must relate to a
// guideline threshold.
type Comparison int

const (
	// AtLeast passes when value >= threshold.
	AtLeast Comparison = iota
	// AtMost passes when value <= threshold.
	AtMost
)

// String returns the comparison operator.
func (c Comparison) String() string {
	switch c {
	case AtLeast:
		return ">="
	case AtMost:
		return "<="
	default:
		return "?"
	}
}

// Holds reports whether v satisfies the comparison against threshold.
// NaN never holds.
func (c Comparison) Holds(v, threshold float32) bool {
	switch c {
	case AtLeast:
		return v >= threshold
	case AtMost:
		return v <= threshold
	default:
		return false
	}
}

// Criterion describes one accessibility guideline.
type Criterion struct {
	Source     string // Standard, e.g. "WCAG"
	Metric     Metric
	Rating     string // Level within the standard, e.g. "AA"
	Comparison Comparison
	Threshold  float32
}

// Guideline identifies an entry of the guideline table.
type Guideline int

const (
	ISO9241ContrastRatioPass Guideline = iota
	WCAGContrastAALarge
	WCAGContrastAAALarge
	WCAGContrastAA
	WCAGContrastAAA
	ISO9241ContrastModulationPass
)

// NumGuidelines is the number of entries in the guideline table.
const NumGuidelines = 6

var guidelines = [NumGuidelines]Criterion{
	ISO9241ContrastRatioPass:      {"ISO9241_3", MetricContrastRatio, "Pass", AtLeast, 3.0},
	WCAGContrastAALarge:           {"WCAG", MetricContrast, "AALarge", AtLeast, 4.0},
	WCAGContrastAAALarge:          {"WCAG", MetricContrast, "AAALarge", AtLeast, 4.5},
	WCAGContrastAA:                {"WCAG", MetricContrast, "AA", AtLeast, 4.5},
	WCAGContrastAAA:               {"WCAG", MetricContrast, "AAA", AtLeast, 7.0},
	ISO9241ContrastModulationPass: {"ISO9241_3", MetricContrastModulation, "Pass", AtLeast, 0.5},
}

// Valid reports whether g is an entry of the table.
func (g Guideline) Valid() bool {
	return g >= 0 && g < NumGuidelines
}

// Criterion returns the table entry for g. Invalid guidelines return
// a zero Criterion whose Metric is unknown, so it never passes.
func (g Guideline) Criterion() Criterion {
	if !g.Valid() {
		return Criterion{Metric: -1, Comparison: -1}
	}
	return guidelines[g]
}

// Metric returns the contrast metric g is measured with.
func (g Guideline) Metric() Metric { return g.Criterion().Metric }

// Threshold returns the pass threshold of g.
func (g Guideline) Threshold() float32 { return g.Criterion().Threshold }

// Passes reports whether a metric value meets g.
func (g Guideline) Passes(v float32) bool {
	c := g.Criterion()
	return c.Comparison.Holds(v, c.Threshold)
}

// String returns "Source Metric Rating", e.g. "WCAG Contrast AA".
func (g Guideline) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Guideline(%d)", int(g))
	}
	c := guidelines[g]
	return c.Source + " " + c.Metric.String() + " " + c.Rating
}

// Guidelines returns every guideline in table order.
func Guidelines() []Guideline {
	out := make([]Guideline, NumGuidelines)
	for i := range out {
		out[i] = Guideline(i)
	}
	return out
}

// ParseGuideline resolves a guideline by its String form, ignoring case,
// spaces, hyphens and underscores ("wcag contrast aa", "ISO9241-3
// ContrastRatio Pass").
func ParseGuideline(name string) (Guideline, error) {
	key := foldName(name)
	for _, g := range Guidelines() {
		if foldName(g.String()) == key {
			return g, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownGuideline, name)
}

// Verdict is the outcome of checking a color pair against a guideline.
type Verdict struct {
	Guideline Guideline
	Value     float32
	Pass      bool
}

// Evaluate measures a and b with the metric of g and compares the result
// to its threshold.
//
// A zero-luminance ISO contrast ratio is +Inf, which passes, or NaN for
// two blacks, which fails.
func (s *Space) Evaluate(g Guideline, a, b RGB) Verdict {
	return verdict(g, s.Luminance(a), s.Luminance(b))
}

// Evaluate is Space.Evaluate on the default space.
func Evaluate[C Color](g Guideline, a, b C) Verdict {
	return verdict(g, a.luminance(std), b.luminance(std))
}

func verdict(g Guideline, la, lb float32) Verdict {
	v := g.Metric().Between(la, lb)
	return Verdict{Guideline: g, Value: v, Pass: g.Passes(v)}
}
