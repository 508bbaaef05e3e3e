package colorblind

import (
	"errors"
	"log/slog"
	"math"
)

// ErrZeroLuminance is returned by the ContrastRatio functions when the
// darker color has zero luminance and the ISO ratio has no finite value.
var ErrZeroLuminance = errors.New("colorblind: contrast ratio undefined for zero luminance")

// wcagFlare is the ambient flare term of the WCAG contrast formula.
const wcagFlare = 0.05

// Metric identifies one of the contrast formulas.
type Metric int

const (
	// MetricContrast is WCAG contrast: (High+0.05) / (Low+0.05), in [1, 21].
	MetricContrast Metric = iota

	// MetricContrastRatio is ISO 9241-3 contrast ratio: High / Low.
	MetricContrastRatio

	// MetricContrastModulation is ISO 9241-3 contrast modulation:
	// (High-Low) / (High+Low), in [0, 1].
	MetricContrastModulation
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricContrast:
		return "Contrast"
	case MetricContrastRatio:
		return "ContrastRatio"
	case MetricContrastModulation:
		return "ContrastModulation"
	default:
		return "Unknown"
	}
}

// Between applies the metric to two relative luminances given in either
// order. The larger is High; on a tie the first operand stays High.
//
// MetricContrastRatio with a zero Low yields the IEEE quotient (+Inf, or
// NaN when both are zero) without an error; use ContrastRatio to get
// ErrZeroLuminance. Unknown metrics return NaN.
func (m Metric) Between(la, lb float32) float32 {
	hi, lo := la, lb
	if hi < lo {
		hi, lo = lo, hi
	}

	switch m {
	case MetricContrast:
		// from http://www.w3.org/TR/2008/REC-WCAG20-20081211/#contrast-ratiodef
		return (hi + wcagFlare) / (lo + wcagFlare)
	case MetricContrastRatio:
		return hi / lo
	case MetricContrastModulation:
		if hi == lo {
			return 0
		}
		return (hi - lo) / (hi + lo)
	default:
		return float32(math.NaN())
	}
}

// Measure applies metric m to two gamma-encoded colors.
func (s *Space) Measure(m Metric, a, b RGB) float32 {
	return m.Between(s.Luminance(a), s.Luminance(b))
}

// Contrast returns the WCAG contrast of a and b.
func (s *Space) Contrast(a, b RGB) float32 {
	return MetricContrast.Between(s.Luminance(a), s.Luminance(b))
}

// Contrast8 is Contrast for 8-bit colors.
func (s *Space) Contrast8(a, b RGB8) float32 {
	return MetricContrast.Between(s.Luminance8(a), s.Luminance8(b))
}

// ContrastRatio returns the ISO 9241-3 contrast ratio of a and b.
//
// When the darker color has zero luminance it returns the IEEE quotient
// (+Inf, or NaN for two blacks) together with ErrZeroLuminance.
func (s *Space) ContrastRatio(a, b RGB) (float32, error) {
	return contrastRatio(s.Luminance(a), s.Luminance(b))
}

// ContrastRatio8 is ContrastRatio for 8-bit colors.
func (s *Space) ContrastRatio8(a, b RGB8) (float32, error) {
	return contrastRatio(s.Luminance8(a), s.Luminance8(b))
}

// ContrastModulation returns the ISO 9241-3 contrast modulation of a and b.
// Colors of equal luminance give exactly 0.
func (s *Space) ContrastModulation(a, b RGB) float32 {
	return MetricContrastModulation.Between(s.Luminance(a), s.Luminance(b))
}

// ContrastModulation8 is ContrastModulation for 8-bit colors.
func (s *Space) ContrastModulation8(a, b RGB8) float32 {
	return MetricContrastModulation.Between(s.Luminance8(a), s.Luminance8(b))
}

func contrastRatio(la, lb float32) (float32, error) {
	v := MetricContrastRatio.Between(la, lb)
	if min(la, lb) == 0 {
		Logger().Debug("colorblind: contrast ratio undefined",
			slog.Float64("high", float64(max(la, lb))))
		return v, ErrZeroLuminance
	}
	return v, nil
}

// Contrast returns the WCAG contrast of a and b using the default space.
// Results range from 1 (same luminance) to 21 (white against black).
func Contrast[C Color](a, b C) float32 {
	return MetricContrast.Between(a.luminance(std), b.luminance(std))
}

// ContrastRatio returns the ISO 9241-3 contrast ratio using the default
// space. See Space.ContrastRatio for the zero luminance case.
func ContrastRatio[C Color](a, b C) (float32, error) {
	return contrastRatio(a.luminance(std), b.luminance(std))
}

// ContrastModulation returns the ISO 9241-3 contrast modulation using the
// default space.
func ContrastModulation[C Color](a, b C) float32 {
	return MetricContrastModulation.Between(a.luminance(std), b.luminance(std))
}
