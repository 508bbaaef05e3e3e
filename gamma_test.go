package colorblind

import (
	"testing"
)

var gammaModes = []GammaMode{GammaAccurate, GammaFast, GammaFastest}

// TestGammaRoundTrip checks removeGamma(applyGamma(x)) ≈ x and the reverse
// for every mode at representative points.
func TestGammaRoundTrip(t *testing.T) {
	const tolerance = 0.01
	points := []float32{0, 0.001, 0.01, 0.1, 0.25, 0.5, 0.6, 0.75, 0.9, 1}

	for _, mode := range gammaModes {
		t.Run(mode.String(), func(t *testing.T) {
			c := mode.Curve()
			for _, x := range points {
				if got := c.Remove(c.Apply(x)); !floatNear(got, x, tolerance) {
					t.Errorf("Remove(Apply(%v)) = %v", x, got)
				}
				if got := c.Apply(c.Remove(x)); !floatNear(got, x, tolerance) {
					t.Errorf("Apply(Remove(%v)) = %v", x, got)
				}
			}
		})
	}
}

func TestGammaColorRoundTrip(t *testing.T) {
	c := RGB{0.6, 0.2, 0.9}
	if got := RemoveGamma(ApplyGamma(c)); !rgbNear(got, c, 0.01) {
		t.Errorf("RemoveGamma(ApplyGamma(%v)) = %v", c, got)
	}
	if got := ApplyGamma(RemoveGamma(c)); !rgbNear(got, c, 0.01) {
		t.Errorf("ApplyGamma(RemoveGamma(%v)) = %v", c, got)
	}
}

func TestGammaComponent(t *testing.T) {
	// Accurate mode is the default: 0.5 sRGB is ~0.214 linear.
	if got := RemoveGammaComponent(0.5); !floatNear(got, 0.21404, 1e-4) {
		t.Errorf("RemoveGammaComponent(0.5) = %v, want ~0.21404", got)
	}
	if got := ApplyGammaComponent(0.21404); !floatNear(got, 0.5, 1e-4) {
		t.Errorf("ApplyGammaComponent(0.21404) = %v, want ~0.5", got)
	}
}

func TestGammaModeString(t *testing.T) {
	tests := []struct {
		mode GammaMode
		want string
	}{
		{GammaAccurate, "Accurate"},
		{GammaFast, "Fast"},
		{GammaFastest, "Fastest"},
		{GammaMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("GammaMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestGammaModeCurveUnknownFallsBack(t *testing.T) {
	if _, ok := GammaMode(99).Curve().(srgbCurve); !ok {
		t.Errorf("unknown mode curve = %T, want srgbCurve", GammaMode(99).Curve())
	}
}

func TestParseGammaMode(t *testing.T) {
	tests := []struct {
		input string
		want  GammaMode
	}{
		{"accurate", GammaAccurate},
		{"FAST", GammaFast},
		{" Fastest ", GammaFastest},
	}
	for _, tt := range tests {
		got, err := ParseGammaMode(tt.input)
		if err != nil {
			t.Errorf("ParseGammaMode(%q) error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGammaMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if _, err := ParseGammaMode("slowest"); err == nil {
		t.Error("ParseGammaMode(slowest) returned nil error")
	}
}

// linearCurve is an identity strategy used to check injection.
type linearCurve struct{}

func (linearCurve) Apply(x float32) float32  { return x }
func (linearCurve) Remove(x float32) float32 { return x }

func TestNewSpaceOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []SpaceOption
		want Curve
	}{
		{"default", nil, srgbCurve{}},
		{"fast", []SpaceOption{WithGamma(GammaFast)}, powerCurve{}},
		{"fastest", []SpaceOption{WithGamma(GammaFastest)}, squareCurve{}},
		{"custom", []SpaceOption{WithCurve(linearCurve{})}, linearCurve{}},
		{"nil curve ignored", []SpaceOption{WithGamma(GammaFast), WithCurve(nil)}, powerCurve{}},
		{"later mode overrides curve", []SpaceOption{WithCurve(linearCurve{}), WithGamma(GammaFastest)}, squareCurve{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpace(tt.opts...)
			if s.Curve() != tt.want {
				t.Errorf("Curve() = %T, want %T", s.Curve(), tt.want)
			}
		})
	}
}

func TestCustomCurveLuminance(t *testing.T) {
	s := NewSpace(WithCurve(linearCurve{}))
	c := RGB8{255, 0, 0}
	// Without gamma the luminance of pure red is just its weight.
	if got := s.Luminance8(c); !floatNear(got, 0.2126, 1e-6) {
		t.Errorf("Luminance8(red) = %v, want 0.2126", got)
	}
	if got, want := s.Luminance8(c), s.Luminance(c.Norm()); got != want {
		t.Errorf("Luminance8 = %v, Luminance = %v; table and direct paths differ", got, want)
	}
}

func TestDefaultSpace(t *testing.T) {
	if Default() != std {
		t.Error("Default() does not return the package space")
	}
	if _, ok := Default().Curve().(srgbCurve); !ok {
		t.Errorf("default curve = %T, want srgbCurve", Default().Curve())
	}
}

func BenchmarkRemoveGamma(b *testing.B) {
	for _, mode := range gammaModes {
		s := NewSpace(WithGamma(mode))
		b.Run(mode.String(), func(b *testing.B) {
			var sink RGB
			c := RGB{0.3, 0.6, 0.9}
			for i := 0; i < b.N; i++ {
				sink = s.RemoveGamma(c)
			}
			_ = sink
		})
	}
}
