package colorblind

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImpairmentString(t *testing.T) {
	tests := []struct {
		imp  Impairment
		want string
	}{
		{Unimpaired, "Unimpaired"},
		{Protanopia, "Protanopia"},
		{Deuteranopia, "Deuteranopia"},
		{Tritanopia, "Tritanopia"},
		{Impairment(4), "Impairment(4)"},
		{Impairment(-2), "Impairment(-2)"},
	}
	for _, tt := range tests {
		if got := tt.imp.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestImpairmentAliases(t *testing.T) {
	if RedGreenDim != Protanopia || MissingRed != Protanopia {
		t.Error("red aliases do not name Protanopia")
	}
	if RedGreen != Deuteranopia || MissingGreen != Deuteranopia {
		t.Error("green aliases do not name Deuteranopia")
	}
	if BlueYellow != Tritanopia || MissingBlue != Tritanopia {
		t.Error("blue aliases do not name Tritanopia")
	}
}

func TestImpairments(t *testing.T) {
	want := []Impairment{Unimpaired, Protanopia, Deuteranopia, Tritanopia}
	if diff := cmp.Diff(want, Impairments()); diff != "" {
		t.Errorf("Impairments() mismatch (-want +got):\n%s", diff)
	}
	if len(Impairments()) != NumImpairments {
		t.Errorf("len(Impairments()) = %d, want %d", len(Impairments()), NumImpairments)
	}
	for i, imp := range Impairments() {
		if int(imp) != i {
			t.Errorf("Impairments()[%d] = %v", i, imp)
		}
		if !imp.Valid() {
			t.Errorf("%v not valid", imp)
		}
	}
	if Impairment(NumImpairments).Valid() || Impairment(-1).Valid() {
		t.Error("out of range impairment reported valid")
	}
}

func TestParseImpairment(t *testing.T) {
	tests := []struct {
		input string
		want  Impairment
	}{
		{"Unimpaired", Unimpaired},
		{"protanopia", Protanopia},
		{"DEUTERANOPIA", Deuteranopia},
		{" tritanopia ", Tritanopia},
		{"none", Unimpaired},
		{"Normal", Unimpaired},
		{"red-green dim", Protanopia},
		{"red-green", Deuteranopia},
		{"blue_yellow", Tritanopia},
		{"Missing Red", Protanopia},
		{"missinggreen", Deuteranopia},
		{"MISSING-BLUE", Tritanopia},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseImpairment(tt.input)
			if err != nil {
				t.Fatalf("ParseImpairment(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseImpairment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseImpairmentRoundTrip(t *testing.T) {
	for _, imp := range Impairments() {
		got, err := ParseImpairment(imp.String())
		if err != nil || got != imp {
			t.Errorf("ParseImpairment(%q) = %v, %v", imp.String(), got, err)
		}
	}
}

func TestParseImpairmentUnknown(t *testing.T) {
	for _, input := range []string{"", "achromatopsia", "Impairment(4)"} {
		_, err := ParseImpairment(input)
		if !errors.Is(err, ErrUnknownImpairment) {
			t.Errorf("ParseImpairment(%q) error = %v, want ErrUnknownImpairment", input, err)
		}
	}
}
