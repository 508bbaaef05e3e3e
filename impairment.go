package colorblind

import (
	"errors"
	"fmt"
)

// ErrUnknownImpairment is returned by ParseImpairment for unrecognized names.
var ErrUnknownImpairment = errors.New("colorblind: unknown impairment")

// Impairment selects a color vision deficiency to simulate.
//
// The order is stable: it is used for iteration and to index per-impairment
// arrays such as Assessment.Values.
type Impairment int

const (
	// Unimpaired is normal trichromatic vision. Simulation is the identity.
	Unimpaired Impairment = iota

	// Protanopia is missing the first (long-wave, red) cone.
	// A red-green deficiency.
	Protanopia

	// Deuteranopia is missing the second (medium-wave, green) cone.
	// The most common red-green deficiency.
	Deuteranopia

	// Tritanopia is missing the third (short-wave, blue) cone.
	// A blue-yellow deficiency.
	Tritanopia
)

// NumImpairments is the number of defined impairments, Unimpaired included.
const NumImpairments = 4

// Alternative names for the impairments.
const (
	RedGreenDim = Protanopia
	RedGreen    = Deuteranopia
	BlueYellow  = Tritanopia

	MissingRed   = Protanopia
	MissingGreen = Deuteranopia
	MissingBlue  = Tritanopia
)

var impairmentNames = [NumImpairments]string{
	"Unimpaired", "Protanopia", "Deuteranopia", "Tritanopia",
}

// impairmentAliases holds the folded alias names accepted by ParseImpairment.
var impairmentAliases = map[string]Impairment{
	"none":         Unimpaired,
	"normal":       Unimpaired,
	"redgreendim":  RedGreenDim,
	"redgreen":     RedGreen,
	"blueyellow":   BlueYellow,
	"missingred":   MissingRed,
	"missinggreen": MissingGreen,
	"missingblue":  MissingBlue,
}

// Valid reports whether i is one of the defined impairments.
func (i Impairment) Valid() bool {
	return i >= Unimpaired && i < NumImpairments
}

// simulates reports whether i has a non-identity transform.
func (i Impairment) simulates() bool {
	return i > Unimpaired && i < NumImpairments
}

// String returns the impairment name.
func (i Impairment) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Impairment(%d)", int(i))
	}
	return impairmentNames[i]
}

// Impairments returns every impairment in order, starting with Unimpaired.
func Impairments() []Impairment {
	return []Impairment{Unimpaired, Protanopia, Deuteranopia, Tritanopia}
}

// ParseImpairment resolves an impairment by name, ignoring case, spaces,
// hyphens and underscores. Both the canonical names and the aliases
// ("red-green", "missing blue", ...) are accepted.
func ParseImpairment(name string) (Impairment, error) {
	key := foldName(name)
	for i, n := range impairmentNames {
		if foldName(n) == key {
			return Impairment(i), nil
		}
	}
	if i, ok := impairmentAliases[key]; ok {
		return i, nil
	}
	return Unimpaired, fmt.Errorf("%w: %q", ErrUnknownImpairment, name)
}
