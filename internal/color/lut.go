package color

// DecodeTable maps every 8-bit encoded channel value to its linear float32
// value, replacing a math.Pow call per channel with an array lookup.
//
// Tables are built once and only read afterwards, so a single table can be
// shared between goroutines.
type DecodeTable [256]float32

// NewDecodeTable evaluates decode at each of the 256 normalized byte values.
//
// The entries are bit-identical to decode(Normalize(i)), so table and
// direct paths agree exactly.
func NewDecodeTable(decode func(float32) float32) *DecodeTable {
	var t DecodeTable
	for i := range t {
		t[i] = decode(Normalize(uint8(i)))
	}
	return &t
}

// Lookup returns the linear value for the encoded byte v.
//
// Example:
//
//	SRGBTable.Lookup(128) // ~0.2159 (not 0.5!)
func (t *DecodeTable) Lookup(v uint8) float32 {
	return t[v]
}

// SRGBTable is the decode table for the piecewise sRGB curve.
var SRGBTable = NewDecodeTable(SRGBToLinear)
