package colorblind

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	icolor "github.com/gogpu/colorblind/internal/color"
)

// RGB represents a color with float32 red, green and blue components.
// Each component is conventionally in the range [0, 1], but transforms
// never clamp it unless documented. Whether the components are linear or
// gamma-encoded depends on the function consuming them.
type RGB struct {
	R, G, B float32
}

// RGB8 represents a color with 8-bit components in the range [0, 255],
// the way colors are usually stored and displayed.
type RGB8 struct {
	R, G, B uint8
}

// Color is satisfied by the two color representations.
//
// Metric functions are generic over Color so the same call works for
// normalized and byte input. Per-channel callers write struct literals:
//
//	colorblind.Contrast(colorblind.RGB8{0xff, 0, 0}, colorblind.RGB8{})
type Color interface {
	RGB | RGB8

	// Norm returns the color with components in [0, 1].
	Norm() RGB

	luminance(s *Space) float32
}

// Norm returns c unchanged; RGB is already normalized.
func (c RGB) Norm() RGB { return c }

// Denorm converts to 8-bit components by scaling by 255 and rounding.
//
// Components must already be in [0, 1]. Denorm does not clamp, so use
// Clamp first for values produced by the deficiency transforms.
func (c RGB) Denorm() RGB8 {
	return RGB8{
		R: icolor.Denormalize(c.R),
		G: icolor.Denormalize(c.G),
		B: icolor.Denormalize(c.B),
	}
}

// Clamp restricts every component to [0, 1].
func (c RGB) Clamp() RGB {
	return RGB{
		R: icolor.Clamp01(c.R),
		G: icolor.Clamp01(c.G),
		B: icolor.Clamp01(c.B),
	}
}

func (c RGB) luminance(s *Space) float32 { return s.Luminance(c) }

// Norm converts to float32 components in [0, 1].
func (c RGB8) Norm() RGB {
	return RGB{
		R: icolor.Normalize(c.R),
		G: icolor.Normalize(c.G),
		B: icolor.Normalize(c.B),
	}
}

func (c RGB8) luminance(s *Space) float32 { return s.Luminance8(c) }

// RGBA implements color.Color. RGB8 colors are always opaque.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as an opaque color.NRGBA.
func (c RGB8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex formats c as "#rrggbb".
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB8) String() string { return c.Hex() }

// FromColor converts a standard color.Color to RGB8, dropping alpha
// after un-premultiplying.
func FromColor(c color.Color) RGB8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8{R: n.R, G: n.G, B: n.B}
}

// ParseHex parses a "#rgb" or "#rrggbb" color. The leading '#' is optional.
func ParseHex(s string) (RGB8, error) {
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB8{}, fmt.Errorf("colorblind: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB8{R: r, G: g, B: b}, nil
}

// Common colors
var (
	Black   = RGB8{0x00, 0x00, 0x00}
	White   = RGB8{0xff, 0xff, 0xff}
	Red     = RGB8{0xff, 0x00, 0x00}
	Green   = RGB8{0x00, 0xff, 0x00}
	Blue    = RGB8{0x00, 0x00, 0xff}
	Yellow  = RGB8{0xff, 0xff, 0x00}
	Cyan    = RGB8{0x00, 0xff, 0xff}
	Magenta = RGB8{0xff, 0x00, 0xff}
)
