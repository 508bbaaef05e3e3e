// Package spectrum renders hue spectra as seen under each color vision
// deficiency, one horizontal band per impairment.
//
// It is the offline counterpart of an interactive viewer: the output is an
// image that can be written to disk or shown by any image viewer.
package spectrum

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colorblind"
)

// Default image size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DividerStroke is the half-width in pixels of the white line between bands.
const DividerStroke = 3

// stops are the hue spectrum key colors. The spectrum wraps from the last
// back to the first.
var stops = [...]colorblind.RGB8{
	colorblind.Red,
	colorblind.Yellow,
	colorblind.Green,
	colorblind.Cyan,
	colorblind.Blue,
	colorblind.Magenta,
}

// Options configures Render. The zero value renders every impairment at
// the default size with the default space and labels.
type Options struct {
	Width, Height int

	// Space performs the simulation. Nil uses colorblind.Default().
	Space *colorblind.Space

	// Impairments lists the bands top to bottom. Nil renders all.
	Impairments []colorblind.Impairment

	// Face draws the labels. Nil uses Go Regular sized to the bands.
	Face font.Face

	// NoLabels disables the label boxes.
	NoLabels bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Space == nil {
		o.Space = colorblind.Default()
	}
	if len(o.Impairments) == 0 {
		o.Impairments = colorblind.Impairments()
	}
	return o
}

// Hue returns the spectrum color at position t. The spectrum runs through
// red, yellow, green, cyan, blue and magenta and wraps, so t is taken
// modulo 1. Neighboring stops are blended linearly in encoded sRGB.
func Hue(t float64) colorblind.RGB {
	t -= math.Floor(t)
	pos := t * float64(len(stops))
	i := int(pos)
	if i >= len(stops) {
		i = len(stops) - 1
	}
	f := float32(pos - float64(i))

	a, b := stops[i].Norm(), stops[(i+1)%len(stops)].Norm()
	return colorblind.RGB{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
	}
}

// BandBounds returns the rows covered by band i of n in an image of the
// given height.
func BandBounds(i, n, height int) (y0, y1 int) {
	h := float64(height) / float64(n)
	return int(math.Round(float64(i) * h)), int(math.Round(float64(i+1) * h))
}

// Render draws the spectra.
func Render(opts Options) *image.NRGBA {
	o := opts.withDefaults()
	img := image.NewNRGBA(image.Rect(0, 0, o.Width, o.Height))
	n := len(o.Impairments)

	hues := make([]colorblind.RGB, o.Width)
	for x := range hues {
		hues[x] = Hue(float64(x) / float64(o.Width))
	}

	face := o.Face
	if face == nil && !o.NoLabels {
		face = defaultFace(float64(o.Height) / float64(n))
		defer func() {
			_ = face.Close()
		}()
	}

	row := make([]uint8, o.Width*4)
	for bi, imp := range o.Impairments {
		for x, h := range hues {
			c := o.Space.SimulateGamma(imp, h).Denorm()
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 0xff
		}

		y0, y1 := BandBounds(bi, n, o.Height)
		for y := y0; y < y1; y++ {
			copy(img.Pix[y*img.Stride:], row)
		}

		if !o.NoLabels {
			drawLabel(img, face, imp.String(), image.Rect(0, y0, o.Width, y1))
		}
	}

	for i := 1; i < n; i++ {
		y, _ := BandBounds(i, n, o.Height)
		line := image.Rect(0, y-DividerStroke, o.Width, y+DividerStroke).Intersect(img.Bounds())
		draw.Draw(img, line, image.White, image.Point{}, draw.Src)
	}

	colorblind.Logger().Debug("spectrum: rendered",
		slog.Int("width", o.Width),
		slog.Int("height", o.Height),
		slog.Int("bands", n))
	return img
}

// LabelBox returns the white box a label of the given text occupies when
// centered in band. The box is twice the line height and one line height
// wider than the text.
func LabelBox(face font.Face, text string, band image.Rectangle) image.Rectangle {
	m := face.Metrics()
	lineH := m.Height.Ceil()
	w := font.MeasureString(face, text).Ceil() + lineH
	h := 2 * lineH

	c := image.Pt((band.Min.X+band.Max.X)/2, (band.Min.Y+band.Max.Y)/2)
	return image.Rect(c.X-w/2, c.Y-h/2, c.X-w/2+w, c.Y-h/2+h).Intersect(band)
}

func drawLabel(dst *image.NRGBA, face font.Face, text string, band image.Rectangle) {
	box := LabelBox(face, text, band)
	if box.Empty() {
		return
	}
	draw.Draw(dst, box, image.White, image.Point{}, draw.Src)

	m := face.Metrics()
	textW := font.MeasureString(face, text)
	mid := fixed.I((box.Min.Y + box.Max.Y) / 2)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I((box.Min.X+box.Max.X)/2) - textW/2,
			Y: mid + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(text)
}

// defaultFace returns Go Regular sized for bands of the given height.
// If the bundled font cannot be loaded it falls back to the fixed 7x13
// bitmap face.
func defaultFace(bandHeight float64) font.Face {
	size := max(10, math.Round(bandHeight/5))

	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		var face font.Face
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return face
		}
	}

	colorblind.Logger().Warn("spectrum: using bitmap label face", slog.Any("error", err))
	return basicfont.Face7x13
}
