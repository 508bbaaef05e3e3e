package colorblind

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/colorblind/internal/parallel"
)

// SimulateImage returns a copy of src as seen with impairment i.
//
// Pixels are treated as gamma-encoded sRGB, the way images are stored.
// Alpha is carried over untouched. Rows are processed in parallel bands;
// src is only read, never modified. Unimpaired returns a plain copy.
func (s *Space) SimulateImage(i Impairment, src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)

	if !i.simulates() || b.Empty() {
		return dst
	}

	w, h := b.Dx(), b.Dy()
	bands := parallel.Workers(h, 0)
	Logger().Debug("colorblind: simulating image",
		slog.String("impairment", i.String()),
		slog.Int("width", w),
		slog.Int("height", h),
		slog.Int("bands", bands))

	parallel.Rows(h, bands, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
			for x := 0; x < len(row); x += 4 {
				c := s.SimulateGamma8(i, RGB8{R: row[x], G: row[x+1], B: row[x+2]})
				row[x], row[x+1], row[x+2] = c.R, c.G, c.B
			}
		}
	})
	return dst
}

// SimulateImage is Space.SimulateImage on the default space.
func SimulateImage(i Impairment, src image.Image) *image.NRGBA {
	return std.SimulateImage(i, src)
}
