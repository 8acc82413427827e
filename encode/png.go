package encode

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

// PNG writes m to w as a paletted PNG, quantizing with a median-cut
// palette when the source carries more than maxColors colors.
func PNG(w io.Writer, m image.Image) error {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return png.Encode(w, pm)
}
