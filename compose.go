package landscape

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/NetfallNetworks/weather-landscape/sprite"
)

// Z-order bands. Within a band ties are broken by ascending x, then by
// sprite id, so the draw list is fully deterministic.
const (
	zSky        = 0
	zTerrain    = 100
	zWeather    = 200
	zForeground = 300
	zEvents     = 400
)

// Placement is a single sprite-draw command. X and Y locate the top-left
// corner of the sprite after scaling. Immutable once created.
type Placement struct {
	Sprite string
	X, Y   int
	Z      int
	Scale  float64
	FlipH  bool
}

// label is a short text annotation painted in the foreground band.
type label struct {
	text string
	x, y int
}

// span is an inclusive range of canvas columns.
type span struct {
	x0, x1 int
}

// scene is the full draw list for one render pass.
type scene struct {
	placements []Placement
	labels     []label
	night      []span
}

// scheme resolves sprite color roles for one variant family.
type scheme struct {
	bg, fg, soil, smoke, rain, snow color.RGBA
}

var (
	schemeLight = scheme{
		bg:    color.RGBA{255, 255, 255, 255},
		fg:    color.RGBA{0, 0, 0, 255},
		soil:  color.RGBA{148, 82, 1, 255},
		smoke: color.RGBA{127, 127, 127, 255},
		rain:  color.RGBA{10, 100, 148, 255},
		snow:  color.RGBA{194, 194, 194, 255},
	}
	schemeDark = scheme{
		bg:    color.RGBA{0, 0, 0, 255},
		fg:    color.RGBA{255, 255, 255, 255},
		soil:  color.RGBA{148, 82, 1, 255},
		smoke: color.RGBA{127, 127, 127, 255},
		rain:  color.RGBA{122, 213, 255, 255},
		snow:  color.RGBA{255, 255, 255, 255},
	}
	schemeMono = scheme{
		bg:    color.RGBA{255, 255, 255, 255},
		fg:    color.RGBA{0, 0, 0, 255},
		soil:  color.RGBA{0, 0, 0, 255},
		smoke: color.RGBA{0, 0, 0, 255},
		rain:  color.RGBA{0, 0, 0, 255},
		snow:  color.RGBA{0, 0, 0, 255},
	}
)

// schemeFor selects the palette scheme before compositing; the variant
// parameterizes the whole pass, not a post-processing step.
func schemeFor(v Variant) scheme {
	switch v {
	case VariantRGBDark:
		return schemeDark
	default:
		if v.monochrome() {
			return schemeMono
		}
		return schemeLight
	}
}

func (s scheme) colorFor(r sprite.Role) color.RGBA {
	switch r {
	case sprite.RoleSoil:
		return s.soil
	case sprite.RoleSmoke:
		return s.smoke
	case sprite.RoleRain:
		return s.rain
	case sprite.RoleSnow:
		return s.snow
	default:
		return s.fg
	}
}

// baseline is the row the terrain sits on.
func baseline(height int) int {
	return height - 14
}

func flipMask(m *image.Alpha) *image.Alpha {
	b := m.Bounds()
	out := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetAlpha(b.Max.X-1-(x-b.Min.X), y, m.AlphaAt(x, y))
		}
	}
	return out
}

func scaleMask(m *image.Alpha, scale float64) *image.Alpha {
	b := m.Bounds()
	w := int(float64(b.Dx())*scale + 0.5)
	h := int(float64(b.Dy())*scale + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	out := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), m, b, xdraw.Src, nil)
	return out
}

// compose paints the scene onto a fresh canvas. The canvas is owned by
// this call alone; concurrent renders never share one.
func compose(cat *sprite.Catalog, sch scheme, sc scene, width, height int) (*image.RGBA, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{sch.bg}, image.Point{}, draw.Src)

	base := baseline(height)

	// Night sky shading: a sparse dot raster over the affected columns.
	for _, sp := range sc.night {
		for y := 2; y < base-24; y += 6 {
			off := 0
			if (y/6)%2 == 1 {
				off = 3
			}
			for x := sp.x0 + off; x <= sp.x1; x += 6 {
				if x >= 0 && x < width {
					canvas.SetRGBA(x, y, sch.fg)
				}
			}
		}
	}

	// Terrain strip.
	for y := base; y < base+2 && y < height; y++ {
		for x := 0; x < width; x++ {
			canvas.SetRGBA(x, y, sch.soil)
		}
	}

	ordered := make([]Placement, len(sc.placements))
	copy(ordered, sc.placements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Z != ordered[j].Z {
			return ordered[i].Z < ordered[j].Z
		}
		if ordered[i].X != ordered[j].X {
			return ordered[i].X < ordered[j].X
		}
		return ordered[i].Sprite < ordered[j].Sprite
	})

	for _, p := range ordered {
		s, err := cat.Lookup(p.Sprite)
		if err != nil {
			// Broken asset bundle; abort rather than skip silently.
			return nil, err
		}
		mask := s.Mask
		if p.FlipH {
			mask = flipMask(mask)
		}
		if p.Scale != 0 && p.Scale != 1 {
			mask = scaleMask(mask, p.Scale)
		}
		r := mask.Bounds().Add(image.Pt(p.X, p.Y))
		src := &image.Uniform{sch.colorFor(s.Role)}
		draw.DrawMask(canvas, r, src, image.Point{}, mask, mask.Bounds().Min, draw.Over)
	}

	d := font.Drawer{
		Dst:  canvas,
		Src:  &image.Uniform{sch.fg},
		Face: basicfont.Face7x13,
	}
	for _, l := range sc.labels {
		d.Dot = fixed.P(l.x, l.y)
		d.DrawString(l.text)
	}

	return canvas, nil
}
