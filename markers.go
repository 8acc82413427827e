package landscape

import (
	"github.com/NetfallNetworks/weather-landscape/sprite"
)

const (
	houseHeight = 14
	eventY      = 40
)

// encodeMarkers places the always-present house at the current moment,
// the calendar and twilight ticks, terrain decoration and the
// caller-supplied event glyphs.
func encodeMarkers(tl Timeline, m mapper, cfg Config, events []EventOverlay) []Placement {
	base := baseline(cfg.Height)

	out := []Placement{
		{Sprite: sprite.House, X: 0, Y: base - houseHeight, Z: zForeground},
		{Sprite: sprite.Smoke, X: 4, Y: base - houseHeight - 7, Z: zForeground + 1},
	}

	// Grass tufts keep the baseline readable when calm wind draws no
	// trees at all.
	for x := 28; x < cfg.Width; x += 24 {
		out = append(out, Placement{Sprite: sprite.Grass, X: x, Y: base - 3, Z: zTerrain})
	}

	noons, midnights := calendarMarks(tl, cfg.Location)
	for _, t := range noons {
		if x, ok := m.X(t); ok {
			out = append(out, Placement{Sprite: sprite.TickMajor, X: x - 1, Y: base - 5, Z: zForeground})
		}
	}
	for _, t := range midnights {
		if x, ok := m.X(t); ok {
			out = append(out, Placement{Sprite: sprite.TickMajor, X: x - 1, Y: base - 5, Z: zForeground})
		}
	}
	for _, t := range []int64{tl.Sunrise, tl.Sunset} {
		if x, ok := m.X(t); ok {
			out = append(out, Placement{Sprite: sprite.TickMinor, X: x, Y: base - 3, Z: zForeground})
		}
	}

	for _, ev := range events {
		if x, ok := m.X(ev.Time); ok {
			out = append(out, Placement{Sprite: ev.Glyph, X: x - 3, Y: eventY, Z: zEvents})
		}
	}

	return out
}
