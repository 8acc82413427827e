package landscape

import (
	"fmt"
	"math"
	"time"

	"github.com/NetfallNetworks/weather-landscape/sprite"
)

// Vertical layout of the sky band.
const (
	cloudY     = 4
	sunY       = 16
	tempGlyphY = 34
)

// Cloud cover buckets, in percent.
const (
	cloudClearMax    = 20.0
	cloudScatterMax  = 50.0
	cloudOvercastMin = 80.0
)

func formatTemp(celsius float64, u Unit) string {
	v := celsius
	suffix := "C"
	if u == UnitFahrenheit {
		v = celsius*9/5 + 32
		suffix = "F"
	}
	return fmt.Sprintf("%d%s", int(math.Round(v)), suffix)
}

// encodeSky plots the sun and moon, derives the day/night shading
// segments, marks cloud density per sample and labels the temperature
// extremes over the horizon.
func encodeSky(f *Forecast, tl Timeline, m mapper, width int, units Unit) ([]Placement, []label, []span) {
	var ps []Placement
	var ls []label

	// The sun rides at the sunrise position and the moon at the sunset
	// position; markers outside the horizon are omitted.
	if x, ok := m.X(tl.Sunrise); ok {
		ps = append(ps, Placement{Sprite: sprite.Sun, X: x - 5, Y: sunY - 5, Z: zSky + 10})
	}
	if x, ok := m.X(tl.Sunset); ok {
		ps = append(ps, Placement{Sprite: sprite.Moon, X: x - 4, Y: sunY - 4, Z: zSky + 10})
	}

	night := nightSpans(m, width)

	step := int64(windStep / time.Second)
	for t := tl.Now + step; t <= tl.HorizonEnd; t += step {
		x, ok := m.X(t)
		if !ok {
			continue
		}
		cover := f.At(t).CloudCover
		switch {
		case cover < cloudClearMax:
		case cover < cloudScatterMax:
			ps = append(ps, Placement{Sprite: sprite.CloudSmall, X: x - 6, Y: cloudY, Z: zWeather})
		case cover < cloudOvercastMin:
			ps = append(ps, Placement{Sprite: sprite.CloudLarge, X: x - 9, Y: cloudY, Z: zWeather})
		default:
			ps = append(ps,
				Placement{Sprite: sprite.CloudLarge, X: x - 9, Y: cloudY, Z: zWeather},
				Placement{Sprite: sprite.CloudSmall, X: x - 2, Y: cloudY + 5, Z: zWeather})
		}
	}

	min, max := f.Range(tl.Now, tl.HorizonEnd)
	if xmin, ok := m.X(min.Time); ok {
		ps = append(ps, Placement{Sprite: sprite.TempMin, X: xmin - 2, Y: tempGlyphY, Z: zForeground})
		ls = append(ls, label{text: formatTemp(min.Temperature, units), x: xmin + 5, y: tempGlyphY + 5})
	}
	if xmax, ok := m.X(max.Time); ok && max.Time != min.Time {
		ps = append(ps, Placement{Sprite: sprite.TempMax, X: xmax - 2, Y: tempGlyphY, Z: zForeground})
		ls = append(ls, label{text: formatTemp(max.Temperature, units), x: xmax + 5, y: tempGlyphY + 5})
	}

	return ps, ls, night
}

// nightSpans collects the contiguous column ranges lying outside the
// daylight interval.
func nightSpans(m mapper, width int) []span {
	var out []span
	open := false
	var cur span
	for x := 0; x < width; x++ {
		if !m.Day(m.T(x)) {
			if !open {
				cur = span{x0: x, x1: x}
				open = true
			} else {
				cur.x1 = x
			}
			continue
		}
		if open {
			out = append(out, cur)
			open = false
		}
	}
	if open {
		out = append(out, cur)
	}
	return out
}
