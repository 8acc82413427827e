package landscape

import (
	"github.com/NetfallNetworks/weather-landscape/sprite"
)

// Precipitation intensity buckets, in mm/h. Values below the visibility
// threshold draw nothing at all. The buckets are deliberately coarse so
// the visual reading stays simple; tests pin the exact boundaries.
const (
	precipVisibleMin  = 0.1
	precipLightMax    = 1.0
	precipModerateMax = 4.0
)

// Pressure classification thresholds, in hPa.
const (
	pressureLowMax  = 1000.0
	pressureHighMin = 1025.01
)

func precipGlyphs(intensity float64) int {
	switch {
	case intensity < precipVisibleMin:
		return 0
	case intensity <= precipLightMax:
		return 1
	case intensity <= precipModerateMax:
		return 2
	default:
		return 3
	}
}

// Rows the glyph column is stacked on, between cloud band and terrain.
var precipRows = [3]int{48, 66, 84}

// encodePrecip places rain and snow glyph columns for every visible
// sample and a single pressure badge for the most recent one.
func encodePrecip(f *Forecast, tl Timeline, m mapper, width int) []Placement {
	var out []Placement

	for i, s := range f.Samples {
		if s.Time < tl.Now || s.Time > tl.HorizonEnd {
			continue
		}
		if s.Precipitation == PrecipNone {
			continue
		}
		n := precipGlyphs(s.PrecipIntensity)
		if n == 0 {
			continue
		}
		x, ok := m.X(s.Time)
		if !ok {
			continue
		}
		id := sprite.RainStreak
		if s.Precipitation == PrecipSnow {
			id = sprite.Snowflake
		}
		for g := 0; g < n; g++ {
			// Small fixed horizontal stagger so columns read as
			// falling weather rather than a bar chart.
			dx := (x*31+g*13)%5 - 2
			out = append(out, Placement{
				Sprite: id,
				X:      x + dx,
				Y:      precipRows[g],
				Z:      zWeather + 10,
				FlipH:  s.Precipitation == PrecipRain && i%2 == 1,
			})
		}
	}

	// Pressure is not a timeline feature; one static badge rendered from
	// the sample covering the present moment.
	cur := f.At(tl.Now)
	badge := sprite.PressNorm
	switch {
	case cur.Pressure < pressureLowMax:
		badge = sprite.PressLow
	case cur.Pressure >= pressureHighMin:
		badge = sprite.PressHigh
	}
	out = append(out, Placement{Sprite: badge, X: width - 11, Y: 2, Z: zForeground})

	return out
}
