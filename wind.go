package landscape

import (
	"time"

	"github.com/NetfallNetworks/weather-landscape/sprite"
)

// Wind speed tiers, in m/s. Boundaries follow the lower Beaufort bands.
const (
	windCalmMax     = 0.4
	windLightMax    = 3.3
	windModerateMax = 7.9
)

// Tree stand height per tier, as a sprite scale factor. Calm draws the
// bare-ground baseline and no trees at all.
var tierScale = map[int]float64{1: 1.0, 2: 1.5, 3: 2.0}

func windTier(speed float64) int {
	switch {
	case speed <= windCalmMax:
		return 0
	case speed <= windLightMax:
		return 1
	case speed <= windModerateMax:
		return 2
	default:
		return 3
	}
}

// Trees are sampled every three hours along the horizon, matching the
// forecast step of the upstream provider.
const windStep = 3 * time.Hour

var cardinalTrees = [4]string{sprite.TreeN, sprite.TreeE, sprite.TreeS, sprite.TreeW}

// Unscaled sprite heights, used to anchor trunks on the baseline.
var treeHeights = map[string]int{
	sprite.TreeN: 10,
	sprite.TreeE: 8,
	sprite.TreeS: 9,
	sprite.TreeW: 8,
}

// windStand maps a direction to a three-tree stand blended from the two
// adjacent cardinal sprite sets. The circle is cut into sixteen 22.5°
// sectors; within each quadrant the mix shifts from all-first to
// all-second in fixed steps. A fixed table keeps the output deterministic
// and easy to pin in tests.
func windStand(direction float64) [3]string {
	d := direction
	for d < 0 {
		d += 360
	}
	sector := int((d+11.25)/22.5) % 16
	quadrant := sector / 4
	pos := sector % 4

	first := cardinalTrees[quadrant]
	second := cardinalTrees[(quadrant+1)%4]

	var stand [3]string
	for i := 0; i < 3; i++ {
		if i < 3-pos {
			stand[i] = first
		} else {
			stand[i] = second
		}
	}
	return stand
}

// encodeWind produces the tree placements indicating wind speed and
// direction. Zero wind at a sample point leaves its slot empty.
func encodeWind(f *Forecast, tl Timeline, m mapper, height int) []Placement {
	var out []Placement
	base := baseline(height)

	step := int64(windStep / time.Second)
	for t := tl.Now + step; t <= tl.HorizonEnd; t += step {
		x, ok := m.X(t)
		if !ok {
			continue
		}
		s := f.At(t)
		tier := windTier(s.WindSpeed)
		if tier == 0 {
			continue
		}
		scale := tierScale[tier]
		stand := windStand(s.WindDirection)

		spacing := int(8 * scale)
		left := x - spacing
		for i, id := range stand {
			h := int(float64(treeHeights[id])*scale + 0.5)
			out = append(out, Placement{
				Sprite: id,
				X:      left + i*spacing,
				Y:      base - h,
				Z:      zTerrain + 10,
				Scale:  scale,
			})
		}
	}
	return out
}
