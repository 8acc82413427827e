package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NetfallNetworks/weather-landscape/sprite"
)

func findPlacements(ps []Placement, id string) []Placement {
	var out []Placement
	for _, p := range ps {
		if p.Sprite == id {
			out = append(out, p)
		}
	}
	return out
}

func TestSkySunAtQuarter(t *testing.T) {
	// Sunrise at T0+6h on a 24h horizon: the sun rides a quarter of the
	// way across, the moon at three quarters.
	f := flatForecast(Sample{Temperature: 10})
	tl := testTimeline()
	m := newMapper(tl, DefaultWidth)

	ps, _, night := encodeSky(f, tl, m, DefaultWidth, UnitCelsius)

	suns := findPlacements(ps, sprite.Sun)
	if assert.Len(t, suns, 1) {
		assert.Equal(t, DefaultWidth/4-5, suns[0].X)
	}
	moons := findPlacements(ps, sprite.Moon)
	if assert.Len(t, moons, 1) {
		sunsetX, _ := m.X(tl.Sunset)
		assert.Equal(t, sunsetX, moons[0].X+4)
	}

	// Shading covers the pre-dawn and post-sunset columns.
	if assert.Len(t, night, 2) {
		assert.Equal(t, 0, night[0].x0)
		assert.Equal(t, DefaultWidth-1, night[1].x1)
		assert.Greater(t, night[1].x0, 3*DefaultWidth/4-2)
	}
}

func TestSkyMarkersOutOfRangeOmitted(t *testing.T) {
	f := flatForecast(Sample{Temperature: 10})
	tl := testTimeline()
	tl.Sunrise = tl.Now - 3600 // already risen before the horizon
	m := newMapper(tl, DefaultWidth)

	ps, _, _ := encodeSky(f, tl, m, DefaultWidth, UnitCelsius)
	assert.Empty(t, findPlacements(ps, sprite.Sun))
	assert.Len(t, findPlacements(ps, sprite.Moon), 1)
}

func TestSkyTemperatureExtremes(t *testing.T) {
	f := flatForecast(Sample{Temperature: 10})
	f.Samples[2].Temperature = -3
	f.Samples[5].Temperature = 21
	// A second occurrence of the maximum must not move the marker.
	f.Samples[6].Temperature = 21
	tl := testTimeline()
	m := newMapper(tl, DefaultWidth)

	ps, ls, _ := encodeSky(f, tl, m, DefaultWidth, UnitCelsius)

	mins := findPlacements(ps, sprite.TempMin)
	maxs := findPlacements(ps, sprite.TempMax)
	if assert.Len(t, mins, 1) && assert.Len(t, maxs, 1) {
		wantMin, _ := m.X(f.Samples[2].Time)
		wantMax, _ := m.X(f.Samples[5].Time)
		assert.Equal(t, wantMin-2, mins[0].X)
		assert.Equal(t, wantMax-2, maxs[0].X)
	}

	texts := make([]string, 0, len(ls))
	for _, l := range ls {
		texts = append(texts, l.text)
	}
	assert.Contains(t, texts, "-3C")
	assert.Contains(t, texts, "21C")
}

func TestSkyFahrenheitLabels(t *testing.T) {
	assert.Equal(t, "32F", formatTemp(0, UnitFahrenheit))
	assert.Equal(t, "0C", formatTemp(0, UnitCelsius))
	assert.Equal(t, "70F", formatTemp(21.1, UnitFahrenheit))
}

func TestSkyCloudBuckets(t *testing.T) {
	tl := testTimeline()
	m := newMapper(tl, DefaultWidth)

	clear, _, _ := encodeSky(flatForecast(Sample{CloudCover: 10}), tl, m, DefaultWidth, UnitCelsius)
	assert.Empty(t, findPlacements(clear, sprite.CloudSmall))
	assert.Empty(t, findPlacements(clear, sprite.CloudLarge))

	scattered, _, _ := encodeSky(flatForecast(Sample{CloudCover: 40}), tl, m, DefaultWidth, UnitCelsius)
	assert.Len(t, findPlacements(scattered, sprite.CloudSmall), 8)

	overcast, _, _ := encodeSky(flatForecast(Sample{CloudCover: 95}), tl, m, DefaultWidth, UnitCelsius)
	assert.Len(t, findPlacements(overcast, sprite.CloudLarge), 8)
	assert.Len(t, findPlacements(overcast, sprite.CloudSmall), 8)
}
