package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NetfallNetworks/weather-landscape/sprite"
)

func weatherGlyphs(ps []Placement) []Placement {
	var out []Placement
	for _, p := range ps {
		if p.Sprite == sprite.RainStreak || p.Sprite == sprite.Snowflake {
			out = append(out, p)
		}
	}
	return out
}

func TestPrecipBelowThresholdInvisible(t *testing.T) {
	f := flatForecast(Sample{Precipitation: PrecipRain, PrecipIntensity: 0.05, Pressure: 1013})
	tl := testTimeline()

	ps := encodePrecip(f, tl, newMapper(tl, DefaultWidth), DefaultWidth)
	assert.Empty(t, weatherGlyphs(ps), "sub-threshold drizzle must not draw")
}

func TestPrecipGlyphBuckets(t *testing.T) {
	assert.Equal(t, 0, precipGlyphs(0))
	assert.Equal(t, 0, precipGlyphs(0.09))
	assert.Equal(t, 1, precipGlyphs(0.1))
	assert.Equal(t, 1, precipGlyphs(1.0))
	assert.Equal(t, 2, precipGlyphs(1.1))
	assert.Equal(t, 2, precipGlyphs(4.0))
	assert.Equal(t, 3, precipGlyphs(9.5))
}

func TestPrecipKindSelectsGlyph(t *testing.T) {
	tl := testTimeline()
	m := newMapper(tl, DefaultWidth)

	rain := encodePrecip(flatForecast(Sample{Precipitation: PrecipRain, PrecipIntensity: 2, Pressure: 1013}), tl, m, DefaultWidth)
	for _, p := range weatherGlyphs(rain) {
		assert.Equal(t, sprite.RainStreak, p.Sprite)
	}
	assert.NotEmpty(t, weatherGlyphs(rain))

	snow := encodePrecip(flatForecast(Sample{Precipitation: PrecipSnow, PrecipIntensity: 2, Pressure: 1013}), tl, m, DefaultWidth)
	for _, p := range weatherGlyphs(snow) {
		assert.Equal(t, sprite.Snowflake, p.Sprite)
	}
	assert.NotEmpty(t, weatherGlyphs(snow))
}

func TestPressureBadge(t *testing.T) {
	tests := []struct {
		name     string
		pressure float64
		want     string
	}{
		{"low", 990, sprite.PressLow},
		{"boundary low", 999.9, sprite.PressLow},
		{"normal", 1013, sprite.PressNorm},
		{"boundary normal", 1025, sprite.PressNorm},
		{"high", 1030, sprite.PressHigh},
	}
	tl := testTimeline()
	m := newMapper(tl, DefaultWidth)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := encodePrecip(flatForecast(Sample{Pressure: tt.pressure}), tl, m, DefaultWidth)

			var badges []string
			for _, p := range ps {
				switch p.Sprite {
				case sprite.PressLow, sprite.PressNorm, sprite.PressHigh:
					badges = append(badges, p.Sprite)
				}
			}
			if assert.Len(t, badges, 1, "exactly one pressure badge") {
				assert.Equal(t, tt.want, badges[0])
			}
		})
	}
}
