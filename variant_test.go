package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"rgb_light", VariantRGBLight},
		{"RGB-Light", VariantRGBLight},
		{"rgb_white", VariantRGBLight},
		{"rgb_dark", VariantRGBDark},
		{"rgb-black", VariantRGBDark},
		{"bw", VariantBW},
		{"BW", VariantBW},
		{"wb", VariantBW},
		{"bw_inverted", VariantBWInverted},
		{"bw-inverted", VariantBWInverted},
		{"bwi", VariantBWInverted},
		{"eink", VariantEInk},
		{"E-Ink", VariantEInk},
		// Unknown tags degrade to the default, never an error.
		{"", VariantRGBLight},
		{"sepia", VariantRGBLight},
		{"grb_light", VariantRGBLight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVariant(tt.in))
		})
	}
}

func TestVariantRoundTrip(t *testing.T) {
	for _, v := range Variants {
		assert.Equal(t, v, ParseVariant(v.String()))
	}
}

func TestVariantExtension(t *testing.T) {
	assert.Equal(t, ".png", VariantRGBLight.Extension())
	assert.Equal(t, ".png", VariantRGBDark.Extension())
	assert.Equal(t, ".bmp", VariantBW.Extension())
	assert.Equal(t, ".bmp", VariantBWInverted.Extension())
	assert.Equal(t, ".bmp", VariantEInk.Extension())
}
