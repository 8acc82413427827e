package landscape

import "strings"

// Variant selects the palette, bit depth and orientation of the encoded
// output. The zero value is the full-color light theme.
type Variant int

const (
	VariantRGBLight Variant = iota
	VariantRGBDark
	VariantBW
	VariantBWInverted
	VariantEInk
)

// Variants lists every supported variant in a stable order.
var Variants = []Variant{VariantRGBLight, VariantRGBDark, VariantBW, VariantBWInverted, VariantEInk}

func (v Variant) String() string {
	switch v {
	case VariantRGBDark:
		return "rgb_dark"
	case VariantBW:
		return "bw"
	case VariantBWInverted:
		return "bw_inverted"
	case VariantEInk:
		return "eink"
	default:
		return "rgb_light"
	}
}

// Extension returns the file extension conventionally used for the
// variant's encoding.
func (v Variant) Extension() string {
	switch v {
	case VariantBW, VariantBWInverted, VariantEInk:
		return ".bmp"
	default:
		return ".png"
	}
}

// monochrome reports whether the variant composites against the
// monochrome palette scheme.
func (v Variant) monochrome() bool {
	switch v {
	case VariantBW, VariantBWInverted, VariantEInk:
		return true
	}
	return false
}

// ParseVariant resolves a variant name case- and separator-insensitively.
// Legacy aliases from earlier deployments are accepted. Unknown names
// resolve to VariantRGBLight; format selection degrades gracefully and is
// never an error.
func ParseVariant(s string) Variant {
	k := strings.ToLower(s)
	k = strings.ReplaceAll(k, "-", "")
	k = strings.ReplaceAll(k, "_", "")
	switch k {
	case "rgbdark", "rgbblack":
		return VariantRGBDark
	case "bw", "wb":
		return VariantBW
	case "bwinverted", "bwi", "wbi":
		return VariantBWInverted
	case "eink":
		return VariantEInk
	default:
		return VariantRGBLight
	}
}
