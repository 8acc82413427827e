/*
Package landscape renders a 24 hour weather forecast as a single raster
landscape: the passage of time runs left to right, trees lean with the
wind, the sun sits at sunrise and the moon at sunset, clouds and
precipitation hang over their forecast hour and a house marks the
present moment.

The engine is a pure synchronous function from a validated forecast, a
timeline, optional event overlays and an output variant to an encoded
image buffer. Each render owns its own canvas; any number of renders may
run concurrently against the shared read-only sprite catalog.
*/
package landscape

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/NetfallNetworks/weather-landscape/encode"
	"github.com/NetfallNetworks/weather-landscape/sprite"
)

// Engine renders forecasts against a fixed configuration and the shared
// sprite catalog.
type Engine struct {
	cfg     Config
	catalog *sprite.Catalog
	logger  *zap.SugaredLogger
}

// New returns an Engine for the given configuration. A nil logger is
// replaced with a no-op one.
func New(cfg Config, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{
		cfg:     cfg.withDefaults(),
		catalog: sprite.Default(),
		logger:  logger,
	}
}

// Render produces the encoded image for one variant along with its
// metadata record. Out-of-range variant values resolve to the rgb_light
// default; invalid forecast data is rejected before any drawing.
func (e *Engine) Render(f *Forecast, tl Timeline, events []EventOverlay, v Variant) ([]byte, Metadata, error) {
	if v < VariantRGBLight || v > VariantEInk {
		v = VariantRGBLight
	}

	if err := f.Validate(tl); err != nil {
		return nil, Metadata{}, err
	}

	canvas, err := e.composite(f, tl, events, v)
	if err != nil {
		return nil, Metadata{}, err
	}

	var buf bytes.Buffer
	width, height := e.cfg.Width, e.cfg.Height
	switch v {
	case VariantBW:
		err = encode.BMP1(&buf, canvas, false)
	case VariantBWInverted:
		err = encode.BMP1(&buf, canvas, true)
	case VariantEInk:
		width, height = height, width
		err = encode.BMP1(&buf, encode.Rotate90(canvas), false)
	default:
		err = encode.PNG(&buf, canvas)
	}
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("landscape: encoding %s: %w", v, err)
	}

	b := buf.Bytes()
	meta := Metadata{
		Variant:     v.String(),
		Width:       width,
		Height:      height,
		ByteLength:  len(b),
		Checksum:    crc32.ChecksumIEEE(b),
		GeneratedAt: time.Now().UTC(),
	}

	e.logger.Debugw("rendered landscape",
		"variant", meta.Variant, "bytes", meta.ByteLength)

	return b, meta, nil
}

// composite runs every feature encoder and paints the resulting draw
// list. The variant is decided before this point so the encoders and the
// compositor already work against the matching palette scheme.
func (e *Engine) composite(f *Forecast, tl Timeline, events []EventOverlay, v Variant) (*image.RGBA, error) {
	m := newMapper(tl, e.cfg.Width)

	var sc scene
	sc.placements = append(sc.placements, encodeWind(f, tl, m, e.cfg.Height)...)

	skyPs, skyLs, night := encodeSky(f, tl, m, e.cfg.Width, e.cfg.Units)
	sc.placements = append(sc.placements, skyPs...)
	sc.labels = skyLs
	sc.night = night

	sc.placements = append(sc.placements, encodePrecip(f, tl, m, e.cfg.Width)...)
	sc.placements = append(sc.placements, encodeMarkers(tl, m, e.cfg, events)...)

	return compose(e.catalog, schemeFor(v), sc, e.cfg.Width, e.cfg.Height)
}
