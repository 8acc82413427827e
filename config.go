package landscape

import "time"

// Canvas defaults match the 2.9" E-Ink panel the project started on.
const (
	DefaultWidth  = 296
	DefaultHeight = 128
)

// Unit selects the temperature unit used for the min/max labels. Sample
// temperatures are always Celsius; conversion happens at label time.
type Unit int

const (
	UnitCelsius Unit = iota
	UnitFahrenheit
)

// Config carries the per-engine rendering parameters. The zero value is
// usable; defaults are applied by New.
type Config struct {
	Width    int
	Height   int
	Units    Unit
	Location *time.Location
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}
