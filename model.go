package landscape

import (
	"errors"
	"fmt"
	"time"
)

// PrecipKind identifies the form of precipitation in a forecast sample.
type PrecipKind int

const (
	PrecipNone PrecipKind = iota
	PrecipRain
	PrecipSnow
)

// Sample is a single point of the forecast. Temperature is in degrees
// Celsius, wind speed in m/s, direction in degrees clockwise from north,
// cloud cover in percent, precipitation intensity in mm/h and pressure
// in hPa.
type Sample struct {
	Time            int64
	Temperature     float64
	WindSpeed       float64
	WindDirection   float64
	CloudCover      float64
	Precipitation   PrecipKind
	PrecipIntensity float64
	Pressure        float64
}

// Forecast is a time-ordered, non-empty sequence of samples covering at
// least the rendering horizon.
type Forecast struct {
	Samples []Sample
}

// Timeline anchors the horizontal axis of the landscape. All fields are
// Unix timestamps. Sunrise and Sunset may fall outside [Now, HorizonEnd);
// their markers are then simply not drawn.
type Timeline struct {
	Now        int64
	Sunrise    int64
	Sunset     int64
	HorizonEnd int64
}

// EventOverlay is a caller-supplied, non-weather annotation drawn at its
// timestamp like any other timeline feature.
type EventOverlay struct {
	Time  int64
	Glyph string
}

// Metadata describes one encoded image buffer.
type Metadata struct {
	Variant     string    `json:"variant"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	ByteLength  int       `json:"byteLength"`
	Checksum    uint32    `json:"checksum"`
	GeneratedAt time.Time `json:"generatedAt"`
}

var (
	ErrEmptyForecast    = errors.New("landscape: empty forecast")
	ErrUnorderedSamples = errors.New("landscape: sample timestamps not strictly increasing")
	ErrShortForecast    = errors.New("landscape: forecast does not cover the rendering horizon")
	ErrBadTimeline      = errors.New("landscape: horizon end not after now")
)

// Validate checks the internal invariants the engine relies on. It does
// not know about provider wire formats; those are validated upstream.
func (f *Forecast) Validate(tl Timeline) error {
	if len(f.Samples) == 0 {
		return ErrEmptyForecast
	}
	for i := 1; i < len(f.Samples); i++ {
		if f.Samples[i].Time <= f.Samples[i-1].Time {
			return fmt.Errorf("%w: sample %d at %d, sample %d at %d",
				ErrUnorderedSamples, i-1, f.Samples[i-1].Time, i, f.Samples[i].Time)
		}
	}
	if tl.HorizonEnd <= tl.Now {
		return ErrBadTimeline
	}
	if last := f.Samples[len(f.Samples)-1].Time; last < tl.HorizonEnd {
		return fmt.Errorf("%w: last sample at %d, horizon end at %d",
			ErrShortForecast, last, tl.HorizonEnd)
	}
	return nil
}

// At returns the sample covering time t, which is the latest sample not
// after t, falling back to the first sample for times before the series.
func (f *Forecast) At(t int64) Sample {
	s := f.Samples[0]
	for _, c := range f.Samples {
		if c.Time > t {
			break
		}
		s = c
	}
	return s
}

// Range reports the earliest samples holding the minimum and maximum
// temperature within [from, to]. Ties resolve to the earliest occurrence.
func (f *Forecast) Range(from, to int64) (min, max Sample) {
	first := true
	for _, s := range f.Samples {
		if s.Time < from || s.Time > to {
			continue
		}
		if first {
			min, max = s, s
			first = false
			continue
		}
		if s.Temperature < min.Temperature {
			min = s
		}
		if s.Temperature > max.Temperature {
			max = s
		}
	}
	return min, max
}
