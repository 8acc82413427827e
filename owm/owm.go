/*
Package owm parses OpenWeatherMap current-conditions and 5-day forecast
documents into the engine's forecast model. It is purely a decoding
edge: no network access, no retries, no caching. Fetching the documents
and deciding when to refresh them belongs to the surrounding system.
*/
package owm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	landscape "github.com/NetfallNetworks/weather-landscape"
)

// Horizon is the forward span the engine renders.
const Horizon = 24 * time.Hour

var errNoCurrent = errors.New("owm: missing current conditions")

type mainBlock struct {
	Temp     float64 `json:"temp"`
	Pressure float64 `json:"pressure"`
}

type windBlock struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg"`
}

type cloudsBlock struct {
	All float64 `json:"all"`
}

type volumeBlock struct {
	OneHour   float64 `json:"1h"`
	ThreeHour float64 `json:"3h"`
}

// perHour converts an accumulation report to a rate in mm/h.
func (v volumeBlock) perHour() float64 {
	if v.OneHour > 0 {
		return v.OneHour
	}
	return v.ThreeHour / 3
}

type entry struct {
	Dt     int64        `json:"dt"`
	Main   mainBlock    `json:"main"`
	Wind   windBlock    `json:"wind"`
	Clouds cloudsBlock  `json:"clouds"`
	Rain   *volumeBlock `json:"rain,omitempty"`
	Snow   *volumeBlock `json:"snow,omitempty"`
}

type current struct {
	entry
	Timezone int64 `json:"timezone"`
	Sys      struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

type forecastDoc struct {
	List []entry `json:"list"`
}

// Bundle is the pair of provider documents one render is built from,
// laid out the way the upstream fetcher stores them.
type Bundle struct {
	Current  json.RawMessage `json:"current"`
	Forecast json.RawMessage `json:"forecast"`
}

func (e entry) sample() landscape.Sample {
	s := landscape.Sample{
		Time:          e.Dt,
		Temperature:   e.Main.Temp,
		WindSpeed:     e.Wind.Speed,
		WindDirection: e.Wind.Deg,
		CloudCover:    e.Clouds.All,
		Pressure:      e.Main.Pressure,
	}
	switch {
	case e.Snow != nil && e.Snow.perHour() > 0:
		s.Precipitation = landscape.PrecipSnow
		s.PrecipIntensity = e.Snow.perHour()
	case e.Rain != nil && e.Rain.perHour() > 0:
		s.Precipitation = landscape.PrecipRain
		s.PrecipIntensity = e.Rain.perHour()
	}
	return s
}

// Parse decodes a provider bundle into a forecast, the render timeline
// and the location's fixed-offset zone. The current conditions become
// the leading sample, followed by every forecast entry in order.
func Parse(data []byte) (*landscape.Forecast, landscape.Timeline, *time.Location, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, landscape.Timeline{}, nil, fmt.Errorf("owm: decoding bundle: %w", err)
	}

	var cur current
	if len(b.Current) == 0 {
		return nil, landscape.Timeline{}, nil, errNoCurrent
	}
	if err := json.Unmarshal(b.Current, &cur); err != nil {
		return nil, landscape.Timeline{}, nil, fmt.Errorf("owm: decoding current conditions: %w", err)
	}
	if cur.Dt == 0 {
		return nil, landscape.Timeline{}, nil, errNoCurrent
	}

	var fc forecastDoc
	if len(b.Forecast) > 0 {
		if err := json.Unmarshal(b.Forecast, &fc); err != nil {
			return nil, landscape.Timeline{}, nil, fmt.Errorf("owm: decoding forecast: %w", err)
		}
	}

	f := &landscape.Forecast{Samples: []landscape.Sample{cur.sample()}}
	for _, e := range fc.List {
		if e.Dt <= f.Samples[len(f.Samples)-1].Time {
			continue
		}
		f.Samples = append(f.Samples, e.sample())
	}

	tl := landscape.Timeline{
		Now:        cur.Dt,
		Sunrise:    cur.Sys.Sunrise,
		Sunset:     cur.Sys.Sunset,
		HorizonEnd: cur.Dt + int64(Horizon/time.Second),
	}

	loc := time.FixedZone("local", int(cur.Timezone))
	return f, tl, loc, nil
}
