package landscape

import (
	"math"
	"time"
)

// mapper projects absolute timestamps onto horizontal pixel columns.
// Now lands exactly on column 0 and HorizonEnd on column width-1; the
// rightmost column is inclusive.
type mapper struct {
	tl    Timeline
	width int
}

func newMapper(tl Timeline, width int) mapper {
	return mapper{tl: tl, width: width}
}

// X returns the column for t and whether t lies within the horizon.
// Out-of-range times are reported rather than clamped so callers can
// skip the marker.
func (m mapper) X(t int64) (int, bool) {
	if t < m.tl.Now || t > m.tl.HorizonEnd {
		return 0, false
	}
	span := float64(m.tl.HorizonEnd - m.tl.Now)
	x := int(math.Round(float64(t-m.tl.Now) / span * float64(m.width-1)))
	if x < 0 {
		x = 0
	}
	if x >= m.width {
		x = m.width - 1
	}
	return x, true
}

// Day reports whether t falls in the daylight span of the timeline.
func (m mapper) Day(t int64) bool {
	return t >= m.tl.Sunrise && t < m.tl.Sunset
}

// T is the inverse of X, used for per-column day/night shading.
func (m mapper) T(x int) int64 {
	span := float64(m.tl.HorizonEnd - m.tl.Now)
	return m.tl.Now + int64(float64(x)/float64(m.width-1)*span)
}

// calendarMarks returns the noon and midnight boundaries falling inside
// the horizon, computed from Now in loc rather than supplied externally.
func calendarMarks(tl Timeline, loc *time.Location) (noons, midnights []int64) {
	if loc == nil {
		loc = time.UTC
	}
	day := time.Unix(tl.Now, 0).In(loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	for d := 0; d < 3; d++ {
		base := start.AddDate(0, 0, d)
		if t := base.Unix(); t >= tl.Now && t <= tl.HorizonEnd {
			midnights = append(midnights, t)
		}
		if t := base.Add(12 * time.Hour).Unix(); t >= tl.Now && t <= tl.HorizonEnd {
			noons = append(noons, t)
		}
	}
	return noons, midnights
}
