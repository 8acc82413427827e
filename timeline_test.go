package landscape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const t0 = int64(1700000000)

func testTimeline() Timeline {
	return Timeline{
		Now:        t0,
		Sunrise:    t0 + 6*3600,
		Sunset:     t0 + 18*3600,
		HorizonEnd: t0 + 24*3600,
	}
}

func TestMapperBoundaries(t *testing.T) {
	m := newMapper(testTimeline(), 296)

	x, ok := m.X(t0)
	assert.True(t, ok)
	assert.Equal(t, 0, x)

	x, ok = m.X(t0 + 24*3600)
	assert.True(t, ok)
	assert.Equal(t, 295, x)
}

func TestMapperOutOfRange(t *testing.T) {
	m := newMapper(testTimeline(), 296)

	_, ok := m.X(t0 - 1)
	assert.False(t, ok)

	_, ok = m.X(t0 + 24*3600 + 1)
	assert.False(t, ok)
}

func TestMapperMonotonic(t *testing.T) {
	m := newMapper(testTimeline(), 296)

	prev := -1
	for tt := t0; tt <= t0+24*3600; tt += 600 {
		x, ok := m.X(tt)
		if !ok {
			t.Fatalf("time %d unexpectedly out of range", tt)
		}
		if x < prev {
			t.Fatalf("x(%d) = %d, below previous %d", tt, x, prev)
		}
		prev = x
	}
}

func TestMapperSunriseQuarter(t *testing.T) {
	// Sunrise six hours into a 24 hour horizon sits a quarter of the
	// way across the canvas.
	m := newMapper(testTimeline(), 296)
	x, ok := m.X(t0 + 6*3600)
	assert.True(t, ok)
	assert.Equal(t, 296/4, x)
}

func TestCalendarMarks(t *testing.T) {
	// Anchor Now at 18:00 UTC so the horizon crosses one midnight and
	// one noon.
	now := time.Date(2023, time.November, 14, 18, 0, 0, 0, time.UTC)
	tl := Timeline{Now: now.Unix(), HorizonEnd: now.Add(24 * time.Hour).Unix()}

	noons, midnights := calendarMarks(tl, time.UTC)
	assert.Len(t, noons, 1)
	assert.Len(t, midnights, 1)
	assert.Equal(t, time.Date(2023, time.November, 15, 12, 0, 0, 0, time.UTC).Unix(), noons[0])
	assert.Equal(t, time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC).Unix(), midnights[0])
}
