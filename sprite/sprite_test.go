package sprite

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allIDs = []string{
	Sun, Moon, CloudSmall, CloudLarge,
	TreeN, TreeE, TreeS, TreeW,
	RainStreak, Snowflake, House, Smoke, Grass,
	PressLow, PressNorm, PressHigh,
	TickMajor, TickMinor, TempMin, TempMax,
	EventHeart, EventStar, EventGift,
}

func TestCatalogComplete(t *testing.T) {
	c := Default()
	for _, id := range allIDs {
		s, err := c.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, s.ID)

		opaque := 0
		for _, a := range s.Mask.Pix {
			if a == 0xff {
				opaque++
			}
		}
		assert.Positive(t, opaque, "sprite %s has an empty mask", id)
	}
	assert.Len(t, c.IDs(), len(allIDs))
}

func TestCatalogMissingAsset(t *testing.T) {
	_, err := Default().Lookup("unicorn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unicorn")
}

func TestCatalogRoles(t *testing.T) {
	tests := map[string]Role{
		TreeN:      RoleForeground,
		House:      RoleForeground,
		Smoke:      RoleSmoke,
		Grass:      RoleSoil,
		RainStreak: RoleRain,
		Snowflake:  RoleSnow,
	}
	for id, want := range tests {
		s, err := Default().Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, want, s.Role, id)
	}
}

func TestParseMask(t *testing.T) {
	m := parseMask([]string{"#.#", ".#."})
	assert.Equal(t, 3, m.Bounds().Dx())
	assert.Equal(t, 2, m.Bounds().Dy())
	assert.Equal(t, uint8(0xff), m.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), m.AlphaAt(1, 0).A)
	assert.Equal(t, uint8(0xff), m.AlphaAt(1, 1).A)
}

func TestCatalogConcurrentReads(t *testing.T) {
	c := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, id := range allIDs {
					if _, err := c.Lookup(id); err != nil {
						t.Error(err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
