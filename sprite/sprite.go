/*
Package sprite implements the immutable asset catalog used by the
landscape renderer.

Each sprite is authored as a 1-bit mask; rows of '#' and '.' compiled
into the binary. A sprite also carries a color role which the compositor
resolves against the active palette scheme, so the same mask serves both
the full-color and the monochrome output variants. The catalog is built
once and never mutated, making it safe for any number of concurrent
renders.
*/
package sprite

import (
	"fmt"
	"image"
)

// Role names the palette slot a sprite is painted with.
type Role int

const (
	RoleForeground Role = iota
	RoleSoil
	RoleSmoke
	RoleRain
	RoleSnow
)

// Sprite is a single named bitmap of the catalog.
type Sprite struct {
	ID   string
	Role Role
	Mask *image.Alpha
}

// Catalog is an immutable registry of sprites keyed by ID.
type Catalog struct {
	sprites map[string]Sprite
}

// Lookup returns the sprite for id. A missing id indicates a broken
// asset bundle and is surfaced as an error rather than skipped.
func (c *Catalog) Lookup(id string) (Sprite, error) {
	s, ok := c.sprites[id]
	if !ok {
		return Sprite{}, fmt.Errorf("sprite: no asset %q in catalog", id)
	}
	return s, nil
}

// IDs returns every sprite ID in the catalog, in no particular order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.sprites))
	for id := range c.sprites {
		ids = append(ids, id)
	}
	return ids
}

func parseMask(rows []string) *image.Alpha {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				m.Pix[y*m.Stride+x] = 0xff
			}
		}
	}
	return m
}

// Default returns the built-in catalog. The same value is returned on
// every call; callers must treat it as read-only.
func Default() *Catalog {
	return defaultCatalog
}

var defaultCatalog *Catalog

func init() {
	sprites := make(map[string]Sprite, len(art))
	for id, a := range art {
		sprites[id] = Sprite{ID: id, Role: a.role, Mask: parseMask(a.rows)}
	}
	defaultCatalog = &Catalog{sprites: sprites}
}
