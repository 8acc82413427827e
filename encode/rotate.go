package encode

import "image"

// Rotate90 returns m rotated a quarter turn clockwise, swapping width
// and height. Used for the eink variant whose target panel is mounted
// with its controller on the short edge.
func Rotate90(m image.Image) *image.RGBA {
	b := m.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, m.At(x, y))
		}
	}
	return out
}

// Rotate270 is the inverse of Rotate90.
func Rotate270(m image.Image) *image.RGBA {
	b := m.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(y-b.Min.Y, b.Max.X-1-x, m.At(x, y))
		}
	}
	return out
}
