package encode

import (
	"encoding/binary"
	"errors"
	"image"
	"io"
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	paletteLen    = 2 * 4
	dataOffset    = fileHeaderLen + infoHeaderLen + paletteLen
)

var errEmptyImage = errors.New("bmp: empty image")

// Ordered 2x2 Bayer thresholds used when quantizing the canvas down to
// one bit per pixel.
var bayer = [2][2]uint32{
	{64, 192},
	{224, 96},
}

func luminance(r, g, b uint32) uint32 {
	// 16-bit channels from RGBA(), scaled back to 8 bits.
	return (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
}

type bmpEncoder struct {
	w io.Writer
}

func (e *bmpEncoder) writeHeaders(width, height, rowLen int) error {
	imageSize := rowLen * height

	if _, err := e.w.Write([]byte{'B', 'M'}); err != nil {
		return err
	}
	for _, v := range []uint32{uint32(dataOffset + imageSize), 0, dataOffset} {
		if err := binary.Write(e.w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	info := []interface{}{
		uint32(infoHeaderLen),
		int32(width),
		int32(height), // positive height: rows are stored bottom-up
		uint16(1),     // planes
		uint16(1),     // bits per pixel
		uint32(0),     // no compression
		uint32(imageSize),
		int32(2835), // 72 DPI
		int32(2835),
		uint32(2), // colors used
		uint32(0),
	}
	for _, v := range info {
		if err := binary.Write(e.w, binary.LittleEndian, v); err != nil {
			return err
		}
	}

	// Color table: index 0 black, index 1 white, each BGRA.
	_, err := e.w.Write([]byte{0, 0, 0, 0, 0xff, 0xff, 0xff, 0})
	return err
}

func (e *bmpEncoder) encode(m image.Image, invert bool) error {
	b := m.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return errEmptyImage
	}

	rowLen := (width + 31) / 32 * 4
	if err := e.writeHeaders(width, height, rowLen); err != nil {
		return err
	}

	row := make([]byte, rowLen)
	for y := b.Max.Y - 1; y >= b.Min.Y; y-- {
		for i := range row {
			row[i] = 0
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := m.At(x, y).RGBA()
			if luminance(r, g, bl) > bayer[y&1][x&1] {
				i := x - b.Min.X
				row[i>>3] |= 0x80 >> (i & 7)
			}
		}
		if invert {
			for i := 0; i < (width+7)/8; i++ {
				row[i] ^= 0xff
			}
			// Keep the padding bits of the final byte clear.
			if pad := (8 - width&7) & 7; pad > 0 {
				row[(width-1)>>3] &^= 1<<pad - 1
			}
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// BMP1 writes m to w as an uncompressed 1 bit-per-pixel BMP, dithering
// through a fixed ordered matrix. With invert set every pixel bit is
// flipped, which is how the bw_inverted variant is produced.
func BMP1(w io.Writer, m image.Image, invert bool) error {
	e := &bmpEncoder{w: w}
	return e.encode(m, invert)
}
