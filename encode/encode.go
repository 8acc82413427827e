/*
Package encode serializes a composited landscape canvas into its final
binary representation.

Two encodings are produced. The full-color variants are written as
paletted PNG after median-cut quantization to at most 256 colors. The
monochrome variants are written as an uncompressed 1 bit-per-pixel
Windows BMP: a 14 byte file header, a 40 byte BITMAPINFOHEADER, a two
entry color table and bottom-up pixel rows each padded to a 32-bit
boundary, which is the exact layout inexpensive E-Ink driver boards
consume directly.
*/
package encode
