/*
Package pixel provides the pixel-surface contract for sprite-sheet decoding.

A Surface hands out pixels as packed RGBA8888 words, with R in the top byte
and A in the low byte. Sprite-sheet metadata lives in the alpha channel, so
nearly all consumers only ever look at the low byte of a word.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>

*/
package pixel

import (
	"image"
)

// Surface is a pixel-addressable image.
//
// Pixel returns the pixel at (x,y) as an RGBA8888 word. Out-of-bounds reads
// return 0, i.e. fully transparent, and must never panic. Tag decoding near
// sheet edges relies on this.
type Surface interface {
	Pixel(x, y int) uint32
	Size() (w, h int)
}

// Alpha extracts the alpha channel of an RGBA8888 word.
func Alpha(word uint32) uint32 {
	return word & 0xff
}

// Tagify treats a word with a zero alpha byte as absent, returning 0.
// This distinguishes "no tag data" from a tag word whose value is 0.
func Tagify(word uint32) uint32 {
	if word&0xff == 0 {
		return 0
	}
	return word
}

// RGBA packs four channel bytes into an RGBA8888 word.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}

// --- In-memory surface -----------------------------------------------------

// MemSurface is a Surface backed by a flat, row-major pixel slice.
type MemSurface struct {
	width  int
	height int
	pix    []uint32
}

// NewMemSurface creates an all-transparent surface of the given size.
func NewMemSurface(w, h int) *MemSurface {
	return &MemSurface{
		width:  w,
		height: h,
		pix:    make([]uint32, w*h),
	}
}

// Pixel is part of the Surface interface. Out-of-bounds reads return 0.
func (s *MemSurface) Pixel(x, y int) uint32 {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.width+x]
}

// Size returns width and height of the surface.
func (s *MemSurface) Size() (int, int) {
	return s.width, s.height
}

// Set stores an RGBA8888 word at (x,y). Out-of-bounds writes are dropped.
func (s *MemSurface) Set(x, y int, word uint32) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = word
}

var _ Surface = &MemSurface{}

// FromImage copies a decoded image into a MemSurface. Image file decoding
// itself is a concern of the caller; any image.Image will do.
func FromImage(img image.Image) *MemSurface {
	bounds := img.Bounds()
	s := NewMemSurface(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			word := RGBA(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
			s.Set(x-bounds.Min.X, y-bounds.Min.Y, word)
		}
	}
	return s
}
