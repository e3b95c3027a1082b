package glyph

// Bitmap is a 1-bit glyph mask. Rows are stored as bit masks with bit 0 at
// the leftmost pixel; all cell widths of the font fit into 32 bits.
type Bitmap struct {
	Width  int
	Height int
	Rows   []uint32
}

// NewBitmap allocates an all-clear bitmap.
func NewBitmap(w, h int) Bitmap {
	return Bitmap{Width: w, Height: h, Rows: make([]uint32, h)}
}

// At reports whether the pixel at (x,y) is set. Out-of-bounds pixels read
// as clear.
func (b Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Rows[y]&(1<<uint(x)) != 0
}

// Set marks the pixel at (x,y). Out-of-bounds writes are dropped.
func (b Bitmap) Set(x, y int) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Rows[y] |= 1 << uint(x)
}

// Union ORs other into b. Any pixel set in either mask is set in the result.
// This is a mask union, not a transparency composite.
func (b Bitmap) Union(other Bitmap) {
	n := b.Height
	if other.Height < n {
		n = other.Height
	}
	for y := 0; y < n; y++ {
		b.Rows[y] |= other.Rows[y]
	}
}

// IsEmpty reports whether no pixel is set.
func (b Bitmap) IsEmpty() bool {
	for _, row := range b.Rows {
		if row != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the bitmap.
func (b Bitmap) Clone() Bitmap {
	c := Bitmap{Width: b.Width, Height: b.Height, Rows: make([]uint32, len(b.Rows))}
	copy(c.Rows, b.Rows)
	return c
}
