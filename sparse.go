package bitmapgo

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// SparseBitmap implements the Bitmap contract on top of a 32-bit Roaring
// Bitmap. It wraps the official roaring implementation.
//
// Compared to SimpleBitmap it stays compact when the set indices are sparse
// or far apart: setting index 1_000_000 on an empty SparseBitmap allocates a
// single small container, not a megabit of zeroed words. For small, dense
// index ranges SimpleBitmap is the cheaper choice.
//
// A SparseBitmap is not safe for concurrent use; wrap it in a Safe for that.
type SparseBitmap struct {
	rb *roaring.Bitmap
}

var _ Bitmap[*SparseBitmap] = (*SparseBitmap)(nil)

// NewSparse creates an empty SparseBitmap.
func NewSparse() *SparseBitmap {
	return &SparseBitmap{
		rb: roaring.New(),
	}
}

// Set marks index as present.
func (b *SparseBitmap) Set(index uint32) {
	b.rb.Add(index)
}

// Get reports whether index was previously set.
func (b *SparseBitmap) Get(index uint32) bool {
	return b.rb.Contains(index)
}

// Union returns a new SparseBitmap holding every index present in b or in
// other. Neither operand is mutated.
func (b *SparseBitmap) Union(other *SparseBitmap) *SparseBitmap {
	return &SparseBitmap{rb: roaring.Or(b.rb, other.rb)}
}

// Clone returns an independent deep copy of the bitmap.
func (b *SparseBitmap) Clone() *SparseBitmap {
	return &SparseBitmap{rb: b.rb.Clone()}
}

// Cardinality returns the number of set bits.
func (b *SparseBitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// IsEmpty returns true if no bits are set.
func (b *SparseBitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// String renders the set indices in roaring's set notation, e.g. {1,2,9}.
//
// The rendering is diagnostic only. It is not a serialization format and
// its layout is not guaranteed to be stable across versions.
func (b *SparseBitmap) String() string {
	return b.rb.String()
}
