package bitmapgo

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// wordBits is the number of bits per storage word.
	wordBits = 32

	// wordMask extracts the in-word bit position: index&wordMask == index%wordBits.
	wordMask = wordBits - 1
)

// SimpleBitmap is a dense, growable bitmap backed by a slice of 32-bit words.
// Bit b of word w represents index w*32 + b.
//
// Storage starts empty and is extended lazily by Set, one word granularity,
// up to the highest index ever set; it never shrinks. Indices beyond the
// current storage are implicitly absent, so Get is total over uint32 without
// allocating. The zero value is ready to use.
//
// A SimpleBitmap is not safe for concurrent use; wrap it in a Safe for that.
type SimpleBitmap struct {
	words []uint32
}

var _ Bitmap[*SimpleBitmap] = (*SimpleBitmap)(nil)

// New creates an empty SimpleBitmap.
func New() *SimpleBitmap {
	return &SimpleBitmap{}
}

// NewWithCapacity creates an empty SimpleBitmap with storage preallocated
// for indices below capacity. This is purely a performance hint: the bitmap
// is observably identical to New() until the first Set.
func NewWithCapacity(capacity uint32) *SimpleBitmap {
	return &SimpleBitmap{
		words: make([]uint32, 0, int((int64(capacity)+wordBits-1)/wordBits)),
	}
}

// Set marks index as present.
//
// If index lies beyond the current storage, the word slice is extended with
// zeroed words up to and including the word holding index. The maximum
// representable index is math.MaxUint32, an implicit capacity bound rather
// than an error case.
func (b *SimpleBitmap) Set(index uint32) {
	wordPos := int(index / wordBits)
	bitPos := index & wordMask

	if wordPos >= len(b.words) {
		b.words = append(b.words, make([]uint32, wordPos+1-len(b.words))...)
	}

	b.words[wordPos] |= 1 << bitPos
}

// Get reports whether index was previously set. Indices beyond the current
// storage return false without growing it.
func (b *SimpleBitmap) Get(index uint32) bool {
	wordPos := int(index / wordBits)
	if wordPos >= len(b.words) {
		return false
	}
	return (b.words[wordPos]>>(index&wordMask))&1 == 1
}

// Union returns a new SimpleBitmap holding every index present in b or in
// other. Operands of different lengths are handled by zero-extension: the
// missing tail of the shorter operand contributes nothing, and the longer
// operand's tail is copied through unchanged. Neither operand is mutated.
func (b *SimpleBitmap) Union(other *SimpleBitmap) *SimpleBitmap {
	short, long := b.words, other.words
	if len(short) > len(long) {
		short, long = long, short
	}

	words := make([]uint32, len(long))
	for i, w := range short {
		words[i] = w | long[i]
	}
	copy(words[len(short):], long[len(short):])

	return &SimpleBitmap{words: words}
}

// Clone returns an independent deep copy of the bitmap.
func (b *SimpleBitmap) Clone() *SimpleBitmap {
	words := make([]uint32, len(b.words))
	copy(words, b.words)
	return &SimpleBitmap{words: words}
}

// Cardinality returns the number of set bits.
func (b *SimpleBitmap) Cardinality() uint64 {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount32(w)
	}
	return uint64(count)
}

// IsEmpty returns true if no bits are set.
func (b *SimpleBitmap) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// WordCount returns the number of 32-bit words currently backing the bitmap.
// It grows only through Set, never through Get.
func (b *SimpleBitmap) WordCount() int {
	return len(b.words)
}

// String renders each stored word as a 32-character binary string, most
// significant bit first, one line per word in address order.
//
// The rendering is diagnostic only. It is not a serialization format and
// its layout is not guaranteed to be stable across versions.
func (b *SimpleBitmap) String() string {
	var sb strings.Builder
	sb.Grow(len(b.words) * (wordBits + 1))
	for _, w := range b.words {
		fmt.Fprintf(&sb, "%032b\n", w)
	}
	return sb.String()
}
