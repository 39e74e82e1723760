// Package bitmapgo provides growable bitmaps for Go.
//
// A bitmap records the presence or absence of uint32 indices and combines
// with another bitmap of the same variant through a non-mutating union.
// Storage grows on demand: a fresh bitmap holds nothing and allocates
// nothing, and reading an index that was never set is always just false.
//
// # Quick Start
//
//	bm := bitmapgo.New()
//	bm.Set(1)
//	bm.Set(6)
//
//	other := bitmapgo.New()
//	other.Set(2)
//
//	merged := bm.Union(other) // or bitmapgo.Union(bm, other)
//	merged.Get(6)             // true
//	merged.Get(7)             // false
//
// # Variants
//
// Two backing representations implement the same Bitmap contract:
//
//   - SimpleBitmap: dense, packed 32-bit words. Predictable layout and the
//     fastest choice for small or dense index ranges.
//   - SparseBitmap: compressed Roaring containers. Stays small when indices
//     are sparse or far apart.
//
// Unions are closed over a variant: combining two SimpleBitmaps yields a
// SimpleBitmap, two SparseBitmaps a SparseBitmap.
//
// # Concurrency
//
// Variants are single-owner and internally unsynchronized. To share one
// bitmap between goroutines, wrap it:
//
//	shared := bitmapgo.NewSafe(bitmapgo.New())
//	go shared.Set(42)
//	shared.Get(42)
//
// # Diagnostics
//
// Both variants implement fmt.Stringer with a human-readable rendering of
// their contents. The renderings are debugging aids, not serialization
// formats, and their exact layout is not stable across versions.
package bitmapgo
