package bitmapgo

// Bitmap describes the presence or absence of uint32 indices.
//
// The contract is intentionally minimal: implementations may pack bits into
// plain words, wrap roaring-like compressed bitmaps, or use posting lists.
// The type parameter is the implementation itself, so Union and Clone are
// closed over a single variant: two SimpleBitmaps combine into a
// SimpleBitmap, two SparseBitmaps into a SparseBitmap.
//
// Every uint32 is a valid index for every operation. There are no failure
// modes; no method returns an error or panics on any input.
type Bitmap[B any] interface {
	// Set marks index as present, growing internal storage if needed.
	Set(index uint32)

	// Get reports whether index was previously set. Indices beyond the
	// current storage bounds are absent, never an error.
	Get(index uint32) bool

	// Union returns a new bitmap holding every index present in the
	// receiver or in other. Neither operand is mutated, and both remain
	// usable afterwards.
	Union(other B) B

	// Clone returns an independent deep copy.
	Clone() B
}

// Union returns a new bitmap holding every index present in a or b.
// It is the function form of the Union method for call sites that prefer
// union(a, b) over a.Union(b).
func Union[B Bitmap[B]](a, b B) B {
	return a.Union(b)
}
