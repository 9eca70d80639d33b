// Package heightmap implements the per-column maximum solid Y tracked
// alongside the voxel buffer.
package heightmap

// Empty is the sentinel stored for a column with no solid voxel.
const Empty int32 = -1

// Heightmap is a flat W*D array indexed z*W+x, each entry holding the
// maximum Y of a non-AIR voxel in that column, or Empty.
type Heightmap struct {
	W, D   int
	Values []int32
}

// New allocates a heightmap for a W*D column grid, initialized to Empty.
func New(w, d int) *Heightmap {
	values := make([]int32, w*d)
	for i := range values {
		values[i] = Empty
	}
	return &Heightmap{W: w, D: d, Values: values}
}

func (h *Heightmap) index(x, z int) int {
	return z*h.W + x
}

// Get returns the stored height for column (x,z).
func (h *Heightmap) Get(x, z int) int32 {
	return h.Values[h.index(x, z)]
}

// Set stores a new height for column (x,z).
func (h *Heightmap) Set(x, z int, y int32) {
	h.Values[h.index(x, z)] = y
}

// Reset restores every column to Empty.
func (h *Heightmap) Reset() {
	for i := range h.Values {
		h.Values[i] = Empty
	}
}
