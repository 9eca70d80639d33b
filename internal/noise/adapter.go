// Package noise wraps a deterministic 3D FBM noise function keyed by an
// integer seed, as assumed available by spec.md §1 ("the noise-library
// itself... assumed available as a deterministic 3D FBM noise function
// keyed by integer seed returning a scalar in a bounded range").
package noise

import "github.com/ojrac/opensimplex-go"

// Default fractal parameters, matching the teacher's own generator
// defaults (internal/world/generator.go: octaves=4, persistence=0.5,
// lacunarity=2.0).
const (
	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
)

// Adapter layers octaves of simplex noise into a single scalar in [0,1].
// One simplex instance per octave is seeded with a distinct derived seed
// so octaves don't correlate.
type Adapter struct {
	octaves     int
	persistence float64
	lacunarity  float64
	layers      []opensimplex.Noise
}

// NewAdapter builds an FBM adapter over `octaves` layers of simplex
// noise seeded from `seed`.
func NewAdapter(seed int64, octaves int, persistence, lacunarity float64) *Adapter {
	if octaves < 1 {
		octaves = 1
	}
	layers := make([]opensimplex.Noise, octaves)
	for i := range layers {
		layers[i] = opensimplex.New(seed + int64(i)*1013)
	}
	return &Adapter{
		octaves:     octaves,
		persistence: persistence,
		lacunarity:  lacunarity,
		layers:      layers,
	}
}

// NewDefaultAdapter builds an Adapter using DefaultOctaves/Persistence/
// Lacunarity.
func NewDefaultAdapter(seed int64) *Adapter {
	return NewAdapter(seed, DefaultOctaves, DefaultPersistence, DefaultLacunarity)
}

// Sample returns n(x,y,z) = |fbm(x,y,z)| folded into [0,1], per spec.md
// §4.2.
func (a *Adapter) Sample(x, y, z float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < a.octaves; i++ {
		sum += a.layers[i].Eval3(x*frequency, y*frequency, z*frequency) * amplitude
		norm += amplitude
		amplitude *= a.persistence
		frequency *= a.lacunarity
	}
	if norm == 0 {
		return 0
	}
	v := sum / norm
	if v < 0 {
		v = -v
	}
	if v > 1 {
		v = 1
	}
	return v
}
