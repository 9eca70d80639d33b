// Package generator fills a voxel buffer and heightmap from noise,
// per spec.md §4.2.
package generator

import (
	"math"

	"voxelcore/internal/heightmap"
	"voxelcore/internal/noise"
	"voxelcore/internal/voxel"
)

// Border is the width, in voxels, of the AIR margin left along X and Z
// to give later edits room to inspect neighbors at world borders.
const Border = 32

// Mode selects the terrain shaping function.
type Mode int

const (
	Default Mode = iota
	Sphere
)

// Generate fills voxels (type STONE + RGB) and grows heightmap for every
// solid cell, sampling n(x,y,z) from adapter. voxels and heightmap must
// already be sized for world (typically freshly zeroed/Empty).
func Generate(world voxel.World, hm *heightmap.Heightmap, voxels []byte, adapter *noise.Adapter, mode Mode) {
	for z := Border; z < world.D-Border; z++ {
		for x := Border; x < world.W-Border; x++ {
			for y := 0; y < world.H; y++ {
				n := adapter.Sample(float64(x), float64(y), float64(z))
				if !isSolid(world, x, y, z, n, mode) {
					continue
				}
				off, ok := world.Offset(x, y, z)
				if !ok {
					continue
				}
				voxel.SetType(voxels, off, voxel.Stone)
				color := ColorFromNoise(byte(255 * n))
				voxel.SetRGB(voxels, off, byte(color>>16), byte(color>>8), byte(color))
				if hm.Get(x, z) < int32(y) {
					hm.Set(x, z, int32(y))
				}
			}
		}
	}
}

func isSolid(world voxel.World, x, y, z int, n float64, mode Mode) bool {
	switch mode {
	case Sphere:
		return isSolidSphere(world, x, y, z, n)
	default:
		return float64(y) <= n*float64(world.H)
	}
}

func isSolidSphere(world voxel.World, x, y, z int, n float64) bool {
	if float64(y) >= float64(world.H)-32 || n <= 0.1 {
		return false
	}
	cx := float64(world.W)/2 - float64(x)
	cy := float64(world.H)/2 - float64(y)
	cz := float64(world.D)/2 - float64(z)

	withinRing := float64(y) < 8 || math.Sqrt(cx*cx+cz*cz) >= 0.05*float64(world.W)
	if !withinRing {
		return false
	}
	return math.Sqrt(cx*cx+cy*cy+cz*cz) <= 0.425*float64(world.W)
}
