// Package sand implements the falling-sand cellular simulator from
// spec.md §4.7: a single alternating-direction sweep that drops loose
// SAND voxels, hardens settled sand into STONE, and reverts
// undermined STONE back to SAND so it can fall again next step.
package sand

import (
	"voxelcore/internal/heightmap"
	"voxelcore/internal/voxel"
)

// fallCandidates is the 5-candidate fall rule: straight down first,
// then the four downward diagonals, checked in this fixed order.
var fallCandidates = [5][3]int{
	{0, -1, 0},
	{1, -1, 0},
	{-1, -1, 0},
	{0, -1, 1},
	{0, -1, -1},
}

// Simulate runs one step of the automaton over the whole world. The
// X/Z scan direction alternates with step (mod 4) across the 4
// combinations of forward/backward per axis, so a single sweep doesn't
// bias cascades toward one corner of the world. Y layers are scanned
// bottom-up, each whole layer before the next, so a voxel that just
// fell (straight down or diagonally) is not re-examined within the
// same step.
//
// Simulate invalidates hm: a sand collapse can change any column's
// topmost solid voxel, and recomputing it is the caller's
// responsibility (e.g. a full heightmap rescan), not this package's.
func Simulate(world voxel.World, hm *heightmap.Heightmap, voxels []byte, step int) {
	xStep, xStart, xEnd := 1, 0, world.W
	if step%2 == 1 {
		xStep, xStart, xEnd = -1, world.W-1, -1
	}
	zStep, zStart, zEnd := 1, 0, world.D
	if (step/2)%2 == 1 {
		zStep, zStart, zEnd = -1, world.D-1, -1
	}

	for y := 1; y < world.H; y++ {
		for z := zStart; z != zEnd; z += zStep {
			for x := xStart; x != xEnd; x += xStep {
				off, ok := world.Offset(x, y, z)
				if !ok {
					continue
				}
				switch voxel.GetType(voxels, off) {
				case voxel.Sand:
					fall(world, voxels, x, y, z, off)
				case voxel.Stone:
					revertIfUnsupported(world, voxels, x, y, z, off)
				}
			}
		}
	}

	hm.Reset()
}

func fall(world voxel.World, voxels []byte, x, y, z, off int) {
	r, g, b := voxel.GetR(voxels, off), voxel.GetG(voxels, off), voxel.GetB(voxels, off)

	for _, d := range fallCandidates {
		noff, ok := world.Offset(x+d[0], y+d[1], z+d[2])
		if !ok || !voxel.IsAir(voxels, noff) {
			continue
		}
		voxel.SetType(voxels, off, voxel.Air)
		voxel.SetRGB(voxels, off, 0, 0, 0)
		voxel.SetType(voxels, noff, voxel.Sand)
		voxel.SetRGB(voxels, noff, r, g, b)
		return
	}

	// No candidate was open: this grain has come to rest and hardens.
	voxel.SetType(voxels, off, voxel.Stone)
}

func revertIfUnsupported(world voxel.World, voxels []byte, x, y, z, off int) {
	below, ok := world.Offset(x, y-1, z)
	if !ok {
		// y == 0: the world floor always counts as support.
		return
	}
	if voxel.IsAir(voxels, below) {
		voxel.SetType(voxels, off, voxel.Sand)
	}
}
