// Package mutator implements the ordered single-voxel edit described in
// spec.md §4.5: write the new voxel, keep the heightmap consistent, and
// darken/relight exactly the light the edit invalidates. Like
// internal/light, it performs no internal allocation: queueA, queueB
// and queueC are caller-owned scratch reused across edits.
package mutator

import (
	"voxelcore/internal/heightmap"
	"voxelcore/internal/light"
	"voxelcore/internal/voxel"
)

// Update applies a single voxel edit at (x,y,z), writing newType (and,
// for solid types, its color), and returns false without modifying
// anything if the coordinate is outside world. The steps run in a
// fixed order: darken light the old voxel was responsible for, write
// the new voxel, repair the heightmap, then relight whatever the edit
// newly exposes.
func Update(world voxel.World, hm *heightmap.Heightmap, voxels []byte, x, y, z int, newType voxel.Type, r, g, b byte, queueA, queueB, queueC []int) bool {
	off, ok := world.Offset(x, y, z)
	if !ok {
		return false
	}

	oldType := voxel.GetType(voxels, off)
	wasSolid := oldType != voxel.Air
	willBeSolid := newType != voxel.Air

	// A LIGHT block being removed/retyped loses its own emission; a
	// voxel turning solid blocks whatever light was passing through it.
	// Either way the light the old voxel was responsible for must be
	// darkened before the new voxel is written.
	if oldType == voxel.Light || (!wasSolid && willBeSolid) {
		darken(world, hm, voxels, off, queueA, queueB, queueC)
	}

	voxel.SetType(voxels, off, newType)
	if willBeSolid {
		voxel.SetRGB(voxels, off, r, g, b)
	} else {
		voxel.SetRGB(voxels, off, 0, 0, 0)
	}

	updateHeightmap(world, hm, voxels, x, y, z, wasSolid, willBeSolid)

	if newType == voxel.Light {
		voxel.SetBlockLight(voxels, off, voxel.MaxLight)
		seeds := append(queueA[:0], off)
		light.Flood(world, hm, voxels, light.BlockLight, seeds, queueB, queueC)
	}

	// A voxel turning to AIR opens a new cavity: reseed both channels
	// from its neighbors so existing light (including sunlight now
	// running straight down the repaired heightmap column) spreads
	// into it.
	if wasSolid && !willBeSolid {
		relight(world, hm, voxels, x, y, z, queueA, queueB, queueC)
	}

	return true
}

// darken removes whatever light (on either channel) was anchored at
// off before the edit, then reflows light back in from any
// still-valid neighboring sources.
func darken(world voxel.World, hm *heightmap.Heightmap, voxels []byte, off int, queueA, queueB, queueC []int) {
	for _, ch := range [2]light.Channel{light.BlockLight, light.SunLight} {
		level := light.GetLevel(voxels, off, ch)
		if level == 0 {
			continue
		}
		seeds := append(queueA[:0], light.EncodeRemoval(off, level))
		reflood := light.Remove(world, hm, voxels, ch, seeds, queueB, queueC, queueA[:0])
		light.Flood(world, hm, voxels, ch, reflood, queueB, queueC)
	}
}

// relight seeds both light channels from the 6 neighbors of a voxel
// that just turned to AIR, letting Flood spread their existing light
// into the new cavity.
func relight(world voxel.World, hm *heightmap.Heightmap, voxels []byte, x, y, z int, queueA, queueB, queueC []int) {
	seeds := queueA[:0]
	for _, d := range light.NeighborDeltas {
		noff, ok := world.Offset(x+d[0], y+d[1], z+d[2])
		if ok {
			seeds = append(seeds, noff)
		}
	}
	light.Flood(world, hm, voxels, light.BlockLight, seeds, queueB, queueC)
	light.Flood(world, hm, voxels, light.SunLight, seeds, queueB, queueC)
}

// updateHeightmap keeps hm consistent with a type change at (x,y,z).
// Growing a column is O(1); losing its topmost solid voxel requires a
// downward rescan. An emptied column with no remaining solid voxel is
// stored as 0, matching spec.md's literal wording rather than the
// Empty sentinel — see DESIGN.md's Open Question resolution.
func updateHeightmap(world voxel.World, hm *heightmap.Heightmap, voxels []byte, x, y, z int, wasSolid, willBeSolid bool) {
	if willBeSolid {
		if int32(y) > hm.Get(x, z) {
			hm.Set(x, z, int32(y))
		}
		return
	}
	if !wasSolid || int32(y) != hm.Get(x, z) {
		return
	}

	for yy := y - 1; yy >= 0; yy-- {
		off, ok := world.Offset(x, yy, z)
		if !ok {
			continue
		}
		if !voxel.IsAir(voxels, off) {
			hm.Set(x, z, int32(yy))
			return
		}
	}
	hm.Set(x, z, 0)
}
