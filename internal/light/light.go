// Package light implements incremental BFS light propagation over the
// two voxel light channels (BlockLight, SunLight), per spec.md §4.3 and
// §4.4. Flood and Remove never allocate internally: callers provide
// reusable scratch queues, reslicing them with buf[:0]/append the way
// original_source/core/voxels.c reuses its fixed-size C arrays.
package light

import (
	"voxelcore/internal/heightmap"
	"voxelcore/internal/voxel"
)

// Channel selects which of the two light planes an operation acts on.
type Channel int

const (
	BlockLight Channel = iota
	SunLight
)

// NeighborDeltas is the load-bearing fixed traversal order: +X,-X,+Z,-Z,
// +Y,-Y. Index 5 (down) is singled out by Flood's vertical-sunlight rule
// below — changing this order changes propagation results.
var NeighborDeltas = [6][3]int{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 0, 1},
	{0, 0, -1},
	{0, 1, 0},
	{0, -1, 0},
}

const downIndex = 5

func getLevel(voxels []byte, off int, ch Channel) byte {
	if ch == SunLight {
		return voxel.GetSunLight(voxels, off)
	}
	return voxel.GetBlockLight(voxels, off)
}

func setLevel(voxels []byte, off int, ch Channel, v byte) {
	if ch == SunLight {
		voxel.SetSunLight(voxels, off, v)
	} else {
		voxel.SetBlockLight(voxels, off, v)
	}
}

// Flood drains seeds (offsets already carrying their source light level)
// breadth-first, spreading light into adjacent AIR voxels one level
// dimmer per hop. queueA and queueB are scratch frontier buffers owned
// by the caller; Flood only reslices them (buf[:0], append), so as long
// as their capacity is sized for the world no allocation occurs.
//
// Sunlight falling straight down (downIndex) out of a cell already at
// MaxLight carries at full strength with no attenuation, unconditionally
// — this is what lets an open shaft or cave stay fully lit however far
// it runs below the surrounding terrain's heightmap. Sunlight at MaxLight
// is not spread in any other direction into a cell lying above its own
// column's heightmap. Every other step attenuates by one per hop.
func Flood(world voxel.World, hm *heightmap.Heightmap, voxels []byte, ch Channel, seeds []int, queueA, queueB []int) {
	current := append(queueA[:0], seeds...)
	next := queueB[:0]

	for len(current) > 0 {
		next = next[:0]
		for _, off := range current {
			level := getLevel(voxels, off, ch)
			if level <= 1 {
				continue
			}
			x, y, z := world.Coords(off)

			for i, d := range NeighborDeltas {
				nx, ny, nz := x+d[0], y+d[1], z+d[2]
				noff, ok := world.Offset(nx, ny, nz)
				if !ok {
					continue
				}
				if !voxel.IsAir(voxels, noff) {
					continue
				}
				if ch == SunLight && i != downIndex && level == voxel.MaxLight && int32(ny) > hm.Get(nx, nz) {
					continue
				}

				propagated := level - 1
				if ch == SunLight && i == downIndex && level == voxel.MaxLight {
					propagated = voxel.MaxLight
				}

				if getLevel(voxels, noff, ch) >= propagated {
					continue
				}
				setLevel(voxels, noff, ch, propagated)
				next = append(next, noff)
			}
		}
		current, next = next, current
	}
}

// encodeRemoval packs an offset and its pre-removal light level into one
// int so Remove's BFS can run over plain []int scratch buffers, the way
// voxels.c threads a single flat queue through removeLight.
func encodeRemoval(off int, level byte) int {
	return off<<6 | int(level)
}

// EncodeRemoval exposes the removal-seed encoding to callers (the
// mutator) that need to seed Remove with a specific voxel's
// pre-removal level.
func EncodeRemoval(off int, level byte) int {
	return encodeRemoval(off, level)
}

// GetLevel reads a voxel's current level on the given channel.
func GetLevel(voxels []byte, off int, ch Channel) byte {
	return getLevel(voxels, off, ch)
}

func decodeRemoval(code int) (off int, level byte) {
	return code >> 6, byte(code & 0x3F)
}

// Remove darkens the light BFS-reachable from seeds (each already
// encoded via encodeRemoval with its pre-removal level) down to zero,
// and collects every boundary voxel that was lit to at least as bright
// by some other source into reflood — the caller should pass reflood to
// Flood afterward to restore correct levels. Remove returns the reflood
// slice it filled (same backing array, reslice of the passed buffer).
func Remove(world voxel.World, hm *heightmap.Heightmap, voxels []byte, ch Channel, seeds []int, queueA, queueB, reflood []int) []int {
	current := append(queueA[:0], seeds...)
	next := queueB[:0]
	reflood = reflood[:0]

	for _, code := range current {
		off, _ := decodeRemoval(code)
		setLevel(voxels, off, ch, 0)
	}

	for len(current) > 0 {
		next = next[:0]
		for _, code := range current {
			off, oldLevel := decodeRemoval(code)
			if oldLevel == 0 {
				continue
			}
			x, y, z := world.Coords(off)

			for i, d := range NeighborDeltas {
				nx, ny, nz := x+d[0], y+d[1], z+d[2]
				noff, ok := world.Offset(nx, ny, nz)
				if !ok {
					continue
				}
				nLevel := getLevel(voxels, noff, ch)
				if nLevel == 0 {
					continue
				}
				cascade := ch == SunLight && i == downIndex && oldLevel == voxel.MaxLight && nLevel == voxel.MaxLight
				if nLevel < oldLevel || cascade {
					setLevel(voxels, noff, ch, 0)
					next = append(next, encodeRemoval(noff, nLevel))
				} else {
					reflood = append(reflood, noff)
				}
			}
		}
		current, next = next, current
	}

	return reflood
}

// Propagate is the Sunlight Seeder: it scans every column, stamping
// MaxLight from the world ceiling down to (and including) each column's
// heightmap surface, then floods those seeds sideways/downward through
// any open caves via Flood. seeds, queueA and queueB are caller-owned
// scratch; seeds is reused as Flood's seed list.
func Propagate(world voxel.World, hm *heightmap.Heightmap, voxels []byte, seeds, queueA, queueB []int) {
	seeds = seeds[:0]
	for z := 0; z < world.D; z++ {
		for x := 0; x < world.W; x++ {
			top := hm.Get(x, z)
			for y := world.H - 1; y >= 0; y-- {
				off, ok := world.Offset(x, y, z)
				if !ok {
					continue
				}
				if int32(y) < top {
					break
				}
				if !voxel.IsAir(voxels, off) {
					continue
				}
				voxel.SetSunLight(voxels, off, voxel.MaxLight)
				seeds = append(seeds, off)
			}
		}
	}
	Flood(world, hm, voxels, SunLight, seeds, queueA, queueB)
}
