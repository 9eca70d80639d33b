package sand

import (
	"testing"

	"voxelcore/internal/heightmap"
	"voxelcore/internal/voxel"
)

func newTestWorld(w, h, d int) (voxel.World, *heightmap.Heightmap, []byte) {
	world := voxel.World{W: w, H: h, D: d}
	hm := heightmap.New(w, d)
	return world, hm, make([]byte, world.BufferLen())
}

func place(world voxel.World, voxels []byte, x, y, z int, t voxel.Type) {
	off, _ := world.Offset(x, y, z)
	voxel.SetType(voxels, off, t)
	if t != voxel.Air {
		voxel.SetRGB(voxels, off, 11, 22, 33)
	}
}

func typeAt(world voxel.World, voxels []byte, x, y, z int) voxel.Type {
	off, _ := world.Offset(x, y, z)
	return voxel.GetType(voxels, off)
}

func TestSandFallsStraightDownIntoOpenAir(t *testing.T) {
	world, hm, voxels := newTestWorld(8, 8, 8)
	place(world, voxels, 4, 5, 4, voxel.Sand)

	Simulate(world, hm, voxels, 0)

	if got := typeAt(world, voxels, 4, 5, 4); got != voxel.Air {
		t.Errorf("origin should be empty after falling, got %v", got)
	}
	if got := typeAt(world, voxels, 4, 4, 4); got != voxel.Sand {
		t.Errorf("sand should have fallen one cell down, got %v", got)
	}
}

func TestSandFallsDiagonallyWhenBlockedBelow(t *testing.T) {
	world, hm, voxels := newTestWorld(8, 8, 8)
	place(world, voxels, 4, 1, 4, voxel.Stone)
	place(world, voxels, 4, 2, 4, voxel.Sand)

	Simulate(world, hm, voxels, 0)

	if got := typeAt(world, voxels, 5, 1, 4); got != voxel.Sand {
		t.Errorf("blocked sand should slide to a diagonal, got %v at (5,1,4)", got)
	}
}

func TestSandSettlesToStoneWhenFullyBlocked(t *testing.T) {
	world, hm, voxels := newTestWorld(3, 8, 3)
	for x := 0; x < 3; x++ {
		for z := 0; z < 3; z++ {
			place(world, voxels, x, 0, z, voxel.Stone)
		}
	}
	place(world, voxels, 1, 1, 1, voxel.Sand)

	Simulate(world, hm, voxels, 0)

	if got := typeAt(world, voxels, 1, 1, 1); got != voxel.Stone {
		t.Errorf("fully-blocked sand should harden to Stone, got %v", got)
	}
}

func TestUnsupportedStoneRevertsToSand(t *testing.T) {
	world, hm, voxels := newTestWorld(8, 8, 8)
	place(world, voxels, 4, 3, 4, voxel.Stone)

	Simulate(world, hm, voxels, 0)

	if got := typeAt(world, voxels, 4, 3, 4); got != voxel.Sand {
		t.Errorf("stone floating over air should revert to Sand, got %v", got)
	}
}

func TestWorldFloorCountsAsSupport(t *testing.T) {
	world, hm, voxels := newTestWorld(8, 8, 8)
	place(world, voxels, 4, 0, 4, voxel.Stone)

	Simulate(world, hm, voxels, 0)

	if got := typeAt(world, voxels, 4, 0, 4); got != voxel.Stone {
		t.Errorf("stone resting on the world floor should stay Stone, got %v", got)
	}
}

func TestSimulateInvalidatesHeightmap(t *testing.T) {
	world, hm, voxels := newTestWorld(8, 8, 8)
	hm.Set(4, 4, 7)
	place(world, voxels, 4, 5, 4, voxel.Sand)

	Simulate(world, hm, voxels, 0)

	if got := hm.Get(4, 4); got != heightmap.Empty {
		t.Errorf("heightmap should be invalidated (Empty) after Simulate, got %d", got)
	}
}
