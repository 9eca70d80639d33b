package generator

import (
	"testing"

	"voxelcore/internal/heightmap"
	"voxelcore/internal/noise"
	"voxelcore/internal/voxel"
)

func smallWorld() voxel.World {
	return voxel.World{W: 96, H: 64, D: 96}
}

func TestGenerateDefaultModeLeavesBorderEmpty(t *testing.T) {
	w := smallWorld()
	hm := heightmap.New(w.W, w.D)
	voxels := make([]byte, w.BufferLen())
	adapter := noise.NewDefaultAdapter(7)

	Generate(w, hm, voxels, adapter, Default)

	for z := 0; z < w.D; z++ {
		for x := 0; x < w.W; x++ {
			if x >= Border && x < w.W-Border && z >= Border && z < w.D-Border {
				continue
			}
			if hm.Get(x, z) != heightmap.Empty {
				t.Fatalf("border column (%d,%d) should be untouched, heightmap=%d", x, z, hm.Get(x, z))
			}
		}
	}
}

func TestGenerateDefaultModeMatchesSolidityRule(t *testing.T) {
	w := smallWorld()
	hm := heightmap.New(w.W, w.D)
	voxels := make([]byte, w.BufferLen())
	adapter := noise.NewDefaultAdapter(99)

	Generate(w, hm, voxels, adapter, Default)

	x, z := Border+3, Border+5
	for y := 0; y < w.H; y++ {
		n := adapter.Sample(float64(x), float64(y), float64(z))
		want := float64(y) <= n*float64(w.H)
		off, ok := w.Offset(x, y, z)
		if !ok {
			t.Fatalf("expected in-bounds offset for (%d,%d,%d)", x, y, z)
		}
		got := voxel.GetType(voxels, off) == voxel.Stone
		if got != want {
			t.Errorf("(%d,%d,%d): solidity rule mismatch, n=%v want=%v got=%v", x, y, z, n, want, got)
		}
	}
}

func TestGenerateGrowsHeightmapToTallestSolidVoxel(t *testing.T) {
	w := smallWorld()
	hm := heightmap.New(w.W, w.D)
	voxels := make([]byte, w.BufferLen())
	adapter := noise.NewDefaultAdapter(2024)

	Generate(w, hm, voxels, adapter, Default)

	for z := Border; z < w.D-Border; z += 11 {
		for x := Border; x < w.W-Border; x += 11 {
			want := heightmap.Empty
			for y := 0; y < w.H; y++ {
				off, _ := w.Offset(x, y, z)
				if voxel.GetType(voxels, off) == voxel.Stone {
					want = int32(y)
				}
			}
			if got := hm.Get(x, z); got != want {
				t.Errorf("heightmap(%d,%d) = %d, want %d (tallest solid y)", x, z, got, want)
			}
		}
	}
}

func TestGenerateSphereModeStaysWithinRadius(t *testing.T) {
	w := voxel.World{W: 128, H: 128, D: 128}
	hm := heightmap.New(w.W, w.D)
	voxels := make([]byte, w.BufferLen())
	adapter := noise.NewDefaultAdapter(5)

	Generate(w, hm, voxels, adapter, Sphere)

	limit := 0.425 * float64(w.W)
	for z := Border; z < w.D-Border; z += 7 {
		for x := Border; x < w.W-Border; x += 7 {
			for y := 0; y < w.H; y += 7 {
				off, _ := w.Offset(x, y, z)
				if voxel.GetType(voxels, off) != voxel.Stone {
					continue
				}
				cx := float64(w.W)/2 - float64(x)
				cy := float64(w.H)/2 - float64(y)
				cz := float64(w.D)/2 - float64(z)
				dist := cx*cx + cy*cy + cz*cz
				if dist > limit*limit+1e-6 {
					t.Errorf("solid voxel (%d,%d,%d) lies outside sphere radius: dist=%v limit=%v", x, y, z, dist, limit)
				}
			}
		}
	}
}
