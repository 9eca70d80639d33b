package voxel

import "testing"

func TestOffsetRoundTrip(t *testing.T) {
	w := World{W: 4, H: 5, D: 6}
	for z := 0; z < w.D; z++ {
		for y := 0; y < w.H; y++ {
			for x := 0; x < w.W; x++ {
				off, ok := w.Offset(x, y, z)
				if !ok {
					t.Fatalf("Offset(%d,%d,%d) reported out of bounds inside world", x, y, z)
				}
				rx, ry, rz := w.Coords(off)
				if rx != x || ry != y || rz != z {
					t.Errorf("Coords(Offset(%d,%d,%d)) = (%d,%d,%d)", x, y, z, rx, ry, rz)
				}
			}
		}
	}
}

func TestOffsetOutOfBounds(t *testing.T) {
	w := World{W: 4, H: 4, D: 4}
	cases := [][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}, {4, 0, 0}, {0, 4, 0}, {0, 0, 4}}
	for _, c := range cases {
		if _, ok := w.Offset(c[0], c[1], c[2]); ok {
			t.Errorf("Offset(%v) should be out of bounds", c)
		}
	}
}

func TestBufferLen(t *testing.T) {
	w := World{W: 2, H: 3, D: 4}
	if got := w.BufferLen(); got != 2*3*4*Stride {
		t.Errorf("BufferLen() = %d, want %d", got, 2*3*4*Stride)
	}
}

func TestFieldAccessors(t *testing.T) {
	w := World{W: 2, H: 2, D: 2}
	voxels := make([]byte, w.BufferLen())
	off, _ := w.Offset(1, 0, 1)

	if !IsAir(voxels, off) {
		t.Fatalf("fresh buffer should read as AIR")
	}

	SetType(voxels, off, Stone)
	SetRGB(voxels, off, 10, 20, 30)
	SetBlockLight(voxels, off, 5)
	SetSunLight(voxels, off, 7)

	if GetType(voxels, off) != Stone {
		t.Errorf("GetType = %v, want Stone", GetType(voxels, off))
	}
	if IsAir(voxels, off) {
		t.Errorf("IsAir should be false for Stone")
	}
	if r, g, b := GetR(voxels, off), GetG(voxels, off), GetB(voxels, off); r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
	if GetBlockLight(voxels, off) != 5 {
		t.Errorf("BlockLight = %d, want 5", GetBlockLight(voxels, off))
	}
	if GetSunLight(voxels, off) != 7 {
		t.Errorf("SunLight = %d, want 7", GetSunLight(voxels, off))
	}
}
