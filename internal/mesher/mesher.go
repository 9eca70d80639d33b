// Package mesher turns a chunk of the voxel buffer into a triangle list
// with per-vertex ambient occlusion and smoothed lighting, per spec.md
// §4.6. Face/AO geometry is grounded on
// original_source/core/voxels.c's mesh() (per-face vertex emission) and
// the AO corner-occupancy count from
// _examples/other_examples' cubetopia chunk mesher.
package mesher

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

// Vertex is the packed chunk-local vertex record: 8 bytes total. X/Y/Z
// are chunk-local coordinates (0-255); R/G/B are the voxel's base color
// already darkened by this vertex's ambient occlusion tier; BlockLight
// and SunLight are the smoothed (averaged) light levels at this corner.
type Vertex struct {
	X, Y, Z             byte
	R, G, B             byte
	BlockLight, SunLight byte
}

// Bounds is a bounding sphere over a chunk's emitted vertices, in
// chunk-local space.
type Bounds struct {
	Center mgl32.Vec3
	Radius float32
}

// aoTiers maps an AO occlusion count (0..3) onto a darkening amount
// subtracted from each color channel. Two occupied side-neighbors
// (full occlusion, regardless of the diagonal) clamp to the darkest
// tier per the classic vertex-AO rule.
var aoTiers = [4]byte{0, 20, 40, 60}

type faceDef struct {
	normal   [3]int
	axisU    int // 0=x,1=y,2=z
	axisV    int
}

// faces lists the 6 face directions in the load-bearing traversal
// order +X,-X,+Z,-Z,+Y,-Y shared with internal/light, so mesh output
// and light propagation reason about neighbors identically.
var faces = [6]faceDef{
	{normal: [3]int{1, 0, 0}, axisU: 1, axisV: 2},
	{normal: [3]int{-1, 0, 0}, axisU: 1, axisV: 2},
	{normal: [3]int{0, 0, 1}, axisU: 0, axisV: 1},
	{normal: [3]int{0, 0, -1}, axisU: 0, axisV: 1},
	{normal: [3]int{0, 1, 0}, axisU: 0, axisV: 2},
	{normal: [3]int{0, -1, 0}, axisU: 0, axisV: 2},
}

func axisOf(v [3]int) int {
	if v[0] != 0 {
		return 0
	}
	if v[1] != 0 {
		return 1
	}
	return 2
}

func addAxis(p [3]int, axis, amount int) [3]int {
	p[axis] += amount
	return p
}

// occluded reports whether (x,y,z) should be treated as a solid
// occluder for AO purposes: a world-absent neighbor counts as opaque,
// matching voxel.World.Offset's documented contract.
func occluded(world voxel.World, voxels []byte, x, y, z int) bool {
	off, ok := world.Offset(x, y, z)
	if !ok {
		return true
	}
	return !voxel.IsAir(voxels, off)
}

func vertexAO(side1, side2, corner bool) int {
	if side1 && side2 {
		return 3
	}
	count := 0
	if side1 {
		count++
	}
	if side2 {
		count++
	}
	if corner {
		count++
	}
	return count
}

func darken(c byte, amount byte) byte {
	if int(c)-int(amount) < 0 {
		return 0
	}
	return c - amount
}

// Mesh appends the triangle mesh for every solid voxel inside
// [origin, origin+size) (in world coordinates) onto vertices/indices,
// which are caller-owned scratch reused via reslicing, and returns the
// grown slices, a bounding sphere over the emitted geometry in
// chunk-local space, and the number of faces emitted. A face is emitted
// only when its neighbor cell is in-world and AIR.
//
// Per spec.md §7, a chunk that does not fit inside the world (negative
// origin, or origin+size past a world dimension) is the kernel's sole
// error condition: Mesh returns -1 faces and leaves vertices/indices
// untouched, mirroring original_source/core/voxels.c's mesh() bounds
// check.
func Mesh(world voxel.World, voxels []byte, origin, size [3]int, vertices []Vertex, indices []uint32) ([]Vertex, []uint32, Bounds, int) {
	dims := [3]int{world.W, world.H, world.D}
	for i := 0; i < 3; i++ {
		if origin[i] < 0 || origin[i]+size[i] > dims[i] {
			return vertices, indices, Bounds{}, -1
		}
	}

	vertices = vertices[:0]
	indices = indices[:0]
	faceCount := 0

	min := [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	grow := func(x, y, z byte) {
		fx, fy, fz := float32(x), float32(y), float32(z)
		if fx < min[0] {
			min[0] = fx
		}
		if fy < min[1] {
			min[1] = fy
		}
		if fz < min[2] {
			min[2] = fz
		}
		if fx > max[0] {
			max[0] = fx
		}
		if fy > max[1] {
			max[1] = fy
		}
		if fz > max[2] {
			max[2] = fz
		}
	}

	for z := origin[2]; z < origin[2]+size[2]; z++ {
		for y := origin[1]; y < origin[1]+size[1]; y++ {
			for x := origin[0]; x < origin[0]+size[0]; x++ {
				off, ok := world.Offset(x, y, z)
				if !ok || voxel.IsAir(voxels, off) {
					continue
				}
				r, g, b := voxel.GetR(voxels, off), voxel.GetG(voxels, off), voxel.GetB(voxels, off)

				for _, face := range faces {
					nx, ny, nz := x+face.normal[0], y+face.normal[1], z+face.normal[2]
					noff, nok := world.Offset(nx, ny, nz)
					if !nok || !voxel.IsAir(voxels, noff) {
						continue
					}
					faceCount++

					lx, ly, lz := byte(x-origin[0]), byte(y-origin[1]), byte(z-origin[2])
					first := len(vertices)

					var aos [4]int
					corners := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
					if face.normal[axisOf(face.normal)] < 0 {
						corners = [4][2]int{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
					}

					for ci, corner := range corners {
						u, v := corner[0], corner[1]
						uStep, vStep := -1, -1
						if u == 1 {
							uStep = 1
						}
						if v == 1 {
							vStep = 1
						}

						base := [3]int{nx, ny, nz}
						sideUCell := addAxis(base, face.axisU, uStep)
						sideVCell := addAxis(base, face.axisV, vStep)
						cornerCell := addAxis(sideUCell, face.axisV, vStep)

						occU := occluded(world, voxels, sideUCell[0], sideUCell[1], sideUCell[2])
						occV := occluded(world, voxels, sideVCell[0], sideVCell[1], sideVCell[2])
						occC := occluded(world, voxels, cornerCell[0], cornerCell[1], cornerCell[2])
						ao := vertexAO(occU, occV, occC)
						aos[ci] = ao

						blockSum, sunSum, count := 0, 0, 0
						addSample := func(cx, cy, cz int) {
							coff, cok := world.Offset(cx, cy, cz)
							if !cok {
								return
							}
							blockSum += int(voxel.GetBlockLight(voxels, coff))
							sunSum += int(voxel.GetSunLight(voxels, coff))
							count++
						}
						addSample(nx, ny, nz)
						if !occU {
							addSample(sideUCell[0], sideUCell[1], sideUCell[2])
						}
						if !occV {
							addSample(sideVCell[0], sideVCell[1], sideVCell[2])
						}
						if !occC {
							addSample(cornerCell[0], cornerCell[1], cornerCell[2])
						}
						if count == 0 {
							count = 1
						}

						pos := [3]int{int(lx), int(ly), int(lz)}
						pos[face.axisU] += u
						pos[face.axisV] += v
						if face.normal[axisOf(face.normal)] > 0 {
							pos[axisOf(face.normal)]++
						}
						vx, vy, vz := byte(pos[0]), byte(pos[1]), byte(pos[2])

						grow(vx, vy, vz)
						vertices = append(vertices, Vertex{
							X: vx, Y: vy, Z: vz,
							R: darken(r, aoTiers[ao]),
							G: darken(g, aoTiers[ao]),
							B: darken(b, aoTiers[ao]),
							BlockLight: byte(blockSum / count),
							SunLight:   byte(sunSum / count),
						})
					}

					// Anisotropy fix: when the diagonal sum across
					// corners 0,2 is darker than across 1,3, flip the
					// triangulation so the interpolated seam runs along
					// the less-occluded diagonal.
					if aos[0]+aos[2] > aos[1]+aos[3] {
						indices = append(indices,
							uint32(first+1), uint32(first+2), uint32(first+3),
							uint32(first+3), uint32(first), uint32(first+1),
						)
					} else {
						indices = append(indices,
							uint32(first), uint32(first+1), uint32(first+2),
							uint32(first+2), uint32(first+3), uint32(first),
						)
					}
				}
			}
		}
	}

	bounds := Bounds{}
	if len(vertices) > 0 {
		center := mgl32.Vec3{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
		corner := mgl32.Vec3{max[0], max[1], max[2]}
		bounds = Bounds{Center: center, Radius: corner.Sub(center).Len()}
	}
	return vertices, indices, bounds, faceCount
}

