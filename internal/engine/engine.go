// Package engine orchestrates the voxel store, generator, light
// engine, mesher, mutator and sand simulator into one owned world,
// providing the single place the allocation the core packages
// deliberately avoid is actually performed: once, here, at
// construction time.
package engine

import (
	"log/slog"
	"os"

	"github.com/google/uuid"

	"voxelcore/internal/config"
	"voxelcore/internal/generator"
	"voxelcore/internal/heightmap"
	"voxelcore/internal/light"
	"voxelcore/internal/mesher"
	"voxelcore/internal/mutator"
	"voxelcore/internal/noise"
	"voxelcore/internal/profiling"
	"voxelcore/internal/sand"
	"voxelcore/internal/voxel"
)

// World owns a voxel buffer, its heightmap, a noise adapter, and every
// scratch buffer the core packages need so no call in the hot path
// allocates.
type World struct {
	ID uuid.UUID

	log *slog.Logger

	Voxel   voxel.World
	Voxels  []byte
	Height  *heightmap.Heightmap
	Noise   *noise.Adapter
	genMode generator.Mode

	queueA, queueB, queueC []int
	simStep                int
}

// New constructs a World sized per cfg, logging through log (or a
// default stderr JSON logger if nil).
func New(cfg *config.Config, log *slog.Logger) *World {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	vw := voxel.World{W: cfg.World.Width, H: cfg.World.Height, D: cfg.World.Depth}
	mode := generator.Default
	if cfg.Generator.Mode == "sphere" {
		mode = generator.Sphere
	}

	w := &World{
		ID:      uuid.New(),
		log:     log,
		Voxel:   vw,
		Voxels:  make([]byte, vw.BufferLen()),
		Height:  heightmap.New(vw.W, vw.D),
		Noise:   noise.NewAdapter(cfg.Noise.Seed, cfg.Noise.Octaves, cfg.Noise.Persistence, cfg.Noise.Lacunarity),
		genMode: mode,
		queueA:  make([]int, 0, vw.Volume()),
		queueB:  make([]int, 0, vw.Volume()),
		queueC:  make([]int, 0, vw.Volume()),
	}
	w.log.Info("world created", "id", w.ID, "width", vw.W, "height", vw.H, "depth", vw.D)
	return w
}

// Generate fills the voxel buffer and heightmap from noise, then seeds
// sunlight.
func (w *World) Generate() {
	defer profiling.Track("engine.Generate")()
	generator.Generate(w.Voxel, w.Height, w.Voxels, w.Noise, w.genMode)
	light.Propagate(w.Voxel, w.Height, w.Voxels, w.queueA, w.queueB, w.queueC)
	w.log.Info("world generated", "id", w.ID)
}

// Edit applies a single voxel edit.
func (w *World) Edit(x, y, z int, t voxel.Type, r, g, b byte) bool {
	defer profiling.Track("engine.Edit")()
	ok := mutator.Update(w.Voxel, w.Height, w.Voxels, x, y, z, t, r, g, b, w.queueA, w.queueB, w.queueC)
	if !ok {
		w.log.Warn("edit rejected: out of bounds", "x", x, "y", y, "z", z)
	}
	return ok
}

// SimulateSand runs one alternating-direction sand step and advances
// the internal step counter feeding it.
func (w *World) SimulateSand() {
	defer profiling.Track("engine.SimulateSand")()
	sand.Simulate(w.Voxel, w.Height, w.Voxels, w.simStep)
	w.simStep++
}

// MeshChunk meshes the [origin, origin+size) region of the world,
// reusing vertices/indices scratch buffers owned by the caller. Per
// spec.md §7, a chunk that does not fit inside the world yields -1
// faces; MeshChunk logs that rejection and passes the signal through
// unchanged rather than treating it as a no-op.
func (w *World) MeshChunk(origin, size [3]int, vertices []mesher.Vertex, indices []uint32) ([]mesher.Vertex, []uint32, mesher.Bounds, int) {
	defer profiling.Track("engine.MeshChunk")()
	verts, idx, bounds, faces := mesher.Mesh(w.Voxel, w.Voxels, origin, size, vertices, indices)
	if faces < 0 {
		w.log.Warn("mesh rejected: chunk out of world bounds", "origin", origin, "size", size)
	}
	return verts, idx, bounds, faces
}

// LogProfile logs the slowest tracked operations and their combined
// total, accumulated since the process started (the profiling totals
// are package-wide and never reset), for operators inspecting a
// long-running world without attaching a profiler.
func (w *World) LogProfile(topN int) {
	w.log.Info("profile", "total", profiling.Total(), "top", profiling.TopN(topN))
}
