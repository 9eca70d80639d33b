package config

import "sync"

// RuntimeSettings holds mutable generation knobs (mode, seed, border),
// guarded by an RWMutex the way the teacher's WorldGenSettings guards
// its own render/generation toggles. The values are only stored here:
// engine.World and generator.Generate take mode and seed from
// config.Config and the border from generator.Border, not from these
// settings.
type RuntimeSettings struct {
	mu     sync.RWMutex
	mode   string // "default" or "sphere"
	seed   int64
	border int
}

var globalRuntimeSettings = &RuntimeSettings{
	mode:   "default",
	seed:   1337,
	border: 32,
}

// GetMode returns the active terrain generation mode.
func GetMode() string {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.mode
}

// SetMode sets the terrain generation mode ("default" or "sphere").
func SetMode(mode string) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.mode = mode
}

// GetSeed returns the active noise seed.
func GetSeed() int64 {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.seed
}

// SetSeed stores a new noise seed.
func SetSeed(seed int64) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	globalRuntimeSettings.seed = seed
}

// GetBorder returns the stored AIR margin width.
func GetBorder() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.border
}

// SetBorder sets the AIR margin width, clamped to a sane minimum.
func SetBorder(border int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()
	if border < 0 {
		border = 0
	}
	globalRuntimeSettings.border = border
}
