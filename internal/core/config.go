package core

// RuntimeConfig contains configuration passed to the game and frontends at startup.
// It is built once in main and never mutated afterwards.
type RuntimeConfig struct {
	Seed         int64 // RNG seed for deterministic spawning (0 = time-based)
	ColorEnabled bool  // Whether the renderer emits ANSI colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:         0, // 0 means use current time in the game layer
		ColorEnabled: false,
	}
}
