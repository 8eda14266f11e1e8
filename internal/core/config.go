package core

// RuntimeConfig is passed to scenes at reset.
type RuntimeConfig struct {
	World    WorldSize // Extent of the scene's world
	TickRate int       // Ticks per second
	Seed     int64     // RNG seed for deterministic content
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		World:    WorldSize{W: 200, H: 100},
		TickRate: 20,
		Seed:     0, // 0 means use current time in the application layer
	}
}
