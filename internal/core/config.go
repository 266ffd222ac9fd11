package core

// RuntimeConfig contains configuration passed to a game when a run is built.
type RuntimeConfig struct {
	DisplayW int   // Display width in pixels
	DisplayH int   // Display height in pixels
	Scale    int   // Pixels per screen cell
	TickRate int   // Platform redraw rate (frames per second)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns the 240x320 panel of the reference board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		DisplayW: 240,
		DisplayH: 320,
		Scale:    10,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Cols returns the number of screen cells across.
func (c RuntimeConfig) Cols() int {
	return c.DisplayW / c.Scale
}

// Rows returns the number of screen cells down.
func (c RuntimeConfig) Rows() int {
	return c.DisplayH / c.Scale
}
