package store

import "log/slog"

// Config holds configuration for the Store.
type Config struct {
	// InitialCapacity is the number of node slots to preallocate.
	// Freed slots are reused, so this only bounds early growth.
	// Default: 16
	// Max: 1<<20
	InitialCapacity int

	// Logger receives debug records for every successful mutation.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults for small namespaces.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: 16,
		Logger:          slog.Default(),
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.InitialCapacity < 1 {
		c.InitialCapacity = 16
	}
	if c.InitialCapacity > 1<<20 {
		c.InitialCapacity = 1 << 20
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
