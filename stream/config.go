// Package stream exports namespace change events as DynamoDB Streams records
// and replays such records onto a namespace.
package stream

import "log/slog"

// DefaultSource is the EventSource stamped on exported records.
const DefaultSource = "canopy:namespace"

// Config holds configuration for a Recorder.
type Config struct {
	// NumShards is the number of partition key shards per parent path.
	// Default: 1 (every child of a parent shares one partition key)
	// Max: 256
	NumShards int

	// Source is written to each record's EventSource.
	// Default: DefaultSource
	Source string

	// Logger receives encoding failures.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		NumShards: 1,
		Source:    DefaultSource,
		Logger:    slog.Default(),
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.NumShards < 1 {
		c.NumShards = 1
	}
	if c.NumShards > 256 {
		c.NumShards = 256
	}
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
