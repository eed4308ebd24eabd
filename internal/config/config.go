// Package config defines service configuration and loading.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the sqlite database file.
	DBPath string `koanf:"db_path"`

	// ShardCount splits the hourly aggregation fold across goroutines.
	ShardCount int `koanf:"shard_count"`

	// QueueSize bounds the event intake queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of event persistence workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize bounds the ingestion idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// EventWeights maps event types to engagement weights. The defaults
	// are the standard scoring table.
	EventWeights map[string]int64 `koanf:"event_weights"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		Addr:        ":8080",
		DBPath:      "huddled.db",
		ShardCount:  4,
		QueueSize:   10_000,
		WorkerCount: 4,
		DedupeSize:  50_000,
		EventWeights: map[string]int64{
			"like_track":            2,
			"add_track_to_playlist": 2,
			"play_track":            1,
			"share_track":           3,
		},
	}
}
