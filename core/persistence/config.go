package persistence

// Config holds configuration for the persistence mirror.
type Config struct {
	// Backend selects where records are mirrored (memory, database, object).
	Backend string `mapstructure:"backend" default:"memory"`
	// TimeoutSeconds bounds every mirror call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// Prefix is the object key prefix used by the object backend.
	Prefix string `mapstructure:"prefix" default:"users"`
	// CacheTTLSeconds is how long a hydrated session is kept; 0 keeps it forever.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"900"`
}
