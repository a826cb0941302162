package audio

// Config is the [audio] section of the host configuration
type Config struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // Master gain 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

// DefaultConfig enables audio at a moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: 44100,
	}
}
