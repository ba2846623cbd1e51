package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config tunes search behaviour. Every field has a working default so a
// missing file is not an error.
type Config struct {
	GroqAPIKey        string   `toml:"groq_api_key"`
	RequestTimeout    duration `toml:"request_timeout"`
	PoolBudget        int      `toml:"pool_budget"`
	AcceptLimit       int      `toml:"accept_limit"`
	ScoreThreshold    float64  `toml:"score_threshold"`
	FallbackThreshold float64  `toml:"fallback_threshold"`
	CommonsLimit      int      `toml:"commons_limit"`
	ArchiveLimit      int      `toml:"archive_limit"`
}

type duration time.Duration

func (value *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*value = duration(parsed)
	return nil
}

// Timeout returns the per-request timeout as a time.Duration.
func (config Config) Timeout() time.Duration {
	return time.Duration(config.RequestTimeout)
}

// Default is what a fresh installation runs with.
func Default() Config {
	return Config{
		RequestTimeout:    duration(12 * time.Second),
		PoolBudget:        80,
		AcceptLimit:       10,
		ScoreThreshold:    1.9,
		FallbackThreshold: 1.2,
		CommonsLimit:      28,
		ArchiveLimit:      10,
	}
}

// Load reads the user configuration file, falling back to defaults when
// absent. GROQ_API_KEY in the environment always wins over the file.
func Load() (Config, error) {
	config := Default()

	path, err := xdg.ConfigFile("gramophone/config.toml")
	if err != nil {
		return config, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return config, err
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, err
		}
	}

	if key := os.Getenv("GROQ_API_KEY"); key != "" {
		config.GroqAPIKey = key
	}
	return config, nil
}
