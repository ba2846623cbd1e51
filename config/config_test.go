package config

import (
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	config := Default()

	assert.Equal(t, 12*time.Second, config.Timeout())
	assert.Equal(t, 80, config.PoolBudget)
	assert.Equal(t, 10, config.AcceptLimit)
	assert.Equal(t, 1.9, config.ScoreThreshold)
	assert.Equal(t, 1.2, config.FallbackThreshold)
	assert.Equal(t, 28, config.CommonsLimit)
	assert.Equal(t, 10, config.ArchiveLimit)
}

func TestUnmarshalOverridesDefaults(t *testing.T) {
	config := Default()
	require.NoError(t, toml.Unmarshal([]byte(`
request_timeout = "5s"
pool_budget = 40
score_threshold = 2.5
`), &config))

	assert.Equal(t, 5*time.Second, config.Timeout())
	assert.Equal(t, 40, config.PoolBudget)
	assert.Equal(t, 2.5, config.ScoreThreshold)
	// untouched keys keep their defaults
	assert.Equal(t, 10, config.AcceptLimit)
}

func TestEnvironmentKeyWins(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk-test")

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gsk-test", config.GroqAPIKey)
}
