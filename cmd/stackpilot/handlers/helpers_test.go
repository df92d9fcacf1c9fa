package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackpilot/internal/config"
)

func TestParseParameters(t *testing.T) {
	params, err := parseParameters([]string{"Env=prod", "Size=large", "Empty="})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"Env":   "prod",
		"Size":  "large",
		"Empty": "",
	}, params)
}

func TestParseParameters_Invalid(t *testing.T) {
	for _, raw := range []string{"no-equals", "=value"} {
		_, err := parseParameters([]string{raw})
		assert.Error(t, err, raw)
	}
}

func TestParseParameters_ValueMayContainEquals(t *testing.T) {
	params, err := parseParameters([]string{"Connection=host=db;port=5432"})
	require.NoError(t, err)
	assert.Equal(t, "host=db;port=5432", params["Connection"])
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRegion, cfg.Region)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}
