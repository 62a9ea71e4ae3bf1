package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetConfig() {
	viper.Reset()
	cfg = nil
	configPathOverride = ""
}

func TestInitDefaults(t *testing.T) {
	resetConfig()
	t.Cleanup(resetConfig)

	require.NoError(t, Init())
	c := Get()

	assert.Equal(t, 10, c.Sampling.Samples)
	assert.Equal(t, 50, c.Sampling.DelayMS)
	assert.Equal(t, []string{"Test Gamepad", "vJoy"}, c.Selector.NameContains)
	assert.Equal(t, uint16(0x1234), c.Selector.VendorID)
	assert.Equal(t, uint16(0xBEAD), c.Selector.ProductID)
	assert.Equal(t, "vJoy Device", c.Virtual.Name)
}

func TestInitReadsConfigFile(t *testing.T) {
	resetConfig()
	t.Cleanup(resetConfig)

	dir := t.TempDir()
	path := filepath.Join(dir, "joyharness.toml")
	content := `
[sampling]
samples = 25
delay_ms = 5

[selector]
name_contains = ["Fixture Pad"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	SetConfigPath(path)
	require.NoError(t, Init())
	c := Get()

	assert.Equal(t, 25, c.Sampling.Samples)
	assert.Equal(t, 5, c.Sampling.DelayMS)
	assert.Equal(t, []string{"Fixture Pad"}, c.Selector.NameContains)
	// Untouched sections keep their defaults.
	assert.Equal(t, uint16(0x1234), c.Selector.VendorID)
}

func TestInitRejectsInvalidTOML(t *testing.T) {
	resetConfig()
	t.Cleanup(resetConfig)

	dir := t.TempDir()
	path := filepath.Join(dir, "joyharness.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sampling\nsamples = 25"), 0o644))

	SetConfigPath(path)
	assert.Error(t, Init())
}

func TestGetWithoutInitUsesDefaults(t *testing.T) {
	resetConfig()
	t.Cleanup(resetConfig)

	c := Get()
	assert.Equal(t, 10, c.Sampling.Samples)
}
