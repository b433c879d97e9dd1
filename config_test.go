package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"markergo/marker"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)

	opts, err := c.MarkerOptions()
	require.NoError(t, err)
	assert.Equal(t, marker.DefaultOptions(), opts)
	assert.Equal(t, "assets/images/driver_marker.png", c.Output)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marker.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": 48, "fill": "#ff0000", "antialias": true}`), 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 48, c.Size)
	assert.Equal(t, marker.DefaultBorder, c.Border)
	assert.Equal(t, marker.DefaultOutput, c.Output)

	opts, err := c.MarkerOptions()
	require.NoError(t, err)
	assert.True(t, opts.Antialias)
	assert.Equal(t, uint8(0xff), opts.Fill.R)
	assert.Equal(t, marker.DefaultBorderColor, opts.BorderColor)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"size": "big"}`), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigMarkerOptions_Invalid(t *testing.T) {
	c := defaultConfig()
	c.Fill = "not-a-color"
	_, err := c.MarkerOptions()
	assert.ErrorIs(t, err, marker.ErrInvalidOptions)

	c = defaultConfig()
	c.Border = 100
	_, err = c.MarkerOptions()
	assert.ErrorIs(t, err, marker.ErrInvalidOptions)
}
