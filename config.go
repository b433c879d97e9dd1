package main

import (
	"encoding/json"
	"fmt"
	"os"

	"markergo/marker"
)

// Config holds the marker parameters and output path. It is read from an
// optional JSON file and then overridden by command-line flags.
type Config struct {
	Output      string `json:"output"`
	Size        int    `json:"size"`
	Fill        string `json:"fill"`
	Border      int    `json:"border"`
	BorderColor string `json:"border_color"`
	Antialias   bool   `json:"antialias"`
}

func defaultConfig() *Config {
	return &Config{
		Output:      marker.DefaultOutput,
		Size:        marker.DefaultSize,
		Fill:        marker.HexColor(marker.DefaultFill),
		Border:      marker.DefaultBorder,
		BorderColor: marker.HexColor(marker.DefaultBorderColor),
	}
}

// LoadConfig returns the defaults overlaid with the JSON file at path.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return c, nil
}

// MarkerOptions converts the config into validated generator options.
func (c *Config) MarkerOptions() (marker.Options, error) {
	fill, err := marker.ParseHexColor(c.Fill)
	if err != nil {
		return marker.Options{}, fmt.Errorf("%w: fill: %v", marker.ErrInvalidOptions, err)
	}
	border, err := marker.ParseHexColor(c.BorderColor)
	if err != nil {
		return marker.Options{}, fmt.Errorf("%w: border color: %v", marker.ErrInvalidOptions, err)
	}

	opts := marker.Options{
		Size:        c.Size,
		Fill:        fill,
		Border:      c.Border,
		BorderColor: border,
		Antialias:   c.Antialias,
	}
	if err := opts.Validate(); err != nil {
		return marker.Options{}, err
	}
	return opts, nil
}
