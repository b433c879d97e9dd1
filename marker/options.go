package marker

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Default marker parameters: a 96x96 (2x for retina) blue disc with a 6px white border.
const (
	DefaultSize   = 96
	DefaultBorder = 6
	DefaultOutput = "assets/images/driver_marker.png"

	// MaxSize bounds the canvas so width*height*4 bytes stays allocatable.
	MaxSize = 4096
)

var (
	DefaultFill        = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	DefaultBorderColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Options describes the marker to draw.
type Options struct {
	Size        int
	Fill        color.NRGBA
	Border      int
	BorderColor color.NRGBA

	// Antialias selects coverage-based rasterization instead of the
	// pixel-center test.
	Antialias bool
}

// DefaultOptions returns the driver marker parameters.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Fill:        DefaultFill,
		Border:      DefaultBorder,
		BorderColor: DefaultBorderColor,
	}
}

// Validate reports whether the options describe a drawable marker.
func (o Options) Validate() error {
	if o.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidOptions, o.Size)
	}
	if o.Size > MaxSize {
		return fmt.Errorf("%w: size %d exceeds maximum %d", ErrInvalidOptions, o.Size, MaxSize)
	}
	if o.Border < 0 {
		return fmt.Errorf("%w: border must not be negative, got %d", ErrInvalidOptions, o.Border)
	}
	if o.Border > o.Size/2 {
		return fmt.Errorf("%w: border %d too wide for size %d", ErrInvalidOptions, o.Border, o.Size)
	}
	return nil
}

// ParseHexColor parses "#RGB", "#RRGGBB" or "#RRGGBBAA". The leading '#' is optional.
// Colors without an alpha component are fully opaque.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// HexColor formats c as "#RRGGBB", or "#RRGGBBAA" when c is not opaque.
func HexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
