// Package marker draws the circular map marker used for the driver's
// position: a filled disc with a concentric border ring, saved as PNG.
package marker

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// Generator renders markers for a fixed set of Options.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	opts   Options
	logger logrus.FieldLogger
}

// New validates opts and returns a Generator. A nil logger uses the
// logrus standard logger.
func New(opts Options, logger logrus.FieldLogger) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Generator{opts: opts, logger: logger}, nil
}

// Generate writes the default driver marker to path.
func Generate(path string) error {
	g, err := New(DefaultOptions(), nil)
	if err != nil {
		return err
	}
	return g.Generate(path)
}

// Render draws the marker onto a new transparent canvas.
//
// The disc is inscribed in the inclusive box [0, size-1]. The ring's path
// box is inset by border/2 on each side and the stroke is centered on that
// path, and clamped so its outer edge never leaves the disc. The ring is
// composited over the disc.
func (g *Generator) Render() *image.NRGBA {
	size := g.opts.Size
	canvas := image.NewNRGBA(image.Rect(0, 0, size, size))

	disc, ring := g.shapes()
	paint(canvas, g.mask(disc), g.opts.Fill)
	if g.opts.Border > 0 {
		paint(canvas, g.mask(ring), g.opts.BorderColor)
	}
	return canvas
}

// shapes returns the fill disc and the border ring in pixel-edge
// coordinates, where the inclusive box [x0, x1] spans [x0, x1+1].
func (g *Generator) shapes() (disc, ring annulus) {
	s := float64(g.opts.Size)
	c := s / 2

	disc = annulus{cx: c, cy: c, outer: s / 2}

	inset := float64(g.opts.Border / 2)
	pathR := (s - 2*inset) / 2
	half := float64(g.opts.Border) / 2
	outer := math.Min(pathR+half, disc.outer)
	ring = annulus{cx: c, cy: c, inner: outer - float64(g.opts.Border), outer: outer}
	return disc, ring
}

func (g *Generator) mask(a annulus) *image.Alpha {
	if g.opts.Antialias {
		return smoothMask(g.opts.Size, a)
	}
	return hardMask(g.opts.Size, a)
}

// paint composites c through mask onto dst with alpha-over.
func paint(dst *image.NRGBA, mask *image.Alpha, c color.NRGBA) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

// Encode renders the marker and writes it to w as PNG.
func (g *Generator) Encode(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, g.Render()); err != nil {
		return &EncodingError{Err: err}
	}
	return nil
}

// Generate renders the marker and writes it to path, creating missing
// parent directories and replacing any existing file.
func (g *Generator) Generate(path string) error {
	log := g.logger.WithFields(logrus.Fields{
		"path":      path,
		"size":      g.opts.Size,
		"antialias": g.opts.Antialias,
	})
	if path == "" {
		return &IOError{Op: "write", Path: path, Err: errors.New("empty output path")}
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return err
	}
	log.WithField("bytes", buf.Len()).Debug("marker encoded")

	if err := writeFile(path, buf.Bytes()); err != nil {
		return err
	}
	log.Debug("marker written")
	return nil
}

// writeFile writes data to a uniquely named sibling temp file and renames
// it over path, so a failed write never leaves a truncated image behind.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
