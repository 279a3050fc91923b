package iconset

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/cortex/favicons/internal/logging"
	"github.com/cortex/favicons/internal/render"
)

// Renderer produces the icon at one size.
type Renderer interface {
	Render(size int) (*image.RGBA, error)
}

// Report lists the files a run produced, in write order.
type Report struct {
	Outputs []Output `json:"outputs"`
	// Renders counts distinct render calls; it is lower than len(Outputs)
	// whenever a size is shared between targets.
	Renders int `json:"renders"`
}

// Summary returns a one-line description of the run.
func (r Report) Summary() string {
	total := 0
	for _, o := range r.Outputs {
		total += o.Bytes
	}
	return fmt.Sprintf("wrote %d files from %d renders (%d bytes)", len(r.Outputs), r.Renders, total)
}

// Generator renders each target and writes it to disk.
type Generator struct {
	Renderer Renderer
	Writer   *Writer
	Logger   logging.Logger

	cache map[int]*image.RGBA
}

func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	return &Generator{
		Renderer: render.NewIconRenderer(),
		Writer:   NewWriter(),
		Logger:   logger,
	}
}

// Image returns the icon at size, rendering it on first use.
func (g *Generator) Image(size int) (*image.RGBA, error) {
	if g.cache == nil {
		g.cache = make(map[int]*image.RGBA)
	}
	if img, ok := g.cache[size]; ok {
		g.Logger.Debugf("iconset", "reusing %dx%d render", size, size)
		return img, nil
	}
	img, err := g.Renderer.Render(size)
	if err != nil {
		return nil, err
	}
	g.cache[size] = img
	return img, nil
}

// Run writes every target in order and stops at the first failure. Errors
// are returned, not logged.
func (g *Generator) Run(targets []Target) (Report, error) {
	var report Report
	for _, t := range targets {
		g.Logger.Infof("iconset", "generating %s (%dx%d)", filepath.Base(t.Path), t.Size, t.Size)

		before := len(g.cache)
		img, err := g.Image(t.Size)
		if err != nil {
			return report, fmt.Errorf("render %s: %w", t.Path, err)
		}
		if len(g.cache) > before {
			report.Renders++
		}

		out, err := g.Writer.WriteImage(t.Path, img)
		if err != nil {
			return report, err
		}
		g.Logger.Debugf("iconset", "wrote %s (%s, %d bytes)", out.Path, out.Format, out.Bytes)
		report.Outputs = append(report.Outputs, out)
	}
	return report, nil
}

// Sheet renders the preview sheet for the distinct sizes in targets.
func (g *Generator) Sheet(targets []Target) (*image.RGBA, error) {
	var entries []render.SheetEntry
	for _, size := range PreviewSizes(targets) {
		img, err := g.Image(size)
		if err != nil {
			return nil, err
		}
		entries = append(entries, render.SheetEntry{Label: fmt.Sprintf("%dx%d", size, size), Image: img})
	}
	return render.RenderSheet(entries)
}
