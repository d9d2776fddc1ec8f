package draw

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// Export file names written by ExportFiles.
const (
	PNGFile         = "passengers.png"
	SVGFile         = "passengers.svg"
	InteractiveFile = "passengers_interactive.svg"
)

// ExportFiles writes sc under dir as a PNG, a go-chart SVG and a standalone
// SVG with hover tooltips. It returns the paths written.
func ExportFiles(sc scene.Scene, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	items := []struct {
		name string
		fn   func(io.Writer) error
	}{
		{PNGFile, func(w io.Writer) error { return Render(sc, PNG, w) }},
		{SVGFile, func(w io.Writer) error { return Render(sc, SVG, w) }},
		{InteractiveFile, func(w io.Writer) error { return WriteSVGDocument(sc, w) }},
	}
	var written []string
	for _, it := range items {
		p := filepath.Join(dir, it.name)
		if err := writeFile(p, it.fn); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	return written, nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
