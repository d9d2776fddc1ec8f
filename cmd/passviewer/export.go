package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/mcgradyjason/udacity-data-analyst/src/config"
	"github.com/mcgradyjason/udacity-data-analyst/src/draw"
	"github.com/mcgradyjason/udacity-data-analyst/src/logging"
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// RunExportMode loads the dataset, renders it with the given visibility and
// writes the chart files under outDir. It runs headlessly without creating
// a window.
func RunExportMode(ctx context.Context, cfg *config.Config, vis scene.Visibility, outDir string, out io.Writer) error {
	if cfg == nil {
		cfg = config.Default()
	}
	start := time.Now()
	recs, err := passengers.Load(ctx, cfg.Data.Path)
	if err != nil {
		return err
	}
	logging.TimeTrack(start, "load "+cfg.Data.Path)

	sc := scene.Render(recs, vis, cfg.SceneLayout())
	paths, err := draw.ExportFiles(sc, outDir)
	if err != nil {
		return err
	}
	for _, p := range paths {
		logging.Infof("wrote %s", p)
		if out != nil {
			fmt.Fprintln(out, p)
		}
	}
	return nil
}
