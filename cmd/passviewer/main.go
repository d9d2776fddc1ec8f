package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/mcgradyjason/udacity-data-analyst/cmd/passviewer/uihelpers"
	"github.com/mcgradyjason/udacity-data-analyst/src/config"
	"github.com/mcgradyjason/udacity-data-analyst/src/draw"
	"github.com/mcgradyjason/udacity-data-analyst/src/logging"
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

type uiState struct {
	app      fyne.App
	window   fyne.Window
	filePath string
	cfg      *config.Config

	ctrl    *scene.Controller
	loadErr error
	// cancels the load in flight, if any
	cancelLoad context.CancelFunc

	// widgets
	chartImg    *canvas.Image
	overlay     *hoverOverlay
	checks      [passengers.NumGroups]*widget.Check
	fileLabel   *widget.Label
	statusLabel *widget.Label
	// set while checkboxes are being synced from the controller
	syncing bool
}

func main() {
	var fileFlag, configFlag, logLevel, exportDir, showFlag string
	flag.StringVar(&fileFlag, "file", "", "Path to the passenger CSV (default data/train.csv)")
	flag.StringVar(&configFlag, "config", "", "Optional YAML layout/data config")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&exportDir, "export-dir", "", "Render PNG/SVG files into this directory and exit (no window)")
	flag.StringVar(&showFlag, "show", "1111", "Group visibility mask for -export-dir (FS FN MS MN)")
	flag.Parse()
	logging.SetLogLevel(logLevel)
	defer logging.Sync()

	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if fileFlag != "" {
		cfg.Data.Path = fileFlag
	}

	if exportDir != "" {
		vis, err := scene.ParseVisibility(showFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if err := RunExportMode(context.Background(), cfg, vis, exportDir, os.Stdout); err != nil {
			logging.Errorf("export: %v", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.passengers.viewer")
	w := a.NewWindow("Passengers: age vs. ticket fare")
	w.Resize(fyne.NewSize(float32(cfg.Layout.Width)+40, float32(cfg.Layout.Height)+140))

	state := &uiState{
		app:      a,
		window:   w,
		filePath: cfg.Data.Path,
		cfg:      cfg,
		ctrl:     scene.NewController(cfg.SceneLayout()),
	}

	// top bar
	state.fileLabel = widget.NewLabel(uihelpers.TruncatePath(state.filePath, 60))
	reloadBtn := widget.NewButton("Reload", func() { loadAll(state) })
	state.statusLabel = widget.NewLabel("")
	top := container.NewHBox(reloadBtn, state.fileLabel, state.statusLabel)

	// chart with hover overlay
	l := cfg.SceneLayout()
	state.chartImg = canvas.NewImageFromImage(draw.Blank(int(l.Width), int(l.Height)))
	state.chartImg.FillMode = canvas.ImageFillContain
	cw, ch := uihelpers.ComputeChartDimensions(0, cfg.Layout.Width, cfg.Layout.Height, 640)
	state.chartImg.SetMinSize(fyne.NewSize(float32(cw), float32(ch)))
	state.overlay = newHoverOverlay(state)
	chartArea := container.NewStack(state.chartImg, state.overlay)

	// group toggles mirror the legend checkboxes
	var toggles []fyne.CanvasObject
	for _, g := range passengers.Groups {
		g := g
		chk := widget.NewCheck(g.Label(), func(on bool) {
			if state.syncing {
				return
			}
			state.ctrl.SetVisible(g, on)
			logging.Debugf("toggle %s -> %s", g.Label(), state.ctrl.Visibility())
		})
		chk.Checked = true
		state.checks[g] = chk
		toggles = append(toggles, chk)
	}
	bottom := container.NewHBox(toggles...)

	state.ctrl.OnRender = func(sc scene.Scene) { applyScene(state, sc) }

	w.SetContent(container.NewBorder(top, bottom, nil, nil, chartArea))
	buildMenus(state)
	state.ctrl.Redraw()
	loadAll(state)

	w.ShowAndRun()
}

// chartImage rasterizes sc, stamping a notice when the last load failed.
func chartImage(sc scene.Scene, loadErr error, path string) image.Image {
	img, err := draw.Image(sc)
	if err != nil {
		logging.Errorf("render chart: %v", err)
		img = draw.Blank(int(sc.Width), int(sc.Height))
	}
	if loadErr != nil {
		img = draw.Banner(img, fmt.Sprintf("Could not load %s: %v", path, loadErr))
	}
	return img
}

func applyScene(state *uiState, sc scene.Scene) {
	img := chartImage(sc, state.loadErr, state.filePath)
	if state.chartImg != nil {
		state.chartImg.Image = img
		state.chartImg.Refresh()
	}
	syncChecks(state)
	if state.overlay != nil {
		state.overlay.Refresh()
	}
}

// syncChecks mirrors the controller's visibility onto the toggle row.
func syncChecks(state *uiState) {
	vis := state.ctrl.Visibility()
	state.syncing = true
	defer func() { state.syncing = false }()
	for g, chk := range state.checks {
		if chk != nil && chk.Checked != vis[g] {
			chk.SetChecked(vis[g])
		}
	}
}

func (state *uiState) setStatus(s string) {
	if state.statusLabel != nil {
		state.statusLabel.SetText(s)
	}
}

// menus and shortcuts
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportChart(state, draw.PNG, draw.PNGFile) }),
		fyne.NewMenuItem("Export SVG…", func() { exportChart(state, draw.SVG, draw.InteractiveFile) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { loadAll(state) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// loadAll reads the dataset in the background and hands it to the
// controller on the UI goroutine. A newer load supersedes an older one.
func loadAll(state *uiState) {
	if state.cancelLoad != nil {
		state.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	state.cancelLoad = cancel
	path := state.filePath
	if state.fileLabel != nil {
		state.fileLabel.SetText(uihelpers.TruncatePath(path, 60))
	}
	state.setStatus("Loading…")
	start := time.Now()
	ch := passengers.LoadAsync(ctx, path)
	go func() {
		res := <-ch
		fyne.Do(func() {
			if ctx.Err() != nil {
				return
			}
			logging.TimeTrack(start, "load "+path)
			applyLoad(state, res)
		})
	}()
}

func applyLoad(state *uiState, res passengers.LoadResult) {
	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) {
			return
		}
		logging.Errorf("load %s: %v", res.Path, res.Err)
		state.loadErr = res.Err
		state.setStatus("Load failed")
		state.ctrl.SetData(nil)
		if state.window != nil {
			dialog.ShowError(res.Err, state.window)
		}
		return
	}
	state.loadErr = nil
	c := passengers.CountGroups(res.Records)
	plottable := 0
	for _, n := range c.Plottable {
		plottable += n
	}
	logging.Infof("loaded %d passengers from %s (%d plottable)", c.Records(), res.Path, plottable)
	state.setStatus(fmt.Sprintf("%d passengers, %d plotted", c.Records(), plottable))
	state.ctrl.SetData(res.Records)
}

// exportChart saves the current scene through a save dialog.
func exportChart(state *uiState, f draw.Format, defaultName string) {
	if state == nil || state.window == nil || state.ctrl == nil {
		return
	}
	sc := state.ctrl.Scene()
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := writeExport(sc, f, wc); err != nil {
			logging.Errorf("export %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, state.window)
			return
		}
		logging.Infof("exported %s", wc.URI().Path())
	}, state.window)
	fs.SetFileName(defaultName)
	fs.Show()
}

// writeExport encodes sc for a save dialog. SVG exports carry hover tooltips.
func writeExport(sc scene.Scene, f draw.Format, w io.Writer) error {
	if f == draw.SVG {
		return draw.WriteSVGDocument(sc, w)
	}
	return draw.Render(sc, f, w)
}
