package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	fyne "fyne.io/fyne/v2"

	"github.com/mcgradyjason/udacity-data-analyst/src/config"
	"github.com/mcgradyjason/udacity-data-analyst/src/draw"
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

const testCSV = `PassengerId,Survived,Pclass,Name,Sex,Age,SibSp,Parch,Ticket,Fare,Cabin,Embarked
1,0,3,"Braund, Mr. Owen Harris",male,22,1,0,A/5 21171,7.25,,S
2,1,1,"Cumings, Mrs. John Bradley (Florence Briggs Thayer)",female,38,1,0,PC 17599,71.2833,C85,C
6,0,3,"Moran, Mr. James",male,,0,0,330877,8.4583,,Q
`

// writeTestCSV writes a tiny dataset and returns its path.
func writeTestCSV(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "train.csv")
	if err := os.WriteFile(p, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return p
}

func testRecords() []passengers.Record {
	return []passengers.Record{
		{Name: "Mr. A", Sex: passengers.Male, Survived: true, Age: 35, AgeKnown: true, Fare: 45},
		{Name: "Miss B", Sex: passengers.Female, Survived: false, Age: 20, AgeKnown: true, Fare: 8},
	}
}

func TestMarkerAt_MapsViewToScene(t *testing.T) {
	sc := scene.Render(testRecords(), scene.AllVisible(), scene.DefaultLayout())
	view := fyne.NewSize(500, 300) // half size, no letterbox
	circle := sc.Markers[1]
	if circle.Shape != scene.Circle {
		t.Fatalf("expected female circle drawn last, got %v", circle.Shape)
	}
	m, ok := markerAt(sc, 1000, 600, view, fyne.NewPos(float32(circle.CX/2), float32(circle.CY/2)))
	if !ok || m.Tooltip.Name != "Miss B" {
		t.Fatalf("hover over circle: ok=%v marker=%+v", ok, m.Tooltip)
	}
	sq := sc.Markers[0].Bounds
	m, ok = markerAt(sc, 1000, 600, view, fyne.NewPos(float32((sq.X+sq.W/2)/2), float32((sq.Y+sq.H/2)/2)))
	if !ok || m.Tooltip.Name != "Mr. A" {
		t.Fatalf("hover over square: ok=%v marker=%+v", ok, m.Tooltip)
	}
	if _, ok := markerAt(sc, 1000, 600, view, fyne.NewPos(5, 5)); ok {
		t.Fatalf("empty corner should not hit a marker")
	}
}

func TestMarkerAt_LetterboxedView(t *testing.T) {
	sc := scene.Render(testRecords(), scene.AllVisible(), scene.DefaultLayout())
	view := fyne.NewSize(1200, 600) // 100px bands left and right
	c := sc.Markers[1]
	if _, ok := markerAt(sc, 1000, 600, view, fyne.NewPos(float32(c.CX)+100, float32(c.CY))); !ok {
		t.Fatalf("expected hit with horizontal letterbox offset")
	}
	if _, ok := markerAt(sc, 1000, 600, view, fyne.NewPos(50, float32(c.CY))); ok {
		t.Fatalf("letterbox band must not hit")
	}
}

func TestCheckboxAt(t *testing.T) {
	sc := scene.Render(nil, scene.AllVisible(), scene.DefaultLayout())
	view := fyne.NewSize(1000, 600)
	for _, e := range sc.Legend.Entries {
		b := e.Checkbox
		g, ok := checkboxAt(sc, 1000, 600, view, fyne.NewPos(float32(b.X+b.W/2), float32(b.Y+b.H/2)))
		if !ok || g != e.Group {
			t.Fatalf("checkbox %s: got %v ok=%v", e.Group.Label(), g, ok)
		}
	}
	if _, ok := checkboxAt(sc, 1000, 600, view, fyne.NewPos(10, 10)); ok {
		t.Fatalf("no checkbox at the top-left corner")
	}
}

func TestChartImage_BannerOnLoadFailure(t *testing.T) {
	sc := scene.Render(nil, scene.AllVisible(), scene.DefaultLayout())
	plain := chartImage(sc, nil, "data/train.csv")
	failed := chartImage(sc, errors.New("open dataset: no such file"), "data/train.csv")
	if plain.Bounds() != image.Rect(0, 0, 1000, 600) || failed.Bounds() != plain.Bounds() {
		t.Fatalf("unexpected bounds %v / %v", plain.Bounds(), failed.Bounds())
	}
	r1, g1, b1, _ := plain.At(4, 595).RGBA()
	r2, g2, b2, _ := failed.At(4, 595).RGBA()
	if r1+g1+b1 <= r2+g2+b2 {
		t.Fatalf("banner should darken the bottom-left corner")
	}
}

func TestApplyLoad_FailureShowsEmptyScene(t *testing.T) {
	state := &uiState{ctrl: scene.NewController(scene.DefaultLayout()), filePath: "missing.csv"}
	var got []scene.Scene
	state.ctrl.OnRender = func(sc scene.Scene) { got = append(got, sc) }

	applyLoad(state, passengers.LoadResult{Path: "x.csv", Records: testRecords()})
	if state.loadErr != nil || len(got) != 1 || len(got[0].Markers) != 2 {
		t.Fatalf("successful load: err=%v renders=%d", state.loadErr, len(got))
	}

	state.ctrl.Toggle(passengers.MaleSurvived)
	applyLoad(state, passengers.LoadResult{Path: "missing.csv", Err: os.ErrNotExist})
	last := got[len(got)-1]
	if state.loadErr == nil || len(last.Markers) != 0 {
		t.Fatalf("failed load should clear markers: err=%v markers=%d", state.loadErr, len(last.Markers))
	}
	if state.ctrl.Visibility() != scene.AllVisible() {
		t.Fatalf("visibility should reset on reload, got %s", state.ctrl.Visibility())
	}

	n := len(got)
	applyLoad(state, passengers.LoadResult{Err: context.Canceled})
	if len(got) != n {
		t.Fatalf("canceled load must not redraw")
	}
}

func TestWriteExport(t *testing.T) {
	sc := scene.Render(testRecords(), scene.AllVisible(), scene.DefaultLayout())
	var svg bytes.Buffer
	if err := writeExport(sc, draw.SVG, &svg); err != nil {
		t.Fatalf("svg export: %v", err)
	}
	if !strings.Contains(svg.String(), "<title>Mr. A") {
		t.Fatalf("svg export should carry tooltips")
	}
	var png bytes.Buffer
	if err := writeExport(sc, draw.PNG, &png); err != nil {
		t.Fatalf("png export: %v", err)
	}
	img, _, err := image.Decode(&png)
	if err != nil || img.Bounds().Dx() != 1000 {
		t.Fatalf("png decode: %v", err)
	}
}

func TestRunExportMode(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Path = writeTestCSV(t)
	outDir := filepath.Join(t.TempDir(), "shots")
	var out bytes.Buffer
	if err := RunExportMode(context.Background(), cfg, scene.AllVisible(), outDir, &out); err != nil {
		t.Fatalf("RunExportMode: %v", err)
	}
	for _, name := range []string{draw.PNGFile, draw.SVGFile, draw.InteractiveFile} {
		p := filepath.Join(outDir, name)
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
		if !strings.Contains(out.String(), p) {
			t.Fatalf("output should list %s, got %q", p, out.String())
		}
	}
	f, err := os.Open(filepath.Join(outDir, draw.PNGFile))
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()
	cfgImg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfgImg.Width != 1000 || cfgImg.Height != 600 {
		t.Fatalf("png size %dx%d want 1000x600", cfgImg.Width, cfgImg.Height)
	}
}

func TestRunExportMode_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Path = filepath.Join(t.TempDir(), "nope.csv")
	err := RunExportMode(context.Background(), cfg, scene.AllVisible(), t.TempDir(), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}
