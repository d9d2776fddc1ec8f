// Package draw paints a scene.Scene onto real surfaces: PNG and SVG through
// go-chart's renderers, and a standalone SVG document whose markers carry
// native hover tooltips.
package draw

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// Format selects the output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

const (
	tickFontSize   = 9.0
	titleFontSize  = 11.0
	legendFontSize = 10.0
)

var (
	textColor  = drawing.Color{R: 51, G: 51, B: 51, A: 255}
	checkColor = drawing.Color{R: 40, G: 90, B: 200, A: 255}
	boxColor   = drawing.Color{R: 118, G: 118, B: 118, A: 255}
)

func provider(f Format) (chart.RendererProvider, error) {
	switch f {
	case PNG:
		return chart.PNG, nil
	case SVG:
		return chart.SVG, nil
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// rgba applies opacity to c as an alpha channel.
func rgba(c scene.Color, opacity float64) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(opacity) * 255))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func px(v float64) int { return int(math.Round(v)) }

// Render paints sc and writes it to w in format f.
func Render(sc scene.Scene, f Format, w io.Writer) error {
	rp, err := provider(f)
	if err != nil {
		return err
	}
	r, err := rp(px(sc.Width), px(sc.Height))
	if err != nil {
		return fmt.Errorf("create %s renderer: %w", f, err)
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)
	paint(r, sc)
	if err := r.Save(w); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}

// Image renders sc to an in-memory image.
func Image(sc scene.Scene) (image.Image, error) {
	var buf bytes.Buffer
	if err := Render(sc, PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}
	return img, nil
}

func paint(r chart.Renderer, sc scene.Scene) {
	r.SetFillColor(drawing.ColorWhite)
	rectPath(r, scene.Rect{W: sc.Width, H: sc.Height})
	r.Fill()

	paintGrid(r, sc.XAxis)
	paintGrid(r, sc.YAxis)
	for _, m := range sc.Markers {
		paintMarker(r, m)
	}
	paintAxis(r, sc.XAxis)
	paintAxis(r, sc.YAxis)
	paintText(r, sc.XTitle, titleFontSize, textColor)
	paintText(r, sc.YTitle, titleFontSize, textColor)
	paintLegend(r, sc.Legend)
}

func rectPath(r chart.Renderer, b scene.Rect) {
	x0, y0, x1, y1 := px(b.X), px(b.Y), px(b.X+b.W), px(b.Y+b.H)
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
}

func line(r chart.Renderer, s scene.Segment) {
	r.MoveTo(px(s.X1), px(s.Y1))
	r.LineTo(px(s.X2), px(s.Y2))
	r.Stroke()
}

func paintGrid(r chart.Renderer, a scene.Axis) {
	r.ResetStyle()
	r.SetStrokeColor(drawing.Color{R: scene.Grid.R, G: scene.Grid.G, B: scene.Grid.B, A: 255})
	r.SetStrokeWidth(1)
	for _, t := range a.Ticks {
		line(r, a.Gridline(t))
	}
}

func paintAxis(r chart.Renderer, a scene.Axis) {
	r.ResetStyle()
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	line(r, a.DomainLine())
	for _, t := range a.Ticks {
		if t.Label == "" {
			continue
		}
		paintText(r, a.LabelAnchor(t), tickFontSize, textColor)
	}
}

func paintMarker(r chart.Renderer, m scene.Marker) {
	r.ResetStyle()
	switch m.Shape {
	case scene.Circle:
		r.SetFillColor(drawing.ColorTransparent)
		r.SetStrokeColor(rgba(m.Color, m.Opacity))
		r.SetStrokeWidth(m.StrokeWidth)
		r.Circle(m.Radius, px(m.CX), px(m.CY))
		r.Stroke()
	default:
		r.SetFillColor(rgba(m.Color, m.Opacity))
		rectPath(r, m.Bounds)
		r.Fill()
	}
}

func paintText(r chart.Renderer, t scene.Text, size float64, col drawing.Color) {
	if t.Body == "" {
		return
	}
	r.SetFontSize(size)
	r.SetFontColor(col)
	box := r.MeasureText(t.Body)
	w, h := float64(box.Width()), float64(box.Height())

	// along is the shift along the reading direction, across is perpendicular
	var along, across float64
	switch t.Anchor {
	case scene.AnchorMiddle:
		along = -w / 2
	case scene.AnchorEnd:
		along = -w
	}
	switch t.Baseline {
	case scene.BaselineMiddle:
		across = h / 2
	case scene.BaselineHanging:
		across = h
	}
	if t.Rotation == 0 {
		r.Text(t.Body, px(t.X+along), px(t.Y+across))
		return
	}
	rad := t.Rotation * math.Pi / 180
	x := t.X + along*math.Cos(rad) - across*math.Sin(rad)
	y := t.Y + along*math.Sin(rad) + across*math.Cos(rad)
	r.SetTextRotation(rad)
	r.Text(t.Body, px(x), px(y))
	r.ClearTextRotation()
}

func paintLegend(r chart.Renderer, l scene.Legend) {
	r.ResetStyle()
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(l.BorderWidth)
	rectPath(r, l.Box)
	r.Stroke()

	for _, e := range l.Entries {
		paintCheckbox(r, e.Checkbox, e.Checked)
		paintMarker(r, e.Glyph)
		paintText(r, e.Label, legendFontSize, drawing.ColorBlack)
	}
}

func paintCheckbox(r chart.Renderer, b scene.Rect, checked bool) {
	r.ResetStyle()
	r.SetStrokeWidth(1)
	if checked {
		r.SetFillColor(checkColor)
		r.SetStrokeColor(checkColor)
	} else {
		r.SetFillColor(drawing.ColorWhite)
		r.SetStrokeColor(boxColor)
	}
	rectPath(r, b)
	r.FillStroke()
	if !checked {
		return
	}
	r.ResetStyle()
	r.SetStrokeColor(drawing.ColorWhite)
	r.SetStrokeWidth(2)
	r.MoveTo(px(b.X+b.W*0.22), px(b.Y+b.H*0.52))
	r.LineTo(px(b.X+b.W*0.42), px(b.Y+b.H*0.72))
	r.LineTo(px(b.X+b.W*0.78), px(b.Y+b.H*0.30))
	r.Stroke()
}
