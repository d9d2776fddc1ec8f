package scene

import (
	"math"

	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
)

const (
	squareSide   = 6.0
	squareOffset = 5.0
	circleRadius = 3.0
	circleStroke = 2.0

	ageTickCount  = 10
	fareTickCount = 20
	tickPadding   = 10.0

	legendBorder      = 2.0
	legendRowHeight   = 20.0
	legendGlyphRadius = 5.0
	legendGlyphStroke = 3.0
	legendSquareSide  = 10.0
	checkboxSize      = 13.0
)

// Render builds the scene for records under vis. It never fails: records
// without an age or with a zero fare are left out, everything else becomes
// exactly one marker. Male squares come first, then female circles, each in
// dataset order. Hidden groups keep their markers at HiddenOpacity.
func Render(records []passengers.Record, vis Visibility, l Layout) Scene {
	op := Opacities(vis)
	xs, ys := l.AgeScale(), l.FareScale()
	male, female := passengers.Partition(records)

	markers := make([]Marker, 0, len(male)+len(female))
	for _, r := range male {
		g := r.Group()
		cx, cy := xs.Map(r.Age), ys.Map(r.Fare)
		markers = append(markers, Marker{
			Shape:   Square,
			Group:   g,
			CX:      cx,
			CY:      cy,
			Bounds:  Rect{X: cx - squareOffset, Y: cy - squareOffset, W: squareSide, H: squareSide},
			Color:   GroupColor(g),
			Opacity: op[g],
			Tooltip: tooltipFor(r),
		})
	}
	for _, r := range female {
		g := r.Group()
		cx, cy := xs.Map(r.Age), ys.Map(r.Fare)
		markers = append(markers, Marker{
			Shape:       Circle,
			Group:       g,
			CX:          cx,
			CY:          cy,
			Bounds:      Rect{X: cx - circleRadius, Y: cy - circleRadius, W: 2 * circleRadius, H: 2 * circleRadius},
			Radius:      circleRadius,
			Color:       GroupColor(g),
			Opacity:     op[g],
			StrokeWidth: circleStroke,
			Tooltip:     tooltipFor(r),
		})
	}

	return Scene{
		Width:     l.Width,
		Height:    l.Height,
		Opacities: op,
		Markers:   markers,
		XAxis:     ageAxis(l, xs),
		YAxis:     fareAxis(l, ys),
		XTitle: Text{
			X:      l.PlotRight() / 2,
			Y:      l.Height - 15,
			Body:   "Age (years)",
			Anchor: AnchorMiddle,
		},
		YTitle: Text{
			X:        15,
			Y:        300,
			Body:     "Ticket fare (dollars)",
			Anchor:   AnchorMiddle,
			Rotation: -90,
		},
		Legend: legend(l, vis, op),
	}
}

func tooltipFor(r passengers.Record) Tooltip {
	survival := "not survived"
	if r.Survived {
		survival = "survived"
	}
	return Tooltip{
		Name:     r.Name,
		Sex:      r.Sex.String(),
		Age:      FormatAge(r.Age),
		Fare:     FormatCurrency(r.Fare),
		Survival: survival,
	}
}

func ageAxis(l Layout, xs LinearScale) Axis {
	format := xs.TickFormat(ageTickCount)
	var ticks []Tick
	for _, v := range xs.Ticks(ageTickCount) {
		ticks = append(ticks, Tick{Value: v, Pos: xs.Map(v), Label: format(v)})
	}
	return Axis{
		Orient:      Bottom,
		Offset:      l.Height - l.Margin,
		RangeStart:  xs.R0,
		RangeEnd:    xs.R1,
		Ticks:       ticks,
		GridLength:  math.Min(l.Width, l.Height-l.Margin),
		TickPadding: tickPadding,
	}
}

func fareAxis(l Layout, ys LogScale) Axis {
	format := ys.TickFormat(fareTickCount, func(v float64) string { return FormatSI(v, 1) })
	var ticks []Tick
	for _, v := range ys.Ticks() {
		ticks = append(ticks, Tick{Value: v, Pos: ys.Map(v), Label: format(v)})
	}
	return Axis{
		Orient:      Left,
		Offset:      l.Margin,
		RangeStart:  ys.R0,
		RangeEnd:    ys.R1,
		Ticks:       ticks,
		GridLength:  l.Width - l.LegendWidth - l.Margin,
		TickPadding: tickPadding,
	}
}

func legend(l Layout, vis Visibility, op [passengers.NumGroups]float64) Legend {
	ox, oy := l.LegendOrigin()
	lg := Legend{
		Box:         Rect{X: ox, Y: oy, W: l.LegendWidth, H: l.LegendHeight},
		BorderWidth: legendBorder,
	}
	for i, g := range passengers.Groups {
		row := legendRowHeight * float64(i)
		glyph := Marker{Group: g, Color: GroupColor(g), Opacity: op[g]}
		if g.IsMale() {
			glyph.Shape = Square
			glyph.Bounds = Rect{X: ox + 20, Y: oy + row + 5, W: legendSquareSide, H: legendSquareSide}
			glyph.CX = glyph.Bounds.X + legendSquareSide/2
			glyph.CY = glyph.Bounds.Y + legendSquareSide/2
		} else {
			glyph.Shape = Circle
			glyph.CX, glyph.CY = ox+25, oy+row+10
			glyph.Radius = legendGlyphRadius
			glyph.StrokeWidth = legendGlyphStroke
			glyph.Bounds = Rect{X: glyph.CX - legendGlyphRadius, Y: glyph.CY - legendGlyphRadius, W: 2 * legendGlyphRadius, H: 2 * legendGlyphRadius}
		}
		lg.Entries[i] = LegendEntry{
			Group:    g,
			Checked:  vis[g],
			Checkbox: Rect{X: ox - 7, Y: oy + row + 3, W: checkboxSize, H: checkboxSize},
			Glyph:    glyph,
			Label:    Text{X: ox + 35, Y: oy + row + 15, Body: g.Label()},
		}
	}
	return lg
}
