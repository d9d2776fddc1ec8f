// Package scene turns a passenger dataset and a visibility vector into a
// complete description of the age/fare scatter plot: markers, axes, titles
// and the legend. Everything is in surface pixels with the origin at the
// top-left corner; drawing backends only have to walk the description.
package scene

import (
	"math"
	"strings"

	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
)

// Color is an opaque RGB color; alpha is carried separately as opacity.
type Color struct {
	R, G, B uint8
}

var (
	Green = Color{R: 0, G: 128, B: 0}
	Red   = Color{R: 255, G: 0, B: 0}
	Black = Color{}
	Grid  = Color{R: 221, G: 221, B: 221}
)

// Hex returns the CSS form, e.g. "#008000".
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}

// GroupColor is green for survivor groups and red otherwise.
func GroupColor(g passengers.Group) Color {
	if g.Survived() {
		return Green
	}
	return Red
}

// Shape of a plotted marker.
type Shape int

const (
	// Square is a filled square; Opacity applies to the whole shape.
	Square Shape = iota
	// Circle is an outline with a transparent fill; Opacity is the stroke opacity.
	Circle
)

func (s Shape) String() string {
	if s == Circle {
		return "circle"
	}
	return "square"
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Tooltip is the hover text of one marker.
type Tooltip struct {
	Name     string
	Sex      string
	Age      string
	Fare     string
	Survival string
}

// Lines returns the tooltip as display lines.
func (t Tooltip) Lines() []string {
	return []string{t.Name, t.Sex + ", " + t.Age + ", " + t.Fare + ", " + t.Survival}
}

// Text joins Lines with a newline.
func (t Tooltip) Text() string { return strings.Join(t.Lines(), "\n") }

// Marker is one plotted passenger.
type Marker struct {
	Shape Shape
	Group passengers.Group
	// CX, CY is the mapped (age, fare) point.
	CX, CY float64
	// Bounds is the drawn square for Square markers and the circle's
	// bounding box for Circle markers.
	Bounds      Rect
	Radius      float64
	Color       Color
	Opacity     float64
	StrokeWidth float64
	Tooltip     Tooltip
}

// Orient is the side of the plot an axis is drawn on.
type Orient int

const (
	Bottom Orient = iota
	Left
)

// Tick is one axis tick. Label may be empty for unlabelled log ticks.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Axis is a positioned axis with ticks and gridlines.
type Axis struct {
	Orient Orient
	// Offset is the y of a Bottom axis or the x of a Left axis.
	Offset float64
	// RangeStart and RangeEnd bound the domain line along the axis.
	RangeStart, RangeEnd float64
	Ticks                []Tick
	// GridLength is how far gridlines run into the plot from the axis line.
	GridLength  float64
	TickPadding float64
}

// Segment is a straight line.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// DomainLine is the axis line itself.
func (a Axis) DomainLine() Segment {
	if a.Orient == Left {
		return Segment{X1: a.Offset, Y1: a.RangeStart, X2: a.Offset, Y2: a.RangeEnd}
	}
	return Segment{X1: a.RangeStart, Y1: a.Offset, X2: a.RangeEnd, Y2: a.Offset}
}

// Gridline is the gridline through t.
func (a Axis) Gridline(t Tick) Segment {
	if a.Orient == Left {
		return Segment{X1: a.Offset, Y1: t.Pos, X2: a.Offset + a.GridLength, Y2: t.Pos}
	}
	return Segment{X1: t.Pos, Y1: a.Offset, X2: t.Pos, Y2: a.Offset - a.GridLength}
}

// LabelAnchor is where t's label is placed and how it is aligned.
func (a Axis) LabelAnchor(t Tick) Text {
	if a.Orient == Left {
		return Text{X: a.Offset - a.TickPadding, Y: t.Pos, Body: t.Label, Anchor: AnchorEnd, Baseline: BaselineMiddle}
	}
	return Text{X: t.Pos, Y: a.Offset + a.TickPadding, Body: t.Label, Anchor: AnchorMiddle, Baseline: BaselineHanging}
}

// Anchor is horizontal text alignment.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Baseline is vertical text alignment relative to Y.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineMiddle
	BaselineHanging
)

// Text is a positioned label. Rotation is in degrees, counter-clockwise
// negative as on screen.
type Text struct {
	X, Y     float64
	Body     string
	Anchor   Anchor
	Baseline Baseline
	Rotation float64
}

// LegendEntry is one row of the legend.
type LegendEntry struct {
	Group passengers.Group
	// Checked mirrors the group's visibility.
	Checked  bool
	Checkbox Rect
	Glyph    Marker
	Label    Text
}

// Legend is the boxed key with one checkbox per group.
type Legend struct {
	Box         Rect
	BorderWidth float64
	Entries     [passengers.NumGroups]LegendEntry
}

// CheckboxAt returns the group whose checkbox contains (x, y).
func (l Legend) CheckboxAt(x, y float64) (passengers.Group, bool) {
	for _, e := range l.Entries {
		if e.Checkbox.Contains(x, y) {
			return e.Group, true
		}
	}
	return 0, false
}

// Scene is a complete rendering of the plot.
type Scene struct {
	Width, Height float64
	Opacities     [passengers.NumGroups]float64
	Markers       []Marker
	XAxis, YAxis  Axis
	XTitle        Text
	YTitle        Text
	Legend        Legend
}

// HitTest returns the index of the marker under (x, y), allowing slop
// extra pixels around each shape. When several overlap the one drawn last
// wins, as it is the one on top.
func (s Scene) HitTest(x, y, slop float64) (int, bool) {
	for i := len(s.Markers) - 1; i >= 0; i-- {
		m := s.Markers[i]
		switch m.Shape {
		case Circle:
			if math.Hypot(x-m.CX, y-m.CY) <= m.Radius+m.StrokeWidth/2+slop {
				return i, true
			}
		default:
			b := m.Bounds
			if (Rect{X: b.X - slop, Y: b.Y - slop, W: b.W + 2*slop, H: b.H + 2*slop}).Contains(x, y) {
				return i, true
			}
		}
	}
	return -1, false
}
