package draw

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// WriteSVGDocument writes sc as a standalone SVG document. Each marker is
// wrapped in a group carrying a <title>, so viewers show the passenger's
// tooltip on hover.
func WriteSVGDocument(sc scene.Scene, w io.Writer) error {
	cw := &errWriter{w: w}
	c := svg.New(cw)
	c.Start(px(sc.Width), px(sc.Height))
	c.Title("Passengers: age vs. ticket fare")
	c.Rect(0, 0, px(sc.Width), px(sc.Height), "fill:white")

	c.Gid("grid")
	for _, a := range []scene.Axis{sc.XAxis, sc.YAxis} {
		for _, t := range a.Ticks {
			s := a.Gridline(t)
			c.Line(px(s.X1), px(s.Y1), px(s.X2), px(s.Y2), "stroke:"+scene.Grid.Hex()+";stroke-width:1")
		}
	}
	c.Gend()

	c.Gid("markers")
	for _, m := range sc.Markers {
		c.Group(`class="marker"`)
		c.Title(m.Tooltip.Text())
		svgMarker(c, m)
		c.Gend()
	}
	c.Gend()

	svgAxis(c, sc.XAxis, "x axis")
	svgAxis(c, sc.YAxis, "y axis")
	svgText(c, sc.XTitle, "x label", "font-size:13px")
	svgText(c, sc.YTitle, "y label", "font-size:13px")

	l := sc.Legend
	c.Group(`class="legend"`)
	c.Rect(px(l.Box.X), px(l.Box.Y), px(l.Box.W), px(l.Box.H),
		"fill:none;stroke:black;stroke-width:"+num(l.BorderWidth))
	for _, e := range l.Entries {
		b := e.Checkbox
		if e.Checked {
			c.Rect(px(b.X), px(b.Y), px(b.W), px(b.H), "fill:#285ac8;stroke:#285ac8")
			c.Polyline(
				[]int{px(b.X + b.W*0.22), px(b.X + b.W*0.42), px(b.X + b.W*0.78)},
				[]int{px(b.Y + b.H*0.52), px(b.Y + b.H*0.72), px(b.Y + b.H*0.30)},
				"fill:none;stroke:white;stroke-width:2")
		} else {
			c.Rect(px(b.X), px(b.Y), px(b.W), px(b.H), "fill:white;stroke:#767676")
		}
		svgMarker(c, e.Glyph)
		svgText(c, e.Label, "", "font-size:12px")
	}
	c.Gend()

	c.End()
	return cw.err
}

func svgMarker(c *svg.SVG, m scene.Marker) {
	switch m.Shape {
	case scene.Circle:
		c.Circle(px(m.CX), px(m.CY), px(m.Radius),
			fmt.Sprintf("fill:transparent;stroke:%s;stroke-width:%s;stroke-opacity:%s", m.Color.Hex(), num(m.StrokeWidth), num(m.Opacity)))
	default:
		b := m.Bounds
		c.Rect(px(b.X), px(b.Y), px(b.W), px(b.H),
			fmt.Sprintf("fill:%s;opacity:%s", m.Color.Hex(), num(m.Opacity)))
	}
}

func svgAxis(c *svg.SVG, a scene.Axis, class string) {
	c.Group(`class="` + class + `"`)
	d := a.DomainLine()
	c.Line(px(d.X1), px(d.Y1), px(d.X2), px(d.Y2), "stroke:black;stroke-width:1")
	for _, t := range a.Ticks {
		svgText(c, a.LabelAnchor(t), "", "font-size:10px;fill:#333")
	}
	c.Gend()
}

var anchors = map[scene.Anchor]string{
	scene.AnchorStart:  "start",
	scene.AnchorMiddle: "middle",
	scene.AnchorEnd:    "end",
}

var baselines = map[scene.Baseline]string{
	scene.BaselineAlphabetic: "alphabetic",
	scene.BaselineMiddle:     "central",
	scene.BaselineHanging:    "hanging",
}

func svgText(c *svg.SVG, t scene.Text, class, style string) {
	if t.Body == "" {
		return
	}
	attrs := []string{
		style + ";text-anchor:" + anchors[t.Anchor] + ";dominant-baseline:" + baselines[t.Baseline],
	}
	if class != "" {
		attrs = append(attrs, `class="`+class+`"`)
	}
	if t.Rotation != 0 {
		c.Gtransform(fmt.Sprintf("rotate(%s %d %d)", num(t.Rotation), px(t.X), px(t.Y)))
		c.Text(px(t.X), px(t.Y), t.Body, attrs...)
		c.Gend()
		return
	}
	c.Text(px(t.X), px(t.Y), t.Body, attrs...)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// errWriter remembers the first write error; svgo itself drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
