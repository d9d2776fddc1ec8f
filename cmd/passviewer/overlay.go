package main

import (
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/mcgradyjason/udacity-data-analyst/cmd/passviewer/uihelpers"
	"github.com/mcgradyjason/udacity-data-analyst/src/logging"
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// hoverSlop widens marker hit areas, in scene pixels.
const hoverSlop = 2

// hoverOverlay sits on top of the chart image. It shows the tooltip of the
// marker under the cursor and forwards clicks on legend checkboxes.
type hoverOverlay struct {
	widget.BaseWidget
	state    *uiState
	mouse    fyne.Position
	hovering bool
}

func newHoverOverlay(state *uiState) *hoverOverlay {
	o := &hoverOverlay{state: state}
	o.ExtendBaseWidget(o)
	return o
}

// imageSize is the pixel size of the image currently shown under the overlay.
func (o *hoverOverlay) imageSize() (float32, float32) {
	if o.state != nil && o.state.chartImg != nil && o.state.chartImg.Image != nil {
		b := o.state.chartImg.Image.Bounds()
		return float32(b.Dx()), float32(b.Dy())
	}
	sz := o.Size()
	return sz.Width, sz.Height
}

// markerAt maps a view position to the marker under it.
func markerAt(sc scene.Scene, imgW, imgH float32, view fyne.Size, pos fyne.Position) (scene.Marker, bool) {
	x, y, ok := uihelpers.ViewToScene(pos.X, pos.Y, imgW, imgH, view.Width, view.Height)
	if !ok {
		return scene.Marker{}, false
	}
	// The image may be rendered at a different size from the scene.
	x *= sc.Width / float64(imgW)
	y *= sc.Height / float64(imgH)
	i, ok := sc.HitTest(x, y, hoverSlop)
	if !ok {
		return scene.Marker{}, false
	}
	return sc.Markers[i], true
}

// checkboxAt maps a view position to the legend checkbox under it.
func checkboxAt(sc scene.Scene, imgW, imgH float32, view fyne.Size, pos fyne.Position) (passengers.Group, bool) {
	x, y, ok := uihelpers.ViewToScene(pos.X, pos.Y, imgW, imgH, view.Width, view.Height)
	if !ok {
		return 0, false
	}
	x *= sc.Width / float64(imgW)
	y *= sc.Height / float64(imgH)
	return sc.Legend.CheckboxAt(x, y)
}

func (o *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	// transparent background keeps the whole area hoverable
	bg := canvas.NewRectangle(color.RGBA{})
	ring := canvas.NewCircle(color.RGBA{})
	ring.StrokeWidth = 1.5
	label := widget.NewRichText()
	label.Wrapping = fyne.TextWrapOff
	labelBG := canvas.NewRectangle(color.RGBA{R: 0, G: 0, B: 0, A: 170})
	objs := []fyne.CanvasObject{bg, ring, labelBG, label}
	return &hoverRenderer{o: o, bg: bg, ring: ring, labelBG: labelBG, label: label, objs: objs}
}

type hoverRenderer struct {
	o       *hoverOverlay
	bg      *canvas.Rectangle
	ring    *canvas.Circle
	labelBG *canvas.Rectangle
	label   *widget.RichText
	objs    []fyne.CanvasObject
}

func (r *hoverRenderer) hide() {
	r.ring.Resize(fyne.NewSize(0, 0))
	r.ring.Move(fyne.NewPos(-1000, -1000))
	r.labelBG.Resize(fyne.NewSize(0, 0))
	r.labelBG.Move(fyne.NewPos(-1000, -1000))
	r.label.Segments = nil
	r.label.Move(fyne.NewPos(-1000, -1000))
}

func (r *hoverRenderer) Destroy() {}

func (r *hoverRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))
	st := r.o.state
	if !r.o.hovering || st == nil || st.ctrl == nil {
		r.hide()
		return
	}
	imgW, imgH := r.o.imageSize()
	sc := st.ctrl.Scene()
	m, ok := markerAt(sc, imgW, imgH, size, r.o.mouse)
	if !ok {
		r.hide()
		return
	}
	// ring around the hovered marker, in view space
	dx, dy, _, _, scale := uihelpers.ContainRect(imgW, imgH, size.Width, size.Height)
	kx := scale * imgW / float32(sc.Width)
	ky := scale * imgH / float32(sc.Height)
	cx, cy := m.CX, m.CY
	if m.Shape == scene.Square {
		cx, cy = m.Bounds.X+m.Bounds.W/2, m.Bounds.Y+m.Bounds.H/2
	}
	rad := float32(7) * kx
	vx, vy := dx+float32(cx)*kx, dy+float32(cy)*ky
	r.ring.Resize(fyne.NewSize(2*rad, 2*rad))
	r.ring.Move(fyne.NewPos(vx-rad, vy-rad))

	r.label.Segments = []widget.RichTextSegment{&widget.TextSegment{Text: m.Tooltip.Text()}}
	r.label.Refresh()
	pad := float32(6)
	ts := r.label.MinSize()
	bgW := ts.Width + 2*pad
	bgH := ts.Height + 2*pad
	tx, ty := r.o.mouse.X+12, r.o.mouse.Y+12
	if tx+bgW > size.Width {
		tx = size.Width - bgW
	}
	if ty+bgH > size.Height {
		ty = size.Height - bgH
	}
	r.labelBG.Resize(fyne.NewSize(bgW, bgH))
	r.labelBG.Move(fyne.NewPos(tx, ty))
	r.label.Move(fyne.NewPos(tx+pad, ty+pad))
}

func (r *hoverRenderer) MinSize() fyne.Size           { return fyne.NewSize(10, 10) }
func (r *hoverRenderer) Objects() []fyne.CanvasObject { return r.objs }
func (r *hoverRenderer) Refresh() {
	r.Layout(r.o.Size())
	r.ring.StrokeColor = theme.Color(theme.ColorNamePrimary)
	r.bg.Refresh()
	r.ring.Refresh()
	r.labelBG.Refresh()
	r.label.Refresh()
}

func (o *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	o.hovering = true
	o.mouse = ev.Position
	o.Refresh()
}
func (o *hoverOverlay) MouseIn(ev *desktop.MouseEvent) { o.hovering = true; o.mouse = ev.Position; o.Refresh() }
func (o *hoverOverlay) MouseOut()                      { o.hovering = false; o.Refresh() }

// Tapped toggles a group when the click lands on its legend checkbox.
func (o *hoverOverlay) Tapped(ev *fyne.PointEvent) {
	if o.state == nil || o.state.ctrl == nil {
		return
	}
	imgW, imgH := o.imageSize()
	g, ok := checkboxAt(o.state.ctrl.Scene(), imgW, imgH, o.Size(), ev.Position)
	if !ok {
		return
	}
	vis := o.state.ctrl.Toggle(g)
	logging.Debugf("legend toggle %s -> %s", g.Label(), vis)
}

var (
	_ desktop.Hoverable = (*hoverOverlay)(nil)
	_ fyne.Tappable     = (*hoverOverlay)(nil)
)
