package scene

import (
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
)

// Controller owns the dataset and the visibility vector and redraws the
// whole scene whenever either changes. It is not safe for concurrent use;
// drive it from the UI goroutine only.
type Controller struct {
	layout  Layout
	records []passengers.Record
	vis     Visibility
	last    Scene

	// OnRender receives every freshly built scene.
	OnRender func(Scene)
}

// NewController returns a controller with no data and every group visible.
func NewController(l Layout) *Controller {
	c := &Controller{layout: l, vis: AllVisible()}
	c.last = Render(nil, c.vis, l)
	return c
}

// SetData replaces the dataset, resets every group to visible and redraws.
func (c *Controller) SetData(records []passengers.Record) {
	c.records = records
	c.vis = AllVisible()
	c.Redraw()
}

// SetLayout changes the surface geometry and redraws.
func (c *Controller) SetLayout(l Layout) {
	c.layout = l
	c.Redraw()
}

// Toggle flips group g and redraws. It returns the new visibility.
func (c *Controller) Toggle(g passengers.Group) Visibility {
	c.vis.Toggle(g)
	c.Redraw()
	return c.vis
}

// SetVisible sets group g to on, redrawing only when that is a change.
func (c *Controller) SetVisible(g passengers.Group, on bool) {
	if g < 0 || int(g) >= passengers.NumGroups || c.vis[g] == on {
		return
	}
	c.Toggle(g)
}

// Redraw rebuilds the scene from scratch and hands it to OnRender.
func (c *Controller) Redraw() {
	c.last = Render(c.records, c.vis, c.layout)
	if c.OnRender != nil {
		c.OnRender(c.last)
	}
}

func (c *Controller) Visibility() Visibility       { return c.vis }
func (c *Controller) Records() []passengers.Record { return c.records }
func (c *Controller) Layout() Layout               { return c.layout }

// Scene returns the most recently built scene.
func (c *Controller) Scene() Scene { return c.last }
