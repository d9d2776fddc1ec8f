package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
)

func rec(name string, sex passengers.Sex, survived bool, age, fare float64) passengers.Record {
	return passengers.Record{Name: name, Sex: sex, Survived: survived, Age: age, AgeKnown: true, Fare: fare}
}

func twoPassengers() []passengers.Record {
	return []passengers.Record{
		rec("Mr. A", passengers.Male, true, 30, 50),
		rec("Mrs. B", passengers.Female, false, 40, 10),
	}
}

func TestOpacities_PureFunctionOfVisibility(t *testing.T) {
	assert.Equal(t, [4]float64{0.8, 0.1, 0.8, 0.1}, Opacities(Visibility{true, false, true, false}))
	assert.Equal(t, [4]float64{0.8, 0.8, 0.8, 0.8}, Opacities(AllVisible()))
	assert.Equal(t, [4]float64{0.1, 0.1, 0.1, 0.1}, Opacities(Visibility{}))
}

func TestVisibilityToggle_FlipsOnlyOneIndex(t *testing.T) {
	v := AllVisible()
	v.Toggle(passengers.FemaleNotSurvived)
	assert.Equal(t, Visibility{true, false, true, true}, v)
	v.Toggle(passengers.FemaleNotSurvived)
	assert.Equal(t, Visibility{true, true, true, true}, v)
	v.Toggle(passengers.Group(9))
	assert.Equal(t, AllVisible(), v)
}

func TestParseVisibility(t *testing.T) {
	v, err := ParseVisibility("1011")
	require.NoError(t, err)
	assert.Equal(t, Visibility{true, false, true, true}, v)
	assert.Equal(t, "1011", v.String())

	_, err = ParseVisibility("101")
	assert.Error(t, err)
	_, err = ParseVisibility("10x1")
	assert.Error(t, err)
}

func TestRender_EndToEnd(t *testing.T) {
	l := DefaultLayout()
	sc := Render(twoPassengers(), AllVisible(), l)
	require.Len(t, sc.Markers, 2)

	sq := sc.Markers[0]
	assert.Equal(t, Square, sq.Shape)
	assert.Equal(t, Green, sq.Color)
	assert.Equal(t, 0.8, sq.Opacity)
	assert.InDelta(t, l.AgeScale().Map(30), sq.CX, 1e-9)
	assert.InDelta(t, l.FareScale().Map(50), sq.CY, 1e-9)
	assert.Equal(t, Rect{X: sq.CX - 5, Y: sq.CY - 5, W: 6, H: 6}, sq.Bounds)

	ci := sc.Markers[1]
	assert.Equal(t, Circle, ci.Shape)
	assert.Equal(t, Red, ci.Color)
	assert.Equal(t, 0.8, ci.Opacity)
	assert.Equal(t, 3.0, ci.Radius)
	assert.Equal(t, 2.0, ci.StrokeWidth)
	assert.InDelta(t, l.AgeScale().Map(40), ci.CX, 1e-9)
	assert.InDelta(t, l.FareScale().Map(10), ci.CY, 1e-9)

	v := AllVisible()
	v.Toggle(passengers.FemaleNotSurvived)
	hidden := Render(twoPassengers(), v, l)
	assert.Equal(t, 0.1, hidden.Markers[1].Opacity)
	assert.Equal(t, sq, hidden.Markers[0], "other markers unchanged")
	assert.Equal(t, sc.XAxis, hidden.XAxis)
	assert.Equal(t, sc.YAxis, hidden.YAxis)
}

func TestRender_ExcludesUnplottable(t *testing.T) {
	recs := []passengers.Record{
		{Name: "no age", Sex: passengers.Male, Fare: 50},
		rec("free ticket", passengers.Female, true, 30, 0),
		rec("kept", passengers.Female, true, 30, 20),
	}
	for _, vis := range []Visibility{AllVisible(), {}} {
		sc := Render(recs, vis, DefaultLayout())
		require.Len(t, sc.Markers, 1)
		assert.Equal(t, "kept", sc.Markers[0].Tooltip.Name)
	}
}

func TestRender_ShapeAndColorBySexAndSurvival(t *testing.T) {
	recs := []passengers.Record{
		rec("f1", passengers.Female, true, 20, 10),
		rec("m1", passengers.Male, false, 20, 10),
		rec("f2", passengers.Female, false, 20, 10),
		rec("m2", passengers.Male, true, 20, 10),
	}
	sc := Render(recs, AllVisible(), DefaultLayout())
	require.Len(t, sc.Markers, 4)
	names := []string{}
	for _, m := range sc.Markers {
		names = append(names, m.Tooltip.Name)
		if m.Tooltip.Sex == "male" {
			assert.Equal(t, Square, m.Shape)
		} else {
			assert.Equal(t, Circle, m.Shape)
		}
		if m.Group.Survived() {
			assert.Equal(t, Green, m.Color)
		} else {
			assert.Equal(t, Red, m.Color)
		}
	}
	assert.Equal(t, []string{"m1", "m2", "f1", "f2"}, names, "squares first, dataset order within each sex")
}

func TestRender_OpacityFollowsGroup(t *testing.T) {
	recs := []passengers.Record{
		rec("fs", passengers.Female, true, 20, 10),
		rec("fn", passengers.Female, false, 20, 10),
		rec("ms", passengers.Male, true, 20, 10),
		rec("mn", passengers.Male, false, 20, 10),
	}
	vis := Visibility{false, true, false, true}
	sc := Render(recs, vis, DefaultLayout())
	for _, m := range sc.Markers {
		assert.Equal(t, sc.Opacities[m.Group], m.Opacity, m.Tooltip.Name)
	}
	assert.Equal(t, [4]float64{0.1, 0.8, 0.1, 0.8}, sc.Opacities)
}

func TestRender_Idempotent(t *testing.T) {
	recs := twoPassengers()
	vis := Visibility{true, false, true, true}
	a := Render(recs, vis, DefaultLayout())
	b := Render(recs, vis, DefaultLayout())
	assert.Equal(t, a, b)
}

func TestRender_Tooltip(t *testing.T) {
	sc := Render(twoPassengers(), AllVisible(), DefaultLayout())
	assert.Equal(t, "Mr. A\nmale, 30, $50.00, survived", sc.Markers[0].Tooltip.Text())
	assert.Equal(t, []string{"Mrs. B", "female, 40, $10.00, not survived"}, sc.Markers[1].Tooltip.Lines())
}

func TestRender_AxesAndTitles(t *testing.T) {
	l := DefaultLayout()
	sc := Render(nil, AllVisible(), l)
	assert.Empty(t, sc.Markers)

	assert.Equal(t, Bottom, sc.XAxis.Orient)
	assert.Equal(t, l.Height-l.Margin, sc.XAxis.Offset)
	assert.Equal(t, Segment{X1: 60, Y1: 540, X2: 820, Y2: 540}, sc.XAxis.DomainLine())
	require.Len(t, sc.XAxis.Ticks, 9)
	assert.Equal(t, "40", sc.XAxis.Ticks[4].Label)
	first := sc.XAxis.Ticks[0]
	assert.Equal(t, Segment{X1: first.Pos, Y1: 540, X2: first.Pos, Y2: 0}, sc.XAxis.Gridline(first))
	lbl := sc.XAxis.LabelAnchor(first)
	assert.Equal(t, 550.0, lbl.Y, "10px label padding")

	assert.Equal(t, Left, sc.YAxis.Orient)
	assert.Equal(t, l.Margin, sc.YAxis.Offset)
	require.Len(t, sc.YAxis.Ticks, 22)
	assert.Equal(t, "3", sc.YAxis.Ticks[0].Label)
	g := sc.YAxis.Gridline(sc.YAxis.Ticks[0])
	assert.Equal(t, l.Width-l.LegendWidth-l.Margin, g.X2-g.X1)
	assert.Equal(t, 50.0, sc.YAxis.LabelAnchor(sc.YAxis.Ticks[0]).X)

	assert.Equal(t, "Age (years)", sc.XTitle.Body)
	assert.Equal(t, 410.0, sc.XTitle.X)
	assert.Equal(t, 585.0, sc.XTitle.Y)
	assert.Equal(t, "Ticket fare (dollars)", sc.YTitle.Body)
	assert.Equal(t, -90.0, sc.YTitle.Rotation)
}

func TestRender_Legend(t *testing.T) {
	l := DefaultLayout()
	vis := Visibility{true, false, true, false}
	sc := Render(nil, vis, l)
	lg := sc.Legend
	assert.Equal(t, Rect{X: 820, Y: 210, W: 180, H: 80}, lg.Box)
	assert.Equal(t, 2.0, lg.BorderWidth)

	labels := []string{"Female, survived", "Female, not survived", "Male, survived", "Male, not survived"}
	for i, e := range lg.Entries {
		assert.Equal(t, passengers.Group(i), e.Group)
		assert.Equal(t, vis[i], e.Checked)
		assert.Equal(t, labels[i], e.Label.Body)
		assert.Equal(t, sc.Opacities[i], e.Glyph.Opacity)
		if i < 2 {
			assert.Equal(t, Circle, e.Glyph.Shape)
			assert.Equal(t, 5.0, e.Glyph.Radius)
		} else {
			assert.Equal(t, Square, e.Glyph.Shape)
			assert.Equal(t, 10.0, e.Glyph.Bounds.W)
		}
	}
	assert.Equal(t, 845.0, lg.Entries[1].Glyph.CX)
	assert.Equal(t, 240.0, lg.Entries[1].Glyph.CY)
	assert.Equal(t, Rect{X: 840, Y: 275, W: 10, H: 10}, lg.Entries[3].Glyph.Bounds)

	g, ok := lg.CheckboxAt(815, 275)
	require.True(t, ok)
	assert.Equal(t, passengers.MaleNotSurvived, g)
	_, ok = lg.CheckboxAt(900, 230)
	assert.False(t, ok)
}

func TestHitTest(t *testing.T) {
	sc := Render(twoPassengers(), AllVisible(), DefaultLayout())
	sq, ci := sc.Markers[0], sc.Markers[1]

	i, ok := sc.HitTest(sq.Bounds.X+1, sq.Bounds.Y+1, 0)
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = sc.HitTest(ci.CX+3.5, ci.CY, 0)
	require.True(t, ok, "stroke half-width counts")
	assert.Equal(t, 1, i)

	_, ok = sc.HitTest(ci.CX+6, ci.CY, 0)
	assert.False(t, ok)
	_, ok = sc.HitTest(ci.CX+5.5, ci.CY, 2)
	assert.True(t, ok)

	_, ok = sc.HitTest(0, 0, 2)
	assert.False(t, ok)
}

func TestHitTest_TopmostWins(t *testing.T) {
	recs := []passengers.Record{
		rec("under", passengers.Female, true, 30, 50),
		rec("over", passengers.Female, false, 30, 50),
	}
	sc := Render(recs, AllVisible(), DefaultLayout())
	i, ok := sc.HitTest(sc.Markers[0].CX, sc.Markers[0].CY, 0)
	require.True(t, ok)
	assert.Equal(t, "over", sc.Markers[i].Tooltip.Name)
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#008000", Green.Hex())
	assert.Equal(t, "#ff0000", Red.Hex())
}
