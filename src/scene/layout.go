package scene

// Plot domains. Ages and fares outside them still map, by extrapolation.
const (
	AgeMin  = -2.0
	AgeMax  = 82.0
	FareMin = 3.0
	FareMax = 650.0
)

// Layout holds the surface geometry in pixels.
type Layout struct {
	Width        float64
	Height       float64
	Margin       float64
	LegendWidth  float64
	LegendHeight float64
}

// DefaultLayout is a 1000×600 surface with a 180×80 legend.
func DefaultLayout() Layout {
	return Layout{Width: 1000, Height: 600, Margin: 60, LegendWidth: 180, LegendHeight: 80}
}

// PlotRight is the x where the plot region ends and the legend column starts.
func (l Layout) PlotRight() float64 { return l.Width - l.LegendWidth }

// AgeScale maps age onto x.
func (l Layout) AgeScale() LinearScale {
	return LinearScale{D0: AgeMin, D1: AgeMax, R0: l.Margin, R1: l.PlotRight()}
}

// FareScale maps fare onto y, larger fares higher up.
func (l Layout) FareScale() LogScale {
	return LogScale{D0: FareMin, D1: FareMax, R0: l.Height - l.Margin, R1: 0, Base: 10}
}

// LegendOrigin is the top-left corner of the legend box.
func (l Layout) LegendOrigin() (float64, float64) {
	return l.PlotRight(), (l.Height - l.LegendWidth) / 2
}
