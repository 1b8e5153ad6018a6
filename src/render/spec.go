// Package render turns a dataset and a declarative panel list into a
// multi-panel line-chart figure.
package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/flybench/flyviz/src/dataset"
)

// Defaults match the measurement scripts this tool replaced: large axis
// labels, slightly smaller tick labels, panels sized like the viewer charts.
const (
	DefaultPanelWidth  = 1000
	DefaultPanelHeight = 340
	DefaultLabelSize   = 20.0
	DefaultTickSize    = 15.0
)

// Range is an inclusive axis range. Valid iff Min < Max.
type Range struct {
	Min, Max float64
}

// Valid reports whether the range has positive extent.
func (r Range) Valid() bool { return r.Min < r.Max }

// AxisSide selects the y-axis a series is drawn against.
type AxisSide int

const (
	AxisPrimary AxisSide = iota
	AxisSecondary
)

// LegendLocation places a panel's legend box.
type LegendLocation int

const (
	LegendUpperRight LegendLocation = iota
	LegendUpperLeft
)

// SeriesSpec describes one line within a panel. A zero Color means the series
// takes the next default palette color for its position.
type SeriesSpec struct {
	YColumn string
	Color   drawing.Color
	Axis    AxisSide
}

// PanelSpec describes one subplot: which columns to draw against the shared
// x-column, the fixed axis ranges, labels, grid flags and legend text.
// Zero LabelSize/TickSize fall back to the package defaults.
type PanelSpec struct {
	XColumn string
	Series  []SeriesSpec

	XLabel       string
	YLabel       string
	SecondYLabel string

	XRange       Range
	YRange       Range
	SecondYRange Range

	LabelSize float64
	TickSize  float64

	GridX bool
	GridY bool

	// LegendEntries name the series in draw order. A list shorter than
	// Series leaves the trailing series drawn but unlisted; a longer list
	// is a configuration error.
	LegendLocation LegendLocation
	LegendEntries  []string
}

// DualAxis reports whether any series targets the secondary y-axis.
func (p *PanelSpec) DualAxis() bool {
	for _, s := range p.Series {
		if s.Axis == AxisSecondary {
			return true
		}
	}
	return false
}

// ChartRequest pairs a dataset with the ordered panels to draw from it.
// Zero PanelWidth/PanelHeight take the package defaults.
type ChartRequest struct {
	Dataset *dataset.Dataset
	Panels  []PanelSpec
	Title   string

	PanelWidth  int
	PanelHeight int
}
