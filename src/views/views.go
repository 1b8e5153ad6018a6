// Package views holds the preset chart configurations for the light-client
// benchmark CSV files. Each view is the declarative form of one of the old
// visualization scripts: same columns, axis limits, colors and legend text.
package views

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/flybench/flyviz/src/render"
)

// View names a preset panel arrangement and the CSV file it was written for.
type View struct {
	Name       string
	Title      string
	DefaultCSV string
	Panels     func() []render.PanelSpec
}

var registry = []View{
	{
		Name:       "continuation",
		Title:      "Continuation validation",
		DefaultCSV: "measurementsContinuation.csv",
		Panels:     continuationPanels,
	},
	{
		Name:       "measurements",
		Title:      "Complete validation",
		DefaultCSV: "measurements.csv",
		Panels:     measurementPanels,
	},
	{
		Name:       "proofsize",
		Title:      "Proof size",
		DefaultCSV: "proof_size.csv",
		Panels:     proofSizePanels,
	},
	{
		Name:       "tradeoff",
		Title:      "Time/size tradeoff",
		DefaultCSV: "measurementsTradeoff.csv",
		Panels:     tradeoffPanels,
	},
	{
		Name:       "tradeoff-panels",
		Title:      "Time/size tradeoff (stacked)",
		DefaultCSV: "measurementsTradeoff.csv",
		Panels:     tradeoffStackedPanels,
	},
}

// All returns the registered views in their canonical order.
func All() []View {
	out := make([]View, len(registry))
	copy(out, registry)
	return out
}

// Lookup finds a view by name.
func Lookup(name string) (View, bool) {
	for _, v := range registry {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// Names returns the registered view names in order.
func Names() []string {
	out := make([]string, len(registry))
	for i, v := range registry {
		out[i] = v.Name
	}
	return out
}

func continuationPanels() []render.PanelSpec {
	x := render.Range{Min: 6350000, Max: 7000000}
	return []render.PanelSpec{
		{
			XColumn:        "block_number",
			Series:         []render.SeriesSpec{{YColumn: "complete_validation_time", Color: chart.ColorRed}},
			XLabel:         "Block number",
			YLabel:         "Seconds",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 600},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperRight,
			LegendEntries:  []string{"Complete Validation Time"},
		},
		{
			XColumn:        "block_number",
			Series:         []render.SeriesSpec{{YColumn: "complete_proof_size"}},
			XLabel:         "Block number",
			YLabel:         "Kilobyte",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 900},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperRight,
			LegendEntries:  []string{"Proof Size"},
		},
		{
			XColumn: "block_number",
			Series: []render.SeriesSpec{
				{YColumn: "required_blocks"},
				{YColumn: "epoch_numbers"},
			},
			XLabel:         "Block number",
			YLabel:         "Number",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 1100},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperRight,
			LegendEntries:  []string{"Required blocks", "Epoch numbers"},
		},
	}
}

func measurementPanels() []render.PanelSpec {
	x := render.Range{Min: 0, Max: 7000000}
	return []render.PanelSpec{
		{
			XColumn: "block_number",
			Series: []render.SeriesSpec{
				{YColumn: "complete_validation_time", Color: chart.ColorRed},
				{YColumn: "proof_validation_time", Color: chart.ColorGreen},
			},
			XLabel: "Block number",
			YLabel: "Seconds",
			XRange: x,
			YRange: render.Range{Min: 0, Max: 600},
			GridX:  true,
			GridY:  true,
			// The proof validation series measures as zero throughout; it is
			// kept on the chart with its annotation rather than dropped.
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Complete Validation Time", "Proof Validation Time (always 0)"},
		},
		{
			XColumn:        "block_number",
			Series:         []render.SeriesSpec{{YColumn: "complete_proof_size"}},
			XLabel:         "Block number",
			YLabel:         "Kilobyte",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 800},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Proof Size"},
		},
		{
			XColumn:        "block_number",
			Series:         []render.SeriesSpec{{YColumn: "epoch_numbers"}},
			XLabel:         "Block number",
			YLabel:         "Epoch numbers",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 100},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Required epoch numbers"},
		},
	}
}

func proofSizePanels() []render.PanelSpec {
	x := render.Range{Min: 0, Max: 7000000}
	return []render.PanelSpec{
		{
			XColumn: "block_number",
			Series: []render.SeriesSpec{
				{YColumn: "blocks_queried", Color: chart.ColorRed},
				{YColumn: "L", Color: chart.ColorGreen},
			},
			XLabel:         "Block number",
			YLabel:         "Blocks queried",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 1100},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Queries", "L"},
		},
		{
			XColumn:        "block_number",
			Series:         []render.SeriesSpec{{YColumn: "proof_size"}},
			XLabel:         "Block number",
			YLabel:         "Kilobyte",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 800},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Proof Size"},
		},
	}
}

func tradeoffPanels() []render.PanelSpec {
	return []render.PanelSpec{
		{
			XColumn: "l",
			Series: []render.SeriesSpec{
				{YColumn: "complete_validation_time", Color: chart.ColorRed},
				{YColumn: "complete_proof_size", Axis: render.AxisSecondary},
			},
			XLabel:         "L",
			YLabel:         "Seconds",
			SecondYLabel:   "Kilobyte",
			XRange:         render.Range{Min: 100, Max: 1000},
			YRange:         render.Range{Min: 0, Max: 800},
			SecondYRange:   render.Range{Min: 0, Max: 1200},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Complete Validation Time", "Proof Size"},
		},
	}
}

func tradeoffStackedPanels() []render.PanelSpec {
	x := render.Range{Min: 100, Max: 1000}
	return []render.PanelSpec{
		{
			XColumn:        "l",
			Series:         []render.SeriesSpec{{YColumn: "complete_validation_time", Color: chart.ColorRed}},
			XLabel:         "L",
			YLabel:         "Seconds",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 700},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Complete Validation Time"},
		},
		{
			XColumn:        "l",
			Series:         []render.SeriesSpec{{YColumn: "complete_proof_size"}},
			XLabel:         "L",
			YLabel:         "Kilobyte",
			XRange:         x,
			YRange:         render.Range{Min: 0, Max: 1300},
			GridX:          true,
			GridY:          true,
			LegendLocation: render.LegendUpperLeft,
			LegendEntries:  []string{"Proof Size"},
		},
	}
}
