package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/flybench/flyviz/src/dataset"
)

// Render draws every panel of the request in order and returns the finished
// figure. All panels are validated before anything is drawn, so a failed
// request never yields a partial figure. The dataset is not modified.
func Render(req ChartRequest) (*Figure, error) {
	if len(req.Panels) == 0 {
		return nil, ErrEmptyPanels
	}
	if req.Dataset == nil {
		return nil, errors.New("chart request has no dataset")
	}
	for i := range req.Panels {
		if err := validatePanel(req.Dataset, &req.Panels[i]); err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
	}
	width, height := req.PanelWidth, req.PanelHeight
	if width <= 0 {
		width = DefaultPanelWidth
	}
	if height <= 0 {
		height = DefaultPanelHeight
	}
	fig := &Figure{Title: req.Title}
	for i := range req.Panels {
		p, err := renderPanel(req.Dataset, req.Panels[i], width, height)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		fig.Panels = append(fig.Panels, p)
	}
	return fig, nil
}

func validatePanel(d *dataset.Dataset, spec *PanelSpec) error {
	if len(spec.Series) == 0 {
		return ErrNoSeries
	}
	if !d.Has(spec.XColumn) {
		return &MissingColumnError{Column: spec.XColumn}
	}
	for _, s := range spec.Series {
		if !d.Has(s.YColumn) {
			return &MissingColumnError{Column: s.YColumn}
		}
	}
	if !spec.XRange.Valid() {
		return &InvalidRangeError{Axis: "x", Min: spec.XRange.Min, Max: spec.XRange.Max}
	}
	if !spec.YRange.Valid() {
		return &InvalidRangeError{Axis: "y", Min: spec.YRange.Min, Max: spec.YRange.Max}
	}
	if spec.DualAxis() && !spec.SecondYRange.Valid() {
		return &InvalidRangeError{Axis: "secondary y", Min: spec.SecondYRange.Min, Max: spec.SecondYRange.Max}
	}
	if len(spec.LegendEntries) > len(spec.Series) {
		return &LegendMismatchError{Entries: len(spec.LegendEntries), Series: len(spec.Series)}
	}
	return nil
}

func renderPanel(d *dataset.Dataset, spec PanelSpec, width, height int) (Panel, error) {
	xs, _ := d.Column(spec.XColumn)
	labelSize := spec.LabelSize
	if labelSize <= 0 {
		labelSize = DefaultLabelSize
	}
	tickSize := spec.TickSize
	if tickSize <= 0 {
		tickSize = DefaultTickSize
	}

	series := make([]chart.Series, 0, len(spec.Series))
	legend := make([]string, 0, len(spec.LegendEntries))
	for i, s := range spec.Series {
		ys, _ := d.Column(s.YColumn)
		var name string
		if i < len(spec.LegendEntries) {
			name = spec.LegendEntries[i]
			legend = append(legend, name)
		}
		col := s.Color
		if col.IsZero() {
			col = chart.GetDefaultColor(i)
		}
		sx, sy := xs, ys
		if len(sx) == 1 {
			// go-chart rejects single-point series; pad with a flat neighbor.
			sx = []float64{sx[0], sx[0] + 1}
			sy = []float64{sy[0], sy[0]}
		}
		cs := chart.ContinuousSeries{
			Name:    name,
			XValues: sx,
			YValues: sy,
			Style:   chart.Style{StrokeWidth: 2, StrokeColor: col},
		}
		if s.Axis == AxisSecondary {
			cs.YAxis = chart.YAxisSecondary
		}
		series = append(series, cs)
	}

	gridStyle := chart.Style{StrokeColor: chart.ColorAlternateGray, StrokeWidth: 1.0}
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis: chart.XAxis{
			Name:      spec.XLabel,
			NameStyle: chart.Style{FontSize: labelSize},
			Style:     chart.Style{FontSize: tickSize},
			Range:     &chart.ContinuousRange{Min: spec.XRange.Min, Max: spec.XRange.Max},
			Ticks:     rangeTicks(spec.XRange.Min, spec.XRange.Max, 6),
		},
		YAxis: chart.YAxis{
			Name:      spec.YLabel,
			NameStyle: chart.Style{FontSize: labelSize},
			Style:     chart.Style{FontSize: tickSize},
			Range:     &chart.ContinuousRange{Min: spec.YRange.Min, Max: spec.YRange.Max},
			Ticks:     rangeTicks(spec.YRange.Min, spec.YRange.Max, 6),
		},
		Series: series,
	}
	if spec.GridX {
		ch.XAxis.GridMajorStyle = gridStyle
	}
	if spec.GridY {
		ch.YAxis.GridMajorStyle = gridStyle
	}
	if spec.DualAxis() {
		// No custom ticks here: go-chart derives secondary tick overrides
		// from the primary axis ticks, which would break the secondary
		// range mapping. With ticks unset the explicit range is honored.
		ch.YAxisSecondary = chart.YAxis{
			Name:      spec.SecondYLabel,
			NameStyle: chart.Style{FontSize: labelSize},
			Style:     chart.Style{FontSize: tickSize},
			Range:     &chart.ContinuousRange{Min: spec.SecondYRange.Min, Max: spec.SecondYRange.Max},
		}
	}
	switch spec.LegendLocation {
	case LegendUpperLeft:
		ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}
	default:
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return Panel{}, fmt.Errorf("render: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return Panel{}, fmt.Errorf("decode rendered chart: %w", err)
	}
	return Panel{Spec: spec, Image: img, Legend: legend}, nil
}
