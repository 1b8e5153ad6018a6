package render

import (
	"errors"
	"fmt"
)

// ErrEmptyPanels is returned when a chart request carries no panels.
var ErrEmptyPanels = errors.New("chart request has no panels")

// ErrNoSeries is returned when a panel has nothing to draw.
var ErrNoSeries = errors.New("panel has no series")

// MissingColumnError reports a panel referencing a column the dataset does not have.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("dataset has no column %q", e.Column)
}

// InvalidRangeError reports an axis range whose minimum is not below its maximum.
type InvalidRangeError struct {
	Axis     string
	Min, Max float64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("%s axis range [%g, %g] is empty", e.Axis, e.Min, e.Max)
}

// LegendMismatchError reports more legend entries than drawn series. Fewer
// entries than series is valid: trailing series are drawn without a legend row.
type LegendMismatchError struct {
	Entries int
	Series  int
}

func (e *LegendMismatchError) Error() string {
	return fmt.Sprintf("%d legend entries for %d series", e.Entries, e.Series)
}
