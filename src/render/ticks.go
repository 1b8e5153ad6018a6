package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// rangeTicks generates tick marks for the fixed range [min, max] using
// 1, 2, 2.5, 5, 10 increments scaled by powers of ten. The first and last
// ticks sit exactly on the range endpoints: go-chart replaces an axis range
// with the tick extents when custom ticks are set, so ticks that stop short
// of an endpoint would shrink the configured range.
func rangeTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || max <= min {
		return nil
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	ticks := []chart.Tick{{Value: min, Label: formatTick(min)}}
	eps := bestStep * 1e-9
	for v := math.Ceil((min+eps)/bestStep) * bestStep; v < max-eps; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	ticks = append(ticks, chart.Tick{Value: max, Label: formatTick(max)})
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
