package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/flybench/flyviz/cmd/flyvizctl/internal/output"
	"github.com/flybench/flyviz/src/dataset"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <csv>",
	Short: "Summarize the columns of a measurement CSV file",
	Long: `Load a measurement CSV file and print per-column statistics, useful for
checking what a file contains before picking a view.

Example:
  flyvizctl columns measurements.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runColumns,
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command, args []string) error {
	d, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"Column", "Rows", "Min", "Max", "Mean"})
	for _, name := range d.Columns() {
		vals, _ := d.Column(name)
		min, max, mean := columnStats(vals)
		if len(vals) == 0 {
			table.AddRow([]string{name, "0", "-", "-", "-"})
			continue
		}
		table.AddRow([]string{
			name,
			fmt.Sprintf("%d", len(vals)),
			fmt.Sprintf("%g", min),
			fmt.Sprintf("%g", max),
			fmt.Sprintf("%.3f", mean),
		})
	}
	table.Render()
	return nil
}

func columnStats(vals []float64) (min, max, mean float64) {
	if len(vals) == 0 {
		return 0, 0, 0
	}
	min = math.MaxFloat64
	max = -math.MaxFloat64
	sum := 0.0
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}
	return min, max, sum / float64(len(vals))
}
