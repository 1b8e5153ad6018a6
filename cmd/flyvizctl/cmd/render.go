package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flybench/flyviz/cmd/flyvizctl/internal/output"
	"github.com/flybench/flyviz/src/dataset"
	"github.com/flybench/flyviz/src/render"
	"github.com/flybench/flyviz/src/views"
)

var renderCmd = &cobra.Command{
	Use:   "render [csv]",
	Short: "Render a preset view to a PNG figure",
	Long: `Render one of the preset views from a measurement CSV file into a
multi-panel PNG figure.

The CSV path defaults to the view's conventional file name, the output
path to <view>.png.

Examples:
  flyvizctl render measurements.csv --view measurements
  flyvizctl render --view tradeoff --out tradeoff.png --width 1200`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().String("view", "", "view to render (see 'flyvizctl views')")
	renderCmd.Flags().String("out", "", "output PNG path (default <view>.png)")
	renderCmd.Flags().Int("width", render.DefaultPanelWidth, "panel width in pixels")
	renderCmd.Flags().Int("height", render.DefaultPanelHeight, "panel height in pixels")
	renderCmd.Flags().Bool("no-title", false, "omit the figure title band")
	_ = renderCmd.MarkFlagRequired("view")
}

func runRender(cmd *cobra.Command, args []string) error {
	printer := output.NewPrinter(!noColor)

	name, _ := cmd.Flags().GetString("view")
	view, ok := views.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown view %q (available: %s)", name, strings.Join(views.Names(), ", "))
	}

	csvPath := view.DefaultCSV
	if len(args) == 1 {
		csvPath = args[0]
	}
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		outPath = view.Name + ".png"
	}
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	noTitle, _ := cmd.Flags().GetBool("no-title")

	d, err := dataset.Load(csvPath)
	if err != nil {
		return err
	}
	title := view.Title
	if noTitle {
		title = ""
	}
	fig, err := render.Render(render.ChartRequest{
		Dataset:     d,
		Panels:      view.Panels(),
		Title:       title,
		PanelWidth:  width,
		PanelHeight: height,
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", view.Name, err)
	}
	if err := fig.SavePNG(outPath); err != nil {
		return err
	}
	printer.Successf("rendered %s (%d panels) to %s", view.Name, len(fig.Panels), outPath)
	return nil
}
