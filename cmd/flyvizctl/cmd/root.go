// Package cmd contains all CLI commands for flyvizctl
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flybench/flyviz/cmd/flyvizctl/internal/output"
	"github.com/flybench/flyviz/src/dataset"
)

var (
	verbose bool
	noColor bool
	version = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flyvizctl",
	Short: "Render light-client benchmark CSV files as chart figures",
	Long: `flyvizctl renders benchmark measurement CSV files into multi-panel
line-chart PNG figures without opening the interactive viewer.

Example usage:
  flyvizctl views                                # list the preset views
  flyvizctl render measurements.csv --view measurements --out fig.png
  flyvizctl render --view tradeoff               # uses the view's default CSV
  flyvizctl columns measurements.csv             # summarize the CSV columns`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose || viper.GetBool("verbose") {
			dataset.SetLogLevel("debug")
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Errors are reported as a colored status line before the
// caller exits.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		output.NewPrinter(!noColor).Errorf("%s", err)
	}
	return err
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
}
