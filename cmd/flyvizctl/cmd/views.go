package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flybench/flyviz/cmd/flyvizctl/internal/output"
	"github.com/flybench/flyviz/src/views"
)

var viewsCmd = &cobra.Command{
	Use:     "views",
	Aliases: []string{"ls"},
	Short:   "List the preset views",
	Long: `List all preset views with their panel counts and default CSV files.

Examples:
  flyvizctl views              # list as a table
  flyvizctl views --json       # output as JSON`,
	RunE: runViews,
}

func init() {
	rootCmd.AddCommand(viewsCmd)

	viewsCmd.Flags().Bool("json", false, "output as JSON")
}

func runViews(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return outputViewsJSON()
	}

	table := output.NewTable([]string{"Name", "Title", "Panels", "Default CSV"})
	for _, v := range views.All() {
		table.AddRow([]string{v.Name, v.Title, fmt.Sprintf("%d", len(v.Panels())), v.DefaultCSV})
	}
	table.Render()
	return nil
}

func outputViewsJSON() error {
	type viewInfo struct {
		Name       string `json:"name"`
		Title      string `json:"title"`
		Panels     int    `json:"panels"`
		DefaultCSV string `json:"default_csv"`
	}
	list := make([]viewInfo, 0, len(views.All()))
	for _, v := range views.All() {
		list = append(list, viewInfo{Name: v.Name, Title: v.Title, Panels: len(v.Panels()), DefaultCSV: v.DefaultCSV})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
