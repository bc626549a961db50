package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/adapters/report"
	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var (
	reportOutput string
	reportOpen   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize the inventory and write an HTML chart report",
	Long: `Count assets by category, status, location and assignee.

The counts are printed and written as an interactive HTML page
(reports/inventory.html in the workspace unless --output is given).

Examples:
  ams report
  ams report --open
  ams report -o /tmp/stock.html`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Where to write the HTML report")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "Open the report in the default browser")
}

func runReport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	summary, err := assetService.Summary(getContext())
	if err != nil {
		return handled(out, err)
	}

	printSummary(out, summary)

	path := reportOutput
	if path == "" {
		path = appWorkspace.GetReportPath("inventory.html")
	}
	if err := writeReport(path, appConfig.ReportTitle, summary); err != nil {
		fmt.Fprintln(out, ui.FormatError("Failed to write report"))
		return err
	}

	fmt.Fprintln(out, ui.FormatSuccess("Report written to "+path))

	if reportOpen {
		if err := OpenFile(path); err != nil {
			fmt.Fprintln(out, ui.FormatWarning(err.Error()))
		}
	}
	return nil
}

func writeReport(path, title string, summary domain.Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	if err := report.Render(f, title, summary); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printSummary prints one count table per grouping
func printSummary(w io.Writer, s domain.Summary) {
	fmt.Fprintln(w, ui.FormatTitle(fmt.Sprintf("%s (%d assets)", appConfig.ReportTitle, s.Total)))

	groups := []struct {
		title  string
		counts map[string]int
	}{
		{"By category", s.ByCategory},
		{"By status", s.ByStatus},
		{"By location", s.ByLocation},
		{"By assignee", s.ByAssignee},
	}

	for _, g := range groups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, ui.StyleHeader.Render(g.title))

		table := ui.NewTable([]ui.TableColumn{
			{Header: "Value", MaxWidth: 30},
			{Header: "Count", Align: "right"},
		})
		for _, c := range domain.Sorted(g.counts) {
			table.AddRow([]string{c.Label, strconv.Itoa(c.Value)})
		}
		fmt.Fprint(w, table.Render())
	}
	fmt.Fprintln(w)
}
