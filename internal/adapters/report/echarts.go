package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
)

// Render writes a standalone HTML page charting the summary
func Render(w io.Writer, title string, s domain.Summary) error {
	page := components.NewPage()
	page.PageTitle = title

	page.AddCharts(
		barChart(fmt.Sprintf("%s: assets by category", title), fmt.Sprintf("%d assets", s.Total), s.ByCategory),
		pieChart("Status", s.ByStatus),
		barChart("Assets by location", "", s.ByLocation),
		barChart("Assets by assignee", "", s.ByAssignee),
	)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

func barChart(title, subtitle string, counts map[string]int) *charts.Bar {
	sorted := domain.Sorted(counts)

	labels := make([]string, len(sorted))
	data := make([]opts.BarData, len(sorted))
	for i, c := range sorted {
		labels[i] = c.Label
		data[i] = opts.BarData{Value: c.Value}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
	)
	bar.SetXAxis(labels).AddSeries("Assets", data)
	return bar
}

func pieChart(title string, counts map[string]int) *charts.Pie {
	sorted := domain.Sorted(counts)

	data := make([]opts.PieData, len(sorted))
	for i, c := range sorted {
		data[i] = opts.PieData{Name: c.Label, Value: c.Value}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	pie.AddSeries(title, data)
	return pie
}
