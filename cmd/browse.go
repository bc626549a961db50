package cmd

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse assets in an interactive table",
	Long: `Browse every asset in a scrollable table.

Controls:
  - ↑/↓   : Navigate
  - Enter : Show all fields of the selected asset
  - q     : Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	assets, err := assetService.List(getContext())
	if err != nil {
		return handled(out, err)
	}
	if len(assets) == 0 {
		return handled(out, domain.ErrStoreNotFound)
	}

	p := tea.NewProgram(newBrowseModel(assets))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// --- TUI Model ---

type browseModel struct {
	table   table.Model
	assets  []domain.Asset
	details bool
}

func newBrowseModel(assets []domain.Asset) browseModel {
	columns := []table.Column{
		{Title: domain.FieldID, Width: 5},
		{Title: domain.FieldSN, Width: 16},
		{Title: domain.FieldCategory, Width: 14},
		{Title: domain.FieldType, Width: 14},
		{Title: domain.FieldLocation, Width: 14},
		{Title: domain.FieldAssignee, Width: 16},
		{Title: domain.FieldStatus, Width: 12},
	}

	rows := make([]table.Row, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, table.Row{
			strconv.Itoa(a.ID),
			a.SerialNumber,
			a.Category,
			a.Type,
			a.Location,
			a.Assignee,
			a.Status,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 15)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ui.ColorDefault).
		Background(ui.ColorPrimary).
		Bold(true)
	t.SetStyles(s)

	return browseModel{
		table:  t,
		assets: assets,
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			if m.details && key.String() == "esc" {
				m.details = false
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			m.details = !m.details
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selected returns the asset under the cursor
func (m browseModel) selected() (domain.Asset, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.assets) {
		return domain.Asset{}, false
	}
	return m.assets[idx], true
}

func (m browseModel) View() string {
	view := "\n" +
		ui.StyleTitle.Render(" "+ui.IconAsset+" Assets ") + "\n\n" +
		m.table.View() + "\n\n"

	if a, ok := m.selected(); ok && m.details {
		view += lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccent).
			Padding(0, 1).
			Render(strings.TrimRight(assetPreview(a), "\n")) + "\n\n"
	}

	return view + ui.FormatMuted(" [Enter] Details  [Esc] Close  [q] Quit") + "\n"
}
