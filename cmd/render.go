package cmd

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kamal-hamza/ams-cli/internal/core/domain"
	"github.com/kamal-hamza/ams-cli/pkg/ui"
)

// renderAssets prints assets as an aligned table followed by a total
func renderAssets(w io.Writer, assets []domain.Asset) {
	table := ui.NewTable([]ui.TableColumn{
		{Header: domain.FieldID, Align: "right"},
		{Header: domain.FieldSN},
		{Header: domain.FieldCategory, MaxWidth: 16},
		{Header: domain.FieldType, MaxWidth: 16},
		{Header: domain.FieldLocation, MaxWidth: 16},
		{Header: domain.FieldAssignee, MaxWidth: 20},
		{Header: domain.FieldDescription, MaxWidth: 30},
		{Header: domain.FieldColor, MaxWidth: 10},
		{Header: domain.FieldStatus, Style: ui.StatusStyle},
	})

	for _, a := range assets {
		table.AddRow(a.Row())
	}

	fmt.Fprint(w, table.Render())
	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.FormatMuted(fmt.Sprintf("Total: %d assets", len(assets))))
}

// assetPreview is shown next to the fuzzy finder and in confirmations
func assetPreview(a domain.Asset) string {
	var b strings.Builder
	for _, column := range domain.Columns {
		fmt.Fprintf(&b, "%-12s %s\n", column+":", a.Field(column))
	}
	return b.String()
}

// assetLabel is the one-line form used in pickers
func assetLabel(a domain.Asset) string {
	return strings.Join([]string{strconv.Itoa(a.ID), a.SerialNumber, a.Category, a.Type, a.Location}, "  ")
}

// reportError prints a store error the way the user should read it
func reportError(w io.Writer, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound):
		fmt.Fprintln(w, ui.FormatWarning("No assets found"))
		fmt.Fprintln(w, ui.FormatInfo("Create your first asset with: ams add"))
	case errors.Is(err, domain.ErrNotFound):
		fmt.Fprintln(w, ui.FormatWarning(err.Error()))
	case errors.Is(err, domain.ErrUnknownField):
		fmt.Fprintln(w, ui.FormatError(err.Error()))
		fmt.Fprintln(w, ui.FormatMuted("Fields: "+strings.Join(domain.Columns, ", ")))
	default:
		fmt.Fprintln(w, ui.FormatError(err.Error()))
	}
}

// errReported marks an error that has already been shown to the user
var errReported = errors.New("reported")

// handled prints recoverable errors and marks them as reported so the
// command still exits non-zero; anything else is returned unchanged.
func handled(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsRecoverable(err) {
		reportError(w, err)
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return err
}
