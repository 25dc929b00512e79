package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/listing"
	"github.com/mmcdole/holonet/internal/tui/styles"
)

// columnHeaders names the two table columns per collection
var columnHeaders = map[domain.ResourceKind][2]string{
	domain.ResourceFilms:     {"Title", "Released"},
	domain.ResourceStarships: {"Name", "Model"},
}

// RenderTable formats rows as a bordered two-column table
func RenderTable(kind domain.ResourceKind, items []domain.Displayable) string {
	headers, ok := columnHeaders[kind]
	if !ok {
		headers = [2]string{"Title", "Details"}
	}

	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.TitleLabelText(), item.SubtitleLabelText()}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.DimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.LabelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers[0], headers[1]).
		Rows(rows...).
		String()
}

// RunPlain drives the controller without a terminal UI: it loads the
// collection, runs query when it is not blank, and writes the displayed rows to w.
// On a fetch failure nothing is written and the error is returned.
func RunPlain(ctx context.Context, controller *listing.Controller, w io.Writer, query string) error {
	if err := drain(ctx, controller, controller.Init()); err != nil {
		return err
	}
	if err := controller.Err(); err != nil {
		return err
	}

	kind := controller.Kind()
	// Blank queries are ignored by Submit and leave the collection listed
	if cmd := controller.Submit(query); cmd != nil {
		kind = controller.SearchKind()
		if err := drain(ctx, controller, cmd); err != nil {
			return err
		}
		if err := controller.Err(); err != nil {
			return err
		}
	}

	items := controller.State().Displayed()
	if len(items) == 0 {
		_, err := fmt.Fprintf(w, "No %s found.\n", kind)
		return err
	}
	_, err := fmt.Fprintln(w, RenderTable(kind, items))
	return err
}

// drain runs cmd and applies its message on the calling goroutine
func drain(ctx context.Context, controller *listing.Controller, cmd tea.Cmd) error {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		controller.Update(msg)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
