package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("X-wing", 0))
	assert.Equal(t, "X-wing", Truncate("X-wing", 6))
	assert.Equal(t, "Mil...", Truncate("Millennium Falcon", 6))
	assert.Equal(t, "Mi", Truncate("Millennium Falcon", 2))
	assert.Equal(t, "Pad...", Truncate("Padmé's yacht", 6))
}

func TestRenderListRowFillsWidth(t *testing.T) {
	row := RenderListRow([]RowPart{{Text: "A New Hope"}}, false, 30)
	assert.Equal(t, 30, lipgloss.Width(row))

	selected := RenderListRow([]RowPart{{Text: "A New Hope", Highlight: []int{0, 2}}}, true, 30)
	assert.Equal(t, 30, lipgloss.Width(selected))
}

func TestRenderHighlightedKeepsText(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := renderHighlighted("X-wing", []int{2, 3}, plain, plain)
	assert.Equal(t, "X-wing", out)
}
