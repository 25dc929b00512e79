package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/tui/styles"
)

// Detail shows every field of one entity in a scrollable pane
type Detail struct {
	item     domain.Displayable
	title    string
	viewport viewport.Model
	width    int
	height   int
	focused  bool
}

// NewDetail creates an empty detail pane
func NewDetail(title string) Detail {
	vp := viewport.New(0, 0)
	return Detail{
		title:    title,
		viewport: vp,
	}
}

// SetItem sets the entity to display and scrolls back to the top
func (d *Detail) SetItem(item domain.Displayable) {
	d.item = item
	d.refresh()
	d.viewport.GotoTop()
}

// Item returns the displayed entity, or nil
func (d Detail) Item() domain.Displayable {
	return d.item
}

// SetSize updates the outer dimensions, including the border
func (d *Detail) SetSize(width, height int) {
	d.width = width
	d.height = height
	// Border (2) and title line with its spacer (2)
	d.viewport.Width = max(width-BorderWidth-1, 10)
	d.viewport.Height = max(height-BorderHeight-2, 1)
	d.refresh()
}

func (d *Detail) SetFocused(focused bool) { d.focused = focused }

// Update scrolls the pane when focused
func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	if !d.focused {
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View renders the pane inside its border
func (d Detail) View() string {
	style := styles.InactiveBorder
	if d.focused {
		style = styles.ActiveBorder
	}

	titleLine := styles.AccentStyle.Render(styles.Truncate(d.title, d.viewport.Width))
	content := titleLine + "\n\n" + d.viewport.View()

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(max(d.width-frameW, 0)).
		Height(max(d.height-frameH, 0)).
		Render(content)
}

func (d *Detail) refresh() {
	if d.item == nil {
		d.viewport.SetContent(styles.DimStyle.Render("Nothing selected"))
		return
	}
	d.viewport.SetContent(RenderFields(d.item, d.viewport.Width))
}

// RenderFields lays out an entity's title, subtitle and labelled fields
// for the given width
func RenderFields(item domain.Displayable, width int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(styles.Truncate(item.TitleLabelText(), width)))
	if sub := item.SubtitleLabelText(); sub != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(sub, width)))
	}

	describer, ok := item.(domain.Describer)
	if !ok {
		return b.String()
	}
	fields := describer.DetailFields()
	if len(fields) == 0 {
		return b.String()
	}
	b.WriteString("\n")

	labelWidth := 0
	for _, f := range fields {
		labelWidth = max(labelWidth, lipgloss.Width(f.Label))
	}
	valueWidth := width - labelWidth - 2
	label := styles.LabelStyle.Width(labelWidth + 2)

	for _, f := range fields {
		b.WriteString("\n")
		// Long or multi-line values go in a block under their label
		if strings.Contains(f.Value, "\n") || lipgloss.Width(f.Value) > valueWidth {
			b.WriteString(styles.LabelStyle.Render(f.Label))
			b.WriteString("\n")
			b.WriteString(styles.SubtitleStyle.Render(wrapParagraphs(f.Value, min(width, 80))))
			b.WriteString("\n")
			continue
		}
		b.WriteString(label.Render(f.Label))
		b.WriteString(f.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// wrapParagraphs word-wraps each line of text separately
func wrapParagraphs(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wordWrap(line, width)
	}
	return strings.Join(lines, "\n")
}

// wordWrap wraps text to the specified width
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := lipgloss.Width(word)

		if lineLen > 0 && lineLen+wordLen+1 > width {
			result.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
