package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/search"
	"github.com/mmcdole/holonet/internal/tui/styles"
)

// Layout constants for list columns
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)

// ListColumn is a scrollable list of displayable rows with a local filter bar.
// Each row takes two lines: the title and a dimmed subtitle.
type ListColumn struct {
	items []domain.Displayable

	// Selection
	cursor     int
	offset     int
	maxVisible int // rows, not lines

	// Dimensions
	width   int
	height  int
	focused bool

	title    string
	subtitle string // Shown dimmed after the title, e.g. the active search

	loading     bool
	loadingView string

	// Filter state
	filterMode   search.Mode
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	matches      []search.Match // nil when no filter query is applied

	keys ListColumnKeyMap
}

// NewListColumn creates an empty list column
func NewListColumn(title string, mode search.Mode) *ListColumn {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "f "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ListColumn{
		title:       title,
		filterMode:  mode,
		filterInput: ti,
		keys:        DefaultListColumnKeyMap(),
	}
}

// Update handles navigation and filter keys when focused
func (c *ListColumn) Update(msg tea.Msg) tea.Cmd {
	if !c.focused {
		return nil
	}

	// Filter input is focused: keys go to the text input
	if c.IsFilterTyping() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(keyMsg, c.keys.Escape):
				c.clearFilter()
				return nil
			case key.Matches(keyMsg, c.keys.Enter):
				c.filterInput.Blur()
				return nil
			case keyMsg.String() == "backspace" && c.filterInput.Value() == "":
				c.clearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	count := c.ItemCount()
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Down):
		if c.cursor < count-1 {
			c.cursor++
		}
	case key.Matches(keyMsg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(keyMsg, c.keys.Home):
		c.cursor = 0
	case key.Matches(keyMsg, c.keys.End):
		c.cursor = count - 1
	case key.Matches(keyMsg, c.keys.HalfDown):
		c.cursor = min(c.cursor+max(c.maxVisible/2, 1), count-1)
	case key.Matches(keyMsg, c.keys.HalfUp):
		c.cursor = max(c.cursor-max(c.maxVisible/2, 1), 0)
	case key.Matches(keyMsg, c.keys.PageDown):
		c.cursor = min(c.cursor+c.maxVisible, count-1)
	case key.Matches(keyMsg, c.keys.PageUp):
		c.cursor = max(c.cursor-c.maxVisible, 0)
	}
	c.ensureVisible()
	return nil
}

// View renders the column inside its border
func (c *ListColumn) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(c.width-frameW, 0)).
		Height(max(c.height-frameH, 0)).
		Render(c.renderContent())
}

// SetSize sets the outer dimensions of the column
func (c *ListColumn) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *ListColumn) SetFocused(focused bool) { c.focused = focused }

// SetTitle sets the header text and an optional dimmed suffix
func (c *ListColumn) SetTitle(title, subtitle string) {
	c.title = title
	c.subtitle = subtitle
}

// SetLoading toggles the loading line; view is the spinner frame to show
func (c *ListColumn) SetLoading(loading bool, view string) {
	c.loading = loading
	c.loadingView = view
}

// SetItems replaces the rows. The cursor stays on the same row index when
// it is still in range, and an active filter is re-applied.
func (c *ListColumn) SetItems(items []domain.Displayable) {
	c.items = items
	if c.filterQuery != "" {
		c.matches = search.Filter(c.filterQuery, c.items, c.filterMode)
		if c.matches == nil {
			c.matches = []search.Match{}
		}
	}
	c.SetSelectedIndex(c.cursor)
}

// Items returns the unfiltered rows
func (c *ListColumn) Items() []domain.Displayable {
	return c.items
}

// ItemCount returns the number of visible rows
func (c *ListColumn) ItemCount() int {
	if c.matches != nil {
		return len(c.matches)
	}
	return len(c.items)
}

func (c *ListColumn) IsEmpty() bool { return c.ItemCount() == 0 }

// SelectedItem returns the row under the cursor, or nil
func (c *ListColumn) SelectedItem() domain.Displayable {
	if c.cursor < 0 || c.cursor >= c.ItemCount() {
		return nil
	}
	return c.items[c.mapIndex(c.cursor)]
}

// SelectedIndex returns the cursor position among visible rows
func (c *ListColumn) SelectedIndex() int {
	return c.cursor
}

// SelectedSourceIndex returns the index of the selected row in the unfiltered
// items, or -1 when nothing is selected
func (c *ListColumn) SelectedSourceIndex() int {
	if c.cursor < 0 || c.cursor >= c.ItemCount() {
		return -1
	}
	return c.mapIndex(c.cursor)
}

// SetSelectedIndex moves the cursor, clamped to the visible rows
func (c *ListColumn) SetSelectedIndex(idx int) {
	last := c.ItemCount() - 1
	if last < 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	c.cursor = max(0, min(idx, last))
	if c.offset > c.cursor {
		c.offset = c.cursor
	}
	c.ensureVisible()
}

// SetFilterMode changes the matching strategy and re-applies the filter
func (c *ListColumn) SetFilterMode(mode search.Mode) {
	c.filterMode = mode
	if c.filterQuery != "" {
		c.matches = search.Filter(c.filterQuery, c.items, c.filterMode)
		if c.matches == nil {
			c.matches = []search.Match{}
		}
		c.SetSelectedIndex(0)
	}
}

// ToggleFilter activates the filter input
func (c *ListColumn) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
	c.ensureVisible()
}

// IsFiltering returns true if filter mode is active
func (c *ListColumn) IsFiltering() bool {
	return c.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (c *ListColumn) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// FilterQuery returns the applied local filter text
func (c *ListColumn) FilterQuery() string {
	return c.filterQuery
}

// ClearFilter deactivates the filter and shows all items
func (c *ListColumn) ClearFilter() {
	c.clearFilter()
}

// Internal methods

func (c *ListColumn) recalcMaxVisible() {
	// Interior height minus title line and scroll indicators
	lines := c.height - BorderHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		lines--
	}
	c.maxVisible = max(lines/2, 1)
}

func (c *ListColumn) ensureVisible() {
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ListColumn) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.matches = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *ListColumn) applyFilter() {
	query := strings.TrimSpace(c.filterInput.Value())
	if query == c.filterQuery && c.matches != nil {
		return
	}
	c.filterQuery = query

	if query == "" {
		c.matches = nil
	} else {
		c.matches = search.Filter(query, c.items, c.filterMode)
		if c.matches == nil {
			c.matches = []search.Match{}
		}
	}

	// Reset cursor to first match
	c.cursor = 0
	c.offset = 0
}

func (c *ListColumn) mapIndex(i int) int {
	if c.matches != nil && i < len(c.matches) {
		return c.matches[i].Index
	}
	return i
}

func (c *ListColumn) highlight(i int) []int {
	if c.matches != nil && i < len(c.matches) {
		return c.matches[i].MatchedIndexes
	}
	return nil
}

// Rendering

func (c *ListColumn) renderContent() string {
	itemWidth := max(c.width-BorderWidth, 10)

	titleText := styles.Truncate(c.title, itemWidth)
	titleLine := styles.AccentStyle.Render(titleText)
	if c.subtitle != "" {
		room := itemWidth - lipgloss.Width(titleText) - 1
		if room > 3 {
			titleLine += " " + styles.DimStyle.Render(styles.Truncate(c.subtitle, room))
		}
	}

	if c.loading && len(c.items) == 0 {
		loadingLine := styles.DimStyle.Render(strings.TrimSpace(c.loadingView + " Loading..."))
		return titleLine + "\n \n" + loadingLine + "\n "
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render("No results")
		if c.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := titleLine + "\n \n" + emptyMsg + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)

	lines := make([]string, 0, (end-c.offset)*2)
	for i := c.offset; i < end; i++ {
		lines = append(lines, c.renderItem(i, itemWidth)...)
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *ListColumn) renderItem(i, width int) []string {
	item := c.items[c.mapIndex(i)]
	selected := i == c.cursor

	// Available space: width - margins(2)
	room := max(width-2, 5)

	title := styles.Truncate(item.TitleLabelText(), room)
	var hl []int
	for _, p := range c.highlight(i) {
		if p < len([]rune(title)) {
			hl = append(hl, p)
		}
	}

	dim := styles.DimGray
	subtitle := styles.Truncate(item.SubtitleLabelText(), room-2)

	return []string{
		styles.RenderListRow([]styles.RowPart{{Text: title, Highlight: hl}}, selected, width),
		styles.RenderListRow([]styles.RowPart{{Text: "  " + subtitle, Foreground: &dim}}, selected, width),
	}
}

func (c *ListColumn) renderFilterBar() string {
	input := c.filterInput.View()
	if c.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), len(c.items)))
}
