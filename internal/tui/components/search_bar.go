package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/holonet/internal/tui/styles"
)

// SearchAction reports what a key did to the search bar
type SearchAction int

const (
	SearchNone SearchAction = iota
	SearchSubmitted
	SearchCancelled
)

// SearchBar is the one-line remote search input
type SearchBar struct {
	visible bool
	label   string
	input   textinput.Model
	keys    SearchBarKeyMap
	width   int
}

// NewSearchBar creates a hidden search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "name or model..."
	ti.CharLimit = 80
	ti.Prompt = "/ "
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{
		input: ti,
		keys:  DefaultSearchBarKeyMap(),
	}
}

// Show focuses the bar with initial text, e.g. the active query
func (s *SearchBar) Show(label, value string) tea.Cmd {
	s.visible = true
	s.label = label
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Hide dismisses the bar
func (s *SearchBar) Hide() {
	s.visible = false
	s.input.Blur()
}

// IsVisible returns whether the bar is shown
func (s SearchBar) IsVisible() bool {
	return s.visible
}

// Value returns the current input text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetWidth sets the rendered width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = max(width-lipgloss.Width(s.label)-6, 10)
}

// Update handles input events. Enter submits and esc cancels; both hide the bar.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, SearchAction) {
	if !s.visible {
		return s, nil, SearchNone
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, s.keys.Submit):
			s.Hide()
			return s, nil, SearchSubmitted
		case key.Matches(keyMsg, s.keys.Cancel):
			s.Hide()
			return s, nil, SearchCancelled
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, SearchNone
}

// View renders the bar, or nothing when hidden
func (s SearchBar) View() string {
	if !s.visible {
		return ""
	}

	label := styles.BadgeStyle.Render(s.label)
	return lipgloss.NewStyle().
		Width(max(s.width, 0)).
		Render(label + " " + s.input.View())
}
