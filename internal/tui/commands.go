package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/holonet/internal/domain"
)

// CopiedMsg reports the outcome of a clipboard write
type CopiedMsg struct {
	Text string
	Err  error
}

// clipboardWrite is swapped out in tests
var clipboardWrite = clipboard.WriteAll

// CopyCmd writes text to the system clipboard
func CopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: clipboardWrite(text)}
	}
}

// linkText returns the API link for item, falling back to its title
func linkText(item domain.Displayable) string {
	var link string
	switch v := item.(type) {
	case *domain.Film:
		link = v.URL
	case *domain.Starship:
		link = v.URL
	}
	if link == "" {
		return item.TitleLabelText()
	}
	return link
}
