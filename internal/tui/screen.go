package tui

import (
	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/search"
	"github.com/mmcdole/holonet/internal/tui/components"
)

// ScreenMode is the view currently in front
type ScreenMode int

const (
	ModeList ScreenMode = iota
	ModeDetail
)

// Screen owns the list and detail panes. It implements listing.Renderer,
// so the controller draws straight into it.
type Screen struct {
	mode    ScreenMode
	list    *components.ListColumn
	detail  components.Detail
	preview components.Detail
}

// NewScreen creates a screen showing an empty list
func NewScreen(title string, mode search.Mode) *Screen {
	list := components.NewListColumn(title, mode)
	list.SetFocused(true)
	return &Screen{
		list:    list,
		detail:  components.NewDetail("Details"),
		preview: components.NewDetail("Preview"),
	}
}

// RenderList replaces the list rows
func (s *Screen) RenderList(items []domain.Displayable) {
	s.list.SetItems(items)
}

// NavigateToDetail brings the detail pane for item to the front
func (s *Screen) NavigateToDetail(item domain.Displayable) {
	s.detail.SetItem(item)
	s.mode = ModeDetail
	s.list.SetFocused(false)
	s.detail.SetFocused(true)
}

// Back returns from the detail pane to the list
func (s *Screen) Back() {
	s.mode = ModeList
	s.detail.SetFocused(false)
	s.list.SetFocused(true)
}

// Mode returns the view in front
func (s *Screen) Mode() ScreenMode {
	return s.mode
}

// List returns the list pane
func (s *Screen) List() *components.ListColumn {
	return s.list
}

// DetailItem returns the entity in the detail pane, or nil
func (s *Screen) DetailItem() domain.Displayable {
	return s.detail.Item()
}
