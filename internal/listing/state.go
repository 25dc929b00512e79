package listing

import "github.com/mmcdole/holonet/internal/domain"

// State is the pair (all fetched items, currently displayed items).
// It is a value: transitions return a new State and never share backing
// arrays with their inputs.
type State struct {
	all       []domain.Displayable
	displayed []domain.Displayable
	filtered  bool
}

// All returns the most recent unfiltered collection
func (s State) All() []domain.Displayable {
	return clone(s.all)
}

// Displayed returns the rows currently shown
func (s State) Displayed() []domain.Displayable {
	return clone(s.displayed)
}

// Filtered reports whether the displayed rows come from a search
func (s State) Filtered() bool {
	return s.filtered
}

// Len returns the number of displayed rows
func (s State) Len() int {
	return len(s.displayed)
}

// At returns the displayed row at index i, or nil when out of range
func (s State) At(i int) domain.Displayable {
	if i < 0 || i >= len(s.displayed) {
		return nil
	}
	return s.displayed[i]
}

// Loaded replaces the backing collection and shows it unfiltered
func (s State) Loaded(items []domain.Displayable) State {
	all := clone(items)
	return State{all: all, displayed: clone(all)}
}

// WithResults shows a search result, keeping the backing collection
func (s State) WithResults(items []domain.Displayable) State {
	return State{all: clone(s.all), displayed: clone(items), filtered: true}
}

// Restored shows the backing collection again
func (s State) Restored() State {
	return State{all: clone(s.all), displayed: clone(s.all)}
}

// clone copies items; nil and empty both become an empty non-nil slice so
// renderers never have to tell them apart.
func clone(items []domain.Displayable) []domain.Displayable {
	out := make([]domain.Displayable, len(items))
	copy(out, items)
	return out
}
