package listing

import "github.com/mmcdole/holonet/internal/domain"

// Message types delivered back to the program goroutine

// Request identifies one fetch issued by the controller
type Request struct {
	Kind  domain.ResourceKind
	Query string // empty for the unfiltered collection
	seq   uint64
}

// Filtered reports whether the request is a search
func (r Request) Filtered() bool {
	return r.Query != ""
}

// CollectionLoadedMsg signals that a collection fetch succeeded
type CollectionLoadedMsg struct {
	Request Request
	Items   []domain.Displayable
}

// FetchFailedMsg signals that a collection fetch failed
type FetchFailedMsg struct {
	Request Request
	Err     error
}

// Error implements the error interface
func (m FetchFailedMsg) Error() string {
	ctx := "loading " + m.Request.Kind.String()
	if m.Request.Filtered() {
		ctx = "searching " + m.Request.Kind.String() + " for " + `"` + m.Request.Query + `"`
	}
	return ctx + ": " + m.Err.Error()
}

// Unwrap returns the underlying fetch error
func (m FetchFailedMsg) Unwrap() error {
	return m.Err
}
