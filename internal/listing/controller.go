package listing

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/holonet/internal/domain"
)

// Phase is the controller's fetch state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetchingAll
	PhaseFetchingFiltered
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFetchingAll:
		return "fetching"
	case PhaseFetchingFiltered:
		return "searching"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Renderer is the rendering surface driven by the controller
type Renderer interface {
	// RenderList redraws the list with the given rows
	RenderList(items []domain.Displayable)

	// NavigateToDetail shows the detail view for item
	NavigateToDetail(item domain.Displayable)
}

type nopRenderer struct{}

func (nopRenderer) RenderList([]domain.Displayable) {}
func (nopRenderer) NavigateToDetail(domain.Displayable) {}

// Options configures a Controller
type Options struct {
	Kind        domain.ResourceKind // Collection shown when no search is active
	SearchKind  domain.ResourceKind // Collection queried on submit
	SearchParam string              // Query parameter carrying the search text (default "search")
	Timeout     time.Duration       // Per-fetch deadline; 0 leaves it to the transport
	Logger      *slog.Logger
}

// Controller fetches a collection, keeps the List State, and serves remote
// searches over it.
//
// All methods must be called from the program goroutine. Fetches run inside
// the returned tea.Cmd; their result message is applied by Update. Each
// command yields exactly one CollectionLoadedMsg or FetchFailedMsg.
type Controller struct {
	repo     domain.CollectionRepository
	renderer Renderer
	opts     Options
	logger   *slog.Logger

	state State

	started       bool
	seq           uint64 // last issued request sequence
	loadSeq       uint64 // sequence of the live unfiltered fetch
	searchSeq     uint64 // sequence of the live search; 0 after cancel
	pendingAll    bool
	pendingSearch bool

	query     string          // search text behind the displayed rows
	failure   *FetchFailedMsg // most recent failure, cleared on success
	selection domain.Displayable
}

// NewController creates a controller. A nil renderer discards render calls.
func NewController(repo domain.CollectionRepository, renderer Renderer, opts Options) *Controller {
	if renderer == nil {
		renderer = nopRenderer{}
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "search"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		repo:     repo,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

// SetRenderer replaces the rendering surface
func (c *Controller) SetRenderer(r Renderer) {
	if r == nil {
		r = nopRenderer{}
	}
	c.renderer = r
}

// Init starts the initial load. It returns nil after the first call.
func (c *Controller) Init() tea.Cmd {
	if c.started {
		return nil
	}
	return c.Reload()
}

// Reload fetches the unfiltered collection again
func (c *Controller) Reload() tea.Cmd {
	c.started = true
	c.seq++
	c.loadSeq = c.seq
	c.pendingAll = true

	req := Request{Kind: c.opts.Kind, seq: c.seq}
	c.logger.Debug("fetching collection", "kind", req.Kind.String())
	return c.fetchCmd(req)
}

// Submit starts a remote search for text. Blank text is ignored.
// An earlier search still in flight is superseded: its result is dropped.
func (c *Controller) Submit(text string) tea.Cmd {
	query := strings.TrimSpace(text)
	if query == "" {
		return nil
	}

	c.started = true
	c.seq++
	c.searchSeq = c.seq
	c.pendingSearch = true

	req := Request{Kind: c.opts.SearchKind, Query: query, seq: c.seq}
	c.logger.Debug("searching collection", "kind", req.Kind.String(), "query", query)
	return c.fetchCmd(req)
}

// Cancel drops the active search and shows the unfiltered collection again.
// No network call is made.
func (c *Controller) Cancel() {
	c.searchSeq = 0
	c.pendingSearch = false
	c.query = ""
	if c.failure != nil && c.failure.Request.Filtered() {
		c.failure = nil
	}
	c.state = c.state.Restored()
	c.render()
}

// Update applies fetch results. It reports whether msg belonged to the controller.
func (c *Controller) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case CollectionLoadedMsg:
		if !c.isLive(msg.Request) {
			c.logger.Debug("dropping superseded response", "kind", msg.Request.Kind.String(), "query", msg.Request.Query)
			return true
		}
		if msg.Request.Filtered() {
			c.pendingSearch = false
			c.query = msg.Request.Query
			c.state = c.state.WithResults(msg.Items)
		} else {
			c.pendingAll = false
			c.query = ""
			c.state = c.state.Loaded(msg.Items)
		}
		c.failure = nil
		c.logger.Info("collection loaded",
			"kind", msg.Request.Kind.String(),
			"query", msg.Request.Query,
			"count", len(msg.Items))
		c.render()
		return true

	case FetchFailedMsg:
		if !c.isLive(msg.Request) {
			c.logger.Debug("dropping superseded failure", "kind", msg.Request.Kind.String(), "error", msg.Err)
			return true
		}
		if msg.Request.Filtered() {
			c.pendingSearch = false
		} else {
			c.pendingAll = false
		}
		c.failure = &msg
		c.logger.Warn("collection fetch failed",
			"kind", msg.Request.Kind.String(),
			"query", msg.Request.Query,
			"error", msg.Err)
		c.render()
		return true
	}
	return false
}

// Select records item as the pending selection
func (c *Controller) Select(item domain.Displayable) {
	c.selection = item
}

// SelectIndex records the displayed row at i as the pending selection
func (c *Controller) SelectIndex(i int) bool {
	item := c.state.At(i)
	if item == nil {
		return false
	}
	c.selection = item
	return true
}

// EnterDetail consumes the pending selection and navigates to it.
// It returns false when nothing is selected.
func (c *Controller) EnterDetail() (domain.Displayable, bool) {
	item := c.selection
	if item == nil {
		return nil, false
	}
	c.selection = nil
	c.renderer.NavigateToDetail(item)
	return item, true
}

// Kind returns the collection shown when no search is active
func (c *Controller) Kind() domain.ResourceKind {
	return c.opts.Kind
}

// SearchKind returns the collection queried by Submit
func (c *Controller) SearchKind() domain.ResourceKind {
	return c.opts.SearchKind
}

// State returns the current List State
func (c *Controller) State() State {
	return c.state
}

// Phase returns the current fetch phase
func (c *Controller) Phase() Phase {
	switch {
	case !c.started:
		return PhaseIdle
	case c.pendingSearch:
		return PhaseFetchingFiltered
	case c.pendingAll:
		return PhaseFetchingAll
	case c.failure != nil:
		return PhaseFailed
	default:
		return PhaseReady
	}
}

// Busy reports whether any fetch is in flight
func (c *Controller) Busy() bool {
	return c.pendingAll || c.pendingSearch
}

// Query returns the search text behind the displayed rows ("" when unfiltered)
func (c *Controller) Query() string {
	return c.query
}

// Err returns the most recent fetch failure, or nil
func (c *Controller) Err() error {
	if c.failure == nil {
		return nil
	}
	return *c.failure
}

// Selection returns the pending selection without consuming it
func (c *Controller) Selection() domain.Displayable {
	return c.selection
}

func (c *Controller) isLive(req Request) bool {
	if req.Filtered() {
		return req.seq != 0 && req.seq == c.searchSeq
	}
	return req.seq == c.loadSeq
}

func (c *Controller) render() {
	c.renderer.RenderList(c.state.Displayed())
}

// fetchCmd runs off the program goroutine and must only use values captured here
func (c *Controller) fetchCmd(req Request) tea.Cmd {
	repo := c.repo
	timeout := c.opts.Timeout
	param := c.opts.SearchParam

	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		var query url.Values
		if req.Filtered() {
			query = url.Values{param: {req.Query}}
		}

		items, err := repo.FetchCollection(ctx, req.Kind, query)
		if err != nil {
			return FetchFailedMsg{Request: req, Err: err}
		}
		return CollectionLoadedMsg{Request: req, Items: items}
	}
}
