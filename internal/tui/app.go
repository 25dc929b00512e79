package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/holonet/internal/listing"
	"github.com/mmcdole/holonet/internal/search"
	"github.com/mmcdole/holonet/internal/tui/components"
	"github.com/mmcdole/holonet/internal/tui/styles"
)

// Layout proportions
const (
	ListColumnPercent = 45 // List width when the preview pane is shown
	MinColumnWidth    = 24

	// Vertical layout: single footer line
	ChromeHeight = 1
)

// Options configures the application model
type Options struct {
	FilterMode    search.Mode
	ShowPreview   bool   // Show the selected row's fields beside the list
	InitialSearch string // Submitted once the first load settles
	Logger        *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready bool

	controller *listing.Controller
	screen     *Screen
	searchBar  components.SearchBar
	spinner    spinner.Model
	help       help.Model
	logger     *slog.Logger

	// Dimensions
	Width  int
	Height int

	// UI state
	ShowHelp      bool
	ShowPreview   bool
	StatusMsg     string
	StatusIsErr   bool
	initialSearch string
}

// NewModel creates the application model and attaches its screen to the controller
func NewModel(controller *listing.Controller, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	screen := NewScreen(controller.Kind().String(), opts.FilterMode)
	controller.SetRenderer(screen)

	return Model{
		controller: controller,
		screen:     screen,
		searchBar:  components.NewSearchBar(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		help:          help.New(),
		logger:        logger,
		ShowPreview:   opts.ShowPreview,
		initialSearch: strings.TrimSpace(opts.InitialSearch),
	}
}

// Screen returns the list and detail panes
func (m Model) Screen() *Screen {
	return m.screen
}

// Init starts the initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.controller.Init(),
		m.spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncList()
		return m, cmd

	case CopiedMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.Err)
			m.StatusMsg = "Copy failed: " + msg.Err.Error()
			m.StatusIsErr = true
		} else {
			m.StatusMsg = "Copied " + msg.Text
			m.StatusIsErr = false
		}
		return m, nil
	}

	if m.controller.Update(msg) {
		m.syncList()
		cmd := m.submitInitialSearch()
		return m, cmd
	}

	// Cursor blink and other component messages
	if m.searchBar.IsVisible() {
		var cmd tea.Cmd
		m.searchBar, cmd, _ = m.searchBar.Update(msg)
		return m, cmd
	}
	if m.screen.List().IsFilterTyping() {
		return m, m.screen.List().Update(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Status messages last until the next key
	m.StatusMsg = ""
	m.StatusIsErr = false

	// Any key closes the help overlay
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	if m.searchBar.IsVisible() {
		return m.handleSearchKey(msg)
	}

	list := m.screen.List()
	if list.IsFilterTyping() {
		return m, list.Update(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil
	}

	if m.screen.Mode() == ModeDetail {
		switch {
		case key.Matches(msg, Keys.Back):
			m.screen.Back()
			return m, nil
		case key.Matches(msg, Keys.Copy):
			return m, CopyCmd(linkText(m.screen.DetailItem()))
		}
		var cmd tea.Cmd
		m.screen.detail, cmd = m.screen.detail.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, Keys.Search):
		cmd := m.searchBar.Show("Search "+m.controller.SearchKind().String(), m.controller.Query())
		return m, cmd

	case key.Matches(msg, Keys.Filter):
		list.ToggleFilter()
		return m, nil

	case key.Matches(msg, Keys.Reload):
		list.ClearFilter()
		if m.controller.Query() != "" {
			m.controller.Cancel()
		}
		cmd := m.controller.Reload()
		m.syncList()
		return m, cmd

	case key.Matches(msg, Keys.Enter):
		return m.handleEnter()

	case key.Matches(msg, Keys.Copy):
		if item := list.SelectedItem(); item != nil {
			return m, CopyCmd(linkText(item))
		}
		return m, nil

	case key.Matches(msg, Keys.Back):
		// Local filter first, then the remote search
		if list.IsFiltering() {
			list.ClearFilter()
			return m, nil
		}
		if m.controller.Query() != "" || m.controller.Phase() == listing.PhaseFetchingFiltered {
			m.controller.Cancel()
			m.syncList()
		}
		return m, nil
	}

	return m, list.Update(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action components.SearchAction
	)
	m.searchBar, cmd, action = m.searchBar.Update(msg)

	switch action {
	case components.SearchSubmitted:
		query := strings.TrimSpace(m.searchBar.Value())
		if query == "" {
			// An empty search shows everything again, including over a search in flight
			m.controller.Cancel()
			m.syncList()
			return m, nil
		}
		m.screen.List().ClearFilter()
		cmd = m.controller.Submit(query)
		m.syncList()
		return m, cmd

	case components.SearchCancelled:
		m.controller.Cancel()
		m.syncList()
		return m, nil
	}
	return m, cmd
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	list := m.screen.List()
	idx := list.SelectedSourceIndex()
	if idx < 0 || !m.controller.SelectIndex(idx) {
		return m, nil
	}
	if item, ok := m.controller.EnterDetail(); ok {
		m.logger.Debug("opening detail", "title", item.TitleLabelText())
	}
	return m, nil
}

// submitInitialSearch issues the startup search once nothing else is in flight
func (m *Model) submitInitialSearch() tea.Cmd {
	if m.initialSearch == "" || m.controller.Busy() {
		return nil
	}
	query := m.initialSearch
	m.initialSearch = ""
	cmd := m.controller.Submit(query)
	m.syncList()
	return cmd
}

// syncList mirrors controller state into the list header
func (m *Model) syncList() {
	list := m.screen.List()
	if q := m.controller.Query(); q != "" {
		list.SetTitle(m.controller.SearchKind().String(), fmt.Sprintf("search: %q", q))
	} else {
		list.SetTitle(m.controller.Kind().String(), "")
	}
	list.SetLoading(m.controller.Busy(), m.spinner.View())
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := m.Height - ChromeHeight
	m.help.Width = m.Width
	m.searchBar.SetWidth(m.Width)
	m.screen.detail.SetSize(m.Width, contentHeight)

	listWidth := m.Width
	if m.showPreviewPane() {
		listWidth = max(m.Width*ListColumnPercent/100, MinColumnWidth)
		m.screen.preview.SetSize(m.Width-listWidth, contentHeight)
	}
	m.screen.List().SetSize(listWidth, contentHeight)
}

func (m Model) showPreviewPane() bool {
	return m.ShowPreview && m.Width >= MinColumnWidth*2
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	var content string
	switch {
	case m.screen.Mode() == ModeDetail:
		content = m.screen.detail.View()
	case m.showPreviewPane():
		m.screen.preview.SetItem(m.screen.List().SelectedItem())
		content = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.screen.List().View(),
			m.screen.preview.View(),
		)
	default:
		content = m.screen.List().View()
	}

	footer := m.renderFooter()
	if m.searchBar.IsVisible() {
		footer = m.searchBar.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		footer,
	)
}

// renderFooter renders a single-line footer: status on the left, key hints on the right
func (m Model) renderFooter() string {
	right := m.help.ShortHelpView(Keys.ShortHelp())
	left := m.statusLine(max(m.Width-lipgloss.Width(right)-1, 0))

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) statusLine(width int) string {
	switch phase := m.controller.Phase(); phase {
	case listing.PhaseFetchingAll:
		return m.spinner.View() + " " + styles.DimStyle.Render(styles.Truncate("Loading "+m.controller.Kind().String()+"...", width-2))
	case listing.PhaseFetchingFiltered:
		return m.spinner.View() + " " + styles.DimStyle.Render(styles.Truncate("Searching "+m.controller.SearchKind().String()+"...", width-2))
	}

	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(styles.Truncate(m.StatusMsg, width))
		}
		return styles.AccentStyle.Render(styles.Truncate(m.StatusMsg, width))
	}

	if err := m.controller.Err(); err != nil {
		return styles.ErrorStyle.Render(styles.Truncate(err.Error(), width))
	}

	state := m.controller.State()
	status := fmt.Sprintf("%d %s", state.Len(), strings.ToLower(m.controller.Kind().String()))
	if state.Filtered() {
		status = fmt.Sprintf("%d %s matching %q", state.Len(), strings.ToLower(m.controller.SearchKind().String()), m.controller.Query())
	}
	return styles.DimStyle.Render(styles.Truncate(status, width))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	full := m.help
	full.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Keys"),
		"",
		full.View(Keys),
		"",
		styles.DimStyle.Render("Press any key to return..."),
	)

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}
