package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	CrawlYellow = lipgloss.Color("#FFE81F")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
	Blue        = lipgloss.Color("#3B82F6")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CrawlYellow)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(CrawlYellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	LabelStyle = lipgloss.NewStyle().
			Foreground(CrawlYellow).
			Bold(true)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(SlateDark).
			Background(CrawlYellow).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(CrawlYellow).
			Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(CrawlYellow)
)

// Search and filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(CrawlYellow)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(CrawlYellow).
				Bold(true)

	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(Blue).
				Bold(true)
)

// Match highlight styles for filter results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(CrawlYellow).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(CrawlYellow).
					Background(SlateLight).
					Bold(true)
)

// Helper functions

// Truncate truncates a string to the given width (in runes) with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Highlight  []int // Rune positions rendered with the match highlight style
}

// RenderListRow renders a complete list row with uniform background when selected.
// This function styles each part explicitly to avoid ANSI reset code issues.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var result string
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}

		if len(part.Highlight) > 0 {
			hl := MatchHighlightStyle
			if selected {
				hl = MatchHighlightSelectedStyle
			}
			result += renderHighlighted(part.Text, part.Highlight, style, hl)
		} else {
			result += style.Render(part.Text)
		}
		visibleLen += lipgloss.Width(part.Text)
	}

	// Add padding to fill width (subtract 2 for left/right margin)
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		result += padStyle.Render(spaces(paddingNeeded))
	}

	// Add margins
	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + result + margin
}

// renderHighlighted styles runs of matched and unmatched runes separately
func renderHighlighted(text string, positions []int, base, hl lipgloss.Style) string {
	marked := make(map[int]bool, len(positions))
	for _, p := range positions {
		marked[p] = true
	}

	var out, run string
	runMarked := false
	flush := func() {
		if run == "" {
			return
		}
		if runMarked {
			out += hl.Render(run)
		} else {
			out += base.Render(run)
		}
		run = ""
	}

	i := 0
	for _, r := range text {
		if marked[i] != runMarked {
			flush()
			runMarked = marked[i]
		}
		run += string(r)
		i++
	}
	flush()
	return out
}
