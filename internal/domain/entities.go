package domain

import (
	"fmt"
	"strings"
)

// ResourceKind identifies a SWAPI resource collection
type ResourceKind int

const (
	ResourceFilms ResourceKind = iota
	ResourceStarships
)

// Path returns the collection path relative to the API root
func (k ResourceKind) Path() string {
	switch k {
	case ResourceFilms:
		return "films"
	case ResourceStarships:
		return "starships"
	default:
		return ""
	}
}

// String returns the display name of the collection
func (k ResourceKind) String() string {
	switch k {
	case ResourceFilms:
		return "Films"
	case ResourceStarships:
		return "Starships"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

// Film represents one entry of the films collection
type Film struct {
	Title        string // Movie title
	EpisodeID    int    // Saga episode number (4 = A New Hope)
	OpeningCrawl string // Opening crawl text, lines separated by \r\n
	Director     string
	Producer     string // Comma-separated producer names
	ReleaseDate  string // ISO date as returned by the API (e.g., "1977-05-25")
	URL          string // Canonical resource URL
}

// TitleLabelText implements Displayable
func (f *Film) TitleLabelText() string {
	return f.Title
}

// SubtitleLabelText implements Displayable
func (f *Film) SubtitleLabelText() string {
	if f.ReleaseDate != "" {
		return f.ReleaseDate
	}
	if f.EpisodeID > 0 {
		return fmt.Sprintf("Episode %s", EpisodeNumeral(f.EpisodeID))
	}
	return ""
}

// DetailFields implements Describer
func (f *Film) DetailFields() []Field {
	fields := []Field{
		{Label: "Episode", Value: EpisodeNumeral(f.EpisodeID)},
		{Label: "Released", Value: f.ReleaseDate},
		{Label: "Director", Value: f.Director},
		{Label: "Producer", Value: f.Producer},
		{Label: "Opening Crawl", Value: normalizeCrawl(f.OpeningCrawl)},
	}
	return compactFields(fields)
}

// Starship represents one entry of the starships collection
type Starship struct {
	Name                 string
	Model                string
	Manufacturer         string
	CostInCredits        string // API returns numbers as strings, "unknown" when absent
	Length               string
	MaxAtmospheringSpeed string
	Crew                 string
	Passengers           string
	CargoCapacity        string
	Consumables          string
	HyperdriveRating     string
	MGLT                 string
	StarshipClass        string
	URL                  string // Canonical resource URL
}

// TitleLabelText implements Displayable
func (s *Starship) TitleLabelText() string {
	return s.Name
}

// SubtitleLabelText implements Displayable
func (s *Starship) SubtitleLabelText() string {
	if s.Model != "" {
		return s.Model
	}
	return s.Manufacturer
}

// DetailFields implements Describer
func (s *Starship) DetailFields() []Field {
	fields := []Field{
		{Label: "Model", Value: s.Model},
		{Label: "Manufacturer", Value: s.Manufacturer},
		{Label: "Class", Value: s.StarshipClass},
		{Label: "Cost", Value: FormatCredits(s.CostInCredits)},
		{Label: "Length", Value: withUnit(s.Length, "m")},
		{Label: "Max Speed", Value: s.MaxAtmospheringSpeed},
		{Label: "Crew", Value: s.Crew},
		{Label: "Passengers", Value: s.Passengers},
		{Label: "Cargo", Value: s.CargoCapacity},
		{Label: "Consumables", Value: s.Consumables},
		{Label: "Hyperdrive", Value: s.HyperdriveRating},
		{Label: "MGLT", Value: s.MGLT},
	}
	return compactFields(fields)
}

// EpisodeNumeral returns the roman numeral for a saga episode (1-9).
// Other values are rendered as plain integers; 0 yields "".
func EpisodeNumeral(n int) string {
	numerals := []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
	switch {
	case n <= 0:
		return ""
	case n < len(numerals):
		return numerals[n]
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatCredits formats a numeric credit amount with thousands separators.
// Non-numeric values ("unknown") are returned unchanged.
func FormatCredits(raw string) string {
	if raw == "" {
		return ""
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return raw
		}
	}

	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(raw[i : i+3])
	}
	b.WriteString(" cr")
	return b.String()
}

func withUnit(value, unit string) string {
	if value == "" || value == "unknown" || value == "n/a" {
		return value
	}
	return value + " " + unit
}

// normalizeCrawl joins the crawl's hard-wrapped lines into paragraphs
func normalizeCrawl(crawl string) string {
	crawl = strings.ReplaceAll(crawl, "\r\n", "\n")
	paragraphs := strings.Split(crawl, "\n\n")
	for i, p := range paragraphs {
		paragraphs[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.TrimSpace(strings.Join(paragraphs, "\n\n"))
}

func compactFields(fields []Field) []Field {
	out := fields[:0]
	for _, f := range fields {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
