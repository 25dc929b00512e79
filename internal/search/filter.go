package search

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/holonet/internal/domain"
)

// Mode selects the matching strategy
type Mode string

const (
	// ModeFuzzy ranks subsequence matches, best first
	ModeFuzzy Mode = "fuzzy"
	// ModeLoose matches subsequences ignoring case and diacritics, keeping list order
	ModeLoose Mode = "loose"
	// ModeSubstring matches case-insensitive substrings, keeping list order
	ModeSubstring Mode = "substring"
)

// Match represents a row that matched the filter query
type Match struct {
	Index          int   // Index into the filtered slice
	MatchedIndexes []int // Rune positions in the title that matched (for highlighting)
	Score          int   // Higher is better; 0 for unranked modes
}

// titleSource implements sahilm/fuzzy.Source over case-folded titles
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int { return len(s) }

// Filter matches query against item titles. An empty query matches nothing
// and returns nil; callers treat nil as "no filter".
func Filter(query string, items []domain.Displayable, mode Mode) []Match {
	query = foldCase(strings.TrimSpace(query))
	if query == "" || len(items) == 0 {
		return nil
	}

	titles := make(titleSource, len(items))
	for i, item := range items {
		titles[i] = foldCase(item.TitleLabelText())
	}

	switch mode {
	case ModeLoose:
		return looseMatches(query, titles)
	case ModeSubstring:
		return substringMatches(query, titles)
	default:
		return fuzzyMatches(query, titles)
	}
}

// foldCase lowercases rune by rune so rune positions in the result line up
// with the original title
func foldCase(s string) string {
	return strings.Map(unicode.ToLower, s)
}

func fuzzyMatches(query string, titles titleSource) []Match {
	found := sfuzzy.FindFrom(query, titles)
	matches := make([]Match, len(found))
	for i, f := range found {
		matches[i] = Match{
			Index:          f.Index,
			MatchedIndexes: byteToRuneIndexes(f.Str, f.MatchedIndexes),
			Score:          f.Score,
		}
	}
	return matches
}

func looseMatches(query string, titles titleSource) []Match {
	matches := make([]Match, 0)
	for i, title := range titles {
		if fuzzy.MatchNormalizedFold(query, title) {
			matches = append(matches, Match{Index: i})
		}
	}
	return matches
}

func substringMatches(query string, titles titleSource) []Match {
	queryLen := len([]rune(query))
	matches := make([]Match, 0)
	for i, title := range titles {
		idx := strings.Index(title, query)
		if idx < 0 {
			continue
		}
		// Convert byte index to rune index
		start := len([]rune(title[:idx]))
		matches = append(matches, Match{
			Index:          i,
			MatchedIndexes: indexRange(start, start+queryLen),
		})
	}
	return matches
}

// byteToRuneIndexes converts sahilm/fuzzy byte offsets into rune positions
func byteToRuneIndexes(s string, byteIdx []int) []int {
	if len(byteIdx) == 0 {
		return nil
	}
	want := make(map[int]bool, len(byteIdx))
	for _, b := range byteIdx {
		want[b] = true
	}
	out := make([]int, 0, len(byteIdx))
	r := 0
	for b := range s {
		if want[b] {
			out = append(out, r)
		}
		r++
	}
	return out
}

func indexRange(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}
