package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/holonet/internal/domain"
)

func ships(names ...string) []domain.Displayable {
	items := make([]domain.Displayable, len(names))
	for i, n := range names {
		items[i] = &domain.Starship{Name: n, Model: n + " model"}
	}
	return items
}

func titlesOf(items []domain.Displayable, matches []Match) []string {
	var out []string
	for _, m := range matches {
		out = append(out, items[m.Index].TitleLabelText())
	}
	return out
}

func TestFilterEmptyQuery(t *testing.T) {
	items := ships("X-wing", "Y-wing")
	for _, mode := range []Mode{ModeFuzzy, ModeLoose, ModeSubstring} {
		assert.Nil(t, Filter("   ", items, mode), "mode %s", mode)
	}
	assert.Nil(t, Filter("wing", nil, ModeFuzzy))
}

func TestFilterFuzzyRanksAndHighlights(t *testing.T) {
	items := ships("Death Star", "Star Destroyer", "Millennium Falcon")

	matches := Filter("star", items, ModeFuzzy)
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"Death Star", "Star Destroyer"}, titlesOf(items, matches))

	// Leading-word match ranks first
	assert.Equal(t, "Star Destroyer", items[matches[0].Index].TitleLabelText())
	assert.Equal(t, []int{0, 1, 2, 3}, matches[0].MatchedIndexes)
}

func TestFilterFuzzyIsCaseInsensitive(t *testing.T) {
	items := ships("Millennium Falcon")
	matches := Filter("FALCON", items, ModeFuzzy)
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Index)
}

func TestFilterLooseIgnoresDiacriticsAndKeepsOrder(t *testing.T) {
	items := ships("Naboo Royal Starship", "Jedi starfighter", "Padmé's cruiser")

	matches := Filter("padme", items, ModeLoose)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Index)

	matches = Filter("star", items, ModeLoose)
	assert.Equal(t, []string{"Naboo Royal Starship", "Jedi starfighter"}, titlesOf(items, matches))
}

func TestFilterSubstring(t *testing.T) {
	items := ships("X-wing", "Y-wing", "A-wing", "Executor")

	matches := Filter("-WING", items, ModeSubstring)
	assert.Equal(t, []string{"X-wing", "Y-wing", "A-wing"}, titlesOf(items, matches))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, matches[0].MatchedIndexes)

	// Subsequence is not a substring
	assert.Empty(t, Filter("xg", items, ModeSubstring))
}

func TestFilterSubstringRunePositions(t *testing.T) {
	items := ships("Padmé's yacht")
	matches := Filter("yacht", items, ModeSubstring)
	require.Len(t, matches, 1)
	assert.Equal(t, []int{8, 9, 10, 11, 12}, matches[0].MatchedIndexes)
}

func TestFilterHighlightsSurviveCaseFolding(t *testing.T) {
	// İ lowercases to a single rune, so later positions must not shift
	items := ships("İstanbul Cruiser")

	matches := Filter("cruiser", items, ModeSubstring)
	require.Len(t, matches, 1)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15}, matches[0].MatchedIndexes)

	matches = Filter("RUISER", items, ModeFuzzy)
	require.Len(t, matches, 1)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15}, matches[0].MatchedIndexes)
}

func TestFoldCaseKeepsRuneCount(t *testing.T) {
	for _, s := range []string{"İstanbul", "ẞTAR", "Padmé", "\xffX"} {
		assert.Equal(t, len([]rune(s)), len([]rune(foldCase(s))), s)
	}
}

func TestFilterNoMatches(t *testing.T) {
	items := ships("X-wing")
	assert.Empty(t, Filter("tie", items, ModeFuzzy))
	assert.Empty(t, Filter("tie", items, ModeLoose))
	assert.Empty(t, Filter("tie", items, ModeSubstring))
}

func TestByteToRuneIndexes(t *testing.T) {
	// "é" is two bytes; the "s" after it is byte 3 but rune 2
	assert.Equal(t, []int{0, 2}, byteToRuneIndexes("aés", []int{0, 3}))
	assert.Nil(t, byteToRuneIndexes("abc", nil))
}
