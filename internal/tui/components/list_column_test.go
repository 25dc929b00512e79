package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/holonet/internal/domain"
	"github.com/mmcdole/holonet/internal/search"
)

var (
	newHope = &domain.Film{Title: "A New Hope", EpisodeID: 4, ReleaseDate: "1977-05-25", Director: "George Lucas"}
	empire  = &domain.Film{Title: "The Empire Strikes Back", EpisodeID: 5, ReleaseDate: "1980-05-17"}
	jedi    = &domain.Film{Title: "Return of the Jedi", EpisodeID: 6, ReleaseDate: "1983-05-25"}
	falcon  = &domain.Starship{Name: "Millennium Falcon", Model: "YT-1300 light freighter", CostInCredits: "100000"}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newFocusedColumn(items ...domain.Displayable) *ListColumn {
	c := NewListColumn("Films", search.ModeFuzzy)
	c.SetFocused(true)
	c.SetSize(60, 20)
	c.SetItems(items)
	return c
}

func TestListColumnNavigation(t *testing.T) {
	c := newFocusedColumn(newHope, empire, jedi)
	require.Equal(t, newHope, c.SelectedItem())

	c.Update(keyRunes("j"))
	assert.Equal(t, empire, c.SelectedItem())

	c.Update(keyRunes("G"))
	assert.Equal(t, jedi, c.SelectedItem())

	c.Update(keyRunes("j"))
	assert.Equal(t, jedi, c.SelectedItem(), "cursor stops at the last row")

	c.Update(keyRunes("g"))
	assert.Equal(t, newHope, c.SelectedItem())

	c.Update(keyRunes("k"))
	assert.Equal(t, 0, c.SelectedIndex())
}

func TestListColumnIgnoresKeysWhenBlurred(t *testing.T) {
	c := newFocusedColumn(newHope, empire)
	c.SetFocused(false)

	c.Update(keyRunes("j"))
	assert.Equal(t, newHope, c.SelectedItem())
}

func TestListColumnSetItemsClampsCursor(t *testing.T) {
	c := newFocusedColumn(newHope, empire, jedi)
	c.SetSelectedIndex(2)

	c.SetItems([]domain.Displayable{falcon})
	assert.Equal(t, falcon, c.SelectedItem())

	c.SetItems(nil)
	assert.Nil(t, c.SelectedItem())
	assert.Equal(t, -1, c.SelectedSourceIndex())
	assert.True(t, c.IsEmpty())
}

func TestListColumnFilter(t *testing.T) {
	c := newFocusedColumn(newHope, empire, jedi)

	c.ToggleFilter()
	require.True(t, c.IsFilterTyping())
	c.Update(keyRunes("jedi"))

	assert.Equal(t, "jedi", c.FilterQuery())
	assert.Equal(t, 1, c.ItemCount())
	assert.Equal(t, jedi, c.SelectedItem())
	assert.Equal(t, 2, c.SelectedSourceIndex())
	assert.Contains(t, c.View(), "[1/3]")

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, c.IsFilterTyping())
	assert.True(t, c.IsFiltering())

	// New rows are filtered with the same query
	c.SetItems([]domain.Displayable{newHope, falcon})
	assert.Equal(t, 0, c.ItemCount())
	assert.Contains(t, c.View(), "No matches")

	c.ClearFilter()
	assert.Equal(t, 2, c.ItemCount())
}

func TestListColumnFilterEscClears(t *testing.T) {
	c := newFocusedColumn(newHope, empire, jedi)

	c.ToggleFilter()
	c.Update(keyRunes("hope"))
	require.Equal(t, 1, c.ItemCount())

	c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, c.IsFiltering())
	assert.Equal(t, 3, c.ItemCount())
}

func TestListColumnSubstringMode(t *testing.T) {
	c := newFocusedColumn(newHope, empire, jedi)
	c.SetFilterMode(search.ModeSubstring)

	c.ToggleFilter()
	c.Update(keyRunes("the"))

	// "The Empire Strikes Back" and "Return of the Jedi", in list order
	require.Equal(t, 2, c.ItemCount())
	assert.Equal(t, empire, c.SelectedItem())
}

func TestListColumnViewShowsTitleAndSubtitle(t *testing.T) {
	c := newFocusedColumn(newHope, falcon)
	c.SetTitle("Films", `search: "x"`)

	view := c.View()
	assert.Contains(t, view, "Films")
	assert.Contains(t, view, `search: "x"`)
	assert.Contains(t, view, "A New Hope")
	assert.Contains(t, view, "1977-05-25")
	assert.Contains(t, view, "YT-1300 light freighter")
}

func TestListColumnLoadingWhenEmpty(t *testing.T) {
	c := newFocusedColumn()
	c.SetLoading(true, "*")
	assert.Contains(t, c.View(), "Loading...")

	c.SetItems([]domain.Displayable{newHope})
	assert.NotContains(t, c.View(), "Loading...", "rows stay visible while reloading")
}
