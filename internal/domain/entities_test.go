package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilmLabels(t *testing.T) {
	f := &Film{Title: "A New Hope", EpisodeID: 4, ReleaseDate: "1977-05-25"}
	assert.Equal(t, "A New Hope", f.TitleLabelText())
	assert.Equal(t, "1977-05-25", f.SubtitleLabelText())

	noDate := &Film{Title: "The Empire Strikes Back", EpisodeID: 5}
	assert.Equal(t, "Episode V", noDate.SubtitleLabelText())

	assert.Empty(t, (&Film{Title: "Untitled"}).SubtitleLabelText())
}

func TestStarshipLabels(t *testing.T) {
	s := &Starship{Name: "X-wing", Model: "T-65 X-wing", Manufacturer: "Incom Corporation"}
	assert.Equal(t, "X-wing", s.TitleLabelText())
	assert.Equal(t, "T-65 X-wing", s.SubtitleLabelText())

	noModel := &Starship{Name: "Slave 1", Manufacturer: "Kuat Systems Engineering"}
	assert.Equal(t, "Kuat Systems Engineering", noModel.SubtitleLabelText())
}

func TestFilmDetailFieldsSkipsEmptyAndJoinsCrawl(t *testing.T) {
	f := &Film{
		Title:        "A New Hope",
		EpisodeID:    4,
		ReleaseDate:  "1977-05-25",
		Director:     "George Lucas",
		OpeningCrawl: "It is a period of civil war.\r\nRebel spaceships, striking\r\nfrom a hidden base.\r\n\r\nDuring the battle.",
	}

	fields := f.DetailFields()
	assert.Equal(t, []Field{
		{Label: "Episode", Value: "IV"},
		{Label: "Released", Value: "1977-05-25"},
		{Label: "Director", Value: "George Lucas"},
		{Label: "Opening Crawl", Value: "It is a period of civil war. Rebel spaceships, striking from a hidden base.\n\nDuring the battle."},
	}, fields)
}

func TestStarshipDetailFields(t *testing.T) {
	s := &Starship{
		Name:          "Millennium Falcon",
		Model:         "YT-1300 light freighter",
		CostInCredits: "100000",
		Length:        "34.37",
		Crew:          "4",
	}

	fields := s.DetailFields()
	assert.Equal(t, []Field{
		{Label: "Model", Value: "YT-1300 light freighter"},
		{Label: "Cost", Value: "100,000 cr"},
		{Label: "Length", Value: "34.37 m"},
		{Label: "Crew", Value: "4"},
	}, fields)
}

func TestFormatCredits(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"unknown":       "unknown",
		"500":           "500 cr",
		"149999":        "149,999 cr",
		"3500000":       "3,500,000 cr",
		"12.5":          "12.5",
		"1000000000000": "1,000,000,000,000 cr",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatCredits(in), "FormatCredits(%q)", in)
	}
}

func TestEpisodeNumeral(t *testing.T) {
	assert.Equal(t, "", EpisodeNumeral(0))
	assert.Equal(t, "I", EpisodeNumeral(1))
	assert.Equal(t, "VI", EpisodeNumeral(6))
	assert.Equal(t, "IX", EpisodeNumeral(9))
	assert.Equal(t, "10", EpisodeNumeral(10))
}

func TestResourceKind(t *testing.T) {
	assert.Equal(t, "films", ResourceFilms.Path())
	assert.Equal(t, "starships", ResourceStarships.Path())
	assert.Equal(t, "Starships", ResourceStarships.String())
	assert.Equal(t, "ResourceKind(9)", ResourceKind(9).String())
}
