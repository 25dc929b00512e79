package swapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/holonet/internal/domain"
)

func TestDecodeFilms(t *testing.T) {
	items, err := Decode([]byte(`{"results":[{"title":"A New Hope","release_date":"1977-05-25"}]}`), domain.ResourceFilms)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A New Hope", items[0].TitleLabelText())
	assert.Equal(t, "1977-05-25", items[0].SubtitleLabelText())
}

func TestDecodePreservesOrder(t *testing.T) {
	body := `{"results":[
		{"name":"X-wing","model":"T-65 X-wing"},
		{"name":"A-wing","model":"RZ-1 A-wing Interceptor"},
		{"name":"B-wing","model":"A/SF-01 B-wing starfighter"}
	]}`
	items, err := Decode([]byte(body), domain.ResourceStarships)
	require.NoError(t, err)

	var names []string
	for _, it := range items {
		names = append(names, it.TitleLabelText())
	}
	assert.Equal(t, []string{"X-wing", "A-wing", "B-wing"}, names)
}

func TestDecodeEmptyResults(t *testing.T) {
	items, err := Decode([]byte(`{"count":0,"results":[]}`), domain.ResourceStarships)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestDecodeSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind domain.ResourceKind
	}{
		{"missing results", `{"count":1}`, domain.ResourceFilms},
		{"null results", `{"results":null}`, domain.ResourceFilms},
		{"results not array", `{"results":{"title":"x"}}`, domain.ResourceFilms},
		{"top-level array", `[{"title":"x"}]`, domain.ResourceFilms},
		{"not json", `<html>`, domain.ResourceStarships},
		{"empty body", ``, domain.ResourceStarships},
		{"film missing release_date", `{"results":[{"title":"A New Hope"}]}`, domain.ResourceFilms},
		{"film missing title", `{"results":[{"release_date":"1977-05-25"}]}`, domain.ResourceFilms},
		{"starship missing model", `{"results":[{"name":"X-wing"}]}`, domain.ResourceStarships},
		{"film records as starships", `{"results":[{"title":"A New Hope","release_date":"1977-05-25"}]}`, domain.ResourceStarships},
		{"unknown kind", `{"results":[]}`, domain.ResourceKind(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Decode([]byte(tt.body), tt.kind)
			assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
			assert.Nil(t, items)
		})
	}
}

func TestDecodeNeverReturnsPartialSequence(t *testing.T) {
	body := `{"results":[
		{"name":"X-wing","model":"T-65 X-wing"},
		{"name":"Broken"}
	]}`
	items, err := Decode([]byte(body), domain.ResourceStarships)
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	assert.Nil(t, items)
}

func TestDecodeIsDeterministic(t *testing.T) {
	body := []byte(`{"results":[{"name":"Death Star","model":"DS-1 Orbital Battle Station","cost_in_credits":"1000000000000"}]}`)
	first, err := Decode(body, domain.ResourceStarships)
	require.NoError(t, err)
	second, err := Decode(body, domain.ResourceStarships)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
