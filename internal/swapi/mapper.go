package swapi

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/holonet/internal/domain"
)

// Decode converts a raw collection payload into displayable entities, in
// response order. Any structural problem fails the whole payload with an
// error wrapping domain.ErrSchemaMismatch; a partial sequence is never returned.
func Decode(body []byte, kind domain.ResourceKind) ([]domain.Displayable, error) {
	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSchemaMismatch, err)
	}
	if page.Results == nil || string(*page.Results) == "null" {
		return nil, fmt.Errorf("%w: missing results", domain.ErrSchemaMismatch)
	}

	switch kind {
	case domain.ResourceFilms:
		var records []FilmRecord
		if err := json.Unmarshal(*page.Results, &records); err != nil {
			return nil, fmt.Errorf("%w: films: %v", domain.ErrSchemaMismatch, err)
		}
		return MapFilms(records)

	case domain.ResourceStarships:
		var records []StarshipRecord
		if err := json.Unmarshal(*page.Results, &records); err != nil {
			return nil, fmt.Errorf("%w: starships: %v", domain.ErrSchemaMismatch, err)
		}
		return MapStarships(records)

	default:
		return nil, fmt.Errorf("%w: unknown resource kind %d", domain.ErrSchemaMismatch, int(kind))
	}
}

// MapFilms converts film records to domain films
func MapFilms(records []FilmRecord) ([]domain.Displayable, error) {
	items := make([]domain.Displayable, 0, len(records))
	for i, r := range records {
		if r.Title == nil || r.ReleaseDate == nil {
			return nil, fmt.Errorf("%w: film %d missing title or release_date", domain.ErrSchemaMismatch, i)
		}
		items = append(items, &domain.Film{
			Title:        *r.Title,
			EpisodeID:    r.EpisodeID,
			OpeningCrawl: r.OpeningCrawl,
			Director:     r.Director,
			Producer:     r.Producer,
			ReleaseDate:  *r.ReleaseDate,
			URL:          r.URL,
		})
	}
	return items, nil
}

// MapStarships converts starship records to domain starships
func MapStarships(records []StarshipRecord) ([]domain.Displayable, error) {
	items := make([]domain.Displayable, 0, len(records))
	for i, r := range records {
		if r.Name == nil || r.Model == nil {
			return nil, fmt.Errorf("%w: starship %d missing name or model", domain.ErrSchemaMismatch, i)
		}
		items = append(items, &domain.Starship{
			Name:                 *r.Name,
			Model:                *r.Model,
			Manufacturer:         r.Manufacturer,
			CostInCredits:        r.CostInCredits,
			Length:               r.Length,
			MaxAtmospheringSpeed: r.MaxAtmospheringSpeed,
			Crew:                 r.Crew,
			Passengers:           r.Passengers,
			CargoCapacity:        r.CargoCapacity,
			Consumables:          r.Consumables,
			HyperdriveRating:     r.HyperdriveRating,
			MGLT:                 r.MGLT,
			StarshipClass:        r.StarshipClass,
			URL:                  r.URL,
		})
	}
	return items, nil
}
