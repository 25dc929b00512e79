package swapi

import "encoding/json"

// Page is the envelope for every SWAPI collection response.
// Results stays raw so each kind can validate its own records.
type Page struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  *json.RawMessage `json:"results"`
}

// FilmRecord mirrors one element of /films results.
// Required fields are pointers so absence can be told apart from "".
type FilmRecord struct {
	Title        *string  `json:"title"`
	EpisodeID    int      `json:"episode_id,omitempty"`
	OpeningCrawl string   `json:"opening_crawl,omitempty"`
	Director     string   `json:"director,omitempty"`
	Producer     string   `json:"producer,omitempty"`
	ReleaseDate  *string  `json:"release_date"`
	Characters   []string `json:"characters,omitempty"`
	Starships    []string `json:"starships,omitempty"`
	Created      string   `json:"created,omitempty"`
	Edited       string   `json:"edited,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// StarshipRecord mirrors one element of /starships results
type StarshipRecord struct {
	Name                 *string  `json:"name"`
	Model                *string  `json:"model"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	CostInCredits        string   `json:"cost_in_credits,omitempty"`
	Length               string   `json:"length,omitempty"`
	MaxAtmospheringSpeed string   `json:"max_atmosphering_speed,omitempty"`
	Crew                 string   `json:"crew,omitempty"`
	Passengers           string   `json:"passengers,omitempty"`
	CargoCapacity        string   `json:"cargo_capacity,omitempty"`
	Consumables          string   `json:"consumables,omitempty"`
	HyperdriveRating     string   `json:"hyperdrive_rating,omitempty"`
	MGLT                 string   `json:"MGLT,omitempty"`
	StarshipClass        string   `json:"starship_class,omitempty"`
	Pilots               []string `json:"pilots,omitempty"`
	Films                []string `json:"films,omitempty"`
	URL                  string   `json:"url,omitempty"`
}
