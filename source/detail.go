package source

import "fmt"

// DubStatus tells whether an episode group is voiced or subtitled.
type DubStatus string

const (
	Dubbed DubStatus = "dubbed"
	Subbed DubStatus = "subbed"
)

// Detail is the full record behind a listing item.
type Detail struct {
	Name string `json:"name" jsonschema:"description=Title of the release."`
	URL  string `json:"url" jsonschema:"description=URL of the detail page."`
	Type TvType `json:"type"`

	Poster     string `json:"poster,omitempty"`
	Background string `json:"background,omitempty"`

	// Year is the release year, 0 when unknown.
	Year int      `json:"year,omitempty"`
	Plot string   `json:"plot,omitempty"`
	Tags []string `json:"tags,omitempty"`

	DubStatus DubStatus  `json:"dub_status"`
	Episodes  []*Episode `json:"episodes"`

	// External catalog identifiers, 0 when enrichment found nothing.
	MalID     int `json:"mal_id,omitempty" jsonschema:"description=ID of the title on MyAnimeList."`
	AnilistID int `json:"anilist_id,omitempty" jsonschema:"description=ID of the title on Anilist."`

	SourceID string `json:"source_id,omitempty"`
}

func (d *Detail) String() string {
	return d.Name
}

// SetEpisodes replaces the episode list and numbers it in order.
func (d *Detail) SetEpisodes(status DubStatus, episodes []*Episode) {
	if episodes == nil {
		episodes = []*Episode{}
	}
	for i, ep := range episodes {
		ep.Index = uint16(i + 1)
	}
	d.DubStatus = status
	d.Episodes = episodes
}

// ExternalURLs returns the catalog pages the identifiers point at.
func (d *Detail) ExternalURLs() []string {
	var urls []string
	if d.AnilistID != 0 {
		urls = append(urls, fmt.Sprintf("https://anilist.co/anime/%d", d.AnilistID))
	}
	if d.MalID != 0 {
		urls = append(urls, fmt.Sprintf("https://myanimelist.net/anime/%d", d.MalID))
	}
	return urls
}
