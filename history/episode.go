package history

import (
	"fmt"
	"time"

	"github.com/anisan-cli/streamkit/source"
)

// SavedEpisode is the last watched episode of a title.
type SavedEpisode struct {
	SourceID      string    `json:"source_id"`
	Title         string    `json:"title"`
	TitleURL      string    `json:"title_url"`
	Poster        string    `json:"poster,omitempty"`
	EpisodesTotal int       `json:"episodes_total"`
	Name          string    `json:"name"`
	Data          string    `json:"data"`
	Index         int       `json:"index"`
	WatchedAt     time.Time `json:"watched_at"`
}

func (s *SavedEpisode) encode() string {
	return fmt.Sprintf("%s (%s)", s.TitleURL, s.SourceID)
}

func (s *SavedEpisode) String() string {
	return fmt.Sprintf("%s : %d / %d", s.Title, s.Index, s.EpisodesTotal)
}

// Episode rebuilds the watched episode so it can be resolved again.
func (s *SavedEpisode) Episode() *source.Episode {
	return &source.Episode{
		Data:  s.Data,
		Name:  s.Name,
		Index: uint16(s.Index),
	}
}

func newSavedEpisode(detail *source.Detail, episode *source.Episode) *SavedEpisode {
	return &SavedEpisode{
		SourceID:      detail.SourceID,
		Title:         detail.Name,
		TitleURL:      detail.URL,
		Poster:        detail.Poster,
		EpisodesTotal: len(detail.Episodes),
		Name:          episode.String(),
		Data:          episode.Data,
		Index:         int(episode.Index),
		WatchedAt:     time.Now(),
	}
}
