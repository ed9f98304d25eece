package source

import (
	"context"
	"fmt"
)

// ExtractorLink is a resolved, directly playable stream.
type ExtractorLink struct {
	// Source is the name of the adapter that resolved the link.
	Source string `json:"source"`
	// Name is the display name of the stream.
	Name string `json:"name"`
	// URL is the stream address.
	URL     string  `json:"url" jsonschema:"description=Direct stream URL."`
	Quality Quality `json:"quality"`
	// Referer is the value the site expects in the Referer header.
	Referer string `json:"referer,omitempty"`
	// RequiresReferer tells players they must send Referer or the stream is refused.
	RequiresReferer bool `json:"requires_referer"`
}

// Headers returns the HTTP headers a player has to send to fetch the stream.
func (l *ExtractorLink) Headers() map[string]string {
	headers := make(map[string]string)
	if l.RequiresReferer && l.Referer != "" {
		headers["Referer"] = l.Referer
	}
	return headers
}

func (l *ExtractorLink) String() string {
	return fmt.Sprintf("%s %s", l.Name, l.Quality)
}

// Subtitle is an external subtitle track.
type Subtitle struct {
	Lang string `json:"lang"`
	URL  string `json:"url"`
}

func (s *Subtitle) String() string {
	return s.Lang
}

// Links is the collected output of one LoadLinks call.
type Links struct {
	Links     []*ExtractorLink `json:"links"`
	Subtitles []*Subtitle      `json:"subtitles"`
}

// CollectLinks runs LoadLinks and gathers the emitted values, preserving emission order.
func CollectLinks(ctx context.Context, src Source, data string, isCasting bool) (*Links, error) {
	collected := &Links{
		Links:     []*ExtractorLink{},
		Subtitles: []*Subtitle{},
	}

	ok, err := src.LoadLinks(ctx, data, isCasting,
		func(s *Subtitle) { collected.Subtitles = append(collected.Subtitles, s) },
		func(l *ExtractorLink) { collected.Links = append(collected.Links, l) },
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &LoadError{Op: "links", Reason: "no links resolved"}
	}

	return collected, nil
}

// BestLink returns the highest quality link, the first one on ties, or nil for no links.
func BestLink(links []*ExtractorLink) *ExtractorLink {
	var best *ExtractorLink
	for _, l := range links {
		if best == nil || l.Quality > best.Quality {
			best = l
		}
	}
	return best
}
