package anilibria

import (
	"bytes"
	"context"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/network"
	"github.com/anisan-cli/streamkit/source"
)

// Load fetches a release page and enriches it with tracker data.
func (s *Source) Load(ctx context.Context, url string) (*source.Detail, error) {
	log.WithFields(log.Fields{"source": ID, "url": url}).Info("load")

	body, err := network.Do(ctx, s.client, network.Request{Method: http.MethodGet, URL: url})
	if err != nil {
		return nil, &source.LoadError{Op: "load", URL: url, Err: err}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &source.LoadError{Op: "load", URL: url, Reason: "unparseable page", Err: err}
	}

	p, ok := parsePage(doc, s.baseURL)
	if !ok {
		return nil, &source.LoadError{Op: "load", URL: url, Reason: "release title not found"}
	}

	t := s.find(ctx, p.TrackerTitle, p.Kind(), p.Year)

	detail := &source.Detail{
		Name:       p.Title,
		URL:        url,
		Type:       source.Classify(p.TypeLabel, movieKeyword, tvKeyword),
		Poster:     firstNonEmpty(t.Image, p.Poster),
		Background: firstNonEmpty(t.Cover, t.Image, p.Poster),
		Year:       p.Year,
		Plot:       p.Plot,
		Tags:       p.Tags,
		MalID:      t.MalID,
		AnilistID:  t.AnilistID,
		SourceID:   ID,
	}
	detail.SetEpisodes(source.Subbed, p.Episodes)

	log.Infof("anilibria: loaded %q with %d episodes", detail.Name, len(detail.Episodes))
	return detail, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
