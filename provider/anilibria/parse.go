package anilibria

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	"golang.org/x/net/html"
)

// parseListing turns an HTML fragment into listing items, one per anchor.
// Anchors without a title span or an href are skipped.
func parseListing(fragment, base string) ([]*source.SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	items := make([]*source.SearchResult, 0)
	doc.Find("a").Each(func(_ int, a *goquery.Selection) {
		span := a.Find("span").First()
		if span.Length() == 0 {
			return
		}

		title := util.NormSpace(span.Text())
		href := util.ResolveURL(base, a.AttrOr("href", ""))
		if title == "" || href == "" {
			return
		}

		var poster string
		if src, ok := a.Find("img").First().Attr("src"); ok {
			poster = util.ResolveURL(base, src)
		}

		items = append(items, &source.SearchResult{
			Name:     title,
			URL:      href,
			Poster:   poster,
			Type:     source.Anime,
			Dubbed:   true,
			SourceID: ID,
		})
	})

	return items, nil
}

// page is everything the detail page itself says about a release.
type page struct {
	Title        string
	TrackerTitle string
	TypeLabel    string
	Poster       string
	Year         int
	Plot         string
	Tags         []string
	Episodes     []*source.Episode
}

// Kind returns the tracker media kind for the type label.
func (p *page) Kind() string {
	if strings.Contains(strings.ToLower(p.TypeLabel), strings.ToLower(movieKeyword)) {
		return kindMovie
	}
	return kindTV
}

// parsePage extracts the release fields. ok is false when the page has no release title.
func parsePage(doc *goquery.Document, base string) (p *page, ok bool) {
	h1 := doc.Find("h1.release-title").First()
	if h1.Length() == 0 {
		return nil, false
	}

	p = &page{Title: textWithBreaks(h1)}

	if br := h1.Find("br").First(); br.Length() > 0 {
		p.TrackerTitle = strings.TrimSpace(nextSiblingText(br))
	}
	if p.TrackerTitle == "" {
		p.TrackerTitle = strings.TrimSpace(util.SubstringAfter(p.Title, "/"))
	}

	if src, exists := doc.Find("img#adminPoster").First().Attr("src"); exists {
		p.Poster = util.ResolveURL(base, src)
	}

	info := doc.Find("div#xreleaseInfo")
	p.TypeLabel = strings.TrimSpace(util.SubstringBefore(nextSiblingText(info.Find(`b:contains("Тип:")`).First()), ","))
	p.Year = util.Digits(info.Find(`b:contains("Сезон:")`).First().Next().Text())
	p.Tags = util.SplitTrim(nextSiblingText(info.Find(`b:contains("Жанры:")`).First()), ",")

	plots := doc.Find("p.detail-description").Map(func(_ int, s *goquery.Selection) string {
		return util.NormSpace(s.Text())
	})
	p.Plot = strings.TrimSpace(strings.Join(plots, " "))

	p.Episodes = parseEpisodes(doc, base)
	return p, true
}

// playlistEntry is one item of the player's file list.
type playlistEntry struct {
	File   *string `json:"file"`
	Title  *string `json:"title"`
	Poster *string `json:"poster"`
}

// parseEpisodes reads the inline player configuration.
// A page without a player, or with a list that does not decode, has no episodes.
func parseEpisodes(doc *goquery.Document, base string) []*source.Episode {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := s.Text(); strings.Contains(text, "var player =") {
			script = text
			return false
		}
		return true
	})

	episodes := make([]*source.Episode, 0)
	if script == "" {
		return episodes
	}

	list := util.SubstringBefore(util.SubstringAfter(script, "file:["), "],")

	var entries []*playlistEntry
	if err := json.Unmarshal([]byte("["+list+"]"), &entries); err != nil {
		return episodes
	}

	for _, entry := range entries {
		if entry == nil || entry.File == nil || entry.Title == nil {
			continue
		}

		ep := &source.Episode{
			Data: *entry.File,
			Name: *entry.Title,
		}
		if entry.Poster != nil {
			ep.Poster = util.ResolveURL(base, *entry.Poster)
		}
		episodes = append(episodes, ep)
	}

	return episodes
}

// textWithBreaks returns the normalized text of sel with <br> read as a space.
func textWithBreaks(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find("br").ReplaceWithHtml(" ")
	return util.NormSpace(clone.Text())
}

// nextSiblingText returns the text of the node right after the first node of sel,
// which is usually the bare text following a label element.
func nextSiblingText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	next := sel.Get(0).NextSibling
	if next == nil {
		return ""
	}
	if next.Type == html.TextNode {
		return next.Data
	}
	return goquery.NewDocumentFromNode(next).Text()
}
