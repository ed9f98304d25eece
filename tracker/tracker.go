// Package tracker enriches loaded titles with external catalog identifiers and art.
//
// Lookups go to a consumet-style metadata endpoint and never fail the caller:
// a failed request or an unmatched title yields the zero Tracker.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/log"
	"github.com/anisan-cli/streamkit/network"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Tracker holds what the metadata service knows about a title.
type Tracker struct {
	MalID     int    `json:"mal_id,omitempty"`
	AnilistID int    `json:"anilist_id,omitempty"`
	Image     string `json:"image,omitempty"`
	Cover     string `json:"cover,omitempty"`
}

// IsZero reports whether the lookup found nothing.
func (t Tracker) IsZero() bool {
	return t == Tracker{}
}

// Client queries the metadata endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient returns a client for endpoint. The title is appended to it as the last path segment.
func NewClient(endpoint string, c *http.Client) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     c,
	}
}

// Find looks the title up with the configured endpoint.
// It returns the zero Tracker when tracker.enable is off.
func Find(ctx context.Context, title, kind string, year int) Tracker {
	if !viper.GetBool(key.TrackerEnable) {
		return Tracker{}
	}
	return NewClient(viper.GetString(key.TrackerEndpoint), network.Client()).Find(ctx, title, kind, year)
}

type response struct {
	Results []*result `json:"results"`
}

type result struct {
	ID    string `json:"id"`
	MalID *int   `json:"malId"`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
	} `json:"title"`
	Image       string `json:"image"`
	Cover       string `json:"cover"`
	Type        string `json:"type"`
	ReleaseDate *int   `json:"releaseDate"`
}

// matches reports whether r is the title. Any one of the three checks is enough.
func (r *result) matches(title, kind string, year int) bool {
	if strings.EqualFold(r.Title.English, title) {
		return true
	}
	if strings.EqualFold(r.Title.Romaji, title) {
		return true
	}
	return strings.EqualFold(r.Type, kind) && r.releaseYear() == year
}

// releaseYear returns the release year, 0 when the service does not know it.
func (r *result) releaseYear() int {
	if r.ReleaseDate == nil {
		return 0
	}
	return *r.ReleaseDate
}

func (r *result) tracker() Tracker {
	t := Tracker{
		Image: r.Image,
		Cover: r.Cover,
	}
	if r.MalID != nil {
		t.MalID = *r.MalID
	}
	if id, err := strconv.Atoi(r.ID); err == nil {
		t.AnilistID = id
	}
	return t
}

// Find returns the first result matching title, kind and year.
func (c *Client) Find(ctx context.Context, title, kind string, year int) Tracker {
	title = strings.TrimSpace(title)
	if title == "" {
		return Tracker{}
	}

	cacheKey := fmt.Sprintf("%s|%s|%s|%d", c.endpoint, title, kind, year)
	if t, ok := lookups().Get(cacheKey).Get(); ok {
		return t
	}
	if _, failed := failures().Get(cacheKey).Get(); failed {
		return Tracker{}
	}

	results, err := c.search(ctx, title)
	if err != nil {
		log.WithFields(log.Fields{"title": title}).Warnf("tracker lookup failed: %s", err)
		_ = failures().Set(cacheKey, true)
		return Tracker{}
	}

	found, ok := lo.Find(results, func(r *result) bool {
		return r.matches(title, kind, year)
	})

	var t Tracker
	if ok {
		t = found.tracker()
		log.Infof("tracker matched %q to anilist %d", title, t.AnilistID)
	} else {
		log.Warnf("tracker found no match for %q among %d results", title, len(results))
	}

	_ = lookups().Set(cacheKey, t)
	return t
}

func (c *Client) search(ctx context.Context, title string) ([]*result, error) {
	body, err := network.Do(ctx, c.http, network.Request{
		Method: http.MethodGet,
		URL:    c.endpoint + "/" + url.PathEscape(title),
	})
	if err != nil {
		return nil, err
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode tracker response: %w", err)
	}

	return lo.Compact(resp.Results), nil
}
