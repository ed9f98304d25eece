// Package anilibria implements the content adapter for anilibria.tv, a Russian anime dubbing site.
package anilibria

import (
	"context"
	"net/http"
	"strings"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/network"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/tracker"
	"github.com/spf13/viper"
)

const (
	ID   = "anilibria"
	Name = "Anilibria"

	// DefaultURL is the site address used when anilibria.url is empty.
	DefaultURL = "https://anilibria.tv"
)

// Type labels and tracker kinds used by the site.
const (
	movieKeyword = "Фильм"
	tvKeyword    = "ТВ"

	kindMovie = "movie"
	kindTV    = "tv"
)

// sections are the homepage categories. Data is the catalog sort key.
var sections = []source.MainPageRequest{
	{Name: "Новое", Data: "1"},
	{Name: "Популярное", Data: "2"},
}

// Finder looks up external catalog data for a title.
type Finder func(ctx context.Context, title, kind string, year int) tracker.Tracker

// Config configures a Source.
type Config struct {
	// BaseURL is the site root without a trailing slash.
	BaseURL string
	Client  *http.Client
	Finder  Finder
}

// Source is the anilibria adapter. It keeps no state between calls.
type Source struct {
	baseURL string
	client  *http.Client
	find    Finder
}

// New creates an adapter from cfg, filling blank fields with defaults.
func New(cfg Config) *Source {
	s := &Source{
		baseURL: strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/"),
		client:  cfg.Client,
		find:    cfg.Finder,
	}

	if s.baseURL == "" {
		s.baseURL = DefaultURL
	}
	if s.client == nil {
		s.client = network.Client()
	}
	if s.find == nil {
		s.find = tracker.Find
	}

	return s
}

// NewFromConfig creates an adapter configured by anilibria.url.
func NewFromConfig() (source.Source, error) {
	return New(Config{BaseURL: viper.GetString(key.AnilibriaURL)}), nil
}

func (*Source) Name() string { return Name }
func (*Source) ID() string   { return ID }
func (*Source) Lang() string { return "ru" }

func (*Source) Types() []source.TvType {
	return []source.TvType{source.Anime, source.AnimeMovie, source.OVA}
}

func (*Source) MainPages() []source.MainPageRequest {
	return append([]source.MainPageRequest(nil), sections...)
}

// BaseURL returns the site root the adapter talks to.
func (s *Source) BaseURL() string {
	return s.baseURL
}

// referer is the value stream hosts expect in the Referer header.
func (s *Source) referer() string {
	return s.baseURL + "/"
}
