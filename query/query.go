// Package query remembers search queries and suggests them back, ranked by use.
package query

import (
	"strings"
	"sync"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	suggestions   = make(map[string][]*queryRecord)
	suggestionsMu sync.Mutex
)

func records() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember records a search query or adds weight to its rank.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached := records()
	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	forgetSuggestions()
	return cacher.Set(cached)
}

// Forget removes a query from the history.
func Forget(q string) error {
	cached := records()
	delete(cached, sanitize(q))

	forgetSuggestions()
	return cacher.Set(cached)
}

// Suggest returns the best ranked query matching q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns the remembered queries fuzzily matching q, highest rank first.
// Queries equal to q itself are left out.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	suggestionsMu.Lock()
	defer suggestionsMu.Unlock()

	matched, ok := suggestions[q]
	if !ok {
		for _, record := range records() {
			if record.Query != q && fuzzy.Match(q, record.Query) {
				matched = append(matched, record)
			}
		}

		slices.SortFunc(matched, func(a, b *queryRecord) int {
			if a.Rank == b.Rank {
				return strings.Compare(a.Query, b.Query)
			}
			return b.Rank - a.Rank
		})

		suggestions[q] = matched
	}

	return lo.Map(matched, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func forgetSuggestions() {
	suggestionsMu.Lock()
	defer suggestionsMu.Unlock()
	suggestions = make(map[string][]*queryRecord)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
