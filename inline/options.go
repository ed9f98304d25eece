package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anisan-cli/streamkit/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	ResultPicker   func([]*source.SearchResult) *source.SearchResult
	EpisodesFilter func([]*source.Episode) ([]*source.Episode, error)
)

type Options struct {
	Out            io.Writer
	Sources        []source.Source
	Json           bool
	Query          string
	ResultPicker   mo.Option[ResultPicker]
	EpisodesFilter mo.Option[EpisodesFilter]
	// Links resolves every selected episode.
	Links     bool
	IsCasting bool
}

// ParseResultPicker returns the picker named by kind.
// value is the title for "exact" and "closest" and the zero-based position for "index".
func ParseResultPicker(kind, value string) (ResultPicker, error) {
	switch kind {
	case "first":
		return func(results []*source.SearchResult) *source.SearchResult {
			if len(results) == 0 {
				return nil
			}
			return results[0]
		}, nil
	case "last":
		return func(results []*source.SearchResult) *source.SearchResult {
			if len(results) == 0 {
				return nil
			}
			return results[len(results)-1]
		}, nil
	case "exact":
		return func(results []*source.SearchResult) *source.SearchResult {
			found, _ := lo.Find(results, func(r *source.SearchResult) bool {
				return strings.EqualFold(r.Name, value)
			})
			return found
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(results []*source.SearchResult) *source.SearchResult {
			if len(results) == 0 {
				return nil
			}
			i := min(idx, uint64(len(results)-1))
			return results[i]
		}, nil
	case "closest":
		target := strings.ToLower(value)
		return func(results []*source.SearchResult) *source.SearchResult {
			if len(results) == 0 {
				return nil
			}
			return lo.MinBy(results, func(a, b *source.SearchResult) bool {
				return levenshtein.Distance(strings.ToLower(a.Name), target) <
					levenshtein.Distance(strings.ToLower(b.Name), target)
			})
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseEpisodesFilter parses an episode selection.
// Format: "first", "last", "all", "3" (episode number), "2-5" (inclusive range), "@text@" (name contains text).
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "first":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[:1], nil
		}, nil
	case "last":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			if len(episodes) == 0 {
				return episodes, nil
			}
			return episodes[len(episodes)-1:], nil
		}, nil
	case "all":
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return episodes, nil
		}, nil
	}

	if from, to, ok := parseRange(description); ok {
		return byIndex(func(i uint16) bool { return i >= from && i <= to }), nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*source.Episode) ([]*source.Episode, error) {
			return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Name), sub)
			}), nil
		}, nil
	}

	if n, err := strconv.ParseUint(description, 10, 16); err == nil {
		return byIndex(func(i uint16) bool { return i == uint16(n) }), nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}

func parseRange(description string) (from, to uint16, ok bool) {
	a, b, found := strings.Cut(description, "-")
	if !found {
		return 0, 0, false
	}

	start, err1 := strconv.ParseUint(strings.TrimSpace(a), 10, 16)
	end, err2 := strconv.ParseUint(strings.TrimSpace(b), 10, 16)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return uint16(start), uint16(end), true
}

func byIndex(keep func(uint16) bool) EpisodesFilter {
	return func(episodes []*source.Episode) ([]*source.Episode, error) {
		return lo.Filter(episodes, func(e *source.Episode, _ int) bool {
			return keep(e.Index)
		}), nil
	}
}
