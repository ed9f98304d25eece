// Package custom provides a bridge between the Go core and Lua-based site adapters.
package custom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/util"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Helper to get string from table with default
func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	switch val.Type() {
	case lua.LTString:
		return strings.TrimSpace(val.String())
	case lua.LTNumber:
		return val.String()
	default:
		return ""
	}
}

// Helper to get an integer from a number or numeric string field
func getInt(table *lua.LTable, key string) int {
	val := table.RawGetString(key)
	switch v := val.(type) {
	case lua.LNumber:
		return int(v)
	case lua.LString:
		return util.Digits(string(v))
	default:
		return 0
	}
}

// Helper to get string list from table (comma-separated or table)
func getStringList(table *lua.LTable, key string) []string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return util.SplitTrim(val.String(), ",")
	}
	if val.Type() == lua.LTTable {
		var list []string
		val.(*lua.LTable).ForEach(func(_, v lua.LValue) {
			if v.Type() == lua.LTString {
				list = append(list, strings.TrimSpace(v.String()))
			}
		})
		return lo.Compact(list)
	}
	return nil
}

// mapTable converts the array part of tbl with fn. Entries that fail to map
// are dropped; the first failure is returned only when nothing mapped.
func mapTable[T any](tbl *lua.LTable, fn func(*lua.LTable) (T, error)) ([]T, error) {
	out := make([]T, 0, tbl.Len())
	var errs []error

	tbl.ForEach(func(k, v lua.LValue) {
		entry, ok := v.(*lua.LTable)
		if k.Type() != lua.LTNumber || !ok {
			return
		}

		mapped, err := fn(entry)
		if err != nil {
			errs = append(errs, err)
			return
		}
		out = append(out, mapped)
	})

	if len(out) == 0 && len(errs) > 0 {
		return nil, errs[0]
	}
	return out, nil
}

func sectionFromTable(table *lua.LTable) (source.MainPageRequest, error) {
	name := getString(table, "name")
	data := getString(table, "data")
	if name == "" {
		return source.MainPageRequest{}, errors.New("section must have name")
	}
	return source.MainPageRequest{Name: name, Data: data}, nil
}

func (s *luaSource) itemFromTable(table *lua.LTable) (*source.SearchResult, error) {
	name := getString(table, "name")
	url := getString(table, "url")

	if name == "" || url == "" {
		return nil, fmt.Errorf("item must have name and url")
	}

	item := &source.SearchResult{
		Name:     name,
		URL:      url,
		Poster:   getString(table, "poster"),
		Type:     source.Others,
		Dubbed:   lua.LVAsBool(table.RawGetString("dubbed")),
		SourceID: s.ID(),
	}
	if t := getString(table, "type"); t != "" {
		item.Type = source.ParseTvType(t)
	}

	return item, nil
}

func episodeFromTable(table *lua.LTable) (*source.Episode, error) {
	data := getString(table, "data")
	name := getString(table, "name")

	if data == "" || name == "" {
		return nil, fmt.Errorf("episode must have data and name")
	}

	return &source.Episode{
		Data:   data,
		Name:   name,
		Poster: getString(table, "poster"),
	}, nil
}

func (s *luaSource) detailFromTable(table *lua.LTable, url string) (*source.Detail, error) {
	name := getString(table, "name")
	if name == "" {
		return nil, errors.New("detail must have name")
	}

	detail := &source.Detail{
		Name:       name,
		URL:        lo.Ternary(getString(table, "url") != "", getString(table, "url"), url),
		Type:       source.Others,
		Poster:     getString(table, "poster"),
		Background: getString(table, "background"),
		Year:       getInt(table, "year"),
		Plot:       getString(table, "plot"),
		Tags:       getStringList(table, "tags"),
		MalID:      getInt(table, "mal_id"),
		AnilistID:  getInt(table, "anilist_id"),
		SourceID:   s.ID(),
	}
	if t := getString(table, "type"); t != "" {
		detail.Type = source.ParseTvType(t)
	}

	status := source.Subbed
	if lua.LVAsBool(table.RawGetString("dubbed")) {
		status = source.Dubbed
	}

	var episodes []*source.Episode
	if tbl, ok := table.RawGetString("episodes").(*lua.LTable); ok {
		episodes, _ = mapTable(tbl, episodeFromTable)
	}
	detail.SetEpisodes(status, episodes)

	return detail, nil
}

func (s *luaSource) linkFromTable(table *lua.LTable) (*source.ExtractorLink, error) {
	url := getString(table, "url")
	if url == "" {
		return nil, fmt.Errorf("link must have url")
	}

	link := &source.ExtractorLink{
		Source:  s.name,
		Name:    lo.Ternary(getString(table, "name") != "", getString(table, "name"), s.name),
		URL:     url,
		Referer: getString(table, "referer"),
	}

	switch q := table.RawGetString("quality").(type) {
	case lua.LNumber:
		link.Quality = source.Quality(int(q))
	case lua.LString:
		link.Quality = source.QualityFromName(string(q))
	}

	link.RequiresReferer = link.Referer != ""
	if v := table.RawGetString("requires_referer"); v != lua.LNil {
		link.RequiresReferer = lua.LVAsBool(v)
	}

	return link, nil
}

func subtitleFromTable(table *lua.LTable) (*source.Subtitle, error) {
	url := getString(table, "url")
	if url == "" {
		return nil, fmt.Errorf("subtitle must have url")
	}
	return &source.Subtitle{Lang: getString(table, "lang"), URL: url}, nil
}
