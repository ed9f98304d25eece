// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/icon"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/source"
	"github.com/anisan-cli/streamkit/style"
	"github.com/spf13/viper"
)

// searchItem is the entry of the sections list that opens the search prompt.
type searchItem struct{}

// listItem implements the list.Item interface, wrapping domain models for terminal display.
type listItem struct {
	internal any
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() string {
	switch e := t.internal.(type) {
	case *source.SearchResult:
		if e.Dubbed {
			return fmt.Sprintf("%s %s", e.Name, style.Faint("dub"))
		}
		return e.Name
	case *source.Episode:
		return fmt.Sprintf("%s %s", icon.Get(icon.Episode), e)
	case *source.ExtractorLink:
		return fmt.Sprintf("%s %s", style.Quality(int(e.Quality), e.Quality.String()), e.Name)
	case searchItem:
		return fmt.Sprintf("%s Search", icon.Get(icon.Search))
	default:
		return t.FilterValue()
	}
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case *source.SearchResult:
		parts := []string{string(e.Type)}
		if viper.GetBool(key.TUIShowURLs) {
			parts = append(parts, e.URL)
		}
		return style.Faint(strings.Join(parts, " • "))
	case *source.Episode:
		if n := e.Variants(); n > 1 {
			return style.Faint(fmt.Sprintf("%d variants", n))
		}
		return ""
	case *source.ExtractorLink:
		if e.RequiresReferer {
			return style.Faint("referer " + e.Referer)
		}
		if viper.GetBool(key.TUIShowURLs) {
			return style.Faint(e.URL)
		}
		return ""
	case *history.SavedEpisode:
		return fmt.Sprintf("%s : %d / %d", e.Name, e.Index, e.EpisodesTotal)
	case *provider.Provider:
		sb := strings.Builder{}
		if e.IsCustom {
			sb.WriteString("Lua Extension")
		} else {
			sb.WriteString("Built-in Provider")
		}

		if e.Lang != "" {
			sb.WriteString(" • ")
			sb.WriteString(e.Lang)
		}

		if e.UsesHeadless {
			sb.WriteString(" (Requires Headless Chrome)")
		}

		return sb.String()
	default:
		return ""
	}
}

// FilterValue returns the plain text of the item.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *source.SearchResult:
		return e.Name
	case *source.Episode:
		return e.String()
	case *source.ExtractorLink:
		return e.Name
	case *history.SavedEpisode:
		return e.Title
	case *provider.Provider:
		return e.Name
	case source.MainPageRequest:
		return e.Name
	case searchItem:
		return "Search"
	case string:
		return e
	default:
		return ""
	}
}
