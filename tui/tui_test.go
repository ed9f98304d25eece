package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/anisan-cli/streamkit/history"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/provider"
	"github.com/anisan-cli/streamkit/source"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestListItem(t *testing.T) {
	Convey("Given list items", t, func() {
		Convey("Search results show the name", func() {
			item := &listItem{internal: &source.SearchResult{Name: "Наруто", Type: source.Anime}}
			So(item.Title(), ShouldEqual, "Наруто")
			So(item.FilterValue(), ShouldEqual, "Наруто")
			So(item.Description(), ShouldContainSubstring, string(source.Anime))
		})

		Convey("Episodes with one variant have no description", func() {
			item := &listItem{internal: &source.Episode{Name: "Серия 1", Data: "https://cdn.test/1.m3u8"}}
			So(item.Title(), ShouldContainSubstring, "Серия 1")
			So(item.Description(), ShouldBeEmpty)
		})

		Convey("History entries show progress", func() {
			item := &listItem{internal: &history.SavedEpisode{Title: "Test", Name: "Серия 2", Index: 2, EpisodesTotal: 12}}
			So(item.Title(), ShouldEqual, "Test")
			So(item.Description(), ShouldEqual, "Серия 2 : 2 / 12")
		})

		Convey("Providers describe where they come from", func() {
			item := &listItem{internal: &provider.Provider{Name: "example", Lang: "id", IsCustom: true}}
			So(item.Description(), ShouldEqual, "Lua Extension • id")
		})

		Convey("Sections use the request name", func() {
			item := &listItem{internal: source.MainPageRequest{Name: "Новое"}}
			So(item.Title(), ShouldEqual, "Новое")
			So((&listItem{internal: searchItem{}}).FilterValue(), ShouldEqual, "Search")
		})
	})
}

func TestKeymap(t *testing.T) {
	Convey("Given a keymap", t, func() {
		k := newStatefulKeymap()

		Convey("Episodes list open url in the full help only", func() {
			k.setState(episodesState)
			So(bindingsHelp(k.ShortHelp()), ShouldNotContain, "open url")
			So(bindingsHelp(k.FullHelp()[0]), ShouldContain, "open url")
		})

		Convey("Sources can be updated", func() {
			k.setState(sourcesState)
			So(bindingsHelp(k.ShortHelp()), ShouldContain, "update sources")
		})

		Convey("Descriptions can be overridden", func() {
			b := withDescription(k.confirm, "links")
			So(b.Help().Desc, ShouldEqual, "links")
			So(b.Keys(), ShouldResemble, []string{"enter"})
		})
	})
}

func bindingsHelp(bindings []bubblesKey.Binding) []string {
	var descs []string
	for _, b := range bindings {
		descs = append(descs, b.Help().Desc)
	}
	return descs
}

func TestStates(t *testing.T) {
	Convey("Given a bubble", t, func() {
		b := newBubble(context.Background(), &Options{})
		b.newState(sourcesState)

		Convey("Loading and error states are not recorded", func() {
			b.startLoading("working")
			So(b.state, ShouldEqual, loadingState)
			b.newState(sectionsState)
			b.previousState()
			So(b.state, ShouldEqual, sourcesState)
			So(b.statesHistory.Len(), ShouldEqual, 0)
		})

		Convey("Errors show the error view", func() {
			_, _ = b.Update(errors.New("boom"))
			So(b.state, ShouldEqual, errorState)
			So(b.viewError(), ShouldContainSubstring, "boom")
		})

		Convey("Late results are ignored", func() {
			_, _ = b.Update(resultsMsg{title: "Results", results: []*source.SearchResult{{Name: "a"}}})
			So(b.state, ShouldEqual, sourcesState)
		})

		Convey("Results arriving while loading are listed", func() {
			b.startLoading("Searching")
			_, _ = b.Update(resultsMsg{title: "Results", results: []*source.SearchResult{{Name: "a"}, {Name: "b"}}})
			So(b.state, ShouldEqual, resultsState)
			So(b.resultsC.Items(), ShouldHaveLength, 2)
			So(b.resultsC.Title, ShouldEqual, "Results")
			So(b.loading, ShouldBeFalse)
		})

		Convey("A resumed title focuses the saved episode", func() {
			viper.Set(key.TUIReverseEpisodes, false)
			detail := &source.Detail{Name: "Test"}
			detail.SetEpisodes(source.Subbed, []*source.Episode{{Name: "1"}, {Name: "2"}, {Name: "3"}})

			b.startLoading("Loading")
			_, _ = b.Update(resumeMsg{detail: detail, index: 2})
			So(b.state, ShouldEqual, episodesState)
			So(b.episodesC.Index(), ShouldEqual, 1)
			So(b.resumeIndex, ShouldEqual, 0)
			So(b.selectedDetail, ShouldEqual, detail)
		})

		Convey("Search view shows the input", func() {
			b.newState(searchState)
			So(b.View(), ShouldContainSubstring, "Search")
		})
	})
}
