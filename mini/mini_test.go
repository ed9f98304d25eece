package mini

import (
	"context"
	"testing"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestParseEpisodeInput(t *testing.T) {
	Convey("parseEpisodeInput", t, func() {
		from, to, ok := parseEpisodeInput("3", 12)
		So(ok, ShouldBeTrue)
		So([]int{from, to}, ShouldResemble, []int{3, 3})

		from, to, ok = parseEpisodeInput(" 2 5 ", 12)
		So(ok, ShouldBeTrue)
		So([]int{from, to}, ShouldResemble, []int{2, 5})

		for _, bad := range []string{"0", "13", "5 2", "1 13", "one", "", "1-2"} {
			_, _, ok = parseEpisodeInput(bad, 12)
			So(ok, ShouldBeFalse)
		}
	})
}

func TestStates(t *testing.T) {
	Convey("Given a fresh session", t, func() {
		m := newMini(context.Background())
		m.state = sourceSelectState

		Convey("newState remembers where it came from", func() {
			m.newState(modeSelectState)
			m.newState(searchState)
			m.newState(resultSelectState)

			m.previousState()
			So(m.state, ShouldEqual, searchState)
			m.previousState()
			So(m.state, ShouldEqual, modeSelectState)
		})

		Convey("Playback is not returned to", func() {
			m.newState(episodeSelectState)
			m.newState(episodePlayState)
			m.newState(searchState)

			m.previousState()
			So(m.state, ShouldEqual, episodeSelectState)
		})

		Convey("Moving to the current state is a no-op", func() {
			m.newState(sourceSelectState)
			So(m.statesHistory.Len(), ShouldEqual, 0)
		})
	})
}

func TestLimit(t *testing.T) {
	Convey("limit truncates to mini.search_limit", t, func() {
		results := []*source.SearchResult{{Name: "a"}, {Name: "b"}, {Name: "c"}}

		viper.Set(key.MiniSearchLimit, 2)
		So(limit(results), ShouldHaveLength, 2)

		viper.Set(key.MiniSearchLimit, 0)
		So(limit(results), ShouldHaveLength, 3)

		Reset(func() { viper.Set(key.MiniSearchLimit, 20) })
	})
}
