package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisode(t *testing.T) {
	Convey("Episode", t, func() {
		ep := &Episode{
			Name: "Серия 1",
			Data: "[480p]https://cdn.test/1.m3u8,[720p]https://cdn.test/2.m3u8",
		}

		Convey("String", func() {
			So(ep.String(), ShouldEqual, "Серия 1")

			ep.Name = ""
			ep.Index = 3
			So(ep.String(), ShouldEqual, "Episode 3")
		})

		Convey("Variants", func() {
			So(ep.Variants(), ShouldEqual, 2)

			ep.Data = "  "
			So(ep.Variants(), ShouldEqual, 0)
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given a detail", t, func() {
		d := &Detail{Name: "Test"}

		Convey("SetEpisodes numbers episodes in order", func() {
			d.SetEpisodes(Subbed, []*Episode{{Name: "a"}, {Name: "b"}})
			So(d.DubStatus, ShouldEqual, Subbed)
			So(d.Episodes[0].Index, ShouldEqual, 1)
			So(d.Episodes[1].Index, ShouldEqual, 2)
		})

		Convey("SetEpisodes with nil gives an empty list", func() {
			d.SetEpisodes(Subbed, nil)
			So(d.Episodes, ShouldNotBeNil)
			So(d.Episodes, ShouldBeEmpty)
		})

		Convey("ExternalURLs", func() {
			So(d.ExternalURLs(), ShouldBeEmpty)

			d.AnilistID = 21
			d.MalID = 20
			So(d.ExternalURLs(), ShouldResemble, []string{
				"https://anilist.co/anime/21",
				"https://myanimelist.net/anime/20",
			})
		})
	})
}
