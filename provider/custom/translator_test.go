package custom

import (
	"testing"

	"github.com/anisan-cli/streamkit/source"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestItemFromTable(t *testing.T) {
	Convey("itemFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()
		s := newLuaSource("site", Header{}, L)

		Convey("Should extract an item from a valid Lua table", func() {
			tbl := L.NewTable()
			tbl.RawSetString("name", lua.LString("Bleach"))
			tbl.RawSetString("url", lua.LString("https://example.com/bleach"))
			tbl.RawSetString("poster", lua.LString("https://example.com/cover.jpg"))
			tbl.RawSetString("type", lua.LString("anime"))
			tbl.RawSetString("dubbed", lua.LTrue)

			item, err := s.itemFromTable(tbl)
			So(err, ShouldBeNil)
			So(item.Name, ShouldEqual, "Bleach")
			So(item.URL, ShouldEqual, "https://example.com/bleach")
			So(item.Poster, ShouldEqual, "https://example.com/cover.jpg")
			So(item.Type, ShouldEqual, source.Anime)
			So(item.Dubbed, ShouldBeTrue)
			So(item.SourceID, ShouldEqual, "site custom")
		})

		Convey("Should fail when required field 'name' is missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("url", lua.LString("https://example.com"))

			_, err := s.itemFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLinkFromTable(t *testing.T) {
	Convey("linkFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()
		s := newLuaSource("site", Header{}, L)

		Convey("Should read quality strings and referers", func() {
			tbl := L.NewTable()
			tbl.RawSetString("url", lua.LString("https://example.com/stream.m3u8"))
			tbl.RawSetString("quality", lua.LString("1080p"))
			tbl.RawSetString("referer", lua.LString("https://example.com/"))

			link, err := s.linkFromTable(tbl)
			So(err, ShouldBeNil)
			So(link.URL, ShouldEqual, "https://example.com/stream.m3u8")
			So(link.Quality, ShouldEqual, source.Quality1080)
			So(link.Name, ShouldEqual, "site")
			So(link.RequiresReferer, ShouldBeTrue)
		})

		Convey("Should read numeric quality", func() {
			tbl := L.NewTable()
			tbl.RawSetString("url", lua.LString("https://example.com/a.mp4"))
			tbl.RawSetString("quality", lua.LNumber(480))
			tbl.RawSetString("referer", lua.LString("https://example.com/"))
			tbl.RawSetString("requires_referer", lua.LFalse)

			link, err := s.linkFromTable(tbl)
			So(err, ShouldBeNil)
			So(link.Quality, ShouldEqual, source.Quality480)
			So(link.RequiresReferer, ShouldBeFalse)
		})

		Convey("Should fail when URL is missing", func() {
			tbl := L.NewTable()
			tbl.RawSetString("quality", lua.LString("720p"))

			_, err := s.linkFromTable(tbl)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMapTable(t *testing.T) {
	Convey("mapTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		valid := L.NewTable()
		valid.RawSetString("data", lua.LString("ep1"))
		valid.RawSetString("name", lua.LString("Episode 1"))

		invalid := L.NewTable()
		invalid.RawSetString("name", lua.LString("No data"))

		Convey("Invalid entries are dropped", func() {
			tbl := L.NewTable()
			tbl.Append(invalid)
			tbl.Append(valid)
			tbl.Append(lua.LString("not a table"))

			episodes, err := mapTable(tbl, episodeFromTable)
			So(err, ShouldBeNil)
			So(episodes, ShouldHaveLength, 1)
			So(episodes[0].Name, ShouldEqual, "Episode 1")
		})

		Convey("All-invalid input surfaces the first error", func() {
			tbl := L.NewTable()
			tbl.Append(invalid)

			_, err := mapTable(tbl, episodeFromTable)
			So(err, ShouldNotBeNil)
		})

		Convey("Empty input is an empty result", func() {
			episodes, err := mapTable(L.NewTable(), episodeFromTable)
			So(err, ShouldBeNil)
			So(episodes, ShouldBeEmpty)
		})
	})
}
