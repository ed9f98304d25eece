package custom

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/source"
	. "github.com/smartystreets/goconvey/convey"
)

const script = `-------------------------------
-- @name    Example
-- @url     https://example.com
-- @lang    id
-- @types   AsianDrama, Movie
-------------------------------

Sections = {
	{ name = "Latest", data = "latest" },
	{ name = "Popular", data = "popular" },
}

function MainPage(page, data)
	return {
		{ name = data .. " " .. page, url = "https://example.com/" .. data .. "/" .. page },
		{ name = "missing url" },
	}
end

function Search(query)
	if query == "boom" then
		error("site is down")
	end
	return {
		{ name = "Result for " .. query, url = "https://example.com/r", type = "AsianDrama" },
	}
end

function Load(url)
	return {
		name = "Drama",
		type = "AsianDrama",
		year = "2021",
		tags = "Romance, Comedy",
		episodes = {
			{ data = "https://example.com/e1", name = "Episode 1" },
			{ name = "no data" },
			{ data = "https://example.com/e2", name = "Episode 2" },
		},
	}
end

function LoadLinks(data, is_casting)
	return {
		{ url = data .. ".m3u8", quality = "720p", referer = "https://example.com/" },
		{ url = data .. ".mp4", quality = 360 },
	}, {
		{ lang = "id", url = data .. ".vtt" },
	}
end
`

func TestLuaSource(t *testing.T) {
	Convey("Given a Lua adapter", t, func() {
		filesystem.SetMemMapFs()
		path := "/sources/example.lua"
		So(filesystem.API().WriteFile(path, []byte(script), os.ModePerm), ShouldBeNil)

		src, err := LoadSource(path)
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("Metadata comes from the header and globals", func() {
			So(src.Name(), ShouldEqual, "example")
			So(src.ID(), ShouldEqual, "example custom")
			So(src.Lang(), ShouldEqual, "id")
			So(src.Types(), ShouldResemble, []source.TvType{source.AsianDrama, source.Movie})
			So(src.MainPages(), ShouldResemble, []source.MainPageRequest{
				{Name: "Latest", Data: "latest"},
				{Name: "Popular", Data: "popular"},
			})
		})

		Convey("Homepage passes page and section data", func() {
			page, err := src.Homepage(ctx, 3, source.MainPageRequest{Name: "Popular", Data: "popular"})
			So(err, ShouldBeNil)
			So(page.Name, ShouldEqual, "Popular")
			So(page.Items, ShouldHaveLength, 1)
			So(page.Items[0].Name, ShouldEqual, "popular 3")
		})

		Convey("Search maps results", func() {
			results, err := src.Search(ctx, "love")
			So(err, ShouldBeNil)
			So(results, ShouldHaveLength, 1)
			So(results[0].Name, ShouldEqual, "Result for love")
			So(results[0].Type, ShouldEqual, source.AsianDrama)
		})

		Convey("Script errors become LoadErrors", func() {
			_, err := src.Search(ctx, "boom")
			So(errors.Is(err, source.ErrLoad), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "site is down")
		})

		Convey("Load maps the detail and drops invalid episodes", func() {
			detail, err := src.Load(ctx, "https://example.com/r")
			So(err, ShouldBeNil)
			So(detail.Name, ShouldEqual, "Drama")
			So(detail.URL, ShouldEqual, "https://example.com/r")
			So(detail.Year, ShouldEqual, 2021)
			So(detail.Tags, ShouldResemble, []string{"Romance", "Comedy"})
			So(detail.Episodes, ShouldHaveLength, 2)
			So(detail.Episodes[1].Index, ShouldEqual, 2)
		})

		Convey("LoadLinks emits links and subtitles", func() {
			links, err := source.CollectLinks(ctx, src, "https://example.com/e1", false)
			So(err, ShouldBeNil)
			So(links.Links, ShouldHaveLength, 2)
			So(links.Links[0].URL, ShouldEqual, "https://example.com/e1.m3u8")
			So(links.Links[0].Quality, ShouldEqual, source.Quality720)
			So(links.Links[0].RequiresReferer, ShouldBeTrue)
			So(links.Links[1].Quality, ShouldEqual, source.Quality360)
			So(links.Subtitles, ShouldHaveLength, 1)
			So(links.Subtitles[0].Lang, ShouldEqual, "id")
		})

		Reset(filesystem.SetOsFs)
	})

	Convey("Given a script missing a required function", t, func() {
		filesystem.SetMemMapFs()
		path := "/sources/partial.lua"
		So(filesystem.API().WriteFile(path, []byte("function Search(q) return {} end"), os.ModePerm), ShouldBeNil)

		_, err := LoadSource(path)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "Load")

		Reset(filesystem.SetOsFs)
	})
}
