package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/anisan-cli/streamkit/source"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeSource struct {
	name    string
	results []*source.SearchResult
	err     error
}

func (s fakeSource) Name() string                      { return s.name }
func (s fakeSource) ID() string                        { return s.name }
func (fakeSource) Lang() string                        { return "en" }
func (fakeSource) Types() []source.TvType              { return []source.TvType{source.Anime} }
func (fakeSource) MainPages() []source.MainPageRequest { return nil }
func (fakeSource) Homepage(context.Context, int, source.MainPageRequest) (*source.HomePage, error) {
	return source.NewHomePage("", nil), nil
}

func (s fakeSource) Search(context.Context, string) ([]*source.SearchResult, error) {
	return s.results, s.err
}

func (fakeSource) Load(_ context.Context, url string) (*source.Detail, error) {
	d := &source.Detail{Name: "Loaded " + url, URL: url}
	d.SetEpisodes(source.Subbed, []*source.Episode{
		{Name: "Серия 1", Data: "[480p]https://cdn.test/1.m3u8"},
		{Name: "Серия 2", Data: "[720p]https://cdn.test/2.m3u8"},
		{Name: "Спешл", Data: "https://cdn.test/sp.m3u8"},
	})
	return d, nil
}

func (fakeSource) LoadLinks(_ context.Context, data string, _ bool, _ func(*source.Subtitle), onLink func(*source.ExtractorLink)) (bool, error) {
	onLink(&source.ExtractorLink{Name: "fake", URL: data + "#resolved"})
	return true, nil
}

func results(names ...string) []*source.SearchResult {
	out := make([]*source.SearchResult, len(names))
	for i, n := range names {
		out[i] = &source.SearchResult{Name: n, URL: "https://site.test/" + n}
	}
	return out
}

func TestWriteJsonResponse(t *testing.T) {
	Convey("writeJson", t, func() {
		Convey("Should produce valid JSON for an empty result list", func() {
			var buf bytes.Buffer
			opts := &Options{Query: "test", Json: true}
			err := writeJson(&buf, nil, opts)
			So(err, ShouldBeNil)

			var output Output
			err = json.Unmarshal(buf.Bytes(), &output)
			So(err, ShouldBeNil)
			So(output.Query, ShouldEqual, "test")
			So(output.Result, ShouldHaveLength, 0)
			So(buf.String(), ShouldContainSubstring, `"result":[]`)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given two sources", t, func() {
		var buf bytes.Buffer
		ctx := context.Background()
		opts := &Options{
			Out: &buf,
			Sources: []source.Source{
				fakeSource{name: "a", results: results("Bleach", "Naruto")},
				fakeSource{name: "b", results: results("Naruto Shippuden")},
			},
			Query: "naruto",
		}

		Convey("Without a picker every result is listed", func() {
			So(Run(ctx, opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "Bleach\thttps://site.test/Bleach\nNaruto\thttps://site.test/Naruto\nNaruto Shippuden\thttps://site.test/Naruto Shippuden\n")
		})

		Convey("A picker loads the chosen title", func() {
			picker, err := ParseResultPicker("last", "")
			So(err, ShouldBeNil)
			opts.ResultPicker = mo.Some(picker)

			So(Run(ctx, opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "1\tСерия 1\n2\tСерия 2\n3\tСпешл\n")
		})

		Convey("Links are resolved for the filtered episodes", func() {
			picker, _ := ParseResultPicker("exact", "naruto")
			filter, _ := ParseEpisodesFilter("2")
			opts.ResultPicker = mo.Some(picker)
			opts.EpisodesFilter = mo.Some(filter)
			opts.Links = true
			opts.Json = true

			So(Run(ctx, opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Source, ShouldEqual, "a")
			So(output.Result[0].Detail.Episodes, ShouldHaveLength, 1)
			So(output.Result[0].Streams, ShouldHaveLength, 1)
			So(output.Result[0].Streams[0].Episode, ShouldEqual, 2)
			So(output.Result[0].Streams[0].Links[0].URL, ShouldEqual, "[720p]https://cdn.test/2.m3u8#resolved")
		})

		Convey("A failing source is skipped", func() {
			opts.Sources = append(opts.Sources, fakeSource{name: "c", err: errors.New("down")})
			So(Run(ctx, opts), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Bleach")
		})

		Convey("All sources failing is an error", func() {
			opts.Sources = []source.Source{fakeSource{name: "c", err: errors.New("down")}}
			So(Run(ctx, opts), ShouldNotBeNil)
		})
	})
}

func TestPickers(t *testing.T) {
	Convey("ParseResultPicker", t, func() {
		list := results("One Piece", "One Punch Man", "Bleach")

		first, _ := ParseResultPicker("first", "")
		So(first(list).Name, ShouldEqual, "One Piece")
		So(first(nil), ShouldBeNil)

		index, err := ParseResultPicker("index", "10")
		So(err, ShouldBeNil)
		So(index(list).Name, ShouldEqual, "Bleach")

		exact, _ := ParseResultPicker("exact", "one punch man")
		So(exact(list).Name, ShouldEqual, "One Punch Man")

		closest, _ := ParseResultPicker("closest", "one punch mn")
		So(closest(list).Name, ShouldEqual, "One Punch Man")

		_, err = ParseResultPicker("index", "x")
		So(err, ShouldNotBeNil)

		_, err = ParseResultPicker("random", "")
		So(err, ShouldNotBeNil)
	})

	Convey("ParseEpisodesFilter", t, func() {
		d, _ := fakeSource{}.Load(context.Background(), "x")
		apply := func(description string) []uint16 {
			filter, err := ParseEpisodesFilter(description)
			So(err, ShouldBeNil)
			eps, err := filter(d.Episodes)
			So(err, ShouldBeNil)
			out := make([]uint16, len(eps))
			for i, e := range eps {
				out[i] = e.Index
			}
			return out
		}

		So(apply("first"), ShouldResemble, []uint16{1})
		So(apply("last"), ShouldResemble, []uint16{3})
		So(apply("all"), ShouldResemble, []uint16{1, 2, 3})
		So(apply("2-3"), ShouldResemble, []uint16{2, 3})
		So(apply("3-2"), ShouldBeEmpty)
		So(apply("9"), ShouldBeEmpty)
		So(apply("@серия@"), ShouldResemble, []uint16{1, 2})

		_, err := ParseEpisodesFilter("every other")
		So(err, ShouldNotBeNil)
	})
}
