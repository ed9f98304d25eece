package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type testSource struct {
	links []*ExtractorLink
	subs  []*Subtitle
	ok    bool
	err   error
}

func (testSource) Name() string                 { return "Test Source" }
func (testSource) ID() string                   { return "test" }
func (testSource) Lang() string                 { return "en" }
func (testSource) Types() []TvType              { return []TvType{Anime} }
func (testSource) MainPages() []MainPageRequest { return nil }

func (testSource) Homepage(context.Context, int, MainPageRequest) (*HomePage, error) {
	return NewHomePage("", nil), nil
}

func (testSource) Search(context.Context, string) ([]*SearchResult, error) { return nil, nil }
func (testSource) Load(context.Context, string) (*Detail, error)           { return nil, nil }

func (s testSource) LoadLinks(_ context.Context, _ string, _ bool, onSubtitle func(*Subtitle), onLink func(*ExtractorLink)) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, sub := range s.subs {
		onSubtitle(sub)
	}
	for _, l := range s.links {
		onLink(l)
	}
	return s.ok, nil
}

func TestCollectLinks(t *testing.T) {
	Convey("Given a source emitting links", t, func() {
		src := testSource{
			ok: true,
			links: []*ExtractorLink{
				{Name: "a", URL: "https://a", Quality: Quality480},
				{Name: "b", URL: "https://b", Quality: Quality720},
			},
			subs: []*Subtitle{{Lang: "en", URL: "https://s"}},
		}

		Convey("When links are collected", func() {
			links, err := CollectLinks(context.Background(), src, "data", false)

			Convey("Then emission order is kept", func() {
				So(err, ShouldBeNil)
				So(links.Links, ShouldHaveLength, 2)
				So(links.Links[0].URL, ShouldEqual, "https://a")
				So(links.Links[1].URL, ShouldEqual, "https://b")
				So(links.Subtitles, ShouldHaveLength, 1)
			})
		})

		Convey("When the source reports failure", func() {
			src.ok = false
			_, err := CollectLinks(context.Background(), src, "data", false)
			So(errors.Is(err, ErrLoad), ShouldBeTrue)
		})

		Convey("When the source errors", func() {
			src.err = errors.New("boom")
			_, err := CollectLinks(context.Background(), src, "data", false)
			So(err, ShouldEqual, src.err)
		})
	})
}

func TestQualityFromName(t *testing.T) {
	Convey("QualityFromName", t, func() {
		cases := map[string]Quality{
			"720p":  Quality720,
			"1080P": Quality1080,
			"480":   Quality480,
			"4k":    Quality2160,
			"HD":    Quality720,
			"":      QualityUnknown,
			"best":  QualityUnknown,
			"-1p":   QualityUnknown,
		}

		for name, want := range cases {
			So(QualityFromName(name), ShouldEqual, want)
		}

		So(Quality720.String(), ShouldEqual, "720p")
		So(QualityUnknown.String(), ShouldEqual, "unknown")
	})
}

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		So(Classify("Фильм", "Фильм", "ТВ"), ShouldEqual, Movie)
		So(Classify("ФИЛЬМ, 1 эп.", "Фильм", "ТВ"), ShouldEqual, Movie)
		So(Classify("ТВ (>12 эп.)", "Фильм", "ТВ"), ShouldEqual, Anime)
		So(Classify("OVA", "Фильм", "ТВ"), ShouldEqual, OVA)
		So(Classify("", "Фильм", "ТВ"), ShouldEqual, OVA)
	})

	Convey("ParseTvType", t, func() {
		So(ParseTvType("anime"), ShouldEqual, Anime)
		So(ParseTvType(" AnimeMovie "), ShouldEqual, AnimeMovie)
		So(ParseTvType("podcast"), ShouldEqual, Others)
		So(AnimeMovie.IsMovie(), ShouldBeTrue)
		So(OVA.IsMovie(), ShouldBeFalse)
	})
}

func TestLoadError(t *testing.T) {
	Convey("LoadError", t, func() {
		cause := errors.New("unexpected EOF")
		err := fmt.Errorf("wrapped: %w", &LoadError{Op: "homepage", Reason: "Invalid json responses", Err: cause})

		So(errors.Is(err, ErrLoad), ShouldBeTrue)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "Invalid json responses")

		var le *LoadError
		So(errors.As(err, &le), ShouldBeTrue)
		So(le.Op, ShouldEqual, "homepage")
	})
}

func TestHomePage(t *testing.T) {
	Convey("NewHomePage", t, func() {
		empty := NewHomePage("Новое", nil)
		So(empty.Items, ShouldNotBeNil)
		So(empty.HasNext, ShouldBeFalse)

		page := NewHomePage("Новое", []*SearchResult{{Name: "x"}})
		So(page.HasNext, ShouldBeTrue)
		So(page.Name, ShouldEqual, "Новое")
	})

	Convey("ExtractorLink.Headers", t, func() {
		l := &ExtractorLink{Referer: "https://anilibria.tv/", RequiresReferer: true}
		So(l.Headers(), ShouldResemble, map[string]string{"Referer": "https://anilibria.tv/"})

		l.RequiresReferer = false
		So(l.Headers(), ShouldBeEmpty)
	})
}

func TestBestLink(t *testing.T) {
	Convey("BestLink prefers quality, then order", t, func() {
		links := []*ExtractorLink{
			{URL: "a", Quality: Quality480},
			{URL: "b", Quality: Quality1080},
			{URL: "c", Quality: Quality1080},
			{URL: "d", Quality: QualityUnknown},
		}
		So(BestLink(links).URL, ShouldEqual, "b")
		So(BestLink(nil), ShouldBeNil)
	})
}
