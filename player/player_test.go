package player

import (
	"context"
	"testing"

	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCommand(t *testing.T) {
	Convey("Given a link that requires a referer", t, func() {
		link := &source.ExtractorLink{
			URL:             "https://cache.libria.fun/videos/1/720/playlist.m3u8",
			Referer:         "https://anilibria.tv/",
			RequiresReferer: true,
		}
		m := FromLink(link, "Ванпанчмен\nСерия 1", []*source.Subtitle{{Lang: "ru", URL: "https://s.test/1.vtt"}, {Lang: "en"}})
		ctx := context.Background()

		Convey("FromLink carries headers and subtitles", func() {
			So(m.Headers, ShouldResemble, map[string]string{"Referer": "https://anilibria.tv/"})
			So(m.Subtitles, ShouldResemble, []string{"https://s.test/1.vtt"})
		})

		Convey("mpv receives the referer as a header", func() {
			cmd, err := Command(ctx, "mpv", m)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldResemble, []string{
				"mpv",
				"--no-terminal",
				"--force-window=yes",
				"--force-media-title=Ванпанчмен Серия 1",
				"--referrer=https://anilibria.tv/",
				"--http-header-fields=Referer: https://anilibria.tv/",
				"--sub-file=https://s.test/1.vtt",
				"https://cache.libria.fun/videos/1/720/playlist.m3u8",
			})
		})

		Convey("iina gets prefixed mpv options", func() {
			cmd, err := Command(ctx, "IINA", m)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldContain, "--mpv-referrer=https://anilibria.tv/")
		})

		Convey("vlc gets its own flags", func() {
			cmd, err := Command(ctx, "vlc", m)
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldContain, "--http-referrer=https://anilibria.tv/")
			So(cmd.Args, ShouldContain, "--sub-file=https://s.test/1.vtt")
		})

		Convey("Links without a referer get no header flags", func() {
			link.RequiresReferer = false
			cmd, err := Command(ctx, "mpv", FromLink(link, "x", nil))
			So(err, ShouldBeNil)
			So(cmd.Args, ShouldHaveLength, 5)
		})

		Convey("Unknown players are rejected", func() {
			_, err := Command(ctx, "potplayer", m)
			So(err, ShouldNotBeNil)
		})

		Convey("Flag-like targets are rejected", func() {
			m.URL = "--script=evil.lua"
			_, err := Command(ctx, "mpv", m)
			So(err, ShouldNotBeNil)

			m.URL = "file:///etc/passwd"
			_, err = Command(ctx, "mpv", m)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestHeaderFields(t *testing.T) {
	Convey("headerFields sorts and escapes", t, func() {
		So(headerFields(map[string]string{
			"User-Agent": "a,b",
			"Referer":    "https://x/",
		}), ShouldEqual, "Referer: https://x/,User-Agent: a%2Cb")
	})
}

func TestName(t *testing.T) {
	Convey("Name falls back to mpv", t, func() {
		viper.Set(key.Player, "")
		So(Name(), ShouldEqual, "mpv")

		viper.Set(key.Player, "vlc")
		So(Name(), ShouldEqual, "vlc")

		Reset(func() { viper.Set(key.Player, "mpv") })
	})
}
