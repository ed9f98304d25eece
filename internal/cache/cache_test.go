package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/where"
	. "github.com/smartystreets/goconvey/convey"
)

type entry struct {
	Status int    `json:"status"`
	Body   string `json:"body"`
}

func TestCache(t *testing.T) {
	Convey("Given an in-memory cache directory", t, func() {
		filesystem.SetMemMapFs()

		Convey("GenerateKey is stable and case-insensitive for the request", func() {
			So(GenerateKey("https://a.test/x y", "get"), ShouldEqual, GenerateKey("HTTPS://A.TEST/xy", "GET"))
			So(GenerateKey("https://a.test", "GET"), ShouldNotEqual, GenerateKey("https://a.test", "POST"))
		})

		Convey("Written entries can be read back", func() {
			key := GenerateKey("https://a.test", "GET")
			So(Write(key, entry{Status: 200, Body: "ok"}), ShouldBeNil)

			var got entry
			So(Read(key, &got), ShouldBeTrue)
			So(got, ShouldResemble, entry{Status: 200, Body: "ok"})
		})

		Convey("Missing entries are a miss", func() {
			var got entry
			So(Read("nope", &got), ShouldBeFalse)
		})

		Convey("Expired entries are a miss", func() {
			key := GenerateKey("https://old.test", "GET")
			So(Write(key, entry{Status: 200}), ShouldBeNil)

			old := time.Now().Add(-TTL - time.Hour)
			So(filesystem.API().Chtimes(filepath.Join(where.Responses(), key), old, old), ShouldBeNil)

			var got entry
			So(Read(key, &got), ShouldBeFalse)
		})

		Reset(filesystem.SetOsFs)
	})
}
