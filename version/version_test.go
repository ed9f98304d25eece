package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"2.0.0", "v1.99.99", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		filesystem.SetMemMapFs()
		So(versionCacher.Set(""), ShouldBeNil)

		hits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v1.4.2"}`))
		}))
		defer server.Close()

		previous := ReleasesURL
		ReleasesURL = server.URL

		Convey("The tag is returned without its prefix and cached", func() {
			ver, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "1.4.2")

			ver, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(ver, ShouldEqual, "1.4.2")
			So(hits, ShouldEqual, 1)
		})

		Reset(func() {
			ReleasesURL = previous
			filesystem.SetOsFs()
		})
	})
}
