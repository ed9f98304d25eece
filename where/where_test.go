package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override", func() {
			custom := filepath.Join(os.TempDir(), "streamkit-where-test")
			So(os.Setenv(EnvConfigPath, custom), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, custom)
			So(Sources(), ShouldEqual, filepath.Join(custom, "sources"))
			So(History(), ShouldEqual, filepath.Join(custom, "history.json"))
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(Tracker(), ShouldStartWith, path)
			So(Queries(), ShouldStartWith, path)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}
