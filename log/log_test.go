package log

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	"github.com/anisan-cli/streamkit/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("When logs are disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Then emissions are dropped", func() {
				So(Enabled(), ShouldBeFalse)
				So(func() { Infof("nothing %d", 1) }, ShouldNotPanic)
				So(func() { WithFields(Fields{"a": 1}).Info("nothing") }, ShouldNotPanic)
			})
		})

		Convey("When logs are enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)

			Convey("Then a daily file receives entries", func() {
				WithFields(Fields{"source": "anilibria"}).Info("homepage")
				path := filepath.Join(where.Logs(), fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
				content := string(lo.Must(filesystem.API().ReadFile(path)))
				So(content, ShouldContainSubstring, "homepage")
				So(content, ShouldContainSubstring, "anilibria")
			})
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
			logger = newDiscard()
			filesystem.SetOsFs()
		})
	})
}
