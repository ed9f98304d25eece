package query

import (
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/anisan-cli/streamkit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestQuery(t *testing.T) {
	Convey("Given query history", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.SearchShowQuerySuggestions, true)
		So(cacher.Set(make(map[string]*queryRecord)), ShouldBeNil)
		forgetSuggestions()

		So(Remember("Naruto", 1), ShouldBeNil)
		So(Remember("bleach", 10), ShouldBeNil)
		So(Remember("black clover", 3), ShouldBeNil)

		Convey("Then suggestions should be sorted by rank", func() {
			So(SuggestMany("bl"), ShouldResemble, []string{"bleach", "black clover"})
			So(Suggest("nar").MustGet(), ShouldEqual, "naruto")
		})

		Convey("Remembering again reorders the cached suggestions", func() {
			_ = SuggestMany("bl")
			So(Remember("black clover", 20), ShouldBeNil)
			So(SuggestMany("bl")[0], ShouldEqual, "black clover")
		})

		Convey("Forgotten queries are not suggested", func() {
			So(Forget("BLEACH "), ShouldBeNil)
			So(SuggestMany("bl"), ShouldResemble, []string{"black clover"})
		})

		Convey("The exact query is not suggested to itself", func() {
			So(SuggestMany("naruto"), ShouldBeEmpty)
		})

		Convey("Blank queries are ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(Suggest("zzz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Suggestions can be turned off", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("bl"), ShouldBeEmpty)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  NARUTO  "), ShouldEqual, "naruto")
		})

		Reset(func() {
			forgetSuggestions()
			filesystem.SetOsFs()
		})
	})
}
