package config

import (
	"errors"
	"testing"

	"github.com/anisan-cli/streamkit/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Registered keys are found", func() {
			f, err := Lookup(key.TrackerEnable)
			So(err, ShouldBeNil)
			So(f.Value, ShouldEqual, true)
		})

		Convey("Unknown keys suggest the closest one", func() {
			_, err := Lookup("tracker.endpont")
			var unknown *UnknownKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Closest, ShouldEqual, key.TrackerEndpoint)
			So(err.Error(), ShouldContainSubstring, "did you mean tracker.endpoint")
		})

		Convey("Prefixes match fuzzily", func() {
			_, err := Lookup("anilibria")
			var unknown *UnknownKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Closest, ShouldEqual, key.AnilibriaURL)
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Field.Parse", t, func() {
		Convey("Integers", func() {
			f := Default[key.NetworkTimeout]
			v, err := f.Parse([]string{"30"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 30)

			_, err = f.Parse([]string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans", func() {
			f := Default[key.TrackerEnable]
			v, err := f.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("Lists keep every value", func() {
			f := Default[key.DefaultSources]
			v, err := f.Parse([]string{"anilibria", "example"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"anilibria", "example"})
		})

		Convey("Values are required", func() {
			f := Default[key.Player]
			_, err := f.Parse(nil)
			So(err, ShouldNotBeNil)
		})
	})
}
