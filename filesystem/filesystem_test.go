package filesystem

import (
	"os"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestWriteFileAtomic(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		SetMemMapFs()

		Convey("WriteFileAtomic creates parents and leaves no temp file", func() {
			path := "/sources/nested/site.lua"
			So(WriteFileAtomic(path, []byte("print(1)"), os.ModePerm), ShouldBeNil)

			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, "print(1)")
			So(lo.Must(API().Exists(path+".tmp")), ShouldBeFalse)
		})

		Convey("WriteFileAtomic replaces existing content", func() {
			path := "/sources/site.lua"
			So(WriteFileAtomic(path, []byte("old"), os.ModePerm), ShouldBeNil)
			So(WriteFileAtomic(path, []byte("new"), os.ModePerm), ShouldBeNil)
			So(string(lo.Must(API().ReadFile(path))), ShouldEqual, "new")
		})

		Reset(SetOsFs)
	})
}
