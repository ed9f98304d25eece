package util

import (
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		So(SanitizeFilename("file:name?.lua"), ShouldEqual, "file_name_.lua")
		So(SanitizeFilename("my  source"), ShouldEqual, "my_source")
		So(SanitizeFilename("-example-"), ShouldEqual, "example")
		So(SanitizeFilename("Дорамы"), ShouldEqual, "Дорамы")
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "source", "sources"), ShouldEqual, "1 source")
		So(Quantify(0, "source", "sources"), ShouldEqual, "0 sources")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize(""), ShouldEqual, "")
		So(Capitalize("новое"), ShouldEqual, "Новое")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("sources/example.lua"), ShouldEqual, "example")
		So(FileStem("example"), ShouldEqual, "example")
		So(FileStem("dir.v2/example"), ShouldEqual, "example")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Directories are removed with their contents", func() {
			So(fs.MkdirAll("/tmp/a", 0o755), ShouldBeNil)
			So(fs.WriteFile("/tmp/a/b.txt", []byte("x"), 0o644), ShouldBeNil)
			So(Delete("/tmp/a"), ShouldBeNil)
			exists, _ := fs.Exists("/tmp/a/b.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths are ignored", func() {
			So(Delete("/nowhere"), ShouldBeNil)
		})

		Reset(filesystem.SetOsFs)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 2)
		So(s.Pop(), ShouldEqual, 1)
		So(s.Pop(), ShouldEqual, 0)
	})
}
