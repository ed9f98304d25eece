package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/anisan-cli/streamkit/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestPreCompileAndLoad(t *testing.T) {
	Convey("Given a script on disk", t, func() {
		filesystem.SetMemMapFs()
		path := "/sources/answer.lua"
		So(filesystem.API().WriteFile(path, []byte("Answer = 42"), os.ModePerm), ShouldBeNil)

		Convey("It runs in the state and is cached", func() {
			L := lua.NewState()
			defer L.Close()

			So(PreCompileAndLoad(L, path), ShouldBeNil)
			So(L.GetGlobal("Answer").String(), ShouldEqual, "42")

			key := lo.Must(protoKey(path))
			_, cached := bytecodeCache.Load(key)
			So(cached, ShouldBeTrue)

			Invalidate(path)
			_, cached = bytecodeCache.Load(key)
			So(cached, ShouldBeFalse)
		})

		Convey("Syntax errors are reported", func() {
			So(filesystem.API().WriteFile("/sources/bad.lua", []byte("function ("), os.ModePerm), ShouldBeNil)
			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, "/sources/bad.lua"), ShouldNotBeNil)
		})

		Convey("Missing files are reported", func() {
			L := lua.NewState()
			defer L.Close()
			So(PreCompileAndLoad(L, "/sources/missing.lua"), ShouldNotBeNil)
		})

		Reset(filesystem.SetOsFs)
	})
}

func TestSync(t *testing.T) {
	Convey("Given a repository serving a script", t, func() {
		filesystem.SetMemMapFs()
		remote := "Answer = 1"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing.lua" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(remote))
		}))
		defer server.Close()

		ctx := context.Background()
		path := "/sources/site.lua"

		Convey("A missing local file is installed", func() {
			changed, err := Sync(ctx, server.Client(), server.URL+"/site.lua", path)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldEqual, remote)

			Convey("An identical file is left alone", func() {
				changed, err := Sync(ctx, server.Client(), server.URL+"/site.lua", path)
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
			})

			Convey("A changed file is replaced", func() {
				remote = "Answer = 2"
				changed, err := Sync(ctx, server.Client(), server.URL+"/site.lua", path)
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)
				So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldEqual, "Answer = 2")
			})
		})

		Convey("A failed download keeps the local file", func() {
			So(filesystem.API().WriteFile(path, []byte("local"), os.ModePerm), ShouldBeNil)
			changed, err := Sync(ctx, server.Client(), server.URL+"/missing.lua", path)
			So(err, ShouldNotBeNil)
			So(changed, ShouldBeFalse)
			So(string(lo.Must(filesystem.API().ReadFile(path))), ShouldEqual, "local")
		})

		Reset(filesystem.SetOsFs)
	})
}
