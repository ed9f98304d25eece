package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/anisan-cli/streamkit/constant"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDo(t *testing.T) {
	Convey("Given an upstream server", t, func() {
		var got *http.Request
		var form url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			_ = r.ParseForm()
			form = r.PostForm
			switch r.URL.Path {
			case "/missing":
				w.WriteHeader(http.StatusNotFound)
			default:
				_, _ = w.Write([]byte(`{"ok":true}`))
			}
		}))
		defer server.Close()

		ctx := context.Background()

		Convey("Get sends the default user agent and extra headers", func() {
			body, err := Get(ctx, server.URL+"/page", map[string]string{"X-Requested-With": "XMLHttpRequest"})
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, `{"ok":true}`)
			So(got.Header.Get("User-Agent"), ShouldEqual, constant.UserAgent)
			So(got.Header.Get("X-Requested-With"), ShouldEqual, "XMLHttpRequest")
		})

		Convey("PostForm sends an urlencoded body", func() {
			_, err := PostForm(ctx, server.URL+"/public/search.php", url.Values{"search": {"Наруто"}, "small": {"1"}}, nil)
			So(err, ShouldBeNil)
			So(got.Method, ShouldEqual, http.MethodPost)
			So(got.Header.Get("Content-Type"), ShouldEqual, "application/x-www-form-urlencoded")
			So(form.Get("search"), ShouldEqual, "Наруто")
			So(form.Get("small"), ShouldEqual, "1")
		})

		Convey("Non-2xx responses become a StatusError", func() {
			_, err := Get(ctx, server.URL+"/missing", nil)
			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(statusErr.Error(), ShouldContainSubstring, "HTTP 404")
		})

		Convey("A cancelled context aborts the request", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := Get(cancelled, server.URL, nil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestFingerprintDo(t *testing.T) {
	Convey("Given a plain HTTP server", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte(r.Header.Get("User-Agent") + "|" + r.Header.Get("X-Test")))
		}))
		defer server.Close()

		Convey("FingerprintDo returns status and body without failing on non-2xx", func() {
			body, status, err := FingerprintDo(context.Background(), http.MethodGet, server.URL, map[string]string{"X-Test": "1"}, "")
			So(err, ShouldBeNil)
			So(status, ShouldEqual, http.StatusTeapot)
			So(body, ShouldEqual, constant.UserAgent+"|1")
		})
	})
}
