package version

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare orders semantic versions", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.1", "0.10.0", -1},
			{"2.0.0", "v10.0.0", -1},
			{"1.2", "1.2.0", 0},
			{"1.3.0-rc1", "1.3.0", -1},
			{"1.3.0", "1.3.0-rc1", 1},
			{"1.3.0-rc2", "1.3.0-rc1", 1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		for _, bad := range []string{"latest", "1.2.3.4", "1.-2.0", ""} {
			_, err := Compare(bad, "1.0.0")
			So(err, ShouldNotBeNil)
		}
	})
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		tag := "v1.4.2"
		status := http.StatusOK
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = fmt.Fprintf(w, `{"tag_name":%q}`, tag)
		}))
		defer server.Close()

		Convey("The tag is returned without its prefix", func() {
			version, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldBeNil)
			So(version, ShouldEqual, "1.4.2")
		})

		Convey("An empty tag is an error", func() {
			tag = ""
			_, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldNotBeNil)
		})

		Convey("A failed request is an error", func() {
			status = http.StatusForbidden
			_, err := fetchLatest(context.Background(), server.Client(), server.URL)
			So(err, ShouldNotBeNil)
		})
	})
}
