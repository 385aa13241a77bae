package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given a GacheFs bound to its own filesystem", t, func() {
		SetMemMapFs()
		own := afero.NewMemMapFs()
		g := GacheFs{Fs: own}

		Convey("Writes land on the bound filesystem only", func() {
			So(g.MkdirAll("/cache", os.ModePerm), ShouldBeNil)
			f, err := g.OpenFile("/cache/index.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			exists, _ := afero.Exists(own, "/cache/index.json")
			So(exists, ShouldBeTrue)

			exists, _ = API().Exists("/cache/index.json")
			So(exists, ShouldBeFalse)
		})

		Convey("A zero GacheFs falls back to the global backend", func() {
			var global GacheFs
			So(global.MkdirAll("/shared", os.ModePerm), ShouldBeNil)
			isDir, _ := API().IsDir("/shared")
			So(isDir, ShouldBeTrue)
		})
	})
}
