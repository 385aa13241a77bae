package cache

import (
	"testing"
	"time"

	"github.com/abouramd/live-stream/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestPrune(t *testing.T) {
	Convey("Given a cache directory with old and fresh files", t, func() {
		filesystem.SetMemMapFs()
		fsys := filesystem.API()

		now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		So(afero.WriteFile(fsys, "/cache/old.json", []byte("{}"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fsys, "/cache/nested/old.json", []byte("{}"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fsys, "/cache/fresh.json", []byte("{}"), 0o644), ShouldBeNil)

		old := now.Add(-2 * TTL)
		So(fsys.Chtimes("/cache/old.json", old, old), ShouldBeNil)
		So(fsys.Chtimes("/cache/nested/old.json", old, old), ShouldBeNil)
		So(fsys.Chtimes("/cache/fresh.json", now, now), ShouldBeNil)

		Convey("Only the stale files are removed", func() {
			So(Prune("/cache", TTL, now), ShouldEqual, 2)

			exists, _ := afero.Exists(fsys, "/cache/fresh.json")
			So(exists, ShouldBeTrue)

			exists, _ = afero.Exists(fsys, "/cache/old.json")
			So(exists, ShouldBeFalse)
		})

		Convey("A missing directory removes nothing", func() {
			So(Prune("/nowhere", TTL, now), ShouldEqual, 0)
		})
	})
}
