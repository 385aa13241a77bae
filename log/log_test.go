package log

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abouramd/live-stream/filesystem"
	"github.com/abouramd/live-stream/key"
	"github.com/abouramd/live-stream/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		viper.Reset()

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)

			Convey("No log file is created", func() {
				path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
				So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Convey("Entries end up in today's file", func() {
				WithFields(Fields{"source": "alpha"}).Debug("resolving streams")
				Infof("fetched %d matches", 3)

				path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
				contents := string(lo.Must(filesystem.API().ReadFile(path)))
				So(contents, ShouldContainSubstring, "resolving streams")
				So(contents, ShouldContainSubstring, "source=alpha")
				So(strings.Contains(contents, "fetched 3 matches"), ShouldBeTrue)
			})
		})

		Reset(func() {
			viper.Reset()
			enabled = false
		})
	})
}
