package config

import (
	"strings"
	"testing"

	"github.com/abouramd/live-stream/filesystem"
	"github.com/abouramd/live-stream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		viper.Reset()

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldEqual, field.Value)
			}
		})

		Convey("Should expose the upstream defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.APIBaseURL), ShouldEqual, "https://streamed.pk")
			So(viper.GetString(key.ResolverCategory), ShouldEqual, "all-today")
			So(viper.GetInt(key.WatchTimeout), ShouldEqual, 20)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("LIVESTREAM_WATCH_TIMEOUT", "5")
			So(Setup(), ShouldBeNil)
			So(viper.GetInt(key.WatchTimeout), ShouldEqual, 5)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("resolver.index_ttl"), ShouldEqual, "resolver_index_ttl")
		})

		Reset(viper.Reset)
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.WatchBrowser]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "LIVESTREAM_WATCH_BROWSER")
		})

		Convey("It marshals its type and default", func() {
			data, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"type":"string"`)
			So(string(data), ShouldContainSubstring, `"key":"watch.browser"`)
		})

		Convey("Every key is registered once with a description", func() {
			for name, f := range Default {
				So(f.Key, ShouldEqual, name)
				So(strings.TrimSpace(f.Description), ShouldNotBeEmpty)
			}
		})
	})
}
