package icon

import (
	"testing"

	"github.com/abouramd/live-stream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Every registered icon renders in every variant", t, func() {
		for i := range icons {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				So(Get(i), ShouldNotBeEmpty)
			}
		}
	})

	Convey("Plain icons are ASCII", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Live), ShouldEqual, "LIVE")
		So(Get(HD), ShouldEqual, "HD")
	})

	Convey("An unknown variant renders nothing", t, func() {
		viper.Set(key.IconsVariant, "")
		So(Get(Success), ShouldBeEmpty)
	})

	Convey("An unknown icon renders nothing", t, func() {
		viper.Set(key.IconsVariant, "plain")
		So(Get(Icon(-1)), ShouldBeEmpty)
	})
}
