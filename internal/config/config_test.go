package config_test

import (
	"testing"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.MatchesPath, convey.ShouldEqual, "matches.csv")
			convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "deliveries.csv")
			convey.So(cfg.OutputDir, convey.ShouldEqual, ".")
			convey.So(cfg.TopTeams, convey.ShouldEqual, 8)
			convey.So(cfg.TopScorers, convey.ShouldEqual, 10)
			convey.So(cfg.TopWicketTakers, convey.ShouldEqual, 10)
			convey.So(cfg.TopAwards, convey.ShouldEqual, 10)
			convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
		})
	})
}
