package chart_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/adapters/chart"
	"github.com/rajshree017/IPL-Cricket-Analysis/internal/domain/stats"
	"github.com/smartystreets/goconvey/convey"
)

func sampleResult() stats.Result {
	return stats.Result{
		{Key: "Mumbai Indians", Value: 5},
		{Key: "Chennai Super Kings", Value: 4},
		{Key: "Kolkata Knight Riders", Value: 2},
	}
}

func TestRenderer_Render(t *testing.T) {
	convey.Convey("Given a renderer writing into a temp directory", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		r := chart.New(chart.WithOutputDir(dir), chart.WithSize(800, 400))

		kinds := map[chart.Kind]string{
			chart.KindBar:           "bar.png",
			chart.KindHorizontalBar: "hbar.png",
			chart.KindLine:          "line.png",
			chart.KindPie:           "pie.png",
		}

		for kind, filename := range kinds {
			kind, filename := kind, filename
			convey.Convey("When rendering a "+string(kind)+" chart", func() {
				err := r.Render(ctx, kind, "Test Chart", sampleResult(), filename)

				convey.Convey("Then a decodable PNG should exist on disk", func() {
					convey.So(err, convey.ShouldBeNil)
					data, readErr := os.ReadFile(filepath.Join(dir, filename))
					convey.So(readErr, convey.ShouldBeNil)
					img, decodeErr := png.Decode(bytes.NewReader(data))
					convey.So(decodeErr, convey.ShouldBeNil)
					convey.So(img.Bounds().Dx(), convey.ShouldBeGreaterThan, 0)
				})
			})
		}

		convey.Convey("When rendering with an unknown chart kind", func() {
			err := r.Render(ctx, chart.Kind("scatter"), "Test", sampleResult(), "scatter.png")

			convey.Convey("Then it should fail with an output write error", func() {
				convey.So(errors.Is(err, chart.ErrOutputWrite), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the output directory is not writable", func() {
			missing := chart.New(chart.WithOutputDir(filepath.Join(dir, "does", "not", "exist")))
			err := missing.Render(ctx, chart.KindBar, "Test", sampleResult(), "bar.png")

			convey.Convey("Then it should fail with an output write error", func() {
				convey.So(errors.Is(err, chart.ErrOutputWrite), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When rendering over an existing file", func() {
			path := filepath.Join(dir, "overwrite.png")
			convey.So(os.WriteFile(path, []byte("stale"), 0o600), convey.ShouldBeNil)

			err := r.Render(ctx, chart.KindBar, "Test", sampleResult(), "overwrite.png")

			convey.Convey("Then the file should be replaced with a PNG", func() {
				convey.So(err, convey.ShouldBeNil)
				data, readErr := os.ReadFile(path)
				convey.So(readErr, convey.ShouldBeNil)
				_, decodeErr := png.Decode(bytes.NewReader(data))
				convey.So(decodeErr, convey.ShouldBeNil)
			})
		})
	})
}

func TestRenderer_RenderTossImpact(t *testing.T) {
	convey.Convey("Given a toss impact result", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		r := chart.New(chart.WithOutputDir(dir), chart.WithSize(800, 400))

		impact := stats.TossImpact{
			DecisionSplit: stats.Result{
				{Key: "field", Value: 10},
				{Key: "bat", Value: 6},
			},
			WinCorrelation: stats.Result{
				{Key: "field", Value: 60},
				{Key: "bat", Value: 50},
			},
		}

		convey.Convey("When rendering the composite image", func() {
			err := r.RenderTossImpact(ctx, impact, "toss.png")

			convey.Convey("Then one PNG should hold both views side by side", func() {
				convey.So(err, convey.ShouldBeNil)
				data, readErr := os.ReadFile(filepath.Join(dir, "toss.png"))
				convey.So(readErr, convey.ShouldBeNil)
				img, decodeErr := png.Decode(bytes.NewReader(data))
				convey.So(decodeErr, convey.ShouldBeNil)
				// Two half-width charts end up roughly the configured width.
				convey.So(img.Bounds().Dx(), convey.ShouldEqual, 800)
			})
		})
	})
}
