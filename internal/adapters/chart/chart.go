// Package chart renders aggregation results to PNG files.
package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	charts "github.com/vicanso/go-charts/v2"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/domain/stats"
)

// Kind selects the chart family for a render call.
type Kind string

// Supported chart kinds.
const (
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "horizontal-bar"
	KindLine          Kind = "line"
	KindPie           Kind = "pie"
)

// File permission constants.
const (
	chartFilePermission = 0644
)

// Renderer writes one PNG per analysis into its output directory.
type Renderer struct {
	outputDir string
	width     int
	height    int
}

// New creates a Renderer with configuration options.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		outputDir: ".",
		width:     defaultWidth,
		height:    defaultHeight,
	}

	// Apply all options
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render draws one result as the given chart kind and writes it to
// filename inside the output directory. Existing files are overwritten.
func (r *Renderer) Render(ctx context.Context, kind Kind, title string, result stats.Result, filename string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	painter, err := r.paint(kind, title, result)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, filename, err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, filename, err)
	}

	return r.write(filename, buf)
}

// paint builds the go-charts painter for one chart kind.
func (r *Renderer) paint(kind Kind, title string, result stats.Result) (*charts.Painter, error) {
	values := [][]float64{result.Values()}

	switch kind {
	case KindBar:
		return charts.BarRender(
			values,
			charts.XAxisDataOptionFunc(result.Keys()),
			charts.TitleTextOptionFunc(title),
			charts.WidthOptionFunc(r.width),
			charts.HeightOptionFunc(r.height),
			charts.PNGTypeOption(),
		)
	case KindHorizontalBar:
		// Reverse so the largest measure sits at the top of the chart.
		return charts.HorizontalBarRender(
			[][]float64{lo.Reverse(result.Values())},
			charts.YAxisDataOptionFunc(lo.Reverse(result.Keys())),
			charts.TitleTextOptionFunc(title),
			charts.WidthOptionFunc(r.width),
			charts.HeightOptionFunc(r.height),
			charts.PNGTypeOption(),
		)
	case KindLine:
		return charts.LineRender(
			values,
			charts.XAxisDataOptionFunc(result.Keys()),
			charts.TitleTextOptionFunc(title),
			charts.WidthOptionFunc(r.width),
			charts.HeightOptionFunc(r.height),
			charts.PNGTypeOption(),
		)
	case KindPie:
		return charts.PieRender(
			result.Values(),
			charts.LegendLabelsOptionFunc(result.Keys()),
			charts.TitleTextOptionFunc(title),
			charts.WidthOptionFunc(r.width),
			charts.HeightOptionFunc(r.height),
			charts.PNGTypeOption(),
		)
	default:
		return nil, fmt.Errorf("unsupported chart kind: %s", kind)
	}
}

// write stores one rendered image under the output directory.
func (r *Renderer) write(filename string, data []byte) error {
	path := filepath.Join(r.outputDir, filename)
	if err := os.WriteFile(path, data, chartFilePermission); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
