package chart

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/rajshree017/IPL-Cricket-Analysis/internal/domain/stats"
)

// RenderTossImpact draws the two toss views into a single image: a pie of
// the toss-win to match-win percentage on the left, a bar of the decision
// split on the right.
func (r *Renderer) RenderTossImpact(ctx context.Context, impact stats.TossImpact, filename string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}

	half := r.width / 2

	labels := make([]string, len(impact.WinCorrelation))
	for i, e := range impact.WinCorrelation {
		labels[i] = fmt.Sprintf("%s %.1f%%", e.Key, e.Value)
	}
	pie, err := charts.PieRender(
		impact.WinCorrelation.Values(),
		charts.LegendLabelsOptionFunc(labels),
		charts.TitleTextOptionFunc("Toss Win -> Match Win %"),
		charts.WidthOptionFunc(half),
		charts.HeightOptionFunc(r.height),
		charts.PNGTypeOption(),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, filename, err)
	}

	bar, err := charts.BarRender(
		[][]float64{impact.DecisionSplit.Values()},
		charts.XAxisDataOptionFunc(impact.DecisionSplit.Keys()),
		charts.TitleTextOptionFunc("Toss Decision: Bat vs Field"),
		charts.WidthOptionFunc(half),
		charts.HeightOptionFunc(r.height),
		charts.PNGTypeOption(),
	)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, filename, err)
	}

	combined, err := composeSideBySide(pie, bar)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOutputWrite, filename, err)
	}

	return r.write(filename, combined)
}

// composeSideBySide decodes two rendered PNGs and draws them onto one
// canvas, left then right.
func composeSideBySide(left, right *charts.Painter) ([]byte, error) {
	leftBuf, err := left.Bytes()
	if err != nil {
		return nil, err
	}
	rightBuf, err := right.Bytes()
	if err != nil {
		return nil, err
	}

	leftImg, err := png.Decode(bytes.NewReader(leftBuf))
	if err != nil {
		return nil, err
	}
	rightImg, err := png.Decode(bytes.NewReader(rightBuf))
	if err != nil {
		return nil, err
	}

	lb := leftImg.Bounds()
	rb := rightImg.Bounds()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, lb.Dx(), lb.Dy()), leftImg, lb.Min, draw.Src)
	draw.Draw(canvas, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), rightImg, rb.Min, draw.Src)

	var out bytes.Buffer
	if err := png.Encode(&out, canvas); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
