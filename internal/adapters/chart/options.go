// Package chart renders aggregation results to PNG files.
package chart

// Default chart dimensions in pixels.
const (
	defaultWidth  = 1200
	defaultHeight = 600
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithOutputDir sets the directory chart files are written to.
func WithOutputDir(dir string) Option {
	return func(r *Renderer) {
		if dir != "" {
			r.outputDir = dir
		}
	}
}

// WithSize sets the pixel dimensions of rendered charts.
func WithSize(width, height int) Option {
	return func(r *Renderer) {
		if width > 0 && height > 0 {
			r.width = width
			r.height = height
		}
	}
}
