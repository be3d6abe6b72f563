package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	HitPixels        int           // Pixels whose primary ray hit a shape
	BackgroundPixels int           // Pixels whose primary ray hit nothing
	RenderTime       time.Duration // Wall time spent in Render
	AverageLuminance float64       // Mean Rec. 709 luminance of the clamped image
}

// CoveragePercent returns the share of pixels that hit geometry
func (s RenderStats) CoveragePercent() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return 100 * float64(s.HitPixels) / float64(s.TotalPixels)
}

// CalculateAverageLuminance averages the luminance of every pixel after
// clamping each channel to [0, 1]
func CalculateAverageLuminance(c *canvas.Canvas) float64 {
	if c.Width == 0 || c.Height == 0 {
		return 0
	}

	total := 0.0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			total += 0.2126*clamp01(p.Red()) + 0.7152*clamp01(p.Green()) + 0.0722*clamp01(p.Blue())
		}
	}
	return total / float64(c.Width*c.Height)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
