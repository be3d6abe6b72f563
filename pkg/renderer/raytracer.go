package renderer

import (
	"context"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// progressRows is how often, in rows, progress is logged
const progressRows = 32

// Raytracer renders a world through a camera one pixel at a time
type Raytracer struct {
	world  *scene.World
	camera *geometry.Camera
	config scene.RenderConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A non-positive MaxDepth disables reflections.
func NewRaytracer(world *scene.World, camera *geometry.Camera, config scene.RenderConfig) *Raytracer {
	return &Raytracer{
		world:  world,
		camera: camera,
		config: config,
		logger: core.NopLogger{},
	}
}

// SetLogger sets where progress messages go
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	rt.logger = logger
}

// Render casts one ray through the center of every pixel, rows top to bottom
// and columns left to right. The context is checked between rows; on
// cancellation the partial canvas is returned with the context's error.
func (rt *Raytracer) Render(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	width, height := rt.camera.HSize, rt.camera.VSize
	image := canvas.New(width, height)
	stats := RenderStats{TotalPixels: width * height}
	start := time.Now()

	rt.logger.Printf("Rendering %dx%d with %d shapes, max depth %d\n",
		width, height, len(rt.world.Shapes), rt.config.MaxDepth)

	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			rt.logger.Printf("Rendering cancelled at row %d\n", y)
			stats.RenderTime = time.Since(start)
			return image, stats, err
		}

		for x := 0; x < width; x++ {
			// same result as World.ColorAt, with the hit kept for the stats
			ray := rt.camera.Cast(x, y)
			hit, ok := rt.world.Intersect(ray).Hit()
			if !ok {
				stats.BackgroundPixels++
				continue
			}
			stats.HitPixels++
			image.WritePixel(x, y, rt.world.ShadeHit(hit.Compute(ray), rt.config.MaxDepth))
		}

		if (y+1)%progressRows == 0 && y+1 < height {
			rt.logger.Printf("Rendered %d/%d rows\n", y+1, height)
		}
	}

	stats.RenderTime = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(image)
	rt.logger.Printf("Render completed in %v\n", stats.RenderTime)

	return image, stats, nil
}
