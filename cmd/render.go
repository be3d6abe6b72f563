package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/log"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	out := ctx.String("out")
	format, err := outputFormat(ctx.String("format"), out)
	if err != nil {
		return err
	}

	sceneName := ctx.String("scene")
	if file := ctx.String("file"); file != "" {
		sceneName = file
	}

	overrides := geometry.CameraConfig{
		Width:  ctx.Int("width"),
		Height: ctx.Int("height"),
	}
	sc, err := scene.Create(sceneName, ctx.String("dir"), overrides)
	if err != nil {
		return err
	}
	if ctx.IsSet("depth") {
		if ctx.Int("depth") < 0 {
			return fmt.Errorf("depth must not be negative, got %d", ctx.Int("depth"))
		}
		sc.RenderConfig.MaxDepth = ctx.Int("depth")
	}

	camera, err := sc.Camera()
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q at %dx%d", sc.Name, camera.HSize, camera.VSize)
	rt := renderer.NewRaytracer(sc.World, camera, sc.RenderConfig)
	rt.SetLogger(log.AsCoreLogger(logger))

	// Ctrl+C stops the render between rows
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	image, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	if err := writeImage(image, out, format); err != nil {
		return err
	}

	displayRenderStats(sc, stats)
	logger.Noticef("render saved as %s", out)
	return nil
}

// outputFormat picks the image format from the flag or the file extension
func outputFormat(format, out string) (string, error) {
	switch strings.ToLower(format) {
	case "ppm", "png":
		return strings.ToLower(format), nil
	case "":
		if strings.EqualFold(filepath.Ext(out), ".png") {
			return "png", nil
		}
		return "ppm", nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use ppm or png", format)
	}
}

func writeImage(image *canvas.Canvas, out, format string) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if format == "png" {
		err = image.WritePNG(file)
	} else {
		err = image.WritePPM(file)
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	return file.Close()
}

func displayRenderStats(sc *scene.Scene, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Shapes", "Max depth", "Pixels", "Coverage", "Avg luminance"})
	table.Append([]string{
		sc.Name,
		fmt.Sprintf("%d", len(sc.World.Shapes)),
		fmt.Sprintf("%d", sc.RenderConfig.MaxDepth),
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%02.1f %%", stats.CoveragePercent()),
		fmt.Sprintf("%.3f", stats.AverageLuminance),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}
