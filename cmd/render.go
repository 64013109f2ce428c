package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-montecarlo-raytracer/pkg/imageio"
	"github.com/df07/go-montecarlo-raytracer/pkg/renderer"
	"github.com/df07/go-montecarlo-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// stdoutName selects standard output for the rendered image
const stdoutName = "-"

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sceneName := ctx.String("scene")
	sc, err := scene.New(sceneName)
	if err != nil {
		return err
	}

	if err := applyCameraFlags(ctx, sc); err != nil {
		return err
	}

	opts := renderConfigFor(sc, renderer.RenderConfig{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
		NormalsOnly:     ctx.Bool("normals"),
	})
	// Merge treats zero as unset, but zero depth and seed are valid requests
	if ctx.IsSet("depth") {
		opts.MaxDepth = ctx.Int("depth")
	}
	if ctx.IsSet("seed") {
		opts.Seed = ctx.Int64("seed")
	}

	rt, err := renderer.NewRaytracer(sc, opts)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d objects)", sceneName, sc.GetPrimitiveCount())

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	buf, stats, err := rt.Render(renderCtx)
	if err != nil {
		return err
	}

	format := ctx.String("format")
	out := ctx.String("out")
	if out == "" {
		out = outputPath(sceneName, format, time.Now())
	}
	if err := writeFrame(out, format, buf, ctx.App.Writer); err != nil {
		return err
	}

	displayFrameStats(sceneName, opts, stats)
	if out != stdoutName {
		logger.Noticef("wrote frame to %s", out)
	}
	return nil
}

// applyCameraFlags rebuilds the scene camera when lens flags are given.
func applyCameraFlags(ctx *cli.Context, sc *scene.Scene) error {
	if !ctx.IsSet("aperture") && !ctx.IsSet("vfov") {
		return nil
	}

	cameraConfig := sc.CameraConfig
	if ctx.IsSet("aperture") {
		cameraConfig.Aperture = ctx.Float64("aperture")
	}
	if ctx.IsSet("vfov") {
		cameraConfig.VFov = ctx.Float64("vfov")
	}
	return sc.SetCameraConfig(cameraConfig)
}

// renderConfigFor layers the scene's recommended settings and then the
// non-zero overrides on top of the renderer defaults. A width given without
// a height keeps the camera aspect ratio.
func renderConfigFor(sc *scene.Scene, override renderer.RenderConfig) renderer.RenderConfig {
	recommended := sc.SamplingConfig
	opts := renderer.DefaultRenderConfig().Merge(renderer.RenderConfig{
		Width:           recommended.Width,
		Height:          recommended.Height,
		SamplesPerPixel: recommended.SamplesPerPixel,
		MaxDepth:        recommended.MaxDepth,
		NormalsOnly:     recommended.NormalsOnly,
	})

	if override.Width != 0 && override.Height == 0 {
		override.Height = max(1, int(float64(override.Width)/sc.CameraConfig.AspectRatio))
	}
	return opts.Merge(override)
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneName, format string, now time.Time) string {
	filename := fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format)
	return filepath.Join("output", sceneName, filename)
}

func writeFrame(out, format string, buf *renderer.PixelBuffer, stdout io.Writer) error {
	if out == stdoutName {
		return imageio.Write(stdout, format, buf)
	}

	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := imageio.Write(f, format, buf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func displayFrameStats(sceneName string, opts renderer.RenderConfig, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Size", "Samples/px", "Max depth", "Workers", "Rays traced", "Bounces/sample", "Rays/s"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		fmt.Sprintf("%d", opts.SamplesPerPixel),
		fmt.Sprintf("%d", opts.MaxDepth),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%d", stats.RaysTraced),
		fmt.Sprintf("%.2f", stats.AverageBounces()),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
