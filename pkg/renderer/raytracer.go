package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-montecarlo-raytracer/pkg/core"
	"github.com/df07/go-montecarlo-raytracer/pkg/geometry"
	"github.com/df07/go-montecarlo-raytracer/pkg/integrator"
	"github.com/df07/go-montecarlo-raytracer/pkg/log"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Hittable
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene      Scene
	config     RenderConfig
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig) (*Raytracer, error) {
	if scene == nil || scene.GetWorld() == nil {
		return nil, ErrSceneNotDefined
	}
	if scene.GetCamera() == nil {
		return nil, ErrCameraNotDefined
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Raytracer{
		scene:      scene,
		config:     config,
		integrator: config.newIntegrator(),
		logger:     log.New("renderer"),
	}, nil
}

// Config returns the active render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Render traces every pixel and returns the averaged linear colors.
// The result depends only on the scene and config, not on worker scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	start := time.Now()
	buf := NewPixelBuffer(rt.config.Width, rt.config.Height)

	pool := NewWorkerPool(rt, buf, rt.config.Height, rt.config.NumWorkers)
	rt.logger.Infof("rendering %dx%d at %d spp, depth %d, %d workers",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, rt.config.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	for row := 0; row < rt.config.Height; row++ {
		pool.SubmitTask(ScanlineTask{Row: row, TaskID: row})
	}

	stats := RenderStats{NumWorkers: pool.GetNumWorkers()}
	var renderErr error
	for remaining := rt.config.Height; remaining > 0; remaining-- {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}
		stats.Add(result.Stats)
		rt.logger.Debugf("scanlines remaining: %d", remaining-1)
	}
	pool.Stop()
	stats.Duration = time.Since(start)

	if renderErr != nil {
		rt.logger.Warningf("render aborted after %s: %v", stats.Duration, renderErr)
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, renderErr)
	}

	rt.logger.Infof("rendered %d pixels in %s", stats.TotalPixels, stats.Duration)
	return buf, stats, nil
}

// RenderScanline renders buffer row y (0 is the top) with its own sampler
func (rt *Raytracer) RenderScanline(y int, buf *PixelBuffer) RenderStats {
	width, height := rt.config.Width, rt.config.Height
	spp := rt.config.SamplesPerPixel
	camera := rt.scene.GetCamera()
	world := &countingHittable{Hittable: rt.scene.GetWorld()}
	sampler := core.NewSeededSampler(scanlineSeed(rt.config.Seed, y))

	// screen space counts rows from the bottom
	j := height - 1 - y
	sDenom, tDenom := screenDenominator(width), screenDenominator(height)

	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < spp; sample++ {
			ds, dt := sampler.Get2D()
			s := (float64(i) + ds) / sDenom
			t := (float64(j) + dt) / tDenom

			ray := camera.GetRay(s, t, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler))
		}
		buf.Set(i, y, colorAccum.Divide(float64(spp)))
	}

	return RenderStats{
		TotalPixels:  width,
		TotalSamples: width * spp,
		RaysTraced:   world.rays,
	}
}

// screenDenominator maps pixel indices onto [0, 1] inclusive of both edges
func screenDenominator(size int) float64 {
	if size <= 1 {
		return 1
	}
	return float64(size - 1)
}

// scanlineSeed derives a well-spread seed for one row from the base seed
func scanlineSeed(seed int64, row int) int64 {
	return int64(uint64(seed) ^ uint64(row+1)*0x9E3779B97F4A7C15)
}

// countingHittable counts scene queries. Each scanline owns one, so no locking.
type countingHittable struct {
	geometry.Hittable
	rays int64
}

func (c *countingHittable) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	c.rays++
	return c.Hittable.Hit(ray, tMin, tMax)
}
