package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/xerrors"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Config describes a single render
type Config struct {
	Width    int
	Height   int
	Workers  int    // Concurrent rows; 0 means runtime.NumCPU()
	Seed     int64  // Base seed; row j draws from Seed+j
	Label    string // Tag for recorded metrics, usually the scene name
	Sampling SamplingConfig

	// Progress is called after each finished row, possibly from several
	// goroutines at once
	Progress func(completedRows, totalRows int)
}

// Raytracer renders a world into a buffer of linear colors
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	background integrator.Background
	integrator integrator.Integrator
	config     Config
	logger     Logger
}

// NewRaytracer creates a new raytracer, validating the configuration
func NewRaytracer(world geometry.Hittable, camera *Camera, background integrator.Background, config Config, logger Logger) (*Raytracer, error) {
	switch {
	case world == nil:
		return nil, xerrors.New("raytracer needs a world")
	case camera == nil:
		return nil, xerrors.New("raytracer needs a camera")
	case background == nil:
		return nil, xerrors.New("raytracer needs a background")
	case config.Width < 2 || config.Height < 2:
		return nil, xerrors.Errorf("image must be at least 2x2, got %dx%d", config.Width, config.Height)
	case config.Sampling.SamplesPerPixel < 1:
		return nil, xerrors.Errorf("samples per pixel must be positive, got %d", config.Sampling.SamplesPerPixel)
	case config.Sampling.MaxDepth < 1:
		return nil, xerrors.Errorf("max depth must be positive, got %d", config.Sampling.MaxDepth)
	case config.Workers < 0:
		return nil, xerrors.Errorf("workers must not be negative, got %d", config.Workers)
	}

	if config.Workers == 0 {
		config.Workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		background: background,
		integrator: integrator.NewPathTracingIntegrator(),
		config:     config,
		logger:     logger,
	}, nil
}

// RenderPixel returns the average linear color of samples rays through pixel
// (i, j), where j counts rows up from the bottom of the image. The result is
// neither gamma corrected nor clamped. It is safe for concurrent use as long
// as each caller owns its random.
func RenderPixel(world geometry.Hittable, camera *Camera, background integrator.Background, width, height, i, j, samples, maxDepth int, random *rand.Rand) core.Color {
	return renderPixel(integrator.NewPathTracingIntegrator(), world, camera, background, width, height, i, j, samples, maxDepth, random)
}

func renderPixel(pt integrator.Integrator, world geometry.Hittable, camera *Camera, background integrator.Background, width, height, i, j, samples, maxDepth int, random *rand.Rand) core.Color {
	var pixelColor core.Color
	for s := 0; s < samples; s++ {
		u := (float64(i) + random.Float64()) / float64(width-1)
		v := (float64(j) + random.Float64()) / float64(height-1)
		ray := camera.GetRay(u, v, random)
		pixelColor = pixelColor.Add(pt.RayColor(ray, world, background, maxDepth, random))
	}
	return pixelColor.Divide(float64(samples))
}

// Render traces every pixel. Rows are distributed over Config.Workers
// goroutines; the result is indexed [row][column] with row 0 at the top.
// Each row has its own random stream so the output does not depend on
// scheduling.
func (rt *Raytracer) Render(ctx context.Context) ([][]core.Color, RenderStats, error) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	samples, maxDepth := rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth

	rt.logger.Printf("Rendering %dx%d, %d samples/pixel, depth %d, %d workers", width, height, samples, maxDepth, rt.config.Workers)

	pixels := make([][]core.Color, height)
	var completed int64

	eg, egCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(rt.config.Workers))

	var acquireErr error
	for row := 0; row < height; row++ {
		row := row

		if err := sem.Acquire(egCtx, 1); err != nil {
			acquireErr = xerrors.Errorf("while acquiring a render worker: %w", err)
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := egCtx.Err(); err != nil {
				return err
			}

			// Image rows run top to bottom, camera rows bottom to top
			j := height - 1 - row
			random := rand.New(rand.NewSource(rt.config.Seed + int64(j)))

			line := make([]core.Color, width)
			for i := 0; i < width; i++ {
				line[i] = renderPixel(rt.integrator, rt.world, rt.camera, rt.background, width, height, i, j, samples, maxDepth, random)
			}
			pixels[row] = line

			recordRow(egCtx, rt.config.Label, int64(width*samples))
			done := int(atomic.AddInt64(&completed, 1))
			if rt.config.Progress != nil {
				rt.config.Progress(done, height)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, RenderStats{}, xerrors.Errorf("while rendering rows: %w", err)
	}
	if acquireErr != nil {
		return nil, RenderStats{}, acquireErr
	}

	elapsed := time.Since(start)
	recordRender(ctx, rt.config.Label, float64(elapsed)/float64(time.Millisecond))

	stats := RenderStats{
		Pixels:           width * height,
		Samples:          width * height * samples,
		Rows:             height,
		Elapsed:          elapsed,
		AverageLuminance: CalculateAverageLuminance(pixels),
	}
	rt.logger.Printf("Render finished in %v (%.0f samples/s)", elapsed, stats.SamplesPerSecond())

	return pixels, stats, nil
}
