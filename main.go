package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/golang/glog"
	"go.opencensus.io/stats/view"
	"golang.org/x/term"
	"golang.org/x/xerrors"
)

var (
	sceneName = flag.String("scene", "random", "Scene to render; see -list")
	width     = flag.Int("width", 0, "Image width in pixels; 0 uses the scene's width")
	samples   = flag.Int("samples", 0, "Samples per pixel; 0 uses the scene's count")
	depth     = flag.Int("depth", 0, "Maximum ray bounce depth; 0 uses the scene's depth")
	workers   = flag.Int("workers", 0, "Rows rendered concurrently; 0 uses every CPU")
	seed      = flag.Int64("seed", 1, "Seed for scene construction and sampling")
	outPath   = flag.String("out", "", "Output file; defaults to output/<scene>/render_<timestamp>.<format>")
	format    = flag.String("format", "png", "Output format: 'png' or 'ppm'")
	list      = flag.Bool("list", false, "List available scenes and exit")
)

// options are the command line settings for one render
type options struct {
	Scene   string
	Width   int
	Samples int
	Depth   int
	Workers int
	Seed    int64
	Format  output.Format
}

func main() {
	flag.Parse()
	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	if *list {
		for _, info := range scene.List() {
			fmt.Printf("  %-20s %s\n", info.Name, info.Description)
		}
		return
	}

	outFormat, err := output.ParseFormat(*format)
	if err != nil {
		glog.Exitf("Bad -format: %v", err)
	}

	opts := options{
		Scene:   *sceneName,
		Width:   *width,
		Samples: *samples,
		Depth:   *depth,
		Workers: *workers,
		Seed:    *seed,
		Format:  outFormat,
	}
	glog.Infof("Flag -scene=%q -width=%d -samples=%d -depth=%d -workers=%d -seed=%d -format=%s",
		opts.Scene, opts.Width, opts.Samples, opts.Depth, opts.Workers, opts.Seed, opts.Format)

	if err := renderer.RegisterViews(); err != nil {
		glog.Exitf("Error registering metrics views: %v", err)
	}

	filename := *outPath
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", opts.Scene, fmt.Sprintf("render_%s.%s", timestamp, opts.Format))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		glog.Exitf("Error creating output directory: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var progress func(completedRows, totalRows int)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = progressLine(os.Stderr)
	}

	stats, err := renderToFile(ctx, opts, filename, progress)
	if progress != nil {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		glog.Exitf("Render failed: %v", err)
	}

	glog.Infof("Render completed in %v: %d pixels, %d samples, %.0f samples/s, average luminance %.4f",
		stats.Elapsed, stats.Pixels, stats.Samples, stats.SamplesPerSecond(), stats.AverageLuminance)
	logViewSummary(opts.Scene)
	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds the named scene and the render configuration for it,
// applying any overrides in opts
func createScene(opts options) (*scene.Scene, renderer.Config, error) {
	s, err := scene.Lookup(opts.Scene, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, renderer.Config{}, err
	}

	if opts.Width > 0 {
		s.Width = opts.Width
	}
	if opts.Samples > 0 {
		s.SamplesPerPixel = opts.Samples
	}
	if opts.Depth > 0 {
		s.MaxDepth = opts.Depth
	}

	config := renderer.Config{
		Width:    s.Width,
		Height:   s.Height(),
		Workers:  opts.Workers,
		Seed:     opts.Seed,
		Label:    s.Name,
		Sampling: s.SamplingConfig(),
	}
	return s, config, nil
}

// render traces the scene described by opts and encodes the image to w
func render(ctx context.Context, opts options, w io.Writer, progress func(completedRows, totalRows int)) (renderer.RenderStats, error) {
	s, config, err := createScene(opts)
	if err != nil {
		return renderer.RenderStats{}, err
	}
	config.Progress = progress

	rt, err := renderer.NewRaytracer(s.World, s.Camera, s.Background, config, renderer.NewGlogLogger())
	if err != nil {
		return renderer.RenderStats{}, xerrors.Errorf("while configuring %s: %w", s.Name, err)
	}

	pixels, stats, err := rt.Render(ctx)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	if err := output.Write(w, opts.Format, pixels); err != nil {
		return renderer.RenderStats{}, xerrors.Errorf("while writing image: %w", err)
	}
	return stats, nil
}

// renderToFile renders into filename. The file is removed again if the
// render fails or is cancelled.
func renderToFile(ctx context.Context, opts options, filename string, progress func(completedRows, totalRows int)) (renderer.RenderStats, error) {
	file, err := os.Create(filename)
	if err != nil {
		return renderer.RenderStats{}, xerrors.Errorf("while creating %s: %w", filename, err)
	}

	stats, err := render(ctx, opts, file, progress)
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = xerrors.Errorf("while closing %s: %w", filename, closeErr)
	}
	if err != nil {
		if removeErr := os.Remove(filename); removeErr != nil {
			glog.Warningf("Could not remove incomplete %s: %v", filename, removeErr)
		}
		return renderer.RenderStats{}, err
	}
	return stats, nil
}

// progressLine returns a Progress callback that keeps a single updating
// status line on w
func progressLine(w io.Writer) func(completedRows, totalRows int) {
	var mu sync.Mutex
	return func(completedRows, totalRows int) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(w, "\rScanlines remaining: %d ", totalRows-completedRows)
	}
}

func logViewSummary(label string) {
	for _, v := range []*view.View{renderer.RowsRenderedView, renderer.SamplesTracedView} {
		rows, err := view.RetrieveData(v.Name)
		if err != nil {
			glog.Warningf("Could not read view %s: %v", v.Name, err)
			continue
		}
		for _, row := range rows {
			if len(row.Tags) == 0 || row.Tags[0].Value != label {
				continue
			}
			switch data := row.Data.(type) {
			case *view.CountData:
				glog.Infof("%s{label=%s} = %d", v.Name, label, data.Value)
			case *view.SumData:
				glog.Infof("%s{label=%s} = %.0f", v.Name, label, data.Value)
			}
		}
	}
}
