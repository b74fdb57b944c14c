package sequence

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"github.com/pkg/errors"

	"robot-rig/internal/log"
	"robot-rig/internal/postprocess"
	"robot-rig/internal/raster"
	"robot-rig/internal/rig"
	"robot-rig/internal/texture"
	"robot-rig/internal/viewmatrix"
)

// Format is an output image format.
type Format string

const (
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat accepts "webp" or "tga" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatWebP, FormatTGA:
		return f, nil
	}
	return "", errors.Errorf("sequence: unknown format %q", s)
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string { return "." + string(f) }

// Config holds the shared, read-only resources of a render run.
type Config struct {
	OutputDir   string
	Table       *rig.Table
	Textures    texture.Resolver
	Width       int
	Height      int
	Supersample int
	Camera      viewmatrix.Camera
	Background  color.NRGBA
	Format      Format
	Extended    bool
	Annotate    bool
	Workers     int
	// KeepImages keeps every rendered frame in its Result for WriteAnimation.
	KeepImages bool
	Logger     log.Logger
}

// Result is the outcome of rendering one frame.
type Result struct {
	Index   int
	Tick    uint64
	Path    string
	Success bool
	Error   string
	Image   *image.NRGBA
}

// FrameName returns the file name of frame index i.
func FrameName(i int, f Format) string {
	return fmt.Sprintf("frame_%05d%s", i, f.Ext())
}

// Run renders frames with a worker pool. A frame that fails is reported in
// its Result and does not stop the others.
func Run(cfg Config, frames []Frame) []Result {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	total := len(frames)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Infof("[%d/%d] %.1f frames/sec", p, total, rate)
				}
			}
		}
	}()

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := rig.NewBuilder(cfg.Table)
			var calls []rig.DrawCall
			for idx := range frameChan {
				results[idx] = processFrame(cfg, b, &calls, frames[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	logger.Debugf("rendered %d frames in %s", total, time.Since(start).Round(time.Millisecond))
	return results
}

// RenderFrame draws one frame at the configured output size.
func RenderFrame(cfg Config, b *rig.Builder, f Frame) *image.NRGBA {
	var calls []rig.DrawCall
	return renderFrame(cfg, b, &calls, f)
}

func renderFrame(cfg Config, b *rig.Builder, calls *[]rig.DrawCall, f Frame) *image.NRGBA {
	*calls = b.AppendBuild((*calls)[:0], f.Pose)
	img := raster.Render(*calls, cfg.Table, cfg.Textures, raster.Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Camera:      cfg.Camera,
		Background:  cfg.Background,
	})
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	if cfg.Annotate {
		postprocess.Annotate(img, f.HUD())
	}
	return img
}

func processFrame(cfg Config, b *rig.Builder, calls *[]rig.DrawCall, f Frame) Result {
	res := Result{Index: f.Index, Tick: f.Tick}

	img := renderFrame(cfg, b, calls, f)
	if cfg.KeepImages {
		res.Image = img
	}

	format := cfg.Format
	if format == "" {
		format = FormatWebP
	}
	res.Path = filepath.Join(cfg.OutputDir, FrameName(f.Index, format))
	if err := writeImage(res.Path, img, format, cfg.Extended); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func writeImage(path string, img image.Image, format Format, extended bool) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "sequence")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "sequence")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "sequence: close %s", path)
		}
	}()
	return Encode(f, img, format, extended)
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format, extended bool) error {
	switch format {
	case FormatTGA:
		if err := tga.Encode(w, img); err != nil {
			return errors.Wrap(err, "sequence: tga encode")
		}
	default:
		if err := nativewebp.Encode(w, img, &nativewebp.Options{UseExtendedFormat: extended}); err != nil {
			return errors.Wrap(err, "sequence: webp encode")
		}
	}
	return nil
}

// WriteAnimation writes the kept images of results as one looping animated
// WebP, each frame shown for delay. Failed frames are skipped.
func WriteAnimation(path string, results []Result, delay time.Duration) (err error) {
	ms := uint(delay / time.Millisecond)
	if ms == 0 {
		ms = 1
	}

	var ani nativewebp.Animation
	for _, r := range results {
		if !r.Success || r.Image == nil {
			continue
		}
		ani.Images = append(ani.Images, r.Image)
		ani.Durations = append(ani.Durations, ms)
		ani.Disposals = append(ani.Disposals, 0)
	}
	if len(ani.Images) == 0 {
		return errors.New("sequence: no frames to animate")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "sequence")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "sequence: close %s", path)
		}
	}()

	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return errors.Wrap(err, "sequence: webp animation")
	}
	return nil
}
