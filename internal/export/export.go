// Package export renders a session offline into PNG frames or an animated
// GIF using the software rasterizer.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"

	"ripplefield/internal/core"
	"ripplefield/internal/driver"
	"ripplefield/internal/render"
	"ripplefield/internal/session"
)

// ErrBadOptions is wrapped by Options.Validate failures.
var ErrBadOptions = errors.New("invalid export options")

// Options controls an export run.
type Options struct {
	Width, Height int
	// Frames is the number of frames to render. Reduced motion renders one.
	Frames int
	// FPS sets the time step between frames.
	FPS float64
	// Start offsets the first frame, in seconds.
	Start float64
	// Supersample renders at this multiple of the output size and scales
	// down. 1 disables it.
	Supersample int
}

// DefaultOptions exports one full 10 s cycle at 24 fps.
func DefaultOptions() Options {
	return Options{Width: 480, Height: 270, Frames: 240, FPS: 24, Supersample: 2}
}

// Validate rejects sizes and rates that cannot produce frames.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrBadOptions, o.Width, o.Height)
	case o.Frames <= 0:
		return fmt.Errorf("%w: frames %d", ErrBadOptions, o.Frames)
	case !(o.FPS > 0):
		return fmt.Errorf("%w: fps %v", ErrBadOptions, o.FPS)
	case o.Supersample < 1 || o.Supersample > 8:
		return fmt.Errorf("%w: supersample %d outside [1,8]", ErrBadOptions, o.Supersample)
	}
	return nil
}

// FrameFunc receives each rendered frame. img is reused between calls.
type FrameFunc func(index int, t float64, img *image.RGBA) error

// Render draws frames of sess and hands each to emit. Frame times come from
// a driver ticked with a synthetic clock, so reduced motion yields a single
// frame at time zero.
func Render(ctx context.Context, sess *session.Session, opts Options, emit FrameFunc) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	s := opts.Supersample
	bigW, bigH := opts.Width*s, opts.Height*s
	field := sess.Field()
	proj := render.NewProjection(field.Viewbox(), float64(bigW), float64(bigH), field.Config().TargetDotPx*float64(s))
	raster := render.NewSoftware(sess.Instances())
	raster.Resize(proj, bigW, bigH)

	big := image.NewRGBA(image.Rect(0, 0, bigW, bigH))
	out := big
	if s > 1 {
		out = image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	}

	drv := driver.New(driver.Options{ReducedMotion: sess.Config().ReducedMotion})
	step := 1 / opts.FPS
	index := 0
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		elapsed := time.Duration(float64(i) * step * float64(time.Second))
		dec := drv.Tick(elapsed)
		if dec.Draw {
			t := opts.Start + float64(i)*step
			if sess.Config().ReducedMotion {
				t = 0
			}
			render.Clear(big, render.Background)
			raster.Render(big, sess.Uniforms(t))
			if s > 1 {
				xdraw.ApproxBiLinear.Scale(out, out.Bounds(), big, big.Bounds(), xdraw.Src, nil)
			}
			if err := emit(index, t, out); err != nil {
				return err
			}
			index++
		}
		if !dec.Reschedule {
			break
		}
	}
	core.Logger().Info("export rendered", "frames", index, "width", opts.Width, "height", opts.Height)
	return nil
}

// Manifest describes a PNG export.
type Manifest struct {
	Session     string  `json:"session"`
	RNGSeed     int64   `json:"rng_seed"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	FPS         float64 `json:"fps"`
	Supersample int     `json:"supersample"`
	Frames      []Frame `json:"frames"`
}

// Frame is one exported file and the simulation time it shows.
type Frame struct {
	File string  `json:"file"`
	Time float64 `json:"time"`
}

// ManifestName is written next to the frames by WritePNGs.
const ManifestName = "manifest.json"

// WritePNGs renders frames into dir as frame_00000.png and so on, followed
// by a manifest. It returns the written frame paths.
func WritePNGs(ctx context.Context, sess *session.Session, opts Options, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	man := Manifest{
		Session:     sess.ID(),
		RNGSeed:     sess.RNGSeed(),
		Width:       opts.Width,
		Height:      opts.Height,
		FPS:         opts.FPS,
		Supersample: opts.Supersample,
	}
	var paths []string
	err := Render(ctx, sess, opts, func(i int, t float64, img *image.RGBA) error {
		name := fmt.Sprintf("frame_%05d.png", i)
		path := filepath.Join(dir, name)
		if err := writePNG(path, img); err != nil {
			return err
		}
		paths = append(paths, path)
		man.Frames = append(man.Frames, Frame{File: name, Time: t})
		return nil
	})
	if err != nil {
		return paths, err
	}
	data, err := json.MarshalIndent(man, "", "  ")
	if err != nil {
		return paths, err
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return paths, fmt.Errorf("writing manifest: %w", err)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// WriteGIF renders an infinitely looping animated GIF to w.
func WriteGIF(ctx context.Context, sess *session.Session, opts Options, w io.Writer) error {
	pal := Palette(sess.Theme())
	delay := int(math.Round(100 / opts.FPS))
	anim := &gif.GIF{LoopCount: 0}
	err := Render(ctx, sess, opts, func(_ int, _ float64, img *image.RGBA) error {
		frame := image.NewPaletted(img.Bounds(), pal)
		draw.FloydSteinberg.Draw(frame, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, max(delay, 1))
		return nil
	})
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encoding GIF: %w", err)
	}
	return nil
}

// Palette returns the background followed by a 255-step ramp from the idle
// to the bright theme color.
func Palette(theme render.Theme) color.Palette {
	pal := make(color.Palette, 0, 256)
	pal = append(pal, render.Background)
	for i := 0; i < 255; i++ {
		w := float32(i) / 254
		pal = append(pal, theme.Idle.Lerp(theme.Bright, w).RGBA())
	}
	return pal
}
