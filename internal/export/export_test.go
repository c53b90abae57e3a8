package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"ripplefield/internal/config"
	"ripplefield/internal/core"
	"ripplefield/internal/render"
	"ripplefield/internal/session"
)

func testSession(t *testing.T, reduced bool) *session.Session {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Source = "memory"
	cfg.ReducedMotion = reduced
	cfg.Ripple.Seed = 21
	cfg.Ripple.TargetDotPx = 6
	sess, err := session.FromPoints(cfg, []core.Point{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 6, Y: 4}, {X: 1, Y: 5}})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return sess
}

func smallOptions() Options {
	return Options{Width: 32, Height: 24, Frames: 5, FPS: 10, Supersample: 2}
}

func TestRenderEmitsEveryFrame(t *testing.T) {
	var times []float64
	err := Render(context.Background(), testSession(t, false), smallOptions(), func(i int, tm float64, img *image.RGBA) error {
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
			t.Fatalf("frame %d bounds %v", i, b)
		}
		times = append(times, tm)
		return nil
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(times) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(times))
	}
	if times[1] <= times[0] {
		t.Fatalf("frame times should advance: %v", times)
	}
}

func TestRenderReducedMotionSingleFrame(t *testing.T) {
	count := 0
	err := Render(context.Background(), testSession(t, true), smallOptions(), func(_ int, tm float64, _ *image.RGBA) error {
		if tm != 0 {
			t.Fatalf("reduced motion frame at t=%v", tm)
		}
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one frame, got %d", count)
	}
}

func TestRenderDrawsMarkers(t *testing.T) {
	opts := smallOptions()
	opts.Frames = 1
	lit := 0
	err := Render(context.Background(), testSession(t, false), opts, func(_ int, _ float64, img *image.RGBA) error {
		bg := render.Background
		for i := 0; i < len(img.Pix); i += 4 {
			if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B {
				lit++
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if lit == 0 {
		t.Fatal("no marker pixels rendered")
	}
}

func TestRenderStopsOnEmitError(t *testing.T) {
	boom := errors.New("boom")
	err := Render(context.Background(), testSession(t, false), smallOptions(), func(int, float64, *image.RGBA) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected emit error, got %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := smallOptions()
	opts.Supersample = 0
	if err := opts.Validate(); !errors.Is(err, ErrBadOptions) {
		t.Fatalf("expected ErrBadOptions, got %v", err)
	}
	if err := DefaultOptions().Validate(); err != nil {
		t.Fatalf("default options invalid: %v", err)
	}
}

func TestWriteGIFRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGIF(context.Background(), testSession(t, false), smallOptions(), &buf); err != nil {
		t.Fatalf("write gif: %v", err)
	}
	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode gif: %v", err)
	}
	if len(anim.Image) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 10 {
		t.Fatalf("delay = %d, want 10 (1/10 s)", anim.Delay[0])
	}
}

func TestWritePNGs(t *testing.T) {
	dir := t.TempDir()
	opts := smallOptions()
	opts.Frames = 2
	paths, err := WritePNGs(context.Background(), testSession(t, false), opts, dir)
	if err != nil {
		t.Fatalf("write pngs: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %v", paths)
	}
	for _, p := range paths {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Fatalf("frame %s missing: %v", p, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var man Manifest
	if err := json.Unmarshal(data, &man); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if man.RNGSeed != 21 || len(man.Frames) != 2 || man.Frames[1].File != "frame_00001.png" {
		t.Fatalf("unexpected manifest: %+v", man)
	}
	if man.Session == "" {
		t.Fatal("manifest missing session id")
	}
}

func TestPaletteRamp(t *testing.T) {
	theme := render.DefaultTheme()
	pal := Palette(theme)
	if len(pal) != 256 {
		t.Fatalf("palette size %d", len(pal))
	}
	if pal[1] != theme.Idle.RGBA() || pal[255] != theme.Bright.RGBA() {
		t.Fatalf("ramp endpoints %v %v", pal[1], pal[255])
	}
}
