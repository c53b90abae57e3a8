// Command ripple-render exports a ripple field as PNG frames or an animated
// GIF without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"ripplefield/internal/config"
	"ripplefield/internal/export"
	"ripplefield/internal/session"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	opts := export.DefaultOptions()
	out := flag.String("out", "ripple.gif", "output .gif file, or a directory for PNG frames")
	flag.IntVar(&opts.Frames, "frames", opts.Frames, "number of frames to render")
	flag.Float64Var(&opts.FPS, "fps", opts.FPS, "frames per second of the export")
	flag.Float64Var(&opts.Start, "start", opts.Start, "time of the first frame in seconds")
	flag.IntVar(&opts.Supersample, "supersample", opts.Supersample, "render at this multiple of the output size")
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	cfg.InstallLogger(os.Stderr)
	opts.Width, opts.Height = cfg.Width, cfg.Height

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess, err := session.New(ctx, cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	if strings.EqualFold(filepath.Ext(*out), ".gif") {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		if err := export.WriteGIF(ctx, sess, opts, f); err != nil {
			f.Close()
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s\n", *out)
		return
	}

	paths, err := export.WritePNGs(ctx, sess, opts, *out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d frames to %s\n", len(paths), *out)
}
