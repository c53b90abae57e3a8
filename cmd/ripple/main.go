//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"ripplefield/internal/app"
	"ripplefield/internal/config"
	"ripplefield/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	cfg.InstallLogger(os.Stderr)

	sess, err := session.New(context.Background(), cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	game, err := app.New(sess)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("ripplefield")
	ebiten.SetTPS(app.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
