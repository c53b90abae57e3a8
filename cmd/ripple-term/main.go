// Command ripple-term animates a ripple field in the terminal.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"ripplefield/internal/config"
	"ripplefield/internal/session"
	"ripplefield/internal/term"
)

func main() {
	cfg := config.NewConfig()
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs here; the terminal is in use")
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	var logOut io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	cfg.InstallLogger(logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess, err := session.New(ctx, cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	t, err := term.Open(sess)
	if err != nil {
		log.Fatal(err)
	}
	err = t.Run(ctx, time.Second/30)
	t.Close()
	if err != nil {
		log.Fatal(err)
	}
}
