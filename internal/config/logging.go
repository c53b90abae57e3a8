package config

import (
	"io"
	"log/slog"

	"ripplefield/internal/core"
)

// InstallLogger routes library logging to w at the configured level.
func (c *Config) InstallLogger(w io.Writer) {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: core.ParseLevel(c.LogLevel)})
	core.SetLogger(slog.New(h))
}
