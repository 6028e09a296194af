package main

import (
	"log/slog"
	"os"

	"vivopaint/internal/ui"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("VIVOPAINT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := ui.DefaultOptions()
	opts.Logger = logger
	ui.Run(opts)
}
