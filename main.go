package main

import (
	"flag"
	"log/slog"
	"os"

	"Sketchpad/internal/config"
	"Sketchpad/internal/raster"
	"Sketchpad/internal/state"
	"Sketchpad/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	state.SetLogger(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	// Without fonts there is no drawing surface, so nothing else can work.
	fonts, err := raster.LoadFonts(cfg.FontPath, cfg.EmojiFont)
	if err != nil {
		logger.Error("load fonts", "err", err)
		os.Exit(1)
	}
	defer fonts.Close()

	logger.Info("starting sketchpad", "canvas", cfg.CanvasSize, "export_scale", cfg.ExportScale)
	if err := ui.RunApp(cfg, fonts); err != nil {
		logger.Error("start sketchpad", "err", err)
		os.Exit(1)
	}
}
