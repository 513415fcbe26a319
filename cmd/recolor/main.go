// Command recolor rewrites the ink pixels of a single drawing image to a
// target color, preserving per-pixel alpha, and saves the result as PNG.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pframpton/mediabatch/internal/config"
	"github.com/pframpton/mediabatch/internal/logging"
	"github.com/pframpton/mediabatch/internal/pipeline"
	"github.com/pframpton/mediabatch/internal/recolor"
)

// version is injected at build time via -ldflags.
var version = "1.0.0"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultRecolorConfig()
	if err := config.ParseRecolorFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "recolor: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "recolor: %v\n", err)
		return 2
	}

	spec, err := recolor.ParseColor(cfg.Color)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recolor: %v\n", err)
		return 2
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recolor: %v\n", err)
		return 2
	}
	defer log.Close()

	outputAbs, err := filepath.Abs(filepath.Dir(cfg.OutputPath))
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputPath)
		return 1
	}

	log.Debug(cfg.Verbose, "recolor v%s, target color %s", version, spec)

	// The image pipeline is the degenerate single-item case of the batch loop.
	items := []pipeline.WorkItem{{Source: cfg.InputPath, Dest: cfg.OutputPath}}
	sum := pipeline.Run(context.Background(), items, &recolor.Recolorer{Color: spec}, outputAbs, log)
	if sum.Failed > 0 {
		return 1
	}
	return 0
}
