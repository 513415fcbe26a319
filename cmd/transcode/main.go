// Command transcode batch-converts audio files under a directory tree by
// invoking an external transcoder (ffmpeg by default) once per file.
//
// It validates the preconditions (input directory, transcoder executable)
// before any file is touched, then processes the discovered files
// sequentially; one bad file never aborts the rest of the batch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pframpton/mediabatch/internal/config"
	"github.com/pframpton/mediabatch/internal/logging"
	"github.com/pframpton/mediabatch/internal/pipeline"
	"github.com/pframpton/mediabatch/internal/transcode"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: the logger doesn't exist yet, so errors go directly to
	// stderr via fmt. Once NewLogger succeeds, all output goes through it.
	cfg := config.DefaultTranscodeConfig()
	if err := config.ParseTranscodeFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "transcode: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "transcode: %v\n", err)
		return 2
	}

	log, err := logging.NewLogger(cfg.ColorMode, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "transcode: %v\n", err)
		return 2
	}
	defer log.Close()

	// Preconditions: both must hold before any file is processed.
	tr, err := transcode.New(&cfg)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	inPlace := cfg.OutputDir == ""
	if inPlace {
		cfg.OutputDir = cfg.InputDir
	}

	items, err := pipeline.Discover(cfg.InputDir, cfg.OutputDir, cfg.SourceExt, cfg.TargetExt)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if !inPlace {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Error("Cannot create output directory: %s", cfg.OutputDir)
			return 1
		}
	}
	outputAbs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputDir)
		return 1
	}

	log.Info("=== transcode v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputDir)
	if inPlace {
		log.Info("Out: %s (in-place, next to sources)", outputAbs)
	} else {
		log.Info("Out: %s", outputAbs)
	}
	log.Info("Found %d %s files", len(items), cfg.SourceExt)
	log.Info("Transcoder: %s, codec %s -> .%s", tr.Executable, cfg.Codec, cfg.TargetExt)
	if cfg.Timeout > 0 {
		log.Debug(cfg.Verbose, "Per-file timeout: %s", cfg.Timeout)
	} else {
		log.Warn("Per-file timeout disabled")
	}
	fmt.Println()

	// Cancel on SIGINT/SIGTERM so the batch stops between files.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file…")
		cancel()
	}()

	sum := pipeline.Run(ctx, items, tr, outputAbs, log)
	if sum.Failed > 0 {
		return 1
	}
	return 0
}
