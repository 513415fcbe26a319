// Package pipeline provides the generic batch transform loop shared by the
// mediabatch tools: discover work items, apply a transform to each, and
// aggregate the typed outcomes into a run summary.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pframpton/mediabatch/internal/display"
	"github.com/pframpton/mediabatch/internal/logging"
)

// Transform applies one per-item operation, producing a typed Result.
// Implementations must treat the WorkItem as read-only and must not retain
// it past the call. Apply is invoked at most once per item.
type Transform interface {
	// Name is a past-tense verb used in success lines (e.g. "Transcoded").
	Name() string
	Apply(ctx context.Context, item WorkItem) Result
}

// Run is the top-level batch loop. Items are processed strictly
// sequentially in the given order; a failed item is reported and counted
// but never aborts the batch. Cancelling ctx stops the run between items.
func Run(ctx context.Context, items []WorkItem, t Transform, outputRoot string, log *logging.Logger) Summary {
	sum := Summary{OutputRoot: outputRoot}
	total := len(items)

	for i, item := range items {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		log.Info("[%d/%d] %s", i+1, total, filepath.Base(item.Source))
		log.Info("  -> %s", item.Dest)

		res := t.Apply(ctx, item)
		sum.Record(res)

		switch res.Status {
		case StatusOK:
			log.Success("%s: %s", t.Name(), filepath.Base(item.Dest))
		case StatusSkipped:
			log.Warn("Skip (exists): %s", filepath.Base(item.Dest))
		default:
			logFailure(log, res)
		}
		fmt.Println()
	}

	logSummary(log, &sum)
	return sum
}

// logFailure prints the per-item failure block: context line, command and
// exit code for subprocess failures, and captured output tails.
func logFailure(log *logging.Logger, r Result) {
	log.Error("Failed: %s", r.Item.Source)
	if r.Command != "" {
		log.Error("  Command: %s", r.Command)
		log.Error("  Exit code: %d", r.ExitCode)
	} else if r.Err != nil {
		log.Error("  %v", r.Err)
	}
	logCaptured(log, "stdout", r.Stdout)
	logCaptured(log, "stderr", r.Stderr)
}

// logCaptured prints the last 20 lines of captured subprocess output.
func logCaptured(log *logging.Logger, name, out string) {
	out = strings.TrimSpace(out)
	if out == "" {
		return
	}
	log.Error("  %s:", name)
	lines := strings.Split(out, "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("    %s", l)
	}
}

func logSummary(log *logging.Logger, s *Summary) {
	log.Info("==============================")
	if s.Skipped > 0 {
		log.Info("Done: %d attempted, %d succeeded, %d skipped, %d failed",
			s.Attempted, s.Succeeded, s.Skipped, s.Failed)
	} else {
		log.Info("Done: %d attempted, %d succeeded, %d failed",
			s.Attempted, s.Succeeded, s.Failed)
	}
	log.Info("Output: %s", s.OutputRoot)
	if s.TotalInputBytes > 0 && s.TotalOutputBytes > 0 {
		log.Info("Size: %s in -> %s out (%s)",
			display.FormatBytes(s.TotalInputBytes),
			display.FormatBytes(s.TotalOutputBytes),
			display.FormatBytesWithSign(s.TotalOutputBytes-s.TotalInputBytes))
	}
}
