// Package transcode converts audio files by invoking an external
// ffmpeg-style transcoder once per work item. The transcoder binary is a
// black box: this package only builds the argument list, runs the process
// with captured output, and classifies the exit status.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pframpton/mediabatch/internal/config"
	"github.com/pframpton/mediabatch/internal/pipeline"
)

// Sentinel errors for the fatal preconditions checked before a batch starts.
var (
	ErrTranscoderNotFound = errors.New("transcoder executable not found")
)

// Transcoder invokes the external transcoder for each work item.
type Transcoder struct {
	Executable   string        // Resolved path or PATH-resolvable name.
	Codec        string        // Target audio codec (e.g. "pcm_s16le").
	Timeout      time.Duration // Per-file limit; 0 disables.
	SkipExisting bool
}

// New resolves the configured executable and returns a ready Transcoder.
// The executable must be findable on PATH or be an existing regular file;
// anything else is a fatal precondition failure.
func New(cfg *config.TranscodeConfig) (*Transcoder, error) {
	exe, err := ResolveExecutable(cfg.Transcoder)
	if err != nil {
		return nil, err
	}
	return &Transcoder{
		Executable:   exe,
		Codec:        cfg.Codec,
		Timeout:      cfg.Timeout,
		SkipExisting: cfg.SkipExisting,
	}, nil
}

// ResolveExecutable resolves name via the environment's search path, or
// accepts it as-is when it points at an existing regular file.
func ResolveExecutable(name string) (string, error) {
	if p, err := exec.LookPath(name); err == nil {
		return p, nil
	}
	fi, err := os.Stat(name)
	if err != nil || fi.IsDir() {
		return "", fmt.Errorf("%w: %q (install it or pass --ffmpeg)", ErrTranscoderNotFound, name)
	}
	return name, nil
}

// Name implements pipeline.Transform.
func (t *Transcoder) Name() string { return "Transcoded" }

// Apply converts one file. A non-zero transcoder exit is recorded as a
// per-item failure carrying the exit code, command line, and captured
// stdout/stderr; launch errors and timeouts are recorded the same way.
// The destination's parent directory is created if absent.
func (t *Transcoder) Apply(ctx context.Context, item pipeline.WorkItem) pipeline.Result {
	if t.SkipExisting {
		if _, err := os.Stat(item.Dest); err == nil {
			return pipeline.Skip(item)
		}
	}

	if err := os.MkdirAll(filepath.Dir(item.Dest), 0o755); err != nil {
		return pipeline.Failure(item, fmt.Errorf("create output directory: %w", err))
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := []string{"-i", item.Source, "-acodec", t.Codec, "-y", item.Dest}
	cmd := exec.CommandContext(ctx, t.Executable, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		res := pipeline.Failure(item, err)
		res.Command = strings.Join(append([]string{t.Executable}, args...), " ")
		res.Stdout = stdout.String()
		res.Stderr = stderr.String()
		res.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			res.Err = fmt.Errorf("timed out after %s: %w", t.Timeout, err)
		}
		return res
	}

	res := pipeline.Success(item)
	if fi, err := os.Stat(item.Source); err == nil {
		res.InBytes = fi.Size()
	}
	if fi, err := os.Stat(item.Dest); err == nil {
		res.OutBytes = fi.Size()
	}
	return res
}
