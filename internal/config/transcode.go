package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

// TranscodeConfig holds all runtime settings for the transcode tool. It is
// populated by [DefaultTranscodeConfig], optionally overlaid with a YAML
// defaults file, and then mutated by [ParseTranscodeFlags] before being
// passed (by pointer) to packages that need it.
type TranscodeConfig struct {
	// Paths (set from positional args).
	InputDir  string
	OutputDir string // Empty means in-place, alongside the sources.

	// Transcoder invocation.
	Transcoder string        // Executable name or path. Default: "ffmpeg".
	Codec      string        // Target audio codec. Default: "pcm_s16le".
	SourceExt  string        // Extension of files to convert. Default: "m4a".
	TargetExt  string        // Extension of produced files. Default: "wav".
	Timeout    time.Duration // Per-file subprocess timeout; 0 disables. Default: 15m.

	// Behavior flags.
	SkipExisting bool // Skip items whose destination already exists.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultTranscodeConfig returns a TranscodeConfig with defaults matching
// the historical m4a-to-wav behavior, except that the subprocess now has a
// finite default timeout.
func DefaultTranscodeConfig() TranscodeConfig {
	return TranscodeConfig{
		Transcoder:   "ffmpeg",
		Codec:        "pcm_s16le",
		SourceExt:    "m4a",
		TargetExt:    "wav",
		Timeout:      15 * time.Minute,
		SkipExisting: false,
		ColorMode:    ColorAuto,
	}
}

// Validate checks field values after flag parsing.
func (c *TranscodeConfig) Validate() error {
	if c.InputDir == "" {
		return errors.New("need an input directory")
	}
	if c.Transcoder == "" {
		return errors.New("transcoder executable must not be empty")
	}
	if c.Codec == "" {
		return errors.New("codec must not be empty")
	}
	if c.SourceExt == "" || c.TargetExt == "" {
		return errors.New("source and target extensions must not be empty")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}
}

// ParseTranscodeFlags parses args (usually os.Args[1:]) into cfg. A --config
// YAML file, if given, is applied before the remaining flags so that flags
// override file values and file values override built-in defaults.
// On --help or --version it prints and exits.
func ParseTranscodeFlags(cfg *TranscodeConfig, version string, args []string) error {
	if path := peekConfigPath(args); path != "" {
		if err := LoadTranscodeFile(path, cfg); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("transcode", flag.ContinueOnError)
	fs.Usage = func() { printTranscodeUsage(version) }

	var n negatedFlags
	var configPath string

	fs.StringVar(&configPath, "config", "", "YAML defaults file")
	fs.StringVar(&cfg.Transcoder, "ffmpeg", cfg.Transcoder, "Transcoder executable name or path")
	fs.StringVar(&cfg.Codec, "codec", cfg.Codec, "Target audio codec")
	fs.StringVar(&cfg.SourceExt, "from", cfg.SourceExt, "Source file extension")
	fs.StringVar(&cfg.TargetExt, "to", cfg.TargetExt, "Target file extension")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-file transcoder timeout (0 disables)")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "Skip files whose output already exists")
	defineOutputFlags(fs, cfg.commonFields(), &n)

	if err := fs.Parse(args); err != nil {
		return err
	}
	applyOutputFlags(cfg.commonFields(), &n)

	if n.showHelp {
		printTranscodeUsage(version)
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, "transcode v"+version)
		os.Exit(0)
	}

	rest := fs.Args()
	switch len(rest) {
	case 1:
		cfg.InputDir = NormalizeDirArg(rest[0])
	case 2:
		cfg.InputDir = NormalizeDirArg(rest[0])
		cfg.OutputDir = NormalizeDirArg(rest[1])
	default:
		return errors.New("need input_dir and optionally output_dir")
	}
	return nil
}

// printTranscodeUsage writes the help text to stderr.
func printTranscodeUsage(version string) {
	fmt.Fprintf(os.Stderr, `transcode v%s — batch audio conversion via an external transcoder

  transcode [OPTIONS] <input_dir> [output_dir]

When output_dir is omitted, converted files are written alongside the
sources, mirroring the input tree otherwise.

Options
  --ffmpeg <path>       Transcoder executable (default: ffmpeg on PATH)
  --codec <name>        Target audio codec (default: pcm_s16le)
  --from <ext>          Source extension to convert (default: m4a)
  --to <ext>            Target extension to produce (default: wav)
  --timeout <dur>       Per-file timeout, e.g. 5m; 0 disables (default: 15m)
  --skip-existing       Skip files whose output already exists
  --config <path>       YAML defaults file (flags still override)

Display
  --force-color         Force colored logs
  --no-color            Disable colored logs
  -v, --verbose         Verbose output
  -l, --log <path>      Append logs to file

Utility
  -V, --version         Print version and exit
  -h, --help            Show this help and exit
`, version)
}
