package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// RecolorConfig holds all runtime settings for the recolor tool. The target
// color is kept as the raw hex string here; the recolor package parses and
// validates it into a ColorSpec.
type RecolorConfig struct {
	// Paths (set from positional args).
	InputPath  string
	OutputPath string

	// Target color as a hex string, with or without leading '#'.
	// Default: opaque white.
	Color string

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode
	LogFile   string
}

// DefaultRecolorConfig returns a RecolorConfig with the historical defaults.
func DefaultRecolorConfig() RecolorConfig {
	return RecolorConfig{
		Color:     "#FFFFFF",
		ColorMode: ColorAuto,
	}
}

// Validate checks field values after flag parsing. The color string itself
// is validated by recolor.ParseColor.
func (c *RecolorConfig) Validate() error {
	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("need exactly input and output image paths")
	}
	if c.Color == "" {
		return errors.New("color must not be empty")
	}
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q", c.ColorMode)
	}
}

// ParseRecolorFlags parses args (usually os.Args[1:]) into cfg. A --config
// YAML file, if given, is applied before the remaining flags.
// On --help or --version it prints and exits.
func ParseRecolorFlags(cfg *RecolorConfig, version string, args []string) error {
	if path := peekConfigPath(args); path != "" {
		if err := LoadRecolorFile(path, cfg); err != nil {
			return err
		}
	}

	fs := flag.NewFlagSet("recolor", flag.ContinueOnError)
	fs.Usage = func() { printRecolorUsage(version) }

	var n negatedFlags
	var configPath string

	fs.StringVar(&configPath, "config", "", "YAML defaults file")
	fs.StringVar(&cfg.Color, "color", cfg.Color, "Target color as #RRGGBB")
	fs.StringVar(&cfg.Color, "c", cfg.Color, "Same as --color")
	defineOutputFlags(fs, cfg.commonFields(), &n)

	if err := fs.Parse(args); err != nil {
		return err
	}
	applyOutputFlags(cfg.commonFields(), &n)

	if n.showHelp {
		printRecolorUsage(version)
		os.Exit(0)
	}
	if n.showVersion {
		fmt.Fprintln(os.Stdout, "recolor v"+version)
		os.Exit(0)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return errors.New("need exactly input and output image paths")
	}
	cfg.InputPath = rest[0]
	cfg.OutputPath = rest[1]
	return nil
}

// printRecolorUsage writes the help text to stderr.
func printRecolorUsage(version string) {
	fmt.Fprintf(os.Stderr, `recolor v%s — recolor the ink pixels of a drawing image

  recolor [OPTIONS] <input> <output>

Pixels whose red, green and blue channels are all below the ink threshold
are rewritten to the target color; everything else, including per-pixel
alpha, is preserved. Output is always PNG.

Options
  -c, --color <#RRGGBB>  Target color (default: #FFFFFF)
  --config <path>        YAML defaults file (flags still override)

Display
  --force-color          Force colored logs
  --no-color             Disable colored logs
  -v, --verbose          Verbose output
  -l, --log <path>       Append logs to file

Utility
  -V, --version          Print version and exit
  -h, --help             Show this help and exit
`, version)
}
