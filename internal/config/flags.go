package config

// Shared display/logging/utility flag handling for both tools. Negated and
// override flags are captured into negatedFlags during Parse and applied
// afterwards, so that defaults from the config constructors hold unless the
// user passes the flag.

import "flag"

// outputFields points at the display/logging fields common to both configs.
type outputFields struct {
	Verbose   *bool
	ColorMode *ColorMode
	LogFile   *string
}

func (c *TranscodeConfig) commonFields() outputFields {
	return outputFields{&c.Verbose, &c.ColorMode, &c.LogFile}
}

func (c *RecolorConfig) commonFields() outputFields {
	return outputFields{&c.Verbose, &c.ColorMode, &c.LogFile}
}

// negatedFlags holds boolean flags applied after Parse. These either
// override a default (forceColor/noColor) or trigger exit (help, version).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineOutputFlags registers --force-color, --no-color, -v/--verbose,
// -l/--log, -V/--version and -h/--help.
func defineOutputFlags(fs *flag.FlagSet, out outputFields, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "force-color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(out.Verbose, "verbose", *out.Verbose, "Verbose output")
	fs.BoolVar(out.Verbose, "v", *out.Verbose, "Same as --verbose")
	fs.StringVar(out.LogFile, "log", *out.LogFile, "Append logs to file")
	fs.StringVar(out.LogFile, "l", *out.LogFile, "Same as --log")
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyOutputFlags copies negated flag values into the config.
func applyOutputFlags(out outputFields, n *negatedFlags) {
	if n.noColor {
		*out.ColorMode = ColorNever
	} else if n.forceColor {
		*out.ColorMode = ColorAlways
	}
}
