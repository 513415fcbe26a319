package config

// Optional YAML defaults file support. The file supplies defaults only:
// values from the file overlay the built-in defaults, and CLI flags overlay
// both. Zero-valued fields in the file leave the config untouched.

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// transcodeFile is the YAML schema recognized by the transcode tool.
type transcodeFile struct {
	Ffmpeg       string `yaml:"ffmpeg"`
	Codec        string `yaml:"codec"`
	From         string `yaml:"from"`
	To           string `yaml:"to"`
	Timeout      string `yaml:"timeout"`
	SkipExisting *bool  `yaml:"skip_existing"`
	Log          string `yaml:"log"`
}

// recolorFile is the YAML schema recognized by the recolor tool.
type recolorFile struct {
	Color string `yaml:"color"`
	Log   string `yaml:"log"`
}

// LoadTranscodeFile overlays cfg with values from the YAML file at path.
func LoadTranscodeFile(path string, cfg *TranscodeConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var f transcodeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if f.Ffmpeg != "" {
		cfg.Transcoder = f.Ffmpeg
	}
	if f.Codec != "" {
		cfg.Codec = f.Codec
	}
	if f.From != "" {
		cfg.SourceExt = f.From
	}
	if f.To != "" {
		cfg.TargetExt = f.To
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("config file %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	if f.SkipExisting != nil {
		cfg.SkipExisting = *f.SkipExisting
	}
	if f.Log != "" {
		cfg.LogFile = f.Log
	}
	return nil
}

// LoadRecolorFile overlays cfg with values from the YAML file at path.
func LoadRecolorFile(path string, cfg *RecolorConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var f recolorFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	if f.Color != "" {
		cfg.Color = f.Color
	}
	if f.Log != "" {
		cfg.LogFile = f.Log
	}
	return nil
}

// peekConfigPath scans raw args for --config before the flag set parses
// them, so the file can be applied first and flags keep precedence.
// Recognized forms: --config path, --config=path (single dash too).
func peekConfigPath(args []string) string {
	for i, a := range args {
		if !strings.HasPrefix(a, "-") {
			continue
		}
		name := strings.TrimLeft(a, "-")
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
	}
	return ""
}
