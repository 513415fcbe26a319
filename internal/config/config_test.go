package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mediabatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultTranscodeConfig(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	assert.Equal(t, "ffmpeg", cfg.Transcoder)
	assert.Equal(t, "pcm_s16le", cfg.Codec)
	assert.Equal(t, "m4a", cfg.SourceExt)
	assert.Equal(t, "wav", cfg.TargetExt)
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
	assert.False(t, cfg.SkipExisting)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
}

func TestParseTranscodeFlags_Positionals(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	err := ParseTranscodeFlags(&cfg, "test", []string{"in/", "out/"})
	require.NoError(t, err)
	assert.Equal(t, "in", cfg.InputDir)
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestParseTranscodeFlags_InPlaceDefault(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	err := ParseTranscodeFlags(&cfg, "test", []string{"music"})
	require.NoError(t, err)
	assert.Equal(t, "music", cfg.InputDir)
	assert.Empty(t, cfg.OutputDir)
}

func TestParseTranscodeFlags_NoArgs(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	err := ParseTranscodeFlags(&cfg, "test", nil)
	assert.Error(t, err)
}

func TestParseTranscodeFlags_Overrides(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	err := ParseTranscodeFlags(&cfg, "test", []string{
		"--ffmpeg", "/opt/ffmpeg", "--codec", "flac",
		"--from", "wav", "--to", "flac",
		"--timeout", "2m", "--skip-existing",
		"--no-color",
		"in", "out",
	})
	require.NoError(t, err)
	assert.Equal(t, "/opt/ffmpeg", cfg.Transcoder)
	assert.Equal(t, "flac", cfg.Codec)
	assert.Equal(t, "wav", cfg.SourceExt)
	assert.Equal(t, "flac", cfg.TargetExt)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.True(t, cfg.SkipExisting)
	assert.Equal(t, ColorNever, cfg.ColorMode)
}

func TestParseTranscodeFlags_ConfigFileThenFlags(t *testing.T) {
	path := writeConfig(t, "codec: flac\ntimeout: 1m\nffmpeg: /opt/ffmpeg\n")

	cfg := DefaultTranscodeConfig()
	err := ParseTranscodeFlags(&cfg, "test", []string{
		"--config", path, "--codec", "opus", "in",
	})
	require.NoError(t, err)
	assert.Equal(t, "opus", cfg.Codec, "flag overrides file")
	assert.Equal(t, time.Minute, cfg.Timeout, "file overrides default")
	assert.Equal(t, "/opt/ffmpeg", cfg.Transcoder)
}

func TestLoadTranscodeFile(t *testing.T) {
	path := writeConfig(t, `
ffmpeg: /usr/local/bin/ffmpeg
codec: flac
from: wav
to: flac
timeout: 90s
skip_existing: true
log: /tmp/run.log
`)
	cfg := DefaultTranscodeConfig()
	require.NoError(t, LoadTranscodeFile(path, &cfg))
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.Transcoder)
	assert.Equal(t, "flac", cfg.Codec)
	assert.Equal(t, "wav", cfg.SourceExt)
	assert.Equal(t, "flac", cfg.TargetExt)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
	assert.True(t, cfg.SkipExisting)
	assert.Equal(t, "/tmp/run.log", cfg.LogFile)
}

func TestLoadTranscodeFile_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "codec: flac\n")
	cfg := DefaultTranscodeConfig()
	require.NoError(t, LoadTranscodeFile(path, &cfg))
	assert.Equal(t, "flac", cfg.Codec)
	assert.Equal(t, "ffmpeg", cfg.Transcoder)
	assert.Equal(t, 15*time.Minute, cfg.Timeout)
}

func TestLoadTranscodeFile_BadTimeout(t *testing.T) {
	path := writeConfig(t, "timeout: soon\n")
	cfg := DefaultTranscodeConfig()
	assert.ErrorContains(t, LoadTranscodeFile(path, &cfg), "timeout")
}

func TestLoadTranscodeFile_Missing(t *testing.T) {
	cfg := DefaultTranscodeConfig()
	assert.Error(t, LoadTranscodeFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg))
}

func TestTranscodeConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TranscodeConfig)
		ok     bool
	}{
		{"valid", func(c *TranscodeConfig) {}, true},
		{"missing input", func(c *TranscodeConfig) { c.InputDir = "" }, false},
		{"empty codec", func(c *TranscodeConfig) { c.Codec = "" }, false},
		{"empty transcoder", func(c *TranscodeConfig) { c.Transcoder = "" }, false},
		{"empty source ext", func(c *TranscodeConfig) { c.SourceExt = "" }, false},
		{"negative timeout", func(c *TranscodeConfig) { c.Timeout = -time.Second }, false},
		{"zero timeout ok", func(c *TranscodeConfig) { c.Timeout = 0 }, true},
		{"bad color mode", func(c *TranscodeConfig) { c.ColorMode = "sometimes" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTranscodeConfig()
			cfg.InputDir = "in"
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDefaultRecolorConfig(t *testing.T) {
	cfg := DefaultRecolorConfig()
	assert.Equal(t, "#FFFFFF", cfg.Color)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
}

func TestParseRecolorFlags(t *testing.T) {
	cfg := DefaultRecolorConfig()
	err := ParseRecolorFlags(&cfg, "test", []string{"-c", "#FF0000", "draw.png", "out.png"})
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", cfg.Color)
	assert.Equal(t, "draw.png", cfg.InputPath)
	assert.Equal(t, "out.png", cfg.OutputPath)
}

func TestParseRecolorFlags_WrongArity(t *testing.T) {
	cfg := DefaultRecolorConfig()
	assert.Error(t, ParseRecolorFlags(&cfg, "test", []string{"only.png"}))

	cfg = DefaultRecolorConfig()
	assert.Error(t, ParseRecolorFlags(&cfg, "test", []string{"a.png", "b.png", "c.png"}))
}

func TestLoadRecolorFile(t *testing.T) {
	path := writeConfig(t, "color: \"#00FF00\"\n")
	cfg := DefaultRecolorConfig()
	require.NoError(t, LoadRecolorFile(path, &cfg))
	assert.Equal(t, "#00FF00", cfg.Color)
}

func TestPeekConfigPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"double dash separate", []string{"--config", "a.yaml", "in"}, "a.yaml"},
		{"single dash separate", []string{"-config", "a.yaml"}, "a.yaml"},
		{"equals form", []string{"--config=b.yaml"}, "b.yaml"},
		{"absent", []string{"in", "out"}, ""},
		{"positional named config", []string{"config", "x"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, peekConfigPath(tt.args))
		})
	}
}

func TestNormalizeDirArg(t *testing.T) {
	assert.Equal(t, "in", NormalizeDirArg("in/"))
	assert.Equal(t, "/a/b", NormalizeDirArg("/a/b///"))
	assert.Equal(t, "/", NormalizeDirArg("/"))
}
