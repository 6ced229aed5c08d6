package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/slicer/internal/clip"
	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/reveal"
	"github.com/five82/slicer/internal/transition"
)

// ErrNoSources is returned when a config lists no usable sources and has no
// content tables to fall back on.
var ErrNoSources = errors.New("no sources configured")

// Config is the resolved program configuration.
type Config struct {
	Path    string
	Sources []content.Ref
	Content map[string]content.Definition
	// ContentDir resolves relative content paths (the config's directory).
	ContentDir string

	Duration   time.Duration
	Easing     clip.Easing
	LeaveDelay time.Duration
	CloseMode  reveal.CloseMode
	Hover      bool
	// Theme names the UI palette; unknown names fall back to the default.
	Theme string

	LogFile  string
	LogLevel slog.Level
}

const (
	defaultConfigPath = "~/.config/slicer/config.toml"
	defaultLogFile    = "~/.local/state/slicer/slicer.log"
)

type rawConfig struct {
	Duration   string                        `toml:"duration" yaml:"duration"`
	Easing     string                        `toml:"easing" yaml:"easing"`
	LeaveDelay string                        `toml:"leave_delay" yaml:"leave_delay"`
	CloseMode  string                        `toml:"close_mode" yaml:"close_mode"`
	Hover      *bool                         `toml:"hover" yaml:"hover"`
	Theme      string                        `toml:"theme" yaml:"theme"`
	LogFile    string                        `toml:"log_file" yaml:"log_file"`
	LogLevel   string                        `toml:"log_level" yaml:"log_level"`
	Sources    []any                         `toml:"sources" yaml:"sources"`
	Content    map[string]content.Definition `toml:"content" yaml:"content"`
}

// Defaults returns the configuration used for anything a file leaves out.
func Defaults() Config {
	return Config{
		Content:    map[string]content.Definition{},
		Duration:   transition.DefaultDuration,
		Easing:     clip.Ease,
		LeaveDelay: reveal.DefaultLeaveDelay,
		CloseMode:  reveal.CloseSlideOut,
		Hover:      true,
		Theme:      "Nightfox",
		LogFile:    mustExpand(defaultLogFile),
		LogLevel:   slog.LevelInfo,
	}
}

// Demo returns the defaults with the built-in demo sources.
func Demo() Config {
	cfg := Defaults()
	cfg.Sources, cfg.Content = content.Demo()
	return cfg
}

// Load reads the config at path, or the default location when path is
// empty. Files ending in .yaml or .yml are parsed as YAML, anything else as
// TOML. A missing file is reported with an error wrapping os.ErrNotExist.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	switch strings.ToLower(filepath.Ext(resolved)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(bytes, &raw)
	default:
		err = toml.Unmarshal(bytes, &raw)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg, err := raw.resolve()
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", resolved, err)
	}
	cfg.Path = resolved
	cfg.ContentDir = filepath.Dir(resolved)
	return cfg, nil
}

func (raw rawConfig) resolve() (Config, error) {
	cfg := Defaults()

	var err error
	if cfg.Duration, err = parseDuration(raw.Duration, cfg.Duration); err != nil {
		return Config{}, fmt.Errorf("duration: %w", err)
	}
	if cfg.LeaveDelay, err = parseDuration(raw.LeaveDelay, cfg.LeaveDelay); err != nil {
		return Config{}, fmt.Errorf("leave_delay: %w", err)
	}
	if strings.TrimSpace(raw.Easing) != "" {
		if cfg.Easing, err = clip.ParseEasing(raw.Easing); err != nil {
			return Config{}, err
		}
	}
	if cfg.CloseMode, err = reveal.ParseCloseMode(raw.CloseMode); err != nil {
		return Config{}, err
	}
	if raw.Hover != nil {
		cfg.Hover = *raw.Hover
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	if file := strings.TrimSpace(raw.LogFile); file != "" {
		cfg.LogFile = mustExpand(file)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
			return Config{}, fmt.Errorf("log_level: %w", err)
		}
	}

	if raw.Content != nil {
		cfg.Content = raw.Content
	}
	if len(raw.Sources) == 0 {
		// Without a list every content table is a source.
		cfg.Sources = content.Normalize(anyStrings(slices.Sorted(maps.Keys(cfg.Content))))
	} else {
		cfg.Sources = content.Normalize(raw.Sources)
	}
	if len(cfg.Sources) == 0 {
		return Config{}, ErrNoSources
	}
	return cfg, nil
}

func anyStrings(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// SourceIDs returns the content identifiers of the configured sources.
func (c Config) SourceIDs() []string {
	return content.IDs(c.Sources)
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
