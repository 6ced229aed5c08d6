package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/five82/slicer/internal/config"
	"github.com/five82/slicer/internal/content"
	"github.com/five82/slicer/internal/logtail"
	"github.com/five82/slicer/internal/state"
	"github.com/five82/slicer/internal/ui"
)

// ErrNotTerminal is returned when stdout cannot host the UI.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Options configure the slicer application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/slicer/config.toml
	Demo       bool   // fall back to the built-in sources when no config file exists
	Verbose    bool   // log at debug level
}

// session is everything Run and Check share once configuration is loaded.
type session struct {
	cfg    config.Config
	reg    *content.Registry
	log    *slog.Logger
	closer io.Closer
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Run boots the slicer TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if fd := os.Stdout.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return ErrNotTerminal
	}

	s, err := open(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := waitReady(ctx, s.reg, s.cfg.SourceIDs(), readyInterval, readyAttempts); err != nil {
		if ctx.Err() != nil {
			return err
		}
		s.log.Warn("content not ready, continuing", "error", err)
	}

	store := &state.Store{}
	uiOpts := ui.Options{
		Context: ctx,
		Config:  s.cfg,
		Content: s.reg,
		Store:   store,
		Logger:  s.log,
	}
	err = ui.Run(uiOpts)

	snap := store.Snapshot()
	s.log.Info("session ended",
		"changes", snap.Changes,
		"opens", snap.Opens,
		"holders", snap.State.Holders,
		"busy", snap.Busy(),
		"phase", snap.State.Phase.String(),
	)
	return err
}

// Check loads the configuration and verifies every source can be built,
// reporting each one to w.
func Check(ctx context.Context, opts Options, w io.Writer) error {
	s, err := open(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfg.Path != "" {
		fmt.Fprintf(w, "config: %s\n", s.cfg.Path)
	} else {
		fmt.Fprintln(w, "config: built-in demo")
	}
	var failed []error
	for i, ref := range s.cfg.Sources {
		if err := s.reg.Ready([]string{ref.ID}); err != nil {
			fmt.Fprintf(w, "  %-12s %-16s %v\n", ref.ID, ref.LabelAt(i), err)
			failed = append(failed, err)
			continue
		}
		fmt.Fprintf(w, "  %-12s %-16s ok\n", ref.ID, ref.LabelAt(i))
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d sources not ready: %w", len(failed), len(s.cfg.Sources), errors.Join(failed...))
	}
	return ctx.Err()
}

// open loads configuration, the log file and the content registry.
func open(opts Options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	logger, closer, err := openLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.Info("starting",
		"config", cfg.Path,
		"sources", len(cfg.Sources),
		"duration", cfg.Duration,
		"easing", cfg.Easing.Name,
		"close_mode", cfg.CloseMode.String(),
		"hover", cfg.Hover,
	)

	reg := content.NewRegistry(cfg.Content)
	reg.Dir = cfg.ContentDir
	reg.HideAll(cfg.SourceIDs())

	return &session{cfg: cfg, reg: reg, log: logger, closer: closer}, nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err == nil {
		return cfg, nil
	}
	if opts.Demo && errors.Is(err, os.ErrNotExist) {
		return config.Demo(), nil
	}
	return config.Config{}, fmt.Errorf("load config: %w", err)
}

// Logs writes the last n lines of the configured log file to w, coloured
// when w is a terminal.
func Logs(opts Options, w io.Writer, n int) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	lines, err := logtail.Read(cfg.LogFile, n)
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		lines = logtail.ColorizeLines(lines)
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}
