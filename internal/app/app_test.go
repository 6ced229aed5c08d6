package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/slicer/internal/config"
)

func TestLoadConfig_DemoFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "missing.toml")

	if _, err := loadConfig(Options{ConfigPath: missing}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("loadConfig without demo = %v, want not-exist", err)
	}

	cfg, err := loadConfig(Options{ConfigPath: missing, Demo: true})
	if err != nil {
		t.Fatalf("loadConfig with demo: %v", err)
	}
	if len(cfg.Sources) != 4 || cfg.Path != "" {
		t.Fatalf("demo config = %d sources, path %q", len(cfg.Sources), cfg.Path)
	}
}

func TestLoadConfig_DemoDoesNotMaskParseErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("sources = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(Options{ConfigPath: path, Demo: true}); err == nil {
		t.Fatalf("loadConfig accepted a broken file")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logFile := filepath.Join(dir, "state", "slicer.log")
	path := filepath.Join(dir, "config.toml")
	body := `
log_file = "` + logFile + `"
sources = ["sky", { id = "photo", label = "Photo" }]

[content.sky]
kind = "fill"
color = "#5f87af"

[content.photo]
kind = "image"
path = "missing.png"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err := Check(context.Background(), Options{ConfigPath: path, Verbose: true}, &out)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 sources not ready") {
		t.Fatalf("Check error = %v", err)
	}
	if !strings.Contains(out.String(), "sky") || !strings.Contains(out.String(), "ok") {
		t.Fatalf("Check output missing ready source:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Photo") {
		t.Fatalf("Check output missing label:\n%s", out.String())
	}

	logged, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(logged), "msg=starting") {
		t.Fatalf("log missing start line:\n%s", logged)
	}
}

func TestCheck_Demo(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	opts := Options{ConfigPath: filepath.Join(t.TempDir(), "none.toml"), Demo: true}
	if err := Check(context.Background(), opts, &out); err != nil {
		t.Fatalf("Check demo: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "built-in demo") {
		t.Fatalf("output = %q", out.String())
	}
	if got := strings.Count(out.String(), " ok\n"); got != len(config.Demo().Sources) {
		t.Fatalf("%d sources ok, want %d", got, len(config.Demo().Sources))
	}
}

func TestOpenLogger_EmptyPathDiscards(t *testing.T) {
	logger, closer, err := openLogger("", 0)
	if err != nil || closer != nil || logger == nil {
		t.Fatalf("openLogger(\"\") = %v, %v, %v", logger, closer, err)
	}
	logger.Info("dropped")
}

func TestLogs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	logFile := filepath.Join(dir, "slicer.log")
	if err := os.WriteFile(logFile, []byte("level=INFO msg=a\nlevel=INFO msg=b\nlevel=INFO msg=c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "config.yaml")
	body := "log_file: " + logFile + "\nsources: [sky]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Logs(Options{ConfigPath: path}, &out, 2); err != nil {
		t.Fatalf("Logs: %v", err)
	}
	if got, want := out.String(), "level=INFO msg=b\nlevel=INFO msg=c\n"; got != want {
		t.Fatalf("Logs output = %q, want %q", got, want)
	}
}
