package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeLines(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "slicer.log")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeLines(t, 10)

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"last three", 3, []string{"line 8", "line 9", "line 10"}},
		{"exactly all", 10, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7", "line 8", "line 9", "line 10"}},
		{"more than file", 12, []string{"line 1", "line 2", "line 3", "line 4", "line 5", "line 6", "line 7", "line 8", "line 9", "line 10"}},
		{"one", 1, []string{"line 10"}},
		{"zero", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.n)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Read(%d) (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "none.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v", got, err)
	}
}

func TestParse(t *testing.T) {
	line := `time=2026-01-02T03:04:05.000Z level=INFO msg="open" content=tide from="inset(0% 20px 0% 20px)"`
	want := []Field{
		{"time", "2026-01-02T03:04:05.000Z"},
		{"level", "INFO"},
		{"msg", `"open"`},
		{"content", "tide"},
		{"from", `"inset(0% 20px 0% 20px)"`},
	}
	if diff := cmp.Diff(want, Parse(line)); diff != "" {
		t.Fatalf("Parse (-want +got):\n%s", diff)
	}

	if got := Parse("panic: something broke"); got != nil {
		t.Fatalf("Parse(non-record) = %v, want nil", got)
	}
	escaped := Parse(`msg="say \"hi\"" n=1`)
	if len(escaped) != 2 || escaped[0].Value != `"say \"hi\""` {
		t.Fatalf("Parse(escaped) = %v", escaped)
	}
}

func TestColorize(t *testing.T) {
	plain := "goroutine 1 [running]:"
	if got := Colorize(plain); got != plain {
		t.Fatalf("Colorize changed a non-record line: %q", got)
	}

	got := Colorize(`time=t level=WARN msg="content not ready, continuing" error=x`)
	for _, want := range []string{"WARN", "content not ready, continuing", "error=", "x"} {
		if !strings.Contains(got, want) {
			t.Fatalf("Colorize output %q missing %q", got, want)
		}
	}
	if lines := ColorizeLines([]string{plain, plain}); len(lines) != 2 {
		t.Fatalf("ColorizeLines len = %d", len(lines))
	}
}
