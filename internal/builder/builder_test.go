package builder

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"jsmin/internal/config"
)

const sampleJS = "function f() {\n  return 1;\n}\n"

func newTestBuilder(t *testing.T, dir string, cfg *config.Config) *Builder {
	t.Helper()
	b := New(dir, cfg)
	b.Quiet = true
	return b
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestBuild(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"app.js", "src/util.js", "vendor.min.js", "node_modules/dep/index.js"}, sampleJS)

	b := newTestBuilder(t, tmpDir, config.Default())
	report, err := b.Build(context.Background())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if len(report.Files) != 2 {
		t.Fatalf("built %d files, want 2: %+v", len(report.Files), report.Files)
	}

	for _, out := range []string{"dist/app.min.js", "dist/src/util.min.js"} {
		got := readFile(t, filepath.Join(tmpDir, out))
		if got != "function f(){return 1;}" {
			t.Errorf("%s = %q", out, got)
		}
	}

	if report.InputSize() != int64(2*len(sampleJS)) {
		t.Errorf("InputSize() = %d, want %d", report.InputSize(), 2*len(sampleJS))
	}
	if report.OutputSize() != int64(2*len("function f(){return 1;}")) {
		t.Errorf("OutputSize() = %d", report.OutputSize())
	}
	if report.Ratio() >= 1 {
		t.Errorf("Ratio() = %v, want < 1", report.Ratio())
	}
	for _, f := range report.Files {
		if f.Saved() <= 0 {
			t.Errorf("%s saved %d bytes", f.Source, f.Saved())
		}
	}
}

func TestBuildSkipsOutputDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"app.js"}, sampleJS)

	cfg := config.Default()
	cfg.Suffix = ".js"
	b := newTestBuilder(t, tmpDir, cfg)

	// A second build must not pick up dist/app.js as a source
	for i := 0; i < 2; i++ {
		report, err := b.Build(context.Background())
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if len(report.Files) != 1 {
			t.Fatalf("build %d: %d files, want 1", i, len(report.Files))
		}
	}
}

func TestBuildBannerAndGzip(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"app.js"}, sampleJS)

	cfg := config.Default()
	cfg.Banner = "(c) Example"
	cfg.Gzip = true
	b := newTestBuilder(t, tmpDir, cfg)

	result, err := b.BuildFile("app.js")
	if err != nil {
		t.Fatalf("BuildFile error: %v", err)
	}

	want := "/*! (c) Example */\nfunction f(){return 1;}"
	outPath := filepath.Join(tmpDir, "dist", "app.min.js")
	if got := readFile(t, outPath); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if result.OutputSize != int64(len(want)) {
		t.Errorf("OutputSize = %d, want %d", result.OutputSize, len(want))
	}
	if result.GzipSize == 0 {
		t.Error("GzipSize = 0")
	}

	f, err := os.Open(outPath + ".gz")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Errorf("gzip content = %q, want %q", data, want)
	}
	if zr.Name != "app.min.js" {
		t.Errorf("gzip name = %q", zr.Name)
	}
}

func TestBuildCustomQuotes(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"tpl.js"}, "var t = `a // b`;\n")

	cfg := config.Default()
	cfg.Quotes = "'\"`"
	b := newTestBuilder(t, tmpDir, cfg)

	if _, err := b.BuildFile("tpl.js"); err != nil {
		t.Fatalf("BuildFile error: %v", err)
	}
	if got := readFile(t, filepath.Join(tmpDir, "dist", "tpl.min.js")); got != "var t=`a // b`;" {
		t.Errorf("output = %q", got)
	}
}

func TestBuildFileMissing(t *testing.T) {
	b := newTestBuilder(t, t.TempDir(), nil)
	_, err := b.BuildFile("missing.js")
	if err == nil || !strings.Contains(err.Error(), "missing.js") {
		t.Errorf("BuildFile(missing.js) error = %v", err)
	}
}

func TestBuildCancelled(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"a.js", "b.js"}, sampleJS)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newTestBuilder(t, tmpDir, nil).Build(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build error = %v, want context.Canceled", err)
	}
	if report == nil || len(report.Files) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
}

func TestOutputPath(t *testing.T) {
	b := New(".", config.Default())
	tests := []struct {
		source string
		want   string
	}{
		{"app.js", filepath.Join("dist", "app.min.js")},
		{filepath.Join("src", "lib.js"), filepath.Join("dist", "src", "lib.min.js")},
		{"module.mjs", filepath.Join("dist", "module.min.js")},
	}
	for _, tt := range tests {
		if got := b.OutputPath(tt.source); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}
