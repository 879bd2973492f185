package builder

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"jsmin/internal/config"
	"jsmin/internal/jsmin"
	"jsmin/internal/ui"
)

// FileResult describes one minified file
type FileResult struct {
	Source     string // relative to the project directory
	Output     string // relative to the project directory
	InputSize  int64
	OutputSize int64
	GzipSize   int64 // zero when gzip output is disabled
}

// Saved returns the number of bytes removed by minification
func (r FileResult) Saved() int64 {
	return r.InputSize - r.OutputSize
}

// Report collects the results of a build
type Report struct {
	Files []FileResult
}

// InputSize returns the total size of all sources
func (r *Report) InputSize() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.InputSize
	}
	return n
}

// OutputSize returns the total size of all minified files
func (r *Report) OutputSize() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.OutputSize
	}
	return n
}

// Ratio returns output size as a fraction of input size
func (r *Report) Ratio() float64 {
	in := r.InputSize()
	if in == 0 {
		return 1
	}
	return float64(r.OutputSize()) / float64(in)
}

// Builder minifies the JavaScript files a project configuration selects
type Builder struct {
	Dir    string
	Config *config.Config
	Quiet  bool

	minifier *jsmin.Minifier
}

// New creates a new builder for the project in dir
func New(dir string, cfg *config.Config) *Builder {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Builder{
		Dir:      dir,
		Config:   cfg,
		minifier: jsmin.New(cfg.Options()...),
	}
}

// Sources returns the files to minify, relative to the project directory.
// Anything under the output directory is skipped.
func (b *Builder) Sources() ([]string, error) {
	excludes := append([]string{filepath.ToSlash(filepath.Clean(b.Config.Out)) + "/**"}, b.Config.Exclude...)
	return ExpandIncludes(b.Dir, b.Config.Include, excludes)
}

// OutputPath returns the output path for a source, relative to the project directory
func (b *Builder) OutputPath(source string) string {
	name := strings.TrimSuffix(source, filepath.Ext(source)) + b.Config.Suffix
	return filepath.Join(b.Config.Out, name)
}

// Build minifies every selected source. It stops at the first failure
// or when ctx is cancelled, returning the results gathered so far.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	sources, err := b.Sources()
	if err != nil {
		return nil, fmt.Errorf("failed to expand includes: %w", err)
	}

	report := &Report{}
	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := b.BuildFile(source)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, result)

		if !b.Quiet {
			ui.PrintInfo("%s → %s (%s → %s)", result.Source, result.Output,
				ui.Size(result.InputSize), ui.Size(result.OutputSize))
		}
	}
	return report, nil
}

// BuildFile minifies a single source file into the output directory
func (b *Builder) BuildFile(source string) (FileResult, error) {
	result := FileResult{
		Source: source,
		Output: b.OutputPath(source),
	}

	srcPath := filepath.Join(b.Dir, source)
	dstPath := filepath.Join(b.Dir, result.Output)

	in, err := os.Open(srcPath)
	if err != nil {
		return result, fmt.Errorf("failed to open %s: %w", source, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return result, fmt.Errorf("failed to create output directory: %w", err)
	}

	sizes, err := b.writeOutputs(in, dstPath)
	if err != nil {
		os.Remove(dstPath)
		os.Remove(dstPath + ".gz")
		return result, fmt.Errorf("failed to minify %s: %w", source, err)
	}

	result.InputSize = sizes.in
	result.OutputSize = sizes.out
	if b.Config.Gzip {
		if info, err := os.Stat(dstPath + ".gz"); err == nil {
			result.GzipSize = info.Size()
		}
	}
	return result, nil
}

type sizes struct {
	in, out int64
}

// writeOutputs streams the minified source into dstPath and, when enabled, dstPath.gz
func (b *Builder) writeOutputs(src io.Reader, dstPath string) (sizes, error) {
	var s sizes

	out, err := os.Create(dstPath)
	if err != nil {
		return s, err
	}
	defer out.Close()

	var w io.Writer = out
	var gz *gzip.Writer
	if b.Config.Gzip {
		gzFile, err := os.Create(dstPath + ".gz")
		if err != nil {
			return s, err
		}
		defer gzFile.Close()

		gz, err = gzip.NewWriterLevel(gzFile, gzip.BestCompression)
		if err != nil {
			return s, err
		}
		gz.Name = filepath.Base(dstPath)
		w = io.MultiWriter(out, gz)
	}

	counted := &countingWriter{w: w}
	if b.Config.Banner != "" {
		if _, err := io.WriteString(counted, "/*! "+b.Config.Banner+" */\n"); err != nil {
			return s, err
		}
	}

	countedIn := &countingReader{r: src}
	if err := b.minifier.Minify(countedIn, counted); err != nil {
		return s, err
	}

	if gz != nil {
		if err := gz.Close(); err != nil {
			return s, err
		}
	}
	if err := out.Sync(); err != nil {
		return s, err
	}

	s.in = countedIn.n
	s.out = counted.n
	return s, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
