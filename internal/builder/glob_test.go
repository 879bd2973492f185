package builder

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func createFiles(t *testing.T, dir string, files []string, content string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

var globFiles = []string{
	"a.js",
	"b.js",
	"style.css",
	"src/app.js",
	"src/util.js",
	"src/lib/helper.js",
	"assets/script.js",
	"assets/app.min.js",
}

func TestExpandGlob(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "glob_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	createFiles(t, tmpDir, globFiles, "test")

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{"single wildcard", "*.js", 2},
		{"css", "*.css", 1},
		{"directory", "src", 3},
		{"recursive js", "**/*.js", 7},
		{"recursive under prefix", "src/**/*.js", 3},
		{"everything under prefix", "src/**", 3},
		{"specific file", "a.js", 1},
		{"subdirectory wildcard", "src/*.js", 2},
		{"assets directory", "assets", 2},
		{"missing file", "missing.js", 0},
		{"missing recursive root", "nope/**/*.js", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandGlob(tmpDir, tt.pattern)
			if err != nil {
				t.Errorf("ExpandGlob(%q) error = %v", tt.pattern, err)
				return
			}
			if len(results) != tt.expected {
				t.Errorf("ExpandGlob(%q) = %d files, want %d. Got: %v", tt.pattern, len(results), tt.expected, results)
			}
		})
	}
}

func TestExpandGlobRelativePaths(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, []string{"src/lib/helper.js"}, "x")

	results, err := ExpandGlob(tmpDir, "src")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("src", "lib", "helper.js")
	if len(results) != 1 || results[0] != want {
		t.Errorf("ExpandGlob(src) = %v, want [%s]", results, want)
	}
}

func TestContainsGlobChars(t *testing.T) {
	tests := []struct {
		pattern  string
		expected bool
	}{
		{"*.js", true},
		{"file?.js", true},
		{"[abc].js", true},
		{"file.js", false},
		{"src/file.js", false},
		{"**/*.js", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			result := containsGlobChars(tt.pattern)
			if result != tt.expected {
				t.Errorf("containsGlobChars(%q) = %v, want %v", tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		excludes []string
		expected bool
	}{
		{"no excludes", "file.js", []string{}, false},
		{"exact match", "file.js", []string{"file.js"}, true},
		{"wildcard match", "file.js", []string{"*.js"}, true},
		{"no match", "file.js", []string{"*.css"}, false},
		{"directory wildcard", "build/file.js", []string{"build/*"}, true},
		{"directory name", "node_modules/pkg/index.js", []string{"node_modules"}, true},
		{"nested directory name", "src/node_modules/x.js", []string{"node_modules"}, true},
		{"output tree", "dist/js/app.min.js", []string{"dist/**"}, true},
		{"recursive exclude", "src/lib/app.min.js", []string{"**/*.min.js"}, true},
		{"recursive no match", "src/lib/app.js", []string{"**/*.min.js"}, false},
		{"multiple excludes match", "file.js", []string{"*.css", "*.js"}, true},
		{"multiple excludes no match", "file.txt", []string{"*.css", "*.js"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsExcluded(tt.path, tt.excludes)
			if result != tt.expected {
				t.Errorf("IsExcluded(%q, %v) = %v, want %v", tt.path, tt.excludes, result, tt.expected)
			}
		})
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		pattern  string
		expected bool
	}{
		{"exact match", "file.js", "file.js", true},
		{"wildcard extension", "file.js", "*.js", true},
		{"wildcard name", "file.js", "file.*", true},
		{"no match", "file.js", "*.css", false},
		{"recursive pattern", "src/lib/file.js", "**/*.js", true},
		{"recursive with prefix", "src/lib/file.js", "src/**/*.js", true},
		{"recursive wrong prefix", "lib/file.js", "src/**/*.js", false},
		{"recursive path suffix", "src/lib/file.js", "**/lib/file.js", true},
		{"path with directory", "src/file.js", "src/*.js", true},
		{"directory prefix", "build/output.js", "build/*", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchPattern(tt.path, tt.pattern)
			if result != tt.expected {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, result, tt.expected)
			}
		})
	}
}

func TestExpandIncludes(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "expand_test")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	createFiles(t, tmpDir, globFiles, "test")

	tests := []struct {
		name     string
		includes []string
		excludes []string
		expected int
	}{
		{"all js", []string{"**/*.js"}, []string{}, 7},
		{"skip minified", []string{"**/*.js"}, []string{"**/*.min.js"}, 6},
		{"skip directory", []string{"**/*.js"}, []string{"src"}, 4},
		{"directory include", []string{"*.js", "src"}, []string{"src/lib"}, 4},
		{"duplicates removed", []string{"*.js", "**/*.js"}, []string{}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := ExpandIncludes(tmpDir, tt.includes, tt.excludes)
			if err != nil {
				t.Errorf("ExpandIncludes() error = %v", err)
				return
			}
			if len(results) != tt.expected {
				sort.Strings(results)
				t.Errorf("ExpandIncludes() = %d files, want %d. Got: %v", len(results), tt.expected, results)
			}
		})
	}
}
