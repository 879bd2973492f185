package builder

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ExpandGlob expands a glob pattern relative to baseDir, supporting ** for recursive matching.
// Directories expand to the files beneath them; only regular files are returned.
func ExpandGlob(baseDir, pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return expandRecursive(baseDir, pattern)
	}

	matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
	if err != nil {
		return nil, err
	}

	// If no matches and no glob chars, try as direct path
	if len(matches) == 0 && !containsGlobChars(pattern) {
		fullPath := filepath.Join(baseDir, pattern)
		if _, err := os.Stat(fullPath); err == nil {
			matches = append(matches, fullPath)
		}
	}

	var results []string
	for _, match := range matches {
		files, err := walkFiles(baseDir, match)
		if err != nil {
			return nil, err
		}
		results = append(results, files...)
	}
	return results, nil
}

// expandRecursive handles patterns of the form prefix/**/suffix
func expandRecursive(baseDir, pattern string) ([]string, error) {
	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.Trim(parts[0], "/"+string(filepath.Separator))
	suffix := strings.TrimLeft(parts[1], "/"+string(filepath.Separator))

	startDir := baseDir
	if prefix != "" {
		startDir = filepath.Join(baseDir, prefix)
	}
	if _, err := os.Stat(startDir); err != nil {
		return nil, nil
	}

	var results []string
	err := filepath.WalkDir(startDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}

		if suffix != "" {
			// Match the file name, then the path below the ** point
			matched, _ := filepath.Match(suffix, d.Name())
			if !matched {
				relFromStart, _ := filepath.Rel(startDir, p)
				matched, _ = filepath.Match(suffix, relFromStart)
			}
			if !matched {
				return nil
			}
		}

		if rel, err := filepath.Rel(baseDir, p); err == nil {
			results = append(results, rel)
		}
		return nil
	})
	return results, err
}

// walkFiles returns root itself when it is a file, or every file below it
func walkFiles(baseDir, root string) ([]string, error) {
	var results []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if rel, err := filepath.Rel(baseDir, p); err == nil {
			results = append(results, rel)
		}
		return nil
	})
	return results, err
}

// containsGlobChars checks if a pattern contains glob special characters
func containsGlobChars(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// IsExcluded checks if a path, or any directory above it, matches one of the exclude patterns
func IsExcluded(p string, excludes []string) bool {
	p = filepath.ToSlash(p)
	for _, pattern := range excludes {
		if matchPattern(p, pattern) {
			return true
		}
		for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
			if matchPattern(dir, pattern) {
				return true
			}
		}
	}
	return false
}

// matchPattern checks if a path matches a pattern (supports * and **)
func matchPattern(p, pattern string) bool {
	p = filepath.ToSlash(p)
	pattern = filepath.ToSlash(pattern)

	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix != "" && !strings.HasPrefix(p, prefix+"/") {
			return false
		}
		if suffix == "" {
			return true
		}

		// Match against filename, then against the path suffix
		if matched, _ := path.Match(suffix, path.Base(p)); matched {
			return true
		}
		return strings.HasSuffix(p, "/"+suffix) || p == suffix
	}

	if matched, _ := path.Match(pattern, p); matched {
		return true
	}

	// Also try matching against just the filename
	matched, _ := path.Match(pattern, path.Base(p))
	return matched
}

// ExpandIncludes expands all include patterns and returns unique file paths
func ExpandIncludes(baseDir string, includes []string, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var results []string

	for _, pattern := range includes {
		expanded, err := ExpandGlob(baseDir, pattern)
		if err != nil {
			return nil, err
		}

		for _, p := range expanded {
			if IsExcluded(p, excludes) || seen[p] {
				continue
			}
			seen[p] = true
			results = append(results, p)
		}
	}

	return results, nil
}
