package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"jsmin/internal/jsmin"
)

const (
	PropertiesFile = "jsmin.properties"
	YAMLFile       = ".jsmin.yaml"
)

// Config describes which files a project minifies and where the output goes
type Config struct {
	// Files to minify (supports wildcards: *.js, **/*.js)
	Include []string `yaml:"include"`

	// Files/directories to skip (supports wildcards)
	Exclude []string `yaml:"exclude"`

	// Output directory, relative to the project
	Out string `yaml:"out"`

	// Appended to each output file name in place of ".js"
	Suffix string `yaml:"suffix"`

	// String delimiters passed to the minifier
	Quotes string `yaml:"quotes"`

	// Also write a gzip-compressed copy of each output file
	Gzip bool `yaml:"gzip"`

	// Text written as a preserved /*! */ comment at the top of each output
	Banner string `yaml:"banner"`

	// Where the configuration was loaded from, empty for defaults
	Path string `yaml:"-"`
}

// Default returns the configuration used when a project has no config file
func Default() *Config {
	return &Config{
		Include: []string{"**/*.js"},
		Exclude: []string{"node_modules", "**/*.min.js"},
		Out:     "dist",
		Suffix:  ".min.js",
		Quotes:  jsmin.DefaultQuotes,
	}
}

// Exists checks whether the directory holds a jsmin configuration file
func Exists(dir string) bool {
	return PropertiesFileExists(dir, PropertiesFile) || PropertiesFileExists(dir, YAMLFile)
}

// Load reads the project configuration from dir. jsmin.properties is
// preferred over .jsmin.yaml; defaults are returned when neither exists.
func Load(dir string) (*Config, error) {
	if PropertiesFileExists(dir, PropertiesFile) {
		return LoadProperties(filepath.Join(dir, PropertiesFile))
	}
	if PropertiesFileExists(dir, YAMLFile) {
		return LoadYAML(filepath.Join(dir, YAMLFile))
	}
	return Default(), nil
}

// LoadProperties loads configuration from a properties file
func LoadProperties(path string) (*Config, error) {
	props, err := ParseProperties(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Path = path
	if props.Has("include") {
		cfg.Include = props.GetList("include")
	}
	if props.Has("exclude") {
		cfg.Exclude = props.GetList("exclude")
	}
	cfg.Out = props.GetWithDefault("out", cfg.Out)
	cfg.Suffix = props.GetWithDefault("suffix", cfg.Suffix)
	cfg.Quotes = props.GetWithDefault("quotes", cfg.Quotes)
	cfg.Gzip = props.GetBool("gzip")
	cfg.Banner = props.Get("banner")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML loads configuration from a YAML file
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Path = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a build depends on
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("include must list at least one pattern")
	}
	if c.Out == "" || filepath.IsAbs(c.Out) || strings.HasPrefix(filepath.Clean(c.Out), "..") {
		return fmt.Errorf("out must be a directory inside the project, got %q", c.Out)
	}
	if filepath.Clean(c.Out) == "." {
		return fmt.Errorf("out must not be the project directory")
	}
	if c.Suffix == "" {
		return fmt.Errorf("suffix must not be empty")
	}
	if strings.Contains(c.Banner, "*/") {
		return fmt.Errorf("banner must not contain */")
	}
	return nil
}

// Options returns the minifier options for this configuration
func (c *Config) Options() []jsmin.Option {
	return []jsmin.Option{jsmin.WithQuotes(c.Quotes)}
}

const defaultProperties = `# jsmin project configuration

# Files to minify and files to skip (comma separated, ** matches any depth)
include=**/*.js
exclude=node_modules, **/*.min.js

# Output directory and file suffix
out=dist
suffix=.min.js

# String delimiters
quotes='"

# Write a .gz copy next to each minified file
gzip=false

# Preserved comment written at the top of each file
# banner=(c) Example Corp
`

// WriteDefault writes a default jsmin.properties into dir.
// It refuses to overwrite an existing file.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, PropertiesFile)
	if FileExists(path) {
		return "", fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(defaultProperties), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
