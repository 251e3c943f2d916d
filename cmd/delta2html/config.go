package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	delta2html "github.com/alnah/go-delta2html"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// maxConfigSize bounds config input to prevent memory exhaustion.
const maxConfigSize = 1 << 20

// Config holds file-based configuration for the CLI.
type Config struct {
	Output OutputConfig `yaml:"output"`
	HTML   HTMLConfig   `yaml:"html"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// HTMLConfig defines HTML rendering options.
type HTMLConfig struct {
	Theme        string `yaml:"theme"`        // chroma style for code blocks (empty = github)
	InlineStyles bool   `yaml:"inlineStyles"` // inline styles instead of ql- classes
	LinkTarget   string `yaml:"linkTarget"`   // target attribute for links
	LinkRel      string `yaml:"linkRel"`      // rel attribute for links
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it's searched in the current directory, then in the user
// config directory. Returns an error if the file is not found.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if len(data) > maxConfigSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrConfigParse, maxConfigSize)
	}

	var cfg Config
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "delta2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// resolveOptions merges config file values and flags into HTML options.
// Flags win over config values. The config's default output directory
// backfills an unset --output.
func resolveOptions(flags *convertFlags) (delta2html.HTMLOptions, error) {
	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return delta2html.HTMLOptions{}, err
		}
		cfg = loaded
	}

	if flags.output == "" {
		flags.output = cfg.Output.DefaultDir
	}

	opts := delta2html.HTMLOptions{
		HighlightTheme: cfg.HTML.Theme,
		InlineStyles:   cfg.HTML.InlineStyles,
		LinkTarget:     cfg.HTML.LinkTarget,
		LinkRel:        cfg.HTML.LinkRel,
	}
	if flags.theme != "" {
		opts.HighlightTheme = flags.theme
	}
	if flags.inlineStyles {
		opts.InlineStyles = true
	}
	if flags.linkTarget != "" {
		opts.LinkTarget = flags.linkTarget
	}
	return opts, nil
}
