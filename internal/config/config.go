package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors.
var (
	ErrEmptyOutput        = errors.New("output file must not be empty")
	ErrNoSourceExtensions = errors.New("at least one source extension is required")
	ErrBadExtension       = errors.New("source extensions must start with a dot")
	ErrEmptyDirName       = errors.New("test marker, source dir and dependency dir must not be empty")
	ErrBadLogLevel        = errors.New("log level must be one of debug, info, warn, error")
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputFile string `mapstructure:"output"`

	// Discovery settings
	SourceExtensions  []string `mapstructure:"source_extensions"`
	TestDirMarker     string   `mapstructure:"test_dir_marker"`
	SourceDirName     string   `mapstructure:"source_dir"`
	DependencyDirName string   `mapstructure:"dependency_dir"`
	PathsToIgnore     []string `mapstructure:"ignore_dirs"`

	// Rendering settings
	IncludeAssistant bool `mapstructure:"include_assistant"`

	// Console settings
	ShowProgress bool   `mapstructure:"progress"`
	LogLevel     string `mapstructure:"log_level"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Repository             string
	RepoPath               string
	Language               string
	Framework              string
	Output                 string
	NameFilter             string
	SourceFiles            []string
	TestFile               string
	SourceFileContents     []string
	DependencyFileContents []string
	TestExampleContent     string
	IncludeAssistant       bool
	IncludeAssistantSet    bool
	Verbose                bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		OutputFile:        DefaultOutputFile,
		TestDirMarker:     DefaultTestDirMarker,
		SourceDirName:     DefaultSourceDirName,
		DependencyDirName: DefaultDependencyDirName,
		IncludeAssistant:  DefaultIncludeAssistant,
		ShowProgress:      DefaultShowProgress,
		LogLevel:          DefaultLogLevel,
	}
	cfg.SourceExtensions = append([]string(nil), DefaultSourceExtensions...)
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	return cfg
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputFile) == "" {
		return ErrEmptyOutput
	}
	if len(c.SourceExtensions) == 0 {
		return ErrNoSourceExtensions
	}
	for _, ext := range c.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrBadExtension, ext)
		}
	}
	if c.TestDirMarker == "" || c.SourceDirName == "" || c.DependencyDirName == "" {
		return ErrEmptyDirName
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}
	return nil
}

// GetOutputPath returns the output file, preferring the --output flag
func (c *Config) GetOutputPath() string {
	if c.Flags.Output != "" {
		return c.Flags.Output
	}
	return c.OutputFile
}

// GetRepoPath returns the cleaned repository root from --repo_path
func (c *Config) GetRepoPath() string {
	if c.Flags.RepoPath == "" {
		return "."
	}
	return filepath.Clean(c.Flags.RepoPath)
}

// IncludeAssistantMessage reports whether auto runs emit the assistant turn.
// An explicit flag wins over the configured default.
func (c *Config) IncludeAssistantMessage() bool {
	if c.Flags.IncludeAssistantSet {
		return c.Flags.IncludeAssistant
	}
	return c.IncludeAssistant
}

// GetLogLevel returns the effective log level, forced to debug by --verbose
func (c *Config) GetLogLevel() string {
	if c.Flags.Verbose {
		return "debug"
	}
	return strings.ToLower(c.LogLevel)
}
