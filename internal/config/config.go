// Package config loads slidemaker YAML configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-slidemaker/internal/assets"
	"github.com/alnah/go-slidemaker/internal/dateutil"
	"github.com/alnah/go-slidemaker/internal/fileutil"
	"github.com/alnah/go-slidemaker/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-slidemaker"

// Field length limits.
const (
	MaxNoticeLength = 200  // Intro slide notice
	MaxPathLength   = 4096 // Directories
	MaxNameLength   = 64   // Template set name
)

// Service types accepted in service.default.
const (
	ServiceSunday  = "sunday"
	ServiceMidweek = "midweek"
)

// Reserved-label policies accepted in labels.policy.
const (
	LabelPolicyPrompt = "prompt" // ask before generating (default)
	LabelPolicyIgnore = "ignore" // generate without asking
	LabelPolicyFail   = "fail"   // refuse to generate
)

// Render timeout bounds.
const (
	MinRenderTimeout = time.Second
	MaxRenderTimeout = 10 * time.Minute
)

// Config holds all configuration for deck generation.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Render   RenderConfig   `yaml:"render"`
	Labels   LabelsConfig   `yaml:"labels"`
}

// ServiceConfig defines the service type and intro notices.
type ServiceConfig struct {
	Default       string `yaml:"default"`       // "sunday" or "midweek" (default: "sunday")
	SundayNotice  string `yaml:"sundayNotice"`  // Intro text for Sunday services
	MidweekNotice string `yaml:"midweekNotice"` // Intro text for midweek services
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
	DateFormat string `yaml:"dateFormat"` // Date part of the default deck name (default: "DD MM YYYY")
}

// TemplateConfig selects the slide template set.
type TemplateConfig struct {
	Name     string `yaml:"name"`     // Template set name (default: "default")
	BasePath string `yaml:"basePath"` // Custom asset directory, empty = embedded sets only
}

// RenderConfig defines renderer options.
type RenderConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "90s" (default: 30s)
	HTML    bool   `yaml:"html"`    // Also write the HTML deck next to the PDF
}

// LabelsConfig defines the reserved-label policy.
type LabelsConfig struct {
	Policy string `yaml:"policy"` // prompt, ignore, fail (default: prompt)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for library users who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateOneOf("service.default", c.Service.Default, ServiceSunday, ServiceMidweek); err != nil {
		return err
	}
	if err := validateFieldLength("service.sundayNotice", c.Service.SundayNotice, MaxNoticeLength); err != nil {
		return err
	}
	if err := validateFieldLength("service.midweekNotice", c.Service.MidweekNotice, MaxNoticeLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if c.Output.DateFormat != "" {
		if _, err := dateutil.ResolveFormat(c.Output.DateFormat); err != nil {
			return fmt.Errorf("output.dateFormat: %w", err)
		}
	}

	if c.Template.Name != "" {
		if err := assets.ValidateAssetName(c.Template.Name); err != nil {
			return fmt.Errorf("template.name: %w", err)
		}
	}
	if err := validateFieldLength("template.basePath", c.Template.BasePath, MaxPathLength); err != nil {
		return err
	}

	if _, err := c.Render.TimeoutDuration(); err != nil {
		return err
	}

	return validateOneOf("labels.policy", c.Labels.Policy, LabelPolicyPrompt, LabelPolicyIgnore, LabelPolicyFail)
}

// TimeoutDuration parses render.timeout. Returns 0 when unset.
func (r RenderConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout %q: %v", ErrInvalidValue, r.Timeout, err)
	}
	if d < MinRenderTimeout || d > MaxRenderTimeout {
		return 0, fmt.Errorf("%w: render.timeout %s out of range [%s, %s]",
			ErrInvalidValue, d, MinRenderTimeout, MaxRenderTimeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts an empty value or one of allowed, case-insensitively.
func validateOneOf(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Service:  ServiceConfig{Default: ServiceSunday},
		Output:   OutputConfig{DateFormat: dateutil.DefaultDeckDateFormat},
		Template: TemplateConfig{Name: assets.DefaultTemplateSetName},
		Labels:   LabelsConfig{Policy: LabelPolicyPrompt},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same in the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
