package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-slidemaker/internal/config"
)

// envPrefix is the prefix of every recognized environment variable.
const envPrefix = "SLIDEMAKER_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // SLIDEMAKER_CONFIG: config file name or path
	Template   string        // SLIDEMAKER_TEMPLATE: template set name
	AssetPath  string        // SLIDEMAKER_ASSET_PATH: custom asset directory
	Service    string        // SLIDEMAKER_SERVICE: sunday or midweek
	OutputDir  string        // SLIDEMAKER_OUTPUT_DIR: default output directory
	Labels     string        // SLIDEMAKER_LABELS: reserved-label policy
	Timeout    time.Duration // SLIDEMAKER_TIMEOUT: render timeout
}

// knownEnvVars lists valid SLIDEMAKER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SLIDEMAKER_CONFIG":     true,
	"SLIDEMAKER_TEMPLATE":   true,
	"SLIDEMAKER_ASSET_PATH": true,
	"SLIDEMAKER_SERVICE":    true,
	"SLIDEMAKER_OUTPUT_DIR": true,
	"SLIDEMAKER_LABELS":     true,
	"SLIDEMAKER_TIMEOUT":    true,
	"SLIDEMAKER_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable SLIDEMAKER_TIMEOUT is ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SLIDEMAKER_CONFIG"),
		Template:   os.Getenv("SLIDEMAKER_TEMPLATE"),
		AssetPath:  os.Getenv("SLIDEMAKER_ASSET_PATH"),
		Service:    os.Getenv("SLIDEMAKER_SERVICE"),
		OutputDir:  os.Getenv("SLIDEMAKER_OUTPUT_DIR"),
		Labels:     os.Getenv("SLIDEMAKER_LABELS"),
	}

	if timeout := os.Getenv("SLIDEMAKER_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars prints a warning for every unrecognized SLIDEMAKER_*
// variable, e.g. SLIDEMAKER_TEMPLATES.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config file values with the environment.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if env.AssetPath != "" {
		cfg.Template.BasePath = env.AssetPath
	}
	if env.Service != "" {
		cfg.Service.Default = env.Service
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Labels != "" {
		cfg.Labels.Policy = env.Labels
	}
	if env.Timeout > 0 {
		cfg.Render.Timeout = env.Timeout.String()
	}
}
