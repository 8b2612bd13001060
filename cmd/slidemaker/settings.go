package main

import (
	"errors"
	"fmt"
	"strings"

	slidemaker "github.com/alnah/go-slidemaker"
	"github.com/alnah/go-slidemaker/internal/config"
	"github.com/alnah/go-slidemaker/internal/hints"
)

// loadSettings builds the effective configuration for a command: the config
// file (flag value, then SLIDEMAKER_CONFIG), environment overrides, and
// built-in defaults for anything still unset.
func loadSettings(configFlag string) (*config.Config, error) {
	env := loadEnvConfig()

	name := configFlag
	if name == "" {
		name = env.ConfigPath
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	fillDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// fillDefaults sets every empty field that has a built-in default.
func fillDefaults(cfg *config.Config) {
	def := config.DefaultConfig()
	if cfg.Service.Default == "" {
		cfg.Service.Default = def.Service.Default
	}
	if cfg.Output.DateFormat == "" {
		cfg.Output.DateFormat = def.Output.DateFormat
	}
	if cfg.Template.Name == "" {
		cfg.Template.Name = def.Template.Name
	}
	if cfg.Labels.Policy == "" {
		cfg.Labels.Policy = def.Labels.Policy
	}
	cfg.Labels.Policy = strings.ToLower(cfg.Labels.Policy)
}

// noticeFor returns the configured intro notice for service, or "" to use
// the library default.
func noticeFor(cfg *config.Config, service slidemaker.ServiceType) string {
	if service == slidemaker.ServiceMidweek {
		return cfg.Service.MidweekNotice
	}
	return cfg.Service.SundayNotice
}

// converterOptions translates settings into library options.
func converterOptions(cfg *config.Config) ([]slidemaker.Option, error) {
	opts := []slidemaker.Option{slidemaker.WithTemplate(cfg.Template.Name)}
	if cfg.Template.BasePath != "" {
		opts = append(opts, slidemaker.WithAssetPath(cfg.Template.BasePath))
	}

	timeout, err := cfg.Render.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	}
	if timeout > 0 {
		opts = append(opts, slidemaker.WithTimeout(timeout))
	}
	return opts, nil
}

// newConverter builds the converter for cfg and adds hints to template
// lookup failures.
func newConverter(env *Environment, cfg *config.Config) (DeckConverter, error) {
	opts, err := converterOptions(cfg)
	if err != nil {
		return nil, err
	}

	conv, err := env.NewConverter(opts...)
	if err != nil {
		if errors.Is(err, slidemaker.ErrTemplateSetNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForTemplateNotFound(availableTemplates(cfg.Template.BasePath)))
		}
		return nil, err
	}
	return conv, nil
}
