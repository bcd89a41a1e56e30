package service

import (
	"path/filepath"

	"github.com/ludo-technologies/cmreport/domain"
	"github.com/ludo-technologies/cmreport/internal/config"
)

// FlagOverrides carries the command-line values that may override configuration
type FlagOverrides struct {
	Title      string
	Open       bool
	NoProgress bool
}

// ConfigurationLoaderImpl resolves configuration for a conversion, honouring explicitly set flags
type ConfigurationLoaderImpl struct {
	explicitFlags map[string]bool
}

// NewConfigurationLoader creates a loader. explicitFlags names the flags the user actually set.
func NewConfigurationLoader(explicitFlags map[string]bool) *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{explicitFlags: explicitFlags}
}

// Load layers defaults, .cmreport.toml near the input, the YAML/JSON config and flags.
// It returns the configuration and the files that contributed to it.
func (c *ConfigurationLoaderImpl) Load(configPath, inputPath string, flags FlagOverrides) (*config.Config, []string, error) {
	searchDir := ""
	if inputPath != "" {
		searchDir = filepath.Dir(inputPath)
	}

	cfg, sources, err := config.Load(configPath, searchDir)
	if err != nil {
		return nil, nil, domain.NewConfigError("failed to load configuration", err)
	}

	cfg.Output.ApplyFlags(flags.Title, flags.Open, flags.NoProgress, c.explicitFlags)

	if err := cfg.Validate(); err != nil {
		return nil, nil, domain.NewConfigError("invalid configuration", err)
	}

	return cfg, sources, nil
}

// CreateConfigTemplate writes the default configuration to path
func (c *ConfigurationLoaderImpl) CreateConfigTemplate(path string) error {
	if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
		return domain.NewConfigError("failed to create configuration file", err)
	}
	return nil
}
