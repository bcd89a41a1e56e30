package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// TomlConfigFileName is the dedicated TOML configuration file searched for
// from the input report's directory upwards
const TomlConfigFileName = ".cmreport.toml"

// CmreportTomlConfig represents the structure of .cmreport.toml
type CmreportTomlConfig struct {
	Output CmreportTomlOutputConfig `toml:"output"`
}

// CmreportTomlOutputConfig is the [output] section. Pointers detect unset keys.
type CmreportTomlOutputConfig struct {
	Title        *string `toml:"title"`
	Stylesheet   *string `toml:"stylesheet"`
	OpenBrowser  *bool   `toml:"open_browser"`
	ShowProgress *bool   `toml:"show_progress"`
}

// FindTomlConfig walks up the directory tree from startDir to find .cmreport.toml
func FindTomlConfig(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, TomlConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// LoadTomlConfig reads a .cmreport.toml file and merges the keys it sets into cfg
func LoadTomlConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var tomlCfg CmreportTomlConfig
	if err := toml.Unmarshal(data, &tomlCfg); err != nil {
		return fmt.Errorf("failed to parse toml config %s: %w", path, err)
	}

	mergeTomlOutput(&cfg.Output, &tomlCfg.Output)
	return nil
}

func mergeTomlOutput(out *OutputConfig, t *CmreportTomlOutputConfig) {
	if t.Title != nil {
		out.Title = *t.Title
	}
	if t.Stylesheet != nil {
		out.Stylesheet = *t.Stylesheet
	}
	if t.OpenBrowser != nil {
		out.OpenBrowser = *t.OpenBrowser
	}
	if t.ShowProgress != nil {
		out.ShowProgress = *t.ShowProgress
	}
}
