package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults for the HTML document shell
const (
	DefaultHTMLTitle      = "Code Metrics Report"
	DefaultHTMLStylesheet = "https://unpkg.com/@picocss/pico@1.*/css/pico.min.css"
)

// DefaultConfigFileName is the file written by `cmreport init`
const DefaultConfigFileName = "cmreport.yaml"

// Config represents the main configuration structure
type Config struct {
	// Output holds output rendering configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// OutputConfig controls how reports are rendered and delivered
type OutputConfig struct {
	// Title is the HTML document title
	Title string `mapstructure:"title" yaml:"title"`

	// Stylesheet is the URL of the stylesheet linked from HTML output
	Stylesheet string `mapstructure:"stylesheet" yaml:"stylesheet"`

	// OpenBrowser opens HTML output in the default browser after writing
	OpenBrowser bool `mapstructure:"open_browser" yaml:"open_browser"`

	// ShowProgress shows a progress bar on interactive terminals
	ShowProgress bool `mapstructure:"show_progress" yaml:"show_progress"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Title:        DefaultHTMLTitle,
			Stylesheet:   DefaultHTMLStylesheet,
			OpenBrowser:  false,
			ShowProgress: true,
		},
	}
}

// Load resolves the configuration for one conversion. Sources are layered
// lowest first: defaults, the nearest .cmreport.toml above searchDir, then
// configPath (or a discovered cmreport.yaml/yml/json). An empty searchDir
// skips the TOML lookup. The returned slice names the files that were
// applied, lowest priority first.
func Load(configPath, searchDir string) (*Config, []string, error) {
	cfg := DefaultConfig()
	var sources []string

	if searchDir != "" {
		if tomlPath, err := FindTomlConfig(searchDir); err == nil {
			if err := LoadTomlConfig(tomlPath, cfg); err != nil {
				return nil, nil, err
			}
			sources = append(sources, tomlPath)
		}
	}

	if configPath == "" {
		configPath = findDefaultConfig()
	}
	if configPath != "" {
		if err := loadInto(cfg, configPath); err != nil {
			return nil, nil, err
		}
		sources = append(sources, configPath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, sources, nil
}

// loadInto overlays the keys present in a YAML/JSON file onto cfg
func loadInto(cfg *Config, configPath string) error {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		"cmreport.yaml",
		"cmreport.yml",
		".cmreport.yaml",
		".cmreport.yml",
		"cmreport.json",
		".cmreport.json",
	}

	// Check current directory first
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Title) == "" {
		return fmt.Errorf("output.title must not be empty")
	}
	if strings.TrimSpace(c.Output.Stylesheet) == "" {
		return fmt.Errorf("output.stylesheet must not be empty")
	}
	return nil
}

const configFileHeader = `# cmreport configuration
# Flags given on the command line take precedence over these values.
`

// SaveConfig writes configuration to a YAML file
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	content := append([]byte(configFileHeader), data...)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
