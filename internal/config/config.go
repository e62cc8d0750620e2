package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the complete dotdrift configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Lint    LintConfig    `toml:"lint"`
}

// GeneralConfig contains general dotdrift settings.
type GeneralConfig struct {
	// Brewfile overrides the default manifest location (~/.Brewfile).
	// A positional command-line argument takes precedence over this.
	Brewfile string `toml:"brewfile"`

	// RecordHistory appends every check and lint run to the history
	// database when true.
	RecordHistory bool `toml:"record_history"`

	// DryRun shows what would happen without executing when true.
	DryRun bool `toml:"dry_run"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose enables detailed output.
	Verbose bool `toml:"verbose"`
}

// LintConfig contains lint orchestrator settings.
type LintConfig struct {
	// Disable lists lint tools that should not run (e.g. "yamllint").
	Disable []string `toml:"disable"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Brewfile:      "",
			RecordHistory: true,
			DryRun:        false,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
		},
		Lint: LintConfig{
			Disable: []string{},
		},
	}
}

// Load loads the configuration from the default path.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(ConfigPath())
}

// SaveTo writes the configuration to a specific path.
func (c *Config) SaveTo(path string) error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ToolDisabled returns true if the named lint tool is disabled.
func (c *Config) ToolDisabled(name string) bool {
	for _, disabled := range c.Lint.Disable {
		if disabled == name {
			return true
		}
	}
	return false
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return c.Output.Color
}
