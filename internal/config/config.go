// Package config provides configuration types, defaults and loading for
// patterns.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"patterns/internal/journal"
	"patterns/internal/log"
	"patterns/internal/sorting"
)

// DefaultFileName is looked up in the working directory before the user
// config directory.
const DefaultFileName = ".patterns.yaml"

// Config holds all configuration options for patterns.
type Config struct {
	Catalog     string      `mapstructure:"catalog" yaml:"catalog"` // markdown catalog file, empty for built-in
	Script      string      `mapstructure:"script" yaml:"script"`   // editor script file, empty for built-in
	Journal     string      `mapstructure:"journal" yaml:"journal"` // transcript output, empty to skip
	Discount    int         `mapstructure:"discount" yaml:"discount"`
	Subscribers []string    `mapstructure:"subscribers" yaml:"subscribers"`
	Strategies  []string    `mapstructure:"strategies" yaml:"strategies"` // applied in order
	Sections    []string    `mapstructure:"sections" yaml:"sections"`     // empty runs all
	Debug       bool        `mapstructure:"debug" yaml:"debug"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	LogLevel    string      `mapstructure:"log_level" yaml:"log_level"`
	Theme       ThemeConfig `mapstructure:"theme" yaml:"theme"`
}

// ThemeConfig holds TUI colors as hex strings.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight" yaml:"highlight"`
	Subtle    string `mapstructure:"subtle" yaml:"subtle"`
	Error     string `mapstructure:"error" yaml:"error"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Discount:    20,
		Subscribers: []string{"Customer1", "Customer2"},
		Strategies:  []string{"price", "popularity"},
		LogFile:     "patterns-debug.log",
		LogLevel:    "debug",
		Theme: ThemeConfig{
			Highlight: "#00FFFF",
			Subtle:    "#555555",
			Error:     "#FF5555",
		},
	}
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("script", d.Script)
	v.SetDefault("journal", d.Journal)
	v.SetDefault("discount", d.Discount)
	v.SetDefault("subscribers", d.Subscribers)
	v.SetDefault("strategies", d.Strategies)
	v.SetDefault("sections", d.Sections)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("theme.highlight", d.Theme.Highlight)
	v.SetDefault("theme.subtle", d.Theme.Subtle)
	v.SetDefault("theme.error", d.Theme.Error)
}

// Load reads configuration into v and decodes it. cfgFile, when set, must
// exist. Otherwise ./.patterns.yaml and then ~/.config/patterns/config.yaml
// are tried, and a missing file just means defaults. Environment variables
// prefixed PATTERNS_ override file values.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix("patterns")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(DefaultFileName); err == nil {
		v.SetConfigFile(DefaultFileName)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "patterns"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debug(log.CatConfig, "config loaded", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a run.
func (c Config) Validate() error {
	if c.Discount < 0 || c.Discount > 100 {
		return fmt.Errorf("discount %d out of range 0-100", c.Discount)
	}
	if _, err := c.SortingStrategies(); err != nil {
		return err
	}
	if _, err := c.Scenarios(); err != nil {
		return err
	}
	return nil
}

// SortingStrategies resolves Strategies to strategy values.
func (c Config) SortingStrategies() ([]sorting.Strategy, error) {
	out := make([]sorting.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := sorting.ByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Scenarios resolves Sections to demo scenarios.
func (c Config) Scenarios() ([]journal.Scenario, error) {
	var out []journal.Scenario
	for _, name := range c.Sections {
		found := false
		for _, s := range journal.Scenarios() {
			if strings.EqualFold(string(s), strings.TrimSpace(name)) {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown section %q", name)
		}
	}
	return out, nil
}
