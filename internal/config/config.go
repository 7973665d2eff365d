// Package config loads goalcast settings with viper.
//
// Sources in increasing precedence: defaults, an optional goalcast.toml (or the
// file passed explicitly), GOALCAST_* environment variables, command flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Plan    string       `mapstructure:"plan"`
	DataDir string       `mapstructure:"data_dir"`
	Log     LogConfig    `mapstructure:"log"`
	Output  OutputConfig `mapstructure:"output"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// OutputConfig configures how projected groups are emitted
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Output formats understood by the export package.
var Formats = []string{"json", "yaml", "csv", "table"}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("plan", "goalcast.plan.toml")
	v.SetDefault("data_dir", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("output.format", "table")
}

// NewViper returns a viper instance with defaults, environment binding and,
// when present, the configuration file. An empty configFile looks for
// goalcast.toml in the working directory and tolerates its absence.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("GOALCAST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName("goalcast")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read goalcast.toml")
		}
	}
	return v, nil
}

// LoadWithViper unmarshals and validates configuration from v
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads configuration from defaults, configFile and the environment
func Load(configFile string) (*Config, error) {
	v, err := NewViper(configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Plan == "" {
		return errors.WithHint(errors.New("plan file is required"),
			"pass --plan or set GOALCAST_PLAN")
	}

	format := strings.ToLower(c.Output.Format)
	valid := false
	for _, f := range Formats {
		if f == format {
			valid = true
			break
		}
	}
	if !valid {
		return errors.WithHintf(errors.Newf("unknown output format %q", c.Output.Format),
			"use one of: %s", strings.Join(Formats, ", "))
	}
	c.Output.Format = format

	return nil
}
