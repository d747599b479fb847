package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names shared by the command line and the settings keys
const (
	FlagQuiet    = "quiet"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
)

// LoggingConfig controls log level and output
type LoggingConfig struct {
	Level      string `mapstructure:"log-level"`
	File       string `mapstructure:"log-file"`
	MaxSizeMB  int    `mapstructure:"log-max-size"`
	MaxBackups int    `mapstructure:"log-max-backups"`
	MaxAgeDays int    `mapstructure:"log-max-age"`
}

// Config holds the settings for a single run
type Config struct {
	Quiet   bool          `mapstructure:"quiet"`
	Logging LoggingConfig `mapstructure:",squash"`
}

// Load builds the configuration from defaults and the given flags.
// Nothing is read from files or the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// RegisterFlags adds the configuration flags to a flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolP(FlagQuiet, "q", false, "do not print the banner")
	flags.String(FlagLogLevel, "warn", "log level (debug, info, warn, error)")
	flags.String(FlagLogFile, "", "also append logs to this file")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(FlagQuiet, false)

	v.SetDefault(FlagLogLevel, "warn")
	v.SetDefault(FlagLogFile, "")
	v.SetDefault("log-max-size", 10)
	v.SetDefault("log-max-backups", 3)
	v.SetDefault("log-max-age", 28)
}
