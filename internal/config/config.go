// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fsx

// Package config loads fsx command settings from fsx.yaml, FSX_* environment
// variables and command flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/woozymasta/fsx"
	"github.com/woozymasta/fsx/internal/output"
)

// Settings keys. Flags use the same names with "-" instead of "_".
const (
	KeyIgnoreFile     = "ignore_file"
	KeyNoIgnoreFile   = "no_ignore_file"
	KeyIgnore         = "ignore"
	KeyIgnoreExt      = "ignore_ext"
	KeyIgnoreCase     = "ignore_case"
	KeyFollowSymlinks = "follow_symlinks"
	KeyMaxDepth       = "max_depth"
	KeyFormat         = "format"
	KeyLogLevel       = "log_level"
	KeyLogFile        = "log_file"
	KeyVerbose        = "verbose"
)

const (
	configName = "fsx"
	configType = "yaml"
	envPrefix  = "FSX"
)

// ErrInvalidMaxDepth indicates a negative depth limit.
var ErrInvalidMaxDepth = errors.New("max depth must not be negative")

// Config holds resolved command settings.
type Config struct {
	// IgnoreFile is the ignore file name read from the walk root.
	IgnoreFile string `mapstructure:"ignore_file" yaml:"ignore_file"`
	// Format is the report output format.
	Format string `mapstructure:"format" yaml:"format"`
	// LogLevel is the zap level name.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// LogFile redirects logs from stderr to a file path.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
	// Ignore are extra patterns evaluated after the ignore file.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`
	// IgnoreExt are file extensions turned into "*.ext" patterns.
	IgnoreExt []string `mapstructure:"ignore_ext" yaml:"ignore_ext"`
	// MaxDepth limits recursion, zero means unbounded.
	MaxDepth int `mapstructure:"max_depth" yaml:"max_depth"`
	// NoIgnoreFile disables reading IgnoreFile.
	NoIgnoreFile bool `mapstructure:"no_ignore_file" yaml:"no_ignore_file"`
	// IgnoreCase enables ASCII case-insensitive pattern matching.
	IgnoreCase bool `mapstructure:"ignore_case" yaml:"ignore_case"`
	// FollowSymlinks walks symlink targets.
	FollowSymlinks bool `mapstructure:"follow_symlinks" yaml:"follow_symlinks"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// Load resolves settings.
//
// With an empty path, fsx.yaml is looked up in the working directory and may
// be absent. An explicit path must exist. Flags present in flags override
// environment and file values only when set on the command line.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
	}

	// Enable environment variable overrides
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers every key so environment variables resolve during
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyIgnoreFile, fsx.DefaultIgnoreFileName)
	v.SetDefault(KeyNoIgnoreFile, false)
	v.SetDefault(KeyIgnore, []string{})
	v.SetDefault(KeyIgnoreExt, []string{})
	v.SetDefault(KeyIgnoreCase, false)
	v.SetDefault(KeyFollowSymlinks, false)
	v.SetDefault(KeyMaxDepth, fsx.Unbounded)
	v.SetDefault(KeyFormat, string(output.Human))
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)
}

// AddFlags registers walk and filter flags named after the settings keys.
func AddFlags(flags *pflag.FlagSet) {
	flags.IntP(flagName(KeyMaxDepth), "d", fsx.Unbounded, "Limit recursion depth, entries directly under PATH are at depth 1 (0 = unlimited)")
	flags.BoolP(flagName(KeyFollowSymlinks), "L", false, "Follow symbolic links, each target is walked once")
	flags.StringArrayP(flagName(KeyIgnore), "i", nil, "Ignore pattern in gitignore syntax, repeatable, evaluated after the ignore file")
	flags.StringSlice(flagName(KeyIgnoreExt), nil, "Ignore files with these extensions, comma separated")
	flags.String(flagName(KeyIgnoreFile), fsx.DefaultIgnoreFileName, "Ignore file name read from the walk root")
	flags.Bool(flagName(KeyNoIgnoreFile), false, "Do not read the ignore file")
	flags.Bool(flagName(KeyIgnoreCase), false, "Match ignore patterns case-insensitively")
	flags.String(flagName(KeyFormat), string(output.Human), "Output format: "+output.FormatNames())
}

// flagName returns the flag name for a settings key.
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// bindFlags binds every known key to its flag when the flag set defines it.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := []string{
		KeyIgnoreFile, KeyNoIgnoreFile, KeyIgnore, KeyIgnoreExt, KeyIgnoreCase,
		KeyFollowSymlinks, KeyMaxDepth, KeyFormat, KeyLogLevel, KeyLogFile,
		KeyVerbose,
	}

	for _, key := range keys {
		flag := flags.Lookup(flagName(key))
		if flag == nil {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	return nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, c.MaxDepth)
	}

	if _, err := output.ParseFormat(c.Format); err != nil {
		return err
	}

	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() output.Format {
	f, err := output.ParseFormat(c.Format)
	if err != nil {
		return output.Human
	}

	return f
}

// WalkOptions returns walk settings.
func (c *Config) WalkOptions() fsx.WalkOptions {
	return fsx.WalkOptions{
		MaxDepth:       c.MaxDepth,
		FollowSymlinks: c.FollowSymlinks,
	}
}

// OverridePatterns returns extension patterns followed by explicit ignore
// patterns, so an explicit "!keep.log" can re-include an ignored extension.
func (c *Config) OverridePatterns() []string {
	return fsx.MergePatterns(fsx.ParseExtensions(c.IgnoreExt), c.Ignore)
}
