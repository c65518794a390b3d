// Package config loads settings for the schnorr command from an optional
// YAML file, SCHNORR_* environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/f3rmion/schnorr/schnorr"
)

// EnvPrefix is prepended to every environment override, e.g.
// SCHNORR_GROUP_BIT_LENGTH.
const EnvPrefix = "SCHNORR"

// Config holds all tunables.
type Config struct {
	Group     GroupConfig     `mapstructure:"group"`
	Signature SignatureConfig `mapstructure:"signature"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GroupConfig controls Schnorr group generation.
type GroupConfig struct {
	BitLength int `mapstructure:"bit_length"`
	Certainty int `mapstructure:"certainty"`
}

// SignatureConfig selects the challenge hash.
type SignatureConfig struct {
	Hash string `mapstructure:"hash"`
}

// LoggingConfig is passed to logging.New.
type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("group.bit_length", 256)
	v.SetDefault("group.certainty", 100)
	v.SetDefault("signature.hash", "sha256")
	v.SetDefault("logging.mode", "production")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
}

// Load reads the configuration. path may be empty, in which case only the
// environment and defaults apply. The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the signing core cannot use.
func (c *Config) Validate() error {
	if c.Group.BitLength < 2 {
		return fmt.Errorf("config: group.bit_length must be at least 2, got %d", c.Group.BitLength)
	}
	if c.Group.Certainty < 1 {
		return fmt.Errorf("config: group.certainty must be at least 1, got %d", c.Group.Certainty)
	}
	if _, err := schnorr.HasherByName(c.Signature.Hash); err != nil {
		return fmt.Errorf("config: signature.hash: %w", err)
	}
	switch c.Logging.Mode {
	case "development", "production":
	default:
		return errors.New("config: logging.mode must be development or production")
	}
	return nil
}

// Hasher returns the configured challenge hash.
func (c *Config) Hasher() (schnorr.Hasher, error) {
	return schnorr.HasherByName(c.Signature.Hash)
}
