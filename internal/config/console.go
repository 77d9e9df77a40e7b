package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	consoleEnvPrefix  = "GROUPADMIN"
	consoleConfigName = "config"
	consoleConfigDir  = "groupadmin"
)

// Console holds the settings of the groupadmin command line console
type Console struct {
	Server     string `mapstructure:"server"`
	Token      string `mapstructure:"token"`
	Accessible bool   `mapstructure:"accessible"`

	v *viper.Viper
}

// NewConsoleViper prepares a viper instance with defaults, GROUPADMIN_*
// environment variables and the config file search path. configFile, when
// set, overrides the search.
func NewConsoleViper(configFile string) *viper.Viper {
	v := viper.New()

	v.SetDefault("server", "http://localhost:8080")
	v.SetDefault("token", "")
	v.SetDefault("accessible", false)

	v.SetConfigName(consoleConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, consoleConfigDir))
	}
	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	}

	v.SetEnvPrefix(consoleEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConsole reads the config file, if one exists, and unmarshals v
func LoadConsole(v *viper.Viper) (*Console, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		logrus.Debugln("No console config file found")
	}

	var cfg Console
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.v = v

	return &cfg, nil
}

// Path returns the file the console config is saved to
func (c *Console) Path() (string, error) {
	if used := c.v.ConfigFileUsed(); used != "" {
		return used, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, consoleConfigDir, consoleConfigName+".yaml"), nil
}

// SaveToken stores token in the config file so later commands reuse it
func (c *Console) SaveToken(token string) error {
	path, err := c.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	c.Token = token
	c.v.Set("token", token)
	c.v.Set("server", c.Server)

	if err := c.v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return os.Chmod(path, 0o600)
}
