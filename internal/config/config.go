// Package config wraps viper for tool-wide settings.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Load reads configuration from dlstool.cfg.json in configDir and sets
// default values. A missing config file is not an error: the tool must work
// bare, with defaults only.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./dlslogs")
	viper.SetDefault("logToFile", false)

	// Root of the game installation; used to resolve relative scan paths.
	viper.SetDefault("gameDir", "")

	viper.SetConfigName("dlstool.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
