// Package config loads the client configuration: remote endpoint, language,
// page size, and local file locations. Values come from a .gorev.yaml file,
// GOREV_* environment variables, or the defaults, in that order of
// precedence.
package config

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config is the resolved client configuration.
type Config struct {
	// BaseURL is the remote API root, e.g. "http://localhost:5000".
	BaseURL string

	// Language selects the message catalog ("tr" or "en").
	Language string

	// PageSize is the default listing window.
	PageSize int

	// SessionPath is the directory holding the persisted session record.
	SessionPath string

	// LogPath is the debug log file. Empty disables file logging.
	LogPath string
}

// BasePath satisfies the session storage contract.
func (c *Config) BasePath() string {
	return c.SessionPath
}

// Load resolves the configuration. A missing config file is not an error;
// every key has a default.
func Load() (*Config, error) {
	viper.SetDefault("baseURL", "http://localhost:5000")
	viper.SetDefault("language", "tr")
	viper.SetDefault("pageSize", 10)
	viper.SetDefault("sessionPath", "~/.gorev.db")
	viper.SetDefault("logPath", "")

	viper.SetConfigName(".gorev") // .yaml is implicit
	viper.SetEnvPrefix("GOREV")
	viper.AutomaticEnv()

	if override := os.Getenv("GOREV_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	sessionPath, err := homedir.Expand(viper.GetString("sessionPath"))
	if err != nil {
		return nil, err
	}
	logPath := viper.GetString("logPath")
	if logPath != "" {
		if logPath, err = homedir.Expand(logPath); err != nil {
			return nil, err
		}
	}

	return &Config{
		BaseURL:     viper.GetString("baseURL"),
		Language:    viper.GetString("language"),
		PageSize:    viper.GetInt("pageSize"),
		SessionPath: sessionPath,
		LogPath:     logPath,
	}, nil
}
