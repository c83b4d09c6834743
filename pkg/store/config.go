package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultPath is used when neither the environment nor a config file
	// names a journal root.
	DefaultPath = "~/.daybook"

	envPrefix = "DAYBOOK"

	PathEnv       = "DAYBOOK_PATH"
	ConfigPathEnv = "DAYBOOK_CONFIG_PATH"
	// LegacyPathEnv is honoured for journals created by the earlier tool.
	LegacyPathEnv = "BULLET_JOURNAL_PATH"
)

// ErrNoRoot is returned when the configured root resolves to nothing.
var ErrNoRoot = errors.New("store: journal root path is empty")

// Config resolves where the journal lives.
type Config interface {
	BasePath() string
}

// LoadConfig reads the root from, in order of precedence: DAYBOOK_PATH, a
// .daybook.yaml file (searched in $DAYBOOK_CONFIG_PATH and ./),
// BULLET_JOURNAL_PATH, then DefaultPath.
func LoadConfig() (Config, error) {
	v := viper.New()
	fallback := DefaultPath
	if legacy := os.Getenv(LegacyPathEnv); legacy != "" {
		fallback = legacy
	}
	v.SetDefault("path", fallback)
	v.SetConfigName(".daybook") // .yaml is implicit
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand %q: %w", v.GetString("path"), err)
	}
	if path == "" {
		return nil, ErrNoRoot
	}
	return &fileConfig{Path: path, File: v.ConfigFileUsed()}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	File string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigFile returns the config file that was read, or "" when none was.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

// PathConfig is a Config for a fixed root, used by tests and --path flags.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}
