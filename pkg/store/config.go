package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath          = "~/.todo.db"
	defaultKey           = "todos"
	defaultRemovalDelay  = 500 * time.Millisecond
	defaultToastDuration = 3 * time.Second
	defaultLogLevel      = "info"
	logFileName          = "todo.log"
)

// Config describes where and how the task list is kept.
type Config interface {
	// BasePath is the directory holding the store.
	BasePath() string
	// Key names the single entry holding the task snapshot.
	Key() string
	// RemovalDelay is how long a completed task lingers before removal.
	RemovalDelay() time.Duration
	// ToastDuration is how long a notice stays on screen.
	ToastDuration() time.Duration
	LogLevel() string
	LogFile() string
}

// LoadConfig reads .todo.yaml from $TODO_CONFIG_PATH, the working directory
// or the home directory, with TODO_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("key", defaultKey)
	v.SetDefault("removal_delay", defaultRemovalDelay)
	v.SetDefault("toast_duration", defaultToastDuration)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()

	if override := os.Getenv("TODO_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile := v.GetString("log_file")
	if logFile == "" {
		logFile = filepath.Join(path, logFileName)
	}
	if logFile, err = homedir.Expand(logFile); err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	cfg := &fileConfig{
		Path:        path,
		StoreKey:    v.GetString("key"),
		Removal:     v.GetDuration("removal_delay"),
		Toast:       v.GetDuration("toast_duration"),
		Level:       v.GetString("log_level"),
		LogFilePath: logFile,
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = defaultKey
	}
	if cfg.Removal <= 0 {
		cfg.Removal = defaultRemovalDelay
	}
	if cfg.Toast <= 0 {
		cfg.Toast = defaultToastDuration
	}
	return cfg, nil
}

// StaticConfig is a Config with fixed values, used by tests and embedders.
func StaticConfig(path string) Config {
	return &fileConfig{
		Path:        path,
		StoreKey:    defaultKey,
		Removal:     defaultRemovalDelay,
		Toast:       defaultToastDuration,
		Level:       defaultLogLevel,
		LogFilePath: filepath.Join(path, logFileName),
	}
}

type fileConfig struct {
	Path        string        `json:"path"`
	StoreKey    string        `json:"key"`
	Removal     time.Duration `json:"removal_delay"`
	Toast       time.Duration `json:"toast_duration"`
	Level       string        `json:"log_level"`
	LogFilePath string        `json:"log_file"`
}

func (f *fileConfig) BasePath() string             { return f.Path }
func (f *fileConfig) Key() string                  { return f.StoreKey }
func (f *fileConfig) RemovalDelay() time.Duration  { return f.Removal }
func (f *fileConfig) ToastDuration() time.Duration { return f.Toast }
func (f *fileConfig) LogLevel() string             { return f.Level }
func (f *fileConfig) LogFile() string              { return f.LogFilePath }
