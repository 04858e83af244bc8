// Package config loads the yaml configuration and applies environment overrides
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/kanban/internal/config/colors"
)

// ColorScheme is re-exported so callers need only this package
type ColorScheme = colors.ColorScheme

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Server      ServerConfig   `yaml:"server"`
	Daemon      DaemonConfig   `yaml:"daemon"`
	Log         LogConfig      `yaml:"log"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the RPC listener of `kanban serve`
type ServerConfig struct {
	ListenAddr      string        `yaml:"listen_addr"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DaemonConfig configures the change notification hub and its clients
type DaemonConfig struct {
	SocketPath      string `yaml:"socket_path"`
	BroadcastBuffer int    `yaml:"broadcast_buffer"`
	ClientBuffer    int    `yaml:"client_buffer"`
	DebounceMS      int    `yaml:"debounce_ms"`
}

// Debounce returns the client batching window
func (d DaemonConfig) Debounce() time.Duration {
	return time.Duration(d.DebounceMS) * time.Millisecond
}

// LogConfig configures the slog sink
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // "-" writes to stderr
}

// Default returns the configuration used when no file exists.
// Paths are rooted at dataDir (normally ~/.kanban).
func Default(dataDir string) *Config {
	cfg := &Config{}
	cfg.applyDefaults(dataDir)
	return cfg
}

// DataDir returns ~/.kanban, where the database, socket, lock and logs live
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".kanban"), nil
}

// loadThemeFile loads and merges theme from KANBAN_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("KANBAN_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// A missing file yields the defaults; environment overrides apply either way.
func Load() (*Config, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}

	var config Config
	if configPath, err := getConfigPath(); err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	loadThemeFile(&config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults(dataDir)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load reads and Save writes the config file
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanban", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanban", "config.yaml"), nil
}

// applyEnv overrides file values with KANBAN_* variables
func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("KANBAN_DB_PATH", &c.Database.Path)
	str("KANBAN_LISTEN_ADDR", &c.Server.ListenAddr)
	str("KANBAN_SOCKET_PATH", &c.Daemon.SocketPath)
	str("KANBAN_LOG_LEVEL", &c.Log.Level)
	str("KANBAN_LOG_FILE", &c.Log.File)

	if v := os.Getenv("KANBAN_ALLOWED_ORIGINS"); v != "" {
		c.Server.AllowedOrigins = strings.Split(v, ",")
	}

	for key, dst := range map[string]*int{
		"KANBAN_DAEMON_BROADCAST_BUFFER": &c.Daemon.BroadcastBuffer,
		"KANBAN_DAEMON_CLIENT_BUFFER":    &c.Daemon.ClientBuffer,
		"KANBAN_EVENT_DEBOUNCE_MS":       &c.Daemon.DebounceMS,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults(dataDir string) {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir, "kanban.db")
	}
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = "127.0.0.1:8080"
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 5 * time.Second
	}
	if c.Daemon.SocketPath == "" {
		c.Daemon.SocketPath = filepath.Join(dataDir, "kanban.sock")
	}
	if c.Daemon.BroadcastBuffer <= 0 {
		c.Daemon.BroadcastBuffer = 100
	}
	if c.Daemon.ClientBuffer <= 0 {
		c.Daemon.ClientBuffer = 10
	}
	if c.Daemon.DebounceMS <= 0 {
		c.Daemon.DebounceMS = 100
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir, "logs", "kanban.log")
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

// LockPath is the file `kanban serve` locks so only one server runs per data dir
func (c *Config) LockPath() string {
	return filepath.Join(filepath.Dir(c.Database.Path), "serve.lock")
}
