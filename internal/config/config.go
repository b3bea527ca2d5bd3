// Package config loads and saves healthchat's JSON configuration. Values come
// from the config file, then a .env file in the working directory, then
// HEALTHCHAT_* environment variables, with later sources winning.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhubert/healthchat/internal/errors"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/storage"
)

// Environment variables
const (
	EnvHome          = "HEALTHCHAT_HOME"
	EnvStore         = "HEALTHCHAT_STORE"
	EnvReplyDelay    = "HEALTHCHAT_REPLY_DELAY"
	EnvNotifications = "HEALTHCHAT_NOTIFICATIONS"
	EnvTheme         = "HEALTHCHAT_THEME"
	EnvPrefs         = "HEALTHCHAT_PREFS"
)

// DefaultReplyDelay matches the simulated assistant's think time.
const DefaultReplyDelay = 900 * time.Millisecond

// MaxReplyDelay bounds reply_delay so a typo cannot stall the chat.
const MaxReplyDelay = time.Minute

// Config holds the application configuration
type Config struct {
	StoreBackend         string `json:"store_backend,omitempty"`         // file, sqlite or memory
	ReplyDelay           string `json:"reply_delay,omitempty"`           // Go duration, e.g. "900ms"
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification on new replies
	Theme                string `json:"theme,omitempty"`                 // UI theme name
	PrefsPath            string `json:"prefs_path,omitempty"`            // Reduced-motion preference file

	mu       sync.RWMutex
	filePath string
	dir      string
}

// Dir returns the directory holding config, state and logs.
func Dir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".healthchat"), nil
}

// LoadDotEnv loads .env from the working directory if present. Variables
// already set in the environment are left alone.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Config: failed to load .env: %v", err)
	}
}

// Load reads the config from the default location, or returns defaults if it
// doesn't exist. Environment overrides are applied.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, errors.ConfigLoadFailed("config directory", err)
	}
	return LoadFrom(dir, os.Getenv)
}

// LoadFrom reads dir/config.json and applies overrides from getenv.
func LoadFrom(dir string, getenv func(string) string) (*Config, error) {
	path := filepath.Join(dir, "config.json")
	cfg := &Config{filePath: path, dir: dir}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(path, err)
		}
	}

	cfg.applyEnv(getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays HEALTHCHAT_* variables. Only called during Load.
func (c *Config) applyEnv(getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvStore); v != "" {
		c.StoreBackend = v
	}
	if v := getenv(EnvReplyDelay); v != "" {
		c.ReplyDelay = v
	}
	if v := getenv(EnvNotifications); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NotificationsEnabled = b
		} else {
			logger.Warn("Config: ignoring %s=%q: %v", EnvNotifications, v, err)
		}
	}
	if v := getenv(EnvTheme); v != "" {
		c.Theme = v
	}
	if v := getenv(EnvPrefs); v != "" {
		c.PrefsPath = v
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch strings.ToLower(c.StoreBackend) {
	case "", storage.BackendFile, storage.BackendSQLite, storage.BackendMemory:
	default:
		return errors.ConfigInvalid(fmt.Sprintf("unknown store_backend %q", c.StoreBackend))
	}

	if c.ReplyDelay != "" {
		d, err := time.ParseDuration(c.ReplyDelay)
		if err != nil {
			return errors.ConfigInvalid(fmt.Sprintf("reply_delay %q is not a duration", c.ReplyDelay))
		}
		if d <= 0 || d > MaxReplyDelay {
			return errors.ConfigInvalid(fmt.Sprintf("reply_delay %s must be between 0 and %s", d, MaxReplyDelay))
		}
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the config file location.
func (c *Config) Path() string {
	return c.filePath
}

// DataDir returns the directory for the key-value store.
func (c *Config) DataDir() string {
	return c.dir
}

// LogPath returns the default log file location.
func (c *Config) LogPath() string {
	return filepath.Join(c.dir, "logs", "healthchat.log")
}

// GetStoreBackend returns the storage backend name, defaulting to file.
func (c *Config) GetStoreBackend() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.StoreBackend == "" {
		return storage.BackendFile
	}
	return strings.ToLower(c.StoreBackend)
}

// SetStoreBackend sets the storage backend name
func (c *Config) SetStoreBackend(backend string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.StoreBackend = backend
}

// GetReplyDelay returns the simulated reply delay
func (c *Config) GetReplyDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ReplyDelay == "" {
		return DefaultReplyDelay
	}
	d, err := time.ParseDuration(c.ReplyDelay)
	if err != nil || d <= 0 {
		return DefaultReplyDelay
	}
	return d
}

// SetReplyDelay sets the simulated reply delay
func (c *Config) SetReplyDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ReplyDelay = d.String()
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetPrefsPath returns the reduced-motion preference file, defaulting to
// prefs.yaml in the config directory.
func (c *Config) GetPrefsPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.PrefsPath == "" {
		return filepath.Join(c.dir, "prefs.yaml")
	}
	return c.PrefsPath
}
