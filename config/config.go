package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// CredentialsEnv names the environment variable holding the path to the
// Google service-account JSON file.
const CredentialsEnv = "GOOGLE_APPLICATION_CREDENTIALS"

// credentialsFallback is tried when CredentialsEnv is unset.
const credentialsFallback = "service-account.json"

// Config holds updater configuration.
type Config struct {
	SpreadsheetName   string
	CredentialsFile   string // explicit path; empty means resolve env then fallback
	SnapshotFile      string // local CSV mirror of written rows; empty disables
	NavigationTimeout time.Duration
	SettleDelay       time.Duration // quiescence wait after page load
	StoreDelay        time.Duration // pause between store lookups
	UserAgent         string
	Headless          bool
	BrowserBin        string // explicit Chromium binary; empty auto-detects
	MetricsAddr       string
	Verbose           bool
}

// DefaultConfig returns the defaults used by the production sheet.
func DefaultConfig() *Config {
	return &Config{
		SpreadsheetName:   "pricelist",
		NavigationTimeout: 45 * time.Second,
		SettleDelay:       800 * time.Millisecond,
		StoreDelay:        300 * time.Millisecond,
		UserAgent:         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		Headless:          true,
	}
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.SpreadsheetName == "" {
		return fmt.Errorf("spreadsheet name cannot be empty")
	}
	if c.NavigationTimeout <= 0 {
		return fmt.Errorf("navigation timeout must be positive")
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay cannot be negative")
	}
	if c.StoreDelay < 0 {
		return fmt.Errorf("store delay cannot be negative")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("user agent cannot be empty")
	}
	return nil
}

// ResolveCredentials returns the service-account file path following the
// documented order: explicit config, then CredentialsEnv, then the local
// fallback file. A path that is set but unreadable is an error rather
// than a silent fall-through.
func (c *Config) ResolveCredentials() (string, error) {
	if c.CredentialsFile != "" {
		if _, err := os.Stat(c.CredentialsFile); err != nil {
			return "", fmt.Errorf("credentials file %q: %w", c.CredentialsFile, err)
		}
		return c.CredentialsFile, nil
	}
	if path := os.Getenv(CredentialsEnv); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%s points to %q: %w", CredentialsEnv, path, err)
		}
		return path, nil
	}
	if _, err := os.Stat(credentialsFallback); err == nil {
		return credentialsFallback, nil
	}
	return "", fmt.Errorf("%s not set and %s not found; set it to the service-account JSON path", CredentialsEnv, credentialsFallback)
}

// EnvString reads a string environment override.
func EnvString(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvInt reads an integer environment override.
func EnvInt(key string) (int, bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", key, err)
	}
	return n, true, nil
}
