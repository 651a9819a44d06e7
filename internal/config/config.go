package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sarag5/mlcookiecutter/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyLicenseAPIURL = "license_api_url"
	KeyGitHubToken   = "github_token"
	KeyHTTPTimeout   = "http_timeout"
	KeyPythonVersion = "python_version"
)

// DefaultPythonVersion is the Python version written into generated projects.
const DefaultPythonVersion = "3.9"

// DefaultHTTPTimeout bounds the license lookup request.
const DefaultHTTPTimeout = 30 * time.Second

// Keys returns every known configuration key in display order.
func Keys() []string {
	return []string{KeyLicenseAPIURL, KeyGitHubToken, KeyHTTPTimeout, KeyPythonVersion}
}

// Dir returns the path to the config directory (~/.mlcookiecutter/).
// MLCC_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mlcookiecutter/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLicenseAPIURL, branding.LicenseAPIURL())
	viper.SetDefault(KeyGitHubToken, "")
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout.String())
	viper.SetDefault(KeyPythonVersion, DefaultPythonVersion)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// LicenseAPIURL returns the license service base URL without a trailing slash.
func LicenseAPIURL() string {
	return strings.TrimRight(viper.GetString(KeyLicenseAPIURL), "/")
}

// GitHubToken returns the configured token, falling back to GITHUB_TOKEN.
func GitHubToken() string {
	if token := viper.GetString(KeyGitHubToken); token != "" {
		return token
	}
	return os.Getenv("GITHUB_TOKEN")
}

// HTTPTimeout returns the license request timeout. Unparseable or
// non-positive values fall back to DefaultHTTPTimeout.
func HTTPTimeout() time.Duration {
	d := viper.GetDuration(KeyHTTPTimeout)
	if d <= 0 {
		return DefaultHTTPTimeout
	}
	return d
}

// PythonVersion returns the Python version for generated projects.
func PythonVersion() string {
	return viper.GetString(KeyPythonVersion)
}

// IsKnownKey reports whether key is one of Keys().
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
