// Package branding provides compile-time identity values for the CLI.
//
// Forks edit branding.yaml in this package before building; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GitHubRepo    string `yaml:"github_repo"`
	LicenseAPIURL string `yaml:"license_api_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:       "mlcookiecutter",
			DisplayName:   "ML Cookiecutter",
			Description:   "Create project structures for ML and data projects",
			HomeDir:       ".mlcookiecutter",
			EnvPrefix:     "MLCC",
			GitHubRepo:    "sarag5/mlcookiecutter",
			LicenseAPIURL: "https://api.github.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "mlcookiecutter").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mlcookiecutter").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MLCC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string of the tool itself.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// LicenseAPIURL returns the default base URL of the license lookup service.
func LicenseAPIURL() string { load(); return defaults.LicenseAPIURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("github_token") → "MLCC_GITHUB_TOKEN".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
