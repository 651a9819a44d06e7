package scaffold

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Defaults applied by the CLI when a value is not provided.
const (
	DefaultProjectName   = "default_project"
	DefaultLicenseID     = "mit"
	DefaultPythonVersion = "3.9"
)

// Request holds the inputs of one generation.
type Request struct {
	Name          string   // Project directory name, used verbatim as a path segment
	LicenseID     string   // e.g., "mit", "apache-2.0"
	Owners        []string // CODEOWNERS entries, may be empty
	PythonVersion string   // e.g., "3.9"
}

// NewRequest builds a Request from raw CLI values. owners is a comma-separated list.
func NewRequest(name, licenseID, owners, pythonVersion string) Request {
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}
	return Request{
		Name:          name,
		LicenseID:     licenseID,
		Owners:        ParseOwners(owners),
		PythonVersion: pythonVersion,
	}
}

// Validate checks the request before anything is written.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("project name is required")
	}
	if err := ValidatePythonVersion(r.PythonVersion); err != nil {
		return err
	}
	return nil
}

// ValidatePythonVersion accepts plain release versions like "3", "3.11" or
// "3.11.4". The value ends up in image tags and workflow files, so a "v"
// prefix, prerelease or build metadata is rejected.
func ValidatePythonVersion(v string) error {
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("invalid python version %q: %w", v, err)
	}
	if strings.HasPrefix(ver.Original(), "v") || strings.HasPrefix(ver.Original(), "V") {
		return fmt.Errorf("invalid python version %q: remove the \"v\" prefix", v)
	}
	if ver.Prerelease() != "" || ver.Metadata() != "" {
		return fmt.Errorf("invalid python version %q: prerelease and build metadata are not supported", v)
	}
	return nil
}

// ParseOwners splits a comma-separated owners list and trims each entry.
// An empty string yields no owners; any other input yields one owner per
// comma-separated entry, blank entries included.
func ParseOwners(s string) []string {
	if s == "" {
		return []string{}
	}
	return normalizeOwners(strings.Split(s, ","))
}

func normalizeOwners(owners []string) []string {
	result := make([]string, 0, len(owners))
	for _, o := range owners {
		result = append(result, strings.TrimSpace(o))
	}
	return result
}
