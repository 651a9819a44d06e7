package scaffold

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sarag5/mlcookiecutter/internal/license"
	"github.com/sarag5/mlcookiecutter/internal/log"
	"github.com/sarag5/mlcookiecutter/internal/manifest"
)

//go:embed all:templates
var templateFS embed.FS

const (
	templatesDir = "templates"
	manifestFile = "manifest.yaml"
)

// LicenseResolver returns license text for an identifier.
type LicenseResolver interface {
	Resolve(ctx context.Context, licenseID string) license.Result
}

// Options configures where and how a project is generated.
type Options struct {
	Fs       afero.Fs        // Defaults to the OS filesystem
	BaseDir  string          // Directory the project directory is created in
	Resolver LicenseResolver // Required
	Logger   *log.Logger     // Optional
}

// Data holds all template variables available to .tmpl sources.
type Data struct {
	Name          string   // Project name
	LicenseID     string   // License identifier as given
	LicenseName   string   // Upper-cased identifier, e.g. "MIT"
	LicenseText   string   // Fetched body or the placeholder
	Owners        []string // Trimmed CODEOWNERS entries
	PythonVersion string
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Dirs      []string
	Files     []string
	License   license.Result
}

// LoadManifest returns the embedded generation manifest.
func LoadManifest() (*manifest.Manifest, error) {
	data, err := fs.ReadFile(templateFS, path.Join(templatesDir, manifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading embedded manifest: %w", err)
	}
	m, err := manifest.Load(data)
	if err != nil {
		return nil, err
	}

	sources, err := fs.Sub(templateFS, templatesDir)
	if err != nil {
		return nil, err
	}
	if err := checkSources(sources, m); err != nil {
		return nil, err
	}
	return m, nil
}

// checkSources fails when the manifest references a source missing from fsys.
func checkSources(fsys fs.FS, m *manifest.Manifest) error {
	var missing []string
	for _, src := range m.Sources() {
		if _, err := fs.Stat(fsys, src); err != nil {
			missing = append(missing, src)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("manifest references missing template sources: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Generate creates <BaseDir>/<Name> and writes every manifest entry into it.
// Existing directories are reused and existing files overwritten. A write
// failure aborts the generation; files written before it stay on disk.
func Generate(ctx context.Context, req Request, opts Options) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if opts.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if opts.Resolver == nil {
		return nil, errors.New("license resolver is required")
	}
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNop()
	}

	m, err := LoadManifest()
	if err != nil {
		return nil, err
	}

	outputDir := filepath.Join(opts.BaseDir, req.Name)
	if err := fsys.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, dir := range m.Directories {
		target := filepath.Join(outputDir, filepath.FromSlash(dir))
		if err := fsys.MkdirAll(target, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", target, err)
		}
		result.Dirs = append(result.Dirs, dir)
	}

	result.License = opts.Resolver.Resolve(ctx, req.LicenseID)
	if !result.License.Available {
		logger.Warnf("License %q could not be fetched, LICENSE contains a placeholder.", req.LicenseID)
	}

	data := &Data{
		Name:          req.Name,
		LicenseID:     req.LicenseID,
		LicenseName:   cases.Upper(language.Und).String(req.LicenseID),
		LicenseText:   result.License.Text,
		Owners:        normalizeOwners(req.Owners),
		PythonVersion: req.PythonVersion,
	}

	for _, entry := range m.Files {
		content, err := render(entry, data)
		if err != nil {
			return nil, err
		}

		target := filepath.Join(outputDir, filepath.FromSlash(entry.Path))
		if err := fsys.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return nil, fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := afero.WriteFile(fsys, target, content, entry.FileMode()); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}
		// WriteFile keeps the permissions of a file that already exists.
		if entry.FileMode() != manifest.DefaultFileMode {
			if err := fsys.Chmod(target, entry.FileMode()); err != nil {
				return nil, fmt.Errorf("setting mode of %s: %w", target, err)
			}
		}

		logger.Debugf("Wrote %s", entry.Path)
		result.Files = append(result.Files, entry.Path)
	}

	return result, nil
}

// render produces the content of one manifest entry.
func render(entry manifest.FileEntry, data *Data) ([]byte, error) {
	if entry.IsEmpty() {
		return nil, nil
	}

	srcPath := path.Join(templatesDir, entry.Source)
	src, err := fs.ReadFile(templateFS, srcPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", entry.Source, err)
	}
	if !entry.IsTemplate() {
		return src, nil
	}

	tmpl, err := template.New(entry.Source).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", entry.Source, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", entry.Source, err)
	}
	return buf.Bytes(), nil
}
