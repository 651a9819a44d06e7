package manifest

import (
	"os"
	"strconv"
	"strings"
)

// DefaultFileMode is used for entries without an explicit mode.
const DefaultFileMode os.FileMode = 0644

// TemplateSuffix marks sources rendered with text/template.
const TemplateSuffix = ".tmpl"

// Manifest maps project-relative paths to their content sources.
type Manifest struct {
	Directories []string    `yaml:"directories" json:"directories"`
	Files       []FileEntry `yaml:"files" json:"files"`
}

// FileEntry describes one generated file.
type FileEntry struct {
	Path   string `yaml:"path" json:"path"`                         // Slash-separated, relative to the project root
	Source string `yaml:"source,omitempty" json:"source,omitempty"` // Template file; empty means an empty file
	Mode   string `yaml:"mode,omitempty" json:"mode,omitempty"`     // Octal permissions, e.g. "0755"
}

// IsTemplate reports whether the source must be rendered before writing.
func (e FileEntry) IsTemplate() bool {
	return strings.HasSuffix(e.Source, TemplateSuffix)
}

// IsEmpty reports whether the entry produces an empty file.
func (e FileEntry) IsEmpty() bool {
	return e.Source == ""
}

// FileMode returns the permissions for the generated file.
func (e FileEntry) FileMode() os.FileMode {
	if e.Mode == "" {
		return DefaultFileMode
	}
	m, err := strconv.ParseUint(e.Mode, 8, 32)
	if err != nil {
		return DefaultFileMode
	}
	return os.FileMode(m)
}

// Sources returns the distinct template sources referenced by the manifest.
func (m *Manifest) Sources() []string {
	seen := make(map[string]bool)
	var sources []string
	for _, f := range m.Files {
		if f.Source == "" || seen[f.Source] {
			continue
		}
		seen[f.Source] = true
		sources = append(sources, f.Source)
	}
	return sources
}
