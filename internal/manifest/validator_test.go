package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validManifest = `directories:
  - data/raw
  - .github/workflows
files:
  - path: data/raw/sample.csv
    source: data/sample.csv
  - path: src/utils/__init__.py
  - path: scripts/run.sh
    source: scripts/run.sh
    mode: "0755"
  - path: README.md
    source: README.md.tmpl
`

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	result, err := Validate([]byte(validManifest))
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
	assert.Empty(t, result.Issues)
}

func TestValidate_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		yaml     string
		wantPath string
		keyword  string
	}{
		{
			name:     "missing files",
			yaml:     "directories: []\n",
			wantPath: "",
			keyword:  "required",
		},
		{
			name:     "unknown field",
			yaml:     "directories: []\nfiles:\n  - path: a\n    content: x\n",
			wantPath: "/files/0",
			keyword:  "additionalProperties",
		},
		{
			name:     "bad mode",
			yaml:     "directories: []\nfiles:\n  - path: a\n    mode: \"755\"\n",
			wantPath: "/files/0/mode",
			keyword:  "pattern",
		},
		{
			name:     "absolute path",
			yaml:     "directories: []\nfiles:\n  - path: /etc/passwd\n",
			wantPath: "/files/0/path",
			keyword:  "pattern",
		},
		{
			name:     "parent escape",
			yaml:     "directories: []\nfiles:\n  - path: ../outside.txt\n",
			wantPath: "/files/0/path",
			keyword:  "local",
		},
		{
			name:     "nested escape in directory",
			yaml:     "directories:\n  - data/../../up\nfiles:\n  - path: a\n",
			wantPath: "/directories/0",
			keyword:  "local",
		},
		{
			name:     "duplicate path",
			yaml:     "directories: []\nfiles:\n  - path: a/b.txt\n  - path: a/./b.txt\n",
			wantPath: "/files/1/path",
			keyword:  "unique",
		},
		{
			name:     "backslash path",
			yaml:     "directories: []\nfiles:\n  - path: 'a\\..\\..\\b'\n",
			wantPath: "/files/0/path",
			keyword:  "local",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := Validate([]byte(tt.yaml))
			require.NoError(t, err)
			require.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			found := false
			for _, issue := range result.Issues {
				if issue.Path == tt.wantPath && issue.Keyword == tt.keyword {
					found = true
				}
			}
			assert.True(t, found, "want issue %s at %q, got %+v", tt.keyword, tt.wantPath, result.Issues)
		})
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := Validate([]byte("files: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML")
}

func TestLoad(t *testing.T) {
	t.Parallel()
	m, err := Load([]byte(validManifest))
	require.NoError(t, err)
	assert.Equal(t, []string{"data/raw", ".github/workflows"}, m.Directories)
	require.Len(t, m.Files, 4)
	assert.Equal(t, FileEntry{Path: "scripts/run.sh", Source: "scripts/run.sh", Mode: "0755"}, m.Files[2])
}

func TestLoad_InvalidListsIssues(t *testing.T) {
	t.Parallel()
	_, err := Load([]byte("directories: []\nfiles:\n  - path: ../a\n  - path: ../b\n"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid manifest:"))
	assert.Contains(t, err.Error(), `/files/0/path: path "../a" escapes the project root`)
	assert.Contains(t, err.Error(), `/files/1/path: path "../b" escapes the project root`)
}
