package manifest

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestFileEntry(t *testing.T) {
	t.Parallel()
	tests := []struct {
		entry    FileEntry
		template bool
		empty    bool
		mode     os.FileMode
	}{
		{FileEntry{Path: "README.md", Source: "README.md.tmpl"}, true, false, 0644},
		{FileEntry{Path: "a.csv", Source: "data/a.csv"}, false, false, 0644},
		{FileEntry{Path: "src/__init__.py"}, false, true, 0644},
		{FileEntry{Path: "run.sh", Source: "run.sh", Mode: "0755"}, false, false, 0755},
		{FileEntry{Path: "x", Source: "x", Mode: "garbage"}, false, false, 0644},
	}

	for _, tt := range tests {
		t.Run(tt.entry.Path, func(t *testing.T) {
			assert.Equal(t, tt.template, tt.entry.IsTemplate())
			assert.Equal(t, tt.empty, tt.entry.IsEmpty())
			assert.Equal(t, tt.mode, tt.entry.FileMode())
		})
	}
}

func TestSources(t *testing.T) {
	t.Parallel()
	m := &Manifest{Files: []FileEntry{
		{Path: "a", Source: "shared.txt"},
		{Path: "b"},
		{Path: "c", Source: "README.md.tmpl"},
		{Path: "d", Source: "shared.txt"},
	}}
	if diff := cmp.Diff([]string{"shared.txt", "README.md.tmpl"}, m.Sources()); diff != "" {
		t.Errorf("Sources() mismatch (-want +got):\n%s", diff)
	}
}
