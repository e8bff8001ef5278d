package harness

import (
	"os"
	"path/filepath"
	"testing"
)

// NewArchivesProject writes files under a temp directory and returns its path.
// Keys are slash separated paths relative to the project root.
func NewArchivesProject(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			tb.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			tb.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	return root
}
