package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// tempRoot returns a canonical temporary directory, so expected paths match
// what OpenRoot produces on systems where the temp dir sits behind a symlink.
func tempRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

// writeTree creates files below root. Keys are slash-separated relative paths;
// a key ending in "/" creates an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, contents := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	}
}

// byPath groups occurrences by path, keeping their relative order.
func byPath(occurrences []Occurrence) map[string][]Occurrence {
	grouped := make(map[string][]Occurrence)
	for _, occ := range occurrences {
		grouped[occ.Path] = append(grouped[occ.Path], occ)
	}
	return grouped
}

// lines returns the line numbers of content occurrences.
func lines(occurrences []Occurrence) []int {
	var out []int
	for _, occ := range occurrences {
		if occ.IsContent() {
			out = append(out, occ.LineNumber)
		}
	}
	return out
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

// chdir changes the working directory for the duration of the test, like
// testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
