package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, root, relpath, contents string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(relpath))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func collect(t *testing.T, root, pattern string) []string {
	t.Helper()

	files, err := Discover(root, pattern)
	require.NoError(t, err)

	var paths []string
	for path, err := range files {
		require.NoError(t, err)
		paths = append(paths, path)
	}
	return paths
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	a := writeSeedFile(t, root, "acme.team.json", "{}")
	b := writeSeedFile(t, root, "users/admin.user.json", "{}")
	c := writeSeedFile(t, root, "users/nested/deep.user_role.json", "{}")
	writeSeedFile(t, root, "README.md", "notes")
	writeSeedFile(t, root, "users/notes.txt", "notes")

	paths := collect(t, root, DefaultPattern)
	assert.ElementsMatch(t, []string{a, b, c}, paths)
}

func TestDiscover_CustomPattern(t *testing.T) {
	root := t.TempDir()
	writeSeedFile(t, root, "acme.team.json", "{}")
	admin := writeSeedFile(t, root, "users/admin.user.json", "{}")

	paths := collect(t, root, "users/*.json")
	assert.Equal(t, []string{admin}, paths)
}

func TestDiscover_EmptyTree(t *testing.T) {
	paths := collect(t, t.TempDir(), DefaultPattern)
	assert.Empty(t, paths)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), DefaultPattern)

	var discovery *DiscoveryError
	require.ErrorAs(t, err, &discovery)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_RootNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := writeSeedFile(t, root, "acme.team.json", "{}")

	_, err := Discover(file, DefaultPattern)

	var discovery *DiscoveryError
	assert.ErrorAs(t, err, &discovery)
}

func TestDiscover_BadPattern(t *testing.T) {
	_, err := Discover(t.TempDir(), "[")

	var discovery *DiscoveryError
	assert.ErrorAs(t, err, &discovery)
}

func TestDiscover_StopsEarly(t *testing.T) {
	root := t.TempDir()
	writeSeedFile(t, root, "a.team.json", "{}")
	writeSeedFile(t, root, "b.team.json", "{}")
	writeSeedFile(t, root, "c.team.json", "{}")

	files, err := Discover(root, DefaultPattern)
	require.NoError(t, err)

	seen := 0
	for _, err := range files {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}
