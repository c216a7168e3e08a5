package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("<doc></doc>"), 0o644))
}

func TestListFilesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "AA", "wiki_01"))
	writeFile(t, filepath.Join(root, "AA", "wiki_00"))
	writeFile(t, filepath.Join(root, "AB", "deep", "wiki_00"))
	writeFile(t, filepath.Join(root, "top"))

	files, err := ListFiles(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "AA", "wiki_00"),
		filepath.Join(root, "AA", "wiki_01"),
		filepath.Join(root, "AB", "deep", "wiki_00"),
		filepath.Join(root, "top"),
	}, files)
}

func TestListFilesStableOrder(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		writeFile(t, filepath.Join(root, name))
	}

	first, err := ListFiles(root, Options{})
	require.NoError(t, err)
	second, err := ListFiles(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestListFilesSkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "wiki_00"))
	writeFile(t, filepath.Join(root, ".DS_Store"))
	writeFile(t, filepath.Join(root, ".git", "config"))

	files, err := ListFiles(root, Options{SkipHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "wiki_00")}, files)

	all, err := ListFiles(root, Options{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListFilesEmptyDir(t *testing.T) {
	files, err := ListFiles(t.TempDir(), Options{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListFilesMissingRoot(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "missing"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestListFilesRootIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wiki_00")
	writeFile(t, path)

	_, err := ListFiles(path, Options{})
	assert.Error(t, err)
}

func TestListFilesRootIsSymlink(t *testing.T) {
	target := t.TempDir()
	writeFile(t, filepath.Join(target, "AA", "wiki_00"))
	writeFile(t, filepath.Join(target, "AA", "wiki_01"))

	root := filepath.Join(t.TempDir(), "text")
	require.NoError(t, os.Symlink(target, root))

	files, err := ListFiles(root, Options{SkipHidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "AA", "wiki_00"),
		filepath.Join(root, "AA", "wiki_01"),
	}, files)
}

func TestListFilesFollowsFileSymlinks(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "wiki_99")
	writeFile(t, outside)
	writeFile(t, filepath.Join(root, "wiki_00"))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "wiki_01")))

	// симлинк на каталог не обходится
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "wiki_50"))
	require.NoError(t, os.Symlink(other, filepath.Join(root, "linked")))

	// битый симлинк остаётся в списке, ошибку даст чтение
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "wiki_02")))

	files, err := ListFiles(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "wiki_00"),
		filepath.Join(root, "wiki_01"),
		filepath.Join(root, "wiki_02"),
	}, files)
}
