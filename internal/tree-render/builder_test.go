package treerender

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syntoxine/doubloon/internal/utils"
)

var ansiEscapePattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]|\x1b\]8;[^\x07\x1b]*(\x07|\x1b\\)`)

func writeFile(t *testing.T, fsys afero.Fs, path string, size int) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, bytes.Repeat([]byte("x"), size), 0o644))
}

func names(nodes []*Node) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.Name)
	}
	return out
}

func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	return r
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
	}{
		{"main.py", KindScript},
		{"RUN.SH", KindScript},
		{"logo.png", KindImage},
		{"photo.JPEG", KindImage},
		{"clip.mov", KindVideo},
		{"clip.MP4", KindVideo},
		{"notes.txt", KindDocument},
		{"Makefile", KindDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.name))
		})
	}

	assert.Equal(t, IconScript, KindScript.Icon())
	assert.Equal(t, IconFolder, KindDir.Icon())
	assert.Equal(t, IconDocument, KindDocument.Icon())
}

func TestBuild_OrdersDirectoriesFirstCaseInsensitive(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/d/b.txt", 1)
	writeFile(t, fsys, "/d/A.txt", 1)
	writeFile(t, fsys, "/d/zeta/c.py", 1)
	writeFile(t, fsys, "/d/Alpha/d.png", 1)
	require.NoError(t, fsys.MkdirAll("/d/__pycache__", 0o755))

	node, warnings, err := Build(fsys, "/d", nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "/d", node.Name)
	assert.Equal(t, []string{"__pycache__", "Alpha", "zeta", "A.txt", "b.txt"}, names(node.Children))

	private := node.Children[0]
	assert.True(t, private.IsDir())
	assert.True(t, private.Private)
	assert.False(t, node.Children[1].Private)

	assert.Equal(t, KindImage, node.Children[1].Children[0].Kind)
	assert.Equal(t, KindScript, node.Children[2].Children[0].Kind)
}

func TestBuild_PrunesHiddenAndExcluded(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/d/.env", 3)
	writeFile(t, fsys, "/d/b.txt", 5)
	writeFile(t, fsys, "/d/.cache/visible.txt", 1)
	writeFile(t, fsys, "/d/vendor/lib.go", 1)

	node, _, err := Build(fsys, "/d", []string{"vendor"})
	require.NoError(t, err)

	require.Len(t, node.Children, 1)
	assert.Equal(t, "b.txt", node.Children[0].Name)
	assert.Equal(t, int64(5), node.Children[0].Size)
}

func TestBuild_InvalidRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/d/file.txt", 1)

	tests := []struct {
		name    string
		root    string
		wantMsg string
	}{
		{name: "missing", root: "/missing", wantMsg: "/missing"},
		{name: "not a directory", root: "/d/file.txt", wantMsg: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, warnings, err := Build(fsys, tt.root, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrInvalidPath)
			assert.ErrorContains(t, err, tt.wantMsg)
			assert.Nil(t, node)
			assert.Nil(t, warnings)
		})
	}
}

// failingOpenFs refuses to open the directories listed in locked
type failingOpenFs struct {
	afero.Fs
	locked map[string]bool
}

func (f failingOpenFs) Open(name string) (afero.File, error) {
	if f.locked[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Fs.Open(name)
}

func TestBuild_UnreadableRoot(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFile(t, base, "/d/a.txt", 1)
	fsys := failingOpenFs{Fs: base, locked: map[string]bool{"/d": true}}

	_, _, err := Build(fsys, "/d", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrFileSystem)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestBuild_UnreadableDirectoryRendersEmpty(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFile(t, base, "/d/a.txt", 1)
	writeFile(t, base, "/d/locked/secret.txt", 1)
	writeFile(t, base, "/d/open/b.txt", 2)
	fsys := failingOpenFs{Fs: base, locked: map[string]bool{"/d/locked": true}}

	node, warnings, err := Build(fsys, "/d", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"locked", "open", "a.txt"}, names(node.Children))
	locked := node.Children[0]
	assert.True(t, locked.IsDir())
	assert.Empty(t, locked.Children)
	assert.Equal(t, []string{"b.txt"}, names(node.Children[1].Children))

	require.Len(t, warnings, 1)
	assert.Equal(t, "/d/locked", warnings[0].Path)
	assert.ErrorIs(t, warnings[0], os.ErrPermission)
	assert.Contains(t, warnings[0].Error(), "/d/locked")

	out := Render(node, plainRenderer(), false)
	assert.Contains(t, out, IconFolder+" locked")
	assert.NotContains(t, out, "secret.txt")
}

func TestBuild_DanglingSymlinkWarns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "broken")))

	node, warnings, err := Build(afero.NewOsFs(), root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, names(node.Children))
	require.Len(t, warnings, 1)
	assert.Equal(t, filepath.Join(root, "broken"), warnings[0].Path)
	assert.Contains(t, warnings[0].Error(), "broken")
}

func TestRender_Labels(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/d/.env", 3)
	writeFile(t, fsys, "/d/b.txt", 5)
	writeFile(t, fsys, "/d/media/movie.mp4", 1200)
	writeFile(t, fsys, "/d/media/script.py", 10)

	node, _, err := Build(fsys, "/d", nil)
	require.NoError(t, err)

	out := Render(node, plainRenderer(), false)

	assert.Contains(t, out, IconFolder+" /d")
	assert.Contains(t, out, IconFolder+" media")
	assert.Contains(t, out, IconDocument+" b.txt (5 B)")
	assert.Contains(t, out, IconVideo+" movie.mp4 (1.2 kB)")
	assert.Contains(t, out, IconScript+" script.py (10 B)")
	assert.NotContains(t, out, ".env")
}

func TestRender_Hyperlinks(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/d/b.txt", 5)

	node, _, err := Build(fsys, "/d", nil)
	require.NoError(t, err)

	out := Render(node, plainRenderer(), true)
	assert.Contains(t, out, "file:///d/b.txt")
	assert.Contains(t, ansiEscapePattern.ReplaceAllString(out, ""), IconDocument+" b.txt (5 B)")
}
