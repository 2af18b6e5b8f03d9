package sitehtml

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/hilite/internal/iotest"
)

func TestFinder_FindPages(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []string{
		"index.html",
		"about.HTML",
		"posts/a.html",
		"posts/b.htm",
		"posts/notes.txt",
		"css/site.css",
	}
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}

	finder := Finder{
		DebugLog: log.New(iotest.Writer(t), "", 0),
	}
	pages, err := finder.FindPages(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "about.HTML"),
		filepath.Join(dir, "index.html"),
		filepath.Join(dir, "posts", "a.html"),
		filepath.Join(dir, "posts", "b.htm"),
	}, pages)
}

func TestFinder_FindPagesMissingDir(t *testing.T) {
	t.Parallel()

	var finder Finder
	_, err := finder.FindPages(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
