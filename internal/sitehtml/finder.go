package sitehtml

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
)

// Finder locates the page files of a rendered site on disk.
type Finder struct {
	// DebugLog, if set, receives a line for every page found.
	DebugLog *log.Logger
}

var _pageExts = map[string]struct{}{
	".html": {},
	".htm":  {},
}

// FindPages returns the paths of all page files under dir,
// in lexical order.
func (f *Finder) FindPages(dir string) ([]string, error) {
	var pages []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := _pageExts[strings.ToLower(filepath.Ext(path))]; !ok {
			return nil
		}

		if f.DebugLog != nil {
			f.DebugLog.Printf("Found page %v", path)
		}
		pages = append(pages, path)
		return nil
	})
	return pages, errtrace.Wrap(err)
}
