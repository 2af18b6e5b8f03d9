package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"braces.dev/errtrace"

	"go.abhg.dev/hilite/internal/errdefer"
	"go.abhg.dev/hilite/internal/highlight"
	"go.abhg.dev/hilite/internal/sitehtml"
)

// Finder locates the pages of a rendered site on disk.
type Finder interface {
	FindPages(dir string) ([]string, error)
}

var _ Finder = (*sitehtml.Finder)(nil)

// Rewriter highlights the code blocks of a single page.
type Rewriter interface {
	RewriteFile(pagePath, src, dst string) (bool, error)
}

var _ Rewriter = (*sitehtml.Rewriter)(nil)

// CSSWriter writes the stylesheet for highlighted spans.
type CSSWriter interface {
	WriteCSS(io.Writer) error
}

var _ CSSWriter = (*highlight.Highlighter)(nil)

// Processor applies syntax highlighting
// to the pages of one or more site directories.
//
// In terms of code organization,
// Processor's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Processor struct {
	Log      *log.Logger
	Finder   Finder
	Rewriter Rewriter
	CSS      CSSWriter

	// OutDir receives rewritten pages.
	// If empty, pages are rewritten in place.
	OutDir string

	// CSSFile is the path the stylesheet is written to, if any.
	CSSFile string
}

// Process highlights the pages under each of the given directories.
func (p *Processor) Process(dirs []string) error {
	var total, changed int
	for _, dir := range dirs {
		pages, err := p.Finder.FindPages(dir)
		if err != nil {
			return errtrace.Wrap(err)
		}

		for _, page := range pages {
			rel, err := filepath.Rel(dir, page)
			if err != nil {
				return errtrace.Wrap(err)
			}

			dst := page
			if p.OutDir != "" {
				dst = filepath.Join(p.OutDir, rel)
			}

			ok, err := p.Rewriter.RewriteFile(filepath.ToSlash(rel), page, dst)
			if err != nil {
				return errtrace.Wrap(err)
			}
			total++
			if ok {
				changed++
			}
		}
	}

	p.Log.Printf("Highlighted %d of %d pages", changed, total)

	if p.CSSFile != "" {
		if err := p.writeCSS(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) writeCSS() (err error) {
	if dir := filepath.Dir(p.CSSFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errtrace.Wrap(err)
		}
	}

	f, err := os.Create(p.CSSFile)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(p.CSS.WriteCSS(f))
}
