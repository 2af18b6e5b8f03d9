// hilite highlights the code blocks of statically generated sites.
//
// It post-processes rendered HTML pages:
// every pre-formatted code block is tokenized,
// wrapped in classified spans, and marked as processed,
// so running hilite over its own output is a no-op.
package main

import (
	"errors"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2/styles"

	"go.abhg.dev/hilite/internal/grammar"
	"go.abhg.dev/hilite/internal/highlight"
	"go.abhg.dev/hilite/internal/langtree"
	"go.abhg.dev/hilite/internal/languages"
	"go.abhg.dev/hilite/internal/sitehtml"
)

func main() {
	cmd := mainCmd{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, errHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("hilite: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer func() {
		err = errors.Join(err, closeDebug())
	}()

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugw, "", 0)
	}

	style := styles.Get(opts.Style)
	if style == styles.Fallback && opts.Style != styles.Fallback.Name {
		return errtrace.Errorf(
			"unknown style %q; see 'hilite -h styles' for available styles", opts.Style)
	}

	grammars := grammar.NewRegistry()
	languages.Register(grammars)

	langs := new(langtree.Tree)
	for _, dl := range opts.DefaultLangs {
		langs.Set(dl.Path, dl.Lang)
	}

	highlighter := &highlight.Highlighter{
		Style:      style,
		UseClasses: !opts.InlineStyles,
	}

	proc := Processor{
		Log:    cmd.log,
		Finder: &sitehtml.Finder{DebugLog: debugLog},
		Rewriter: &sitehtml.Rewriter{
			Highlighter:    highlighter,
			Picker:         &highlight.Detector{Grammars: grammars},
			Languages:      langs,
			StylesheetPath: opts.CSSLink,
			Log:            cmd.log,
		},
		CSS:     highlighter,
		OutDir:  opts.OutputDir,
		CSSFile: opts.CSSFile,
	}
	return proc.Process(opts.Dirs)
}
