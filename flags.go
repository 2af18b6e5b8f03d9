package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterbourgon/ff/v3"

	"go.abhg.dev/hilite/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for hilite.
type params struct {
	version bool
	help    Help

	OutputDir string
	Style     string

	InlineStyles bool
	CSSFile      string
	CSSLink      string
	DefaultLangs []pathLang

	Debug flagvalue.FileSwitch

	Dirs []string
}

// cliParser parses the command line arguments for hilite.
// Every flag may also be supplied as a HILITE_* environment variable.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("hilite", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	var p params

	// Filesystem:
	flag.StringVar(&p.OutputDir, "out", "", "")

	// HTML output:
	flag.StringVar(&p.Style, "style", "plain", "")
	flag.BoolVar(&p.InlineStyles, "inline-styles", false, "")
	flag.StringVar(&p.CSSFile, "css", "", "")
	flag.StringVar(&p.CSSLink, "link-css", "", "")

	// Language selection:
	flag.Var(flagvalue.ListOf(&p.DefaultLangs), "default-lang", "")

	// Program-level:
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, fset := cmd.newFlagSet()
	if err := ff.Parse(fset, args, ff.WithEnvVarPrefix("HILITE")); err != nil {
		return nil, err
	}
	args = fset.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "hilite", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Known() {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Dirs = args
	if len(p.Dirs) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one site directory.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// pathLang is the value of a -default-lang flag,
// in the form 'path=language'.
type pathLang struct {
	Path string
	Lang string
}

var _ flag.Getter = (*pathLang)(nil)

func (pl *pathLang) Get() any { return pl }

func (pl *pathLang) String() string {
	return fmt.Sprintf("%s=%s", pl.Path, pl.Lang)
}

func (pl *pathLang) Set(s string) error {
	idx := strings.IndexRune(s, '=')
	if idx < 0 {
		return errors.New("expected form 'path=language'")
	}

	pl.Path = s[:idx]
	pl.Lang = s[idx+1:]
	if pl.Lang == "" {
		return errors.New("language must not be empty")
	}
	return nil
}
