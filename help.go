package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"go.abhg.dev/hilite/internal/grammar"
	"go.abhg.dev/hilite/internal/languages"
)

// Help is hilite's -h/-help flag.
// It supports retrieving help on various topics by passing in a parameter.
type Help string

// Help topics with special meaning.
const (
	NoHelp      Help = ""
	DefaultHelp Help = "default"
	UsageHelp   Help = "usage"
)

//go:embed help/default.txt
var _defaultHelp string

var _usageHelp = firstLineOf(_defaultHelp)

func firstLineOf(s string) string {
	if idx := strings.IndexRune(s, '\n'); idx >= 0 {
		s = s[:idx+1]
	}
	return s
}

var _helpTopics = map[Help]func(io.Writer) error{
	DefaultHelp: writeString(func() string { return _defaultHelp }),
	UsageHelp:   writeString(func() string { return _usageHelp }),
	"languages": writeLanguagesHelp,
	"styles":    writeStylesHelp,
}

func writeString(get func() string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, get())
		return err
	}
}

func writeLanguagesHelp(w io.Writer) error {
	reg := grammar.NewRegistry()
	languages.Register(reg)

	var sb strings.Builder
	sb.WriteString("Grammar definitions:\n")
	for _, name := range reg.Names() {
		g, _ := reg.Lookup(name)
		sb.WriteString("  " + name)
		if aliases := g.Aliases(); len(aliases) > 0 {
			sb.WriteString(" (aliases: " + strings.Join(aliases, ", ") + ")")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nChroma lexers:\n")
	sb.WriteString("  " + strings.Join(lexers.GlobalLexerRegistry.Names(false), ", ") + "\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeStylesHelp(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Available styles:\n  %s\n",
		strings.Join(styles.Names(), ", "))
	return err
}

// Known reports whether this is a valid help topic.
func (h Help) Known() bool {
	_, ok := _helpTopics[h]
	return ok
}

// Write writes the help on this topic to the writer.
// If this topic is not known, an error is returned.
func (h Help) Write(w io.Writer) error {
	if len(h) == 0 {
		return nil
	}

	if write, ok := _helpTopics[h]; ok {
		return write(w)
	}

	topics := make([]string, 0, len(_helpTopics))
	for t := range _helpTopics {
		topics = append(topics, string(t))
	}
	sort.Strings(topics)

	return fmt.Errorf("unknown help topic %q: valid values are %q", string(h), topics)
}

var _ flag.Getter = (*Help)(nil)

// Get returns the value of the Help.
// This is to comply with the [flag.Getter] interface.
func (h *Help) Get() any {
	return *h
}

// IsBoolFlag marks this as a boolean flag
// which allows it to be used without an argument.
func (*Help) IsBoolFlag() bool {
	return true
}

// String returns the name of this topic.
func (h Help) String() string {
	return string(h)
}

// Set receives a command line value.
func (h *Help) Set(s string) error {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "true" {
		s = "default"
	}
	*h = Help(s)
	return nil
}
