package languages

import (
	chroma "github.com/alecthomas/chroma/v2"

	"go.abhg.dev/hilite/internal/grammar"
)

// ANTLR is the grammar definition for ANTLR4 grammar files.
//
// Identifiers are classified purely by the case of their first letter,
// matching the language's own convention:
// lowercase names are parser rule references,
// uppercase names are token references.
var ANTLR = &grammar.Grammar{
	Name:     "antlr",
	Aliases:  []string{"antlr4", "g4"},
	Contains: antlrRules(),
}

func antlrRules() []*grammar.Rule {
	lineComment := &grammar.Rule{
		Type:  chroma.CommentSingle,
		Match: `//[^\n]*`,
	}
	blockComment := &grammar.Rule{
		Type:  chroma.CommentMultiline,
		Match: `/\*(?s:.*?)\*/`,
	}

	escape := &grammar.Rule{
		Type:      chroma.LiteralStringEscape,
		Match:     `\\.`,
		Relevance: grammar.None,
	}

	// Quote styles are independently scoped:
	// only an unescaped quote of the same style closes a string.
	singleString := &grammar.Rule{
		Type:      chroma.LiteralString,
		Begin:     `'`,
		End:       `'`,
		Contains:  []*grammar.Rule{escape},
		Relevance: grammar.None,
	}
	doubleString := &grammar.Rule{
		Type:      chroma.LiteralString,
		Begin:     `"`,
		End:       `"`,
		Contains:  []*grammar.Rule{escape},
		Relevance: grammar.None,
	}

	// Embedded target-language code.
	// Self keeps brace counting balanced at any depth,
	// and the string and comment rules keep a brace inside
	// a literal or comment from closing the block early.
	action := &grammar.Rule{
		Type:  chroma.Other,
		Begin: `\{`,
		End:   `\}`,
		Contains: []*grammar.Rule{
			grammar.Self,
			lineComment,
			blockComment,
			singleString,
			doubleString,
		},
		Relevance: grammar.None,
	}

	// Character sets like [a-zA-Z0-9_].
	// An interior hyphen is the range operator,
	// distinct from escaped characters.
	charSet := &grammar.Rule{
		Type:  chroma.LiteralStringChar,
		Begin: `\[`,
		End:   `\]`,
		Contains: []*grammar.Rule{
			escape,
			{Type: chroma.Operator, Match: `-`, Relevance: grammar.None},
		},
		Relevance: grammar.None,
	}

	return []*grammar.Rule{
		lineComment,
		blockComment,

		// Named actions and lexer command targets: @header, @lexer::members.
		{
			Type:      chroma.NameDecorator,
			Match:     `@[a-zA-Z_]\w*(?:::[a-zA-Z_]\w*)?`,
			Relevance: 5,
		},

		singleString,
		doubleString,
		charSet,
		action,

		keywords(),

		// Element options such as <assoc=right>.
		{
			Type:      chroma.NameAttribute,
			Begin:     `<`,
			End:       `>`,
			Relevance: grammar.None,
		},

		// Token range: 'a'..'z'.
		withRelevance(grammar.Literal(chroma.Operator, ".."), 3),
		withRelevance(grammar.Literal(chroma.Operator, "->"), grammar.None),

		{Type: chroma.LiteralNumber, Match: `\b\d+\b`, Relevance: grammar.None},

		// Case convention, not symbol resolution:
		// an uppercase first letter is a token reference,
		// a lowercase one a parser rule reference.
		{Type: chroma.NameClass, Match: `\b[A-Z]\w*\b`, Relevance: grammar.None},
		{Type: chroma.NameFunction, Match: `\b[a-z]\w*\b`, Relevance: grammar.None},

		{Type: chroma.Operator, Match: `[|~*+?=!$]`, Relevance: grammar.None},
		{Type: chroma.Punctuation, Match: `[;:(),.]`, Relevance: grammar.None},
	}
}

func keywords() *grammar.Rule {
	kw := grammar.Keywords(chroma.Keyword,
		"grammar", "lexer", "parser", "import", "fragment",
		"options", "tokens", "channels", "mode",
		"returns", "locals", "throws", "catch", "finally",
		"skip", "more", "type", "channel", "pushMode", "popMode",
	)
	kw.Relevance = 2
	return kw
}

func withRelevance(r *grammar.Rule, rel int) *grammar.Rule {
	r.Relevance = rel
	return r
}
