package highlight

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"

	"go.abhg.dev/hilite/internal/grammar"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// GrammarLexer builds a [Lexer] from a compiled grammar definition.
func GrammarLexer(c *grammar.Compiled) Lexer {
	return grammarLexer{c: c}
}

type grammarLexer struct{ c *grammar.Compiled }

func (gl grammarLexer) Lex(src []byte) ([]chroma.Token, error) {
	tokens, _ := gl.c.Tokenize(string(src))
	return tokens, nil
}

// ChromaLexer builds a [Lexer] from a Chroma lexer.
func ChromaLexer(l chroma.Lexer) Lexer {
	return chromaLexer{l: chroma.Coalesce(l)}
}

type chromaLexer struct{ l chroma.Lexer }

func (cl chromaLexer) Lex(src []byte) ([]chroma.Token, error) {
	tokens, err := chroma.Tokenise(cl.l, nil, string(src))
	return tokens, errtrace.Wrap(err)
}

// PlainLexer emits its input unclassified.
// It is the fallback when no language can be determined.
var PlainLexer Lexer = plainLexer{}

type plainLexer struct{}

func (plainLexer) Lex(src []byte) ([]chroma.Token, error) {
	if len(src) == 0 {
		return nil, nil
	}
	return []chroma.Token{{Type: chroma.Text, Value: string(src)}}, nil
}
