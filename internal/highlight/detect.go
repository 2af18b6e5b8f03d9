package highlight

import (
	"github.com/alecthomas/chroma/v2/lexers"
	enry "github.com/go-enry/go-enry/v2"

	"go.abhg.dev/hilite/internal/grammar"
)

// Detector picks a [Lexer] for a code block.
//
// Labeled blocks resolve against the grammar registry first
// and Chroma's lexer registry second.
// Unlabeled blocks go through content-based detection:
// grammar relevance scoring, then enry's shebang check
// and Bayesian classifier, then Chroma's analysers.
// There is always an answer; the last resort is [PlainLexer].
type Detector struct {
	// Grammars are the registered grammar definitions, if any.
	Grammars *grammar.Registry
}

// Candidates for enry's classifier.
// The classifier requires a candidate list and picks the best of them;
// these are common languages whose enry names
// also resolve in Chroma's lexer registry.
var _classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "C#", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Lexer returns the lexer to tokenize a block with.
// lang is the block's declared language, or "" if it has none.
func (d *Detector) Lexer(lang string, src []byte) Lexer {
	if lang != "" {
		if d.Grammars != nil {
			if c, ok := d.Grammars.Lookup(lang); ok {
				return GrammarLexer(c)
			}
		}
		if l := lexers.Get(lang); l != nil {
			return ChromaLexer(l)
		}
		return PlainLexer
	}

	if d.Grammars != nil {
		if c, ok := d.Grammars.Detect(string(src)); ok {
			return GrammarLexer(c)
		}
	}
	if name, ok := enry.GetLanguageByShebang(src); ok {
		if l := lexers.Get(name); l != nil {
			return ChromaLexer(l)
		}
	}
	if name, ok := enry.GetLanguageByClassifier(src, _classifierCandidates); ok {
		if l := lexers.Get(name); l != nil {
			return ChromaLexer(l)
		}
	}
	if l := lexers.Analyse(string(src)); l != nil {
		return ChromaLexer(l)
	}
	return PlainLexer
}
