// Package grammar implements a declarative tokenizer
// for presentational syntax highlighting.
//
// A [Grammar] is an ordered list of [Rule]s.
// Each rule maps a pattern or a delimiter pair
// to a display class ([chroma.TokenType]),
// and delimited rules may contain further rules
// that apply between the delimiters.
// Grammars are compiled once with [Compile]
// and applied statelessly to any number of code blocks.
package grammar

import (
	"regexp"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
)

// None excludes a rule from relevance scoring.
// Rules with no explicit relevance score 1 per match.
const None = -1

// Self is a sentinel rule.
// Placing it in the Contains list of a delimited rule
// allows another full instance of that rule between its delimiters,
// so constructs like nested braces match to arbitrary depth.
var Self = &Rule{}

// Rule is a single pattern-to-class mapping.
//
// Exactly one match condition must be set:
// either Match, or a Begin/End delimiter pair.
type Rule struct {
	// Type is the display class for matched text.
	Type chroma.TokenType

	// Match is a regular expression matched as a single token.
	Match string

	// Begin and End delimit a span.
	// Text between the delimiters is classified as Type
	// except where a rule in Contains matches.
	Begin string
	End   string

	// Contains lists the rules applied inside a delimited span,
	// in decreasing order of precedence.
	// It may include [Self].
	Contains []*Rule

	// Relevance is the weight this rule adds to language detection
	// each time it matches.
	// Zero means the default weight of 1; use [None] to opt out.
	Relevance int
}

// Grammar is a named, ordered set of tokenization rules
// for one language.
type Grammar struct {
	// Name uniquely identifies the language.
	Name string

	// Aliases are alternative names code blocks may be tagged with.
	Aliases []string

	// CaseInsensitive makes every pattern in the grammar
	// match case-insensitively.
	CaseInsensitive bool

	// Contains lists the top-level rules
	// in decreasing order of precedence:
	// when two rules match at the same position,
	// the one declared earlier wins.
	Contains []*Rule
}

// Literal builds a rule that matches the given text exactly.
func Literal(t chroma.TokenType, text string) *Rule {
	return &Rule{Type: t, Match: regexp.QuoteMeta(text)}
}

// Keywords builds a rule that matches any of the given words
// on word boundaries.
func Keywords(t chroma.TokenType, words ...string) *Rule {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return &Rule{
		Type:  t,
		Match: `\b(?:` + strings.Join(quoted, "|") + `)\b`,
	}
}
