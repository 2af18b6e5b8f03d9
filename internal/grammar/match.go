package grammar

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/dlclark/regexp2"
)

// Tokenize classifies src into a stream of tokens,
// and reports the summed relevance of the rules that matched,
// for use in language auto-detection.
//
// Text not covered by any rule is emitted
// with the class of the enclosing span,
// or as plain text at the top level.
// An unterminated span extends to the end of the input.
// Adjacent tokens of the same class are coalesced.
func (c *Compiled) Tokenize(src string) ([]chroma.Token, int) {
	s := scanner{src: []rune(src)}
	s.scan(&c.top, 0)
	return s.tokens, s.relevance
}

type scanner struct {
	src       []rune
	tokens    []chroma.Token
	relevance int
}

// scan consumes input within span starting at pos,
// returning after span's end delimiter
// or when the input is exhausted.
func (s *scanner) scan(span *compiledRule, pos int) int {
	for pos < len(s.src) {
		rule, m, isEnd := s.next(span, pos)
		if m == nil {
			s.emit(span.typ, pos, len(s.src))
			return len(s.src)
		}

		s.emit(span.typ, pos, m.Index)
		pos = m.Index + m.Length

		if isEnd {
			// The end delimiter shares the span's class.
			s.emit(span.typ, m.Index, pos)
			return pos
		}

		s.relevance += rule.rel
		s.emit(rule.typ, m.Index, pos)
		if rule.begin != nil {
			pos = s.scan(rule, pos)
		}
	}
	return pos
}

// next finds the earliest match at or after pos
// among span's contained rules and its end delimiter.
// Ties on position go to the earliest-declared rule;
// the end delimiter is considered last.
func (s *scanner) next(span *compiledRule, pos int) (rule *compiledRule, m *regexp2.Match, isEnd bool) {
	consider := func(r *compiledRule, re *regexp2.Regexp, end bool) {
		got, err := re.FindRunesMatchStartingAt(s.src, pos)
		if err != nil || got == nil || got.Length == 0 {
			// Zero-length matches cannot advance the scanner.
			return
		}
		if m == nil || got.Index < m.Index {
			rule, m, isEnd = r, got, end
		}
	}

	for _, r := range span.contains {
		if r.match != nil {
			consider(r, r.match, false)
		} else {
			consider(r, r.begin, false)
		}
	}
	if span.end != nil {
		consider(span, span.end, true)
	}
	return rule, m, isEnd
}

func (s *scanner) emit(t chroma.TokenType, start, end int) {
	if start >= end {
		return
	}
	v := string(s.src[start:end])
	if n := len(s.tokens); n > 0 && s.tokens[n-1].Type == t {
		s.tokens[n-1].Value += v
		return
	}
	s.tokens = append(s.tokens, chroma.Token{Type: t, Value: v})
}
