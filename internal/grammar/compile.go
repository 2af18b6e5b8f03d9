package grammar

import (
	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/dlclark/regexp2"
)

// Compiled is the immutable compiled form of a [Grammar].
// It is safe for concurrent use.
type Compiled struct {
	name    string
	aliases []string
	top     compiledRule
}

type compiledRule struct {
	typ      chroma.TokenType
	rel      int
	match    *regexp2.Regexp
	begin    *regexp2.Regexp
	end      *regexp2.Regexp
	contains []*compiledRule
}

// Compile validates a grammar and compiles its patterns.
func Compile(g *Grammar) (*Compiled, error) {
	if g.Name == "" {
		return nil, errtrace.New("grammar has no name")
	}

	opts := regexp2.RegexOptions(regexp2.Multiline)
	if g.CaseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	c := Compiled{
		name:    g.Name,
		aliases: append([]string(nil), g.Aliases...),
		top:     compiledRule{typ: chroma.Text},
	}

	var err error
	c.top.contains, err = compileRules(g.Contains, nil, opts)
	if err != nil {
		return nil, errtrace.Errorf("grammar %q: %w", g.Name, err)
	}
	return &c, nil
}

// MustCompile is like [Compile] but panics on error.
// Use it only for grammar tables fixed at build time.
func MustCompile(g *Grammar) *Compiled {
	c, err := Compile(g)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the grammar's name.
func (c *Compiled) Name() string { return c.name }

// Aliases returns the grammar's alternative names.
func (c *Compiled) Aliases() []string { return c.aliases }

func compileRules(rules []*Rule, parent *compiledRule, opts regexp2.RegexOptions) ([]*compiledRule, error) {
	out := make([]*compiledRule, 0, len(rules))
	for i, r := range rules {
		if r == Self {
			if parent == nil {
				return nil, errtrace.Errorf("rule %d: Self outside a delimited rule", i)
			}
			out = append(out, parent)
			continue
		}

		cr, err := compileRule(r, opts)
		if err != nil {
			return nil, errtrace.Errorf("rule %d: %w", i, err)
		}
		out = append(out, cr)
	}
	return out, nil
}

func compileRule(r *Rule, opts regexp2.RegexOptions) (*compiledRule, error) {
	switch {
	case r.Match != "" && r.Begin != "":
		return nil, errtrace.New("Match and Begin are mutually exclusive")
	case r.Match == "" && r.Begin == "":
		return nil, errtrace.New("rule needs Match or Begin")
	case r.Begin != "" && r.End == "":
		return nil, errtrace.New("Begin requires End")
	case r.Begin == "" && r.End != "":
		return nil, errtrace.New("End requires Begin")
	case r.Match != "" && len(r.Contains) > 0:
		return nil, errtrace.New("nested rules require a Begin/End pair")
	}

	cr := compiledRule{typ: r.Type, rel: relevanceOf(r)}

	var err error
	if r.Match != "" {
		cr.match, err = regexp2.Compile(r.Match, opts)
		if err != nil {
			return nil, errtrace.Errorf("pattern %q: %w", r.Match, err)
		}
		return &cr, nil
	}

	if cr.begin, err = regexp2.Compile(r.Begin, opts); err != nil {
		return nil, errtrace.Errorf("begin pattern %q: %w", r.Begin, err)
	}
	if cr.end, err = regexp2.Compile(r.End, opts); err != nil {
		return nil, errtrace.Errorf("end pattern %q: %w", r.End, err)
	}

	// Compiled after the patterns so that Self inside Contains
	// resolves to this rule.
	if cr.contains, err = compileRules(r.Contains, &cr, opts); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &cr, nil
}

func relevanceOf(r *Rule) int {
	switch {
	case r.Relevance == None:
		return 0
	case r.Relevance == 0:
		return 1
	case r.Relevance < 0:
		return 0
	default:
		return r.Relevance
	}
}
