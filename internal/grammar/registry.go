package grammar

import (
	"sort"
	"strings"

	"braces.dev/errtrace"
)

// _detectLimit bounds how much of a block
// Detect feeds to each grammar.
const _detectLimit = 4096

// Registry is a collection of compiled grammars
// indexed by name and alias.
//
// Build it once at startup and treat it as read-only afterwards;
// lookups are safe for concurrent use, registration is not.
type Registry struct {
	grammars []*Compiled
	byName   map[string]*Compiled
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Compiled)}
}

// Register compiles g and adds it to the registry,
// indexed under its name and each of its aliases.
// Names are matched case-insensitively.
func (r *Registry) Register(g *Grammar) (*Compiled, error) {
	c, err := Compile(g)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	names := append([]string{c.name}, c.aliases...)
	for _, name := range names {
		if prev, ok := r.byName[strings.ToLower(name)]; ok {
			return nil, errtrace.Errorf(
				"grammar %q: name %q already registered by %q",
				c.name, name, prev.name)
		}
	}

	for _, name := range names {
		r.byName[strings.ToLower(name)] = c
	}
	r.grammars = append(r.grammars, c)
	return c, nil
}

// Lookup retrieves a grammar by name or alias.
func (r *Registry) Lookup(name string) (*Compiled, bool) {
	c, ok := r.byName[strings.ToLower(name)]
	return c, ok
}

// Names returns the names of all registered grammars, sorted.
// Aliases are not included.
func (r *Registry) Names() []string {
	names := make([]string, len(r.grammars))
	for i, c := range r.grammars {
		names[i] = c.name
	}
	sort.Strings(names)
	return names
}

// Detect picks the registered grammar
// whose rules score the highest relevance against src.
// It reports false if no grammar scores above zero.
// Ties go to the earliest-registered grammar.
func (r *Registry) Detect(src string) (*Compiled, bool) {
	if len(src) > _detectLimit {
		src = src[:_detectLimit]
	}

	var (
		best      *Compiled
		bestScore int
	)
	for _, c := range r.grammars {
		if _, score := c.Tokenize(src); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best, best != nil
}
