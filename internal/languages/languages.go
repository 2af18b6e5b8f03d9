// Package languages holds the grammar definitions shipped with hilite.
//
// Each definition is a declarative rule table
// consumed by the engine in [go.abhg.dev/hilite/internal/grammar];
// none of them perform any semantic analysis.
package languages

import (
	"go.abhg.dev/hilite/internal/grammar"
	"go.abhg.dev/hilite/internal/must"
)

// All returns every grammar definition shipped with hilite.
func All() []*grammar.Grammar {
	return []*grammar.Grammar{ANTLR}
}

// Register compiles every shipped grammar definition
// and registers it into reg.
// It panics if a shipped table does not compile;
// that is a bug in this package, not a runtime condition.
func Register(reg *grammar.Registry) {
	for _, g := range All() {
		_, err := reg.Register(g)
		must.NotErrorf(err, "register grammar %q", g.Name)
	}
}
