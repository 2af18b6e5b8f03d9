// Package highlight renders classified code tokens into HTML
// and picks the right tokenizer for a code block.
//
// Tokens come either from the grammar definitions
// shipped with hilite ([go.abhg.dev/hilite/internal/grammar])
// or from the Chroma lexer registry,
// and are rendered with Chroma's HTML formatter either way,
// so one stylesheet covers both sources.
package highlight
