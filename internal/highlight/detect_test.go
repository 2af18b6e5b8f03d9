package highlight

import (
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.abhg.dev/hilite/internal/grammar"
)

func testGrammars(t *testing.T) *grammar.Registry {
	t.Helper()

	reg := grammar.NewRegistry()
	_, err := reg.Register(&grammar.Grammar{
		Name:    "toy",
		Aliases: []string{"plaything"},
		Contains: []*grammar.Rule{
			{Type: chroma.Keyword, Match: `\btoything\b`, Relevance: 10},
		},
	})
	require.NoError(t, err)
	return reg
}

func TestDetector_labeled(t *testing.T) {
	t.Parallel()

	d := Detector{Grammars: testGrammars(t)}

	tests := []struct {
		desc string
		lang string
		want Lexer
	}{
		{
			desc: "grammar by name",
			lang: "toy",
			want: grammarLexer{},
		},
		{
			desc: "grammar by alias",
			lang: "plaything",
			want: grammarLexer{},
		},
		{
			desc: "chroma fallback",
			lang: "go",
			want: chromaLexer{},
		},
		{
			desc: "unknown language",
			lang: "no-such-language",
			want: PlainLexer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got := d.Lexer(tt.lang, []byte("toything"))
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestDetector_unlabeled(t *testing.T) {
	t.Parallel()

	d := Detector{Grammars: testGrammars(t)}

	t.Run("grammar relevance", func(t *testing.T) {
		t.Parallel()

		got := d.Lexer("", []byte("toything here"))
		require.IsType(t, grammarLexer{}, got)

		tokens, err := got.Lex([]byte("toything"))
		require.NoError(t, err)
		assert.Equal(t, []chroma.Token{
			{Type: chroma.Keyword, Value: "toything"},
		}, tokens)
	})

	t.Run("content classifier", func(t *testing.T) {
		t.Parallel()

		src := []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n")
		got := d.Lexer("", src)
		assert.NotEqual(t, PlainLexer, got,
			"recognizable source should not fall through to plain text")
	})
}

func TestDetector_withoutGrammars(t *testing.T) {
	t.Parallel()

	var d Detector
	got := d.Lexer("go", []byte("package main"))
	assert.IsType(t, chromaLexer{}, got)
}

func TestGrammarLexer(t *testing.T) {
	t.Parallel()

	reg := testGrammars(t)
	c, ok := reg.Lookup("toy")
	require.True(t, ok)

	tokens, err := GrammarLexer(c).Lex([]byte("a toything b"))
	require.NoError(t, err)
	assert.Equal(t, []chroma.Token{
		{Type: chroma.Text, Value: "a "},
		{Type: chroma.Keyword, Value: "toything"},
		{Type: chroma.Text, Value: " b"},
	}, tokens)
}

func TestChromaLexer(t *testing.T) {
	t.Parallel()

	l := lexers.Get("go")
	require.NotNil(t, l)

	tokens, err := ChromaLexer(l).Lex([]byte("package main"))
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, chroma.KeywordNamespace, tokens[0].Type)
	assert.Equal(t, "package", tokens[0].Value)
}

func TestPlainLexer(t *testing.T) {
	t.Parallel()

	tokens, err := PlainLexer.Lex([]byte("anything at all"))
	require.NoError(t, err)
	assert.Equal(t, []chroma.Token{
		{Type: chroma.Text, Value: "anything at all"},
	}, tokens)

	tokens, err = PlainLexer.Lex(nil)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
