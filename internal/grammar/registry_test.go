package grammar

import (
	"strings"
	"testing"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	c, err := reg.Register(&Grammar{
		Name:    "toy",
		Aliases: []string{"plaything"},
	})
	require.NoError(t, err)

	tests := []struct {
		desc string
		give string
		ok   bool
	}{
		{desc: "name", give: "toy", ok: true},
		{desc: "alias", give: "plaything", ok: true},
		{desc: "name is case-insensitive", give: "Toy", ok: true},
		{desc: "alias is case-insensitive", give: "PLAYTHING", ok: true},
		{desc: "unknown", give: "widget", ok: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, ok := reg.Lookup(tt.give)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Same(t, c, got)
			}
		})
	}
}

func TestRegistry_duplicateNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give *Grammar
	}{
		{
			desc: "same name",
			give: &Grammar{Name: "toy"},
		},
		{
			desc: "name matches alias",
			give: &Grammar{Name: "plaything"},
		},
		{
			desc: "alias matches name",
			give: &Grammar{Name: "other", Aliases: []string{"TOY"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			reg := NewRegistry()
			_, err := reg.Register(&Grammar{
				Name:    "toy",
				Aliases: []string{"plaything"},
			})
			require.NoError(t, err)

			_, err = reg.Register(tt.give)
			require.Error(t, err)
			assert.ErrorContains(t, err, "already registered")
		})
	}
}

func TestRegistry_RegisterCompileError(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	_, err := reg.Register(&Grammar{
		Name:     "broken",
		Contains: []*Rule{{Match: "("}},
	})
	require.Error(t, err)

	_, ok := reg.Lookup("broken")
	assert.False(t, ok, "failed registration must not be indexed")
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, name := range []string{"zig", "ada", "mumps"} {
		_, err := reg.Register(&Grammar{Name: name})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"ada", "mumps", "zig"}, reg.Names())
}

func TestRegistry_Detect(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	_, err := reg.Register(&Grammar{
		Name: "inify",
		Contains: []*Rule{
			{Type: chroma.NameAttribute, Match: `^\[\w+\]`, Relevance: 5},
			{Type: chroma.Operator, Match: `=`, Relevance: None},
		},
	})
	require.NoError(t, err)

	_, err = reg.Register(&Grammar{
		Name: "colonese",
		Contains: []*Rule{
			{Type: chroma.NameAttribute, Match: `^\w+:`, Relevance: 5},
		},
	})
	require.NoError(t, err)

	tests := []struct {
		desc string
		give string
		want string // "" means no detection
	}{
		{
			desc: "first grammar",
			give: "[section]\nkey = value\n",
			want: "inify",
		},
		{
			desc: "second grammar",
			give: "key: value\nother: thing\n",
			want: "colonese",
		},
		{
			desc: "nothing scores",
			give: "just some words",
			want: "",
		},
		{desc: "empty", give: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, ok := reg.Detect(tt.give)
			if tt.want == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, got.Name())
		})
	}
}

func TestRegistry_DetectTieGoesToFirstRegistered(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	rule := func() []*Rule {
		return []*Rule{{Type: chroma.Keyword, Match: `\bthing\b`, Relevance: 3}}
	}
	_, err := reg.Register(&Grammar{Name: "first", Contains: rule()})
	require.NoError(t, err)
	_, err = reg.Register(&Grammar{Name: "second", Contains: rule()})
	require.NoError(t, err)

	got, ok := reg.Detect("thing")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name())
}

func TestRegistry_DetectBoundsInput(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	_, err := reg.Register(&Grammar{
		Name: "toy",
		Contains: []*Rule{
			{Type: chroma.Keyword, Match: `\bword\b`},
		},
	})
	require.NoError(t, err)

	// The marker past the detection window must not count.
	src := strings.Repeat("x", _detectLimit) + " word"
	_, ok := reg.Detect(src)
	assert.False(t, ok)
}
