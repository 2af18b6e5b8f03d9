package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelp_topics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give Help
		want string // substring of output
	}{
		{give: DefaultHelp, want: "USAGE"},
		{give: UsageHelp, want: "USAGE"},
		{give: "languages", want: "antlr"},
		{give: "styles", want: "plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.give), func(t *testing.T) {
			t.Parallel()

			var buf strings.Builder
			require.NoError(t, tt.give.Write(&buf))
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestHelp_noHelp(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, NoHelp.Write(&buf))
	assert.Empty(t, buf.String())
}

func TestHelp_unknownTopic(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	err := Help("not-a-topic").Write(&buf)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown help topic")
	assert.False(t, Help("not-a-topic").Known())
}

func TestHelp_set(t *testing.T) {
	t.Parallel()

	var h Help
	require.NoError(t, h.Set("true"))
	assert.Equal(t, DefaultHelp, h)
	assert.True(t, h.Known())

	require.NoError(t, h.Set("Languages"))
	assert.Equal(t, Help("languages"), h)
}

func TestHelp_usageIsFirstLine(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, UsageHelp.Write(&buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
