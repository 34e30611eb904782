package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "NAME", "AREA"},
		[][]string{
			{"1", "North Field", "0.8"},
			{"2", "South", "12.5"},
		},
		AlignLeft, AlignLeft, AlignRight,
	)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "─")
	// Right-aligned area column: both values end at the same offset.
	assert.True(t, strings.HasSuffix(lines[2], " 0.8"))
	assert.True(t, strings.HasSuffix(lines[3], "12.5"))
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRowsPadOut(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"lone"}})
	assert.Contains(t, out, "lone")
}
