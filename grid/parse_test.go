package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

// TestParse_Errors verifies that Parse rejects malformed inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"BlankRow", []string{"  "}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonSquare},
		{"Wide", []string{"...", "..."}, grid.ErrNonSquare},
		{"Glyph", []string{".?", ".."}, grid.ErrUnknownGlyph},
		{"TwoStarts", []string{"S.", ".S"}, grid.ErrDuplicateEndpoint},
		{"TwoEnds", []string{"EE", ".."}, grid.ErrDuplicateEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.rows)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_RoundTrip checks classification and that String reproduces the input.
func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		"S.#.",
		".o#.",
		".x*E",
		"....",
	}
	g, err := grid.Parse(rows)
	require.NoError(t, err)

	start, ok := g.Find(grid.Start)
	require.True(t, ok)
	assert.Equal(t, grid.Position{Row: 0, Col: 0}, start)

	end, ok := g.Find(grid.End)
	require.True(t, ok)
	assert.Equal(t, grid.Position{Row: 2, Col: 3}, end)

	c, _ := g.Cell(grid.Position{Row: 1, Col: 2})
	assert.Equal(t, grid.Barrier, c.State())

	assert.Equal(t, "S.#.\n.o#.\n.x*E\n....", g.String())
}

// TestParse_TrimsWhitespace allows indented fixtures.
func TestParse_TrimsWhitespace(t *testing.T) {
	g, err := grid.Parse([]string{"  S.", "\t.E "})
	require.NoError(t, err)
	assert.Equal(t, "S.\n.E", g.String())

	_, ok := g.Find(grid.Path)
	assert.False(t, ok)
}
