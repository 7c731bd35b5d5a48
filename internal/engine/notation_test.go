package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePositionKnownSquares(t *testing.T) {
	pos, err := ParsePosition("d3")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 2, Col: 3}, pos)

	pos, err = ParsePosition("a1")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Col: 0}, pos)

	pos, err = ParsePosition("h8")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 7, Col: 7}, pos)
}

func TestPositionNotationRoundTrip(t *testing.T) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pos := Position{Row: r, Col: c}
			parsed, err := ParsePosition(pos.String())
			require.NoError(t, err)
			require.Equal(t, pos, parsed)
		}
	}
}

func TestParsePositionRejectsBadInput(t *testing.T) {
	for _, square := range []string{"", "d", "d33", "i1", "a0", "a9", "D3", "3d", "zz"} {
		_, err := ParsePosition(square)
		assert.Error(t, err, "square %q", square)
	}
}

func TestOffBoardPositionString(t *testing.T) {
	assert.Equal(t, "(-1,9)", Position{Row: -1, Col: 9}.String())
}
