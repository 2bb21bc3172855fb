package chess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPiece(t *testing.T, id string) Piece {
	t.Helper()
	p, err := ParsePiece(id)
	require.NoError(t, err)
	return p
}

func TestFirstMoveMustCoverStart(t *testing.T) {
	var b Board
	mono := NewShape("#")

	assert.True(t, IsLegal(b, mono, 4, 4, Player1, true))
	assert.False(t, IsLegal(b, mono, 4, 5, Player1, true))
	assert.False(t, IsLegal(b, mono, 9, 9, Player1, true))
	assert.True(t, IsLegal(b, mono, 9, 9, Player2, true))
	assert.False(t, IsLegal(b, mono, 4, 4, Player2, true))

	i5 := NewShape("#####")
	assert.True(t, IsLegal(b, i5, 4, 0, Player1, true))
	assert.True(t, IsLegal(b, i5, 4, 4, Player1, true))
	assert.False(t, IsLegal(b, i5, 4, 5, Player1, true))
}

func TestOutOfBoundsIsRejected(t *testing.T) {
	var b Board
	i5 := NewShape("#####")
	assert.False(t, IsLegal(b, i5, 9, 10, Player2, true))
	assert.False(t, IsLegal(b, i5, -1, 9, Player2, true))
	assert.False(t, IsLegal(b, NewShape("#"), 14, 14, Player2, false))
}

func TestOverlapIsRejected(t *testing.T) {
	var b Board
	b = b.Place(NewShape("##", "##"), 4, 4, Player1)
	b = b.Place(NewShape("#"), 9, 9, Player2)

	// (5, 5) is owned by Player1.
	assert.False(t, IsLegal(b, NewShape("#"), 5, 5, Player2, false))
	assert.False(t, IsLegal(b, NewShape("#"), 5, 5, Player1, false))
	assert.False(t, IsLegal(b, NewShape("###"), 4, 3, Player2, true))
}

func TestEdgeContactWithOwnPieceIsRejected(t *testing.T) {
	var b Board
	b = b.Place(NewShape("#"), 4, 4, Player1)

	// Corner touch at (5, 5) but (5, 4) shares an edge with (4, 4).
	assert.False(t, IsLegal(b, NewShape("##"), 5, 4, Player1, false))
	assert.True(t, IsLegal(b, NewShape("##"), 5, 5, Player1, false))
	assert.False(t, IsLegal(b, NewShape("#"), 6, 6, Player1, false))

	// Touching the opponent along an edge is fine.
	assert.True(t, IsLegal(b, NewShape("#"), 9, 9, Player2, true))
	b = b.Place(NewShape("#"), 9, 9, Player2)
	assert.True(t, IsLegal(b, NewShape("#"), 5, 5, Player1, false))
}

func TestAnchors(t *testing.T) {
	var b Board
	assert.Equal(t, []Dot{NewDot(4, 4)}, Anchors(b, Player1, true))
	assert.Equal(t, []Dot{NewDot(9, 9)}, Anchors(b, Player2, true))
	assert.Empty(t, Anchors(b, Player1, false))

	b = b.Place(NewShape("##"), 4, 4, Player1)
	assert.Equal(t, []Dot{NewDot(3, 3), NewDot(3, 6), NewDot(5, 3), NewDot(5, 6)}, Anchors(b, Player1, false))

	b = b.Place(NewShape("#"), 0, 0, Player1)
	assert.Contains(t, Anchors(b, Player1, false), NewDot(1, 1))
}
