package board_test

import (
	"testing"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsExistOnStartingPosition(t *testing.T) {
	pos := board.NewPosition()
	assert.True(t, pos.PathsExist())
}

func TestShortestPathLengthOnStartingPosition(t *testing.T) {
	pos := board.NewPosition()

	assert.Len(t, pos.ShortestPath(board.White), 8)
	assert.Len(t, pos.ShortestPath(board.Black), 8)

	white := pos.ShortestPath(board.White)
	assert.True(t, white[len(white)-1].IsWhiteGoal())
}

func TestShortestPathIsMemoized(t *testing.T) {
	pos := board.NewPosition()

	first := pos.ShortestPath(board.White)
	second := pos.ShortestPath(board.White)
	assert.Equal(t, first, second)
}

func TestWalkPathsLabelsFromPawn(t *testing.T) {
	pos := board.NewPosition()
	labels := pos.WalkPaths(board.White)

	assert.Equal(t, uint32(1), labels[pos.Pawn(board.White)])

	oneStep := board.NewSquare(4, 7) // e9 -> e8, one step toward White's goal
	assert.Equal(t, uint32(2), labels[oneStep])

	goal := board.NewSquare(3, 0) // d1: e1 holds Black's pawn and stays unlabelled
	assert.Equal(t, uint32(10), labels[goal])
}

func TestPathsExistDetectsFullyBoxedPawn(t *testing.T) {
	hwalls := board.EmptyWallMask.Set(board.NewSlot(3, 3)).Set(board.NewSlot(4, 4))
	vwalls := board.EmptyWallMask.Set(board.NewSlot(3, 4)).Set(board.NewSlot(4, 3))

	pawns := [2]board.Square{board.NewSquare(0, 8), board.NewSquare(4, 4)}
	pos, err := board.NewPositionFromState(pawns, [2]int{8, 8}, hwalls, vwalls, board.White)
	require.NoError(t, err)

	assert.False(t, pos.IsOpen(board.NewSquare(4, 4), board.N))
	assert.False(t, pos.IsOpen(board.NewSquare(4, 4), board.S))
	assert.False(t, pos.IsOpen(board.NewSquare(4, 4), board.E))
	assert.False(t, pos.IsOpen(board.NewSquare(4, 4), board.W))

	assert.False(t, pos.PathsExist())
	assert.Empty(t, pos.ShortestPath(board.Black))
}
