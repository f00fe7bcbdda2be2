package mcts_test

import (
	"context"
	"testing"
	"time"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/corvid/quoridor/pkg/mcts"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOptions(seed int64) mcts.Options {
	return mcts.Options{
		Iterations: lang.Some(uint(200)),
		Threads:    lang.Some(uint(1)),
		Seed:       lang.Some(seed),
	}
}

func TestSearchOnStartingPositionReturnsLegalMove(t *testing.T) {
	pos := board.NewPosition()

	move, next, log, err := mcts.Search(context.Background(), pos, smallOptions(1))
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Empty(t, log.Message)
	assert.Equal(t, 200, log.Iterations)
	assert.Greater(t, log.Moves, 0)

	found := false
	for _, s := range pos.Moves(false, true, false) {
		if s.Move == move {
			found = true
			break
		}
	}
	assert.True(t, found, "chosen move %v must be among the legal successors", move)
}

func TestSearchIsDeterministicWithAFixedSeed(t *testing.T) {
	pos := board.NewPosition()

	move1, _, _, err := mcts.Search(context.Background(), pos, smallOptions(42))
	require.NoError(t, err)

	move2, _, _, err := mcts.Search(context.Background(), pos, smallOptions(42))
	require.NoError(t, err)

	assert.Equal(t, move1, move2)
}

func TestSearchChoosesTheOnlyWinningMoveWhenOneMoveFromGoal(t *testing.T) {
	pawns := [2]board.Square{board.NewSquare(4, 1), board.NewSquare(0, 8)} // White e2, Black a9
	pos, err := board.NewPositionFromState(pawns, [2]int{10, 10}, board.EmptyWallMask, board.EmptyWallMask, board.White)
	require.NoError(t, err)
	require.True(t, pos.CanWin())

	move, next, _, err := mcts.Search(context.Background(), pos, smallOptions(7))
	require.NoError(t, err)

	assert.Equal(t, board.NewSquare(4, 0), move.Pawn)
	w, ok := next.Winner()
	assert.True(t, ok)
	assert.Equal(t, board.White, w)
}

func TestSearchReportsNoLegalMoveAsAMessage(t *testing.T) {
	// A pawn fully boxed in has no legal move at all.
	hwalls := board.EmptyWallMask.Set(board.NewSlot(3, 3)).Set(board.NewSlot(4, 4))
	vwalls := board.EmptyWallMask.Set(board.NewSlot(3, 4)).Set(board.NewSlot(4, 3))
	// Any further wall placement still leaves White pathless, so
	// validatePaths filters out every wall move too; White has 6 walls
	// left but none of them produce a legal successor.
	pawns := [2]board.Square{board.NewSquare(4, 4), board.NewSquare(0, 8)}
	pos, err := board.NewPositionFromState(pawns, [2]int{6, 10}, hwalls, vwalls, board.White)
	require.NoError(t, err)

	_, _, log, err := mcts.Search(context.Background(), pos, smallOptions(1))
	require.NoError(t, err)
	assert.NotEmpty(t, log.Message)
}

func TestSearchHonorsTimeBudget(t *testing.T) {
	pos := board.NewPosition()
	opt := mcts.Options{
		Iterations: lang.Some(uint(1_000_000)),
		Threads:    lang.Some(uint(2)),
		TimeBudget: lang.Some(50 * time.Millisecond),
	}

	start := time.Now()
	_, _, _, err := mcts.Search(context.Background(), pos, opt)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
