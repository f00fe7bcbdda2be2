package tqbn_test

import (
	"strings"
	"testing"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/corvid/quoridor/pkg/tqbn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pos := board.NewPosition()

	text := tqbn.Encode(pos)
	assert.Len(t, text, 73)

	decoded, err := tqbn.Decode(text)
	require.NoError(t, err)

	assert.Equal(t, pos.Pawn(board.White), decoded.Pawn(board.White))
	assert.Equal(t, pos.Pawn(board.Black), decoded.Pawn(board.Black))
	assert.Equal(t, pos.WallsRemaining(board.White), decoded.WallsRemaining(board.White))
	assert.Equal(t, pos.WallsRemaining(board.Black), decoded.WallsRemaining(board.Black))
	assert.Equal(t, pos.Turn(), decoded.Turn())
	assert.Equal(t, text, tqbn.Encode(decoded))
}

func TestEncodeDecodeRoundTripWithWalls(t *testing.T) {
	hwalls := board.EmptyWallMask.Set(board.NewSlot(3, 3))
	vwalls := board.EmptyWallMask.Set(board.NewSlot(1, 1))
	pawns := [2]board.Square{board.NewSquare(4, 8), board.NewSquare(4, 0)}
	pos, err := board.NewPositionFromState(pawns, [2]int{9, 9}, hwalls, vwalls, board.Black)
	require.NoError(t, err)

	text := tqbn.Encode(pos)
	decoded, err := tqbn.Decode(text)
	require.NoError(t, err)

	dh, dv := decoded.Walls()
	assert.True(t, dh.IsSet(board.NewSlot(3, 3)))
	assert.True(t, dv.IsSet(board.NewSlot(1, 1)))
	assert.Equal(t, board.Black, decoded.Turn())
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := tqbn.Decode("short")
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidWallCharacter(t *testing.T) {
	text := tqbn.Encode(board.NewPosition())
	bad := "x" + text[1:]
	_, err := tqbn.Decode(bad)
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidTurnDigit(t *testing.T) {
	text := tqbn.Encode(board.NewPosition())
	bad := text[:64] + "9" + text[65:]
	_, err := tqbn.Decode(bad)
	assert.Error(t, err)
}

func TestDecodeRejectsInvalidWallCount(t *testing.T) {
	text := tqbn.Encode(board.NewPosition())
	bad := text[:67] + "99" + text[69:]
	_, err := tqbn.Decode(bad)
	assert.Error(t, err)
}

func TestDecodeRejectsWallAccountingMismatch(t *testing.T) {
	text := tqbn.Encode(board.NewPosition())
	// Keep every wall slot empty but set each wall count to 05, so remaining
	// plus placed walls total 10 instead of 20 and the accounting invariant
	// is violated.
	zeroed := strings.Repeat("n", 64) + text[64:67] + "05" + text[69:71] + "05"
	_, err := tqbn.Decode(zeroed)
	assert.Error(t, err)
}

func TestDecodeIsCaseInsensitive(t *testing.T) {
	text := tqbn.Encode(board.NewPosition())
	upper := strings.ToUpper(text[:64]) + text[64:]
	_, err := tqbn.Decode(upper)
	assert.NoError(t, err)
}
