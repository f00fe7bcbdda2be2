// Package tqbn contains utilities for reading and writing positions in the
// TQBN textual board encoding: a 73-character, case-insensitive ASCII
// string.
//
// Layout (the final layout per the source material; an earlier layout
// placed the turn digit at the end instead -- not supported here):
//
//	[0,64)  64 wall slots, one of 'h' (horizontal), 'v' (vertical), 'n' (none)
//	[64]    turn digit: '1' = White to move, '2' = Black
//	[65,67) White pawn coordinate: column 'a'-'i', row '1'-'9'
//	[67,69) White wall count, 2 digits
//	[69,71) Black pawn coordinate
//	[71,73) Black wall count, 2 digits
package tqbn

import (
	"fmt"
	"strconv"

	"github.com/corvid/quoridor/pkg/board"
)

const length = 73

// Decode parses a TQBN string into a position. It fails if the length is
// not exactly 73 or if any character falls outside the recognized alphabet;
// it does not validate path-existence -- that is checked on first call to
// the move generator with validatePaths set.
func Decode(text string) (*board.Position, error) {
	runes := []rune(text)
	if len(runes) != length {
		return nil, fmt.Errorf("invalid TQBN length: got %v, want %v", len(runes), length)
	}

	var hwalls, vwalls board.WallMask
	for slot := 0; slot < board.NumSlots; slot++ {
		switch runes[slot] {
		case 'n', 'N':
			// no wall
		case 'h', 'H':
			hwalls = hwalls.Set(slot)
		case 'v', 'V':
			vwalls = vwalls.Set(slot)
		default:
			return nil, fmt.Errorf("invalid wall character %q at slot %v", runes[slot], slot)
		}
	}

	var turn board.Player
	switch runes[64] {
	case '1':
		turn = board.White
	case '2':
		turn = board.Black
	default:
		return nil, fmt.Errorf("invalid turn digit %q", runes[64])
	}

	whiteSq, err := board.ParseSquare(runes[65], runes[66])
	if err != nil {
		return nil, fmt.Errorf("invalid White pawn coordinate: %v", err)
	}
	whiteWalls, err := parseWallCount(string(runes[67:69]))
	if err != nil {
		return nil, fmt.Errorf("invalid White wall count: %v", err)
	}

	blackSq, err := board.ParseSquare(runes[69], runes[70])
	if err != nil {
		return nil, fmt.Errorf("invalid Black pawn coordinate: %v", err)
	}
	blackWalls, err := parseWallCount(string(runes[71:73]))
	if err != nil {
		return nil, fmt.Errorf("invalid Black wall count: %v", err)
	}

	pawns := [2]board.Square{whiteSq, blackSq}
	wallsRemaining := [2]int{whiteWalls, blackWalls}

	pos, err := board.NewPositionFromState(pawns, wallsRemaining, hwalls, vwalls, turn)
	if err != nil {
		return nil, fmt.Errorf("impossible position: %v", err)
	}
	return pos, nil
}

func parseWallCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("non-numeric wall count %q", s)
	}
	if n < 0 || n > 10 {
		return 0, fmt.Errorf("wall count %v out of range", n)
	}
	return n, nil
}

// Encode renders a position into its 73-character TQBN string.
func Encode(pos *board.Position) string {
	buf := make([]byte, 0, length)

	hwalls, vwalls := pos.Walls()
	for slot := 0; slot < board.NumSlots; slot++ {
		switch {
		case hwalls.IsSet(slot):
			buf = append(buf, 'h')
		case vwalls.IsSet(slot):
			buf = append(buf, 'v')
		default:
			buf = append(buf, 'n')
		}
	}

	if pos.Turn() == board.White {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '2')
	}

	buf = append(buf, []byte(pos.Pawn(board.White).String())...)
	buf = append(buf, []byte(fmt.Sprintf("%02d", pos.WallsRemaining(board.White)))...)
	buf = append(buf, []byte(pos.Pawn(board.Black).String())...)
	buf = append(buf, []byte(fmt.Sprintf("%02d", pos.WallsRemaining(board.Black)))...)

	return string(buf)
}
