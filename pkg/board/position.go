package board

import (
	"fmt"
	"strings"
)

const startingWalls = 10

// Position is an immutable-by-copy Quoridor position: the two pawns, the two
// walls-remaining counts, the horizontal/vertical wall masks and the player
// to move. It is never mutated after construction except for lazily filling
// its own shortest-path cache.
type Position struct {
	pawns          [2]Square
	wallsRemaining [2]int
	hwalls, vwalls WallMask
	turn           Player

	// pathCache[p] holds a memoized shortest_path(p), if computed. It is
	// cleared whenever a wall is placed.
	pathCache [2][]Square
	pathKnown [2]bool
}

// NewPosition constructs the starting position: White on e9, Black on e1,
// both with 10 walls remaining, White to move.
func NewPosition() *Position {
	return &Position{
		pawns:          [2]Square{NewSquare(4, 8), NewSquare(4, 0)},
		wallsRemaining: [2]int{startingWalls, startingWalls},
		turn:           White,
	}
}

// NewPositionFromState builds a position from explicit field values, as used
// by the TQBN decoder and by tests. It does not validate path-existence;
// that is the move generator's job on first use.
func NewPositionFromState(pawns [2]Square, wallsRemaining [2]int, hwalls, vwalls WallMask, turn Player) (*Position, error) {
	if pawns[White] == pawns[Black] {
		return nil, fmt.Errorf("pawns overlap on %v", pawns[White])
	}
	if hwalls&vwalls != 0 {
		return nil, fmt.Errorf("horizontal and vertical wall masks overlap")
	}
	total := wallsRemaining[White] + wallsRemaining[Black] + hwalls.PopCount() + vwalls.PopCount()
	if total != 2*startingWalls {
		return nil, fmt.Errorf("wall accounting invariant violated: got %v, want %v", total, 2*startingWalls)
	}
	return &Position{
		pawns:          pawns,
		wallsRemaining: wallsRemaining,
		hwalls:         hwalls,
		vwalls:         vwalls,
		turn:           turn,
	}, nil
}

// Turn returns the player to move.
func (p *Position) Turn() Player {
	return p.turn
}

// Pawn returns the square of the given player's pawn.
func (p *Position) Pawn(player Player) Square {
	return p.pawns[player]
}

// WallsRemaining returns the given player's remaining wall count.
func (p *Position) WallsRemaining(player Player) int {
	return p.wallsRemaining[player]
}

// Walls returns the horizontal and vertical wall masks.
func (p *Position) Walls() (WallMask, WallMask) {
	return p.hwalls, p.vwalls
}

// Winner returns the winning player and true, or ZeroPlayer and false if
// neither pawn has reached its goal row.
func (p *Position) Winner() (Player, bool) {
	if p.pawns[White].IsWhiteGoal() {
		return White, true
	}
	if p.pawns[Black].IsBlackGoal() {
		return Black, true
	}
	return ZeroPlayer, false
}

// IsOpen returns true iff moving from sq in dir stays on the board and no
// wall blocks that edge. A horizontal wall at slot (sr,sc) blocks the
// N/S edge between row sr and sr+1 for columns sc and sc+1; a vertical
// wall at slot (sr,sc) blocks the E/W edge between column sc and sc+1 for
// rows sr and sr+1.
func (p *Position) IsOpen(sq Square, dir Direction) bool {
	if !onBoardStep(sq, dir) {
		return false
	}
	row, col := sq.Row(), sq.Col()

	switch dir {
	case N:
		if col > 0 && p.hwalls.IsSet(NewSlot(row-1, col-1)) {
			return false
		}
		if col < 8 && p.hwalls.IsSet(NewSlot(row-1, col)) {
			return false
		}
		return true
	case S:
		if col > 0 && p.hwalls.IsSet(NewSlot(row, col-1)) {
			return false
		}
		if col < 8 && p.hwalls.IsSet(NewSlot(row, col)) {
			return false
		}
		return true
	case E:
		if row > 0 && p.vwalls.IsSet(NewSlot(row-1, col)) {
			return false
		}
		if row < 8 && p.vwalls.IsSet(NewSlot(row, col)) {
			return false
		}
		return true
	case W:
		if row > 0 && p.vwalls.IsSet(NewSlot(row-1, col-1)) {
			return false
		}
		if row < 8 && p.vwalls.IsSet(NewSlot(row, col-1)) {
			return false
		}
		return true
	default:
		return false
	}
}

// onBoardStep returns true iff a single step from sq in dir stays on the grid.
func onBoardStep(sq Square, dir Direction) bool {
	switch dir {
	case N:
		return sq.Row() > 0
	case S:
		return sq.Row() < 8
	case E:
		return sq.Col() < 8
	case W:
		return sq.Col() > 0
	default:
		return false
	}
}

// cachedPath returns the memoized shortest path for player, if present.
func (p *Position) cachedPath(player Player) ([]Square, bool) {
	return p.pathCache[player], p.pathKnown[player]
}

// fillCache lazily memoizes a computed shortest path in place. Positions are
// otherwise immutable by copy; this is the sole documented exception.
func (p *Position) fillCache(player Player, path []Square) {
	p.pathCache[player] = path
	p.pathKnown[player] = true
}

func (p *Position) String() string {
	var sb strings.Builder
	for row := 8; row >= 0; row-- {
		for col := 0; col < 9; col++ {
			sq := NewSquare(col, row)
			switch sq {
			case p.pawns[White]:
				sb.WriteRune('W')
			case p.pawns[Black]:
				sb.WriteRune('B')
			default:
				sb.WriteRune('.')
			}
		}
		if row > 0 {
			sb.WriteRune('/')
		}
	}
	return fmt.Sprintf("%v turn=%v walls=%v/%v", sb.String(), p.turn, p.wallsRemaining[White], p.wallsRemaining[Black])
}
