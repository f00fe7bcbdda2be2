package board

import "fmt"

// Kind distinguishes a pawn move from a wall placement.
type Kind uint8

const (
	PawnMove Kind = iota
	WallMove
)

// Orientation distinguishes a horizontal from a vertical wall.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "v"
	}
	return "h"
}

// Move represents a single legal Quoridor move: either a pawn step/jump to a
// destination square, or a wall placed at a slot with an orientation.
type Move struct {
	Kind        Kind
	Pawn        Square      // destination square, if Kind == PawnMove
	Slot        int         // wall slot 0..63, if Kind == WallMove
	Orientation Orientation // if Kind == WallMove
}

// ParseMove parses a move in the textual encoding of §6: a pawn move is the
// two-character destination square; a wall move is the two-character
// NW-adjacent square of the wall followed by 'h' or 'v'.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	switch len(runes) {
	case 2:
		sq, err := ParseSquare(runes[0], runes[1])
		if err != nil {
			return Move{}, fmt.Errorf("invalid pawn move %q: %v", str, err)
		}
		return Move{Kind: PawnMove, Pawn: sq}, nil
	case 3:
		sq, err := ParseSquare(runes[0], runes[1])
		if err != nil {
			return Move{}, fmt.Errorf("invalid wall move %q: %v", str, err)
		}
		if sq.Row() >= SlotsPerRow || sq.Col() >= SlotsPerRow {
			return Move{}, fmt.Errorf("invalid wall move %q: square not NW-adjacent to a slot", str)
		}
		var o Orientation
		switch runes[2] {
		case 'h', 'H':
			o = Horizontal
		case 'v', 'V':
			o = Vertical
		default:
			return Move{}, fmt.Errorf("invalid wall move %q: orientation must be h or v", str)
		}
		return Move{Kind: WallMove, Slot: NewSlot(sq.Row(), sq.Col()), Orientation: o}, nil
	default:
		return Move{}, fmt.Errorf("invalid move %q", str)
	}
}

func (m Move) String() string {
	if m.Kind == PawnMove {
		return m.Pawn.String()
	}
	sq := Square(m.Slot + m.Slot/SlotsPerRow)
	return fmt.Sprintf("%v%v", sq, m.Orientation)
}
