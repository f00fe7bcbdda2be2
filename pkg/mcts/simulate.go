package mcts

import (
	"math/rand"

	"github.com/corvid/quoridor/pkg/board"
)

// simulate plays random moves from pos until a terminal condition and
// returns the winner, per the playout policy: an early-termination shortcut
// once both players are out of walls, a wall-extending bias, a
// shortest-path-walking bias, and otherwise a random legal move that keeps
// both players' paths alive when one is available.
func simulate(pos *board.Position, rng *rand.Rand) board.Player {
	for {
		if pos.CanWin() {
			return pos.Turn()
		}
		if bothOutOfWalls(pos) {
			return pathRaceWinner(pos)
		}

		mover := pos.Turn()

		if rng.Float64() < simExtendPathBias && pos.WallsRemaining(mover) > 0 {
			if next, ok := extendOpponentPath(pos); ok {
				pos = next
				continue
			}
		}

		if rng.Float64() < simShortestWalkBias {
			if next, ok := walkShortestPathStep(pos); ok {
				pos = next
				continue
			}
		}

		pos = randomLegalMove(pos, rng)
	}
}

// extendOpponentPath scans legal wall placements (in generation order) for
// one that lengthens the opponent's shortest path by more than
// simExtendPathThreshold, and plays the first match.
func extendOpponentPath(pos *board.Position) (*board.Position, bool) {
	opponent := pos.Turn().Opponent()
	before := len(pos.ShortestPath(opponent))

	for _, s := range pos.Moves(false, true, false) {
		if s.Move.Kind != board.WallMove {
			continue
		}
		if after := len(s.Position.ShortestPath(opponent)); after > before+simExtendPathThreshold {
			return s.Position, true
		}
	}
	return nil, false
}

// walkShortestPathStep plays the pawn move matching the mover's own
// shortest-path first step, if one is legal.
func walkShortestPathStep(pos *board.Position) (*board.Position, bool) {
	path := pos.ShortestPath(pos.Turn())
	if len(path) == 0 {
		return nil, false
	}
	first := path[0]

	for _, s := range pos.Moves(true, false, false) {
		if s.Move.Kind == board.PawnMove && s.Move.Pawn == first {
			return s.Position, true
		}
	}
	return nil, false
}

// randomLegalMove draws without replacement from all legal successors until
// one that keeps both players' paths alive is found; if none do, it falls
// back to the first draw.
func randomLegalMove(pos *board.Position, rng *rand.Rand) *board.Position {
	moves := pos.Moves(false, false, true)
	if len(moves) == 0 {
		panic("mcts: no legal moves during a playout")
	}

	var fallback *board.Position
	for _, idx := range rng.Perm(len(moves)) {
		cand := moves[idx].Position
		if fallback == nil {
			fallback = cand
		}
		if cand.PathsExist() {
			return cand
		}
	}
	return fallback
}
