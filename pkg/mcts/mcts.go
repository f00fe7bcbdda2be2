// Package mcts implements the MCTS-Solver: a Monte-Carlo tree search with UCT
// selection, a biased random playout policy and proven-win/loss value
// propagation, aggregated across a fixed worker pool.
package mcts

import (
	"context"
	"math"
	"math/rand"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Tunable constants, embedded rather than runtime-configurable.
const (
	defaultIterations = 50000 // per worker
	defaultThreads    = 2

	uctExploration = 10000.0 // UCTC
	uctPriorWeight = 0.0     // UCTW; nominally disabled
	moveProbability = 0.8    // prior favoring pawn moves over wall moves

	simThreshold           = 5   // visits below which a child gets a single rollout
	simExtendPathBias      = 0.1
	simExtendPathThreshold = 1
	simShortestWalkBias    = 0.5
)

var posInf = math.Inf(1)
var negInf = math.Inf(-1)

// node is one vertex of a worker's private search tree.
type node struct {
	move     board.Move // the move that produced this node; zero at the root
	pos      *board.Position
	children []*node
	value    float64
	visits   uint32
	expanded bool
}

func newNode(move board.Move, pos *board.Position) *node {
	return &node{move: move, pos: pos}
}

// expand generates this node's children on first visit, with path validation
// on (per the Expansion rule, the win-shortcut is deliberately omitted here).
func (n *node) expand() {
	if n.expanded {
		return
	}
	n.expanded = true
	for _, s := range n.pos.Moves(false, true, false) {
		n.children = append(n.children, newNode(s.Move, s.Position))
	}
}

func (n *node) update(v float64) {
	n.visits++
	n.value = (n.value*float64(n.visits-1) + v) / float64(n.visits)
}

// bothOutOfWalls reports the no-walls-remaining early-termination condition
// shared by iterate and simulate.
func bothOutOfWalls(pos *board.Position) bool {
	return pos.WallsRemaining(board.White) == 0 && pos.WallsRemaining(board.Black) == 0
}

// pathRaceWinner resolves a no-walls-remaining position: the player whose
// shortest path to its goal is shorter-or-equal to the other's wins; ties
// favor the player to move.
func pathRaceWinner(pos *board.Position) board.Player {
	mover := pos.Turn()
	opponent := mover.Opponent()
	if len(pos.ShortestPath(mover)) <= len(pos.ShortestPath(opponent)) {
		return mover
	}
	return opponent
}

// pathRaceOutcome is pathRaceWinner expressed as a proven value from pos's
// mover's perspective.
func pathRaceOutcome(pos *board.Position) float64 {
	if pathRaceWinner(pos) == pos.Turn() {
		return posInf
	}
	return negInf
}

// selectChild applies the UCT selection rule: any unvisited child wins
// outright, otherwise the child maximizing the UCT score is chosen.
func selectChild(n *node) *node {
	for _, c := range n.children {
		if c.visits == 0 {
			return c
		}
	}

	best := n.children[0]
	bestScore := uctScore(n, best)
	for _, c := range n.children[1:] {
		score := uctScore(n, c)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func uctScore(n, c *node) float64 {
	prior := 1 - moveProbability
	if c.move.Kind == board.PawnMove {
		prior = moveProbability
	}
	exploit := -c.value
	explore := math.Sqrt(uctExploration * math.Log(float64(n.visits)) / float64(c.visits))
	return exploit + explore + uctPriorWeight*prior/float64(c.visits+1)
}

// iterate runs one MCTS-Solver descent from n, returning the backed-up value
// from n's mover's perspective, and leaves n (and every node walked) updated.
// It checks ctx for cancellation on every recursive descent, the same way
// the alpha-beta search checks contextx.IsCancelled at the top of its own
// recursive search, so a worker's last in-flight iteration cuts its descent
// short instead of running simulate to completion after the time budget.
func iterate(ctx context.Context, n *node, rng *rand.Rand) float64 {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	n.expand()

	if n.pos.CanWin() {
		n.update(posInf)
		return posInf
	}
	if bothOutOfWalls(n.pos) {
		v := pathRaceOutcome(n.pos)
		n.update(v)
		return v
	}
	if len(n.children) == 0 {
		panic("mcts: selection over an empty child set")
	}

	selected := selectChild(n)

	var r float64
	switch {
	case math.IsInf(selected.value, 0):
		r = -selected.value
	case selected.visits < simThreshold:
		winner := simulate(selected.pos, rng)
		if winner == n.pos.Turn() {
			r = 1
		} else {
			r = -1
		}
		selected.update(-r)
	default:
		r = -iterate(ctx, selected, rng)
	}

	if math.IsInf(r, -1) {
		for _, c := range n.children {
			if c.value != posInf {
				r = -1
				break
			}
		}
	}

	n.update(r)
	return r
}
