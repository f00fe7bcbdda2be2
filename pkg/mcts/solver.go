package mcts

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Options hold the dynamic, per-search knobs. The tree-shape constants
// (UCTC, SIM_THRESHOLD and friends) are embedded, not configurable; only the
// work budget and RNG seeding vary between searches.
type Options struct {
	// Iterations caps the number of iterations run by each worker. Unset
	// means the embedded default (50000).
	Iterations lang.Optional[uint]
	// Threads sets the worker pool size. Unset means the embedded default (2).
	Threads lang.Optional[uint]
	// TimeBudget, if set, additionally bounds every worker's wall-clock
	// time, polled at iteration boundaries (cooperative, no preemption).
	TimeBudget lang.Optional[time.Duration]
	// Seed, if set, makes the search reproducible: worker w seeds its RNG
	// with Seed+w. Unset means each worker seeds from OS entropy
	// (crypto/rand), falling back to the wall clock if that read fails.
	Seed lang.Optional[int64]
}

func (o Options) iterations() int {
	if v, ok := o.Iterations.V(); ok {
		return int(v)
	}
	return defaultIterations
}

func (o Options) threads() int {
	if v, ok := o.Threads.V(); ok {
		return int(v)
	}
	return defaultThreads
}

// workerResult is what one worker reports back to the coordinator: its
// root's per-child (value, visits), in the same order as board.Moves
// produced them, plus how many iterations it completed.
type workerResult struct {
	values     []float64
	visits     []uint32
	iterations int
}

// Search runs the MCTS-Solver from pos and returns the chosen move, the
// resulting position, and a diagnostic Log. THREADS workers each build an
// independent tree from a shared starting position; the coordinator expands
// its own fresh root once and aggregates every worker's per-child (value,
// visits) into it by summing, then picks the child with the minimum value
// (best for the opponent, hence best for the mover, since values are from
// the child-mover's perspective).
func Search(ctx context.Context, pos *board.Position, opt Options) (board.Move, *board.Position, Log, error) {
	if len(pos.Moves(false, true, false)) == 0 {
		return board.Move{}, pos, Log{Message: "no legal move"}, nil
	}

	threads := opt.threads()
	iterations := opt.iterations()

	if d, ok := opt.TimeBudget.V(); ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	start := time.Now()
	resultsCh := make(chan workerResult, threads)
	baseSeed, seeded := opt.Seed.V()

	for w := 0; w < threads; w++ {
		var seed int64
		if seeded {
			seed = baseSeed + int64(w)
		} else {
			var b [8]byte
			if _, err := crand.Read(b[:]); err == nil {
				seed = int64(binary.LittleEndian.Uint64(b[:]))
			} else {
				seed = time.Now().UnixNano() + int64(w)
			}
		}
		go runWorker(ctx, pos, iterations, rand.New(rand.NewSource(seed)), resultsCh)
	}

	root := newNode(board.Move{}, pos)
	root.expand()

	totalIterations := 0
	perThread := make([]int, 0, threads)
	for i := 0; i < threads; i++ {
		res := <-resultsCh
		totalIterations += res.iterations
		perThread = append(perThread, res.iterations)
		for idx := range res.values {
			if idx >= len(root.children) {
				continue
			}
			root.children[idx].value += res.values[idx]
			root.children[idx].visits += res.visits[idx]
		}
	}

	best := bestChild(pos, root.children)
	log := newLog(totalIterations, perThread, time.Since(start), root.children, best, threads)

	logw.Debugf(ctx, "mcts search on %v: %v", pos, log)

	return best.move, best.pos, log, nil
}

func runWorker(ctx context.Context, pos *board.Position, iterations int, rng *rand.Rand, out chan<- workerResult) {
	root := newNode(board.Move{}, pos)

	done := 0
	for done < iterations && !contextx.IsCancelled(ctx) {
		iterate(ctx, root, rng)
		done++
	}

	res := workerResult{iterations: done}
	for _, c := range root.children {
		res.values = append(res.values, c.value)
		res.visits = append(res.visits, c.visits)
	}
	out <- res
}

// rootChild is a root child's aggregated stats paired with the move that
// produced it, for selection and logging.
type rootChild struct {
	move              board.Move
	pos               *board.Position
	value             float64
	visits            uint32
	walksShortestPath bool
}

func bestChild(root *board.Position, children []*node) rootChild {
	mover := root.Turn()
	path := root.ShortestPath(mover)
	var firstStep board.Square
	hasFirstStep := len(path) > 0
	if hasFirstStep {
		firstStep = path[0]
	}
	walksFirstStep := func(c *node) bool {
		return hasFirstStep && c.move.Kind == board.PawnMove && c.move.Pawn == firstStep
	}

	best := children[0]
	for _, c := range children[1:] {
		switch {
		case c.value < best.value:
			best = c
		case c.value == best.value && walksFirstStep(c) && !walksFirstStep(best):
			best = c
		}
	}
	return rootChild{
		move:              best.move,
		pos:               best.pos,
		value:             best.value,
		visits:            best.visits,
		walksShortestPath: walksFirstStep(best),
	}
}

// Log is a snapshot of search diagnostics: iteration counts, the chosen
// child's value and visit share, and whether the move walks the mover's own
// shortest path.
type Log struct {
	Message string // set instead of the fields below when no search ran

	Iterations          int
	IterationsPerThread []int
	IterationsPerSecond float64
	Moves               int
	Value               float64
	Visits              uint32
	Focus               float64
	VisitPercent        float64
	WalksShortestPath   bool
}

func newLog(iterations int, perThread []int, elapsed time.Duration, children []*node, best rootChild, threads int) Log {
	l := Log{
		Iterations:          iterations,
		IterationsPerThread: perThread,
		Moves:               len(children),
		Value:               -best.value / float64(threads),
		Visits:              best.visits,
		WalksShortestPath:   best.walksShortestPath,
	}
	if elapsed > 0 {
		l.IterationsPerSecond = float64(iterations) / elapsed.Seconds()
	}
	if len(children) > 0 {
		l.Focus = float64(best.visits) / (float64(iterations) / float64(len(children)))
	}
	if iterations > 0 {
		l.VisitPercent = 100 * float64(best.visits) / float64(iterations)
	}
	return l
}

func (l Log) String() string {
	if l.Message != "" {
		return l.Message
	}

	var sb strings.Builder
	sb.WriteString("mcts-solver search\n")
	fmt.Fprintf(&sb, "iterations:\t%v\n", l.Iterations)
	sb.WriteString("iters/thr:\t")
	for _, n := range l.IterationsPerThread {
		fmt.Fprintf(&sb, "%v ", n)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "iter/s:\t\t%.3f\n", l.IterationsPerSecond)
	fmt.Fprintf(&sb, "moves:\t\t%v\n\n", l.Moves)
	if l.WalksShortestPath {
		sb.WriteString("walking shortest path\n")
	}
	fmt.Fprintf(&sb, "value:\t\t%.3f\n", l.Value)
	fmt.Fprintf(&sb, "visits:\t\t%v\n", l.Visits)
	fmt.Fprintf(&sb, "focus:\t\t%.3f\n", l.Focus)
	fmt.Fprintf(&sb, "visit %%:\t%.3f%%\n", l.VisitPercent)
	return sb.String()
}
