// qperft is a move generator debugging tool, analogous to a chess perft:
// it counts legal successor positions reachable at a given depth from a
// starting board. It is diagnostic tooling for move-generator correctness,
// not the move-selection adapter -- it never invokes the MCTS solver and
// never prints a chosen move.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/corvid/quoridor/pkg/tqbn"
	"github.com/seekerror/logw"
)

var (
	text     = flag.String("board", "", "TQBN board string (default to the starting position)")
	depth    = flag.Int("depth", 3, "Search depth")
	validate = flag.Bool("validate", true, "Discard wall placements that strand a path")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	pos, err := startingPosition(*text)
	if err != nil {
		logw.Exitf(ctx, "Invalid board %q: %v", *text, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(pos, i)
		duration := time.Since(start)

		println(fmt.Sprintf("qperft,%v,%v,%v", i, nodes, duration.Microseconds()))
	}
}

func startingPosition(text string) (*board.Position, error) {
	if text == "" {
		return board.NewPosition(), nil
	}
	return tqbn.Decode(text)
}

func search(pos *board.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, s := range pos.Moves(false, *validate, false) {
		nodes += search(s.Position, depth-1)
	}
	return nodes
}
