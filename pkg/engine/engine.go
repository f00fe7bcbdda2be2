// Package engine is the in-memory core facade: parse a textual board,
// choose a move with the MCTS solver, and render a board back to text. It
// carries no HTTP server, CLI parser or interactive I/O -- those are
// adapters layered on top, out of scope here.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/corvid/quoridor/pkg/mcts"
	"github.com/corvid/quoridor/pkg/tqbn"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Core encapsulates move-selection: a stateless request/response facade
// over the MCTS solver, with no mutable board or move history carried
// between calls -- ChooseMove is a total function of its input Position.
type Core struct {
	name string
	opt  mcts.Options
}

// Option is a Core creation option.
type Option func(*Core)

// WithIterations caps the number of MCTS iterations run by each worker.
func WithIterations(n uint) Option {
	return func(c *Core) {
		c.opt.Iterations = lang.Some(n)
	}
}

// WithThreads sets the MCTS worker pool size.
func WithThreads(n uint) Option {
	return func(c *Core) {
		c.opt.Threads = lang.Some(n)
	}
}

// WithTimeBudget bounds each MCTS worker's wall-clock time.
func WithTimeBudget(d time.Duration) Option {
	return func(c *Core) {
		c.opt.TimeBudget = lang.Some(d)
	}
}

// WithSeed makes the search reproducible: worker w seeds its RNG with
// seed+w, instead of the default OS-entropy seeding.
func WithSeed(seed int64) Option {
	return func(c *Core) {
		c.opt.Seed = lang.Some(seed)
	}
}

// New constructs a Core.
func New(ctx context.Context, name string, opts ...Option) *Core {
	c := &Core{name: name}
	for _, fn := range opts {
		fn(c)
	}

	logw.Infof(ctx, "Initialized engine: %v", c.Name())
	return c
}

// Name returns the engine name and stamped version.
func (c *Core) Name() string {
	return fmt.Sprintf("%v %v", c.name, version)
}

// ParseBoard decodes a TQBN string into a Position.
func (c *Core) ParseBoard(ctx context.Context, text string) (*board.Position, error) {
	pos, err := tqbn.Decode(text)
	if err != nil {
		logw.Errorf(ctx, "ParseBoard %v: %v", text, err)
		return nil, fmt.Errorf("parse board: %v", err)
	}

	logw.Infof(ctx, "ParseBoard %v: %v", text, pos)
	return pos, nil
}

// ChooseMove runs the MCTS solver from pos and returns the chosen move's
// textual encoding, the resulting Position, and a diagnostic log. It is a
// total function: it always returns a move unless pos has none to offer, in
// which case the move text is empty, pos is returned unchanged and the log
// says so.
func (c *Core) ChooseMove(ctx context.Context, pos *board.Position) (string, *board.Position, string, error) {
	logw.Infof(ctx, "ChooseMove %v", pos)

	move, next, log, err := mcts.Search(ctx, pos, c.opt)
	if err != nil {
		logw.Errorf(ctx, "ChooseMove %v: %v", pos, err)
		return "", nil, "", fmt.Errorf("choose move: %v", err)
	}
	if log.Message != "" {
		logw.Infof(ctx, "ChooseMove %v: %v", pos, log.Message)
		return "", next, log.String(), nil
	}

	logw.Infof(ctx, "ChooseMove %v: %v\n%v", pos, move, log)
	return move.String(), next, log.String(), nil
}

// RenderBoard renders pos as a human-readable grid.
func (c *Core) RenderBoard(pos *board.Position) string {
	return pos.String()
}
