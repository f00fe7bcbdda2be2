package engine_test

import (
	"context"
	"testing"

	"github.com/corvid/quoridor/pkg/board"
	"github.com/corvid/quoridor/pkg/engine"
	"github.com/corvid/quoridor/pkg/tqbn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCore() *engine.Core {
	return engine.New(context.Background(), "quoridor",
		engine.WithIterations(200),
		engine.WithThreads(1),
		engine.WithSeed(1))
}

func TestNameIncludesEngineName(t *testing.T) {
	c := newTestCore()
	assert.Contains(t, c.Name(), "quoridor")
}

func TestParseBoardRoundTripsAndRenderBoardRenders(t *testing.T) {
	c := newTestCore()
	text := tqbn.Encode(board.NewPosition())
	pos, err := c.ParseBoard(context.Background(), text)
	require.NoError(t, err)
	assert.Equal(t, text, tqbn.Encode(pos))

	rendered := c.RenderBoard(pos)
	assert.NotEmpty(t, rendered)
}

func TestParseBoardRejectsInvalidText(t *testing.T) {
	c := newTestCore()
	_, err := c.ParseBoard(context.Background(), "not a board")
	assert.Error(t, err)
}

func TestChooseMoveReturnsALegalEncodedMove(t *testing.T) {
	c := newTestCore()
	pos, err := c.ParseBoard(context.Background(), tqbn.Encode(board.NewPosition()))
	require.NoError(t, err)

	move, next, log, err := c.ChooseMove(context.Background(), pos)
	require.NoError(t, err)

	assert.NotEmpty(t, move)
	assert.NotNil(t, next)
	assert.NotEmpty(t, log)
}
