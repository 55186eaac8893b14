package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

// walledController builds an 8×8 board with a partial wall so runs have both
// a detour and a few dozen steps.
func walledController(t *testing.T) *session.Controller {
	t.Helper()
	c := newController(t, 8)
	require.NoError(t, c.Place(pos(0, 0)))
	require.NoError(t, c.Place(pos(7, 7)))
	for row := 0; row < 6; row++ {
		require.NoError(t, c.Place(pos(row, 4)))
	}
	return c
}

func TestStepSearch_InvalidPlacement(t *testing.T) {
	c := newController(t, 4)
	s, err := c.StepSearch(context.Background())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, session.ErrInvalidPlacement)
}

// TestStepper_MatchesSynchronousFrames checks that every parked snapshot is
// exactly the board an inline OnStep callback would have seen.
func TestStepper_MatchesSynchronousFrames(t *testing.T) {
	c := walledController(t)

	var want []string
	res, err := c.TriggerSearch(context.Background(), func() {
		want = append(want, c.Grid().String())
	})
	require.NoError(t, err)
	require.Equal(t, astar.PathFound, res.Outcome)

	s, err := c.StepSearch(context.Background())
	require.NoError(t, err)
	var got []string
	for !s.Done() {
		got = append(got, c.Grid().String())
		s.Step(1)
	}

	assert.Equal(t, want, got)
	assert.Equal(t, res.Steps, s.Steps())

	stepped, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, res.Expanded, stepped.Expanded)
	assert.Equal(t, res.Path, stepped.Path)
	assert.True(t, c.Stale())
}

func TestStepper_StepMany(t *testing.T) {
	c := walledController(t)
	s, err := c.StepSearch(context.Background())
	require.NoError(t, err)

	assert.False(t, s.Step(3))
	assert.Equal(t, 4, s.Steps())
	assert.True(t, s.Step(1<<20))

	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, astar.PathFound, res.Outcome)
	assert.Equal(t, res.Steps, s.Steps())
}

func TestStepper_ResultBeforeDone(t *testing.T) {
	c := walledController(t)
	s, err := c.StepSearch(context.Background())
	require.NoError(t, err)
	defer s.Close()

	res, err := s.Result()
	assert.Nil(t, res)
	assert.NoError(t, err)
}

func TestStepper_Close(t *testing.T) {
	c := walledController(t)
	s, err := c.StepSearch(context.Background())
	require.NoError(t, err)
	s.Step(2)
	open, closed := c.Grid().Count(grid.Open), c.Grid().Count(grid.Closed)

	s.Close()
	require.True(t, s.Done())
	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, astar.Cancelled, res.Outcome)
	// The parked expansion still closes its cell; nothing is expanded after.
	assert.Equal(t, open, c.Grid().Count(grid.Open))
	assert.Equal(t, closed+1, c.Grid().Count(grid.Closed))
	assert.Equal(t, 0, c.Grid().Count(grid.Path))

	s.Close()
	assert.True(t, s.Done())
}

func TestStepper_ParentCancelled(t *testing.T) {
	c := walledController(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := c.StepSearch(ctx)
	require.NoError(t, err)
	require.True(t, s.Done(), "run returns before its first step")
	res, err := s.Result()
	require.NoError(t, err)
	assert.Equal(t, astar.Cancelled, res.Outcome)
	assert.Equal(t, 0, s.Steps())
}
