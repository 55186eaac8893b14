package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/session"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(discard())
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeMap(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o600))
	return path
}

// ------------------------------------------------------------------------
// Positions and logging
// ------------------------------------------------------------------------

func TestParsePosition(t *testing.T) {
	p, err := parsePosition(" 3, 14 ")
	require.NoError(t, err)
	assert.Equal(t, grid.Position{Row: 3, Col: 14}, p)

	for _, bad := range []string{"", "3", "3;4", "a,1", "1,b", "1,2,3"} {
		_, err := parsePosition(bad)
		assert.ErrorIs(t, err, errBadPosition, "%q", bad)
	}
}

func TestParsePositions(t *testing.T) {
	ps, err := parsePositions([]string{"0,1", "2,3"})
	require.NoError(t, err)
	assert.Equal(t, []grid.Position{{Row: 0, Col: 1}, {Row: 2, Col: 3}}, ps)

	_, err = parsePositions([]string{"0,1", "x"})
	assert.ErrorIs(t, err, errBadPosition)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":         slog.LevelInfo,
		"debug":    slog.LevelDebug,
		" WARN ":   slog.LevelWarn,
		"warning":  slog.LevelWarn,
		"error":    slog.LevelError,
		"nonsense": slog.LevelInfo,
	}
	for raw, want := range cases {
		assert.Equal(t, want, parseLogLevel(raw), "%q", raw)
	}
}

func TestNewLogger_JSON(t *testing.T) {
	env := map[string]string{"PATHVIZ_LOG_FORMAT": "json", "PATHVIZ_LOG_LEVEL": "warn"}
	var buf bytes.Buffer
	logger := newLogger(&buf, func(k string) string { return env[k] })

	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"k":1`)
}

// ------------------------------------------------------------------------
// run command
// ------------------------------------------------------------------------

func TestRun_Flags(t *testing.T) {
	out, err := execute(t, "run", "--size", "3", "--glyphs")
	require.NoError(t, err)
	assert.Contains(t, out, "outcome=path-found")
	assert.Contains(t, out, "length=4 shortest=4")
	assert.NotContains(t, out, "step 1")
}

func TestRun_Frames(t *testing.T) {
	out, err := execute(t, "run", "--size", "2", "--frames")
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(out, "step "), "four expansions and one path cell")
	assert.Contains(t, out, "steps=5")
}

func TestRun_Map(t *testing.T) {
	path := writeMap(t,
		"S.#",
		".##",
		"..E",
	)
	out, err := execute(t, "run", "--map", path, "--glyphs")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "* # # ", lines[1])
	assert.Equal(t, "* * E ", lines[2])
	assert.Contains(t, lines[3], "length=4 shortest=4")
}

func TestRun_NoPath(t *testing.T) {
	out, err := execute(t, "run", "--size", "3", "--glyphs",
		"--barrier", "1,0", "--barrier", "1,1", "--barrier", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "outcome=no-path")
	assert.NotContains(t, out, "length=")
	assert.NotContains(t, out, "shortest=")
}

func TestRun_DuplicateBarrierCountsOnce(t *testing.T) {
	out, err := execute(t, "run", "--size", "3", "--glyphs",
		"--barrier", "1,1", "--barrier", "1,1")
	require.NoError(t, err)
	assert.Contains(t, out, "# ", "a repeated barrier is not toggled back off")
}

func TestRun_Errors(t *testing.T) {
	_, err := execute(t, "run", "--start", "oops")
	assert.ErrorIs(t, err, errBadPosition)

	_, err = execute(t, "run", "--size", "4", "--barrier", "0,0")
	assert.ErrorIs(t, err, errOverlap)

	_, err = execute(t, "run", "--size", "4", "--start", "3,3")
	assert.ErrorIs(t, err, errOverlap, "default end is the same corner")

	_, err = execute(t, "run", "--size", "1", "--end", "0,1")
	assert.ErrorIs(t, err, grid.ErrBadDimension)

	_, err = execute(t, "run", "--size", "4", "--end", "9,9")
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = execute(t, "run", "--map", writeMap(t, "S.", ".."))
	assert.ErrorIs(t, err, session.ErrInvalidPlacement)

	_, err = execute(t, "run", "--map", writeMap(t, "S.", ".E"), "--size", "2")
	assert.Error(t, err, "map excludes board flags")

	_, err = execute(t, "run", "--map", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := runScripted(ctx, &out, discard(), runOptions{size: 5, start: "0,0"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "outcome=cancelled")
}

// ------------------------------------------------------------------------
// window command
// ------------------------------------------------------------------------

func TestRunWindow_RejectsBadOptions(t *testing.T) {
	err := runWindow(context.Background(), discard(), windowOptions{size: 10, width: 0, speed: 1})
	assert.Error(t, err)

	err = runWindow(context.Background(), discard(), windowOptions{size: 1, width: 700, speed: 1})
	assert.ErrorIs(t, err, grid.ErrBadDimension)
}

func TestEditor_LayoutFollowsResize(t *testing.T) {
	ctrl, err := session.New(50)
	require.NoError(t, err)
	g := &editor{ctx: context.Background(), ctrl: ctrl, log: discard(), width: 700, speed: 1}

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 700, w)
	assert.Equal(t, 700, h)
	assert.Equal(t, 14, g.layout().Gap())

	require.True(t, ctrl.ResizeUp())
	assert.Equal(t, 10, g.layout().Gap())
}
