package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// scripted replays fixed draws as mine coordinates.
type scripted struct {
	draws []uint32
}

func (s *scripted) NextBounded(bound uint32) uint32 {
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v % bound
}

func newTestSession(t *testing.T, width, height, mineCount int, draws ...uint32) (*session, *bytes.Buffer) {
	t.Helper()
	board, err := mines.New(width, height, mineCount, &scripted{draws: draws})
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	var out bytes.Buffer
	return newSession(board, &out, log, false), &out
}

func TestParseXY(t *testing.T) {
	testCases := []struct {
		input []string
		x, y  int
		fails bool
	}{
		{[]string{"1", "2"}, 1, 2, false},
		{[]string{"0", "-3"}, 0, -3, false},
		{[]string{"a", "2"}, 0, 0, true},
		{[]string{"1", "b"}, 0, 0, true},
	}
	for _, test := range testCases {
		x, y, err := parseXY(test.input)
		if test.fails {
			if err == nil {
				t.Errorf("parseXY(%v) should fail", test.input)
			}
			continue
		}
		if err != nil || x != test.x || y != test.y {
			t.Errorf("parseXY(%v): have %d %d %v, want %d %d",
				test.input, x, y, err, test.x, test.y)
		}
	}
}

func TestParseNewGameParams(t *testing.T) {
	current := newGameParams{Width: 9, Height: 9, MineCount: 10}

	tests := []struct {
		name  string
		args  []string
		want  newGameParams
		fails bool
	}{
		{name: "empty", args: nil, want: current},
		{
			name: "all",
			args: []string{"width=30", "height=16", "mine_count=99"},
			want: newGameParams{Width: 30, Height: 16, MineCount: 99},
		},
		{
			name: "partial",
			args: []string{"mine_count=35"},
			want: newGameParams{Width: 9, Height: 9, MineCount: 35},
		},
		{name: "not a pair", args: []string{"width"}, fails: true},
		{name: "not a number", args: []string{"width=wide"}, fails: true},
		{name: "unknown key", args: []string{"depth=3"}, fails: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			params, err := parseNewGameParams(test.args, current)
			if test.fails {
				assert.Error(t, err)
				assert.Equal(t, current, params)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, params)
		})
	}
}

func TestExecuteErrors(t *testing.T) {
	s, _ := newTestSession(t, 3, 1, 1, 0, 0)

	testCases := []struct {
		command string
		message string
	}{
		{"x", "unknown command"},
		{"o 1", "invalid number of arguments"},
		{"g 1", "invalid number of arguments"},
		{"o a 0", "first argument must be an int"},
		{"f 3 0", "invalid square coordinates"},
		{"c 0 -1", "invalid square coordinates"},
		{"n width=0", "invalid board size"},
	}
	for _, test := range testCases {
		err := s.execute(test.command)
		if assert.Error(t, err, test.command) {
			assert.Contains(t, err.Error(), test.message, test.command)
		}
	}
	assert.False(t, s.board.MinesPlaced())
	assert.Equal(t, 3, s.board.Width())
}

func TestExecuteGame(t *testing.T) {
	// mines at 0:0 and 2:0
	s, out := newTestSession(t, 3, 1, 2, 0, 0, 2, 0)

	require.NoError(t, s.execute("f 0 0"))
	assert.Contains(t, out.String(), "F - -\nremaining: 1  flags: 1/2\n")

	out.Reset()
	require.NoError(t, s.execute("o 1 0"))
	assert.Equal(t, "F 2 *\nremaining: 0  flags: 1/2  won!\n", out.String())

	assert.Error(t, s.execute("f 1 0"))

	id := s.id
	out.Reset()
	require.NoError(t, s.execute("n width=2 height=2 mine_count=1"))
	assert.NotEqual(t, id, s.id)
	assert.Equal(t, "- -\n- -\nremaining: 3  flags: 0/1\n", out.String())
}

func TestExecuteForfeit(t *testing.T) {
	s, out := newTestSession(t, 2, 1, 1, 1, 0)

	require.NoError(t, s.execute("r"))
	assert.True(t, s.board.Lost())
	assert.Equal(t, "1 *\nremaining: 1  flags: 0/1  lost\n", out.String())
}

func TestExecuteChord(t *testing.T) {
	// mine at 0:0 on a 3x1 row
	s, _ := newTestSession(t, 3, 1, 1, 0, 0)

	require.NoError(t, s.execute("o 1 0"))
	require.False(t, s.board.Ended())
	require.NoError(t, s.execute("f 0 0"))
	require.NoError(t, s.execute("c 1 0"))
	assert.True(t, s.board.Won())
}

func TestRun(t *testing.T) {
	s, out := newTestSession(t, 2, 1, 1, 1, 0)

	lines := make(chan string, 3)
	lines <- "h"
	lines <- "bogus"
	lines <- "o 0 0"
	close(lines)

	err := s.Run(context.Background(), lines)
	assert.ErrorIs(t, err, errQuit)
	assert.Contains(t, out.String(), "commands:")
	assert.Contains(t, out.String(), "error: unknown command\n")
	assert.Contains(t, out.String(), "won!")
}

func TestRunQuit(t *testing.T) {
	s, _ := newTestSession(t, 2, 2, 1)

	lines := make(chan string, 2)
	lines <- "q"
	lines <- "o 0 0"

	assert.ErrorIs(t, s.Run(context.Background(), lines), errQuit)
	assert.False(t, s.board.MinesPlaced())
}

func TestRunCancelled(t *testing.T) {
	s, _ := newTestSession(t, 2, 2, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, make(chan string))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadLines(t *testing.T) {
	lines := make(chan string, 4)
	err := readLines(context.Background(), strings.NewReader("o 1 1\nf 0 0\n\ng"), lines)
	require.NoError(t, err)

	var have []string
	for line := range lines {
		have = append(have, line)
	}
	assert.Equal(t, []string{"o 1 1", "f 0 0", "", "g"}, have)
}

func TestServeStopsOnIdleInput(t *testing.T) {
	s, _ := newTestSession(t, 2, 2, 1)

	// nothing is ever written, so the reader stays blocked
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, s, pr)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after cancellation")
	}
}

func TestServeQuitsAtEOF(t *testing.T) {
	s, out := newTestSession(t, 2, 1, 1, 1, 0)

	err := serve(context.Background(), s, strings.NewReader("o 0 0\n"))
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "won!")

	s, _ = newTestSession(t, 2, 2, 1)
	err = serve(context.Background(), s, strings.NewReader("q\no 0 0\n"))
	assert.NoError(t, err)
	assert.False(t, s.board.MinesPlaced())
}
