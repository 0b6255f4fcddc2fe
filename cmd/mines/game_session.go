package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-board/internal/mines"
)

// session drives one board from text commands. A new game gets a new id.
type session struct {
	id        string
	board     *mines.Board
	out       io.Writer
	log       *logrus.Logger
	prompt    bool
	startedAt time.Time
}

func newSession(board *mines.Board, out io.Writer, log *logrus.Logger, prompt bool) *session {
	s := &session{
		board:  board,
		out:    out,
		log:    log,
		prompt: prompt,
	}
	s.start()
	return s
}

func (s *session) logger() *logrus.Entry {
	return s.log.WithField("game_id", s.id)
}

func (s *session) start() {
	s.id = uuid.NewString()
	s.startedAt = time.Now()
	s.logger().WithFields(logrus.Fields{
		"width":      s.board.Width(),
		"height":     s.board.Height(),
		"mine_count": s.board.MineCount(),
	}).Info("new game")
}

func (s *session) finished() {
	outcome := "lost"
	if s.board.Won() {
		outcome = "won"
	}
	s.logger().WithFields(logrus.Fields{
		"outcome":  outcome,
		"duration": time.Since(s.startedAt).Round(time.Millisecond).String(),
	}).Info("game over")
}

func (s *session) status() string {
	status := fmt.Sprintf("remaining: %d  flags: %d/%d",
		s.board.Remaining(), s.board.FlagCount(), s.board.MineCount())
	switch {
	case s.board.Won():
		status += "  won!"
	case s.board.Lost():
		status += "  lost"
	}
	return status
}

func (s *session) print() {
	fmt.Fprint(s.out, s.board)
	fmt.Fprintln(s.out, s.status())
}

func (s *session) showPrompt() {
	if s.prompt {
		fmt.Fprint(s.out, "> ")
	}
}

// Run executes lines until they run out, "q" is read or ctx is done.
// It returns errQuit on a normal exit.
func (s *session) Run(ctx context.Context, lines <-chan string) error {
	s.print()
	s.showPrompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			if err := s.execute(line); err != nil {
				if errors.Is(err, errQuit) {
					return err
				}
				fmt.Fprintf(s.out, "error: %s\n", err)
			}
			s.showPrompt()
		}
	}
}
