package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

var (
	dec     = schema.NewDecoder()
	errQuit = errors.New("quit")
)

// Maps known commands to number of arguments, -1 for key=value lists
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
	"n": -1,
	"h": 0,
	"q": 0,
}

const usage = `commands:
  o x y    open a cell
  f x y    toggle a flag
  c x y    chord around an open number
  r        give up and reveal the board
  g        print the board
  n [width=W] [height=H] [mine_count=M]
           start a new game
  h        this help
  q        quit
`

type newGameParams struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	MineCount int `schema:"mine_count"`
}

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("second argument must be an int")
		return
	}
	return
}

// parseNewGameParams decodes key=value pairs on top of current.
func parseNewGameParams(args []string, current newGameParams) (newGameParams, error) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return current, fmt.Errorf("expected key=value, got %q", arg)
		}
		src[key] = append(src[key], value)
	}
	params := current
	if err := dec.Decode(&params, src); err != nil {
		return current, err
	}
	return params, nil
}

func (s *session) point(args []string) (x, y int, err error) {
	if x, y, err = parseXY(args); err != nil {
		return
	}
	if _, ok := s.board.Cell(x, y); !ok {
		err = errors.New("invalid square coordinates")
	}
	return
}

func (s *session) execute(c string) (err error) {
	parts := strings.Fields(c)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return errors.New("unknown command")
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}

	ended := s.board.Ended()
	defer func() {
		if err == nil && !ended && s.board.Ended() {
			s.finished()
		}
	}()

	switch parts[0] {
	case "g":
		s.print()
		return
	case "h":
		fmt.Fprint(s.out, usage)
		return
	case "q":
		return errQuit
	case "o":
		x, y, err := s.point(parts[1:])
		if err != nil {
			return err
		}
		opened := s.board.Reveal(x, y)
		s.logger().WithFields(logrus.Fields{
			"x": x, "y": y, "opened": len(opened),
		}).Debug("open")
		s.print()
		return nil
	case "f":
		x, y, err := s.point(parts[1:])
		if err != nil {
			return err
		}
		if !s.board.ToggleFlag(x, y) {
			return errors.New("cannot flag this square")
		}
		s.print()
		return nil
	case "c":
		x, y, err := s.point(parts[1:])
		if err != nil {
			return err
		}
		opened := s.board.Chord(x, y)
		s.logger().WithFields(logrus.Fields{
			"x": x, "y": y, "opened": len(opened),
		}).Debug("chord")
		s.print()
		return nil
	case "r":
		s.board.Forfeit()
		s.print()
		return nil
	case "n":
		current := newGameParams{
			Width:     s.board.Width(),
			Height:    s.board.Height(),
			MineCount: s.board.MineCount(),
		}
		params, err := parseNewGameParams(parts[1:], current)
		if err != nil {
			return err
		}
		if err := s.board.Resize(params.Width, params.Height, params.MineCount); err != nil {
			return err
		}
		s.start()
		s.print()
		return nil
	}
	return errors.New("invalid command")
}
