package mines

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is the state of one square. The zero value is a hidden safe cell.
type Cell struct {
	mine     bool
	revealed bool
	flagged  bool
	exploded bool // the mine whose reveal lost the game
	adjacent int
}

func (c Cell) Mine() bool { return c.mine }
func (c Cell) Revealed() bool { return c.revealed }
func (c Cell) Flagged() bool { return c.flagged }
func (c Cell) Exploded() bool { return c.exploded }
func (c Cell) Adjacent() int { return c.adjacent }

type DisplayState int8

const (
	Hidden         DisplayState = -2
	Flagged        DisplayState = -1
	ExplodedMine   DisplayState = 65
	FalselyFlagged DisplayState = 66
	Mine           DisplayState = 67
	/*
	 * 0 to 8 mean the cell is open and carry its adjacent mine count.
	 */
)

// DisplayState derives what the player should see for c.
func (c Cell) DisplayState() DisplayState {
	switch {
	case c.flagged && c.revealed && !c.mine:
		return FalselyFlagged
	case c.flagged:
		return Flagged
	case !c.revealed:
		return Hidden
	case c.mine && c.exploded:
		return ExplodedMine
	case c.mine:
		return Mine
	default:
		return DisplayState(c.adjacent)
	}
}

// Number returns the adjacent mine count of an open safe cell.
func (s DisplayState) Number() (int, bool) {
	if 0 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func (s DisplayState) String() string {
	switch {
	case s == Hidden:
		return "-"
	case s == Flagged:
		return "F"
	case s == FalselyFlagged:
		return "X"
	case s == ExplodedMine:
		return "!"
	case s == Mine:
		return "*"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "?"
	}
}

// String renders the board one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.height {
		for x := range b.width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, b.grid[y*b.width+x].DisplayState())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
