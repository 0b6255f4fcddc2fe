package mines

import (
	"github.com/sirupsen/logrus"
)

// MaxDimension bounds each side so that every coordinate fits the
// [RandomSource] range and width*height never overflows.
const MaxDimension = 1<<16 - 1

var Log = logrus.New()

// Board is a single minesweeper game. It owns its cells exclusively and
// is not safe for concurrent use.
type Board struct {
	width, height int
	mineCount     int
	remaining     int // safe cells still hidden
	ended         bool
	minesPlaced   bool
	grid          []Cell // row-major, height x width
	src           RandomSource
}

// New builds an empty board. Mines are placed on the first reveal. The mine
// count is clamped to [0, width*height-1] so at least one safe cell exists.
func New(width, height, mineCount int, src RandomSource) (*Board, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, &ConfigError{Width: width, Height: height}
	}
	if src == nil {
		src = NewSeededSource(0)
	}

	total := width * height
	mineCount = max(mineCount, 0)
	if mineCount >= total {
		mineCount = total - 1
	}

	b := &Board{
		width:     width,
		height:    height,
		mineCount: mineCount,
		remaining: total - mineCount,
		grid:      make([]Cell, total),
		src:       src,
	}
	return b, nil
}

// Resize throws the current game away and starts a new one. On error the
// board is left as it was.
func (b *Board) Resize(width, height, mineCount int) error {
	nb, err := New(width, height, mineCount, b.src)
	if err != nil {
		return err
	}
	*b = *nb
	Log.WithFields(logrus.Fields{
		"width":     b.width,
		"height":    b.height,
		"mineCount": b.mineCount,
	}).Debug("board reset")
	return nil
}

func (b *Board) SetWidth(width int) error {
	return b.Resize(width, b.height, b.mineCount)
}

func (b *Board) SetHeight(height int) error {
	return b.Resize(b.width, height, b.mineCount)
}

func (b *Board) SetMineCount(mineCount int) error {
	return b.Resize(b.width, b.height, mineCount)
}

// Reset starts a new game with the current parameters.
func (b *Board) Reset() {
	// current parameters were already validated
	_ = b.Resize(b.width, b.height, b.mineCount)
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) MineCount() int { return b.mineCount }
func (b *Board) Remaining() int { return b.remaining }
func (b *Board) Ended() bool { return b.ended }
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

func (b *Board) Won() bool {
	return b.ended && b.remaining == 0
}

func (b *Board) Lost() bool {
	return b.ended && b.remaining > 0
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) (Cell, bool) {
	p := Point{x, y}
	if !b.inBounds(p) {
		return Cell{}, false
	}
	return b.grid[b.index(p)], true
}

func (b *Board) DisplayState(x, y int) DisplayState {
	c, ok := b.Cell(x, y)
	if !ok {
		return Hidden
	}
	return c.DisplayState()
}

func (b *Board) FlagCount() (n int) {
	for _, c := range b.grid {
		if c.flagged {
			n++
		}
	}
	return
}

// Flags lists flagged cells in row-major order.
func (b *Board) Flags() []Point {
	var flags []Point
	for i, c := range b.grid {
		if c.flagged {
			flags = append(flags, b.point(i))
		}
	}
	return flags
}

// Mines lists mine positions in row-major order once the game has ended.
func (b *Board) Mines() []Point {
	if !b.ended {
		return nil
	}
	var mines []Point
	for i, c := range b.grid {
		if c.mine {
			mines = append(mines, b.point(i))
		}
	}
	return mines
}
