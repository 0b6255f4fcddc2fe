package mines

import (
	"github.com/sirupsen/logrus"
)

func (b *Board) canReveal(p Point) bool {
	if b.ended || !b.inBounds(p) {
		return false
	}
	c := b.grid[b.index(p)]
	return !c.revealed && !c.flagged
}

// Reveal opens the cell at (x, y) and returns every point the call opened,
// in order. Opening a cell with no adjacent mines opens its neighbours too.
// Out-of-bounds, revealed or flagged cells and ended boards are no-ops.
func (b *Board) Reveal(x, y int) []Point {
	start := Point{x, y}
	if !b.canReveal(start) {
		return nil
	}
	if !b.minesPlaced {
		b.placeMines(start)
	}

	var opened []Point
	todo := []Point{start}
	for len(todo) > 0 {
		p := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		// the same point may have been pushed by several neighbours
		if !b.canReveal(p) {
			continue
		}

		c := &b.grid[b.index(p)]
		c.revealed = true
		opened = append(opened, p)

		if c.mine {
			c.exploded = true
			b.endGame(p)
			break
		}

		b.remaining--
		if b.remaining == 0 {
			b.endGame(p)
			break
		}

		if c.adjacent == 0 {
			for n := range b.neighbors(p) {
				if b.canReveal(n) {
					todo = append(todo, n)
				}
			}
		}
	}

	return opened
}

// ToggleFlag flips the flag on a hidden cell and reports whether it did.
func (b *Board) ToggleFlag(x, y int) bool {
	p := Point{x, y}
	if b.ended || !b.inBounds(p) {
		return false
	}
	c := &b.grid[b.index(p)]
	if c.revealed {
		return false
	}
	c.flagged = !c.flagged
	return true
}

// Chord opens the hidden neighbours of an open numbered cell once the
// player has flagged as many neighbours as the number says. Wrong flags
// lose the game like any other reveal.
func (b *Board) Chord(x, y int) []Point {
	p := Point{x, y}
	if b.ended || !b.inBounds(p) {
		return nil
	}
	c := b.grid[b.index(p)]
	if !c.revealed || c.mine || c.adjacent == 0 {
		return nil
	}

	var (
		flags  int
		hidden []Point
	)
	for n := range b.neighbors(p) {
		nc := b.grid[b.index(n)]
		if nc.flagged {
			flags++
		} else if !nc.revealed {
			hidden = append(hidden, n)
		}
	}
	if flags != c.adjacent {
		return nil
	}

	var opened []Point
	for _, n := range hidden {
		opened = append(opened, b.Reveal(n.X, n.Y)...)
		if b.ended {
			break
		}
	}
	return opened
}

// Forfeit gives the game up as lost and exposes the layout.
func (b *Board) Forfeit() {
	if b.ended {
		return
	}
	if !b.minesPlaced {
		b.placeMines(nowhere)
	}
	b.endGame(nowhere)
}

// endGame freezes the board and reveals every cell. Flags stay so that
// wrong ones can still be told apart.
func (b *Board) endGame(last Point) {
	b.ended = true
	for i := range b.grid {
		b.grid[i].revealed = true
	}

	Log.WithFields(logrus.Fields{
		"last":      last,
		"won":       b.Won(),
		"remaining": b.remaining,
	}).Debug("game ended")
}
