package mines

import (
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
)

// nowhere is used as the excluded point when mines are placed without a
// first click (forfeit before any reveal).
var nowhere = Point{-1, -1}

// placeMines draws mineCount distinct positions other than excluded by
// rejection sampling and fills in the neighbour counts.
func (b *Board) placeMines(excluded Point) {
	positions := mapset.New[Point]()
	positions.Put(excluded)

	// +1 because of the excluded point
	for positions.Size() < b.mineCount+1 {
		positions.Put(Point{
			X: int(b.src.NextBounded(uint32(b.width))),
			Y: int(b.src.NextBounded(uint32(b.height))),
		})
	}

	mines := make([]Point, 0, b.mineCount)
	positions.Each(func(p Point) {
		if p != excluded {
			mines = append(mines, p)
		}
	})

	for _, m := range mines {
		b.grid[b.index(m)].mine = true
		for n := range b.neighbors(m) {
			b.grid[b.index(n)].adjacent++
		}
	}
	b.minesPlaced = true

	Log.WithFields(logrus.Fields{
		"excluded": excluded,
		"mines":    mines,
	}).Debug("mines placed")
}
