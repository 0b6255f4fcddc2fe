package mines

import "iter"

// Point addresses a cell by column X and row Y, both 0-based.
type Point struct {
	X, Y int
}

var directions = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0} /* (0, 0) */, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func (b *Board) inBounds(p Point) bool {
	return 0 <= p.X && p.X < b.width && 0 <= p.Y && p.Y < b.height
}

// panics [AssertionError]
func (b *Board) index(p Point) int {
	if !b.inBounds(p) {
		panic(AssertionError{"point out of bounds"})
	}
	return p.Y*b.width + p.X
}

func (b *Board) point(i int) Point {
	return Point{X: i % b.width, Y: i / b.width}
}

// neighbors yields the in-bounds points around p, p itself excluded.
func (b *Board) neighbors(p Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, d := range directions {
			n := Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !b.inBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
