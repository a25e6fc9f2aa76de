package mines

import "fmt"

// Point addresses a tile on the board. X is the row and Y is the column, so a
// point maps to board[X][Y].
type Point struct {
	X, Y int
}

func IsSamePoint(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

// neighbour offsets, clockwise from north
var (
	north     = Point{-1, 0}
	northEast = Point{-1, 1}
	east      = Point{0, 1}
	southEast = Point{1, 1}
	south     = Point{1, 0}
	southWest = Point{1, -1}
	west      = Point{0, -1}
	northWest = Point{-1, -1}
)

var (
	orthogonal = []Point{north, east, south, west}
	surround   = []Point{north, northEast, east, southEast, south, southWest, west, northWest}
)

func (p Point) add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}
