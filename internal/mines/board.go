package mines

import (
	"math"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Connectivity selects which neighbours the safe-region reveal walks through.
// Adjacent mine counts always use all eight neighbours.
type Connectivity int

const (
	Conn4 Connectivity = 4
	Conn8 Connectivity = 8
)

func (c Connectivity) offsets() []Point {
	if c == Conn4 {
		return orthogonal
	}
	return surround
}

type Option func(*GameBoard)

func WithSource(src Source) Option {
	return func(b *GameBoard) {
		b.rnd = src
	}
}

func WithSeed(seed1, seed2 uint64) Option {
	return WithSource(NewSource(seed1, seed2))
}

func WithConnectivity(c Connectivity) Option {
	return func(b *GameBoard) {
		b.conn = c
	}
}

func WithDebug(debug bool) Option {
	return func(b *GameBoard) {
		b.debug = debug
	}
}

// GameBoard owns a square grid of tiles together with its mine layout and
// score. It is not safe for concurrent use.
type GameBoard struct {
	boardSize    int
	maxMineCount int
	score        int
	board        [][]Tile
	rnd          Source
	conn         Connectivity
	debug        bool
}

func New(boardSize, maxMineCount int, opts ...Option) (*GameBoard, error) {
	if err := validate(boardSize, maxMineCount); err != nil {
		return nil, err
	}
	b := &GameBoard{
		boardSize:    boardSize,
		maxMineCount: maxMineCount,
		conn:         Conn8,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rnd == nil {
		b.rnd = createRand()
	}
	if b.conn != Conn4 && b.conn != Conn8 {
		b.conn = Conn8
	}
	b.initBoard()
	return b, nil
}

func (b *GameBoard) BoardSize() int { return b.boardSize }

func (b *GameBoard) MaxMineCount() int { return b.maxMineCount }

func (b *GameBoard) Score() int { return b.score }

func (b *GameBoard) Connectivity() Connectivity { return b.conn }

func (b *GameBoard) Debug() bool { return b.debug }

func (b *GameBoard) Source() Source { return b.rnd }

func (b *GameBoard) initBoard() {
	b.board = GenerateBoard(b.boardSize, b.boardSize)
	for _, row := range b.board {
		for i := range row {
			row[i].debug = b.debug
		}
	}
	b.initMines()
	b.markAdjacentMines()
	b.discoverTileNeighbors()
}

// initMines places mines by rejection sampling: a draw that lands on an
// existing mine gives its slot back and is retried.
func (b *GameBoard) initMines() {
	collisions := 0
	for i := b.maxMineCount; i > 0; i-- {
		x := b.rnd.IntN(b.boardSize)
		y := b.rnd.IntN(b.boardSize)
		tile := &b.board[x][y]
		if tile.isMine {
			collisions++
			i++
			continue
		}
		tile.SetMine()
	}
	Log.WithFields(logrus.Fields{
		"boardSize":  b.boardSize,
		"mineCount":  b.maxMineCount,
		"collisions": collisions,
	}).Debug("placed mines")
}

func (b *GameBoard) markAdjacentMines() {
	for row := range b.boardSize {
		for col := range b.boardSize {
			p := Point{row, col}
			count := 0
			for _, d := range surround {
				q := p.add(d)
				if b.Contains(q) && b.board[q.X][q.Y].isMine {
					count++
				}
			}
			b.board[row][col].SetAdjacentMineCount(count)
		}
	}
}

func (b *GameBoard) discoverTileNeighbors() {
	offsets := b.conn.offsets()
	for row := range b.boardSize {
		for col := range b.boardSize {
			p := Point{row, col}
			neighbors := make([]Point, 0, len(offsets))
			for _, d := range offsets {
				if q := p.add(d); b.Contains(q) {
					neighbors = append(neighbors, q)
				}
			}
			b.board[row][col].AssignNeighbors(neighbors...)
		}
	}
}

// SetMines replaces the mine layout with the given points, clearing all tile
// state. The mine count becomes the number of distinct points.
func (b *GameBoard) SetMines(points ...Point) error {
	for _, p := range points {
		if !b.Contains(p) {
			return ErrOutOfBounds
		}
	}
	for _, row := range b.board {
		for i := range row {
			row[i].Reset()
		}
	}
	for _, p := range points {
		b.board[p.X][p.Y].SetMine()
	}
	b.maxMineCount = b.RealMineCount()
	b.markAdjacentMines()
	return nil
}

func (b *GameBoard) Contains(p Point) bool {
	return 0 <= p.X && p.X < b.boardSize && 0 <= p.Y && p.Y < b.boardSize
}

func (b *GameBoard) index(p Point) int {
	return p.X*b.boardSize + p.Y
}

func (b *GameBoard) point(i int) Point {
	return Point{i / b.boardSize, i % b.boardSize}
}

func (b *GameBoard) tile(p Point) *Tile {
	return &b.board[p.X][p.Y]
}

// Tile returns a snapshot of the tile at p, which must be on the board.
func (b *GameBoard) Tile(p Point) TileView {
	return b.tile(p).View()
}

func (b *GameBoard) Rows() [][]TileView {
	rows := make([][]TileView, b.boardSize)
	for i, row := range b.board {
		rows[i] = make([]TileView, len(row))
		for j := range row {
			rows[i][j] = row[j].View()
		}
	}
	return rows
}

// SelectTile flags or reveals the tile at p and reports whether a mine was
// revealed. Disabled tiles are left alone.
func (b *GameBoard) SelectTile(p Point, flagMode bool) (kaboom bool) {
	tile := b.tile(p)
	if tile.disabled {
		return false
	}
	if flagMode {
		tile.ToggleFlag()
		return false
	}
	return b.RevealTile(p)
}

func (b *GameBoard) RevealTile(p Point) (kaboom bool) {
	tile := b.tile(p)
	kaboom = tile.Reveal()
	if !kaboom && tile.adjacentMineCount == 0 {
		b.RevealSafeNeighbors(p)
	}
	return kaboom
}

// RevealSafeNeighbors reveals the region of mine-free tiles with no adjacent
// mines that contains p, plus the numbered tiles bordering it. It returns the
// number of tiles that were newly revealed.
func (b *GameBoard) RevealSafeNeighbors(p Point) (revealed int) {
	if b.tile(p).isMine {
		return 0
	}

	visited := make([]bool, b.boardSize*b.boardSize)
	std := newCelltodo(len(visited))

	start := b.index(p)
	visited[start] = true
	std.add(start)

	for i, ok := std.pop(); ok; i, ok = std.pop() {
		tile := b.tile(b.point(i))
		if !tile.revealed {
			revealed++
		}
		tile.Reveal()

		if tile.adjacentMineCount > 0 {
			continue // boundary
		}
		for _, q := range tile.neighbors {
			j := b.index(q)
			if visited[j] || b.tile(q).isMine {
				continue
			}
			visited[j] = true
			std.add(j)
		}
	}

	Log.WithFields(logrus.Fields{
		"from":     p.String(),
		"revealed": revealed,
	}).Debug("revealed safe region")

	return revealed
}

func (b *GameBoard) RevealBoard() {
	for _, row := range b.board {
		for i := range row {
			row[i].Reveal()
		}
	}
}

func (b *GameBoard) disableTiles() {
	for _, row := range b.board {
		for i := range row {
			row[i].Disable()
		}
	}
}

func (b *GameBoard) GameOver() {
	b.RevealBoard()
	b.disableTiles()
}

// Reset starts a new game on a board of the same size.
func (b *GameBoard) Reset() {
	b.score = 0
	b.initBoard()
}

// Resize starts a new game on a newSize x newSize board. The board is left
// unchanged if the mine count does not fit.
func (b *GameBoard) Resize(newSize int) error {
	if err := validate(newSize, b.maxMineCount); err != nil {
		return err
	}
	b.boardSize = newSize
	b.Reset()
	return nil
}

func (b *GameBoard) UpdateScore(delta int) {
	b.score += delta
}

func (b *GameBoard) DebugToggle() {
	b.debug = !b.debug
	for _, row := range b.board {
		for i := range row {
			row[i].debug = b.debug
		}
	}
}

func (b *GameBoard) RealMineCount() (count int) {
	for _, row := range b.board {
		for i := range row {
			if row[i].isMine {
				count++
			}
		}
	}
	return count
}

func (b *GameBoard) TileCount() int {
	return b.boardSize * b.boardSize
}

// PercentMined is the mined share of the board in percent, rounded to a
// whole number.
func (b *GameBoard) PercentMined() float64 {
	return math.Round(float64(b.RealMineCount()) / float64(b.TileCount()) * 100)
}
