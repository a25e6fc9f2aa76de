package mines

import (
	"slices"
	"strconv"
)

type TileState int8

const (
	Neutral TileState = iota
	Flagged
	RevealedRisky // revealed mine
	RevealedSafe
)

func (s TileState) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case Flagged:
		return "flagged"
	case RevealedRisky:
		return "revealed_risky"
	case RevealedSafe:
		return "revealed_safe"
	default:
		return "unknown"
	}
}

// Tile is a single board cell. Neighbours are kept as grid coordinates and
// are only meaningful together with the board that wired them.
type Tile struct {
	location          Point
	isMine            bool
	isFlagged         bool
	revealed          bool
	disabled          bool
	adjacentMineCount int
	neighbors         []Point
	safeDisplay       string
	debug             bool
}

func NewTile(location Point) Tile {
	return Tile{location: location}
}

func (t *Tile) Location() Point { return t.location }

func (t *Tile) IsMine() bool { return t.isMine }

func (t *Tile) IsFlagged() bool { return t.isFlagged }

func (t *Tile) Revealed() bool { return t.revealed }

func (t *Tile) Disabled() bool { return t.disabled }

func (t *Tile) AdjacentMineCount() int { return t.adjacentMineCount }

func (t *Tile) SetMine() {
	t.isMine = true
}

// SetAdjacentMineCount also refreshes the text shown once the tile is
// revealed as safe; zero shows as an empty string.
func (t *Tile) SetAdjacentMineCount(n int) {
	t.adjacentMineCount = n
	if n > 0 {
		t.safeDisplay = strconv.Itoa(n)
	} else {
		t.safeDisplay = ""
	}
}

func (t *Tile) AssignNeighbors(neighbors ...Point) {
	t.neighbors = slices.Clone(neighbors)
}

func (t *Tile) Neighbors() []Point {
	return slices.Clone(t.neighbors)
}

// Reveal opens the tile and locks it. It reports whether the tile was a mine
// and may be called again with the same result.
func (t *Tile) Reveal() bool {
	t.revealed = true
	t.disabled = true
	return t.isMine
}

// ToggleFlag does nothing once the tile is revealed or disabled.
func (t *Tile) ToggleFlag() {
	if t.revealed || t.disabled {
		return
	}
	t.isFlagged = !t.isFlagged
}

func (t *Tile) Disable() {
	t.disabled = true
}

func (t *Tile) Reset() {
	t.isMine = false
	t.isFlagged = false
	t.revealed = false
	t.disabled = false
	t.SetAdjacentMineCount(0)
}

func (t *Tile) State() TileState {
	switch {
	case t.revealed && t.isMine:
		return RevealedRisky
	case t.revealed:
		return RevealedSafe
	case t.isFlagged:
		return Flagged
	default:
		return Neutral
	}
}

// DisplayValue is "" for untouched tiles, "F" for flags, "M" for revealed
// mines and the adjacent mine count for revealed safe tiles. In debug mode
// it always shows the count, suffixed with "M" on mines.
func (t *Tile) DisplayValue() string {
	if t.debug {
		v := strconv.Itoa(t.adjacentMineCount)
		if t.isMine {
			v += "M"
		}
		return v
	}
	switch t.State() {
	case Flagged:
		return "F"
	case RevealedRisky:
		return "M"
	case RevealedSafe:
		return t.safeDisplay
	default:
		return ""
	}
}

// TileView is a read-only copy of a tile, handed out to callers instead of
// the tile itself.
type TileView struct {
	Location          Point
	IsMine            bool
	IsFlagged         bool
	Revealed          bool
	Disabled          bool
	AdjacentMineCount int
	State             TileState
	DisplayValue      string
}

func (t *Tile) View() TileView {
	return TileView{
		Location:          t.location,
		IsMine:            t.isMine,
		IsFlagged:         t.isFlagged,
		Revealed:          t.revealed,
		Disabled:          t.disabled,
		AdjacentMineCount: t.adjacentMineCount,
		State:             t.State(),
		DisplayValue:      t.DisplayValue(),
	}
}
