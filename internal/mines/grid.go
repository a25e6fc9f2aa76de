package mines

import (
	"fmt"
	"strings"
)

// Symbol is the single-cell text form of a tile used by String.
func (v TileView) Symbol() string {
	switch {
	case v.DisplayValue != "":
		return v.DisplayValue
	case v.State == RevealedSafe:
		return "."
	default:
		return "-"
	}
}

// String draws the board one row per line with a column header, e.g.
//
//	   0 1 2
//	0: - F .
//	1: - 1 .
//	2: M 1 .
func (b *GameBoard) String() string {
	width := len(fmt.Sprint(b.boardSize - 1))
	cell := fmt.Sprintf("%%-%ds ", width)

	var s strings.Builder
	fmt.Fprintf(&s, "%*s  ", width, "")
	for col := range b.boardSize {
		fmt.Fprintf(&s, cell, fmt.Sprint(col))
	}
	fmt.Fprint(&s, "\n")

	for row := range b.boardSize {
		fmt.Fprintf(&s, "%*d: ", width, row)
		for col := range b.boardSize {
			fmt.Fprintf(&s, cell, b.board[row][col].View().Symbol())
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
