package mines

// GenerateBoard builds a height x width grid of fresh tiles, each located at
// its own (row, col).
func GenerateBoard(height, width int) [][]Tile {
	rows := make([][]Tile, height)
	for i := range rows {
		rows[i] = make([]Tile, width)
		for j := range rows[i] {
			rows[i][j] = NewTile(Point{i, j})
		}
	}
	return rows
}
