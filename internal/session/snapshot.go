package session

type Snapshot struct {
	GameID       string     `json:"game_id"`
	BoardSize    int        `json:"board_size"`
	MineCount    int        `json:"mine_count"`
	Score        int        `json:"score"`
	Over         bool       `json:"over"`
	Debug        bool       `json:"debug"`
	PercentMined float64    `json:"percent_mined"`
	Grid         [][]string `json:"grid"`
}

func (s *Session) Snapshot() Snapshot {
	rows := s.board.Rows()
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = make([]string, len(row))
		for j, v := range row {
			grid[i][j] = v.DisplayValue
		}
	}
	return Snapshot{
		GameID:       s.id.String(),
		BoardSize:    s.board.BoardSize(),
		MineCount:    s.board.MaxMineCount(),
		Score:        s.board.Score(),
		Over:         s.over,
		Debug:        s.board.Debug(),
		PercentMined: s.board.PercentMined(),
		Grid:         grid,
	}
}
