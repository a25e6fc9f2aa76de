package session

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

type Result struct {
	MineHit bool
}

// Session is the game as seen by a front end: a board plus the rules that
// turn clicks into score and game over. It is not safe for concurrent use.
type Session struct {
	log   *logrus.Logger
	id    uuid.UUID
	board *mines.GameBoard
	over  bool
}

func New(
	logger *logrus.Logger, boardSize, mineCount int, opts ...mines.Option,
) (*Session, error) {
	board, err := mines.New(boardSize, mineCount, opts...)
	if err != nil {
		return nil, err
	}
	s := &Session{log: logger, board: board}
	s.begin("new game")
	return s, nil
}

func (s *Session) begin(msg string) {
	s.id = uuid.New()
	s.over = false
	s.entry().WithFields(logrus.Fields{
		"boardSize":    s.board.BoardSize(),
		"mineCount":    s.board.MaxMineCount(),
		"connectivity": s.board.Connectivity(),
	}).Info(msg)
}

func (s *Session) entry() *logrus.Entry {
	return s.log.WithField("game_id", s.id.String())
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Score() int { return s.board.Score() }

func (s *Session) BoardSize() int { return s.board.BoardSize() }

func (s *Session) MineCount() int { return s.board.MaxMineCount() }

func (s *Session) Over() bool { return s.over }

func (s *Session) Debug() bool { return s.board.Debug() }

func (s *Session) Tile(p mines.Point) mines.TileView { return s.board.Tile(p) }

func (s *Session) Rows() [][]mines.TileView { return s.board.Rows() }

// Engage applies a click at p. A safe reveal scores a point, a revealed mine
// ends the game. Clicks on locked tiles or after the game ended are ignored.
func (s *Session) Engage(p mines.Point, mode Mode) (Result, error) {
	if !s.board.Contains(p) {
		return Result{}, fmt.Errorf("%w: %s", mines.ErrOutOfBounds, p)
	}
	log := s.entry().WithFields(logrus.Fields{
		"position": p.String(),
		"mode":     mode.String(),
	})
	if s.over {
		log.Debug("game is over, ignoring")
		return Result{}, nil
	}
	if s.board.Tile(p).Disabled {
		log.Debug("tile is disabled, ignoring")
		return Result{}, nil
	}

	switch mode {
	case Flag:
		s.board.SelectTile(p, true)
		log.WithField("flagged", s.board.Tile(p).IsFlagged).Debug("toggled flag")
		return Result{}, nil
	case Reveal:
		if s.board.SelectTile(p, false) {
			log.Info("kaboom")
			s.EndGame()
			return Result{MineHit: true}, nil
		}
		s.board.UpdateScore(1)
		log.WithField("score", s.board.Score()).Debug("revealed tile")
		return Result{}, nil
	default:
		return Result{}, ErrBadMode
	}
}

func (s *Session) EndGame() {
	s.board.GameOver()
	s.over = true
	s.entry().WithField("score", s.board.Score()).Info("game over")
}

func (s *Session) ResetGame() {
	s.board.Reset()
	s.begin("reset game")
}

func (s *Session) Resize(boardSize int) error {
	if err := s.board.Resize(boardSize); err != nil {
		return err
	}
	s.begin("resized board")
	return nil
}

// NewGame replaces the board. A zero seed keeps drawing from the current
// random source; connectivity and debug display carry over.
func (s *Session) NewGame(boardSize, mineCount int, seed uint64) error {
	src := s.board.Source()
	if seed != 0 {
		src = mines.NewSource(seed, seed)
	}
	board, err := mines.New(boardSize, mineCount,
		mines.WithSource(src),
		mines.WithConnectivity(s.board.Connectivity()),
		mines.WithDebug(s.board.Debug()),
	)
	if err != nil {
		return err
	}
	s.board = board
	s.begin("new game")
	return nil
}

func (s *Session) ToggleDebug() {
	s.board.DebugToggle()
	s.entry().WithField("debug", s.board.Debug()).Debug("toggled debug display")
}

func (s *Session) String() string {
	status := "playing"
	if s.over {
		status = "game over"
	}
	return fmt.Sprintf("%sscore: %d (%s)\n", s.board.String(), s.board.Score(), status)
}
