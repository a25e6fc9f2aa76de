package session

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-board/internal/mines"
)

// newTestSession returns a 3x3 session with a single mine in the centre.
func newTestSession(t *testing.T) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s, err := New(logger, 3, 0, mines.WithSeed(1, 2))
	require.NoError(t, err)
	require.NoError(t, s.board.SetMines(mines.Point{X: 1, Y: 1}))
	return s, hook
}

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := New(logger, 3, 9)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestEngageRevealScores(t *testing.T) {
	s, _ := newTestSession(t)

	res, err := s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	require.NoError(t, err)
	assert.False(t, res.MineHit)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, "1", s.Tile(mines.Point{X: 0, Y: 0}).DisplayValue)

	res, err = s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	require.NoError(t, err)
	assert.False(t, res.MineHit)
	assert.Equal(t, 1, s.Score(), "revealed tiles do not score twice")
}

func TestEngageMineEndsGame(t *testing.T) {
	s, hook := newTestSession(t)

	res, err := s.Engage(mines.Point{X: 1, Y: 1}, Reveal)
	require.NoError(t, err)
	assert.True(t, res.MineHit)
	assert.True(t, s.Over())
	assert.Equal(t, 0, s.Score())
	for _, row := range s.Rows() {
		for _, v := range row {
			assert.True(t, v.Revealed)
			assert.True(t, v.Disabled)
		}
	}

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "game over", entry.Message)
	assert.Equal(t, s.ID().String(), entry.Data["game_id"])

	res, err = s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	require.NoError(t, err)
	assert.False(t, res.MineHit)
	assert.Equal(t, 0, s.Score())
}

func TestEngageFlag(t *testing.T) {
	s, _ := newTestSession(t)
	p := mines.Point{X: 1, Y: 1}

	res, err := s.Engage(p, Flag)
	require.NoError(t, err)
	assert.False(t, res.MineHit)
	assert.True(t, s.Tile(p).IsFlagged)
	assert.False(t, s.Tile(p).Revealed)
	assert.Equal(t, 0, s.Score())

	_, err = s.Engage(p, Flag)
	require.NoError(t, err)
	assert.False(t, s.Tile(p).IsFlagged)
}

func TestEngageRejectsBadInput(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.Engage(mines.Point{X: 3, Y: 0}, Reveal)
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)

	_, err = s.Engage(mines.Point{X: 0, Y: -1}, Flag)
	assert.ErrorIs(t, err, mines.ErrOutOfBounds)

	_, err = s.Engage(mines.Point{X: 0, Y: 0}, Mode(0))
	assert.ErrorIs(t, err, ErrBadMode)
	assert.False(t, s.Tile(mines.Point{X: 0, Y: 0}).Revealed)
}

func TestResetGame(t *testing.T) {
	s, _ := newTestSession(t)
	id := s.ID()
	s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	s.Engage(mines.Point{X: 1, Y: 1}, Reveal)
	require.True(t, s.Over())

	s.ResetGame()

	assert.False(t, s.Over())
	assert.Equal(t, 0, s.Score())
	assert.NotEqual(t, id, s.ID())
	assert.Equal(t, 3, s.BoardSize())
	for _, row := range s.Rows() {
		for _, v := range row {
			assert.False(t, v.Revealed)
			assert.False(t, v.Disabled)
		}
	}
}

func TestResize(t *testing.T) {
	s, _ := newTestSession(t)
	s.EndGame()

	require.NoError(t, s.Resize(5))
	assert.Equal(t, 5, s.BoardSize())
	assert.False(t, s.Over())

	s.EndGame()
	assert.ErrorIs(t, s.Resize(0), mines.ErrInvalidConfiguration)
	assert.Equal(t, 5, s.BoardSize())
	assert.True(t, s.Over())
}

func TestNewGame(t *testing.T) {
	logger, _ := test.NewNullLogger()
	a, err := New(logger, 4, 2, mines.WithConnectivity(mines.Conn4))
	require.NoError(t, err)
	b, err := New(logger, 4, 2)
	require.NoError(t, err)
	a.ToggleDebug()

	require.NoError(t, a.NewGame(6, 9, 42))
	require.NoError(t, b.NewGame(6, 9, 42))

	assert.Equal(t, 6, a.BoardSize())
	assert.Equal(t, 9, a.MineCount())
	assert.Equal(t, layout(b), layout(a))
	assert.Len(t, layout(a), 9)
	assert.True(t, a.Debug())
	assert.Equal(t, mines.Conn4, a.board.Connectivity())

	assert.ErrorIs(t, a.NewGame(2, 4, 0), mines.ErrInvalidConfiguration)
	assert.Equal(t, 6, a.BoardSize())
}

func layout(s *Session) (mined []mines.Point) {
	for _, row := range s.Rows() {
		for _, v := range row {
			if v.IsMine {
				mined = append(mined, v.Location)
			}
		}
	}
	return mined
}

func TestSnapshot(t *testing.T) {
	s, _ := newTestSession(t)
	s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	s.Engage(mines.Point{X: 2, Y: 2}, Flag)

	snap := s.Snapshot()
	assert.Equal(t, s.ID().String(), snap.GameID)
	assert.Equal(t, 3, snap.BoardSize)
	assert.Equal(t, 1, snap.MineCount)
	assert.Equal(t, 1, snap.Score)
	assert.False(t, snap.Over)
	assert.Equal(t, [][]string{
		{"1", "", ""},
		{"", "", ""},
		{"", "", "F"},
	}, snap.Grid)

	payload, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "game_id")
	assert.Contains(t, decoded, "percent_mined")
	assert.Equal(t, float64(1), decoded["score"])
}

func TestString(t *testing.T) {
	s, _ := newTestSession(t)
	s.Engage(mines.Point{X: 0, Y: 0}, Reveal)
	assert.Contains(t, s.String(), "0: 1 - - ")
	assert.Contains(t, s.String(), "score: 1 (playing)")

	s.EndGame()
	assert.Contains(t, s.String(), "(game over)")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		err  error
	}{
		{"reveal", Reveal, nil},
		{"OPEN", Reveal, nil},
		{"o", Reveal, nil},
		{"x", Reveal, nil},
		{"flag", Flag, nil},
		{"F", Flag, nil},
		{"chord", 0, ErrBadMode},
		{"", 0, ErrBadMode},
	}
	for _, test := range tests {
		mode, err := ParseMode(test.in)
		assert.Equal(t, test.want, mode, test.in)
		assert.ErrorIs(t, err, test.err, test.in)
	}
	assert.Equal(t, "reveal", Reveal.String())
	assert.Equal(t, "flag", Flag.String())
}
