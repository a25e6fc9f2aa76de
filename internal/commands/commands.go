package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-board/internal/mines"
	"github.com/vancomm/minesweeper-board/internal/session"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgs        = errors.New("invalid number of arguments")
	ErrBadCoordinates = errors.New("coordinates must be two ints")
)

const separators = ";\n"

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

// Maps known commands to number of arguments; -1 takes any number
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"e": 0,
	"r": 0,
	"s": 1,
	"n": -1,
	"d": 0,
}

type NewGameArgs struct {
	Size  int    `schema:"size,required"`
	Mines int    `schema:"mines,required"`
	Seed  uint64 `schema:"seed"`
}

// ParseNewGameArgs decodes key=value pairs such as "size=9 mines=10".
func ParseNewGameArgs(pairs []string) (NewGameArgs, error) {
	src := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return NewGameArgs{}, fmt.Errorf("expected key=value, got %q", pair)
		}
		src[key] = append(src[key], value)
	}
	var args NewGameArgs
	err := dec.Decode(&args, src)
	return args, err
}

func parsePoint(twoStrings []string) (p mines.Point, err error) {
	if p.X, err = strconv.Atoi(twoStrings[0]); err != nil {
		return p, ErrBadCoordinates
	}
	if p.Y, err = strconv.Atoi(twoStrings[1]); err != nil {
		return p, ErrBadCoordinates
	}
	return p, nil
}

type Outcome struct {
	MineHit  bool
	Executed int
}

// Execute runs every command in text against s. Commands are separated by
// ';' or newlines. It stops at the first failing command and after a mine
// is hit.
func Execute(s *session.Session, text string) (Outcome, error) {
	var out Outcome
	for _, c := range byPiece(text, separators) {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		res, err := executeCommand(s, c)
		if err != nil {
			return out, fmt.Errorf("%q: %w", c, err)
		}
		out.Executed++
		if res.MineHit {
			out.MineHit = true
			break
		}
	}
	return out, nil
}

func executeCommand(s *session.Session, c string) (res session.Result, err error) {
	parts := strings.Fields(c)
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return res, ErrUnknownCommand
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return res, ErrBadArgs
	}
	switch parts[0] {
	case "g":
		return
	case "o", "f":
		p, err := parsePoint(parts[1:])
		if err != nil {
			return res, err
		}
		mode, err := session.ParseMode(parts[0])
		if err != nil {
			return res, err
		}
		return s.Engage(p, mode)
	case "e":
		s.EndGame()
		return
	case "r":
		s.ResetGame()
		return
	case "s":
		size, err := strconv.Atoi(parts[1])
		if err != nil {
			return res, errors.New("size must be an int")
		}
		return res, s.Resize(size)
	case "n":
		args, err := ParseNewGameArgs(parts[1:])
		if err != nil {
			return res, err
		}
		return res, s.NewGame(args.Size, args.Mines, args.Seed)
	case "d":
		s.ToggleDebug()
		return
	}
	return res, errors.New("invalid command")
}
