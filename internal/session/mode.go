package session

import (
	"fmt"
	"strings"
)

type Mode uint8

const (
	Reveal Mode = iota + 1
	Flag
)

var ErrBadMode = fmt.Errorf("mode must be one of 'reveal', 'flag'")

func (m Mode) String() string {
	switch m {
	case Reveal:
		return "reveal"
	case Flag:
		return "flag"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode accepts the mode names as well as the shorthands "o" or "x"
// (reveal) and "f" (flag).
func ParseMode(s string) (mode Mode, err error) {
	switch strings.ToLower(s) {
	case "reveal", "open", "o", "x":
		mode = Reveal
	case "flag", "f":
		mode = Flag
	default:
		err = ErrBadMode
	}
	return
}
