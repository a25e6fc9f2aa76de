package console

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper-board/internal/commands"
	"github.com/vancomm/minesweeper-board/internal/session"
)

const quit = "q"

type errorReply struct {
	Error string `json:"error"`
}

type renderer struct {
	out    io.Writer
	format Format
	enc    *json.Encoder
}

func newRenderer(out io.Writer, format Format) *renderer {
	return &renderer{out: out, format: format, enc: json.NewEncoder(out)}
}

func (r *renderer) board(s *session.Session) error {
	if r.format == JSON {
		return r.enc.Encode(s.Snapshot())
	}
	_, err := io.WriteString(r.out, s.String())
	return err
}

func (r *renderer) message(msg string) error {
	if r.format == JSON {
		return nil
	}
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

func (r *renderer) failure(err error) error {
	if r.format == JSON {
		return r.enc.Encode(errorReply{Error: err.Error()})
	}
	_, werr := fmt.Fprintf(r.out, "error: %s\n", err)
	return werr
}

// Run reads commands from in line by line and writes the board to out after
// each one. It returns nil on end of input, on "q" or when ctx is cancelled.
// Command errors are reported to out and do not stop the loop.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *session.Session, format Format) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r := newRenderer(out, format)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	if err := r.board(s); err != nil {
		return err
	}

	for {
		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			select {
			case err := <-scanErr:
				return err
			default:
				return nil
			}
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if text == quit {
			return nil
		}

		outcome, err := commands.Execute(s, text)
		if err != nil {
			if err := r.failure(err); err != nil {
				return err
			}
		}
		if outcome.MineHit {
			if err := r.message("kaboom"); err != nil {
				return err
			}
		}
		if err := r.board(s); err != nil {
			return err
		}
	}
}
