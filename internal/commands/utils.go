package commands

import (
	"iter"
	"strings"
)

// byPiece yields the pieces of s between any of the separator bytes in seps.
func byPiece(s string, seps string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; ; i++ {
			cut := strings.IndexAny(s, seps)
			if cut < 0 {
				yield(i, s)
				return
			}
			if !yield(i, s[:cut]) {
				return
			}
			s = s[cut+1:]
		}
	}
}
