package commands

import "testing"

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"o 1 2;f 0 0", ";", []string{"o 1 2", "f 0 0"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
		{"g\no 0 0;f 1 1", separators, []string{"g", "o 0 0", "f 1 1"}},
		{"", ";", []string{""}},
	}
	for _, test := range testCases {
		n := 0
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Fatalf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
			n++
		}
		if n != len(test.array) {
			t.Errorf("byPiece returned %d pieces, want %d", n, len(test.array))
		}
	}
}
