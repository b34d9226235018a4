package game

import "github.com/samber/lo"

// testDict accepts a fixed set of guesses.
type testDict map[string]struct{}

func newTestDict(ws ...string) testDict {
	return lo.SliceToMap(ws, func(w string) (string, struct{}) { return w, struct{}{} })
}

func (d testDict) IsValidGuess(w string) bool {
	_, ok := d[w]
	return ok
}

// seqDrawer returns its words in order, repeating the last one.
type seqDrawer struct {
	words []string
	n     int
}

func (d *seqDrawer) Draw() string {
	w := d.words[min(d.n, len(d.words)-1)]
	d.n++
	return w
}

// typeWord returns the keys for w followed by Enter.
func typeWord(w string) []Key {
	keys := make([]Key, 0, len(w)+1)
	for i := 0; i < len(w); i++ {
		keys = append(keys, LetterKey(w[i]))
	}
	return append(keys, EnterKey)
}

var testWords = []string{"crane", "slate", "apple", "zincy", "lolly", "allot", "pious", "dwarf", "mount", "thorn", "otter"}
