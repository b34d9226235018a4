package game

import "github.com/samber/lo"

// KeyboardLayout is the on-screen keyboard, top row first.
var KeyboardLayout = []string{"qwertyuiop", "asdfghjkl", "zxcvbnm"}

// KeyState is one on-screen key with the best mark seen for its letter.
type KeyState struct {
	Key  string `json:"key"`
	Mark Mark   `json:"mark,omitempty"`
}

// KeyboardState mirrors KeyboardLayout row by row.
type KeyboardState [][]KeyState

// Keyboard derives per-key highlighting by re-scoring every submitted guess.
// A letter keeps its best classification across guesses: correct beats
// present beats absent.
func Keyboard(secret string, guesses []string) KeyboardState {
	best := BestMarks(secret, guesses)
	return lo.Map(KeyboardLayout, func(row string, _ int) []KeyState {
		keys := make([]KeyState, len(row))
		for i := 0; i < len(row); i++ {
			keys[i] = KeyState{Key: row[i : i+1], Mark: best[row[i]]}
		}
		return keys
	})
}

// BestMarks returns the best mark per letter across guesses.
func BestMarks(secret string, guesses []string) map[byte]Mark {
	best := make(map[byte]Mark)
	for _, g := range guesses {
		for i, m := range Score(secret, g) {
			if m.rank() > best[g[i]].rank() {
				best[g[i]] = m
			}
		}
	}
	return best
}
