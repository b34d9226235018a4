// internal/game/types.go
//
// Core type definitions for a Wordle round.
// Defines:
//   - Mark: per-letter classification of a finalized guess.
//   - Status: coarse round state reported to the browser.
//   - Dictionary / Drawer: the word-list collaborators a round depends on.

package game

const (
	// WordLength is the number of letters in a secret or guess.
	WordLength = 5
	// DefaultRows is the number of attempts in a round.
	DefaultRows = 6
	// WonSentinel is the active row index of a won round.
	WonSentinel = -1
)

// Mark represents the evaluation result for a single letter in a guess.
//   - "correct": letter matches the secret at this position.
//   - "present": letter occurs elsewhere in the secret, within its unmatched count.
//   - "absent":  letter has no remaining unmatched occurrence in the secret.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// rank orders marks for keyboard precedence (correct > present > absent > none).
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Status is the coarse state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Dictionary validates complete guesses.
type Dictionary interface {
	IsValidGuess(w string) bool
}

// Drawer supplies the secret word for a new round.
type Drawer interface {
	Draw() string
}
