// internal/game/round.go
//
// Game controller for a single round.
// Responsibilities:
//   - Draw the secret and build the rows (row 0 active, the rest inactive).
//   - Route keys to the active row; ignore everything once the round is over.
//   - On finalization: merge used letters, detect win/loss, activate the next row.
//   - Reset a finished round with a freshly drawn secret.
//
// Notes:
//   - Active == WonSentinel marks a win; Active == len(Rows) marks a loss.
//   - Completion is derived from state on demand rather than cached.
//   - A Round is not safe for concurrent use; callers serialize access per round.

package game

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Mode names how a round's secret is drawn.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Round owns the state of one game.
type Round struct {
	ID        string
	Mode      string
	Secret    string
	Rows      []*Row
	Active    int
	StartedAt time.Time

	used     map[byte]struct{}
	dict     Dictionary
	draw     Drawer
	rowCount int
	now      func() time.Time
}

// Option configures a Round.
type Option func(*Round)

// WithRows sets the number of attempts. Values below 1 are ignored.
func WithRows(n int) Option {
	return func(r *Round) {
		if n > 0 {
			r.rowCount = n
		}
	}
}

// WithMode records how the secret is drawn.
func WithMode(mode string) Option {
	return func(r *Round) { r.Mode = mode }
}

// WithClock overrides time.Now for StartedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Round) { r.now = now }
}

// NewRound creates a round and starts it.
func NewRound(id string, dict Dictionary, draw Drawer, opts ...Option) *Round {
	r := newRound(id, dict, draw, opts...)
	r.Start()
	return r
}

func newRound(id string, dict Dictionary, draw Drawer, opts ...Option) *Round {
	r := &Round{
		ID:       id,
		Mode:     ModeRandom,
		dict:     dict,
		draw:     draw,
		rowCount: DefaultRows,
		now:      time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Start draws a new secret and replaces all round state.
func (r *Round) Start() {
	r.startWith(r.draw.Draw())
}

func (r *Round) startWith(secret string) {
	r.Secret = strings.ToLower(secret)
	r.Rows = lo.Times(r.rowCount, func(i int) *Row { return newRow(i, WordLength) })
	r.used = make(map[byte]struct{})
	r.Active = 0
	r.StartedAt = r.now().UTC()
	r.Rows[0].activate()
}

// Reset starts over with a new secret. Only a finished round can be reset;
// otherwise Reset does nothing and returns false.
func (r *Round) Reset() bool {
	if !r.IsCompleted() {
		return false
	}
	r.Start()
	return true
}

// ActiveRow returns the row accepting input, or nil once the round is over.
func (r *Round) ActiveRow() *Row {
	if r.Active < 0 || r.Active >= len(r.Rows) {
		return nil
	}
	return r.Rows[r.Active]
}

// HandleKey applies one key to the active row and reports whether anything changed.
func (r *Round) HandleKey(k Key) bool {
	row := r.ActiveRow()
	if row == nil {
		return false
	}
	switch k.Kind {
	case KeyLetter:
		return row.Type(k.Letter)
	case KeyDelete:
		return row.Delete()
	case KeyEnter:
		if !row.Submit(r.dict, r.Secret) {
			return false
		}
		r.onRowFinalized(row.Index)
		return true
	}
	return false
}

// HandleKeys applies keys in order and reports whether any of them changed state.
func (r *Round) HandleKeys(keys []Key) bool {
	changed := false
	for _, k := range keys {
		if r.HandleKey(k) {
			changed = true
		}
	}
	return changed
}

func (r *Round) onRowFinalized(i int) {
	guess := r.Rows[i].Text()
	for j := 0; j < len(guess); j++ {
		r.used[guess[j]] = struct{}{}
	}

	switch {
	case Solved(r.Rows[i].Marks()):
		r.Active = WonSentinel
	case i+1 == len(r.Rows):
		r.Active = len(r.Rows)
	default:
		r.Active = i + 1
		r.Rows[r.Active].activate()
	}
}

// IsCompleted reports whether the round is won or out of rows.
func (r *Round) IsCompleted() bool {
	if r.Active == WonSentinel {
		return true
	}
	return r.Active >= len(r.Rows) && !lo.Contains(r.Submitted(), r.Secret)
}

// Won reports whether the secret was guessed.
func (r *Round) Won() bool { return r.Active == WonSentinel }

// Lost reports whether every row was used without a match.
func (r *Round) Lost() bool { return r.IsCompleted() && !r.Won() }

// Status returns the coarse round state.
func (r *Round) Status() Status {
	switch {
	case r.Won():
		return StatusWon
	case r.Lost():
		return StatusLost
	}
	return StatusInProgress
}

// Submitted returns the finalized guesses in row order.
func (r *Round) Submitted() []string {
	return lo.FilterMap(r.Rows, func(row *Row, _ int) (string, bool) {
		return row.Text(), row.Finalized()
	})
}

// Used returns the letters of all finalized guesses, sorted.
func (r *Round) Used() []string {
	out := lo.Map(lo.Keys(r.used), func(c byte, _ int) string { return string(c) })
	slices.Sort(out)
	return out
}
