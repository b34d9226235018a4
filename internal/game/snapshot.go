package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadSnapshot is returned by Restore for inconsistent snapshots.
var ErrBadSnapshot = errors.New("game: inconsistent snapshot")

// Snapshot is the storable form of a Round.
type Snapshot struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Secret    string    `json:"secret"`
	Texts     []string  `json:"texts"`
	Finalized int       `json:"finalized"`
	Active    int       `json:"active"`
	StartedAt time.Time `json:"startedAt"`
}

// Snapshot captures the round's state.
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		ID:        r.ID,
		Mode:      r.Mode,
		Secret:    r.Secret,
		Texts:     make([]string, len(r.Rows)),
		Active:    r.Active,
		StartedAt: r.StartedAt,
	}
	for i, row := range r.Rows {
		s.Texts[i] = row.Text()
		if row.Finalized() {
			s.Finalized++
		}
	}
	return s
}

// Restore rebuilds a Round from a snapshot. Finalized rows are re-scored,
// giving the same marks they had when submitted.
func Restore(s Snapshot, dict Dictionary, draw Drawer) (*Round, error) {
	n := len(s.Texts)
	if n == 0 || s.Finalized < 0 || s.Finalized > n || len(s.Secret) != WordLength {
		return nil, fmt.Errorf("%w: %d rows, %d finalized", ErrBadSnapshot, n, s.Finalized)
	}
	switch {
	case s.Active == WonSentinel:
		if s.Finalized == 0 || s.Texts[s.Finalized-1] != s.Secret {
			return nil, fmt.Errorf("%w: won without matching guess", ErrBadSnapshot)
		}
	case s.Active != s.Finalized:
		return nil, fmt.Errorf("%w: active row %d after %d finalized", ErrBadSnapshot, s.Active, s.Finalized)
	}

	r := newRound(s.ID, dict, draw, WithRows(n), WithMode(s.Mode))
	r.Secret = s.Secret
	r.StartedAt = s.StartedAt
	r.Active = s.Active
	r.used = make(map[byte]struct{})
	r.Rows = make([]*Row, n)

	for i := range r.Rows {
		row := newRow(i, WordLength)
		r.Rows[i] = row
		text := s.Texts[i]
		if len(text) > WordLength {
			return nil, fmt.Errorf("%w: row %d too long", ErrBadSnapshot, i)
		}
		switch {
		case i < s.Finalized:
			row.activate()
			row.text = append(row.text, text...)
			if !row.Submit(dict, s.Secret) {
				return nil, fmt.Errorf("%w: row %d not a valid guess", ErrBadSnapshot, i)
			}
			for j := 0; j < len(text); j++ {
				r.used[text[j]] = struct{}{}
			}
		case i == s.Active:
			row.activate()
			for j := 0; j < len(text); j++ {
				if !row.Type(text[j]) {
					return nil, fmt.Errorf("%w: row %d has invalid letters", ErrBadSnapshot, i)
				}
			}
		}
	}
	return r, nil
}
