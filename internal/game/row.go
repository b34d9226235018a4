package game

import (
	"context"
	"strings"

	"github.com/looplab/fsm"
)

// Row lifecycle states.
const (
	RowInactive  = "inactive"
	RowActive    = "active"
	RowFinalized = "finalized"
)

const (
	eventActivate = "activate"
	eventFinalize = "finalize"
)

// Cell is one rendered tile. Mark is empty until the row is finalized.
type Cell struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark,omitempty"`
}

// Row is one guess attempt: a text buffer plus its lifecycle.
// Only an active row accepts input; a finalized row is immutable and keeps the
// marks computed when it was submitted.
type Row struct {
	Index  int
	length int
	text   []byte
	marks  []Mark
	fsm    *fsm.FSM
}

func newRow(index, length int) *Row {
	r := &Row{Index: index, length: length, text: make([]byte, 0, length)}
	r.fsm = fsm.NewFSM(
		RowInactive,
		fsm.Events{
			{Name: eventActivate, Src: []string{RowInactive}, Dst: RowActive},
			{Name: eventFinalize, Src: []string{RowActive}, Dst: RowFinalized},
		},
		fsm.Callbacks{
			// The secret travels as the event argument so marks are computed once, here.
			"enter_" + RowFinalized: func(_ context.Context, e *fsm.Event) {
				secret, _ := e.Args[0].(string)
				r.marks = Score(secret, string(r.text))
			},
		},
	)
	return r
}

// State returns the lifecycle state name.
func (r *Row) State() string { return r.fsm.Current() }

// Active reports whether the row accepts input.
func (r *Row) Active() bool { return r.fsm.Is(RowActive) }

// Finalized reports whether the row has been submitted and scored.
func (r *Row) Finalized() bool { return r.fsm.Is(RowFinalized) }

// Text returns the current buffer.
func (r *Row) Text() string { return string(r.text) }

// Marks returns the classification computed at finalization, or nil.
func (r *Row) Marks() []Mark {
	if r.marks == nil {
		return nil
	}
	return append([]Mark(nil), r.marks...)
}

func (r *Row) activate() {
	if r.fsm.Can(eventActivate) {
		_ = r.fsm.Event(context.Background(), eventActivate)
	}
}

// Type appends a letter. Returns false (no-op) when the row is not active, the
// buffer is full, or c is not a letter.
func (r *Row) Type(c byte) bool {
	if !r.Active() || len(r.text) >= r.length {
		return false
	}
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	if c < 'a' || c > 'z' {
		return false
	}
	r.text = append(r.text, c)
	return true
}

// Delete removes the last letter. Returns false on an empty or inactive row.
func (r *Row) Delete() bool {
	if !r.Active() || len(r.text) == 0 {
		return false
	}
	r.text = r.text[:len(r.text)-1]
	return true
}

// Submit finalizes the row when the buffer is complete and dict accepts it.
// Anything else is a silent no-op and the row stays active.
func (r *Row) Submit(dict Dictionary, secret string) bool {
	if !r.Active() || len(r.text) != r.length || !dict.IsValidGuess(string(r.text)) {
		return false
	}
	return r.fsm.Event(context.Background(), eventFinalize, secret) == nil
}

// Cells renders the row from its buffer and cached marks.
func (r *Row) Cells() []Cell {
	return renderCells(string(r.text), r.marks, r.length)
}

// RenderRow is the pure rendering of a row: uppercased letters (blank for
// unfilled cells) while not finalized, scored tiles once finalized.
func RenderRow(text string, finalized bool, secret string, length int) []Cell {
	var marks []Mark
	if finalized {
		marks = Score(secret, text)
	}
	return renderCells(text, marks, length)
}

func renderCells(text string, marks []Mark, length int) []Cell {
	cells := make([]Cell, length)
	for i := 0; i < length && i < len(text); i++ {
		cells[i].Letter = strings.ToUpper(text[i : i+1])
		if i < len(marks) {
			cells[i].Mark = marks[i]
		}
	}
	return cells
}
