package game

import "github.com/samber/lo"

// View is the display snapshot sent to the browser. It is derived entirely
// from round state; nothing in it feeds back into play.
type View struct {
	RoundID   string        `json:"roundId"`
	Mode      string        `json:"mode"`
	Rows      [][]Cell      `json:"rows"`
	Active    int           `json:"active"`
	Status    Status        `json:"status"`
	Completed bool          `json:"completed"`
	Guesses   int           `json:"guesses"`
	Used      []string      `json:"used"`
	Keyboard  KeyboardState `json:"keyboard"`
	Answer    string        `json:"answer,omitempty"` // revealed on loss only
}

// View renders the round for presentation.
func (r *Round) View() View {
	submitted := r.Submitted()
	v := View{
		RoundID:   r.ID,
		Mode:      r.Mode,
		Rows:      lo.Map(r.Rows, func(row *Row, _ int) []Cell { return row.Cells() }),
		Active:    r.Active,
		Status:    r.Status(),
		Completed: r.IsCompleted(),
		Guesses:   len(submitted),
		Used:      r.Used(),
		Keyboard:  Keyboard(r.Secret, submitted),
	}
	if r.Lost() {
		v.Answer = r.Secret
	}
	return v
}
