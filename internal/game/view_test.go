package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewInProgress(t *testing.T) {
	r := NewRound("r1", newTestDict(testWords...), &seqDrawer{words: []string{"crane"}})
	r.HandleKeys(typeWord("slate"))
	r.HandleKeys([]Key{LetterKey('c'), LetterKey('r')})

	v := r.View()
	assert.Equal(t, "r1", v.RoundID)
	assert.Equal(t, ModeRandom, v.Mode)
	assert.Equal(t, StatusInProgress, v.Status)
	assert.False(t, v.Completed)
	assert.Equal(t, 1, v.Active)
	assert.Equal(t, 1, v.Guesses)
	assert.Empty(t, v.Answer)
	require.Len(t, v.Rows, DefaultRows)
	assert.Equal(t, Cell{Letter: "S", Mark: MarkAbsent}, v.Rows[0][0])
	assert.Equal(t, Cell{Letter: "A", Mark: MarkCorrect}, v.Rows[0][2])
	assert.Equal(t, Cell{Letter: "C"}, v.Rows[1][0])
	assert.Equal(t, MarkCorrect, keyMark(v.Keyboard, "a"))
}

func TestViewRevealsAnswerOnLossOnly(t *testing.T) {
	r := NewRound("r1", newTestDict(testWords...), &seqDrawer{words: []string{"crane"}}, WithRows(1))
	r.HandleKeys(typeWord("crane"))
	assert.Empty(t, r.View().Answer)

	r.Reset()
	r.HandleKeys(typeWord("slate"))
	v := r.View()
	assert.Equal(t, StatusLost, v.Status)
	assert.True(t, v.Completed)
	assert.Equal(t, "crane", v.Answer)
}
