package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoreInProgress(t *testing.T) {
	dict := newTestDict(testWords...)
	r := NewRound("r1", dict, &seqDrawer{words: []string{"crane"}})
	r.HandleKeys(typeWord("slate"))
	r.HandleKeys([]Key{LetterKey('p'), LetterKey('i')})

	snap := r.Snapshot()
	assert.Equal(t, 1, snap.Finalized)
	assert.Equal(t, 1, snap.Active)
	assert.Equal(t, []string{"slate", "pi", "", "", "", ""}, snap.Texts)

	restored, err := Restore(snap, dict, &seqDrawer{words: []string{"apple"}})
	require.NoError(t, err)
	assert.Equal(t, r.View(), restored.View())
	assert.Equal(t, r.Used(), restored.Used())

	// Play continues on the restored round.
	restored.HandleKeys([]Key{LetterKey('o'), LetterKey('u'), LetterKey('s'), EnterKey})
	assert.Equal(t, 2, restored.Active)
}

func TestSnapshotRestoreTerminal(t *testing.T) {
	dict := newTestDict(testWords...)

	won := NewRound("w", dict, &seqDrawer{words: []string{"crane"}})
	won.HandleKeys(typeWord("crane"))
	rw, err := Restore(won.Snapshot(), dict, &seqDrawer{words: []string{"apple"}})
	require.NoError(t, err)
	assert.True(t, rw.Won())
	assert.Equal(t, WonSentinel, rw.Active)

	lost := NewRound("l", dict, &seqDrawer{words: []string{"crane"}}, WithRows(2))
	lost.HandleKeys(typeWord("slate"))
	lost.HandleKeys(typeWord("apple"))
	rl, err := Restore(lost.Snapshot(), dict, &seqDrawer{words: []string{"apple"}})
	require.NoError(t, err)
	assert.True(t, rl.Lost())

	require.True(t, rl.Reset())
	assert.Equal(t, "apple", rl.Secret)
}

func TestRestoreRejectsInconsistentSnapshots(t *testing.T) {
	dict := newTestDict(testWords...)
	draw := &seqDrawer{words: []string{"crane"}}
	base := Snapshot{ID: "x", Secret: "crane", Texts: make([]string, 6)}

	bad := []func(s *Snapshot){
		func(s *Snapshot) { s.Texts = nil },
		func(s *Snapshot) { s.Secret = "cran" },
		func(s *Snapshot) { s.Active = 2 },
		func(s *Snapshot) { s.Active = WonSentinel },
		func(s *Snapshot) { s.Finalized, s.Active = 1, 1; s.Texts[0] = "qqqqq" },
		func(s *Snapshot) { s.Texts[0] = "crane!" },
	}
	for i, mutate := range bad {
		s := base
		s.Texts = make([]string, 6)
		mutate(&s)
		_, err := Restore(s, dict, draw)
		assert.ErrorIs(t, err, ErrBadSnapshot, "case %d", i)
	}
}
