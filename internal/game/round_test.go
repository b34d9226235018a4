package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type RoundSuite struct {
	suite.Suite
	dict  testDict
	draw  *seqDrawer
	round *Round
}

func TestRoundSuite(t *testing.T) {
	suite.Run(t, new(RoundSuite))
}

func (s *RoundSuite) SetupTest() {
	s.dict = newTestDict(testWords...)
	s.draw = &seqDrawer{words: []string{"crane", "apple"}}
	s.round = NewRound("round-1", s.dict, s.draw)
}

func (s *RoundSuite) play(words ...string) {
	for _, w := range words {
		s.round.HandleKeys(typeWord(w))
	}
}

func (s *RoundSuite) TestStartState() {
	s.Equal("crane", s.round.Secret)
	s.Len(s.round.Rows, DefaultRows)
	s.Equal(0, s.round.Active)
	s.True(s.round.Rows[0].Active())
	for _, row := range s.round.Rows[1:] {
		s.Equal(RowInactive, row.State())
	}
	s.Empty(s.round.Used())
	s.False(s.round.IsCompleted())
	s.Equal(StatusInProgress, s.round.Status())
}

func (s *RoundSuite) TestValidGuessAdvances() {
	s.play("slate")

	s.Equal(1, s.round.Active)
	s.True(s.round.Rows[0].Finalized())
	s.True(s.round.Rows[1].Active())
	s.Equal([]string{"a", "e", "l", "s", "t"}, s.round.Used())
	s.Equal([]string{"slate"}, s.round.Submitted())
}

func (s *RoundSuite) TestShortGuessIgnored() {
	s.round.HandleKeys([]Key{LetterKey('c'), LetterKey('r'), LetterKey('a'), EnterKey})

	s.Equal(0, s.round.Active)
	s.True(s.round.Rows[0].Active())
	s.Equal("cra", s.round.Rows[0].Text())
	s.Empty(s.round.Used())
}

func (s *RoundSuite) TestUnknownWordIgnored() {
	changed := s.round.HandleKeys(typeWord("qxzvj"))

	s.True(changed, "letters were typed")
	s.False(s.round.HandleKey(EnterKey))
	s.Equal(0, s.round.Active)
	s.Equal("qxzvj", s.round.Rows[0].Text())
	s.Empty(s.round.Submitted())
}

func (s *RoundSuite) TestWin() {
	s.play("slate", "crane")

	s.True(s.round.IsCompleted())
	s.True(s.round.Won())
	s.Equal(WonSentinel, s.round.Active)
	s.Equal(StatusWon, s.round.Status())
	s.Nil(s.round.ActiveRow())
}

func (s *RoundSuite) TestLossAfterAllRows() {
	s.play("slate", "apple", "zincy", "lolly", "allot", "pious")

	s.True(s.round.IsCompleted())
	s.True(s.round.Lost())
	s.False(s.round.Won())
	s.Equal(DefaultRows, s.round.Active)
	s.Equal(StatusLost, s.round.Status())
}

func (s *RoundSuite) TestInputIgnoredOnceCompleted() {
	s.play("crane")
	s.Require().True(s.round.Won())

	s.False(s.round.HandleKey(LetterKey('a')))
	s.False(s.round.HandleKey(DeleteKey))
	s.False(s.round.HandleKey(EnterKey))
	s.Equal("", s.round.Rows[1].Text())
}

func (s *RoundSuite) TestUsedLettersGrow() {
	s.play("slate")
	first := s.round.Used()
	s.play("pious")

	s.Subset(s.round.Used(), first)
	s.Contains(s.round.Used(), "p")
}

func (s *RoundSuite) TestResetIgnoredWhileInProgress() {
	s.play("slate")
	s.False(s.round.Reset())
	s.Equal("crane", s.round.Secret)
	s.Equal(1, s.round.Active)
}

func (s *RoundSuite) TestResetAfterCompletion() {
	s.play("slate", "crane")
	s.Require().True(s.round.IsCompleted())

	s.True(s.round.Reset())

	s.Equal("apple", s.round.Secret)
	s.Equal(0, s.round.Active)
	s.Empty(s.round.Used())
	s.Empty(s.round.Submitted())
	for i, row := range s.round.Rows {
		s.Equal("", row.Text(), "row %d", i)
	}
	s.True(s.round.Rows[0].Active())
	s.False(s.round.IsCompleted())
}

func (s *RoundSuite) TestCompletedIsDerivedFromState() {
	// Past the last row with a matching guess is not a loss.
	s.play("slate", "apple", "zincy", "lolly", "allot", "pious")
	s.round.Rows[5].text = []byte("crane")
	s.False(s.round.IsCompleted())
}

func TestRoundOptions(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	r := NewRound("r", newTestDict(testWords...), &seqDrawer{words: []string{"CRANE"}},
		WithRows(3), WithMode(ModeDaily), WithRows(0), WithClock(func() time.Time { return now }))

	if len(r.Rows) != 3 || r.Mode != ModeDaily || r.Secret != "crane" || !r.StartedAt.Equal(now) {
		t.Fatalf("unexpected round: rows=%d mode=%s secret=%s started=%v", len(r.Rows), r.Mode, r.Secret, r.StartedAt)
	}
}

func TestRoundLossWithCustomRows(t *testing.T) {
	r := NewRound("r", newTestDict(testWords...), &seqDrawer{words: []string{"crane"}}, WithRows(2))
	r.HandleKeys(typeWord("slate"))
	r.HandleKeys(typeWord("apple"))

	if !r.Lost() || r.Active != 2 {
		t.Fatalf("expected loss at active=2, got active=%d status=%s", r.Active, r.Status())
	}
}
