package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickofolas/wdle/internal/words"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-10-19 06:00 at +10 is still the 18th in UTC.
	assert.Equal(t, "2026-10-18", DateKey(time.Date(2026, 10, 19, 6, 0, 0, 0, loc)))
}

func TestWordIndexDeterministic(t *testing.T) {
	morning := time.Date(2026, 10, 18, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 18, 23, 0, 0, 0, time.UTC)

	a := WordIndex(morning, "salt", 1000)
	assert.Equal(t, a, WordIndex(evening, "salt", 1000), "same UTC day, same word")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)
	assert.Equal(t, 0, WordIndex(morning, "salt", 0))
}

func TestWordIndexVariesWithSaltAndDate(t *testing.T) {
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 1<<30)] = true
	}
	assert.Greater(t, len(seen), 25)
	assert.NotEqual(t, WordIndex(day, "a", 1<<30), WordIndex(day, "b", 1<<30))
}

func TestWordIndexLongSalt(t *testing.T) {
	salt := string(make([]byte, 200))
	day := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, WordIndex(day, salt, 97), WordIndex(day, salt, 97))
}

func TestDrawer(t *testing.T) {
	lists, err := words.New([]string{"crane", "slate", "pious", "dwarf"}, nil)
	require.NoError(t, err)
	day := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	d := NewDrawer(lists, "salt", func() time.Time { return day })
	want := lists.Secrets()[WordIndex(day, "salt", 4)]
	assert.Equal(t, want, d.Draw())
	assert.Equal(t, want, d.Draw())
}
