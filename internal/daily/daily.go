// internal/daily/daily.go
//
// Deterministic "daily" secret selection.
// Every round started in daily mode on the same UTC date draws the same word:
// index = BLAKE2b-256(key = BLAKE2b-256(salt), msg = YYYY-MM-DD) mod len(secrets).

package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/nickofolas/wdle/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index in [0, n) for the date of t.
func WordIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	// blake2b keys are capped at 64 bytes, so hash the salt into a fixed-size key.
	key := blake2b.Sum256([]byte(salt))
	h, err := blake2b.New256(key[:])
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Drawer picks the secret of the day.
type Drawer struct {
	lists *words.Lists
	salt  string
	now   func() time.Time
}

// NewDrawer returns a daily drawer. A nil now means time.Now.
func NewDrawer(l *words.Lists, salt string, now func() time.Time) *Drawer {
	if now == nil {
		now = time.Now
	}
	return &Drawer{lists: l, salt: salt, now: now}
}

// Draw returns today's secret.
func (d *Drawer) Draw() string {
	secrets := d.lists.Secrets()
	return secrets[WordIndex(d.now(), d.salt, len(secrets))]
}
