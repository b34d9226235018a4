package words

import (
	"crypto/rand"
	"math/big"
)

// Picker returns an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// CryptoPicker implements Picker with crypto/rand.
type CryptoPicker struct{}

// Intn returns a cryptographically random int in [0, n).
func (CryptoPicker) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// RandomDrawer draws secrets uniformly from a Lists value.
type RandomDrawer struct {
	lists *Lists
	pick  Picker
}

// NewRandomDrawer returns a drawer over l. A nil picker means CryptoPicker.
func NewRandomDrawer(l *Lists, p Picker) *RandomDrawer {
	if p == nil {
		p = CryptoPicker{}
	}
	return &RandomDrawer{lists: l, pick: p}
}

// Draw returns a secret word. Repeats across draws are allowed.
func (d *RandomDrawer) Draw() string {
	return d.lists.secrets[d.pick.Intn(len(d.lists.secrets))]
}
