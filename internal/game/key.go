package game

import "strings"

// KeyKind distinguishes the inputs a round reacts to.
type KeyKind int

const (
	KeyLetter KeyKind = iota + 1
	KeyDelete
	KeyEnter
)

// Key is a single keyboard input.
type Key struct {
	Kind   KeyKind
	Letter byte // lowercase a–z when Kind == KeyLetter
}

var (
	EnterKey  = Key{Kind: KeyEnter}
	DeleteKey = Key{Kind: KeyDelete}
)

// LetterKey returns the key for c, folded to lowercase.
func LetterKey(c byte) Key {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return Key{Kind: KeyLetter, Letter: c}
}

// ParseKey maps a browser key name to a Key. Unrecognized names report false.
func ParseKey(s string) (Key, bool) {
	if len(s) == 1 {
		c := s[0]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return LetterKey(c), true
		}
		return Key{}, false
	}
	switch strings.ToLower(s) {
	case "enter", "return":
		return EnterKey, true
	case "backspace", "delete":
		return DeleteKey, true
	}
	return Key{}, false
}

// ParseKeys parses names in order, dropping unrecognized ones.
func ParseKeys(names []string) []Key {
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		if k, ok := ParseKey(n); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
