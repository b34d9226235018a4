package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
		ok   bool
	}{
		{"a", LetterKey('a'), true},
		{"Q", LetterKey('q'), true},
		{"Enter", EnterKey, true},
		{"RETURN", EnterKey, true},
		{"Backspace", DeleteKey, true},
		{"delete", DeleteKey, true},
		{"1", Key{}, false},
		{"Shift", Key{}, false},
		{"", Key{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseKeysDropsUnknown(t *testing.T) {
	got := ParseKeys([]string{"c", "Tab", "r", "Enter"})
	assert.Equal(t, []Key{LetterKey('c'), LetterKey('r'), EnterKey}, got)
}
