package ahocorasick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_Substrings(t *testing.T) {
	m := New([]string{"failed password", "401", "unauthorized"})

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"exact keyword", "failed password for root", true},
		{"case insensitive", "FAILED PASSWORD for root", true},
		{"mid-word containment", "status 4010 returned", true},
		{"overlapping prefixes", "failed passwor... unauthorized", true},
		{"no keyword", "accepted password for root", false},
		{"empty text", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Match(tc.text))
		})
	}
}

func TestMatcher_SuffixTerminal(t *testing.T) {
	// "sword" is a suffix of a path through "password"; terminal state must
	// propagate via failure links.
	m := New([]string{"password", "sword"})
	assert.True(t, m.Match("crossword puzzle... pas-sword"))
	assert.True(t, m.Match("xpassword"))
	assert.False(t, m.Match("passwor"))
}

func TestMatcher_Empty(t *testing.T) {
	m := New(nil)
	assert.False(t, m.Match("anything"))
	assert.Equal(t, 0, m.PatternCount())
}
