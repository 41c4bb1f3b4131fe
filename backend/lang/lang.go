package lang

import (
	"io"
	"os"

	"github.com/speedata/hyphenation"
)

// Lang represents a language for hyphenation
type Lang struct {
	Lefthyphenmin  int
	Righthyphenmin int
	Name           string
	lang           *hyphenation.Lang
}

// Load loads the hyphenation patterns with the given file name
func Load(fn string) (*Lang, error) {
	r, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	l, err := New(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	if err = r.Close(); err != nil {
		return nil, err
	}
	l.Name = fn
	return l, nil
}

// New reads hyphenation patterns from r.
func New(r io.Reader) (*Lang, error) {
	hl, err := hyphenation.New(r)
	if err != nil {
		return nil, err
	}
	return &Lang{lang: hl, Lefthyphenmin: 2, Righthyphenmin: 3}, nil
}

// Hyphenate returns the hyphenation points of word. Each entry is the number
// of characters to move forward from the previous point.
func (l *Lang) Hyphenate(word string) []int {
	l.lang.Leftmin = l.Lefthyphenmin
	l.lang.Rightmin = l.Righthyphenmin

	hyphenpoints := l.lang.Hyphenate(word)
	// The slice hyphenpoints contains the valid break points
	// after a character.
	// We need the number of characters to move forward,
	// so we change the slice
	if len(hyphenpoints) > 0 {
		for i := len(hyphenpoints) - 1; i > 0; i-- {
			hyphenpoints[i] = hyphenpoints[i] - hyphenpoints[i-1]
		}
	}
	return hyphenpoints
}
