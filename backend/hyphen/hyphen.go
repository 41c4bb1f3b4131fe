// Package hyphen turns text into a list of tokens and inserts discretionary
// hyphens into it.
package hyphen

import (
	"strings"
	"unicode"

	"github.com/speedata/linkednodelist/backend/bag"
	"github.com/speedata/linkednodelist/backend/collection"
	"github.com/speedata/linkednodelist/backend/node"
)

// Kind is the type of a token.
type Kind int

const (
	// Glyph is a single character.
	Glyph Kind = iota
	// Glue is inter word space.
	Glue
	// Disc is a hyphenation point.
	Disc
)

func (k Kind) String() string {
	switch k {
	case Glyph:
		return "glyph"
	case Glue:
		return "glue"
	case Disc:
		return "disc"
	}
	return "unknown"
}

// Token is a node in a token list.
type Token struct {
	node.Links[*Token]
	Kind Kind
	Text string
}

func (t *Token) String() string {
	if t.Kind == Glyph {
		return "glyph: " + t.Text
	}
	return t.Kind.String()
}

// Hyphenator returns the hyphenation points of a word. Each entry is the
// number of characters to move forward from the previous point.
type Hyphenator interface {
	Hyphenate(word string) []int
}

// Build creates a token list from text. Every rune becomes a Glyph, every
// run of white space a single Glue.
func Build(text string) (*node.List[*Token], error) {
	l := node.NewList[*Token]()
	for _, r := range text {
		if unicode.IsSpace(r) {
			if last := l.Last(); last != nil && last.Kind == Glue {
				continue
			}
			if err := l.AddNode(&Token{Kind: Glue}); err != nil {
				return nil, err
			}
			continue
		}
		if err := l.AddNode(&Token{Kind: Glyph, Text: string(r)}); err != nil {
			return nil, err
		}
	}
	return l, nil
}

type word struct {
	start *Token
	text  strings.Builder
}

// words collects the letter runs of l. Nothing is inserted while the list is
// iterated.
func words(l *node.List[*Token]) ([]*word, error) {
	var ret []*word
	var cur *word
	it := l.Iterate()
	for it.Next() {
		t := it.Value()
		if t.Kind != Glyph || !isLetter(t.Text) {
			cur = nil
			continue
		}
		if cur == nil {
			cur = &word{start: t}
			ret = append(ret, cur)
		}
		cur.text.WriteString(t.Text)
	}
	return ret, it.Err()
}

func isLetter(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// Hyphenate inserts a Disc token at every hyphenation point h reports and
// returns the number of inserted tokens.
func Hyphenate(h Hyphenator, l *node.List[*Token]) (int, error) {
	ws, err := words(l)
	if err != nil {
		return 0, err
	}
	inserted := 0
	for _, w := range ws {
		cur := w.start
	breakpoints:
		for _, step := range h.Hyphenate(w.text.String()) {
			if step < 1 {
				break
			}
			for i := 0; i < step; i++ {
				cur = cur.Next()
				if cur == nil || cur.Kind != Glyph {
					bag.Logger.Debugw("hyphenation point outside of word", "word", w.text.String())
					break breakpoints
				}
			}
			if err = l.AddNodeBefore(&Token{Kind: Disc}, cur); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}

// String returns the text of the token list, Disc tokens are shown as "-".
func String(l *node.List[*Token], reverse bool) (string, error) {
	var src collection.Iterable[*Token] = l
	if reverse {
		src = l.Reversed()
	}
	var b strings.Builder
	it := src.Iterate()
	for it.Next() {
		switch t := it.Value(); t.Kind {
		case Glyph:
			b.WriteString(t.Text)
		case Glue:
			b.WriteRune(' ')
		case Disc:
			b.WriteRune('-')
		}
	}
	return b.String(), it.Err()
}
