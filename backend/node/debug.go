package node

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Debug outputs a colorful representation of the node list on stdout.
func Debug[N Linker[N]](l *List[N]) {
	Fdebug(color.Output, l)
}

// Fdebug writes a colorful representation of the node list to w. Broken back
// links and a wrong unsafe count are marked in red.
func Fdebug[N Linker[N]](w io.Writer, l *List[N]) {
	boundary := color.New(color.FgHiBlue)
	plain := color.New(color.FgHiGreen)
	broken := color.New(color.FgHiRed)

	seen := make(map[N]bool)
	i := 0
	for e := l.first; !isZero(e); e = e.Next() {
		if seen[e] {
			broken.Fprintf(w, "%4d: cycle at %v\n", i, e)
			break
		}
		seen[e] = true

		c := plain
		if e == l.first || e == l.last {
			c = boundary
		}
		c.Fprintf(w, "%4d: %v\n", i, e)
		if next := e.Next(); !isZero(next) && next.Prev() != e {
			broken.Fprintf(w, "      next node does not link back\n")
		}
		i++
	}

	if i != l.unsafeCount {
		broken.Fprintf(w, "count: %d (unsafe count %d)\n", i, l.unsafeCount)
		return
	}
	fmt.Fprintf(w, "count: %d\n", i)
}
