/*
Package spacing corrects the whitespace of a line of mixed Chinese/English
text.

Spacing is decided at every boundary between two runes, by looking at the
rune to the left and the rune to the right of it. Decisions are driven by
rule tables: RemoveSpace drops an existing space, AddSpace inserts one.
Both are applied in a single pass by Correct.

Spaces between Chinese letters and Latin letters or digits are a special
case. Correct will remove them, while CorrectMinor (re-)inserts them. Clients
are expected to call CorrectMinor exactly once, after all other corrections
have reached a stable state.

All functions in this package append their result to a destination slice,
which must not share memory with the input line.
*/
package spacing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Correct removes and inserts spaces in line according to the RemoveSpace
// and AddSpace tables. The result is appended to dst[:0].
//
// The first rune of line is never considered as a space to be removed, as it
// has no left neighbour. The last rune is copied unconditionally.
func Correct(dst, line []rune) []rune {
	dst = dst[:0]
	n := len(line)
	if n == 0 {
		return dst
	}
	for i := 0; i < n-1; i++ {
		x := line[i]
		if x == ' ' {
			if i > 0 && RemoveSpace.Matches(line[i-1], line[i+1]) {
				T().Debugf("remove space between %q and %q", line[i-1], line[i+1])
				continue
			}
			dst = append(dst, x)
			continue
		}
		dst = append(dst, x)
		if AddSpace.Matches(x, line[i+1]) {
			T().Debugf("add space between %q and %q", x, line[i+1])
			dst = append(dst, ' ')
		}
	}
	return append(dst, line[n-1])
}

// CorrectMinor inserts a space at every boundary matched by table Minor.
// Existing spaces are never removed. The result is appended to dst[:0].
func CorrectMinor(dst, line []rune) []rune {
	dst = dst[:0]
	n := len(line)
	if n == 0 {
		return dst
	}
	for i := 0; i < n-1; i++ {
		dst = append(dst, line[i])
		if Minor.Matches(line[i], line[i+1]) {
			dst = append(dst, ' ')
		}
	}
	return append(dst, line[n-1])
}
