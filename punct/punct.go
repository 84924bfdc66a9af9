/*
Package punct localizes punctuation to the script it is embedded in.

Chinese text uses full-width punctuation ('，', '。', '（'…), English text
uses ASCII punctuation. Localization looks at the neighbourhood of a
punctuation glyph and rewrites it to the variant of the target language if the
glyph is adjacent to a character of that language's script.

Brackets are localized pairwise: if one parenthesis of a pair is rewritten,
its partner is rewritten as well. Partners are found by scanning with a
nesting counter over both bracket families, Chinese and ASCII.

Localization rewrites glyph for glyph and never changes the length of a line.
Rewriting happens in place, left to right, so a decision for a rune will see
the rewrites of all runes before it. This lets runs like "中文..." localize
completely: every rewritten period becomes the Chinese neighbour of the next.
*/
package punct

import (
	"github.com/npillmayer/cjknorm/charclass"
	"github.com/npillmayer/cjknorm/lang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Pair holds the Chinese and the English variant of a punctuation glyph.
type Pair struct {
	Zh, En rune
}

func (p Pair) glyph(l lang.Lang) rune {
	if l == lang.En {
		return p.En
	}
	return p.Zh
}

// EndPunct lists the end-of-clause punctuation which is localized glyph by glyph.
var EndPunct = []Pair{
	{'，', ','},
	{'。', '.'},
	{'？', '?'},
	{'！', '!'},
	{'：', ':'},
	{'；', ';'},
}

// Parentheses in both scripts.
var (
	OpenParen  = Pair{'（', '('}
	CloseParen = Pair{'）', ')'}
)

func isOpenParen(r rune) bool {
	return r == OpenParen.Zh || r == OpenParen.En
}

func isCloseParen(r rune) bool {
	return r == CloseParen.Zh || r == CloseParen.En
}

// Localize copies line to dst[:0] and localizes the punctuation of the copy
// for language target.
func Localize(dst, line []rune, target lang.Lang) []rune {
	dst = append(dst[:0], line...)
	LocalizeInPlace(dst, target)
	return dst
}

// LocalizeInPlace localizes the punctuation of line for language target.
func LocalizeInPlace(line []rune, target lang.Lang) {
	foreign := lang.En
	affine := charclass.IsZhChar
	if target == lang.En {
		foreign = lang.Zh
		affine = charclass.IsEnChar
	}
	nativeOpen, nativeClose := OpenParen.glyph(target), CloseParen.glyph(target)
	foreignOpen, foreignClose := OpenParen.glyph(foreign), CloseParen.glyph(foreign)
	for i := range line {
		if localizeEndPunct(line, i, target, foreign, affine) {
			continue
		}
		if line[i] == foreignOpen && detectForward(affine, line, i) {
			line[i] = nativeOpen
		} else if line[i] == foreignClose && detectBackward(affine, line, i) {
			line[i] = nativeClose
		}
		if line[i] == nativeOpen {
			if j, ok := closingPartner(line, i); ok && line[j] == foreignClose {
				T().Debugf("localize closing bracket at %d, partner of %d", j, i)
				line[j] = nativeClose
			}
		}
		if line[i] == nativeClose {
			if j, ok := openingPartner(line, i); ok && line[j] == foreignOpen {
				T().Debugf("localize opening bracket at %d, partner of %d", j, i)
				line[j] = nativeOpen
			}
		}
	}
}

func localizeEndPunct(line []rune, i int, target, foreign lang.Lang, affine charclass.Predicate) bool {
	for _, p := range EndPunct {
		if line[i] == p.glyph(foreign) && detectForward(affine, line, i) {
			line[i] = p.glyph(target)
			return true
		}
	}
	return false
}

// closingPartner finds the closing bracket matching an opening bracket at
// position i, scanning forward.
func closingPartner(line []rune, i int) (int, bool) {
	nesting := 0
	for j := i + 1; j < len(line); j++ {
		if isCloseParen(line[j]) {
			if nesting == 0 {
				return j, true
			}
			nesting--
		} else if isOpenParen(line[j]) {
			nesting++
		}
	}
	return -1, false
}

// openingPartner finds the opening bracket matching a closing bracket at
// position i, scanning backward.
func openingPartner(line []rune, i int) (int, bool) {
	nesting := 0
	for j := i - 1; j >= 0; j-- {
		if isOpenParen(line[j]) {
			if nesting == 0 {
				return j, true
			}
			nesting--
		} else if isCloseParen(line[j]) {
			nesting++
		}
	}
	return -1, false
}

// detectForward checks the rune preceding position i, or the one before
// that if they are separated by a single ASCII whitespace.
func detectForward(is charclass.Predicate, line []rune, i int) bool {
	if i == 0 {
		return false
	}
	if is(line[i-1]) {
		return true
	}
	if !charclass.IsASCIISpace(line[i-1]) || i == 1 {
		return false
	}
	return is(line[i-2])
}

// detectBackward checks the rune following position i, or the one after
// that if they are separated by a single ASCII whitespace.
func detectBackward(is charclass.Predicate, line []rune, i int) bool {
	n := len(line)
	if i >= n-1 {
		return false
	}
	if is(line[i+1]) {
		return true
	}
	if !charclass.IsASCIISpace(line[i+1]) || i == n-2 {
		return false
	}
	return is(line[i+2])
}
