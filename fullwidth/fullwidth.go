/*
Package fullwidth folds full-width presentation forms to their ASCII
counterparts.

East Asian fonts provide "full-width" variants of digits, Latin letters and
some symbols (U+FF01..U+FF5E). Inside mixed Chinese/English text those should
be written as ordinary ASCII, so that spacing and punctuation rules can
recognize them. Folding is table-driven and not complete: CJK
punctuation like '，' or '（' is not folded here, as it is a legitimate glyph
of its own and will be localized by package punct.

The full-width full stop '．' folds to ". ", i.e. a period followed by a space.
*/
package fullwidth

import (
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/width"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var symbols = map[rune]string{
	'－': "-",
	'／': "/",
	'．': ". ",
	'％': "%",
	'＃': "#",
	'＠': "@",
	'＆': "&",
	'＜': "<",
	'＞': ">",
	'［': "[",
	'］': "]",
	'｛': "{",
	'｝': "}",
	'＼': "\\",
	'｜': "|",
	'＋': "+",
	'＝': "=",
	'＿': "_",
	'＾': "^",
	'｀': "`",
}

// Tokens consisting of more than one rune.
var digraphs = map[string]string{
	"‘‘": "“",
	"’’": "”",
}

// IsFullWidth is true for runes of East Asian width class F (UAX#11).
func IsFullWidth(r rune) bool {
	return width.LookupRune(r).Kind() == width.EastAsianFullwidth
}

// Fold returns the canonical form of a single rune. Runes without a table
// entry are returned unchanged.
func Fold(r rune) string {
	if s, ok := lookup(r); ok {
		return s
	}
	return string(r)
}

// AppendFold appends the canonical form of r to buf.
func AppendFold(buf []rune, r rune) []rune {
	s, ok := lookup(r)
	if !ok {
		return append(buf, r)
	}
	for _, f := range s {
		buf = append(buf, f)
	}
	return buf
}

// Convert folds a token. A token is either a single rune or one of the
// digraphs "‘‘" and "’’", which are converted to a single curly double quote.
// Anything else is returned unchanged.
func Convert(token string) string {
	if s, ok := digraphs[token]; ok {
		return s
	}
	runes := []rune(token)
	if len(runes) != 1 {
		return token
	}
	return Fold(runes[0])
}

// String folds every rune of s.
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := lookup(r); ok {
			b.WriteString(f)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lookup(r rune) (string, bool) {
	if !IsFullWidth(r) {
		return "", false
	}
	switch {
	case r >= '０' && r <= '９':
		return string(r - '０' + '0'), true
	case r >= 'Ａ' && r <= 'Ｚ':
		return string(r - 'Ａ' + 'A'), true
	case r >= 'ａ' && r <= 'ｚ':
		return string(r - 'ａ' + 'a'), true
	}
	s, ok := symbols[r]
	if ok {
		T().Debugf("fold full-width %#U to %q", r, s)
	}
	return s, ok
}
