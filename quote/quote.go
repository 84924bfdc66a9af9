/*
Package quote turns ambiguous quotation marks into directional pairs.

Quotes are paired by a toggle: the first quote of a family opens, the next one
closes, and so on. There is one toggle for double quotes and one for single
quotes; toggles are reset for every line.

For Chinese, quotes are written as curly quotes which hug their content: any
space adjacent to a quote is removed. For English, double quotes are written
as ASCII '"', separated from the surrounding text by exactly one space on the
outside and none on the inside. English single quotes are not paired; curly
single quotes simply become apostrophes.
*/
package quote

import (
	"github.com/npillmayer/cjknorm/lang"
)

// Normalize appends line to dst[:0], with quotes normalized for language l.
func Normalize(dst, line []rune, l lang.Lang) []rune {
	if l == lang.En {
		return NormalizeEn(dst, line)
	}
	return NormalizeZh(dst, line)
}

// toggle tracks whether the next quote of a family opens or closes.
type toggle bool

// next returns the glyph for the next quote and flips the toggle.
func (t *toggle) next(open, close rune) rune {
	if *t {
		*t = false
		return close
	}
	*t = true
	return open
}

func isDoubleQuote(r rune) bool {
	return r == '"' || r == '“' || r == '”'
}

func isSingleZhQuote(r rune) bool {
	return r == '‘' || r == '’'
}

// NormalizeZh pairs double and single quotes as Chinese curly quotes and
// removes spaces next to them.
func NormalizeZh(dst, line []rune) []rune {
	dst = dst[:0]
	var double, single toggle
	for i := 0; i < len(line); i++ {
		var q rune
		switch r := line[i]; {
		case isDoubleQuote(r):
			q = double.next('“', '”')
		case isSingleZhQuote(r):
			q = single.next('‘', '’')
		default:
			dst = append(dst, r)
			continue
		}
		dst = trimSpace(dst)
		dst = append(dst, q)
		if i+1 < len(line) && line[i+1] == ' ' {
			i++
		}
	}
	return dst
}

// NormalizeEn pairs double quotes as ASCII quotes, with one space outside
// and no space inside of a pair. Curly single quotes become apostrophes.
func NormalizeEn(dst, line []rune) []rune {
	dst = dst[:0]
	var double toggle
	for i := 0; i < len(line); i++ {
		r := line[i]
		switch {
		case isDoubleQuote(r):
			if double.next('“', '”') == '“' {
				if n := len(dst); n > 0 && dst[n-1] != ' ' {
					dst = append(dst, ' ')
				}
				dst = append(dst, '"')
				if i+1 < len(line) && line[i+1] == ' ' {
					i++
				}
			} else {
				dst = trimSpace(dst)
				dst = append(dst, '"')
				if i+1 < len(line) && line[i+1] != ' ' {
					dst = append(dst, ' ')
				}
			}
		case isSingleZhQuote(r):
			dst = append(dst, '\'')
		default:
			dst = append(dst, r)
		}
	}
	return dst
}

func trimSpace(buf []rune) []rune {
	if n := len(buf); n > 0 && buf[n-1] == ' ' {
		return buf[:n-1]
	}
	return buf
}
