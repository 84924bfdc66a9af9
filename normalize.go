package cjknorm

import (
	"slices"
	"strings"

	"github.com/npillmayer/cjknorm/ellipsis"
	"github.com/npillmayer/cjknorm/fullwidth"
	"github.com/npillmayer/cjknorm/lang"
	"github.com/npillmayer/cjknorm/punct"
	"github.com/npillmayer/cjknorm/quote"
	"github.com/npillmayer/cjknorm/spacing"
)

// Normalizer normalizes lines of mixed Chinese/English text.
// A Normalizer is immutable after creation and safe for concurrent use.
type Normalizer struct {
	window    int       // sample size for language guessing
	maxRounds int       // cap for the fixed-point loop
	fallback  lang.Lang // language for lines without letters
	forced    bool      // skip language guessing?
	language  lang.Lang // language to use if forced
	separator string    // inserted between output lines
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithWindow sets the number of letters sampled at each end of a line to
// guess its language. Values < 1 are ignored.
func WithWindow(n int) Option {
	return func(nz *Normalizer) {
		if n > 0 {
			nz.window = n
		}
	}
}

// WithMaxRounds caps the number of normalization rounds per line.
// Values < 1 are ignored.
func WithMaxRounds(n int) Option {
	return func(nz *Normalizer) {
		if n > 0 {
			nz.maxRounds = n
		}
	}
}

// WithFallback sets the language for lines which do not contain at least two
// letters. The default is lang.Zh.
func WithFallback(l lang.Lang) Option {
	return func(nz *Normalizer) {
		nz.fallback = l
	}
}

// WithLanguage switches off language guessing and normalizes every line for l.
func WithLanguage(l lang.Lang) Option {
	return func(nz *Normalizer) {
		nz.forced = true
		nz.language = l
	}
}

// WithLineBreaks makes Normalize insert sep between output lines.
// By default, lines are concatenated without a separator.
func WithLineBreaks(sep string) Option {
	return func(nz *Normalizer) {
		nz.separator = sep
	}
}

// New creates a Normalizer. Without options, it behaves like the package
// level function Normalize.
func New(opts ...Option) *Normalizer {
	nz := &Normalizer{
		window:    lang.DefaultWindow,
		maxRounds: DefaultMaxRounds,
		fallback:  lang.Zh,
	}
	for _, opt := range opts {
		opt(nz)
	}
	return nz
}

var defaultNormalizer = New()

// Normalize normalizes every line of content and concatenates the results.
// Line terminators ("\n" or "\r\n") are consumed and not re-inserted; clients
// who want to keep them should use a Normalizer with option WithLineBreaks,
// or a Transformer.
func Normalize(content string) string {
	return defaultNormalizer.Normalize(content)
}

// ConvertFullWidthChar folds a single full-width character to ASCII.
// The token may as well be one of the digraphs "‘‘" or "’’", which are
// converted to curly double quotes. Other tokens are returned unchanged.
func ConvertFullWidthChar(token string) string {
	return fullwidth.Convert(token)
}

// Normalize normalizes every line of content, see package function Normalize.
func (nz *Normalizer) Normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content) + len(content)/8)
	for i, line := range splitLines(content) {
		if i > 0 {
			b.WriteString(nz.separator)
		}
		b.WriteString(nz.NormalizeLine(line))
	}
	return b.String()
}

// NormalizeLine normalizes a single line. line should not contain line breaks;
// if it does, they are treated like any other whitespace.
func (nz *Normalizer) NormalizeLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	buf := borrowBuffer()
	defer buf.release()
	for i, f := range fields {
		if i > 0 {
			buf.cur = append(buf.cur, ' ')
		}
		for _, r := range f {
			buf.cur = fullwidth.AppendFold(buf.cur, r)
		}
	}
	l := nz.language
	if !nz.forced {
		l = lang.GuessWithWindow(buf.cur, nz.window, nz.fallback)
	}
	CT().Debugf("normalize line for %v: %q", l, string(buf.cur))
	nz.stabilize(buf, l)
	buf.x = spacing.CorrectMinor(buf.x, buf.cur)
	return string(buf.x)
}

// stabilize applies normalization rounds to buf.cur until it does not change
// any more, or until the maximum number of rounds is reached. It returns false
// if the line did not stabilize within the limit.
func (nz *Normalizer) stabilize(buf *lineBuffer, l lang.Lang) bool {
	for n := 1; n <= nz.maxRounds; n++ {
		if nz.round(buf, l) {
			CT().Debugf("line stable after %d round(s)", n)
			return true
		}
		buf.cur, buf.y = buf.y, buf.cur
	}
	// one more round tells if the last one reached the fixed point
	if nz.round(buf, l) {
		CT().Debugf("line stable after %d round(s)", nz.maxRounds)
		return true
	}
	CT().Errorf("line did not stabilize after %d rounds: %q", nz.maxRounds, string(buf.cur))
	return false
}

// round applies one round of normalization passes to buf.cur, leaving the
// result in buf.y. buf.cur is not modified. round returns true if the result
// equals buf.cur.
func (nz *Normalizer) round(buf *lineBuffer, l lang.Lang) bool {
	buf.x = spacing.Correct(buf.x, buf.cur)
	buf.y = punct.Localize(buf.y, buf.x, l)
	buf.x = quote.Normalize(buf.x, buf.y, l)
	buf.y = ellipsis.Collapse(buf.y, buf.x, l)
	return slices.Equal(buf.cur, buf.y)
}

// splitLines splits s at "\n", removing a trailing "\r" from every line.
// A final line terminator does not start an additional empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
