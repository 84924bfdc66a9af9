/*
Package lang guesses whether a line of mixed text is predominantly Chinese or
predominantly English.

The guess is a heuristic, not a language detector. It samples a small window
of letters at both ends of a line and is biased toward Chinese: a line is
considered English only if English letters outnumber Chinese letters in the
sample by more than a factor of two.
*/
package lang

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/cjknorm/charclass"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Lang is the language a line of text is normalized for.
type Lang int8

// Languages known to the normalizer. Zh is the zero value.
const (
	Zh Lang = iota // Chinese
	En             // English or another Latin-script language
)

// DefaultWindow is the number of letters sampled at each end of a line.
const DefaultWindow = 3

func (l Lang) String() string {
	switch l {
	case Zh:
		return "zh"
	case En:
		return "en"
	}
	return "unknown"
}

// Tag returns the BCP 47 language tag for l.
func (l Lang) Tag() language.Tag {
	if l == En {
		return language.English
	}
	return language.Chinese
}

// Ellipsis returns the canonical ellipsis for l.
func (l Lang) Ellipsis() string {
	if l == En {
		return "..."
	}
	return "……"
}

// Parse returns the language for a name like "zh", "en", "zh-Hans" or "en-GB".
func Parse(s string) (Lang, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return Zh, false
	}
	return match(tag)
}

// Guess guesses the language of a line, using DefaultWindow and falling back
// to Zh for lines without letters.
func Guess(line []rune) Lang {
	return GuessWithWindow(line, DefaultWindow, Zh)
}

// GuessWithWindow guesses the language of a line. The first and last letter
// of line span an interval; window letters are sampled at the start and at
// the end of it, excluding the final letter. Sampling windows may overlap for
// short lines.
//
// If line contains less than two letters, fallback is returned.
func GuessWithWindow(line []rune, window int, fallback Lang) Lang {
	if len(line) == 0 {
		return fallback
	}
	i, j := 0, len(line)-1
	for i < j && !charclass.IsLetter(line[i]) {
		i++
	}
	for i < j && !charclass.IsLetter(line[j]) {
		j--
	}
	if i >= j {
		return fallback
	}
	zh, en := 0, 0
	count := func(r rune) {
		if charclass.IsZhLetter(r) {
			zh++
		} else if charclass.IsEnLetter(r) {
			en++
		}
	}
	for k := i; k < min(i+window, j); k++ {
		count(line[k])
	}
	for k := max(j-window, i); k < j; k++ {
		count(line[k])
	}
	T().Debugf("language sample: zh=%d, en=%d", zh, en)
	if 2*zh >= en {
		return Zh
	}
	return En
}

// ---------------------------------------------------------------------------

// The first language is used as fallback.
var langMatcher = language.NewMatcher([]language.Tag{
	language.Chinese,
	language.English,
})

func match(tag language.Tag) (Lang, bool) {
	_, index, confidence := langMatcher.Match(tag)
	if confidence == language.No {
		return Zh, false
	}
	if index == 1 {
		return En, true
	}
	return Zh, true
}

// FromEnvironment derives a language from the user's locale. Locales which
// match neither Chinese nor English, or a failing locale detection, result in
// Zh.
func FromEnvironment() Lang {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		T().Infof("cannot detect user locale, using %v", Zh)
		return Zh
	}
	T().Infof("detected user locale %v", userLocale)
	l, _ := match(language.Make(userLocale))
	return l
}
