/*
Package charclass classifies code-points for mixed Chinese/English text.

Every predicate in this package looks at a single rune and nothing else.
Classification never depends on position or surrounding text; context
sensitivity is added by the rule tables of packages spacing, punct, quote
and ellipsis, which combine predicates pairwise.

Categories are not mutually exclusive as far as the composite predicates are
concerned: an ASCII comma is an English right punctuation, an English
punctuation and an English character at the same time. Clients who need all
the tags of a rune at once may call Of(r).

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package charclass

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Predicate is a function type for classifying a single code-point.
// Predicates are total and free of side effects.
type Predicate func(rune) bool

// Chinese letters are restricted to the block of CJK Unified Ideographs
// U+4E00..U+9FA5.
var zhLetters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0x4e00, 0x9fa5, 1},
	},
}

var (
	zhLeftPunct   = rangetable.New('（', '【', '《', '￥')
	zhRightPunct  = rangetable.New('，', '。', '？', '！', '：', '；', '）', '】', '》')
	zhMiddlePunct = rangetable.New('·', '～', '—', '…')
	zhQuotes      = rangetable.New('“', '‘', '「', '『', '”', '’', '」', '』')

	enLeftPunct       = rangetable.New('(', '[', '{', '@', '#', '$')
	enRightPunct      = rangetable.New(',', '.', '?', '!', ':', ';', ')', ']', '}', '%')
	enRightPunctDigit = rangetable.New('?', '!', ';', ')', ']', '}', '%')
	enMiddlePunct     = rangetable.New('+', '-', '*', '/', '\\', '=', '<', '>', '_', '^', '&', '|', '~')
	enQuotes          = rangetable.New('\'', '"', '`')
)

// --- Primitive predicates --------------------------------------------------

// IsZhLetter is true for CJK ideographs U+4E00..U+9FA5.
func IsZhLetter(r rune) bool {
	return unicode.Is(zhLetters, r)
}

// IsZhLeftPunct is true for Chinese opening punctuation.
func IsZhLeftPunct(r rune) bool {
	return unicode.Is(zhLeftPunct, r)
}

// IsZhRightPunct is true for Chinese closing punctuation, including
// end-of-clause marks like '，' and '。'.
func IsZhRightPunct(r rune) bool {
	return unicode.Is(zhRightPunct, r)
}

// IsZhMiddlePunct is true for Chinese punctuation which neither opens nor closes.
func IsZhMiddlePunct(r rune) bool {
	return unicode.Is(zhMiddlePunct, r)
}

// IsZhQuote is true for curly and corner-bracket quotes.
func IsZhQuote(r rune) bool {
	return unicode.Is(zhQuotes, r)
}

// IsEnLetter is true for ASCII letters.
func IsEnLetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// IsEnLeftPunct is true for ASCII opening punctuation.
func IsEnLeftPunct(r rune) bool {
	return unicode.Is(enLeftPunct, r)
}

// IsEnRightPunct is true for ASCII closing punctuation.
func IsEnRightPunct(r rune) bool {
	return unicode.Is(enRightPunct, r)
}

// IsEnRightPunctDigit is the subset of IsEnRightPunct which gets separated
// from a following digit. '.', ',' and ':' are missing, as they are part of
// numbers and times.
func IsEnRightPunctDigit(r rune) bool {
	return unicode.Is(enRightPunctDigit, r)
}

// IsEnMiddlePunct is true for operator-like ASCII punctuation.
func IsEnMiddlePunct(r rune) bool {
	return unicode.Is(enMiddlePunct, r)
}

// IsEnQuote is true for ASCII quotes and the backtick.
func IsEnQuote(r rune) bool {
	return unicode.Is(enQuotes, r)
}

// IsDigit is true for ASCII digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIISpace is true for space, tab, line feed, form feed and carriage return.
func IsASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// --- Composite predicates --------------------------------------------------

// IsZhPunct is the union of Chinese left, middle and right punctuation.
func IsZhPunct(r rune) bool {
	return IsZhLeftPunct(r) || IsZhMiddlePunct(r) || IsZhRightPunct(r)
}

// IsZhChar is true for every rune with Chinese script affinity.
func IsZhChar(r rune) bool {
	return IsZhLetter(r) || IsZhPunct(r) || IsZhQuote(r)
}

// IsEnPunct is the union of English left, middle and right punctuation.
func IsEnPunct(r rune) bool {
	return IsEnMiddlePunct(r) || IsEnLeftPunct(r) || IsEnRightPunct(r)
}

// IsEnChar is true for every rune with Latin script affinity.
func IsEnChar(r rune) bool {
	return IsEnLetter(r) || IsEnPunct(r) || IsEnQuote(r)
}

// IsLetter is true for Chinese and English letters.
func IsLetter(r rune) bool {
	return IsZhLetter(r) || IsEnLetter(r)
}

// IsPunct is true for Chinese and English punctuation.
func IsPunct(r rune) bool {
	return IsZhPunct(r) || IsEnPunct(r)
}

// --- Category tags ---------------------------------------------------------

// Category is a set of primitive classification tags for a rune.
type Category uint16

// Primitive tags, one for each primitive predicate.
const (
	ZhLetter Category = 1 << iota
	ZhLeftPunct
	ZhRightPunct
	ZhMiddlePunct
	ZhQuote
	EnLetter
	EnLeftPunct
	EnRightPunct
	EnRightPunctDigit
	EnMiddlePunct
	EnQuote
	Digit
)

// None is the empty category, assigned to runes we know nothing about.
const None Category = 0

var categoryTests = []struct {
	cat  Category
	name string
	is   Predicate
}{
	{ZhLetter, "ZhLetter", IsZhLetter},
	{ZhLeftPunct, "ZhLeftPunct", IsZhLeftPunct},
	{ZhRightPunct, "ZhRightPunct", IsZhRightPunct},
	{ZhMiddlePunct, "ZhMiddlePunct", IsZhMiddlePunct},
	{ZhQuote, "ZhQuote", IsZhQuote},
	{EnLetter, "EnLetter", IsEnLetter},
	{EnLeftPunct, "EnLeftPunct", IsEnLeftPunct},
	{EnRightPunct, "EnRightPunct", IsEnRightPunct},
	{EnRightPunctDigit, "EnRightPunctDigit", IsEnRightPunctDigit},
	{EnMiddlePunct, "EnMiddlePunct", IsEnMiddlePunct},
	{EnQuote, "EnQuote", IsEnQuote},
	{Digit, "Digit", IsDigit},
}

// Of returns all primitive tags which apply to r.
func Of(r rune) Category {
	var c Category
	for _, t := range categoryTests {
		if t.is(r) {
			c |= t.cat
		}
	}
	return c
}

// Has checks if all tags of other are set in c.
func (c Category) Has(other Category) bool {
	return c&other == other && other != None
}

func (c Category) String() string {
	if c == None {
		return "None"
	}
	var names []string
	for _, t := range categoryTests {
		if c&t.cat != 0 {
			names = append(names, t.name)
		}
	}
	return strings.Join(names, "|")
}
