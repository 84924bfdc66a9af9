/*
Package cjknorm normalizes text which mixes Chinese and English.

Description

Chinese text freely embeds English words, product names, numbers and code.
Writing conventions for such mixed text are well established but hard to
follow by hand: there should be a space between a Chinese character and a
Latin word, but not between two Chinese characters; Chinese sentences use
full-width punctuation ('，', '（'), English ones use ASCII punctuation; quotes
come in directional pairs; and a row of dots should be a proper ellipsis.

Package cjknorm rewrites a text to follow these conventions, line by line.

	s := cjknorm.Normalize("他们说:\"Go语言很好用\"")
	// s == "他们说：“Go 语言很好用”"

How it works

Each line is trimmed, runs of whitespace are collapsed to a single space and
full-width letters, digits and symbols are folded to ASCII (package
fullwidth). Then the language of the line is guessed from a few letters at
both of its ends (package lang). Lines are normalized either for Chinese or
for English; the language decides about the glyphs of punctuation, quotes
and ellipses.

Normalization proceeds in rounds. A round consists of

	1. correcting spaces between characters (package spacing)
	2. localizing punctuation and brackets (package punct)
	3. pairing quotes (package quote)
	4. collapsing ellipses (package ellipsis)

Rules of later steps may create situations for earlier steps to correct,
therefore rounds are repeated until a line does not change any more. The
number of rounds is capped (see WithMaxRounds), in case rules should fail to
converge for some input. Finally, a single pass inserts spaces between
Chinese letters and Latin letters or digits.

All rules are driven by classification predicates for single characters
(package charclass). Rules never look further than two characters to the
left or to the right, with the exception of bracket pairing.

Lines are independent from each other and may be normalized concurrently.
Normalizers are immutable after creation and safe for concurrent use.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package cjknorm

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultMaxRounds is the default cap for normalization rounds per line.
// Lines usually stabilize after two or three rounds.
const DefaultMaxRounds = 16
