// Package ellipsis collapses runs of dots into a canonical ellipsis.
//
// Runs of '.', '。', '·' and '…' are weighed, '…' counting 3 and the others
// counting 1. A run weighing at least Threshold is replaced by exactly one
// canonical ellipsis of the target language ("……" for Chinese, "..." for
// English). Lighter runs, like a single period ending a sentence, are kept.
package ellipsis

import (
	"github.com/npillmayer/cjknorm/lang"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Threshold is the minimum weight of a run to be collapsed.
const Threshold = 3

// Weight returns the contribution of r to an ellipsis run, 0 if r does not
// contribute.
func Weight(r rune) int {
	switch r {
	case '…':
		return 3
	case '.', '。', '·':
		return 1
	}
	return 0
}

// Collapse appends line to dst[:0], with every heavy run of ellipsis
// characters replaced by the canonical ellipsis for language l.
func Collapse(dst, line []rune, l lang.Lang) []rune {
	return CollapseWith(dst, line, []rune(l.Ellipsis()))
}

// CollapseWith is like Collapse, but with an explicit canonical ellipsis.
func CollapseWith(dst, line []rune, ellipsis []rune) []rune {
	dst = dst[:0]
	for i := 0; i < len(line); {
		if Weight(line[i]) == 0 {
			dst = append(dst, line[i])
			i++
			continue
		}
		j, total := i, 0
		for j < len(line) && Weight(line[j]) > 0 {
			total += Weight(line[j])
			j++
		}
		if total >= Threshold {
			T().Debugf("collapse ellipsis run [%d:%d] of weight %d", i, j, total)
			dst = append(dst, ellipsis...)
		} else {
			dst = append(dst, line[i:j]...)
		}
		i = j
	}
	return dst
}
