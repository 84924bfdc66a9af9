package spacing

import (
	c "github.com/npillmayer/cjknorm/charclass"
)

// Rule is a pair of predicates, one for the rune to the left of a boundary
// and one for the rune to the right of it.
type Rule struct {
	Left, Right c.Predicate
}

// Table is an ordered collection of rules. A table matches a boundary if any
// of its rules matches; evaluation stops at the first matching rule.
type Table []Rule

// Match returns the index of the first rule matching the boundary between
// left and right, or -1.
func (t Table) Match(left, right rune) int {
	for i, rule := range t {
		if rule.Left(left) && rule.Right(right) {
			return i
		}
	}
	return -1
}

// Matches is true if any rule of t matches the boundary between left and right.
func (t Table) Matches(left, right rune) bool {
	return t.Match(left, right) >= 0
}

// RemoveSpace lists the boundaries where a single space is dropped.
var RemoveSpace = Table{
	{c.IsZhChar, c.IsZhChar},
	{c.IsZhChar, c.IsDigit},
	{c.IsDigit, c.IsZhChar},
	{c.IsZhLetter, c.IsEnLetter},
	{c.IsEnLetter, c.IsZhLetter},
	{c.IsZhLetter, c.IsEnRightPunct},
	{c.IsEnLeftPunct, c.IsZhLetter},
	{c.IsZhPunct, c.IsEnChar},
	{c.IsEnChar, c.IsZhPunct},
	{c.IsEnLetter, c.IsEnRightPunct},
	{c.IsEnLeftPunct, c.IsEnLetter},
	{c.IsEnLeftPunct, c.IsEnLeftPunct},
	{c.IsEnLeftPunct, c.IsEnRightPunct},
	{c.IsEnLeftPunct, c.IsEnMiddlePunct},
	{c.IsEnRightPunct, c.IsEnRightPunct},
	{c.IsEnMiddlePunct, c.IsEnRightPunct},
	{c.IsEnMiddlePunct, c.IsEnMiddlePunct},
	{c.IsDigit, c.IsEnRightPunct},
	{c.IsEnLeftPunct, c.IsDigit},
}

// AddSpace lists the boundaries where a space is inserted between two
// adjacent runes.
var AddSpace = Table{
	{c.IsZhLetter, c.IsEnLeftPunct},
	{c.IsZhLetter, c.IsEnMiddlePunct},
	{c.IsEnRightPunct, c.IsZhLetter},
	{c.IsEnMiddlePunct, c.IsZhLetter},
	{c.IsEnLetter, c.IsEnLeftPunct},
	{c.IsEnLetter, c.IsEnMiddlePunct},
	{c.IsEnRightPunct, c.IsEnLetter},
	{c.IsEnMiddlePunct, c.IsEnLetter},
	{c.IsEnRightPunct, c.IsEnLeftPunct},
	{c.IsEnRightPunct, c.IsEnMiddlePunct},
	{c.IsEnMiddlePunct, c.IsEnLeftPunct},
	{c.IsDigit, c.IsEnLeftPunct},
	{c.IsDigit, c.IsEnMiddlePunct},
	{c.IsEnRightPunctDigit, c.IsDigit},
	{c.IsEnMiddlePunct, c.IsDigit},
}

// Minor lists the script changes between letters and digits which get a
// space during the final pass.
var Minor = Table{
	{c.IsZhLetter, c.IsEnLetter},
	{c.IsEnLetter, c.IsZhLetter},
	{c.IsZhLetter, c.IsDigit},
	{c.IsDigit, c.IsZhLetter},
}
