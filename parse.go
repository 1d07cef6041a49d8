// Package comb builds recursive-descent parsers for textual grammars
// out of small, typed, reusable parsing functions, with controlled
// backtracking and structured failures.
package comb

import (
	"strconv"
	"strings"
	"unicode"
)

// A Parser consumes input from a Cursor and produces a value of type
// T, or a failure. Running a parser advances the cursor it is handed;
// whether a failed run leaves the cursor moved depends on the
// individual parser (see Atomic).
//
// Parser values hold no mutable state. Build a grammar once and run
// it as often as you like, from as many goroutines as you like, as
// long as each run gets its own Cursor.
type Parser[T any] struct {
	run func(*Cursor) (T, error)
}

// NewParser wraps a run function. The function must not capture
// mutable state if the parser is to stay shareable.
func NewParser[T any](run func(*Cursor) (T, error)) Parser[T] {
	return Parser[T]{run: run}
}

// Parse runs the parser against c, advancing it in place.
func (p Parser[T]) Parse(c *Cursor) (T, error) {
	return p.run(c)
}

// ParseString runs the parser against input and returns the value
// together with whatever input was left unconsumed.
func (p Parser[T]) ParseString(input string) (T, string, error) {
	c := NewCursor(input)
	v, err := p.run(&c)
	return v, c.Rest(), err
}

// Succeed returns v without looking at the input.
func Succeed[T any](v T) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		return v, nil
	})
}

// FailWith always fails with err, consuming nothing.
func FailWith[T any](err ParseError) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		var zero T
		return zero, err
	})
}

// Empty succeeds with an empty string, consuming nothing.
func Empty() Parser[string] {
	return Succeed("")
}

// Token matches s as a prefix of the remaining input and consumes
// exactly it. The prefix check is all-or-nothing, so a failed Token
// never moves the cursor.
func Token(s string) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		if c.SkipPrefix(s) {
			return s, nil
		}
		return "", ExpectedTokenError{Expected: OneToken(s)}
	})
}

// TokenSeq matches each token in order and returns their
// concatenation. All-or-nothing: any miss restores the cursor and
// fails with the whole expected sequence.
func TokenSeq(tokens ...string) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		save := *c
		for _, t := range tokens {
			if !c.SkipPrefix(t) {
				*c = save
				return "", ExpectedTokenError{Expected: SequenceOfTokens(tokens...)}
			}
		}
		return strings.Join(tokens, ""), nil
	})
}

// Rune matches exactly the rune r.
func Rune(r rune) Parser[rune] {
	return NewParser(func(c *Cursor) (rune, error) {
		if got, ok := c.Peek(); ok && got == r {
			c.Pop()
			return r, nil
		}
		return 0, ExpectedCharacterError{Char: r}
	})
}

// RuneWhere matches a single rune satisfying pred. Never moves the
// cursor on failure.
func RuneWhere(pred func(rune) bool) Parser[rune] {
	return NewParser(func(c *Cursor) (rune, error) {
		if got, ok := c.Peek(); ok && pred(got) {
			c.Pop()
			return got, nil
		}
		return 0, ExpectedPredicateError{}
	})
}

// TakeWhile consumes the maximal run of runes satisfying pred. An
// empty run fails unless allowEmpty is set; either way an empty run
// consumes nothing.
func TakeWhile(allowEmpty bool, pred func(rune) bool) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		run := c.TakeWhile(pred)
		if run == "" && !allowEmpty {
			return "", ExpectedPredicateError{}
		}
		return run, nil
	})
}

// Until scans rune by rune, trying terminator at each position, and
// returns everything scanned before the position where it matched.
// The terminator attempt itself never eats input when it misses; on a
// match its consumption is kept only when consumeTerminator is set.
//
// When the input runs out first, Until succeeds with the scanned text
// if allowEOF is set and otherwise fails with ExpectedTerminationError.
// Unusually for this package the failure leaves the cursor at end of
// input rather than rewinding; wrap with Atomic if you need the
// cursor back.
func Until[T any](terminator Parser[T], allowEmpty, allowEOF, consumeTerminator bool) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		var scanned strings.Builder
		for {
			save := *c
			if _, err := terminator.run(c); err == nil {
				if scanned.Len() == 0 && !allowEmpty {
					// an empty maximal run consumes nothing,
					// terminator included
					*c = save
					return "", ExpectedPredicateError{}
				}
				if !consumeTerminator {
					*c = save
				}
				return scanned.String(), nil
			}
			*c = save
			r, ok := c.Pop()
			if !ok {
				if !allowEOF {
					return "", ExpectedTerminationError{}
				}
				if scanned.Len() == 0 && !allowEmpty {
					return "", ExpectedPredicateError{}
				}
				return scanned.String(), nil
			}
			scanned.WriteRune(r)
		}
	})
}

// Whitespace consumes the maximal run of whitespace, newlines
// included.
func Whitespace(allowEmpty bool) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		run := c.TakeWhile(unicode.IsSpace)
		if run == "" && !allowEmpty {
			return "", ExpectedWhitespaceError{}
		}
		return run, nil
	})
}

// Space consumes the maximal run of non-newline whitespace, possibly
// empty. It never fails.
func Space() Parser[string] {
	return TakeWhile(true, func(r rune) bool {
		return unicode.IsSpace(r) && !isNewline(r)
	})
}

// Newline consumes optional leading non-newline whitespace and then
// exactly one newline rune, returning both spans joined. If the
// newline is missing the spaces stay consumed.
func Newline() Parser[string] {
	space := Space()
	nl := RuneWhere(isNewline)
	return NewParser(func(c *Cursor) (string, error) {
		spaces, _ := space.run(c)
		r, err := nl.run(c)
		if err != nil {
			return "", err
		}
		return spaces + string(r), nil
	})
}

// Number consumes an optional leading minus sign followed by one or
// more ASCII digits and returns the signed integer they spell. A
// bare minus does not count; failure consumes nothing.
func Number() Parser[int] {
	return NewParser(func(c *Cursor) (int, error) {
		save := *c
		text := ""
		if c.SkipPrefix("-") {
			text = "-"
		}
		digits := c.TakeWhile(isDigit)
		if digits == "" {
			*c = save
			return 0, ExpectedNumberError{}
		}
		n, err := strconv.Atoi(text + digits)
		if err != nil {
			*c = save
			return 0, ExpectedNumberError{}
		}
		return n, nil
	})
}

// AlphaNumeric consumes the maximal run of letters and digits.
func AlphaNumeric(allowEmpty bool) Parser[string] {
	return NewParser(func(c *Cursor) (string, error) {
		run := c.TakeWhile(isAlphaNumeric)
		if run == "" && !allowEmpty {
			return "", ExpectedAlphaNumericError{}
		}
		return run, nil
	})
}

// FromString consumes an alphanumeric word and converts it with
// convert. A rejected word fails with ExpectedTypeError under the
// given type name and restores the cursor.
func FromString[T any](name string, convert func(string) (T, bool)) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		var zero T
		save := *c
		word := c.TakeWhile(isAlphaNumeric)
		if word == "" {
			return zero, ExpectedAlphaNumericError{}
		}
		v, ok := convert(word)
		if !ok {
			*c = save
			return zero, ExpectedTypeError{Name: name}
		}
		return v, nil
	})
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
