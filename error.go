package comb

import (
	"fmt"
	"strings"
)

// ParseError is the closed set of parse failures. Every failure a
// parser can raise is one of the concrete types below; combinators
// never invent new kinds, they wrap (ContextError), combine
// (EitherError), collapse, or swallow the ones primitives raise.
type ParseError interface {
	error
	parseError()
}

// TokenExpectation describes what a token parser was looking for:
// one literal, one of several, or several in order.
type TokenExpectation struct {
	kind   expectKind
	tokens []string
}

type expectKind int

const (
	expectOne expectKind = iota
	expectOneOf
	expectSequence
)

func OneToken(s string) TokenExpectation {
	return TokenExpectation{kind: expectOne, tokens: []string{s}}
}

func OneOfTokens(s ...string) TokenExpectation {
	return TokenExpectation{kind: expectOneOf, tokens: s}
}

func SequenceOfTokens(s ...string) TokenExpectation {
	return TokenExpectation{kind: expectSequence, tokens: s}
}

// Tokens returns the expected literals. For the One kind the slice
// has a single element.
func (e TokenExpectation) Tokens() []string {
	return append([]string(nil), e.tokens...)
}

func (e TokenExpectation) String() string {
	quoted := make([]string, len(e.tokens))
	for i, t := range e.tokens {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	switch e.kind {
	case expectOneOf:
		return "one of " + strings.Join(quoted, ", ")
	case expectSequence:
		return "sequence " + strings.Join(quoted, " ")
	default:
		return quoted[0]
	}
}

type ExpectedCharacterError struct {
	Char rune
}

type ExpectedWhitespaceError struct{}

type ExpectedTerminationError struct{}

type ExpectedTokenError struct {
	Expected TokenExpectation
}

type ExpectedTypeError struct {
	Name string
}

type ExpectedNumberError struct{}

type ExpectedAlphaNumericError struct{}

// ExpectedPredicateError is raised when a predicate-driven primitive
// matched nothing.
type ExpectedPredicateError struct{}

// IncompleteError is raised by Complete when input is left over after
// an otherwise successful parse. Remaining is a copy of the leftover
// text, not a live view of the cursor.
type IncompleteError struct {
	Remaining string
}

// ContextError labels a failure with the grammar region it happened
// in. Contexts nest to arbitrary depth.
type ContextError struct {
	Label string
	Inner ParseError
}

// EitherError is the combined failure of a two-branch alternation.
type EitherError struct {
	First  ParseError
	Second ParseError
}

func (ExpectedCharacterError) parseError()    {}
func (ExpectedWhitespaceError) parseError()   {}
func (ExpectedTerminationError) parseError()  {}
func (ExpectedTokenError) parseError()        {}
func (ExpectedTypeError) parseError()         {}
func (ExpectedNumberError) parseError()       {}
func (ExpectedAlphaNumericError) parseError() {}
func (ExpectedPredicateError) parseError()    {}
func (IncompleteError) parseError()           {}
func (ContextError) parseError()              {}
func (EitherError) parseError()               {}

func (e ExpectedCharacterError) Error() string {
	return fmt.Sprintf("expected character %q", e.Char)
}

func (e ExpectedWhitespaceError) Error() string {
	return "expected whitespace"
}

func (e ExpectedTerminationError) Error() string {
	return "expected termination sequence"
}

func (e ExpectedTokenError) Error() string {
	return "expected token " + e.Expected.String()
}

func (e ExpectedTypeError) Error() string {
	return "expected " + e.Name
}

func (e ExpectedNumberError) Error() string {
	return "expected number"
}

func (e ExpectedAlphaNumericError) Error() string {
	return "expected alphanumeric string"
}

func (e ExpectedPredicateError) Error() string {
	return "expected characters satisfying predicate"
}

func (e IncompleteError) Error() string {
	return fmt.Sprintf("incomplete parse, %q left over", e.Remaining)
}

func (e ContextError) Error() string {
	return fmt.Sprintf("in %v:\n%v", e.Label, indent(e.Inner.Error()))
}

func (e EitherError) Error() string {
	return fmt.Sprintf("all alternatives failed:\n%v\n%v",
		indent(e.First.Error()), indent(e.Second.Error()))
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
