package comb

import (
	"strconv"
	"testing"
	"unicode"

	"github.com/google/go-cmp/cmp"
)

var cmpTokens = cmp.AllowUnexported(TokenExpectation{})

func TestToken(t *testing.T) {
	v, rest, err := Token("let").ParseString("let x")
	if err != nil || v != "let" || rest != " x" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}

	_, rest, err = Token("let").ParseString("lap")
	if rest != "lap" {
		t.Error("failed token moved the cursor")
	}
	want := ExpectedTokenError{Expected: OneToken("let")}
	if diff := cmp.Diff(want, err, cmpTokens); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
}

func TestTokenSeq(t *testing.T) {
	v, rest, err := TokenSeq("foo", "bar").ParseString("foobarbaz")
	if err != nil || v != "foobar" || rest != "baz" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}

	_, rest, err = TokenSeq("foo", "bar").ParseString("foobaz")
	if rest != "foobaz" {
		t.Error("failed sequence left the cursor moved")
	}
	want := ExpectedTokenError{Expected: SequenceOfTokens("foo", "bar")}
	if diff := cmp.Diff(want, err, cmpTokens); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
}

func TestRune(t *testing.T) {
	v, rest, err := Rune('(').ParseString("(x")
	if err != nil || v != '(' || rest != "x" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
	_, rest, err = Rune('(').ParseString("x")
	if rest != "x" {
		t.Error("failed rune moved the cursor")
	}
	if diff := cmp.Diff(ExpectedCharacterError{Char: '('}, err); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
}

func TestRuneWhere(t *testing.T) {
	p := RuneWhere(unicode.IsUpper)
	if v, rest, err := p.ParseString("Ab"); err != nil || v != 'A' || rest != "b" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
	_, rest, err := p.ParseString("ab")
	if rest != "ab" {
		t.Error("failed predicate moved the cursor")
	}
	if _, ok := err.(ExpectedPredicateError); !ok {
		t.Errorf("got %v", err)
	}
}

func TestTakeWhile(t *testing.T) {
	p := TakeWhile(false, unicode.IsLetter)
	if v, rest, err := p.ParseString("abc123"); err != nil || v != "abc" || rest != "123" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
	if _, _, err := p.ParseString("123"); err == nil {
		t.Error("empty run should fail when not allowed")
	}
	if v, _, err := TakeWhile(true, unicode.IsLetter).ParseString("123"); err != nil || v != "" {
		t.Errorf("allowEmpty run got %q, %v", v, err)
	}
}

func TestUntil(t *testing.T) {
	p := Until(Token("--"), false, false, true)
	if v, rest, err := p.ParseString("abc--def"); err != nil || v != "abc" || rest != "def" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}

	keep := Until(Token("--"), false, false, false)
	if v, rest, err := keep.ParseString("abc--def"); err != nil || v != "abc" || rest != "--def" {
		t.Errorf("unconsumed terminator got %q, %q, %v", v, rest, err)
	}

	// no terminator, EOF allowed
	if v, rest, err := Until(Token("--"), false, true, true).ParseString("abc"); err != nil || v != "abc" || rest != "" {
		t.Errorf("allowEOF got %q, %q, %v", v, rest, err)
	}

	// no terminator, EOF not allowed: fails at end of input, no rewind
	_, rest, err := p.ParseString("abc")
	if _, ok := err.(ExpectedTerminationError); !ok {
		t.Errorf("got %v", err)
	}
	if rest != "" {
		t.Errorf("failed until should leave the cursor at end of input, got %q", rest)
	}

	// immediate terminator, empty not allowed: fails with nothing
	// consumed, the terminator included
	_, rest, err = p.ParseString("--x")
	if _, ok := err.(ExpectedPredicateError); !ok {
		t.Errorf("empty scan got %v", err)
	}
	if rest != "--x" {
		t.Errorf("empty-scan failure should consume nothing, rest is %q", rest)
	}
}

func TestWhitespace(t *testing.T) {
	if v, rest, err := Whitespace(false).ParseString(" \t\nx"); err != nil || v != " \t\n" || rest != "x" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
	_, rest, err := Whitespace(false).ParseString("x")
	if _, ok := err.(ExpectedWhitespaceError); !ok {
		t.Errorf("got %v", err)
	}
	if rest != "x" {
		t.Error("failed whitespace moved the cursor")
	}
	if _, _, err := Whitespace(true).ParseString("x"); err != nil {
		t.Errorf("allowEmpty whitespace failed: %v", err)
	}
}

func TestSpaceExcludesNewline(t *testing.T) {
	if v, rest, err := Space().ParseString("  \t\nx"); err != nil || v != "  \t" || rest != "\nx" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
}

func TestNewline(t *testing.T) {
	if v, rest, err := Newline().ParseString("  \nrest"); err != nil || v != "  \n" || rest != "rest" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}

	// missing newline: spaces stay consumed, predicate failure raised
	_, rest, err := Newline().ParseString("  x")
	if _, ok := err.(ExpectedPredicateError); !ok {
		t.Errorf("got %v", err)
	}
	if rest != "x" {
		t.Errorf("expected consumed spaces to stay consumed, rest is %q", rest)
	}
}

func TestNumber(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		rest string
	}{
		{"42", 42, ""},
		{"-7x", -7, "x"},
		{"007", 7, ""},
		{"123abc", 123, "abc"},
	}
	for _, tc := range cases {
		n, rest, err := Number().ParseString(tc.in)
		if err != nil || n != tc.n || rest != tc.rest {
			t.Errorf("%q: got %v, %q, %v", tc.in, n, rest, err)
		}
	}

	for _, in := range []string{"", "x", "-", "-x"} {
		_, rest, err := Number().ParseString(in)
		if _, ok := err.(ExpectedNumberError); !ok {
			t.Errorf("%q: got %v", in, err)
		}
		if rest != in {
			t.Errorf("%q: failed number consumed input, rest is %q", in, rest)
		}
	}
}

func TestAlphaNumeric(t *testing.T) {
	if v, rest, err := AlphaNumeric(false).ParseString("ab12-"); err != nil || v != "ab12" || rest != "-" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
	_, _, err := AlphaNumeric(false).ParseString("-")
	if _, ok := err.(ExpectedAlphaNumericError); !ok {
		t.Errorf("got %v", err)
	}
}

func TestFromString(t *testing.T) {
	hex := FromString("hex number", func(s string) (int64, bool) {
		n, err := strconv.ParseInt(s, 16, 64)
		return n, err == nil
	})

	if v, rest, err := hex.ParseString("ff;"); err != nil || v != 255 || rest != ";" {
		t.Errorf("got %v, %q, %v", v, rest, err)
	}

	_, rest, err := hex.ParseString("zz;")
	if diff := cmp.Diff(ExpectedTypeError{Name: "hex number"}, err); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%v", diff)
	}
	if rest != "zz;" {
		t.Error("rejected word should be rewound")
	}

	_, _, err = hex.ParseString(";")
	if _, ok := err.(ExpectedAlphaNumericError); !ok {
		t.Errorf("got %v", err)
	}
}

func TestSucceedFailEmpty(t *testing.T) {
	if v, rest, err := Succeed(9).ParseString("abc"); err != nil || v != 9 || rest != "abc" {
		t.Errorf("got %v, %q, %v", v, rest, err)
	}
	_, rest, err := FailWith[int](ExpectedNumberError{}).ParseString("abc")
	if err == nil || rest != "abc" {
		t.Errorf("got %q, %v", rest, err)
	}
	if v, rest, err := Empty().ParseString("abc"); err != nil || v != "" || rest != "abc" {
		t.Errorf("got %q, %q, %v", v, rest, err)
	}
}
