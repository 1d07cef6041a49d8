// Package json parses JSON documents with the comb combinators,
// producing plain Go values: map[string]any, []any, string, int,
// float64, bool and nil.
package json

import (
	"strconv"
	"strings"

	"github.com/tef/comb"
)

type keyword string

const (
	kwTrue  keyword = "true"
	kwFalse keyword = "false"
	kwNull  keyword = "null"
)

func (k keyword) RawValue() string { return string(k) }

// Document parses one JSON value with surrounding whitespace and
// demands the whole input is consumed.
var Document comb.Parser[any]

// value is recursive through lists and objects; it is assigned in
// init and referenced lazily.
var value comb.Parser[any]

func Parse(input string) (any, error) {
	v, _, err := Document.ParseString(input)
	return v, err
}

func init() {
	ws := comb.Whitespace(true)
	valueRef := comb.Lazy(func() comb.Parser[any] { return value })

	// separator between list elements and object members
	sep := comb.Then(ws, comb.ThenSkip(comb.Token(","), ws))

	str := stringLiteral()

	list := comb.Map(
		bracketed("[", comb.SepBy(valueRef, sep, true, false), "]"),
		func(vs []any) (any, error) { return vs, nil })

	object := comb.Map(
		bracketed("{", comb.SepBy(member(str, valueRef), sep, true, false), "}"),
		func(ms []objectMember) (any, error) {
			m := make(map[string]any, len(ms))
			for _, kv := range ms {
				m[kv.key] = kv.val
			}
			return m, nil
		})

	literal := comb.Map(
		comb.Enumeration(kwTrue, kwFalse, kwNull),
		func(k keyword) (any, error) {
			switch k {
			case kwTrue:
				return true, nil
			case kwFalse:
				return false, nil
			}
			return nil, nil
		})

	strAny := comb.Map(str, func(s string) (any, error) { return s, nil })

	value = list.
		Or(object).
		Or(strAny).
		Or(number()).
		Or(literal).
		Context("value")

	Document = comb.Then(ws, comb.ThenSkip(valueRef, ws)).Complete()
}

func bracketed[T any](open string, inner comb.Parser[T], closing string) comb.Parser[T] {
	ws := comb.Whitespace(true)
	body := comb.Then(ws, comb.ThenSkip(inner, ws))
	return comb.Then(comb.Token(open), comb.ThenSkip(body, comb.Token(closing)))
}

type objectMember struct {
	key string
	val any
}

func member(key comb.Parser[string], val comb.Parser[any]) comb.Parser[objectMember] {
	ws := comb.Whitespace(true)
	colon := comb.Then(ws, comb.ThenSkip(comb.Token(":"), ws))
	return comb.Bind(comb.ThenSkip(key, colon), func(k string) comb.Parser[objectMember] {
		return comb.Map(val, func(v any) (objectMember, error) {
			return objectMember{key: k, val: v}, nil
		})
	}).Context("object member")
}

func stringLiteral() comb.Parser[string] {
	plain := comb.RuneWhere(func(r rune) bool {
		return r != '"' && r != '\\'
	})

	simpleEscape := comb.Then(comb.Token(`\`),
		comb.Map(comb.RuneWhere(isEscapeCode), decodeEscape))

	hex := comb.RuneWhere(isHexDigit)
	unicodeEscape := comb.Then(comb.Token(`\u`),
		comb.Bind(hex, func(a rune) comb.Parser[rune] {
			return comb.Bind(hex, func(b rune) comb.Parser[rune] {
				return comb.Bind(hex, func(c rune) comb.Parser[rune] {
					return comb.Map(hex, func(d rune) (rune, error) {
						n, err := strconv.ParseUint(string([]rune{a, b, c, d}), 16, 32)
						if err != nil {
							return 0, err
						}
						return rune(n), nil
					})
				})
			})
		}))

	chars := comb.Many(unicodeEscape.Or(simpleEscape).Or(plain), true)
	quoted := comb.Then(comb.Token(`"`), comb.ThenSkip(chars, comb.Token(`"`)))
	return comb.Map(quoted, func(rs []rune) (string, error) {
		return string(rs), nil
	}).Context("string")
}

func isEscapeCode(r rune) bool {
	switch r {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	}
	return false
}

func decodeEscape(r rune) (rune, error) {
	switch r {
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	}
	return r, nil
}

func isHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// number matches the JSON shape: optional sign, integer part,
// optional fraction and exponent. Plain integers come back as int,
// anything with a fraction or exponent as float64.
func number() comb.Parser[any] {
	digits := comb.TakeWhile(false, isDigit)
	sign := comb.Token("-").Default("")
	frac := cat(comb.Token("."), digits).Default("")
	exp := cat(
		comb.Token("e").Or(comb.Token("E")),
		comb.Token("+").Or(comb.Token("-")).Default(""),
		digits,
	).Default("")

	text := cat(sign, digits, frac, exp).Atomic()

	return comb.Map(text, func(s string) (any, error) {
		if strings.ContainsAny(s, ".eE") {
			return strconv.ParseFloat(s, 64)
		}
		return strconv.Atoi(s)
	})
}

// cat runs the parsers in order and concatenates their text.
func cat(ps ...comb.Parser[string]) comb.Parser[string] {
	out := comb.Empty()
	for _, p := range ps {
		next := p
		prev := out
		out = comb.Bind(prev, func(a string) comb.Parser[string] {
			return comb.Map(next, func(b string) (string, error) {
				return a + b, nil
			})
		})
	}
	return out
}
