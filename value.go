package comb

// Raw is implemented by enum-like values whose external form is a
// fixed string.
type Raw interface {
	RawValue() string
}

// RawToken parses v's raw string and yields v.
func RawToken[T Raw](v T) Parser[T] {
	raw := v.RawValue()
	return NewParser(func(c *Cursor) (T, error) {
		if c.SkipPrefix(raw) {
			return v, nil
		}
		var zero T
		return zero, ExpectedTokenError{Expected: OneToken(raw)}
	})
}

// Enumeration tries each case's RawToken in order. The combined
// failure is a single ExpectedTokenError listing every raw value,
// never a nested either-chain: each alternation step collapses to
// its first error, and the aggregate is substituted at the end.
func Enumeration[T Raw](cases ...T) Parser[T] {
	raws := make([]string, len(cases))
	for i, v := range cases {
		raws[i] = v.RawValue()
	}
	combined := ExpectedTokenError{Expected: OneOfTokens(raws...)}
	if len(cases) == 0 {
		return FailWith[T](combined)
	}
	p := RawToken(cases[0])
	for _, v := range cases[1:] {
		p = p.Or(RawToken(v)).FirstError()
	}
	return NewParser(func(c *Cursor) (T, error) {
		v, err := p.run(c)
		if err != nil {
			var zero T
			return zero, combined
		}
		return v, nil
	})
}

// Parsable is the self-describing-type contract: a type that knows
// its own canonical parser. The method must work on a zero value.
type Parsable[T any] interface {
	ComposedParser() Parser[T]
}

// ParseValue parses input completely as a T using its canonical
// parser.
func ParseValue[T Parsable[T]](input string) (T, error) {
	var zero T
	v, _, err := zero.ComposedParser().Complete().ParseString(input)
	if err != nil {
		return zero, err
	}
	return v, nil
}
