package comb

// Unit is the value of a parser run purely for its consumption.
type Unit = struct{}

// Atomic makes the parser all-or-nothing: any failure restores the
// cursor to where it was before the run, then re-raises the same
// error. This is the one mechanism for turning a partially-consuming
// compound parser into a backtrackable one.
func (p Parser[T]) Atomic() Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		save := *c
		v, err := p.run(c)
		if err != nil {
			*c = save
		}
		return v, err
	})
}

// Or tries p and, if it fails, q on the cursor as p left it. When
// both branches fail the cursor is restored to the state before the
// whole alternative ran and the two failures combine as EitherError.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		var zero T
		save := *c
		v, err1 := p.run(c)
		if err1 == nil {
			return v, nil
		}
		v, err2 := q.run(c)
		if err2 == nil {
			return v, nil
		}
		*c = save
		pe1, ok1 := err1.(ParseError)
		pe2, ok2 := err2.(ParseError)
		if ok1 && ok2 {
			return zero, EitherError{First: pe1, Second: pe2}
		}
		// errors from outside the union pass through uncombined
		if !ok1 {
			return zero, err1
		}
		return zero, err2
	})
}

// Context labels failures with the grammar region they happened in.
// Errors from outside the ParseError union pass through unwrapped.
func (p Parser[T]) Context(label string) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		v, err := p.run(c)
		if err != nil {
			if pe, ok := err.(ParseError); ok {
				return v, ContextError{Label: label, Inner: pe}
			}
		}
		return v, err
	})
}

// Complete fails with IncompleteError if any input is left after p
// succeeds. The check is post-hoc: p's consumption is kept either
// way.
func (p Parser[T]) Complete() Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		v, err := p.run(c)
		if err != nil {
			return v, err
		}
		if !c.Empty() {
			var zero T
			return zero, IncompleteError{Remaining: c.Rest()}
		}
		return v, nil
	})
}

// FirstError collapses an EitherError failure to its first cause.
// Any other failure passes through unchanged.
func (p Parser[T]) FirstError() Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		v, err := p.run(c)
		if e, ok := err.(EitherError); ok {
			return v, e.First
		}
		return v, err
	})
}

// SecondError collapses an EitherError failure to its second cause.
func (p Parser[T]) SecondError() Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		v, err := p.run(c)
		if e, ok := err.(EitherError); ok {
			return v, e.Second
		}
		return v, err
	})
}

// Default runs p and substitutes v when it fails, restoring the
// cursor first. Never raises.
func (p Parser[T]) Default(v T) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		save := *c
		got, err := p.run(c)
		if err != nil {
			*c = save
			return v, nil
		}
		return got, nil
	})
}

// Map applies transform to the parsed value. A failing transform
// propagates its error as-is, outside the ParseError union; the
// wrapped parser's consumption stands in both cases.
func Map[A, B any](p Parser[A], transform func(A) (B, error)) Parser[B] {
	return NewParser(func(c *Cursor) (B, error) {
		var zero B
		a, err := p.run(c)
		if err != nil {
			return zero, err
		}
		return transform(a)
	})
}

// Bind runs p, feeds its value to f, and runs the parser f returns.
// The two steps are atomic: a failure at either restores the cursor
// to before the bind.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return NewParser(func(c *Cursor) (B, error) {
		var zero B
		save := *c
		a, err := p.run(c)
		if err != nil {
			*c = save
			return zero, err
		}
		b, err := f(a).run(c)
		if err != nil {
			*c = save
			return zero, err
		}
		return b, nil
	})
}

// Then runs both parsers and keeps the second value, atomically.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return NewParser(func(c *Cursor) (B, error) {
		var zero B
		save := *c
		if _, err := p.run(c); err != nil {
			*c = save
			return zero, err
		}
		b, err := q.run(c)
		if err != nil {
			*c = save
			return zero, err
		}
		return b, nil
	})
}

// ThenSkip runs both parsers and keeps the first value, atomically.
func ThenSkip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return NewParser(func(c *Cursor) (A, error) {
		var zero A
		save := *c
		a, err := p.run(c)
		if err != nil {
			*c = save
			return zero, err
		}
		if _, err := q.run(c); err != nil {
			*c = save
			return zero, err
		}
		return a, nil
	})
}

// Optional runs p and returns a pointer to its value, or nil if it
// failed. Failure always restores the cursor, whatever the inner
// parser did with it, and is never raised.
func Optional[T any](p Parser[T]) Parser[*T] {
	return NewParser(func(c *Cursor) (*T, error) {
		save := *c
		v, err := p.run(c)
		if err != nil {
			*c = save
			return nil, nil
		}
		return &v, nil
	})
}

// Discard runs p for its consumption only. Failures are swallowed
// and, unlike Optional, the cursor is NOT rewound: whatever the
// failing parser consumed stays consumed.
func Discard[T any](p Parser[T]) Parser[Unit] {
	return NewParser(func(c *Cursor) (Unit, error) {
		p.run(c)
		return Unit{}, nil
	})
}

// Many runs p repeatedly until it fails, collecting the values. The
// final failed attempt's consumption is not rolled back; give the
// element parser its own Atomic if it needs one. With no elements
// parsed, the last error propagates unless allowEmpty is set.
//
// A run that succeeds without consuming ends the loop, so a
// zero-width always-succeeding element terminates instead of
// spinning.
func Many[T any](p Parser[T], allowEmpty bool) Parser[[]T] {
	return NewParser(func(c *Cursor) ([]T, error) {
		out := []T{}
		for {
			before := *c
			v, err := p.run(c)
			if err != nil {
				if len(out) == 0 && !allowEmpty {
					return nil, err
				}
				return out, nil
			}
			out = append(out, v)
			if c.Equal(before) {
				return out, nil
			}
		}
	})
}

// SepBy parses elements joined by sep. A failed first element yields
// the empty list when allowEmpty is set and propagates otherwise. A
// failed separator ends the list cleanly, with the separator attempt
// rewound. A failed element after a successful separator ends the
// list when allowTrailing is set, leaving the cursor after the
// swallowed separator; otherwise the element's error propagates with
// the separator still consumed.
func SepBy[T, S any](elem Parser[T], sep Parser[S], allowEmpty, allowTrailing bool) Parser[[]T] {
	return NewParser(func(c *Cursor) ([]T, error) {
		out := []T{}
		v, err := elem.run(c)
		if err != nil {
			if allowEmpty {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
		for !c.Empty() {
			save := *c
			if _, err := sep.run(c); err != nil {
				*c = save
				break
			}
			if c.Empty() {
				// exhausted right after the separator
				if !allowTrailing {
					*c = save
				}
				break
			}
			v, err := elem.run(c)
			if err != nil {
				if allowTrailing {
					return out, nil
				}
				return nil, err
			}
			out = append(out, v)
			if c.Equal(save) {
				break
			}
		}
		return out, nil
	})
}

// CommaSeparated is SepBy with the default separator, a comma
// optionally followed by whitespace.
func CommaSeparated[T any](elem Parser[T], allowEmpty, allowTrailing bool) Parser[[]T] {
	sep := ThenSkip(Token(","), Whitespace(true))
	return SepBy(elem, sep, allowEmpty, allowTrailing)
}

// Lazy defers building the parser until the first run, so grammars
// can refer to rules defined later or to themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return NewParser(func(c *Cursor) (T, error) {
		return build().run(c)
	})
}
