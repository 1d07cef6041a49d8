// Package infix evaluates integer arithmetic expressions, with the
// usual precedence and parentheses, as a worked example of binding
// combinators together.
package infix

import (
	"errors"

	"github.com/tef/comb"
)

var ErrDivideByZero = errors.New("divide by zero")

// Statement parses a whole expression, demanding all input is
// consumed.
var Statement comb.Parser[int]

// expression is recursive through parentheses; assigned in init and
// referenced lazily.
var expression comb.Parser[int]

func Eval(input string) (int, error) {
	v, _, err := Statement.ParseString(input)
	return v, err
}

func init() {
	ws := comb.Space()
	exprRef := comb.Lazy(func() comb.Parser[int] { return expression })

	parens := comb.Then(comb.Token("("),
		comb.ThenSkip(exprRef, comb.Then(ws, comb.Token(")"))))

	factor := comb.Then(ws, comb.Number().Or(parens)).Context("factor")

	term := chain(factor, "*", "/")
	expression = chain(term, "+", "-")

	Statement = comb.ThenSkip(expression, comb.Whitespace(true)).Complete()
}

type opApp struct {
	op  string
	rhs int
}

// chain parses operand (op operand)* and folds left, giving each
// precedence level its own repetition.
func chain(operand comb.Parser[int], ops ...string) comb.Parser[int] {
	ws := comb.Space()

	opTok := comb.Token(ops[0])
	for _, o := range ops[1:] {
		opTok = opTok.Or(comb.Token(o))
	}

	tail := comb.Bind(comb.Then(ws, opTok), func(op string) comb.Parser[opApp] {
		return comb.Map(operand, func(rhs int) (opApp, error) {
			return opApp{op: op, rhs: rhs}, nil
		})
	})

	return comb.Bind(operand, func(lhs int) comb.Parser[int] {
		return comb.Map(comb.Many(tail, true), func(apps []opApp) (int, error) {
			acc := lhs
			for _, a := range apps {
				var err error
				acc, err = apply(acc, a)
				if err != nil {
					return 0, err
				}
			}
			return acc, nil
		})
	})
}

func apply(lhs int, a opApp) (int, error) {
	switch a.op {
	case "+":
		return lhs + a.rhs, nil
	case "-":
		return lhs - a.rhs, nil
	case "*":
		return lhs * a.rhs, nil
	}
	if a.rhs == 0 {
		return 0, ErrDivideByZero
	}
	return lhs / a.rhs, nil
}
