package expression

import (
	"fmt"
	"math"

	stack "github.com/duke-git/lancet/v2/datastructure/stack"
)

// Evaluate runs seq on a stack machine and returns the single value left on
// the stack. Operators pop the right-hand operand first.
func Evaluate(seq PostfixSequence) (int64, error) {
	values := stack.NewLinkedStack[int64]()

	for _, u := range seq {
		switch u.Kind {
		case UnitNumber:
			values.Push(u.Value)

		case UnitOperator:
			rhs, err := values.Pop()
			if err != nil {
				return 0, newEvalError(MalformedOperand, u.Pos, fmt.Sprintf("missing right-hand operand for %s", u.Op))
			}
			lhs, err := values.Pop()
			if err != nil {
				return 0, newEvalError(MalformedOperand, u.Pos, fmt.Sprintf("missing left-hand operand for %s", u.Op))
			}
			v, err := apply(u, *lhs, *rhs)
			if err != nil {
				return 0, err
			}
			values.Push(v)

		default:
			return 0, newEvalError(MalformedOperand, u.Pos, fmt.Sprintf("unknown unit kind %d", u.Kind))
		}
	}

	if values.Size() != 1 {
		return 0, newEvalError(MalformedResult, -1, fmt.Sprintf("%d values left on the stack", values.Size()))
	}
	top, err := values.Pop()
	if err != nil {
		return 0, newEvalError(MalformedResult, -1, "empty stack")
	}
	return *top, nil
}

// apply computes lhs op rhs with overflow checking.
func apply(u CalcUnit, lhs, rhs int64) (int64, error) {
	var (
		v  int64
		ok bool
	)
	switch u.Op {
	case OpPlus:
		v, ok = checkedAdd(lhs, rhs)
	case OpSub:
		v, ok = checkedSub(lhs, rhs)
	case OpMul:
		v, ok = checkedMul(lhs, rhs)
	case OpDiv:
		if rhs == 0 {
			return 0, newEvalError(DivisionByZero, u.Pos, fmt.Sprintf("%d / 0", lhs))
		}
		v, ok = checkedDiv(lhs, rhs)
	default:
		return 0, newEvalError(MalformedOperand, u.Pos, fmt.Sprintf("operator %s is not evaluable", u.Op))
	}
	if !ok {
		return 0, newEvalError(NumericOverflow, u.Pos, fmt.Sprintf("%d %s %d", lhs, u.Op, rhs))
	}
	return v, nil
}

func checkedAdd(a, b int64) (int64, bool) {
	c := a + b
	return c, (c > a) == (b > 0)
}

func checkedSub(a, b int64) (int64, bool) {
	c := a - b
	return c, (c < a) == (b > 0)
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	c := a * b
	return c, c/b == a
}

// checkedDiv truncates toward zero; b must be non-zero.
func checkedDiv(a, b int64) (int64, bool) {
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	return a / b, true
}
