package expression

import (
	"strconv"
	"strings"
)

// OperatorKind enumerates the evaluable operators plus the bracket marker
// used while converting.
type OperatorKind int

const (
	OpPlus OperatorKind = iota
	OpSub
	OpMul
	OpDiv
	OpLeftBracket // staging marker, never part of a PostfixSequence
)

// String returns the operator symbol.
func (o OperatorKind) String() string {
	switch o {
	case OpPlus:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpLeftBracket:
		return "("
	default:
		return "?"
	}
}

// UnitKind tells a number unit from an operator unit.
type UnitKind int

const (
	UnitNumber UnitKind = iota
	UnitOperator
)

// CalcUnit is one element of a postfix sequence.
type CalcUnit struct {
	Kind  UnitKind
	Value int64        // set when Kind == UnitNumber
	Op    OperatorKind // set when Kind == UnitOperator
	Pos   int          // position of the originating token
}

// Number returns a number unit.
func Number(v int64, pos int) CalcUnit {
	return CalcUnit{Kind: UnitNumber, Value: v, Pos: pos}
}

// Operator returns an operator unit.
func Operator(op OperatorKind, pos int) CalcUnit {
	return CalcUnit{Kind: UnitOperator, Op: op, Pos: pos}
}

// IsOperator reports whether u is an operator unit of kind op.
func (u CalcUnit) IsOperator(op OperatorKind) bool {
	return u.Kind == UnitOperator && u.Op == op
}

// String renders the unit as it appears in RPN notation.
func (u CalcUnit) String() string {
	if u.Kind == UnitNumber {
		return strconv.FormatInt(u.Value, 10)
	}
	return u.Op.String()
}

// PostfixSequence is the Reverse Polish form of an expression.
type PostfixSequence []CalcUnit

// String renders the sequence space separated, e.g. "2 3 4 * +".
func (s PostfixSequence) String() string {
	parts := make([]string, len(s))
	for i, u := range s {
		parts[i] = u.String()
	}
	return strings.Join(parts, " ")
}
