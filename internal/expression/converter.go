package expression

import (
	"errors"
	"fmt"
	"strconv"

	stack "github.com/duke-git/lancet/v2/datastructure/stack"
)

// Convert turns an infix token sequence into a postfix sequence using the
// shunting-yard algorithm. "+" and "-" flush every staged operator down to the
// nearest bracket, "*" and "/" flush only staged "*" and "/", so both levels
// associate to the left. Conversion stops at the first error.
func Convert(tokens []Token) (PostfixSequence, error) {
	ops := stack.NewLinkedStack[CalcUnit]()
	out := make(PostfixSequence, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Type {
		case TokenInt:
			v, err := parseLiteral(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, Number(v, tok.Pos))

		case TokenPlus, TokenMinus:
			out = flush(ops, out, func(u CalcUnit) bool {
				return !u.IsOperator(OpLeftBracket)
			})
			ops.Push(Operator(operatorFor(tok.Type), tok.Pos))

		case TokenStar, TokenSlash:
			out = flush(ops, out, func(u CalcUnit) bool {
				return u.IsOperator(OpMul) || u.IsOperator(OpDiv)
			})
			ops.Push(Operator(operatorFor(tok.Type), tok.Pos))

		case TokenLParen:
			ops.Push(Operator(OpLeftBracket, tok.Pos))

		case TokenRParen:
			var err error
			if out, err = closeBracket(ops, out, tok.Pos); err != nil {
				return nil, err
			}

		// Convert also takes token streams built by callers, which may
		// end in the lexer's EOF token or carry a type it never emits.
		case TokenEOF:
			continue

		default:
			return nil, newConvertError(MalformedOperand, tok.Pos, fmt.Sprintf("unexpected token %q", tok.Literal), nil)
		}
	}

	for !ops.IsEmpty() {
		top, err := ops.Pop()
		if err != nil {
			break
		}
		if top.IsOperator(OpLeftBracket) {
			return nil, newConvertError(UnmatchedOpenBracket, top.Pos, "", nil)
		}
		out = append(out, *top)
	}

	return out, nil
}

// flush pops staged operators into out while keep accepts the top of ops.
func flush(ops *stack.LinkedStack[CalcUnit], out PostfixSequence, keep func(CalcUnit) bool) PostfixSequence {
	for {
		top, err := ops.Peak()
		if err != nil || !keep(*top) {
			return out
		}
		unit := *top
		if _, err := ops.Pop(); err != nil {
			return out
		}
		out = append(out, unit)
	}
}

// closeBracket pops staged operators into out up to the nearest bracket
// marker and discards the marker.
func closeBracket(ops *stack.LinkedStack[CalcUnit], out PostfixSequence, pos int) (PostfixSequence, error) {
	for {
		top, err := ops.Pop()
		if err != nil {
			return nil, newConvertError(UnmatchedCloseBracket, pos, "", err)
		}
		if top.IsOperator(OpLeftBracket) {
			return out, nil
		}
		out = append(out, *top)
	}
}

// parseLiteral parses an integer token, rejecting values outside int64.
func parseLiteral(tok Token) (int64, error) {
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, newConvertError(NumericOverflow, tok.Pos, "integer literal "+tok.Literal+" out of range", err)
	}
	return 0, newConvertError(MalformedOperand, tok.Pos, "invalid integer: "+tok.Literal, err)
}

func operatorFor(t TokenType) OperatorKind {
	switch t {
	case TokenMinus:
		return OpSub
	case TokenStar:
		return OpMul
	case TokenSlash:
		return OpDiv
	default:
		return OpPlus
	}
}
