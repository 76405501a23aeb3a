package expression

import (
	"errors"
	"fmt"
)

// ErrorKind classifies expression failures. Each kind is itself an error so
// callers can match with errors.Is(err, expression.DivisionByZero).
type ErrorKind int

const (
	// UnmatchedCloseBracket: ")" with no open bracket staged.
	UnmatchedCloseBracket ErrorKind = iota + 1
	// UnmatchedOpenBracket: "(" still staged after all input is consumed.
	UnmatchedOpenBracket
	// MalformedOperand: an operator is missing a left or right operand.
	MalformedOperand
	// NumericOverflow: a literal or intermediate result exceeds int64.
	NumericOverflow
	// DivisionByZero: "/" applied with a zero right-hand operand.
	DivisionByZero
	// MalformedResult: evaluation left zero or several values on the stack.
	MalformedResult
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnmatchedCloseBracket:
		return "UnmatchedCloseBracket"
	case UnmatchedOpenBracket:
		return "UnmatchedOpenBracket"
	case MalformedOperand:
		return "MalformedOperand"
	case NumericOverflow:
		return "NumericOverflow"
	case DivisionByZero:
		return "DivisionByZero"
	case MalformedResult:
		return "MalformedResult"
	default:
		return "Unknown"
	}
}

// Error implements the error interface.
func (k ErrorKind) Error() string {
	switch k {
	case UnmatchedCloseBracket:
		return "unmatched closing bracket"
	case UnmatchedOpenBracket:
		return "unmatched opening bracket"
	case MalformedOperand:
		return "missing operand"
	case NumericOverflow:
		return "numeric overflow"
	case DivisionByZero:
		return "division by zero"
	case MalformedResult:
		return "malformed result"
	default:
		return "unknown expression error"
	}
}

// Stage names the pipeline stage an error originated from.
type Stage int

const (
	// StageTokenize is reserved: the lexer skips what it cannot read, so no
	// error carries this stage today.
	StageTokenize Stage = iota
	StageConvert
	StageEvaluate
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageConvert:
		return "convert"
	case StageEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// ExpressionError represents an error during expression conversion or evaluation.
type ExpressionError struct {
	Kind     ErrorKind
	Stage    Stage
	Position int    // Position in the expression where the error occurred, -1 if unknown
	Message  string // Error message
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	msg := e.Kind.Error()
	if e.Message != "" {
		msg = msg + ": " + e.Message
	}
	if e.Position >= 0 {
		return fmt.Sprintf("%s error at position %d: %s", e.Stage, e.Position, msg)
	}
	return fmt.Sprintf("%s error: %s", e.Stage, msg)
}

// Unwrap returns the underlying error.
func (e *ExpressionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the error's kind.
func (e *ExpressionError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// NewExpressionError creates a new ExpressionError.
func NewExpressionError(kind ErrorKind, stage Stage, pos int, message string, cause error) *ExpressionError {
	return &ExpressionError{
		Kind:     kind,
		Stage:    stage,
		Position: pos,
		Message:  message,
		Cause:    cause,
	}
}

func newConvertError(kind ErrorKind, pos int, message string, cause error) *ExpressionError {
	return NewExpressionError(kind, StageConvert, pos, message, cause)
}

func newEvalError(kind ErrorKind, pos int, message string) *ExpressionError {
	return NewExpressionError(kind, StageEvaluate, pos, message, nil)
}

// KindOf extracts the ErrorKind carried by err.
func KindOf(err error) (ErrorKind, bool) {
	var exprErr *ExpressionError
	if errors.As(err, &exprErr) {
		return exprErr.Kind, true
	}
	var kind ErrorKind
	if errors.As(err, &kind) {
		return kind, true
	}
	return 0, false
}
