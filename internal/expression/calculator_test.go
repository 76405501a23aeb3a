package expression

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateExpression(t *testing.T) {
	tests := []struct {
		expr     string
		expected int64
	}{
		{expr: "0", expected: 0},
		{expr: "42", expected: 42},
		{expr: "2+3*4", expected: 14},
		{expr: "(2+3)*4", expected: 20},
		{expr: "10-3-2", expected: 5},
		{expr: "20/4/5", expected: 1},
		{expr: "((1+2)*(3+4))", expected: 21},
		{expr: "7/2", expected: 3},
		{expr: "10 + 5 * 2", expected: 20},
		{expr: "8 - 2 * 3", expected: 2},
		{expr: "18 / 3 + 2", expected: 8},
		{expr: "(8 - 2) * (5 - 3)", expected: 12},
		{expr: "(10 + 5) / (3 + 2)", expected: 3},
		{expr: "  1 +\t2\n", expected: 3},
		{expr: "2 apples + 3 pears", expected: 5},
		{expr: "1-2", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			result, err := EvaluateExpression(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEvaluateExpression_Errors(t *testing.T) {
	tests := []struct {
		expr  string
		kind  ErrorKind
		stage Stage
	}{
		{expr: "1+(2*3", kind: UnmatchedOpenBracket, stage: StageConvert},
		{expr: "1+2)", kind: UnmatchedCloseBracket, stage: StageConvert},
		{expr: "5/0", kind: DivisionByZero, stage: StageEvaluate},
		{expr: "5/(3-3)", kind: DivisionByZero, stage: StageEvaluate},
		{expr: "*5", kind: MalformedOperand, stage: StageEvaluate},
		{expr: "1+", kind: MalformedOperand, stage: StageEvaluate},
		{expr: "-1", kind: MalformedOperand, stage: StageEvaluate},
		{expr: "", kind: MalformedResult, stage: StageEvaluate},
		{expr: "   ", kind: MalformedResult, stage: StageEvaluate},
		{expr: "hello", kind: MalformedResult, stage: StageEvaluate},
		{expr: "()", kind: MalformedResult, stage: StageEvaluate},
		{expr: "(1)(2)", kind: MalformedResult, stage: StageEvaluate},
		{expr: "1 2", kind: MalformedResult, stage: StageEvaluate},
		{expr: "99999999999999999999", kind: NumericOverflow, stage: StageConvert},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := EvaluateExpression(tt.expr)
			require.Error(t, err)

			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)

			var exprErr *ExpressionError
			require.True(t, errors.As(err, &exprErr))
			assert.Equal(t, tt.stage, exprErr.Stage)
		})
	}
}

func TestEvaluateExpression_Idempotent(t *testing.T) {
	const expr = "(12+3)*4-6/2"
	first, err := EvaluateExpression(expr)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := EvaluateExpression(expr)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDefaultCalculator(t *testing.T) {
	var calc Calculator = NewCalculator()

	tokens := calc.Tokenize("2*(3+4)")
	assert.Len(t, tokens, 7)

	seq, err := calc.Convert(tokens)
	require.NoError(t, err)
	assert.Equal(t, "2 3 4 + *", seq.String())

	result, err := calc.Evaluate(seq)
	require.NoError(t, err)
	assert.Equal(t, int64(14), result)

	result, err = calc.EvaluateString("2*(3+4)")
	require.NoError(t, err)
	assert.Equal(t, int64(14), result)

	_, err = calc.EvaluateString("1/0")
	assert.ErrorIs(t, err, DivisionByZero)
}

func TestExpressionError_Message(t *testing.T) {
	_, err := EvaluateExpression("5/0")
	require.Error(t, err)
	assert.Equal(t, "evaluate error at position 1: division by zero: 5 / 0", err.Error())

	_, err = EvaluateExpression("")
	require.Error(t, err)
	assert.Equal(t, "evaluate error: malformed result: 0 values left on the stack", err.Error())

	_, err = EvaluateExpression("1+2)")
	require.Error(t, err)
	assert.Equal(t, "convert error at position 3: unmatched closing bracket", err.Error())
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(DivisionByZero)
	assert.True(t, ok)
	assert.Equal(t, DivisionByZero, kind)

	_, ok = KindOf(errors.New("other"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestErrorKind_Strings(t *testing.T) {
	tests := []struct {
		kind    ErrorKind
		name    string
		message string
	}{
		{UnmatchedCloseBracket, "UnmatchedCloseBracket", "unmatched closing bracket"},
		{UnmatchedOpenBracket, "UnmatchedOpenBracket", "unmatched opening bracket"},
		{MalformedOperand, "MalformedOperand", "missing operand"},
		{NumericOverflow, "NumericOverflow", "numeric overflow"},
		{DivisionByZero, "DivisionByZero", "division by zero"},
		{MalformedResult, "MalformedResult", "malformed result"},
		{ErrorKind(0), "Unknown", "unknown expression error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.message, tt.kind.Error())
		})
	}
}

func TestEvaluateExpression_DeepNesting(t *testing.T) {
	const depth = 32000 // a 64KB request body

	tests := []struct {
		name     string
		expr     string
		expected int64
	}{
		{"nested brackets", strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth), 1},
		{"right-nested sums", strings.Repeat("1+(", depth) + "1" + strings.Repeat(")", depth), depth + 1},
		{"long flat chain", strings.Repeat("2*1+", depth) + "0", 2 * depth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			v, err := EvaluateExpression(tt.expr)
			elapsed := time.Since(start)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
			assert.Less(t, elapsed, 2*time.Second, "evaluation time should grow linearly with input length")
		})
	}
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "tokenize", StageTokenize.String())
	assert.Equal(t, "convert", StageConvert.String())
	assert.Equal(t, "evaluate", StageEvaluate.String())
}
