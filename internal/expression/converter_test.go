package expression

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Precedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "7", expected: "7"},
		{input: "2+3", expected: "2 3 +"},
		{input: "2+3*4", expected: "2 3 4 * +"},
		{input: "2*3+4", expected: "2 3 * 4 +"},
		{input: "(2+3)*4", expected: "2 3 + 4 *"},
		{input: "2*(3+4)", expected: "2 3 4 + *"},
		{input: "10-3-2", expected: "10 3 - 2 -"},
		{input: "20/4/5", expected: "20 4 / 5 /"},
		{input: "1-2*3+4", expected: "1 2 3 * - 4 +"},
		{input: "8/2*3", expected: "8 2 / 3 *"},
		{input: "((1+2)*(3+4))", expected: "1 2 + 3 4 + *"},
		{input: "1+2*3-4/2", expected: "1 2 3 * + 4 2 / -"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq, err := Convert(Tokenize(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, seq.String())
		})
	}
}

func TestConvert_NeverEmitsBracketMarker(t *testing.T) {
	for _, input := range []string{"(1)", "((2))*(3)", "(1+(2*(3-(4/5))))"} {
		t.Run(input, func(t *testing.T) {
			seq, err := Convert(Tokenize(input))
			require.NoError(t, err)
			for _, u := range seq {
				assert.False(t, u.IsOperator(OpLeftBracket))
			}
		})
	}
}

func TestConvert_KeepsPositions(t *testing.T) {
	seq, err := Convert(Tokenize("12 + 3"))
	require.NoError(t, err)
	require.Len(t, seq, 3)
	assert.Equal(t, Number(12, 0), seq[0])
	assert.Equal(t, Number(3, 5), seq[1])
	assert.Equal(t, Operator(OpPlus, 3), seq[2])
}

func TestConvert_LeadingOperatorIsDeferredToEvaluation(t *testing.T) {
	seq, err := Convert(Tokenize("*5"))
	require.NoError(t, err)
	assert.Equal(t, "5 *", seq.String())
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		input    string
		kind     ErrorKind
		position int
	}{
		{input: "1+2)", kind: UnmatchedCloseBracket, position: 3},
		{input: ")", kind: UnmatchedCloseBracket, position: 0},
		{input: "(1))", kind: UnmatchedCloseBracket, position: 3},
		{input: "1+(2*3", kind: UnmatchedOpenBracket, position: 2},
		{input: "((1)", kind: UnmatchedOpenBracket, position: 0},
		{input: "(", kind: UnmatchedOpenBracket, position: 0},
		{input: "9223372036854775808", kind: NumericOverflow, position: 0},
		{input: "1 + 99999999999999999999", kind: NumericOverflow, position: 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seq, err := Convert(Tokenize(tt.input))
			require.Error(t, err)
			assert.Nil(t, seq)

			var exprErr *ExpressionError
			require.True(t, errors.As(err, &exprErr))
			assert.Equal(t, tt.kind, exprErr.Kind)
			assert.Equal(t, StageConvert, exprErr.Stage)
			assert.Equal(t, tt.position, exprErr.Position)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestConvert_OverflowWrapsRangeError(t *testing.T) {
	_, err := Convert(Tokenize("18446744073709551616"))
	require.Error(t, err)
	assert.ErrorIs(t, err, NumericOverflow)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestConvert_MaxInt64Literal(t *testing.T) {
	seq, err := Convert(Tokenize("9223372036854775807"))
	require.NoError(t, err)
	require.Len(t, seq, 1)
	assert.Equal(t, int64(9223372036854775807), seq[0].Value)
}

func TestConvert_EmptyInput(t *testing.T) {
	seq, err := Convert(nil)
	require.NoError(t, err)
	assert.Empty(t, seq)

	seq, err = Convert(Tokenize("()"))
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestConvert_IgnoresEOFToken(t *testing.T) {
	tokens := append(Tokenize("1+2"), Token{Type: TokenEOF, Pos: 3})
	seq, err := Convert(tokens)
	require.NoError(t, err)
	assert.Equal(t, "1 2 +", seq.String())
}

func TestConvert_RejectsUnknownToken(t *testing.T) {
	_, err := Convert([]Token{{Type: TokenType(42), Literal: "?", Pos: 7}})
	require.Error(t, err)
	assert.ErrorIs(t, err, MalformedOperand)
}
