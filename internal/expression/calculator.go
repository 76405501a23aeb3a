package expression

// Calculator evaluates arithmetic expressions.
type Calculator interface {
	// Tokenize splits an expression line into tokens.
	Tokenize(line string) []Token

	// Convert turns infix tokens into a postfix sequence.
	Convert(tokens []Token) (PostfixSequence, error)

	// Evaluate computes the value of a postfix sequence.
	Evaluate(seq PostfixSequence) (int64, error)

	// EvaluateString runs the whole pipeline on one line.
	EvaluateString(line string) (int64, error)
}

// DefaultCalculator is the default implementation of Calculator. It holds no
// state, so one value may be shared by concurrent callers.
type DefaultCalculator struct{}

// NewCalculator creates a new DefaultCalculator.
func NewCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

// Tokenize splits an expression line into tokens.
func (c *DefaultCalculator) Tokenize(line string) []Token {
	return Tokenize(line)
}

// Convert turns infix tokens into a postfix sequence.
func (c *DefaultCalculator) Convert(tokens []Token) (PostfixSequence, error) {
	return Convert(tokens)
}

// Evaluate computes the value of a postfix sequence.
func (c *DefaultCalculator) Evaluate(seq PostfixSequence) (int64, error) {
	return Evaluate(seq)
}

// EvaluateString runs the whole pipeline on one line.
func (c *DefaultCalculator) EvaluateString(line string) (int64, error) {
	return EvaluateExpression(line)
}

// EvaluateExpression tokenizes, converts and evaluates line, returning the
// integer result or the first *ExpressionError encountered.
func EvaluateExpression(line string) (int64, error) {
	seq, err := Convert(Tokenize(line))
	if err != nil {
		return 0, err
	}
	return Evaluate(seq)
}
