// Package expression provides integer arithmetic expression tokenizing,
// infix-to-postfix conversion and postfix evaluation.
package expression

// TokenType represents the type of a token.
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenInt // run of decimal digits

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenStar  // *
	TokenSlash // /

	// Delimiters
	TokenLParen // (
	TokenRParen // )
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenInt:
		return "INT"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "*"
	case TokenSlash:
		return "/"
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "UNKNOWN"
	}
}

// IsSymbol reports whether the token type is one of the six symbol tokens.
func (t TokenType) IsSymbol() bool {
	return t >= TokenPlus && t <= TokenRParen
}

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // Position in the input string
}
