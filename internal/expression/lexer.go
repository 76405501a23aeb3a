package expression

// Lexer tokenizes expression strings.
//
// Characters that do not start a token (whitespace, letters, punctuation)
// are skipped silently.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // current reading position (after current char)
	ch      byte // current char under examination
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character and advances the position.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL signifies EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

// atEOF reports whether the whole input has been consumed. A NUL byte inside
// the input is not EOF, only the end of the string is.
func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipIgnored()

	if l.atEOF() {
		return Token{Type: TokenEOF, Literal: "", Pos: len(l.input)}
	}

	if isDigit(l.ch) {
		return l.readNumber()
	}

	tok := Token{Type: symbolType(l.ch), Literal: string(l.ch), Pos: l.pos}
	l.readChar()
	return tok
}

// skipIgnored skips every character that cannot start a token.
func (l *Lexer) skipIgnored() {
	for !l.atEOF() && !isDigit(l.ch) && symbolType(l.ch) == TokenEOF {
		l.readChar()
	}
}

// readNumber reads a maximal run of decimal digits.
func (l *Lexer) readNumber() Token {
	pos := l.pos
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
	return Token{Type: TokenInt, Literal: l.input[pos:l.pos], Pos: pos}
}

// symbolType maps a symbol character to its token type, TokenEOF if ch is
// not a symbol.
func symbolType(ch byte) TokenType {
	switch ch {
	case '+':
		return TokenPlus
	case '-':
		return TokenMinus
	case '*':
		return TokenStar
	case '/':
		return TokenSlash
	case '(':
		return TokenLParen
	case ')':
		return TokenRParen
	default:
		return TokenEOF
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// Tokenize scans text left to right and returns its tokens in order, without
// the trailing EOF token. Input with no tokens yields an empty slice.
func Tokenize(text string) []Token {
	l := NewLexer(text)
	tokens := make([]Token, 0, len(text)/2)
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
