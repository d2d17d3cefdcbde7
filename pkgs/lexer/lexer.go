// Package lexer converts mini-language source text into a finite token
// sequence terminated by an EOF token.
//
// Characters that match no lexical rule are not silently dropped: they
// produce an ILLEGAL token carrying the offending text, which downstream
// parsing treats as a syntax failure for the enclosing segment.
package lexer

// Character classification lookup tables, indexed by byte
var (
	isWhitespace [256]bool
	isLetter     [256]bool
	isDigit      [256]bool
	isIdentPart  [256]bool
)

func init() {
	for i := 0; i < 256; i++ {
		ch := byte(i)
		isWhitespace[i] = ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
		isLetter[i] = ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
		isDigit[i] = '0' <= ch && ch <= '9'
		isIdentPart[i] = isLetter[i] || isDigit[i]
	}
}

// singleCharTokens maps punctuation bytes directly to their token kinds.
// '-' is absent: it needs lookahead for negative numbers and arrows.
var singleCharTokens = map[byte]TokenType{
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	',': COMMA,
	':': COLON,
	'=': EQUALS,
	';': SEMICOLON,
	'+': PLUS,
	'*': STAR,
	'/': SLASH,
}

// Lexer tokenizes mini-language source with a single forward byte cursor.
type Lexer struct {
	input    []byte
	position int // current byte offset
	readPos  int // next byte offset
	ch       byte
}

// New creates a new lexer over the given input.
func New(input string) *Lexer {
	l := &Lexer{input: []byte(input)}
	l.readChar()
	return l
}

// Tokenize is the package-level convenience: the full token sequence for
// input, always ending with EOF. The result has at most len(input)+1 tokens.
func Tokenize(input string) []Token {
	return New(input).TokenizeToSlice()
}

// TokenizeToSlice tokenizes the remaining input into a pre-allocated slice.
func (l *Lexer) TokenizeToSlice() []Token {
	estimated := len(l.input) / 4
	if estimated < 8 {
		estimated = 8
	}
	result := make([]Token, 0, estimated)

	for {
		tok := l.NextToken()
		result = append(result, tok)
		if tok.Type == EOF {
			break
		}
	}
	return result
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	start := l.position

	switch {
	case l.ch == 0:
		return Token{Type: EOF, Pos: start}
	case l.ch == '"' || l.ch == '\'':
		return l.lexString(l.ch, start)
	case l.ch == '-':
		return l.lexMinus(start)
	case isLetter[l.ch]:
		return l.lexIdentifierOrKeyword(start)
	case isDigit[l.ch]:
		return l.lexNumber(start)
	default:
		if tokType, ok := singleCharTokens[l.ch]; ok {
			ch := l.ch
			l.readChar()
			return Token{Type: tokType, Value: string(ch), Pos: start}
		}
		// Unrecognized character: reject-and-report rather than skip.
		ch := l.ch
		l.readChar()
		return Token{Type: ILLEGAL, Value: string(ch), Pos: start}
	}
}

// lexMinus distinguishes '->' arrows, negative number literals, and the
// bare '-' operator with one byte of lookahead.
func (l *Lexer) lexMinus(start int) Token {
	if l.peekChar() == '>' {
		l.readChar()
		l.readChar()
		return Token{Type: ARROW, Value: "->", Pos: start}
	}
	if isDigit[l.peekChar()] {
		return l.lexNumber(start)
	}
	l.readChar()
	return Token{Type: MINUS, Value: "-", Pos: start}
}

// lexNumber consumes a run of digits optionally containing one decimal
// point, with an optional leading sign when called from lexMinus.
func (l *Lexer) lexNumber(start int) Token {
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit[l.ch] {
		l.readChar()
	}
	if l.ch == '.' && isDigit[l.peekChar()] {
		l.readChar()
		for isDigit[l.ch] {
			l.readChar()
		}
	}
	return Token{Type: NUMBER, Value: string(l.input[start:l.position]), Pos: start}
}

func (l *Lexer) lexIdentifierOrKeyword(start int) Token {
	for isIdentPart[l.ch] {
		l.readChar()
	}
	value := string(l.input[start:l.position])
	if IsKeyword(value) {
		return Token{Type: KEYWORD, Value: value, Pos: start}
	}
	return Token{Type: IDENTIFIER, Value: value, Pos: start}
}

// lexString consumes text delimited by matching quote characters.
// An unterminated string is a lexical error and yields ILLEGAL.
func (l *Lexer) lexString(quote byte, start int) Token {
	l.readChar() // opening quote
	var escaped []byte
	valueStart := l.position
	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			if escaped == nil {
				escaped = make([]byte, 0, 32)
			}
			escaped = append(escaped, l.input[valueStart:l.position]...)
			l.readChar()
			if l.ch == 0 {
				break
			}
			escaped = append(escaped, unescape(l.ch, quote)...)
			l.readChar()
			valueStart = l.position
		} else {
			l.readChar()
		}
	}

	if l.ch != quote {
		return Token{Type: ILLEGAL, Value: string(l.input[start:l.position]), Pos: start}
	}

	var val string
	if escaped != nil {
		escaped = append(escaped, l.input[valueStart:l.position]...)
		val = string(escaped)
	} else {
		val = string(l.input[valueStart:l.position])
	}
	l.readChar() // closing quote
	return Token{Type: STRING, Value: val, Pos: start}
}

func unescape(ch, quote byte) []byte {
	switch ch {
	case 'n':
		return []byte{'\n'}
	case 't':
		return []byte{'\t'}
	case 'r':
		return []byte{'\r'}
	case '\\':
		return []byte{'\\'}
	case quote:
		return []byte{quote}
	default:
		return []byte{'\\', ch}
	}
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace[l.ch] {
		l.readChar()
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
		l.position = l.readPos
	} else {
		l.ch = l.input[l.readPos]
		l.position = l.readPos
		l.readPos++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}
