package lexer

import "fmt"

// TokenType represents the type of a token in the mini language.
type TokenType int

const (
	// Special tokens
	EOF     TokenType = iota
	ILLEGAL // unrecognized character or unterminated string

	// Literals and names
	IDENTIFIER // command and parameter names
	NUMBER     // numeric literals: 10, 3.14, -5
	STRING     // quoted strings: "circle", 'c1'
	KEYWORD    // reserved identifier spellings: true, false, null

	// Punctuation and operators
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	COLON     // :
	EQUALS    // =
	SEMICOLON // ;
	ARROW     // ->
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
)

// Pre-computed token name lookup for fast debugging
var tokenNames = [...]string{
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	IDENTIFIER: "IDENTIFIER",
	NUMBER:     "NUMBER",
	STRING:     "STRING",
	KEYWORD:    "KEYWORD",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	COMMA:      "COMMA",
	COLON:      "COLON",
	EQUALS:     "EQUALS",
	SEMICOLON:  "SEMICOLON",
	ARROW:      "ARROW",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	STAR:       "STAR",
	SLASH:      "SLASH",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) && int(t) >= 0 {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single token with its source offset.
// Tokens are ephemeral: produced per Tokenize call and consumed by the
// parser, never persisted.
type Token struct {
	Type  TokenType
	Value string // actual token content (for STRING: after escape processing)
	Pos   int    // byte offset of the token start in the input
}

// keywords is the reserved set of identifier spellings that are
// reclassified as KEYWORD rather than IDENTIFIER.
var keywords = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
}

// IsKeyword reports whether an identifier spelling is reserved.
func IsKeyword(s string) bool { return keywords[s] }
