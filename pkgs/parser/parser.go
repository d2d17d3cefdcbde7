// Package parser turns mini-language text into parsed command invocations.
//
// Grammar:
//
//	invocation = identifier "(" [ argument { "," argument } ] ")" ;
//	argument   = identifier ( ":" | "=" ) value ;
//	value      = number | string | boolean | "null" ;
//
// The parser is a single forward cursor over the token sequence with one
// token of lookahead; it never backtracks.
package parser

import (
	"strconv"

	"github.com/krayonlabs/krayon/pkgs/lexer"
	"github.com/krayonlabs/krayon/pkgs/value"
)

// Invocation is one parsed command: its name and parameter mapping.
//
// Valid is false when lexing or parsing failed to produce a well-formed
// name(param: value, ...) shape. A syntactically valid invocation of an
// unknown command still has Valid == true: existence is the executor's
// concern, not the parser's.
type Invocation struct {
	Command string
	Params  map[string]value.Value
	Valid   bool
}

// Parser implements a recursive descent parser over a token slice.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// ParseCommand parses a single invocation from input.
func ParseCommand(input string) Invocation {
	return newParser(lexer.Tokenize(input)).parseInvocation()
}

// ParseCommands splits input on top-level semicolons and parses each
// segment independently. A malformed segment yields an Invocation with
// Valid == false, but parsing continues with the next segment: a batch
// never aborts early on one bad entry.
func ParseCommands(input string) []Invocation {
	tokens := lexer.Tokenize(input)

	var invocations []Invocation
	segStart := 0
	flush := func(end int) {
		segment := tokens[segStart:end]
		if isEmptySegment(segment) {
			return
		}
		// each segment parses against its own EOF sentinel
		seg := make([]lexer.Token, 0, len(segment)+1)
		seg = append(seg, segment...)
		seg = append(seg, lexer.Token{Type: lexer.EOF})
		invocations = append(invocations, newParser(seg).parseInvocation())
	}

	for i, tok := range tokens {
		switch tok.Type {
		case lexer.SEMICOLON:
			flush(i)
			segStart = i + 1
		case lexer.EOF:
			flush(i)
		}
	}
	return invocations
}

func isEmptySegment(tokens []lexer.Token) bool {
	for _, tok := range tokens {
		if tok.Type != lexer.EOF {
			return false
		}
	}
	return true
}

func newParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.Token{Type: lexer.EOF}
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// check reports whether the current token has the given type.
func (p *Parser) check(t lexer.TokenType) bool {
	return p.peek().Type == t
}

// match consumes the current token if it has the given type.
func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// parseInvocation parses identifier "(" arguments ")" and requires the
// segment to be fully consumed afterwards.
func (p *Parser) parseInvocation() Invocation {
	invalid := Invocation{Params: map[string]value.Value{}}

	// Lexical errors poison the whole segment: the lexer reports bad
	// characters as ILLEGAL instead of dropping them, and we refuse here.
	for _, tok := range p.tokens {
		if tok.Type == lexer.ILLEGAL {
			return invalid
		}
	}

	if !p.check(lexer.IDENTIFIER) {
		return invalid
	}
	name := p.advance().Value

	if !p.match(lexer.LPAREN) {
		return invalid
	}

	params := map[string]value.Value{}
	if !p.check(lexer.RPAREN) {
		for {
			pname, pval, ok := p.parseArgument()
			if !ok {
				return invalid
			}
			params[pname] = pval
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	if !p.match(lexer.RPAREN) {
		return invalid
	}
	if !p.check(lexer.EOF) {
		// trailing garbage after the closing paren
		return invalid
	}

	return Invocation{Command: name, Params: params, Valid: true}
}

// parseArgument parses identifier (":" | "=") value.
func (p *Parser) parseArgument() (string, value.Value, bool) {
	if !p.check(lexer.IDENTIFIER) {
		return "", value.Null(), false
	}
	name := p.advance().Value

	if !p.match(lexer.COLON) && !p.match(lexer.EQUALS) {
		return "", value.Null(), false
	}

	return name, p.parseValue(), true
}

// parseValue dispatches purely on the current token's kind. Number,
// string, and boolean literals produce their typed values; anything else
// degrades to null and the token is consumed. The null fallback is a
// deliberate policy (permissive values), not an error path.
func (p *Parser) parseValue() value.Value {
	tok := p.advance()
	switch tok.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return value.Null()
		}
		return value.Number(n)
	case lexer.STRING:
		return value.String(tok.Value)
	case lexer.KEYWORD:
		switch tok.Value {
		case "true":
			return value.Bool(true)
		case "false":
			return value.Bool(false)
		}
		return value.Null() // "null" and any future keyword
	default:
		return value.Null()
	}
}
