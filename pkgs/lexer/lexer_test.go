package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenTypes(tokens []Token) []TokenType {
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{
			input:    "create_element(type: \"circle\")",
			expected: []TokenType{IDENTIFIER, LPAREN, IDENTIFIER, COLON, STRING, RPAREN, EOF},
		},
		{
			input:    "set_property(id: 'c1', value = 5)",
			expected: []TokenType{IDENTIFIER, LPAREN, IDENTIFIER, COLON, STRING, COMMA, IDENTIFIER, EQUALS, NUMBER, RPAREN, EOF},
		},
		{
			input:    "a(); b()",
			expected: []TokenType{IDENTIFIER, LPAREN, RPAREN, SEMICOLON, IDENTIFIER, LPAREN, RPAREN, EOF},
		},
		{
			input:    "{ } + - * / ->",
			expected: []TokenType{LBRACE, RBRACE, PLUS, MINUS, STAR, SLASH, ARROW, EOF},
		},
		{
			input:    "visible: true, hidden: false, extra: null",
			expected: []TokenType{IDENTIFIER, COLON, KEYWORD, COMMA, IDENTIFIER, COLON, KEYWORD, COMMA, IDENTIFIER, COLON, KEYWORD, EOF},
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if diff := cmp.Diff(test.expected, tokenTypes(tokens)); diff != "" {
				t.Errorf("token sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEmptyInput(t *testing.T) {
	tokens := Tokenize("")
	expected := []Token{{Type: EOF, Pos: 0}}
	if diff := cmp.Diff(expected, tokens); diff != "" {
		t.Errorf("empty input should yield exactly one EOF token (-want +got):\n%s", diff)
	}
}

func TestWhitespaceOnlyInput(t *testing.T) {
	tokens := Tokenize("  \t\n  ")
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Errorf("whitespace-only input should yield exactly one EOF token, got %v", tokens)
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"-5", "-5"},
		{"-0.25", "-0.25"},
		{"0", "0"},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if len(tokens) != 2 || tokens[0].Type != NUMBER {
				t.Fatalf("expected single NUMBER token, got %v", tokens)
			}
			if tokens[0].Value != test.expected {
				t.Errorf("expected literal %q, got %q", test.expected, tokens[0].Value)
			}
		})
	}
}

func TestMinusDisambiguation(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		// '-' directly before a digit folds into the number literal
		{"-7", []TokenType{NUMBER, EOF}},
		// bare '-' is the operator
		{"- 7", []TokenType{MINUS, NUMBER, EOF}},
		// '->' is an arrow
		{"a -> b", []TokenType{IDENTIFIER, ARROW, IDENTIFIER, EOF}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if diff := cmp.Diff(test.expected, tokenTypes(tokens)); diff != "" {
				t.Errorf("token sequence mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNumberStopsAtSecondDecimalPoint(t *testing.T) {
	tokens := Tokenize("1.2.3")
	// one decimal point belongs to the literal; the second starts garbage
	if tokens[0].Type != NUMBER || tokens[0].Value != "1.2" {
		t.Fatalf("expected NUMBER 1.2 first, got %v", tokens[0])
	}
	if tokens[1].Type != ILLEGAL {
		t.Errorf("expected ILLEGAL for stray '.', got %v", tokens[1])
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"double quoted", `"hello world"`, "hello world"},
		{"single quoted", `'c1'`, "c1"},
		{"empty", `""`, ""},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped newline", `"a\nb"`, "a\nb"},
		{"escaped tab", `"a\tb"`, "a\tb"},
		{"backslash", `"a\\b"`, `a\b`},
		{"unknown escape preserved", `"a\qb"`, `a\qb`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if len(tokens) != 2 || tokens[0].Type != STRING {
				t.Fatalf("expected single STRING token, got %v", tokens)
			}
			if tokens[0].Value != test.expected {
				t.Errorf("expected %q, got %q", test.expected, tokens[0].Value)
			}
		})
	}
}

func TestUnterminatedStringIsIllegal(t *testing.T) {
	tokens := Tokenize(`"never closed`)
	if tokens[0].Type != ILLEGAL {
		t.Errorf("unterminated string should be ILLEGAL, got %v", tokens[0])
	}
}

func TestIllegalCharactersAreReportedNotSkipped(t *testing.T) {
	tokens := Tokenize("a $ b")
	expected := []TokenType{IDENTIFIER, ILLEGAL, IDENTIFIER, EOF}
	if diff := cmp.Diff(expected, tokenTypes(tokens)); diff != "" {
		t.Errorf("token sequence mismatch (-want +got):\n%s", diff)
	}
	if tokens[1].Value != "$" {
		t.Errorf("ILLEGAL token should carry the offending character, got %q", tokens[1].Value)
	}
}

func TestIdentifierRules(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"name", IDENTIFIER},
		{"_private", IDENTIFIER},
		{"snake_case_2", IDENTIFIER},
		{"CamelCase", IDENTIFIER},
		{"true", KEYWORD},
		{"false", KEYWORD},
		{"null", KEYWORD},
		// keyword reclassification is exact-match only
		{"truely", IDENTIFIER},
		{"Null", IDENTIFIER},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens := Tokenize(test.input)
			if len(tokens) != 2 {
				t.Fatalf("expected single token + EOF, got %v", tokens)
			}
			if tokens[0].Type != test.expected {
				t.Errorf("expected %s, got %s", test.expected, tokens[0].Type)
			}
			if tokens[0].Value != test.input {
				t.Errorf("expected literal %q, got %q", test.input, tokens[0].Value)
			}
		})
	}
}

func TestTokenPositions(t *testing.T) {
	tokens := Tokenize("ab( 12")
	positions := []int{0, 2, 4}
	for i, want := range positions {
		if tokens[i].Pos != want {
			t.Errorf("token %d: expected offset %d, got %d", i, want, tokens[i].Pos)
		}
	}
}

func TestTokenCountBound(t *testing.T) {
	// total sequence length is finite and <= input length + 1
	inputs := []string{"", "a", "a(b:1,c:2)", strings.Repeat("(", 50), "x;y;z"}
	for _, input := range inputs {
		tokens := Tokenize(input)
		if len(tokens) > len(input)+1 {
			t.Errorf("input %q: %d tokens exceeds bound %d", input, len(tokens), len(input)+1)
		}
		if tokens[len(tokens)-1].Type != EOF {
			t.Errorf("input %q: sequence must end with EOF", input)
		}
	}
}
