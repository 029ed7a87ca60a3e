package arith

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scanall collects tokens up to and including the EOF token, or up to the
// first error.
func scanall(src string) ([]lexToken, error) {
	scan := lex(strings.NewReader(src))
	var toks []lexToken
	for {
		tok, err := scan.next("")
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.kind == tokenEOF {
			return toks, nil
		}
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []lexToken
	}{
		{"empty", "", []lexToken{{kind: tokenEOF, pos: 1}}},
		{"spaces", " \t \r\n ", []lexToken{{kind: tokenEOF, pos: 7}}},
		{"zero", "0", []lexToken{
			{text: "0", kind: tokenNum, pos: 1},
			{kind: tokenEOF, pos: 2},
		}},
		{"integer", "9876543210", []lexToken{
			{text: "9876543210", kind: tokenNum, val: 9876543210, pos: 1},
			{kind: tokenEOF, pos: 11},
		}},
		{"real", "1.5", []lexToken{
			{text: "1.5", kind: tokenNum, val: 1.5, pos: 1},
			{kind: tokenEOF, pos: 4},
		}},
		{"leading-dot", ".5", []lexToken{
			{text: ".5", kind: tokenNum, val: 0.5, pos: 1},
			{kind: tokenEOF, pos: 3},
		}},
		{"two-numbers", "1 0", []lexToken{
			{text: "1", kind: tokenNum, val: 1, pos: 1},
			{text: "0", kind: tokenNum, val: 0, pos: 3},
			{kind: tokenEOF, pos: 4},
		}},
		{"ident", "x", []lexToken{
			{text: "x", kind: tokenIdent, pos: 1},
			{kind: tokenEOF, pos: 2},
		}},
		{"ident-underscore", "foo_bar", []lexToken{
			{text: "foo_bar", kind: tokenIdent, pos: 1},
			{kind: tokenEOF, pos: 8},
		}},
		{"ident-unicode", "π", []lexToken{
			{text: "π", kind: tokenIdent, pos: 1},
			{kind: tokenEOF, pos: 2},
		}},
		{"ident-case", "Ab", []lexToken{
			{text: "Ab", kind: tokenIdent, pos: 1},
			{kind: tokenEOF, pos: 3},
		}},
		// Digits do not continue an identifier.
		{"ident-digit", "x1", []lexToken{
			{text: "x", kind: tokenIdent, pos: 1},
			{text: "1", kind: tokenNum, val: 1, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"digit-ident", "1x", []lexToken{
			{text: "1", kind: tokenNum, val: 1, pos: 1},
			{text: "x", kind: tokenIdent, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"operators", "+ - * /", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 3},
			{text: "*", kind: tokenOp, pos: 5},
			{text: "/", kind: tokenOp, pos: 7},
			{kind: tokenEOF, pos: 8},
		}},
		// The lexer never merges a sign into a number.
		{"negative", "-1", []lexToken{
			{text: "-", kind: tokenOp, pos: 1},
			{text: "1", kind: tokenNum, val: 1, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"parens", "()", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: ")", kind: tokenClose, pos: 2},
			{kind: tokenEOF, pos: 3},
		}},
		{"expression", "(x+1)/2", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "x", kind: tokenIdent, pos: 2},
			{text: "+", kind: tokenOp, pos: 3},
			{text: "1", kind: tokenNum, val: 1, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
			{text: "/", kind: tokenOp, pos: 6},
			{text: "2", kind: tokenNum, val: 2, pos: 7},
			{kind: tokenEOF, pos: 8},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := scanall(c.src)
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if d := cmp.Diff(c.tokens, got, cmp.AllowUnexported(lexToken{})); d != "" {
				t.Errorf("scanning %q: tokens differ (-want +got):\n%s", c.src, d)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want LexError
	}{
		{"hash", "#", LexError{Text: "#", Col: 2}},
		{"at", "@x", LexError{Text: "@", Col: 2}},
		{"after-ident", "a$", LexError{Text: "$", Col: 3}},
		{"two-dots", "1.2.3", LexError{Text: "1.2.3", Kind: "number", Col: 6}},
		{"adjacent-dots", "1..2", LexError{Text: "1..2", Kind: "number", Col: 5}},
		{"lone-dot", ".", LexError{Text: ".", Kind: "number", Col: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := scanall(c.src)
			if err == nil {
				t.Fatalf("scanning %q: no error", c.src)
			}
			le := new(LexError)
			if !errors.As(err, &le) {
				t.Fatalf("scanning %q: error %#v is not a LexError", c.src, err)
			}
			if *le != c.want {
				t.Errorf("scanning %q: want error %+v, got %+v", c.src, c.want, *le)
			}
			if le.Pos() != c.want.Col {
				t.Errorf("scanning %q: Pos gave %d, want %d", c.src, le.Pos(), c.want.Col)
			}
		})
	}
}

func TestLexWhitespaceEOF(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"))
	tok, err := scan.next("\n")
	if err != nil {
		t.Fatal(err)
	}
	if want := (lexToken{text: "1", kind: tokenNum, val: 1, pos: 1}); tok != want {
		t.Errorf("want %v, got %v", want, tok)
	}
	tok, err = scan.next("\n")
	if err != nil {
		t.Fatal(err)
	}
	if tok.kind != tokenEOF {
		t.Errorf("newline did not lex as EOF; got %v", tok)
	}
}
