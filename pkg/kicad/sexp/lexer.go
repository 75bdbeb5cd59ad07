package sexp

import (
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// boardLexer defines the lexical structure of KiCad s-expression files:
// parentheses, quoted strings with backslash escapes, and bare symbols
// (which cover keywords, numbers, and layer names alike).
var boardLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},

	// Quoted strings with escape sequences
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Everything else up to a delimiter is a symbol
	{Name: "Symbol", Pattern: `[^\s()"]+`},
})

var (
	lexSymbols    = boardLexer.Symbols()
	tokComment    = lexSymbols["Comment"]
	tokWhitespace = lexSymbols["Whitespace"]
	tokLParen     = lexSymbols["LParen"]
	tokRParen     = lexSymbols["RParen"]
	tokString     = lexSymbols["String"]
)

// lex tokenizes the input and drops comments and whitespace.
func lex(r io.Reader) ([]lexer.Token, error) {
	lx, err := boardLexer.Lex("", r)
	if err != nil {
		return nil, err
	}

	all, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}

	tokens := make([]lexer.Token, 0, len(all))
	for _, tok := range all {
		if tok.Type == tokComment || tok.Type == tokWhitespace || tok.EOF() {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// unquote decodes a String token: strips the surrounding quotes and
// resolves backslash escapes.
func unquote(raw string) string {
	s := strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`)
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// quote encodes a string atom for serialization.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
