package sexp

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Parse reads a single top-level s-expression from r.
func Parse(r io.Reader) (*Node, error) {
	tokens, err := lex(r)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize: %w", err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	p := &parser{tokens: tokens}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		tok := p.tokens[p.pos]
		return nil, fmt.Errorf("unexpected trailing token %q at %s", tok.Value, tok.Pos)
	}
	return node, nil
}

// ParseString parses a single s-expression from a string.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) next() (lexer.Token, error) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, fmt.Errorf("unexpected end of input")
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

func (p *parser) parseExpr() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case tokLParen:
		return p.parseList()
	case tokString:
		return NewString(unquote(tok.Value)), nil
	case tokRParen:
		return nil, fmt.Errorf("unexpected ')' at %s", tok.Pos)
	default:
		return NewAtom(tok.Value), nil
	}
}

func (p *parser) parseList() (*Node, error) {
	node := &Node{List: []*Node{}}

	for {
		if p.pos >= len(p.tokens) {
			return nil, fmt.Errorf("unexpected end of input in list")
		}
		if p.tokens[p.pos].Type == tokRParen {
			p.pos++
			return node, nil
		}

		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.List = append(node.List, child)
	}
}
