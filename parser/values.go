package parser

import (
	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/lexer"
)

// literalValueKinds maps a literal token's lexer kind to the AST kind its
// ConstValue leaf carries. Tagging the leaf with its own literal kind (rather
// than a single generic "ConstValue" tag) keeps a round-tripped document
// distinguishable: a hex default and a decimal default look the same once
// they're both just digits, but not once they carry their own kind.
var literalValueKinds = map[lexer.Kind]ast.Kind{
	lexer.StringLiteral:  ast.KindStringLiteral,
	lexer.IntegerLiteral: ast.KindIntegerLiteral,
	lexer.DoubleLiteral:  ast.KindFloatLiteral,
	lexer.HexLiteral:     ast.KindHexLiteral,
	lexer.BooleanLiteral: ast.KindBooleanLiteral,
}

// parseValue parses a const value or field default: a literal, an
// identifier reference to another constant, a bracketed list, or a braced
// map. Enum-member initializers are read by parseEnumMember instead.
func (p *Parser) parseValue() (ast.InitialValue, error) {
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if kind, ok := literalValueKinds[p.cur.Kind]; ok {
		text := p.cur.Text
		loc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		return &ast.ConstValue{Kind: kind, Value: text, Loc: loc}, nil
	}
	switch p.cur.Kind {
	case lexer.Ident:
		text := p.cur.Text
		loc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		return &ast.ConstValue{Kind: ast.KindIdentifer, Value: text, Loc: loc}, nil
	case lexer.LBracket:
		return p.parseListValue()
	case lexer.LBrace:
		return p.parseMapValue()
	case lexer.EOF:
		return nil, errUnexpectedEOF(p.curLoc())
	default:
		return nil, errInvalidValue(p.curLoc(), p.cur.String())
	}
}

func (p *Parser) parseListValue() (ast.InitialValue, error) {
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume '['
		return nil, p.wrapLexError(err)
	}
	elements := []ast.InitialValue{}
	for {
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBracket {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		elem, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.Comma || p.cur.Kind == lexer.Semicolon {
			if err := p.advance(); err != nil {
				return nil, p.wrapLexError(err)
			}
		}
	}
	endLoc := p.curLoc() // the unconsumed ']'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return &ast.ConstList{Kind: ast.KindConstList, Loc: locSpanning(startLoc, endLoc), Elements: elements}, nil
}

func (p *Parser) parseMapValue() (ast.InitialValue, error) {
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume '{'
		return nil, p.wrapLexError(err)
	}
	properties := []ast.PropertyAssignment{}
	for {
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		name, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.Colon {
			return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
		}
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		properties = append(properties, ast.PropertyAssignment{
			Kind: ast.KindPropertyAssignment, Loc: locSpanning(name.NodeLoc(), value.NodeLoc()),
			Name: name, Value: value,
		})
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.Comma || p.cur.Kind == lexer.Semicolon {
			if err := p.advance(); err != nil {
				return nil, p.wrapLexError(err)
			}
		}
	}
	endLoc := p.curLoc() // the unconsumed '}'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return &ast.ConstMap{Kind: ast.KindConstMap, Loc: locSpanning(startLoc, endLoc), Properties: properties}, nil
}
