package parser

import (
	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/lexer"
)

// baseTypeKeywords maps every keyword that leaves a BaseType to the keyword
// kind its leaf carries; void is deliberately excluded since it is only
// valid in return-type position.
var baseTypeKeywords = map[lexer.Kind]ast.Kind{
	lexer.Bool:   ast.KindBoolKeyword,
	lexer.Byte:   ast.KindByteKeyword,
	lexer.I8:     ast.KindI8Keyword,
	lexer.I16:    ast.KindI16Keyword,
	lexer.I32:    ast.KindI32Keyword,
	lexer.I64:    ast.KindI64Keyword,
	lexer.Double: ast.KindDoubleKeyword,
	lexer.String: ast.KindStringKeyword,
	lexer.Binary: ast.KindBinaryKeyword,
}

// parseFieldType parses a type reference: a base keyword, list<T>, set<T>,
// map<K, V>, or an identifier naming a user-defined type. void is rejected
// here; only parseReturnType accepts it.
func (p *Parser) parseFieldType() (ast.FieldType, error) {
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if kind, ok := baseTypeKeywords[p.cur.Kind]; ok {
		text := p.cur.Text
		loc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		return ast.NewBaseType(kind, text, loc), nil
	}
	switch p.cur.Kind {
	case lexer.Ident:
		text := p.cur.Text
		loc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		return ast.NewIdentifierType(text, loc), nil
	case lexer.List:
		return p.parseListType()
	case lexer.Set:
		return p.parseSetType()
	case lexer.Map:
		return p.parseMapType()
	case lexer.EOF:
		return nil, errMissingType(p.curLoc())
	default:
		return nil, errUnsupportedType(p.curLoc(), p.cur.String())
	}
}

// parseReturnType is parseFieldType plus the one position where void is a
// valid BaseType. A function signature that ends before its return type is
// an invalid_return_type rather than a missing_type.
func (p *Parser) parseReturnType() (ast.FieldType, error) {
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	switch p.cur.Kind {
	case lexer.Void:
		text := p.cur.Text
		loc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		return ast.NewBaseType(ast.KindVoidKeyword, text, loc), nil
	case lexer.EOF:
		return nil, errInvalidReturnType(p.curLoc(), p.cur.String())
	default:
		return p.parseFieldType()
	}
}

func (p *Parser) parseListType() (ast.FieldType, error) {
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume 'list'
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.LAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	elem, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.RAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return ast.NewListType(elem, locSpanning(startLoc, endLoc)), nil
}

func (p *Parser) parseSetType() (ast.FieldType, error) {
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume 'set'
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.LAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	elem, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.RAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return ast.NewSetType(elem, locSpanning(startLoc, endLoc)), nil
}

func (p *Parser) parseMapType() (ast.FieldType, error) {
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume 'map'
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.LAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	key, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Comma {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	value, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.RAngle {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return ast.NewMapType(key, value, locSpanning(startLoc, endLoc)), nil
}
