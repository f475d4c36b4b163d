package parser

import (
	"strconv"

	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/lexer"
)

func (p *Parser) parseInclude() (*ast.Include, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.StringLiteral {
		return nil, errMissingIncludeIdentifier(p.curLoc())
	}
	name := p.cur.Text
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Include{Kind: ast.KindIncludeDefinition, Loc: locSpanning(startLoc, endLoc), Name: name, Comments: comments}, nil
}

func (p *Parser) parseNamespace() (*ast.Namespace, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingNamespaceScope(p.curLoc())
	}
	scope := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingNamespaceIdentifier(p.curLoc())
	}
	name := p.cur.Text
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Namespace{Kind: ast.KindNamespaceDefinition, Loc: locSpanning(startLoc, endLoc), Scope: scope, Name: name, Comments: comments}, nil
}

func (p *Parser) parseConst() (*ast.Const, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	fieldType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingConstIdentifier(p.curLoc())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Equals {
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
	endLoc := value.NodeLoc()
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Const{Kind: ast.KindConstDefinition, Loc: locSpanning(startLoc, endLoc), Name: name, FieldType: fieldType, Value: value, Comments: comments}, nil
}

func (p *Parser) parseTypedef() (*ast.Typedef, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	fieldType, err := p.parseFieldType()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingTypedefIdentifier(p.curLoc())
	}
	name := p.cur.Text
	endLoc := p.curLoc()
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Typedef{Kind: ast.KindTypedefDefinition, Loc: locSpanning(startLoc, endLoc), Name: name, FieldType: fieldType, Comments: comments}, nil
}

func (p *Parser) parseEnum() (*ast.Enum, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume 'enum'
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingEnumIdentifier(p.curLoc())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	members, err := p.parseEnumBody()
	if err != nil {
		return nil, err
	}
	endLoc := p.curLoc() // the unconsumed '}'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Enum{
		Kind: ast.KindEnumDefinition, Loc: locSpanning(startLoc, endLoc), Name: name,
		Members: members, Comments: comments, Annotations: annotations,
	}, nil
}

func (p *Parser) parseEnumBody() ([]ast.EnumMember, error) {
	if p.cur.Kind != lexer.LBrace {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	members := []ast.EnumMember{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		member, err := p.parseEnumMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (p *Parser) parseEnumMember() (ast.EnumMember, error) {
	comments := p.takeComments()
	if p.cur.Kind != lexer.Ident {
		return ast.EnumMember{}, errInvalidEnumMemberName(p.curLoc(), p.cur.String())
	}
	name := p.cur.Text
	startLoc := p.curLoc()
	endLoc := startLoc
	if err := p.advance(); err != nil {
		return ast.EnumMember{}, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return ast.EnumMember{}, err
	}
	var initializer *ast.ConstValue
	if p.cur.Kind == lexer.Equals {
		if err := p.advance(); err != nil {
			return ast.EnumMember{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.EnumMember{}, err
		}
		if p.cur.Kind != lexer.IntegerLiteral && p.cur.Kind != lexer.HexLiteral {
			return ast.EnumMember{}, errInvalidValue(p.curLoc(), p.cur.String())
		}
		kind := ast.KindIntegerLiteral
		if p.cur.Kind == lexer.HexLiteral {
			kind = ast.KindHexLiteral
		}
		initializer = &ast.ConstValue{Kind: kind, Value: p.cur.Text, Loc: p.curLoc()}
		endLoc = initializer.Loc
		if err := p.advance(); err != nil {
			return ast.EnumMember{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.EnumMember{}, err
		}
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return ast.EnumMember{}, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	return ast.EnumMember{
		Kind: ast.KindEnumMember, Loc: locSpanning(startLoc, endLoc), Name: name,
		Initializer: initializer, Comments: comments, Annotations: annotations,
	}, nil
}

// parseStructLike parses the body shared by struct, union, and exception
// definitions; kind and label (used in diagnostics) distinguish which one.
func (p *Parser) parseStructLike(kind ast.Kind, label string) (*ast.StructLike, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume the keyword
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingStructIdentifier(p.curLoc(), label)
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	members, err := p.parseFieldBody()
	if err != nil {
		return nil, err
	}
	endLoc := p.curLoc() // the unconsumed '}'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.StructLike{
		Kind: kind, Loc: locSpanning(startLoc, endLoc), Name: name,
		Members: members, Comments: comments, Annotations: annotations,
	}, nil
}

func (p *Parser) parseFieldBody() ([]ast.Field, error) {
	if p.cur.Kind != lexer.LBrace {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	members := []ast.Field{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		members = append(members, field)
	}
	return members, nil
}

func (p *Parser) parseField() (ast.Field, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	fieldID, err := p.parseFieldID()
	if err != nil {
		return ast.Field{}, err
	}
	if err := p.skipComments(); err != nil {
		return ast.Field{}, err
	}
	requiredType := ast.Default
	switch p.cur.Kind {
	case lexer.Required:
		requiredType = ast.Required
		if err := p.advance(); err != nil {
			return ast.Field{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Field{}, err
		}
	case lexer.Optional:
		requiredType = ast.Optional
		if err := p.advance(); err != nil {
			return ast.Field{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Field{}, err
		}
	}
	fieldType, err := p.parseFieldType()
	if err != nil {
		return ast.Field{}, err
	}
	if err := p.skipComments(); err != nil {
		return ast.Field{}, err
	}
	nameLoc := p.curLoc()
	name, err := p.parseFieldName()
	if err != nil {
		return ast.Field{}, err
	}
	endLoc := nameLoc
	if err := p.skipComments(); err != nil {
		return ast.Field{}, err
	}
	var defaultValue ast.InitialValue
	if p.cur.Kind == lexer.Equals {
		if err := p.advance(); err != nil {
			return ast.Field{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Field{}, err
		}
		defaultValue, err = p.parseValue()
		if err != nil {
			return ast.Field{}, err
		}
		endLoc = defaultValue.NodeLoc()
		if err := p.skipComments(); err != nil {
			return ast.Field{}, err
		}
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return ast.Field{}, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	if err := p.skipComments(); err != nil {
		return ast.Field{}, err
	}
	return ast.Field{
		Kind: ast.KindFieldDefinition, Loc: locSpanning(startLoc, endLoc), FieldID: fieldID,
		RequiredType: requiredType, FieldType: fieldType, Name: name, DefaultValue: defaultValue,
		Annotations: annotations, Comments: comments,
	}, nil
}

// parseFieldID parses the optional "N:" prefix on a field. It reports no
// error and returns a nil id when the current token isn't an integer literal
// at all -- the id is optional -- but any integer literal not followed by a
// colon, or one that doesn't fit a uint64, is a diagnostic.
func (p *Parser) parseFieldID() (*string, error) {
	if p.cur.Kind != lexer.IntegerLiteral {
		return nil, nil
	}
	text := p.cur.Text
	loc := p.curLoc()
	if _, err := strconv.ParseUint(text, 10, 64); err != nil {
		return nil, errInvalidFieldID(loc, text)
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Colon {
		return nil, errInvalidFieldID(loc, text)
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return &text, nil
}

// fieldNameKeywords is the small set of keywords Thrift still allows as a
// field or parameter name despite them being reserved elsewhere. Function
// names do not use this set; parseFunction accepts only a plain identifier.
var fieldNameKeywords = map[lexer.Kind]bool{
	lexer.Ident: true, lexer.Namespace: true, lexer.Include: true, lexer.List: true,
	lexer.Map: true, lexer.Set: true, lexer.Oneway: true, lexer.Required: true,
	lexer.Optional: true, lexer.Throws: true, lexer.Bool: true, lexer.Extends: true,
	lexer.Struct: true, lexer.Double: true, lexer.Service: true, lexer.Enum: true,
}

func (p *Parser) parseFieldName() (string, error) {
	if !fieldNameKeywords[p.cur.Kind] {
		return "", errInvalidFieldName(p.curLoc(), p.cur.String())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return "", p.wrapLexError(err)
	}
	return name, nil
}

// parseAnnotations parses the optional trailing ( name = "value", ... )
// block. It returns a nil *Annotations, not an error, when no '(' follows.
func (p *Parser) parseAnnotations() (*ast.Annotations, error) {
	if p.cur.Kind != lexer.LParen {
		return nil, nil
	}
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume '('
		return nil, p.wrapLexError(err)
	}
	members := []ast.Annotation{}
	for {
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RParen {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		if p.cur.Kind != lexer.Ident {
			return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
		}
		name := p.cur.Text
		nameLoc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.Equals {
			return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
		}
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind != lexer.StringLiteral {
			return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
		}
		value := p.cur.Text
		valueLoc := p.curLoc()
		if err := p.advance(); err != nil {
			return nil, p.wrapLexError(err)
		}
		members = append(members, ast.Annotation{
			Kind: ast.KindAnnotation, Name: name, Value: value, Loc: locSpanning(nameLoc, valueLoc),
		})
		if err := p.skipComments(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.Comma {
			if err := p.advance(); err != nil {
				return nil, p.wrapLexError(err)
			}
		}
	}
	endLoc := p.curLoc() // the unconsumed ')'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return &ast.Annotations{Kind: ast.KindAnnotations, Loc: locSpanning(startLoc, endLoc), Members: members}, nil
}

func (p *Parser) parseService() (*ast.Service, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	if err := p.advance(); err != nil { // consume 'service'
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingServiceIdentifier(p.curLoc())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	extends, err := p.parseExtends()
	if err != nil {
		return nil, err
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	members, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}
	endLoc := p.curLoc() // the unconsumed '}'
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return nil, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	return &ast.Service{
		Kind: ast.KindServiceDefinition, Loc: locSpanning(startLoc, endLoc), Name: name,
		Extends: extends, Members: members, Comments: comments, Annotations: annotations,
	}, nil
}

// parseExtends parses the optional "extends Identifier" clause on a service.
func (p *Parser) parseExtends() (*string, error) {
	if p.cur.Kind != lexer.Extends {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return nil, err
	}
	if p.cur.Kind != lexer.Ident {
		return nil, errMissingServiceExtends(p.curLoc())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	return &name, nil
}

func (p *Parser) parseFunctionBody() ([]ast.Function, error) {
	if p.cur.Kind != lexer.LBrace {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	members := []ast.Function{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RBrace {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		fn, err := p.parseFunction()
		if err != nil {
			return nil, err
		}
		members = append(members, fn)
	}
	return members, nil
}

func (p *Parser) parseFunction() (ast.Function, error) {
	comments := p.takeComments()
	startLoc := p.curLoc()
	oneway := false
	if p.cur.Kind == lexer.Oneway {
		oneway = true
		if err := p.advance(); err != nil {
			return ast.Function{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Function{}, err
		}
	}
	returnType, err := p.parseReturnType()
	if err != nil {
		return ast.Function{}, err
	}
	if err := p.skipComments(); err != nil {
		return ast.Function{}, err
	}
	if p.cur.Kind != lexer.Ident {
		return ast.Function{}, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	name := p.cur.Text
	if err := p.advance(); err != nil {
		return ast.Function{}, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return ast.Function{}, err
	}
	params, err := p.parseParameterList()
	if err != nil {
		return ast.Function{}, err
	}
	endLoc := p.curLoc() // the unconsumed ')'
	if err := p.advance(); err != nil {
		return ast.Function{}, p.wrapLexError(err)
	}
	if err := p.skipComments(); err != nil {
		return ast.Function{}, err
	}
	var throws []ast.Field
	if p.cur.Kind == lexer.Throws {
		if err := p.advance(); err != nil {
			return ast.Function{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Function{}, err
		}
		throws, err = p.parseParameterList()
		if err != nil {
			return ast.Function{}, err
		}
		endLoc = p.curLoc() // the unconsumed ')'
		if err := p.advance(); err != nil {
			return ast.Function{}, p.wrapLexError(err)
		}
		if err := p.skipComments(); err != nil {
			return ast.Function{}, err
		}
	}
	annotations, err := p.parseAnnotations()
	if err != nil {
		return ast.Function{}, err
	}
	if annotations != nil {
		endLoc = annotations.Loc
	}
	if err := p.skipComments(); err != nil {
		return ast.Function{}, err
	}
	return ast.Function{
		Kind: ast.KindFunctionDefinition, Loc: locSpanning(startLoc, endLoc), Oneway: oneway,
		ReturnType: returnType, Name: name, Params: params, Throws: throws,
		Annotations: annotations, Comments: comments,
	}, nil
}

// parseParameterList parses a parenthesized, comma-separated list of fields
// -- a function's parameter list or its throws clause. It leaves cur
// positioned on the unconsumed closing ')' so the caller can capture its
// location before advancing past it.
func (p *Parser) parseParameterList() ([]ast.Field, error) {
	if p.cur.Kind != lexer.LParen {
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}
	params := []ast.Field{}
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if p.cur.Kind == lexer.RParen {
			break
		}
		if p.cur.Kind == lexer.EOF {
			return nil, errUnexpectedEOF(p.curLoc())
		}
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		params = append(params, field)
	}
	return params, nil
}
