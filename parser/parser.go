// Package parser builds a Document AST from Thrift IDL source text via a
// stateful, single-token-lookahead recursive-descent driver. It attaches
// trivia comments to the definition or member that follows them and stops
// at the first diagnostic; there is no error recovery.
package parser

import (
	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/lexer"
)

// Parser drives a single Lexer to produce one Document. It is not safe for
// concurrent use and is not reused across documents.
type Parser struct {
	lex *lexer.Lexer

	// cur is the one-token lookahead: every production inspects it before
	// deciding whether to consume.
	cur lexer.Token

	pendingComments []ast.Comment

	// lastLoc anchors diagnostics raised after the lexer runs dry, when cur
	// has already become the EOF token and carries no useful span of its own.
	lastLoc ast.LOC
}

// New returns a Parser over source. Call Parse to run it to completion.
func New(source string) *Parser {
	return &Parser{lex: lexer.New(source)}
}

// Parse consumes the entire source and returns the resulting Document, or
// the first diagnostic encountered.
func (p *Parser) Parse() (*ast.Document, error) {
	if err := p.advance(); err != nil {
		return nil, p.wrapLexError(err)
	}

	doc := ast.NewDocument()
	for {
		if err := p.skipComments(); err != nil {
			return nil, p.wrapLexError(err)
		}
		if p.cur.Kind == lexer.EOF {
			break
		}

		member, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		doc.Members = append(doc.Members, member)
	}
	return doc, nil
}

func toSpan(s lexer.Span) ast.Span {
	return ast.Span{Line: s.Line, Column: s.Column, Index: s.Index}
}

func (p *Parser) curLoc() ast.LOC {
	if p.cur.Kind == lexer.EOF {
		return p.lastLoc
	}
	return ast.LOC{Start: toSpan(p.cur.Start), End: toSpan(p.cur.End)}
}

func locSpanning(start, end ast.LOC) ast.LOC {
	return ast.LOC{Start: start.Start, End: end.End}
}

// advance pulls the next raw token (comments included) into cur.
func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.cur = tok
	if p.cur.Kind != lexer.EOF {
		p.lastLoc = ast.LOC{Start: toSpan(p.cur.Start), End: toSpan(p.cur.End)}
	}
	return nil
}

func (p *Parser) wrapLexError(err error) error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return errUnrecognizedToken(ast.LOC{Start: toSpan(lexErr.Start), End: toSpan(lexErr.End)}, lexErr.Msg)
	}
	return err
}

// bufferComment converts cur (assumed to be a comment token) into an
// ast.Comment and appends it to the pending buffer.
func (p *Parser) bufferComment() {
	kind := ast.KindCommentLine
	if p.cur.Kind == lexer.BlockComment {
		kind = ast.KindCommentBlock
	}
	p.pendingComments = append(p.pendingComments, ast.Comment{
		Kind:  kind,
		Value: p.cur.Text,
		Loc:   p.curLoc(),
	})
}

// takeComments drains and returns the pending comment buffer. The returned
// slice is always non-nil so JSON serializes an empty array rather than null.
func (p *Parser) takeComments() []ast.Comment {
	if len(p.pendingComments) == 0 {
		return []ast.Comment{}
	}
	c := p.pendingComments
	p.pendingComments = nil
	return c
}

// skipComments advances past any run of comment tokens, buffering each one.
func (p *Parser) skipComments() error {
	for p.cur.Kind == lexer.LineComment || p.cur.Kind == lexer.BlockComment {
		p.bufferComment()
		if err := p.advance(); err != nil {
			return p.wrapLexError(err)
		}
	}
	return nil
}

// skipSeparators advances past any run of , and ; tokens.
func (p *Parser) skipSeparators() error {
	for p.cur.Kind == lexer.Comma || p.cur.Kind == lexer.Semicolon {
		if err := p.advance(); err != nil {
			return p.wrapLexError(err)
		}
	}
	return nil
}

// skipTrivia advances past any interleaving of separators and comments,
// buffering comments as it goes.
func (p *Parser) skipTrivia() error {
	for {
		switch p.cur.Kind {
		case lexer.Comma, lexer.Semicolon:
			if err := p.advance(); err != nil {
				return p.wrapLexError(err)
			}
		case lexer.LineComment, lexer.BlockComment:
			p.bufferComment()
			if err := p.advance(); err != nil {
				return p.wrapLexError(err)
			}
		default:
			return nil
		}
	}
}

func (p *Parser) parseTopLevel() (ast.DocumentMember, error) {
	switch p.cur.Kind {
	case lexer.Include:
		return p.parseInclude()
	case lexer.Namespace:
		return p.parseNamespace()
	case lexer.Const:
		return p.parseConst()
	case lexer.Typedef:
		return p.parseTypedef()
	case lexer.Enum:
		return p.parseEnum()
	case lexer.Struct:
		return p.parseStructLike(ast.KindStructDefinition, "struct")
	case lexer.Union:
		return p.parseStructLike(ast.KindUnionDefinition, "union")
	case lexer.Exception:
		return p.parseStructLike(ast.KindExceptionDefinition, "exception")
	case lexer.Service:
		return p.parseService()
	default:
		return nil, errUnexpectedToken(p.curLoc(), p.cur.String())
	}
}
