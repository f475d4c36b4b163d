package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thriftlang/rico/lexer"
)

func scanAll(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lex := lexer.New(src)
	var tokens []lexer.Token
	for {
		tok, err := lex.Next()
		require.NoError(t, err)
		if tok.Kind == lexer.EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func tokenKinds(t *testing.T, src string) []lexer.Kind {
	t.Helper()
	var kinds []lexer.Kind
	for _, tok := range scanAll(t, src) {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	kinds := tokenKinds(t, "struct Foo { 1: string name }")
	require.Equal(t, []lexer.Kind{
		lexer.Struct, lexer.Ident, lexer.LBrace,
		lexer.IntegerLiteral, lexer.Colon, lexer.String, lexer.Ident,
		lexer.RBrace,
	}, kinds)
}

func TestLexerDottedIdentifier(t *testing.T) {
	lex := lexer.New("a.b.c")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Ident, tok.Kind)
	require.Equal(t, "a.b.c", tok.Text)
}

func TestLexerDottedIdentifierKeepsKeywordPrefixWhole(t *testing.T) {
	// "map.x" must be one identifier token, not a map keyword plus trivia.
	lex := lexer.New("map.x")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.Ident, tok.Kind)
	require.Equal(t, "map.x", tok.Text)
}

func TestLexerNumberForms(t *testing.T) {
	kinds := tokenKinds(t, "1 -2 +3 0x1F 3.14 -0.5 2.5e10 1.5e-3")
	require.Equal(t, []lexer.Kind{
		lexer.IntegerLiteral, lexer.IntegerLiteral, lexer.IntegerLiteral,
		lexer.HexLiteral,
		lexer.DoubleLiteral, lexer.DoubleLiteral, lexer.DoubleLiteral, lexer.DoubleLiteral,
	}, kinds)
}

func TestLexerStringLiteralPreservesQuotes(t *testing.T) {
	lex := lexer.New(`"hello \"world\""`)
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.StringLiteral, tok.Kind)
	require.Equal(t, `"hello \"world\""`, tok.Text)
}

func TestLexerMultiLineStringAdvancesLine(t *testing.T) {
	src := "\"line one\nline two\" i32"
	tokens := scanAll(t, src)
	require.Len(t, tokens, 2)
	require.Equal(t, lexer.StringLiteral, tokens[0].Kind)
	require.Equal(t, 1, tokens[0].Start.Line)
	require.Equal(t, 2, tokens[0].End.Line)
	require.Equal(t, 2, tokens[1].Start.Line)
}

func TestLexerBooleanKeywords(t *testing.T) {
	kinds := tokenKinds(t, "true false")
	require.Equal(t, []lexer.Kind{lexer.BooleanLiteral, lexer.BooleanLiteral}, kinds)
}

func TestLexerComments(t *testing.T) {
	tokens := scanAll(t, "// line\n# also line\n/* block\nspans lines */ i32")
	require.Equal(t, lexer.LineComment, tokens[0].Kind)
	require.Equal(t, "// line", tokens[0].Text)
	require.Equal(t, lexer.LineComment, tokens[1].Kind)
	require.Equal(t, "# also line", tokens[1].Text)
	require.Equal(t, lexer.BlockComment, tokens[2].Kind)
	require.Equal(t, "/* block\nspans lines */", tokens[2].Text)
	require.Equal(t, lexer.I32, tokens[3].Kind)
	// The block comment crossed a newline; the following token's coordinates
	// must reflect the post-comment position.
	require.Equal(t, 4, tokens[3].Start.Line)
}

func TestLexerUnrecognizedCharacter(t *testing.T) {
	lex := lexer.New("@")
	_, err := lex.Next()
	require.Error(t, err)
	var lexErr *lexer.Error
	require.ErrorAs(t, err, &lexErr)
	require.Equal(t, 1, lexErr.Start.Line)
	require.Equal(t, 1, lexErr.Start.Column)
	require.Equal(t, 0, lexErr.Start.Index)
}

func TestLexerUnterminatedString(t *testing.T) {
	lex := lexer.New(`"never closed`)
	_, err := lex.Next()
	require.Error(t, err)
}

func TestLexerUnterminatedBlockComment(t *testing.T) {
	lex := lexer.New("/* never closed")
	_, err := lex.Next()
	require.Error(t, err)
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	tokens := scanAll(t, "struct A {\n  1: i32 x\n}")
	last := tokens[len(tokens)-1]
	require.Equal(t, 3, last.Start.Line)
	require.Equal(t, 1, last.Start.Column)

	one := tokens[3]
	require.Equal(t, lexer.IntegerLiteral, one.Kind)
	require.Equal(t, 2, one.Start.Line)
	require.Equal(t, 3, one.Start.Column)
}

func TestLexerTokenTextEqualsSourceSlice(t *testing.T) {
	src := `namespace go demo
// leading
struct User {
  1: required string name = "anon" (sensitive = "true"),
  2: optional map<string, list<i32>> scores,
}`
	for _, tok := range scanAll(t, src) {
		require.Equal(t, src[tok.ByteStart:tok.ByteEnd], tok.Text)
		require.Equal(t, tok.ByteStart, tok.Start.Index)
		require.Equal(t, tok.ByteEnd, tok.End.Index)
		require.LessOrEqual(t, tok.ByteStart, tok.ByteEnd)
		require.LessOrEqual(t, tok.ByteEnd, len(src))
	}
}

func TestLexerEOFIsSticky(t *testing.T) {
	lex := lexer.New("i32")
	tok, err := lex.Next()
	require.NoError(t, err)
	require.Equal(t, lexer.I32, tok.Kind)
	for i := 0; i < 3; i++ {
		tok, err = lex.Next()
		require.NoError(t, err)
		require.Equal(t, lexer.EOF, tok.Kind)
	}
}
