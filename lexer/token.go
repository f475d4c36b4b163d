// Package lexer tokenizes Thrift IDL source text.
//
// It scans raw bytes into a stream of [Token] values, each carrying a kind,
// the borrowed source slice it was scanned from, and the precise [Span] pair
// marking where it begins and ends. The lexer is pull-based: callers drive
// it one [Lexer.Next] call at a time, the same way participle's text/scanner
// based lexer is driven from the parser above it.
package lexer

import "fmt"

// Kind identifies the lexical category of a Token. The set is closed: every
// value a Thrift document can produce is enumerated here.
type Kind int

const (
	EOF Kind = iota

	Ident // includes dotted identifiers such as a.b.c, scanned as one token

	// Keywords.
	Namespace
	Include
	CppInclude
	Typedef
	Const
	Enum
	Struct
	Union
	Exception
	Service
	Extends
	Throws
	Oneway
	Void
	Required
	Optional

	// Base-type keywords.
	Bool
	Byte
	I8
	I16
	I32
	I64
	Double
	String
	Binary
	Map
	List
	Set

	// Literals.
	StringLiteral
	IntegerLiteral
	HexLiteral
	DoubleLiteral
	BooleanLiteral

	// Punctuation.
	LBrace
	RBrace
	LBracket
	RBracket
	LAngle
	RAngle
	LParen
	RParen
	Semicolon
	Colon
	Comma
	Equals
	Dot

	// Trivia, surfaced as real tokens so the parser can attach comments.
	LineComment
	BlockComment
)

var kindNames = map[Kind]string{
	EOF:            "EOF",
	Ident:          "Ident",
	Namespace:      "namespace",
	Include:        "include",
	CppInclude:     "cpp_include",
	Typedef:        "typedef",
	Const:          "const",
	Enum:           "enum",
	Struct:         "struct",
	Union:          "union",
	Exception:      "exception",
	Service:        "service",
	Extends:        "extends",
	Throws:         "throws",
	Oneway:         "oneway",
	Void:           "void",
	Required:       "required",
	Optional:       "optional",
	Bool:           "bool",
	Byte:           "byte",
	I8:             "i8",
	I16:            "i16",
	I32:            "i32",
	I64:            "i64",
	Double:         "double",
	String:         "string",
	Binary:         "binary",
	Map:            "map",
	List:           "list",
	Set:            "set",
	StringLiteral:  "StringLiteral",
	IntegerLiteral: "IntegerLiteral",
	HexLiteral:     "HexLiteral",
	DoubleLiteral:  "DoubleLiteral",
	BooleanLiteral: "BooleanLiteral",
	LBrace:         "{",
	RBrace:         "}",
	LBracket:       "[",
	RBracket:       "]",
	LAngle:         "<",
	RAngle:         ">",
	LParen:         "(",
	RParen:         ")",
	Semicolon:      ";",
	Colon:          ":",
	Comma:          ",",
	Equals:         "=",
	Dot:            ".",
	LineComment:    "LineComment",
	BlockComment:   "BlockComment",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps exact identifier text to its keyword Kind. Identifiers that
// do not appear here keep Kind Ident. "true" and "false" resolve to
// BooleanLiteral rather than a dedicated keyword, matching the closed literal
// set in the AST.
var keywords = map[string]Kind{
	"namespace":   Namespace,
	"include":     Include,
	"cpp_include": CppInclude,
	"typedef":     Typedef,
	"const":       Const,
	"enum":        Enum,
	"struct":      Struct,
	"union":       Union,
	"exception":   Exception,
	"service":     Service,
	"extends":     Extends,
	"throws":      Throws,
	"oneway":      Oneway,
	"void":        Void,
	"required":    Required,
	"optional":    Optional,
	"bool":        Bool,
	"byte":        Byte,
	"i8":          I8,
	"i16":         I16,
	"i32":         I32,
	"i64":         I64,
	"double":      Double,
	"string":      String,
	"binary":      Binary,
	"map":         Map,
	"list":        List,
	"set":         Set,
	"true":        BooleanLiteral,
	"false":       BooleanLiteral,
}

// Span is a single source coordinate: 1-based line and column, 0-based byte
// index into the source.
type Span struct {
	Line   int
	Column int
	Index  int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token is a single lexeme: its kind, the exact source slice it was scanned
// from, and the byte span and Span pair delimiting it.
type Token struct {
	Kind  Kind
	Text  string
	Start Span
	End   Span

	// ByteStart and ByteEnd are the raw byte offsets backing Start.Index and
	// End.Index, kept alongside them since callers frequently need a slice
	// range rather than two separate coordinates.
	ByteStart int
	ByteEnd   int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "<EOF>"
	}
	return t.Text
}

func (t Token) GoString() string {
	return fmt.Sprintf("Token{%s, %q}@%s", t.Kind, t.Text, t.Start)
}
