// Package ast defines the Thrift IDL abstract syntax tree: a tagged union of
// definitions, types, and values, each carrying a Kind and a LOC. Every node
// type in this package marshals directly to the camelCase JSON wire format;
// unmarshaling the recursive, untagged slots (FieldType, InitialValue,
// DocumentMember) goes through the decoders in document.go, types.go, and
// values.go.
package ast

import "fmt"

// Span is a single source coordinate: 1-based line and column, 0-based byte
// index into the source that produced it.
type Span struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Index  int `json:"index"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// LOC is the source extent of a node or token: an inclusive start and an
// exclusive end.
type LOC struct {
	Start Span `json:"start"`
	End   Span `json:"end"`
}

func (l LOC) String() string {
	return fmt.Sprintf("%s-%s", l.Start, l.End)
}

// Kind tags every AST node with its place in the closed node enumeration.
// The string values are the wire format: they appear verbatim as the "kind"
// field of every serialized node.
type Kind string

const (
	KindDocument  Kind = "ThriftDocument"
	KindIdentifer Kind = "Identifier"
	KindFieldID   Kind = "FieldID"

	KindNamespaceDefinition  Kind = "NamespaceDefinition"
	KindIncludeDefinition    Kind = "IncludeDefinition"
	KindCppIncludeDefinition Kind = "CppIncludeDefinition"
	KindConstDefinition      Kind = "ConstDefinition"
	KindStructDefinition     Kind = "StructDefinition"
	KindEnumDefinition       Kind = "EnumDefinition"
	KindServiceDefinition    Kind = "ServiceDefinition"
	KindExceptionDefinition  Kind = "ExceptionDefinition"
	KindTypedefDefinition    Kind = "TypedefDefinition"
	KindUnionDefinition      Kind = "UnionDefinition"
	KindFieldDefinition      Kind = "FieldDefinition"
	KindFunctionDefinition   Kind = "FunctionDefinition"
	KindParametersDefinition Kind = "ParametersDefinition"
	KindThrowsDefinition     Kind = "ThrowsDefinition"

	KindFieldType Kind = "FieldType"
	KindBaseType  Kind = "BaseType"
	KindSetType   Kind = "SetType"
	KindMapType   Kind = "MapType"
	KindListType  Kind = "ListType"

	KindConstValue    Kind = "ConstValue"
	KindIntConstant   Kind = "IntConstant"
	KindDoubleConstant Kind = "DoubleConstant"
	KindConstList     Kind = "ConstList"
	KindConstMap      Kind = "ConstMap"
	KindEnumMember    Kind = "EnumMember"

	KindCommentLine  Kind = "CommentLine"
	KindCommentBlock Kind = "CommentBlock"

	KindStringLiteral      Kind = "StringLiteral"
	KindIntegerLiteral     Kind = "IntegerLiteral"
	KindFloatLiteral       Kind = "FloatLiteral"
	KindHexLiteral         Kind = "HexLiteral"
	KindBooleanLiteral     Kind = "BooleanLiteral"
	KindPropertyAssignment Kind = "PropertyAssignment"

	KindAnnotation  Kind = "Annotation"
	KindAnnotations Kind = "Annotations"

	// Keyword kinds, one per keyword token. The base-type keywords among them
	// tag concrete type leaves (a BaseType for "i32" carries KindI32Keyword);
	// the rest exist to keep the enumeration closed over every token kind.
	KindNamespaceKeyword  Kind = "NamespaceKeyword"
	KindIncludeKeyword    Kind = "IncludeKeyword"
	KindCppIncludeKeyword Kind = "CppIncludeKeyword"
	KindTypedefKeyword    Kind = "TypedefKeyword"
	KindConstKeyword      Kind = "ConstKeyword"
	KindEnumKeyword       Kind = "EnumKeyword"
	KindStructKeyword     Kind = "StructKeyword"
	KindUnionKeyword      Kind = "UnionKeyword"
	KindExceptionKeyword  Kind = "ExceptionKeyword"
	KindServiceKeyword    Kind = "ServiceKeyword"
	KindExtendsKeyword    Kind = "ExtendsKeyword"
	KindThrowsKeyword     Kind = "ThrowsKeyword"
	KindOnewayKeyword     Kind = "OnewayKeyword"
	KindVoidKeyword       Kind = "VoidKeyword"
	KindRequiredKeyword   Kind = "RequiredKeyword"
	KindOptionalKeyword   Kind = "OptionalKeyword"
	KindTrueKeyword       Kind = "TrueKeyword"
	KindFalseKeyword      Kind = "FalseKeyword"
	KindBoolKeyword       Kind = "BoolKeyword"
	KindByteKeyword       Kind = "ByteKeyword"
	KindI8Keyword         Kind = "I8Keyword"
	KindI16Keyword        Kind = "I16Keyword"
	KindI32Keyword        Kind = "I32Keyword"
	KindI64Keyword        Kind = "I64Keyword"
	KindDoubleKeyword     Kind = "DoubleKeyword"
	KindStringKeyword     Kind = "StringKeyword"
	KindBinaryKeyword     Kind = "BinaryKeyword"
	KindMapKeyword        Kind = "MapKeyword"
	KindListKeyword       Kind = "ListKeyword"
	KindSetKeyword        Kind = "SetKeyword"
)

// RequiredType is the closed set of field qualifiers. The zero value is
// never valid; "default" must be set explicitly by the parser when neither
// required nor optional appears in the source.
type RequiredType string

const (
	Required RequiredType = "required"
	Optional RequiredType = "optional"
	Default  RequiredType = "default"
)

// Comment is a single line or block comment, preserved verbatim including
// its marker (//, #, or /* */), and attached to the AST node that follows it.
type Comment struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	Loc   LOC    `json:"loc"`
}
