package parser

import (
	"fmt"

	"github.com/thriftlang/rico/ast"
)

// ErrorCode identifies a member of the closed parse-error taxonomy. Codes
// are stable across versions since downstream tooling matches on them.
type ErrorCode string

const (
	UnrecognizedToken          ErrorCode = "unrecognized_token"
	UnexpectedToken            ErrorCode = "unexpected_token"
	UnexpectedEOF              ErrorCode = "unexpected_eof"
	UnsupportedType            ErrorCode = "unsupported_type"
	MissingType                ErrorCode = "missing_type"
	InvalidValue               ErrorCode = "invalid_value"
	InvalidReturnType          ErrorCode = "invalid_return_type"
	InvalidFieldName           ErrorCode = "invalid_field_name"
	InvalidFieldID             ErrorCode = "invalid_field_id"
	MissingNamespaceIdentifier ErrorCode = "missing_namespace_identifier"
	MissingNamespaceScope      ErrorCode = "missing_namespace_scope"
	MissingIncludeIdentifier   ErrorCode = "missing_include_identifier"
	MissingConstIdentifier     ErrorCode = "missing_const_identifier"
	MissingTypedefIdentifier   ErrorCode = "missing_typedef_identifier"
	MissingEnumIdentifier      ErrorCode = "missing_enum_identifier"
	MissingStructIdentifier    ErrorCode = "missing_struct_identifier"
	MissingServiceIdentifier   ErrorCode = "missing_service_identifier"
	MissingServiceExtends      ErrorCode = "missing_service_extends"
	InvalidEnumMemberName      ErrorCode = "invalid_enum_member_name"
)

// Error is a single diagnostic: a stable code, a human-readable message, an
// optional help hint showing correct usage, and the source span it anchors
// to. Parsing is fail-fast -- the first Error produced aborts the parse.
type Error struct {
	Code    ErrorCode
	Message string
	Help    string
	Loc     ast.LOC
}

func (e *Error) Error() string {
	if e.Help == "" {
		return fmt.Sprintf("%s: %s", e.Loc.Start, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Loc.Start, e.Message, e.Help)
}

func newError(code ErrorCode, loc ast.LOC, help, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Help: help, Loc: loc}
}

func errUnrecognizedToken(loc ast.LOC, text string) *Error {
	return newError(UnrecognizedToken, loc, "",
		"unrecognized token %q", text)
}

func errUnexpectedToken(loc ast.LOC, got string) *Error {
	return newError(UnexpectedToken, loc,
		"check for a missing keyword, separator, or closing brace",
		"unexpected token %q", got)
}

func errUnexpectedEOF(loc ast.LOC) *Error {
	return newError(UnexpectedEOF, loc,
		"check for an unclosed { or ( earlier in the file",
		"unexpected end of input")
}

func errUnsupportedType(loc ast.LOC, got string) *Error {
	return newError(UnsupportedType, loc,
		`use one of the base types, or "list"/"set"/"map", or a user-defined identifier`,
		"%q is not a valid type", got)
}

func errMissingType(loc ast.LOC) *Error {
	return newError(MissingType, loc,
		`a type is required here, e.g. "string" or "list<i32>"`,
		"expected a type")
}

func errInvalidValue(loc ast.LOC, got string) *Error {
	return newError(InvalidValue, loc,
		`use a literal, an identifier reference, a [list], or a {map}`,
		"%q is not a valid value", got)
}

func errInvalidReturnType(loc ast.LOC, got string) *Error {
	return newError(InvalidReturnType, loc,
		`a function's return type must be "void", a base type, a collection, or an identifier`,
		"%q is not a valid return type", got)
}

func errInvalidFieldName(loc ast.LOC, got string) *Error {
	return newError(InvalidFieldName, loc,
		"use an identifier, or one of the small set of keywords accepted as field names",
		"%q cannot be used as a field name", got)
}

func errInvalidFieldID(loc ast.LOC, text string) *Error {
	return newError(InvalidFieldID, loc,
		`field IDs must be non-negative integers, use like: "1: string name"`,
		"%q is not a valid field id", text)
}

func errMissingNamespaceIdentifier(loc ast.LOC) *Error {
	return newError(MissingNamespaceIdentifier, loc,
		`namespace declarations require a scope and a name, use like: "namespace go my.pkg"`,
		"expected a namespace name")
}

func errMissingNamespaceScope(loc ast.LOC) *Error {
	return newError(MissingNamespaceScope, loc,
		`namespace declarations require a scope and a name, use like: "namespace go my.pkg"`,
		"expected a namespace scope")
}

func errMissingIncludeIdentifier(loc ast.LOC) *Error {
	return newError(MissingIncludeIdentifier, loc,
		`include requires a quoted path, use like: include "shared.thrift"`,
		"expected a string literal after include")
}

func errMissingConstIdentifier(loc ast.LOC) *Error {
	return newError(MissingConstIdentifier, loc,
		"expected an identifier naming the constant",
		"expected a const name")
}

func errMissingTypedefIdentifier(loc ast.LOC) *Error {
	return newError(MissingTypedefIdentifier, loc,
		"expected an identifier naming the new type",
		"expected a typedef name")
}

func errMissingEnumIdentifier(loc ast.LOC) *Error {
	return newError(MissingEnumIdentifier, loc,
		"expected an identifier naming the enum",
		"expected an enum name")
}

func errMissingStructIdentifier(loc ast.LOC, kind string) *Error {
	return newError(MissingStructIdentifier, loc,
		fmt.Sprintf("expected an identifier naming the %s", kind),
		"expected a %s name", kind)
}

func errMissingServiceIdentifier(loc ast.LOC) *Error {
	return newError(MissingServiceIdentifier, loc,
		"expected an identifier naming the service",
		"expected a service name")
}

func errMissingServiceExtends(loc ast.LOC) *Error {
	return newError(MissingServiceExtends, loc,
		`"extends" must be followed by the identifier of another service`,
		"expected an identifier after extends")
}

func errInvalidEnumMemberName(loc ast.LOC, got string) *Error {
	return newError(InvalidEnumMemberName, loc,
		"enum members must be named by a plain identifier",
		"%q is not a valid enum member name", got)
}
