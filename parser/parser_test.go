package parser_test

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"
	"github.com/thriftlang/rico/ast"
	"github.com/thriftlang/rico/parser"
)

func TestParseSampleDocumentsAllSucceed(t *testing.T) {
	samples := []string{
		"namespace go demo",
		`include "shared.thrift"`,
		"typedef list<i32> IDs",
		"const bool FLAG = true",
		"struct Empty {}",
		"union Payload { 1: string text, 2: binary data }",
		"exception NotFound { 1: string message }",
		"service Empty {}",
	}
	for _, src := range samples {
		doc, err := parser.New(src).Parse()
		if err != nil {
			t.Fatalf("parsing %q: %v\n%s", src, err, repr.String(doc))
		}
		require.Len(t, doc.Members, 1)
	}
}

func TestParseNamespaceAndStruct(t *testing.T) {
	doc, err := parser.New("namespace rs demo\nstruct User { 1: string name 2: i32 age }").Parse()
	require.NoError(t, err)
	require.Len(t, doc.Members, 2)

	ns, ok := doc.Members[0].(*ast.Namespace)
	require.True(t, ok)
	require.Equal(t, "rs", ns.Scope)
	require.Equal(t, "demo", ns.Name)

	s, ok := doc.Members[1].(*ast.StructLike)
	require.True(t, ok)
	require.Equal(t, ast.KindStructDefinition, s.Kind)
	require.Equal(t, "User", s.Name)
	require.Len(t, s.Members, 2)
	require.Equal(t, "1", *s.Members[0].FieldID)
	require.Equal(t, "name", s.Members[0].Name)
	require.Equal(t, ast.Default, s.Members[0].RequiredType)
	require.Equal(t, "2", *s.Members[1].FieldID)
	require.Equal(t, "age", s.Members[1].Name)
}

func TestParseBaseTypeCarriesKeywordKind(t *testing.T) {
	doc, err := parser.New("typedef i32 Count").Parse()
	require.NoError(t, err)
	td := doc.Members[0].(*ast.Typedef)
	base, ok := td.FieldType.(*ast.BaseType)
	require.True(t, ok)
	require.Equal(t, ast.KindI32Keyword, base.Kind)
	require.Equal(t, "i32", base.Value)
}

func TestParseDottedIdentifierType(t *testing.T) {
	doc, err := parser.New("typedef shared.User Alias").Parse()
	require.NoError(t, err)
	td := doc.Members[0].(*ast.Typedef)
	ref, ok := td.FieldType.(*ast.IdentifierType)
	require.True(t, ok)
	require.Equal(t, "shared.User", ref.Value)
}

func TestParseEnumWithAnnotations(t *testing.T) {
	doc, err := parser.New(`enum Status { ACTIVE = 1, INACTIVE = 2, DELETED = 3 (deprecated = "use INACTIVE") }`).Parse()
	require.NoError(t, err)
	require.Len(t, doc.Members, 1)

	e, ok := doc.Members[0].(*ast.Enum)
	require.True(t, ok)
	require.Equal(t, "Status", e.Name)
	require.Len(t, e.Members, 3)
	require.Equal(t, "1", e.Members[0].Initializer.Value)
	require.NotNil(t, e.Members[2].Annotations)
	require.Equal(t, "deprecated", e.Members[2].Annotations.Members[0].Name)
	require.Equal(t, `"use INACTIVE"`, e.Members[2].Annotations.Members[0].Value)
}

func TestParseEnumHexInitializer(t *testing.T) {
	doc, err := parser.New("enum Flags { READ = 0x1, WRITE = 0x2 }").Parse()
	require.NoError(t, err)
	e := doc.Members[0].(*ast.Enum)
	require.Equal(t, ast.KindHexLiteral, e.Members[0].Initializer.Kind)
	require.Equal(t, "0x1", e.Members[0].Initializer.Value)
}

func TestParseEnumMemberOrderMatchesSource(t *testing.T) {
	doc, err := parser.New("enum E { C B A }").Parse()
	require.NoError(t, err)
	e := doc.Members[0].(*ast.Enum)
	require.Equal(t, []string{"C", "B", "A"}, []string{e.Members[0].Name, e.Members[1].Name, e.Members[2].Name})
}

func TestParseServiceWithOnewayAndThrows(t *testing.T) {
	src := "service US { User getUser(1: i32 id) throws (1: UserNotFound nf) void createUser(1: User u) oneway void notify(1: string m) }"
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	svc, ok := doc.Members[0].(*ast.Service)
	require.True(t, ok)
	require.Len(t, svc.Members, 3)
	require.False(t, svc.Members[0].Oneway)
	require.Len(t, svc.Members[0].Throws, 1)
	require.Equal(t, "nf", svc.Members[0].Throws[0].Name)
	require.Nil(t, svc.Members[1].Throws)
	require.True(t, svc.Members[2].Oneway)

	rt, ok := svc.Members[1].ReturnType.(*ast.BaseType)
	require.True(t, ok)
	require.Equal(t, ast.KindVoidKeyword, rt.Kind)
	require.Equal(t, "void", rt.Value)
}

func TestParseServiceExtends(t *testing.T) {
	doc, err := parser.New("service Child extends Parent {}").Parse()
	require.NoError(t, err)
	svc := doc.Members[0].(*ast.Service)
	require.NotNil(t, svc.Extends)
	require.Equal(t, "Parent", *svc.Extends)
}

func TestParseStructAnnotationsAfterBody(t *testing.T) {
	doc, err := parser.New(`struct S { 1: i32 x } (gen = "go", final = "true")`).Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.NotNil(t, s.Annotations)
	require.Len(t, s.Annotations.Members, 2)
	require.Equal(t, "gen", s.Annotations.Members[0].Name)
	require.Equal(t, "final", s.Annotations.Members[1].Name)
}

func TestParseEmptyAnnotationBlock(t *testing.T) {
	doc, err := parser.New("struct S {} ()").Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.NotNil(t, s.Annotations)
	require.Empty(t, s.Annotations.Members)
}

func TestParseConstListAndMap(t *testing.T) {
	src := `const list<string> ADMINS = ["a", "b"]
const map<string, i32> LIMITS = {"x": 1, "y": 2}`
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	require.Len(t, doc.Members, 2)

	c1, ok := doc.Members[0].(*ast.Const)
	require.True(t, ok)
	list, ok := c1.Value.(*ast.ConstList)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
	leaf := list.Elements[0].(*ast.ConstValue)
	require.Equal(t, ast.KindStringLiteral, leaf.Kind)
	require.Equal(t, `"a"`, leaf.Value)

	c2, ok := doc.Members[1].(*ast.Const)
	require.True(t, ok)
	m, ok := c2.Value.(*ast.ConstMap)
	require.True(t, ok)
	require.Len(t, m.Properties, 2)
	require.Equal(t, `"x"`, m.Properties[0].Name.(*ast.ConstValue).Value)
	require.Equal(t, "1", m.Properties[0].Value.(*ast.ConstValue).Value)
}

func TestParseConstIdentifierReference(t *testing.T) {
	doc, err := parser.New("const i32 X = Limits.MAX").Parse()
	require.NoError(t, err)
	c := doc.Members[0].(*ast.Const)
	leaf, ok := c.Value.(*ast.ConstValue)
	require.True(t, ok)
	require.Equal(t, ast.KindIdentifer, leaf.Kind)
	require.Equal(t, "Limits.MAX", leaf.Value)
}

func TestParseTrailingCommasTolerated(t *testing.T) {
	samples := []string{
		`const list<i32> L = [1, 2, 3,]`,
		`const map<string, i32> M = {"a": 1,}`,
		"struct S { 1: i32 x, 2: i32 y, }",
	}
	for _, src := range samples {
		_, err := parser.New(src).Parse()
		require.NoError(t, err, "source: %s", src)
	}
}

func TestParseNestedConstValues(t *testing.T) {
	doc, err := parser.New(`const map<string, list<i32>> M = {"xs": [1, 2], "ys": []}`).Parse()
	require.NoError(t, err)
	c := doc.Members[0].(*ast.Const)
	m := c.Value.(*ast.ConstMap)
	require.Len(t, m.Properties, 2)
	xs := m.Properties[0].Value.(*ast.ConstList)
	require.Len(t, xs.Elements, 2)
	ys := m.Properties[1].Value.(*ast.ConstList)
	require.Empty(t, ys.Elements)
}

func TestParseFieldDefaultValues(t *testing.T) {
	doc, err := parser.New(`struct S { 1: i32 x = 42 2: string s = "hi" 3: bool b = true 4: Status st = Status.ACTIVE }`).Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Equal(t, "42", s.Members[0].DefaultValue.(*ast.ConstValue).Value)
	require.Equal(t, `"hi"`, s.Members[1].DefaultValue.(*ast.ConstValue).Value)
	require.Equal(t, ast.KindBooleanLiteral, s.Members[2].DefaultValue.(*ast.ConstValue).Kind)
	require.Equal(t, ast.KindIdentifer, s.Members[3].DefaultValue.(*ast.ConstValue).Kind)
}

func TestParseFieldRequiredAndOptional(t *testing.T) {
	doc, err := parser.New("struct S { 1: required i32 x 2: optional i32 y 3: i32 z }").Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Equal(t, ast.Required, s.Members[0].RequiredType)
	require.Equal(t, ast.Optional, s.Members[1].RequiredType)
	require.Equal(t, ast.Default, s.Members[2].RequiredType)
}

func TestParseFieldIDBounds(t *testing.T) {
	doc, err := parser.New("struct S { 0: i32 a 9223372036854775807: i32 b }").Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Equal(t, "0", *s.Members[0].FieldID)
	require.Equal(t, "9223372036854775807", *s.Members[1].FieldID)
}

func TestParseFieldWithoutID(t *testing.T) {
	doc, err := parser.New("struct S { i32 x }").Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Nil(t, s.Members[0].FieldID)
	require.Equal(t, "x", s.Members[0].Name)
}

func TestParseInvalidFieldID(t *testing.T) {
	_, err := parser.New("struct S { -1: string x }").Parse()
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.InvalidFieldID, perr.Code)
}

func TestParseFieldIDWithoutColon(t *testing.T) {
	_, err := parser.New("struct S { 1 i32 x }").Parse()
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.InvalidFieldID, perr.Code)
}

func TestParseLeadingCommentsAttachToNextDefinition(t *testing.T) {
	src := "// comment A\n// comment B\nstruct S {}"
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	s, ok := doc.Members[0].(*ast.StructLike)
	require.True(t, ok)
	require.Len(t, s.Comments, 2)
	require.Equal(t, "// comment A", s.Comments[0].Value)
	require.Equal(t, "// comment B", s.Comments[1].Value)
}

func TestParseCommentsAttachToNextMemberInsideBody(t *testing.T) {
	src := `struct S {
	1: i32 x
	// belongs to y
	2: i32 y
}`
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Empty(t, s.Members[0].Comments)
	require.Len(t, s.Members[1].Comments, 1)
	require.Equal(t, "// belongs to y", s.Members[1].Comments[0].Value)
}

func TestParseBlockCommentAttachment(t *testing.T) {
	src := "/* doc\n   for E */\nenum E { A }"
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	e := doc.Members[0].(*ast.Enum)
	require.Len(t, e.Comments, 1)
	require.Equal(t, ast.KindCommentBlock, e.Comments[0].Kind)
	require.Equal(t, "/* doc\n   for E */", e.Comments[0].Value)
}

func TestParseEmptyInputProducesEmptyDocument(t *testing.T) {
	doc, err := parser.New("").Parse()
	require.NoError(t, err)
	require.Empty(t, doc.Members)
}

func TestParseCommentOnlyInputDiscardsComments(t *testing.T) {
	doc, err := parser.New("// just a comment\n").Parse()
	require.NoError(t, err)
	require.Empty(t, doc.Members)
}

func TestParseNestedCollectionType(t *testing.T) {
	doc, err := parser.New("typedef list<map<string, list<i32>>> Matrix").Parse()
	require.NoError(t, err)
	td, ok := doc.Members[0].(*ast.Typedef)
	require.True(t, ok)
	outer, ok := td.FieldType.(*ast.ListType)
	require.True(t, ok)
	inner, ok := outer.ValueType.(*ast.MapType)
	require.True(t, ok)
	_, ok = inner.ValueType.(*ast.ListType)
	require.True(t, ok)
}

func TestParseFieldNameAcceptsExtendedKeywords(t *testing.T) {
	doc, err := parser.New("struct S { 1: string namespace 2: string throws }").Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Equal(t, "namespace", s.Members[0].Name)
	require.Equal(t, "throws", s.Members[1].Name)
}

func TestParseFieldNameRejectsOtherKeywords(t *testing.T) {
	_, err := parser.New("struct S { 1: string void }").Parse()
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.InvalidFieldName, perr.Code)
}

func TestParseVoidOutsideReturnTypeIsUnsupported(t *testing.T) {
	_, err := parser.New("struct S { 1: void x }").Parse()
	require.Error(t, err)
	perr, ok := err.(*parser.Error)
	require.True(t, ok)
	require.Equal(t, parser.UnsupportedType, perr.Code)
}

func TestParseErrorCodes(t *testing.T) {
	cases := []struct {
		src  string
		code parser.ErrorCode
	}{
		{"@", parser.UnrecognizedToken},
		{"}", parser.UnexpectedToken},
		{"namespace", parser.MissingNamespaceScope},
		{"namespace go", parser.MissingNamespaceIdentifier},
		{"include 42", parser.MissingIncludeIdentifier},
		{"const i32 = 1", parser.MissingConstIdentifier},
		{"typedef i32 struct", parser.MissingTypedefIdentifier},
		{"typedef", parser.MissingType},
		{"enum {}", parser.MissingEnumIdentifier},
		{"enum E { 42 }", parser.InvalidEnumMemberName},
		{`enum E { A = "one" }`, parser.InvalidValue},
		{"struct {}", parser.MissingStructIdentifier},
		{"union {}", parser.MissingStructIdentifier},
		{"exception {}", parser.MissingStructIdentifier},
		{"service {}", parser.MissingServiceIdentifier},
		{"service S extends {}", parser.MissingServiceExtends},
		{"struct S { 1: i32 x", parser.UnexpectedEOF},
		{"enum E { A", parser.UnexpectedEOF},
		{"service S { i32 get(", parser.UnexpectedEOF},
		{"const list<i32> L = [1, 2", parser.UnexpectedEOF},
		{`const map<string, i32> M = {"a": 1`, parser.UnexpectedEOF},
		{"const i32 X =", parser.UnexpectedEOF},
		{"service S { oneway", parser.InvalidReturnType},
		{"const i32 X = }", parser.InvalidValue},
	}
	for _, tc := range cases {
		_, err := parser.New(tc.src).Parse()
		require.Error(t, err, "source: %s", tc.src)
		perr, ok := err.(*parser.Error)
		require.True(t, ok, "source: %s, error: %v", tc.src, err)
		require.Equal(t, tc.code, perr.Code, "source: %s", tc.src)
	}
}

func TestParseErrorCarriesSpan(t *testing.T) {
	_, err := parser.New("struct S { -1: string x }").Parse()
	require.Error(t, err)
	perr := err.(*parser.Error)
	require.Equal(t, 1, perr.Loc.Start.Line)
	require.Equal(t, 12, perr.Loc.Start.Column)
	require.Equal(t, 11, perr.Loc.Start.Index)
}

func TestParseEOFErrorAnchorsToLastToken(t *testing.T) {
	src := "struct S {"
	_, err := parser.New(src).Parse()
	require.Error(t, err)
	perr := err.(*parser.Error)
	require.Equal(t, parser.UnexpectedEOF, perr.Code)
	require.Equal(t, len(src), perr.Loc.End.Index)
}

func TestParseNodeLocationsSpanConstituentTokens(t *testing.T) {
	src := `struct User { 1: string name }`
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	s := doc.Members[0].(*ast.StructLike)
	require.Equal(t, 0, s.Loc.Start.Index)
	require.Equal(t, len(src), s.Loc.End.Index)
	require.Equal(t, "struct", src[s.Loc.Start.Index:s.Loc.Start.Index+6])

	f := s.Members[0]
	require.Equal(t, "1: string name", src[f.Loc.Start.Index:f.Loc.End.Index])
}

func TestParseSeparatorsBetweenMembersAreOptional(t *testing.T) {
	variants := []string{
		"struct S { 1: i32 x, 2: i32 y }",
		"struct S { 1: i32 x; 2: i32 y }",
		"struct S { 1: i32 x 2: i32 y }",
		"struct S { 1: i32 x,\n2: i32 y;\n}",
	}
	for _, src := range variants {
		doc, err := parser.New(src).Parse()
		require.NoError(t, err, "source: %s", src)
		s := doc.Members[0].(*ast.StructLike)
		require.Len(t, s.Members, 2, "source: %s", src)
	}
}

func TestParseMemberOrderMatchesSource(t *testing.T) {
	src := strings.Join([]string{
		"namespace go demo",
		`include "a.thrift"`,
		"typedef i32 T",
		"const i32 C = 1",
		"enum E { A }",
		"struct S {}",
		"service Svc {}",
	}, "\n")
	doc, err := parser.New(src).Parse()
	require.NoError(t, err)
	require.Len(t, doc.Members, 7)
	require.Equal(t, ast.KindNamespaceDefinition, doc.Members[0].NodeKind())
	require.Equal(t, ast.KindIncludeDefinition, doc.Members[1].NodeKind())
	require.Equal(t, ast.KindTypedefDefinition, doc.Members[2].NodeKind())
	require.Equal(t, ast.KindConstDefinition, doc.Members[3].NodeKind())
	require.Equal(t, ast.KindEnumDefinition, doc.Members[4].NodeKind())
	require.Equal(t, ast.KindStructDefinition, doc.Members[5].NodeKind())
	require.Equal(t, ast.KindServiceDefinition, doc.Members[6].NodeKind())
}
