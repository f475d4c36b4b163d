package writer

import (
	"fmt"

	"github.com/thriftlang/rico/ast"
)

func (w *Writer) writeNamespace(ns *ast.Namespace) {
	w.writeComments(ns.Comments)
	fmt.Fprintf(&w.out, "namespace %s %s\n", ns.Scope, ns.Name)
}

func (w *Writer) writeInclude(inc *ast.Include) {
	w.writeComments(inc.Comments)
	fmt.Fprintf(&w.out, "include %s\n", inc.Name)
}

func (w *Writer) writeCppInclude(inc *ast.CppInclude) {
	w.writeComments(inc.Comments)
	fmt.Fprintf(&w.out, "cpp_include %s\n", inc.Name)
}

func (w *Writer) writeConst(c *ast.Const) {
	w.writeComments(c.Comments)
	w.out.WriteString("const ")
	w.writeFieldType(c.FieldType)
	fmt.Fprintf(&w.out, " %s = ", c.Name)
	w.writeFieldValue(c.Value)
	w.out.WriteByte('\n')
}

func (w *Writer) writeTypedef(td *ast.Typedef) {
	w.writeComments(td.Comments)
	w.out.WriteString("typedef ")
	w.writeFieldType(td.FieldType)
	fmt.Fprintf(&w.out, " %s\n", td.Name)
}

func (w *Writer) writeEnum(e *ast.Enum) {
	w.writeComments(e.Comments)
	fmt.Fprintf(&w.out, "enum %s {\n", e.Name)
	w.indent()

	for _, member := range e.Members {
		w.writeComments(member.Comments)
		w.writeIndent()
		w.out.WriteString(member.Name)
		if member.Initializer != nil {
			fmt.Fprintf(&w.out, " = %s", member.Initializer.Value)
		}
		w.writeAnnotations(member.Annotations)
		w.out.WriteString(",\n")
	}

	w.dedent()
	w.out.WriteByte('}')
	w.writeAnnotations(e.Annotations)
	w.out.WriteByte('\n')
}

// structLikeKeyword returns the source keyword for a StructLike's Kind.
func structLikeKeyword(kind ast.Kind) string {
	switch kind {
	case ast.KindUnionDefinition:
		return "union"
	case ast.KindExceptionDefinition:
		return "exception"
	default:
		return "struct"
	}
}

func (w *Writer) writeStructLike(s *ast.StructLike) {
	w.writeComments(s.Comments)
	fmt.Fprintf(&w.out, "%s %s {\n", structLikeKeyword(s.Kind), s.Name)
	w.indent()

	for i := range s.Members {
		w.writeField(&s.Members[i])
	}

	w.dedent()
	w.out.WriteByte('}')
	w.writeAnnotations(s.Annotations)
	w.out.WriteByte('\n')
}

func (w *Writer) writeService(s *ast.Service) {
	w.writeComments(s.Comments)
	fmt.Fprintf(&w.out, "service %s", s.Name)
	if s.Extends != nil {
		fmt.Fprintf(&w.out, " extends %s", *s.Extends)
	}
	w.out.WriteString(" {\n")
	w.indent()

	for i := range s.Members {
		w.writeFunction(&s.Members[i])
	}

	w.dedent()
	w.out.WriteByte('}')
	w.writeAnnotations(s.Annotations)
	w.out.WriteByte('\n')
}

func (w *Writer) writeFunction(f *ast.Function) {
	w.writeComments(f.Comments)
	w.writeIndent()

	if f.Oneway {
		w.out.WriteString("oneway ")
	}

	w.writeFieldType(f.ReturnType)
	fmt.Fprintf(&w.out, " %s(", f.Name)

	for i := range f.Params {
		w.writeParam(&f.Params[i], i == 0)
	}
	w.out.WriteByte(')')

	if f.Throws != nil {
		w.out.WriteString(" throws (")
		for i := range f.Throws {
			w.writeParam(&f.Throws[i], i == 0)
		}
		w.out.WriteByte(')')
	}

	w.writeAnnotations(f.Annotations)
	w.out.WriteByte('\n')
}
