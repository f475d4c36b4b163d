package writer

import (
	"fmt"

	"github.com/thriftlang/rico/ast"
)

func (w *Writer) writeComments(comments []ast.Comment) {
	for _, c := range comments {
		w.writeIndent()
		fmt.Fprintf(&w.out, "%s\n", c.Value)
	}
}

// writeAnnotations writes the optional trailing " (name = value, ...)"
// block. It writes nothing when annotations is nil.
func (w *Writer) writeAnnotations(annotations *ast.Annotations) {
	if annotations == nil {
		return
	}
	w.out.WriteString(" (")
	for i, a := range annotations.Members {
		if i > 0 {
			w.out.WriteString(", ")
		}
		fmt.Fprintf(&w.out, "%s = %s", a.Name, a.Value)
	}
	w.out.WriteByte(')')
}

func (w *Writer) writeField(field *ast.Field) {
	w.writeComments(field.Comments)
	w.writeIndent()

	if field.FieldID != nil {
		fmt.Fprintf(&w.out, "%s: ", *field.FieldID)
	}

	switch field.RequiredType {
	case ast.Required:
		w.out.WriteString("required ")
	case ast.Optional:
		w.out.WriteString("optional ")
	}

	w.writeFieldType(field.FieldType)
	fmt.Fprintf(&w.out, " %s", field.Name)

	if field.DefaultValue != nil {
		w.out.WriteString(" = ")
		w.writeFieldValue(field.DefaultValue)
	}

	w.writeAnnotations(field.Annotations)
	w.out.WriteString(",\n")
}

// writeParam writes a single entry inside a function's parameter list or
// throws clause: no leading comment, no indentation, and no trailing comma.
// Every entry but the first is preceded by ", ", written here.
func (w *Writer) writeParam(field *ast.Field, isFirst bool) {
	if !isFirst {
		w.out.WriteString(", ")
	}
	if field.FieldID != nil {
		fmt.Fprintf(&w.out, "%s: ", *field.FieldID)
	}
	switch field.RequiredType {
	case ast.Required:
		w.out.WriteString("required ")
	case ast.Optional:
		w.out.WriteString("optional ")
	}
	w.writeFieldType(field.FieldType)
	fmt.Fprintf(&w.out, " %s", field.Name)
	if field.DefaultValue != nil {
		w.out.WriteString(" = ")
		w.writeFieldValue(field.DefaultValue)
	}
	w.writeAnnotations(field.Annotations)
}
