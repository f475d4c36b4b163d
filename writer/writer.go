// Package writer renders a Document AST back to canonical Thrift IDL text.
// It performs a structural, not byte-exact, round trip: re-parsing a
// written document yields an AST equal to the one that produced it, but
// whitespace and comment placement follow this package's own conventions
// rather than the original source's.
package writer

import (
	"fmt"
	"strings"

	"github.com/thriftlang/rico/ast"
)

// Writer accumulates Thrift IDL text for one Document. It is not safe for
// concurrent use; create one Writer per call to Write.
type Writer struct {
	indentLevel int
	out         strings.Builder
}

// New returns a Writer ready to render a document.
func New() *Writer {
	return &Writer{}
}

func (w *Writer) indent() {
	w.indentLevel++
}

func (w *Writer) dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

func (w *Writer) writeIndent() {
	w.out.WriteString(strings.Repeat("  ", w.indentLevel))
}

// Write renders doc as canonical Thrift IDL text.
func Write(doc *ast.Document) string {
	w := New()
	for _, member := range doc.Members {
		switch m := member.(type) {
		case *ast.Namespace:
			w.writeNamespace(m)
		case *ast.Include:
			w.writeInclude(m)
		case *ast.CppInclude:
			w.writeCppInclude(m)
		case *ast.Const:
			w.writeConst(m)
		case *ast.Typedef:
			w.writeTypedef(m)
		case *ast.Enum:
			w.writeEnum(m)
		case *ast.StructLike:
			w.writeStructLike(m)
		case *ast.Service:
			w.writeService(m)
		default:
			panic(fmt.Sprintf("writer: unhandled document member %T", m))
		}
		w.out.WriteByte('\n')
	}
	return w.out.String()
}
