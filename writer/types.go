package writer

import "github.com/thriftlang/rico/ast"

// writeFieldType writes a type reference: a bare base/identifier value, or
// a recursive list<T>/set<T>/map<K, V>.
func (w *Writer) writeFieldType(t ast.FieldType) {
	switch ft := t.(type) {
	case *ast.BaseType:
		w.out.WriteString(ft.Value)
	case *ast.IdentifierType:
		w.out.WriteString(ft.Value)
	case *ast.ListType:
		w.out.WriteString(ft.Value)
		w.out.WriteByte('<')
		w.writeFieldType(ft.ValueType)
		w.out.WriteByte('>')
	case *ast.SetType:
		w.out.WriteString(ft.Value)
		w.out.WriteByte('<')
		w.writeFieldType(ft.ValueType)
		w.out.WriteByte('>')
	case *ast.MapType:
		w.out.WriteString(ft.Value)
		w.out.WriteByte('<')
		w.writeFieldType(ft.KeyType)
		w.out.WriteString(", ")
		w.writeFieldType(ft.ValueType)
		w.out.WriteByte('>')
	}
}
