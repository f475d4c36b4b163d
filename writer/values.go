package writer

import "github.com/thriftlang/rico/ast"

// writeFieldValue writes a const value, field default, or list/map literal.
func (w *Writer) writeFieldValue(v ast.InitialValue) {
	switch val := v.(type) {
	case *ast.ConstValue:
		w.out.WriteString(val.Value)
	case *ast.ConstList:
		w.out.WriteByte('[')
		for i, elem := range val.Elements {
			if i > 0 {
				w.out.WriteString(", ")
			}
			w.writeFieldValue(elem)
		}
		w.out.WriteByte(']')
	case *ast.ConstMap:
		w.out.WriteByte('{')
		for i, prop := range val.Properties {
			if i > 0 {
				w.out.WriteString(", ")
			}
			w.writeFieldValue(prop.Name)
			w.out.WriteString(": ")
			w.writeFieldValue(prop.Value)
		}
		w.out.WriteByte('}')
	}
}
