package ast

import (
	"encoding/json"
	"fmt"
)

// Namespace binds a target-language scope (go, java, py, ...) to a name for
// this document.
type Namespace struct {
	Kind     Kind      `json:"kind"`
	Loc      LOC       `json:"loc"`
	Scope    string    `json:"scope"`
	Name     string    `json:"name"`
	Comments []Comment `json:"comments"`
}

func (n *Namespace) documentMember() {}

// Include names another Thrift file this document depends on.
type Include struct {
	Kind     Kind      `json:"kind"`
	Loc      LOC       `json:"loc"`
	Name     string    `json:"name"`
	Comments []Comment `json:"comments"`
}

func (n *Include) documentMember() {}

// CppInclude names a C++-only header include. The node kind is part of the
// closed enumeration for wire compatibility; the parser does not currently
// dispatch to cpp_include at the top level (see DESIGN.md).
type CppInclude struct {
	Kind     Kind      `json:"kind"`
	Loc      LOC       `json:"loc"`
	Name     string    `json:"name"`
	Comments []Comment `json:"comments"`
}

func (n *CppInclude) documentMember() {}

// Const is a top-level typed constant declaration.
type Const struct {
	Kind      Kind         `json:"kind"`
	Loc       LOC          `json:"loc"`
	Name      string       `json:"name"`
	FieldType FieldType    `json:"fieldType"`
	Value     InitialValue `json:"value"`
	Comments  []Comment    `json:"comments"`
}

func (n *Const) documentMember() {}

// Typedef aliases an existing type under a new name.
type Typedef struct {
	Kind      Kind      `json:"kind"`
	Loc       LOC       `json:"loc"`
	Name      string    `json:"name"`
	FieldType FieldType `json:"fieldType"`
	Comments  []Comment `json:"comments"`
}

func (n *Typedef) documentMember() {}

// EnumMember is a single NAME[ = value] entry inside an enum body.
type EnumMember struct {
	Kind        Kind         `json:"kind"`
	Loc         LOC          `json:"loc"`
	Name        string       `json:"name"`
	Initializer *ConstValue  `json:"initializer,omitempty"`
	Comments    []Comment    `json:"comments"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

// Enum is a top-level enumerated type.
type Enum struct {
	Kind        Kind         `json:"kind"`
	Loc         LOC          `json:"loc"`
	Name        string       `json:"name"`
	Members     []EnumMember `json:"members"`
	Comments    []Comment    `json:"comments"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

func (n *Enum) documentMember() {}

// Field is a single member inside a struct/union/exception body, or a
// parameter/throws entry inside a function signature.
type Field struct {
	Kind         Kind         `json:"kind"`
	Loc          LOC          `json:"loc"`
	FieldID      *string      `json:"fieldID,omitempty"`
	RequiredType RequiredType `json:"requiredType"`
	FieldType    FieldType    `json:"fieldType"`
	Name         string       `json:"name"`
	DefaultValue InitialValue `json:"defaultValue,omitempty"`
	Annotations  *Annotations `json:"annotations,omitempty"`
	Comments     []Comment    `json:"comments"`
}

// StructLike is the shared shape of struct, union, and exception
// definitions; Kind distinguishes which one a given value represents. The
// three source forms are byte-for-byte identical in every field they carry,
// so this package collapses them into one Go type rather than three
// copy-pasted ones.
type StructLike struct {
	Kind        Kind         `json:"kind"`
	Loc         LOC          `json:"loc"`
	Name        string       `json:"name"`
	Members     []Field      `json:"members"`
	Comments    []Comment    `json:"comments"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

func (n *StructLike) documentMember() {}

// Function is a single RPC method inside a service body.
type Function struct {
	Kind        Kind         `json:"kind"`
	Loc         LOC          `json:"loc"`
	Oneway      bool         `json:"oneway"`
	ReturnType  FieldType    `json:"returnType"`
	Name        string       `json:"name"`
	Params      []Field      `json:"params"`
	Throws      []Field      `json:"throws,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	Comments    []Comment    `json:"comments"`
}

// Service is a top-level RPC interface, optionally extending another.
type Service struct {
	Kind        Kind         `json:"kind"`
	Loc         LOC          `json:"loc"`
	Name        string       `json:"name"`
	Extends     *string      `json:"extends,omitempty"`
	Members     []Function   `json:"members"`
	Comments    []Comment    `json:"comments"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

func (n *Service) documentMember() {}

// DocumentMember is the untagged union of every top-level definition kind.
type DocumentMember interface {
	documentMember()
	NodeKind() Kind
}

func (n *Namespace) NodeKind() Kind   { return n.Kind }
func (n *Include) NodeKind() Kind     { return n.Kind }
func (n *CppInclude) NodeKind() Kind  { return n.Kind }
func (n *Const) NodeKind() Kind       { return n.Kind }
func (n *Typedef) NodeKind() Kind     { return n.Kind }
func (n *Enum) NodeKind() Kind        { return n.Kind }
func (n *StructLike) NodeKind() Kind  { return n.Kind }
func (n *Service) NodeKind() Kind     { return n.Kind }

// Document is the root node: an ordered sequence of top-level definitions.
type Document struct {
	Kind    Kind             `json:"kind"`
	Members []DocumentMember `json:"members"`
}

// NewDocument returns an empty Document ready to be appended to by a parser.
func NewDocument() *Document {
	return &Document{Kind: KindDocument, Members: []DocumentMember{}}
}

// UnmarshalJSON implements recursive decoding for Member's untagged
// DocumentMember slots, and for the FieldType/InitialValue slots nested
// inside each member.
func (d *Document) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Kind    Kind              `json:"kind"`
		Members []json.RawMessage `json:"members"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	members := make([]DocumentMember, 0, len(shadow.Members))
	for _, raw := range shadow.Members {
		member, err := decodeDocumentMember(raw)
		if err != nil {
			return err
		}
		members = append(members, member)
	}
	d.Kind = shadow.Kind
	if d.Kind == "" {
		d.Kind = KindDocument
	}
	d.Members = members
	return nil
}

func decodeDocumentMember(raw json.RawMessage) (DocumentMember, error) {
	var peek struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return nil, err
	}
	switch peek.Kind {
	case KindNamespaceDefinition:
		var v Namespace
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindIncludeDefinition:
		var v Include
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindCppIncludeDefinition:
		var v CppInclude
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindConstDefinition:
		return decodeConst(raw)
	case KindTypedefDefinition:
		return decodeTypedef(raw)
	case KindEnumDefinition:
		var v Enum
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return &v, nil
	case KindStructDefinition, KindUnionDefinition, KindExceptionDefinition:
		return decodeStructLike(raw)
	case KindServiceDefinition:
		return decodeService(raw)
	default:
		return nil, fmt.Errorf("ast: unrecognized document member kind %q", peek.Kind)
	}
}

func decodeConst(raw json.RawMessage) (*Const, error) {
	var shadow struct {
		Kind      Kind            `json:"kind"`
		Loc       LOC             `json:"loc"`
		Name      string          `json:"name"`
		FieldType json.RawMessage `json:"fieldType"`
		Value     json.RawMessage `json:"value"`
		Comments  []Comment       `json:"comments"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return nil, err
	}
	ft, err := decodeFieldType(shadow.FieldType)
	if err != nil {
		return nil, err
	}
	val, err := decodeInitialValue(shadow.Value)
	if err != nil {
		return nil, err
	}
	return &Const{Kind: shadow.Kind, Loc: shadow.Loc, Name: shadow.Name, FieldType: ft, Value: val, Comments: shadow.Comments}, nil
}

func decodeTypedef(raw json.RawMessage) (*Typedef, error) {
	var shadow struct {
		Kind      Kind            `json:"kind"`
		Loc       LOC             `json:"loc"`
		Name      string          `json:"name"`
		FieldType json.RawMessage `json:"fieldType"`
		Comments  []Comment       `json:"comments"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return nil, err
	}
	ft, err := decodeFieldType(shadow.FieldType)
	if err != nil {
		return nil, err
	}
	return &Typedef{Kind: shadow.Kind, Loc: shadow.Loc, Name: shadow.Name, FieldType: ft, Comments: shadow.Comments}, nil
}

func decodeField(raw json.RawMessage) (Field, error) {
	var shadow struct {
		Kind         Kind            `json:"kind"`
		Loc          LOC             `json:"loc"`
		FieldID      *string         `json:"fieldID,omitempty"`
		RequiredType RequiredType    `json:"requiredType"`
		FieldType    json.RawMessage `json:"fieldType"`
		Name         string          `json:"name"`
		DefaultValue json.RawMessage `json:"defaultValue"`
		Annotations  *Annotations    `json:"annotations,omitempty"`
		Comments     []Comment       `json:"comments"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return Field{}, err
	}
	ft, err := decodeFieldType(shadow.FieldType)
	if err != nil {
		return Field{}, err
	}
	dv, err := decodeInitialValue(shadow.DefaultValue)
	if err != nil {
		return Field{}, err
	}
	return Field{
		Kind: shadow.Kind, Loc: shadow.Loc, FieldID: shadow.FieldID, RequiredType: shadow.RequiredType,
		FieldType: ft, Name: shadow.Name, DefaultValue: dv, Annotations: shadow.Annotations, Comments: shadow.Comments,
	}, nil
}

// UnmarshalJSON decodes a single Field, threading its FieldType and
// DefaultValue slots through the shared decoders.
func (f *Field) UnmarshalJSON(data []byte) error {
	decoded, err := decodeField(data)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

func decodeStructLike(raw json.RawMessage) (*StructLike, error) {
	var shadow struct {
		Kind        Kind              `json:"kind"`
		Loc         LOC               `json:"loc"`
		Name        string            `json:"name"`
		Members     []json.RawMessage `json:"members"`
		Comments    []Comment         `json:"comments"`
		Annotations *Annotations      `json:"annotations,omitempty"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return nil, err
	}
	members := make([]Field, 0, len(shadow.Members))
	for _, m := range shadow.Members {
		field, err := decodeField(m)
		if err != nil {
			return nil, err
		}
		members = append(members, field)
	}
	return &StructLike{
		Kind: shadow.Kind, Loc: shadow.Loc, Name: shadow.Name, Members: members,
		Comments: shadow.Comments, Annotations: shadow.Annotations,
	}, nil
}

func decodeFunction(raw json.RawMessage) (Function, error) {
	var shadow struct {
		Kind        Kind              `json:"kind"`
		Loc         LOC               `json:"loc"`
		Oneway      bool              `json:"oneway"`
		ReturnType  json.RawMessage   `json:"returnType"`
		Name        string            `json:"name"`
		Params      []json.RawMessage `json:"params"`
		Throws      []json.RawMessage `json:"throws,omitempty"`
		Annotations *Annotations      `json:"annotations,omitempty"`
		Comments    []Comment         `json:"comments"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return Function{}, err
	}
	rt, err := decodeFieldType(shadow.ReturnType)
	if err != nil {
		return Function{}, err
	}
	params := make([]Field, 0, len(shadow.Params))
	for _, p := range shadow.Params {
		f, err := decodeField(p)
		if err != nil {
			return Function{}, err
		}
		params = append(params, f)
	}
	var throws []Field
	if shadow.Throws != nil {
		throws = make([]Field, 0, len(shadow.Throws))
		for _, t := range shadow.Throws {
			f, err := decodeField(t)
			if err != nil {
				return Function{}, err
			}
			throws = append(throws, f)
		}
	}
	return Function{
		Kind: shadow.Kind, Loc: shadow.Loc, Oneway: shadow.Oneway, ReturnType: rt, Name: shadow.Name,
		Params: params, Throws: throws, Annotations: shadow.Annotations, Comments: shadow.Comments,
	}, nil
}

// UnmarshalJSON decodes a single Function, threading its ReturnType and
// field lists through the shared decoders.
func (fn *Function) UnmarshalJSON(data []byte) error {
	decoded, err := decodeFunction(data)
	if err != nil {
		return err
	}
	*fn = decoded
	return nil
}

func decodeService(raw json.RawMessage) (*Service, error) {
	var shadow struct {
		Kind        Kind              `json:"kind"`
		Loc         LOC               `json:"loc"`
		Name        string            `json:"name"`
		Extends     *string           `json:"extends,omitempty"`
		Members     []json.RawMessage `json:"members"`
		Comments    []Comment         `json:"comments"`
		Annotations *Annotations      `json:"annotations,omitempty"`
	}
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return nil, err
	}
	members := make([]Function, 0, len(shadow.Members))
	for _, m := range shadow.Members {
		fn, err := decodeFunction(m)
		if err != nil {
			return nil, err
		}
		members = append(members, fn)
	}
	return &Service{
		Kind: shadow.Kind, Loc: shadow.Loc, Name: shadow.Name, Extends: shadow.Extends,
		Members: members, Comments: shadow.Comments, Annotations: shadow.Annotations,
	}, nil
}
