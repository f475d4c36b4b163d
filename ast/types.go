package ast

import (
	"encoding/json"
	"fmt"
)

// FieldType is the recursive type-reference union: a base keyword type, a
// named (possibly dotted) identifier, or a list/set/map built from further
// FieldTypes. It is sealed to this package's concrete implementations.
type FieldType interface {
	fieldType()
	NodeKind() Kind
	NodeLoc() LOC
}

// BaseType is a leaf naming one of the built-in scalar keywords (string,
// i32, bool, void, ...). Kind carries the matching keyword kind
// (KindI32Keyword for "i32", and so on); Value carries the keyword text.
type BaseType struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	Loc   LOC    `json:"loc"`
}

func (t *BaseType) fieldType()    {}
func (t *BaseType) NodeKind() Kind { return t.Kind }
func (t *BaseType) NodeLoc() LOC  { return t.Loc }

// IdentifierType is a leaf naming a user-defined type by reference,
// possibly dotted (a.b.C) when it crosses a namespace.
type IdentifierType struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	Loc   LOC    `json:"loc"`
}

func (t *IdentifierType) fieldType()     {}
func (t *IdentifierType) NodeKind() Kind { return t.Kind }
func (t *IdentifierType) NodeLoc() LOC   { return t.Loc }

// ListType is list<ValueType>.
type ListType struct {
	Kind      Kind      `json:"kind"`
	Loc       LOC       `json:"loc"`
	Value     string    `json:"value"` // always "list"
	ValueType FieldType `json:"valueType"`
}

func (t *ListType) fieldType()     {}
func (t *ListType) NodeKind() Kind { return t.Kind }
func (t *ListType) NodeLoc() LOC   { return t.Loc }

// SetType is set<ValueType>.
type SetType struct {
	Kind      Kind      `json:"kind"`
	Loc       LOC       `json:"loc"`
	Value     string    `json:"value"` // always "set"
	ValueType FieldType `json:"valueType"`
}

func (t *SetType) fieldType()     {}
func (t *SetType) NodeKind() Kind { return t.Kind }
func (t *SetType) NodeLoc() LOC   { return t.Loc }

// MapType is map<KeyType, ValueType>.
type MapType struct {
	Kind      Kind      `json:"kind"`
	Loc       LOC       `json:"loc"`
	Value     string    `json:"value"` // always "map"
	KeyType   FieldType `json:"keyType"`
	ValueType FieldType `json:"valueType"`
}

func (t *MapType) fieldType()     {}
func (t *MapType) NodeKind() Kind { return t.Kind }
func (t *MapType) NodeLoc() LOC   { return t.Loc }

// NewBaseType constructs a keyword scalar type leaf tagged with the
// keyword's own kind.
func NewBaseType(kind Kind, value string, loc LOC) *BaseType {
	return &BaseType{Kind: kind, Value: value, Loc: loc}
}

// NewIdentifierType constructs a named-type reference leaf.
func NewIdentifierType(value string, loc LOC) *IdentifierType {
	return &IdentifierType{Kind: KindIdentifer, Value: value, Loc: loc}
}

// NewListType constructs list<elem>.
func NewListType(elem FieldType, loc LOC) *ListType {
	return &ListType{Kind: KindListType, Value: "list", ValueType: elem, Loc: loc}
}

// NewSetType constructs set<elem>.
func NewSetType(elem FieldType, loc LOC) *SetType {
	return &SetType{Kind: KindSetType, Value: "set", ValueType: elem, Loc: loc}
}

// NewMapType constructs map<key, value>.
func NewMapType(key, value FieldType, loc LOC) *MapType {
	return &MapType{Kind: KindMapType, Value: "map", KeyType: key, ValueType: value, Loc: loc}
}

// baseTypeKinds is every kind a BaseType leaf can carry: the keyword kinds
// of the scalar base types, void, and the generic KindBaseType tag, which is
// accepted on input for tolerance even though the parser never produces it.
var baseTypeKinds = map[Kind]bool{
	KindBoolKeyword: true, KindByteKeyword: true, KindI8Keyword: true,
	KindI16Keyword: true, KindI32Keyword: true, KindI64Keyword: true,
	KindDoubleKeyword: true, KindStringKeyword: true, KindBinaryKeyword: true,
	KindVoidKeyword: true, KindBaseType: true,
}

// decodeFieldType dispatches a raw FieldType slot to its concrete type by
// inspecting its "kind" tag.
func decodeFieldType(raw json.RawMessage) (FieldType, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var peek struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return nil, err
	}
	switch {
	case baseTypeKinds[peek.Kind]:
		var t BaseType
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case peek.Kind == KindIdentifer:
		var t IdentifierType
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, err
		}
		return &t, nil
	case peek.Kind == KindListType:
		var shadow struct {
			Kind      Kind            `json:"kind"`
			Loc       LOC             `json:"loc"`
			Value     string          `json:"value"`
			ValueType json.RawMessage `json:"valueType"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		vt, err := decodeFieldType(shadow.ValueType)
		if err != nil {
			return nil, err
		}
		return &ListType{Kind: shadow.Kind, Loc: shadow.Loc, Value: shadow.Value, ValueType: vt}, nil
	case peek.Kind == KindSetType:
		var shadow struct {
			Kind      Kind            `json:"kind"`
			Loc       LOC             `json:"loc"`
			Value     string          `json:"value"`
			ValueType json.RawMessage `json:"valueType"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		vt, err := decodeFieldType(shadow.ValueType)
		if err != nil {
			return nil, err
		}
		return &SetType{Kind: shadow.Kind, Loc: shadow.Loc, Value: shadow.Value, ValueType: vt}, nil
	case peek.Kind == KindMapType:
		var shadow struct {
			Kind      Kind            `json:"kind"`
			Loc       LOC             `json:"loc"`
			Value     string          `json:"value"`
			KeyType   json.RawMessage `json:"keyType"`
			ValueType json.RawMessage `json:"valueType"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		kt, err := decodeFieldType(shadow.KeyType)
		if err != nil {
			return nil, err
		}
		vt, err := decodeFieldType(shadow.ValueType)
		if err != nil {
			return nil, err
		}
		return &MapType{Kind: shadow.Kind, Loc: shadow.Loc, Value: shadow.Value, KeyType: kt, ValueType: vt}, nil
	default:
		return nil, fmt.Errorf("ast: unrecognized field type kind %q", peek.Kind)
	}
}

// UnmarshalJSON implements recursive decoding for ListType's ValueType slot.
func (t *ListType) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Kind      Kind            `json:"kind"`
		Loc       LOC             `json:"loc"`
		Value     string          `json:"value"`
		ValueType json.RawMessage `json:"valueType"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	vt, err := decodeFieldType(shadow.ValueType)
	if err != nil {
		return err
	}
	t.Kind, t.Loc, t.Value, t.ValueType = shadow.Kind, shadow.Loc, shadow.Value, vt
	return nil
}

// UnmarshalJSON implements recursive decoding for SetType's ValueType slot.
func (t *SetType) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Kind      Kind            `json:"kind"`
		Loc       LOC             `json:"loc"`
		Value     string          `json:"value"`
		ValueType json.RawMessage `json:"valueType"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	vt, err := decodeFieldType(shadow.ValueType)
	if err != nil {
		return err
	}
	t.Kind, t.Loc, t.Value, t.ValueType = shadow.Kind, shadow.Loc, shadow.Value, vt
	return nil
}

// UnmarshalJSON implements recursive decoding for MapType's KeyType/ValueType slots.
func (t *MapType) UnmarshalJSON(data []byte) error {
	var shadow struct {
		Kind      Kind            `json:"kind"`
		Loc       LOC             `json:"loc"`
		Value     string          `json:"value"`
		KeyType   json.RawMessage `json:"keyType"`
		ValueType json.RawMessage `json:"valueType"`
	}
	if err := json.Unmarshal(data, &shadow); err != nil {
		return err
	}
	kt, err := decodeFieldType(shadow.KeyType)
	if err != nil {
		return err
	}
	vt, err := decodeFieldType(shadow.ValueType)
	if err != nil {
		return err
	}
	t.Kind, t.Loc, t.Value, t.KeyType, t.ValueType = shadow.Kind, shadow.Loc, shadow.Value, kt, vt
	return nil
}
