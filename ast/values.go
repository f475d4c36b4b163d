package ast

import (
	"encoding/json"
	"fmt"
)

// InitialValue is the recursive constant-expression union used for const
// values, field defaults, and enum-member initializers: a literal leaf, a
// bracketed list, or a braced map of name/value properties.
type InitialValue interface {
	initialValue()
	NodeKind() Kind
	NodeLoc() LOC
}

// ConstValue is a leaf: a literal token's text (string, integer, hex,
// double, boolean) or an identifier reference to a constant or enum member.
// Value preserves the token text verbatim, including a string literal's
// surrounding quotes.
type ConstValue struct {
	Kind  Kind   `json:"kind"`
	Value string `json:"value"`
	Loc   LOC    `json:"loc"`
}

func (v *ConstValue) initialValue()  {}
func (v *ConstValue) NodeKind() Kind { return v.Kind }
func (v *ConstValue) NodeLoc() LOC   { return v.Loc }

// NewConstValue constructs a literal/identifier leaf value.
func NewConstValue(value string, loc LOC) *ConstValue {
	return &ConstValue{Kind: KindConstValue, Value: value, Loc: loc}
}

// ConstList is a bracketed [a, b, c] literal.
type ConstList struct {
	Kind     Kind           `json:"kind"`
	Loc      LOC            `json:"loc"`
	Elements []InitialValue `json:"elements"`
}

func (v *ConstList) initialValue()  {}
func (v *ConstList) NodeKind() Kind { return v.Kind }
func (v *ConstList) NodeLoc() LOC   { return v.Loc }

// PropertyAssignment is a single name: value entry inside a ConstMap.
type PropertyAssignment struct {
	Kind  Kind         `json:"kind"`
	Loc   LOC          `json:"loc"`
	Name  InitialValue `json:"name"`
	Value InitialValue `json:"value"`
}

func (p *PropertyAssignment) NodeKind() Kind { return p.Kind }
func (p *PropertyAssignment) NodeLoc() LOC   { return p.Loc }

// ConstMap is a braced {k: v, ...} literal.
type ConstMap struct {
	Kind       Kind                 `json:"kind"`
	Loc        LOC                  `json:"loc"`
	Properties []PropertyAssignment `json:"properties"`
}

func (v *ConstMap) initialValue()  {}
func (v *ConstMap) NodeKind() Kind { return v.Kind }
func (v *ConstMap) NodeLoc() LOC   { return v.Loc }

// decodeInitialValue dispatches a raw InitialValue slot to its concrete
// type. It prefers the explicit "kind" tag when present, falling back to
// structural disambiguation (does the object carry "properties" or
// "elements"?) so a value missing its kind tag still decodes correctly.
// The fallback order is deliberately most-specific-first -- ConstMap, then
// ConstList, then the ConstValue leaf -- so a map literal is never
// misread as a bare string constant.
func decodeInitialValue(raw json.RawMessage) (InitialValue, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var peek struct {
		Kind       Kind            `json:"kind"`
		Properties json.RawMessage `json:"properties"`
		Elements   json.RawMessage `json:"elements"`
	}
	if err := json.Unmarshal(raw, &peek); err != nil {
		return nil, err
	}

	kind := peek.Kind
	if kind == "" {
		switch {
		case peek.Properties != nil:
			kind = KindConstMap
		case peek.Elements != nil:
			kind = KindConstList
		default:
			kind = KindConstValue
		}
	}

	switch kind {
	case KindConstMap:
		var shadow struct {
			Kind       Kind              `json:"kind"`
			Loc        LOC               `json:"loc"`
			Properties []json.RawMessage `json:"properties"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		props := make([]PropertyAssignment, 0, len(shadow.Properties))
		for _, p := range shadow.Properties {
			var pshadow struct {
				Kind  Kind            `json:"kind"`
				Loc   LOC             `json:"loc"`
				Name  json.RawMessage `json:"name"`
				Value json.RawMessage `json:"value"`
			}
			if err := json.Unmarshal(p, &pshadow); err != nil {
				return nil, err
			}
			name, err := decodeInitialValue(pshadow.Name)
			if err != nil {
				return nil, err
			}
			value, err := decodeInitialValue(pshadow.Value)
			if err != nil {
				return nil, err
			}
			if pshadow.Kind == "" {
				pshadow.Kind = KindPropertyAssignment
			}
			props = append(props, PropertyAssignment{Kind: pshadow.Kind, Loc: pshadow.Loc, Name: name, Value: value})
		}
		if shadow.Kind == "" {
			shadow.Kind = KindConstMap
		}
		return &ConstMap{Kind: shadow.Kind, Loc: shadow.Loc, Properties: props}, nil

	case KindConstList:
		var shadow struct {
			Kind     Kind              `json:"kind"`
			Loc      LOC               `json:"loc"`
			Elements []json.RawMessage `json:"elements"`
		}
		if err := json.Unmarshal(raw, &shadow); err != nil {
			return nil, err
		}
		elements := make([]InitialValue, 0, len(shadow.Elements))
		for _, e := range shadow.Elements {
			elem, err := decodeInitialValue(e)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)
		}
		if shadow.Kind == "" {
			shadow.Kind = KindConstList
		}
		return &ConstList{Kind: shadow.Kind, Loc: shadow.Loc, Elements: elements}, nil

	case KindConstValue, KindIntConstant, KindDoubleConstant,
		KindStringLiteral, KindIntegerLiteral, KindFloatLiteral, KindHexLiteral, KindBooleanLiteral,
		KindIdentifer:
		var v ConstValue
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if v.Kind == "" {
			v.Kind = KindConstValue
		}
		return &v, nil

	default:
		return nil, fmt.Errorf("ast: unrecognized initial value kind %q", kind)
	}
}

// UnmarshalJSON implements recursive decoding for ConstList's Elements slot.
func (v *ConstList) UnmarshalJSON(data []byte) error {
	decoded, err := decodeInitialValue(data)
	if err != nil {
		return err
	}
	list, ok := decoded.(*ConstList)
	if !ok {
		return fmt.Errorf("ast: expected ConstList, got %T", decoded)
	}
	*v = *list
	return nil
}

// UnmarshalJSON implements recursive decoding for ConstMap's Properties slot.
func (v *ConstMap) UnmarshalJSON(data []byte) error {
	decoded, err := decodeInitialValue(data)
	if err != nil {
		return err
	}
	m, ok := decoded.(*ConstMap)
	if !ok {
		return fmt.Errorf("ast: expected ConstMap, got %T", decoded)
	}
	*v = *m
	return nil
}
