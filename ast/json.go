package ast

import "encoding/json"

// ToJSONCompact renders the document as single-line, camelCase JSON.
func (d *Document) ToJSONCompact() ([]byte, error) {
	return json.Marshal(d)
}

// ToJSONPretty renders the document as indented, camelCase JSON.
func (d *Document) ToJSONPretty() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// DocumentFromJSON decodes a Document previously produced by ToJSONCompact
// or ToJSONPretty. Decoding is lossless: the result is a Document equal to
// the one that was marshaled, including every recursive FieldType and
// InitialValue slot.
func DocumentFromJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
