package types

import "encoding/json"

// NullableID carries an optional reference through a partial update. It
// distinguishes the three states JSON can express: field absent (keep the
// stored value), explicit null (clear the link), and a value (relink).
type NullableID struct {
	Set   bool
	Value *string
}

func (n *NullableID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}

func (n NullableID) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
