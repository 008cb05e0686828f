package address

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes a string, an {"name","address"} object, an array of
// either, or null. Null names and missing keys decode to empty strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		*v = String(s)
		return nil
	case '{':
		a, err := decodeAddress(data)
		if err != nil {
			return err
		}
		*v = Object(a)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		list := make([]Entry, 0, len(items))
		for i, item := range items {
			e, err := decodeEntry(item)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			list = append(list, e)
		}
		*v = Value{kind: KindList, list: list}
		return nil
	default:
		return fmt.Errorf("%w: unexpected JSON %s", ErrInvalidValue, truncate(data))
	}
}

// MarshalJSON encodes the value back into its original form.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.raw)
	case KindObject:
		return json.Marshal(v.addr)
	case KindList:
		items := make([]any, len(v.list))
		for i, e := range v.list {
			if e.object {
				items[i] = e.addr
			} else {
				items[i] = e.raw
			}
		}
		return json.Marshal(items)
	default:
		return []byte("null"), nil
	}
}

func decodeEntry(data json.RawMessage) (Entry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Entry{}, ErrInvalidValue
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Entry{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return Raw(s), nil
	case '{':
		a, err := decodeAddress(data)
		if err != nil {
			return Entry{}, err
		}
		return Entry{addr: a, object: true}, nil
	case 'n':
		// a null element has no address and is dropped on render
		return Bare(""), nil
	default:
		return Entry{}, fmt.Errorf("%w: unexpected list element %s", ErrInvalidValue, truncate(data))
	}
}

func decodeAddress(data []byte) (Address, error) {
	var obj struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	var a Address
	if obj.Name != nil {
		a.Name = *obj.Name
	}
	if obj.Address != nil {
		a.Address = *obj.Address
	}
	return a, nil
}

func truncate(data []byte) string {
	const limit = 32
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}
