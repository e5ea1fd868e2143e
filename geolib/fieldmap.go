package geolib

import (
	"bytes"
	"encoding/json"
)

// Value is an extracted resource value. Zero value is absent: the table
// has a record for IP address but has no data for this attribute.
type Value struct {
	data    interface{}
	present bool
}

// Present wraps extracted data.
func Present(data interface{}) Value {
	return Value{data: data, present: true}
}

// Absent returns a value without data.
func Absent() Value {
	return Value{}
}

func (v Value) IsPresent() bool {
	return v.present
}

// IsEmpty reports whether value is absent or holds an empty string.
// Databases may keep empty strings for attributes they do not know.
func (v Value) IsEmpty() bool {
	if !v.present {
		return true
	}

	str, ok := v.data.(string)

	return ok && str == ""
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}

	return json.Marshal(v.data)
}

type fieldMapEntry struct {
	name  string
	value Value
}

// FieldMap is an ordered mapping from resource name to its value. It
// marshals into a flat JSON object keeping insertion order.
type FieldMap struct {
	entries []fieldMapEntry
}

// Set adds a new entry or replaces a value of existing one in place.
func (f *FieldMap) Set(name string, value Value) {
	for i := range f.entries {
		if f.entries[i].name == name {
			f.entries[i].value = value

			return
		}
	}

	f.entries = append(f.entries, fieldMapEntry{name: name, value: value})
}

func (f *FieldMap) Get(name string) (Value, bool) {
	for _, v := range f.entries {
		if v.name == name {
			return v.value, true
		}
	}

	return Value{}, false
}

// Keys returns names in insertion order.
func (f *FieldMap) Keys() []string {
	rv := make([]string, 0, len(f.entries))

	for _, v := range f.entries {
		rv = append(rv, v.name)
	}

	return rv
}

func (f *FieldMap) MarshalJSON() ([]byte, error) {
	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)

	encoder.SetEscapeHTML(false)
	buf.WriteByte('{')

	for i, v := range f.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := encoder.Encode(v.name); err != nil {
			return nil, err
		}

		buf.Truncate(buf.Len() - 1)
		buf.WriteByte(':')

		if err := encoder.Encode(v.value); err != nil {
			return nil, err
		}

		buf.Truncate(buf.Len() - 1)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
