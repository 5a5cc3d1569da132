package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a single worksheet row keyed by the worksheet column headers. Keys are kept in
// header order, which is also the order in which they are serialised.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a record from alternating key/value pairs.
func NewRecord(kv ...string) Record {
	r := Record{}
	for i := 0; i+1 < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}

	return r
}

// Set updates the value for an existing key in place or appends a new key.
func (r *Record) Set(key, value string) {
	if r.values == nil {
		r.values = map[string]string{}
	}

	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

// Get returns the value for key and whether the key exists. Missing keys return "".
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]

	return v, ok
}

func (r Record) Keys() []string {
	return append([]string{}, r.keys...)
}

func (r Record) Len() int {
	return len(r.keys)
}

func (r Record) Clone() Record {
	clone := Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]string, len(r.values)),
	}

	copy(clone.keys, r.keys)
	for k, v := range r.values {
		clone.values[k] = v
	}

	return clone
}

func (r Record) String() string {
	var b bytes.Buffer

	b.WriteString("{")
	for i, k := range r.keys {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v:%v", k, r.values[k])
	}
	b.WriteString("}")

	return b.String()
}

func (r Record) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			b.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, err
		}

		b.Write(key)
		b.WriteByte(':')
		b.Write(value)
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

func (r *Record) UnmarshalJSON(b []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(b))

	if token, err := decoder.Token(); err != nil {
		return err
	} else if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("invalid record - expected JSON object")
	}

	*r = Record{}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		key, ok := token.(string)
		if !ok {
			return fmt.Errorf("invalid record key '%v'", token)
		}

		var value string
		if err := decoder.Decode(&value); err != nil {
			return fmt.Errorf("invalid value for '%s' (%w)", key, err)
		}

		r.Set(key, value)
	}

	if _, err := decoder.Token(); err != nil {
		return err
	}

	return nil
}
