package geo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is a single named property.
type Field struct {
	Name  string
	Value Value
}

// Properties is an ordered property mapping. Keys keep the order in which
// they appear in the source document; null values are dropped.
type Properties []Field

// Get returns the value stored under name.
func (p Properties) Get(name string) (Value, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Value, true
		}
	}

	return Value{}, false
}

// Set replaces the value of an existing field in place or appends a new one.
func (p *Properties) Set(name string, v Value) {
	for i := range *p {
		if (*p)[i].Name == name {
			(*p)[i].Value = v
			return
		}
	}

	*p = append(*p, Field{Name: name, Value: v})
}

// Clone returns a copy that shares nothing with p.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}

	out := make(Properties, len(p))
	copy(out, p)
	return out
}

// UnmarshalJSON decodes a JSON object keeping its key order.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: properties must be an object", ErrMalformed)
	}

	out := Properties{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		v, present, err := parseValue(raw)
		if err != nil {
			return fmt.Errorf("%w: property %q: %w", ErrMalformed, key, err)
		}
		if present {
			out.Set(key, v)
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

// MarshalJSON encodes the properties as a JSON object in field order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalYAML encodes the properties as a YAML mapping in field order.
func (p Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range p {
		var val yaml.Node
		if err := val.Encode(f.Value.Interface()); err != nil {
			return nil, err
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&val,
		)
	}

	return node, nil
}
