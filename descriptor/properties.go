package descriptor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Properties is an order-preserving map of property names to schemas.
// Go maps do not preserve key order, but the order properties appear in
// the source document is the baseline emission order for siblings without
// an explicit propertyOrder, so object properties use this container
// instead of a plain map.
type Properties struct {
	keys    []string
	schemas map[string]*JSONSchema
}

// NewProperties creates an empty property container.
func NewProperties() *Properties {
	return &Properties{schemas: make(map[string]*JSONSchema)}
}

// Set adds or replaces the property. A new property is appended at the
// end of the declared order; replacing keeps the existing position.
func (p *Properties) Set(name string, schema *JSONSchema) {
	if p.schemas == nil {
		p.schemas = make(map[string]*JSONSchema)
	}
	if _, exists := p.schemas[name]; !exists {
		p.keys = append(p.keys, name)
	}
	p.schemas[name] = schema
}

// Get returns the property schema declared under name.
func (p *Properties) Get(name string) (*JSONSchema, bool) {
	s, ok := p.schemas[name]
	return s, ok
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns the property names in declared order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// UnmarshalJSON decodes the object one member at a time so the declared
// key order survives; unmarshaling into a plain map would lose it.
func (p *Properties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("properties: expected a JSON object, got %v", tok)
	}
	*p = Properties{schemas: make(map[string]*JSONSchema)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("properties: expected a member name, got %v", tok)
		}
		var schema JSONSchema
		if err := dec.Decode(&schema); err != nil {
			return err
		}
		p.Set(name, &schema)
	}
	_, err = dec.Token()
	return err
}

// MarshalJSON emits properties in their declared order.
func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(p.schemas[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a mapping node preserving its key order.
func (p *Properties) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("properties: expected a mapping, got %v", value.Tag)
	}
	*p = Properties{schemas: make(map[string]*JSONSchema)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var schema JSONSchema
		if err := value.Content[i+1].Decode(&schema); err != nil {
			return err
		}
		p.Set(value.Content[i].Value, &schema)
	}
	return nil
}

// MarshalYAML emits properties as a mapping node in their declared order.
func (p *Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range p.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(p.schemas[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
