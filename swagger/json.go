package swagger

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// JSON returns the document rendered as indented JSON.
func (d *Document) JSON() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// YAML returns the document rendered as YAML.
func (d *Document) YAML() ([]byte, error) {
	return yaml.Marshal(d)
}

// appendExtensions splices vendor-extension fields into an already
// marshaled JSON object. Go's encoding/json has no equivalent of
// yaml:",inline", so extensions are merged after marshaling the base
// struct; splicing bytes (rather than rebuilding a map) keeps the struct
// field order intact.
func appendExtensions(base []byte, extra map[string]any) ([]byte, error) {
	if len(extra) == 0 {
		return base, nil
	}
	ext, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}
	if len(ext) <= 2 || len(base) < 2 || base[len(base)-1] != '}' {
		return base, nil
	}
	out := make([]byte, 0, len(base)+len(ext))
	out = append(out, base[:len(base)-1]...)
	if len(base) > 2 {
		out = append(out, ',')
	}
	out = append(out, ext[1:]...)
	return out, nil
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias Document
	base, err := json.Marshal((*alias)(d))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, d.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (i *Info) MarshalJSON() ([]byte, error) {
	type alias Info
	base, err := json.Marshal((*alias)(i))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, i.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (t *Tag) MarshalJSON() ([]byte, error) {
	type alias Tag
	base, err := json.Marshal((*alias)(t))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, t.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (p *PathItem) MarshalJSON() ([]byte, error) {
	type alias PathItem
	base, err := json.Marshal((*alias)(p))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, p.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (o *Operation) MarshalJSON() ([]byte, error) {
	type alias Operation
	base, err := json.Marshal((*alias)(o))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, o.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (r *Response) MarshalJSON() ([]byte, error) {
	type alias Response
	base, err := json.Marshal((*alias)(r))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, r.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	type alias Parameter
	base, err := json.Marshal((*alias)(p))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, p.Extra)
}

// MarshalJSON flattens Extra fields into the top-level JSON object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	type alias Schema
	base, err := json.Marshal((*alias)(s))
	if err != nil {
		return nil, err
	}
	return appendExtensions(base, s.Extra)
}

// MarshalJSON emits properties in their recorded order. Property order is
// meaningful output; a plain map would re-sort it.
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

// MarshalYAML emits properties as a mapping node in their recorded order.
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
