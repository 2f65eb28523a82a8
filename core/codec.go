// SPDX-License-Identifier: MIT

package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a graph document of the form
//
//	{"A": [{"toNode": "B", "weight": 1}], "B": [{"toNode": "A", "weight": 1}]}
//
// written as JSON or YAML. Node order follows key order in the document and
// adjacency entries are kept exactly as listed: nothing is symmetrized,
// deduplicated or range-checked (see Validate for that).
//
// Returns an error wrapping ErrDecode when the document is empty, is not a
// mapping, repeats a node id, or holds entries that are not incident objects.
// Scalars are not coerced: toNode must be a string and weight an integer, so
// 1.5 or 7 in the wrong place is rejected rather than truncated or stringified.
func Decode(data []byte) (*Graph, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrDecode)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: top level must be a mapping of node id to edges", ErrDecode, root.Line)
	}

	g := NewGraph()
	// Content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%w: line %d: node id must be a non-empty string", ErrDecode, key.Line)
		}
		if _, dup := g.adjacency[key.Value]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate node id %q", ErrDecode, key.Line, key.Value)
		}
		g.ensureNode(key.Value)

		switch {
		case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
			continue
		case val.Kind != yaml.SequenceNode:
			return nil, fmt.Errorf("%w: line %d: edges of %q must be a list", ErrDecode, val.Line, key.Value)
		}
		for _, item := range val.Content {
			var inc Incident
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: line %d: edge of %q must be an object", ErrDecode, item.Line, key.Value)
			}
			if err := checkIncidentTags(item, key.Value); err != nil {
				return nil, err
			}
			if err := item.Decode(&inc); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrDecode, item.Line, err)
			}
			if inc.To == "" {
				return nil, fmt.Errorf("%w: line %d: edge of %q has no toNode", ErrDecode, item.Line, key.Value)
			}
			g.adjacency[key.Value] = append(g.adjacency[key.Value], inc)
		}
	}

	return g, nil
}

// incidentFields maps each incident key to the only YAML tag it may carry.
var incidentFields = map[string]string{
	"toNode": "!!str",
	"weight": "!!int",
}

// checkIncidentTags rejects incident values whose resolved tag does not match
// the field type. yaml.v3 would otherwise truncate floats into int64 and
// render numbers as strings.
func checkIncidentTags(item *yaml.Node, owner string) error {
	for i := 0; i+1 < len(item.Content); i += 2 {
		field, val := item.Content[i], item.Content[i+1]
		want, known := incidentFields[field.Value]
		if !known {
			continue
		}
		if val.Kind != yaml.ScalarNode || val.Tag != want {
			return fmt.Errorf("%w: line %d: %s of an edge of %q must be %s, got %s %q",
				ErrDecode, val.Line, field.Value, owner, want, val.ShortTag(), val.Value)
		}
	}

	return nil
}

// MarshalJSON writes g in the Decode document shape, nodes and incidents in
// insertion order.
func (g *Graph) MarshalJSON() ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range g.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		list, err := json.Marshal(g.adjacency[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(list)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON replaces g's contents with the decoded document.
func (g *Graph) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.order = decoded.order
	g.adjacency = decoded.adjacency

	return nil
}
