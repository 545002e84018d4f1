package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliceplex/schema/field"
	"github.com/aliceplex/schema/schema"
)

var (
	// ErrNotMapping is returned for documents whose top level is not a mapping.
	ErrNotMapping = errors.New("document is not a mapping")
	// ErrDocumentCount is returned when a JSON file is not given exactly one document.
	ErrDocumentCount = errors.New("unexpected document count")
)

// LoadFile reads every document of the file at path.
func LoadFile(path string) ([]schema.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file %s: %w", path, err)
	}

	docs, err := ParseAll(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return docs, nil
}

// Parse parses a single document. An empty document is an empty mapping.
func Parse(data []byte) (schema.Mapping, error) {
	var v any

	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return toMapping(v, 0)
}

// ParseAll parses a stream of documents separated by "---".
func ParseAll(data []byte) ([]schema.Mapping, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []schema.Mapping

	for i := 0; ; i++ {
		var v any

		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, fmt.Errorf("failed to parse document %d: %w", i, err)
		}

		m, err := toMapping(v, i)
		if err != nil {
			return nil, err
		}

		docs = append(docs, m)
	}
}

func toMapping(v any, index int) (schema.Mapping, error) {
	switch m := v.(type) {
	case nil:
		return schema.Mapping{}, nil
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(schema.Mapping, len(m))

		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}

		return out, nil
	default:
		return nil, fmt.Errorf("document %d: %w (got %T)", index, ErrNotMapping, v)
	}
}

// Marshal serializes m as one YAML document. Fields declared by table come
// first in declaration order, other keys follow sorted.
func Marshal(m schema.Mapping, table field.Table) ([]byte, error) {
	return MarshalAll([]schema.Mapping{m}, table)
}

// MarshalAll serializes a stream of documents.
func MarshalAll(docs []schema.Mapping, table field.Table) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	for i, m := range docs {
		node, err := orderedNode(m, table)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document %d: %w", i, err)
		}

		if err := enc.Encode(node); err != nil {
			return nil, fmt.Errorf("failed to marshal document %d: %w", i, err)
		}
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal documents: %w", err)
	}

	return buf.Bytes(), nil
}

// MarshalJSON serializes m as an indented JSON object. Keys are ordered as
// by Marshal and season maps are written in season order.
func MarshalJSON(m schema.Mapping, table field.Table) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range orderedKeys(m, table) {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}

		buf.WriteByte(':')

		if err := writeJSONValue(&buf, m[k]); err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}
	}

	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent document: %w", err)
	}

	out.WriteByte('\n')

	return out.Bytes(), nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	seasons, ok := v.(map[int]string)
	if !ok {
		return writeJSON(buf, v)
	}

	buf.WriteByte('{')

	for i, season := range slices.Sorted(maps.Keys(seasons)) {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeJSON(buf, strconv.Itoa(season)); err != nil {
			return err
		}

		buf.WriteByte(':')

		if err := writeJSON(buf, seasons[season]); err != nil {
			return err
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return err
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}

// IsJSON reports whether path names a JSON document file.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// WriteFile writes docs to the given path. A .json file holds exactly one
// document written as JSON; any other file is a YAML stream.
func WriteFile(docs []schema.Mapping, table field.Table, path string) error {
	var (
		data []byte
		err  error
	)

	if IsJSON(path) {
		if len(docs) != 1 {
			return fmt.Errorf("%s: %w: a JSON file holds one document, got %d", path, ErrDocumentCount, len(docs))
		}

		data, err = MarshalJSON(docs[0], table)
	} else {
		data, err = MarshalAll(docs, table)
	}

	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document file %s: %w", path, err)
	}

	return nil
}

func orderedKeys(m schema.Mapping, table field.Table) []string {
	keys := make([]string, 0, len(m))

	for _, name := range table.Names() {
		if _, ok := m[name]; ok {
			keys = append(keys, name)
		}
	}

	var rest []string

	for k := range m {
		if !table.Has(k) {
			rest = append(rest, k)
		}
	}

	slices.Sort(rest)

	return append(keys, rest...)
}

func orderedNode(m schema.Mapping, table field.Table) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, k := range orderedKeys(m, table) {
		var value yaml.Node
		if err := value.Encode(m[k]); err != nil {
			return nil, fmt.Errorf("field %s: %w", k, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}

	return node, nil
}
