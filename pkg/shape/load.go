package shape

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse converts a decoded document into a Shape. Nested mappings become nested
// shapes and sequences become alternatives. YAML mappings decoded with
// non-string keys are accepted as long as every key is a string.
func Parse(raw any) (Shape, error) {
	v, err := normalize(raw, "")
	if err != nil {
		return nil, err
	}
	s, ok := v.(Shape)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidShape, raw)
	}
	return s, nil
}

// FromJSON decodes a JSON object into a Shape. JSON null stands for the null
// marker and the string "undefined" for the undefined marker.
func FromJSON(data []byte) (Shape, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrReadShape, err)
	}
	return Parse(raw)
}

// FromYAML decodes a YAML mapping into a Shape. Both null and ~ stand for the
// null marker.
func FromYAML(data []byte) (Shape, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrReadShape, err)
	}
	return Parse(raw)
}

// LoadFile reads a shape from a .json, .yaml or .yml file.
func LoadFile(path string) (Shape, error) {
	var decode func([]byte) (Shape, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		decode = FromJSON
	case ".yaml", ".yml":
		decode = FromYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadShape, err)
	}
	s, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func normalize(raw any, path string) (any, error) {
	switch v := raw.(type) {
	case Shape:
		return normalizeMap(v, path)
	case map[string]any:
		return normalizeMap(v, path)
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, val := range v {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: non-string key %v at %q", ErrInvalidShape, k, path)
			}
			m[key] = val
		}
		return normalizeMap(m, path)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalize(item, path)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}
	return raw, nil
}

func normalizeMap(m map[string]any, path string) (Shape, error) {
	s := make(Shape, len(m))
	for k, v := range m {
		n, err := normalize(v, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		s[k] = n
	}
	return s, nil
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
