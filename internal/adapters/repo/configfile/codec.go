package configfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/chatgate/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// codec converts between file bytes and a document. Formats are picked by
// file extension.
type codec interface {
	name() string
	decode(data []byte) (any, error)
	encode(doc domain.Document) ([]byte, error)
}

func codecFor(path string) (codec, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json", ".jsonc", ".json5", "":
		return jsonCodec{}, nil
	case ".toml":
		return tomlCodec{}, nil
	case ".yaml", ".yml":
		return yamlCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}
}

type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

// decode accepts comments and trailing commas.
func (jsonCodec) decode(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var value any
	if err := json.Unmarshal(jsonc.ToJSON(data), &value); err != nil {
		return nil, err
	}
	return value, nil
}

func (jsonCodec) encode(doc domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type tomlCodec struct{}

func (tomlCodec) name() string { return "toml" }

func (tomlCodec) decode(data []byte) (any, error) {
	value := map[string]any{}
	if err := toml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// encode drops nulls, which TOML cannot represent, and writes whole numbers
// as integers.
func (tomlCodec) encode(doc domain.Document) ([]byte, error) {
	return toml.Marshal(tomlValue(map[string]any(doc)))
}

func tomlValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			if item == nil {
				continue
			}
			out[key] = tomlValue(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, tomlValue(item))
		}
		return out
	case float64:
		if domain.IsInteger(v) {
			return int64(v)
		}
		return v
	default:
		return v
	}
}

type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) decode(data []byte) (any, error) {
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, err
	}
	if value == nil {
		return map[string]any{}, nil
	}
	return value, nil
}

func (yamlCodec) encode(doc domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]any(doc)); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
