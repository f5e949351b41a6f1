package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/strata/pkg/model"
)

// Document codecs decode whole files into object values and back. The
// top level of a document must be a mapping; anything else is a data
// error, not a precondition violation.

// Codec reads and writes one document format.
type Codec interface {
	// Decode parses data into a document value tree.
	Decode(data []byte) (*model.ObjectValue, error)
	// Encode serializes the tree.
	Encode(ov *model.ObjectValue) ([]byte, error)
}

// ForExtension returns the codec for a file extension (".yaml", ".yml",
// ".json").
func ForExtension(ext string) (Codec, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return YAMLCodec{}, nil
	case ".json":
		return JSONCodec{}, nil
	default:
		return nil, fmt.Errorf("no codec for extension %q", ext)
	}
}

// YAMLCodec reads and writes YAML documents.
type YAMLCodec struct{}

func (YAMLCodec) Decode(data []byte) (*model.ObjectValue, error) {
	var payload map[string]any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return fromPayload(payload)
}

func (YAMLCodec) Encode(ov *model.ObjectValue) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(ToNative(ov.Value())); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONCodec reads and writes JSON documents. Numbers are decoded via
// json.Number so integers survive without a float64 round trip.
type JSONCodec struct{}

func (JSONCodec) Decode(data []byte) (*model.ObjectValue, error) {
	var payload map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return fromPayload(payload)
}

func (JSONCodec) Encode(ov *model.ObjectValue) ([]byte, error) {
	return json.MarshalIndent(ToNative(ov.Value()), "", "  ")
}

func fromPayload(payload map[string]any) (*model.ObjectValue, error) {
	if payload == nil {
		return model.NewObjectValue(), nil
	}
	root, err := FromNative(payload)
	if err != nil {
		return nil, err
	}
	return model.NewObjectValueFromMap(root), nil
}
