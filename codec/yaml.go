package codec

import (
	"github.com/goccy/go-yaml"

	fds "github.com/KimNorgaard/go-fds"
)

// TypeYAML is a constant representing the "yaml" encoding type.
const TypeYAML Type = "yaml"

func init() {
	RegisterEncoder(TypeYAML, YAMLCodec{})
	RegisterDecoder(TypeYAML, YAMLCodec{})
}

// YAMLCodec converts sections to and from YAML mappings. Key order is kept
// in both directions.
type YAMLCodec struct{}

// Encode writes s as a YAML mapping.
func (YAMLCodec) Encode(s *fds.Section) ([]byte, error) {
	return yaml.Marshal(toMapSlice(s))
}

// Decode reads a YAML document whose root is a mapping. An empty document
// yields an empty section.
func (YAMLCodec) Decode(data []byte) (*fds.Section, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	if v == nil {
		return fds.NewSection(), nil
	}
	return fromRoot(v)
}
