package codec

import (
	"bytes"
	"encoding/json"

	fds "github.com/KimNorgaard/go-fds"
)

// TypeJSON is a constant representing the "json" encoding type.
const TypeJSON Type = "json"

func init() {
	RegisterEncoder(TypeJSON, JSONCodec{})
	RegisterDecoder(TypeJSON, JSONCodec{})
}

// JSONCodec converts sections to and from JSON objects. Object keys are
// written and read in sorted order.
type JSONCodec struct{}

// Encode writes s as an indented JSON object.
func (JSONCodec) Encode(s *fds.Section) ([]byte, error) {
	b, err := json.MarshalIndent(toMap(s), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Decode reads a JSON object. Numbers keep their literal text so integers
// beyond float64 precision survive.
func (JSONCodec) Decode(data []byte) (*fds.Section, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return fromRoot(v)
}
