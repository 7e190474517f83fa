package codec

import (
	"github.com/BurntSushi/toml"

	fds "github.com/KimNorgaard/go-fds"
)

// TypeTOML is a constant representing the "toml" encoding type.
const TypeTOML Type = "toml"

func init() {
	RegisterEncoder(TypeTOML, TOMLCodec{})
	RegisterDecoder(TypeTOML, TOMLCodec{})
}

// TOMLCodec converts sections to and from TOML tables.
type TOMLCodec struct{}

// Encode writes s as a TOML document; sub-sections become tables.
func (TOMLCodec) Encode(s *fds.Section) ([]byte, error) {
	return toml.Marshal(toMap(s))
}

// Decode reads a TOML document. Dates and times are kept as text.
func (TOMLCodec) Decode(data []byte) (*fds.Section, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return fromRoot(v)
}
