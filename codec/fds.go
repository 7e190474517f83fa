package codec

import fds "github.com/KimNorgaard/go-fds"

// TypeFDS is the native FDS text format.
const TypeFDS Type = "fds"

func init() {
	RegisterEncoder(TypeFDS, FDSCodec{})
	RegisterDecoder(TypeFDS, FDSCodec{})
}

// FDSCodec reads and writes FDS text. Options are passed to fds.Format and
// fds.Parse.
type FDSCodec struct {
	Options []fds.Option
}

// Encode formats s as FDS text.
func (c FDSCodec) Encode(s *fds.Section) ([]byte, error) {
	return fds.Format(s, c.Options...)
}

// Decode parses FDS text.
func (c FDSCodec) Decode(data []byte) (*fds.Section, error) {
	return fds.Parse(data, c.Options...)
}
