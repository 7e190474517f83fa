// Package codec converts FDS section trees to and from other data formats.
//
// Each format registers an [Encoder] and a [Decoder] under its [Type]:
//
//   - fds: FDS text, via fds.Format and fds.Parse
//   - yaml: YAML mappings, keeping key order
//   - json: JSON objects, keys sorted
//   - toml: TOML tables, keys sorted
//
// Sections map to objects and scalars to native booleans, integers, floats
// and strings. FDS has no quoting, so strings read from other formats are
// typed by their text: the YAML string "007" becomes the integer scalar 007
// and is written back to YAML as 7. Binary values have no counterpart elsewhere and are written
// as base64 text; they come back as strings. Arrays read from foreign
// documents become sections keyed by index, and nulls are dropped.
//
// Register additional formats with [RegisterEncoder] and [RegisterDecoder]:
//
//	codec.RegisterEncoder(codec.Type("myformat"), MyCodec{})
//	codec.RegisterDecoder(codec.Type("myformat"), MyCodec{})
package codec
