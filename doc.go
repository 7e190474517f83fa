/*
Package fds reads and writes FDS, a line-oriented, indentation-sensitive
text format for configuration and data files. A document is a tree of
sections; every entry holds a nested section, a typed scalar or a binary
blob, and keeps the comment lines written above it.

	# Service settings
	name: gateway
	port: 8080
	server:
	    tls: true
	    cert= SGVsbG8=

A line "key: value" stores a scalar. The scalar type is inferred from its
text: true and false (any case) are booleans, digit strings are integers,
decimal and exponent forms are floats, and everything else is a string.
A line "key= base64" stores binary data. A line "key:" with nothing after
it waits to open a section: the next line indented deeper than the one
before it creates the section, a newer "key:" line takes its place, and at
the end of input a header still waiting is dropped. Keys and values use backslash escapes for characters
that would otherwise be structural, such as \c for ':' and \n for a line
feed.

The package offers two workflows.

1. Working with the tree

Parse returns the root *Section. Sections keep insertion order and offer
both exact and ASCII case-insensitive lookup, plus dotted paths:

	root, err := fds.Parse(data)
	if err != nil {
		// err is a *fds.ParseError naming the line
	}
	port, ok := root.GetInt("port")
	tls, ok := root.GetBool("server.tls")
	cert, ok := root.LookupLowered("SERVER.CERT")

Format, or (*Section).String, writes the tree back out. Parsing the
formatted text yields an equal tree, although spacing and blank lines are
normalized.

2. Mapping to Go values

Unmarshal and Marshal map documents onto structs and maps, in the manner
of encoding/json:

	type Config struct {
		Name string `fds:"name"`
		Port int    `fds:"port,omitempty"`
	}

	var cfg Config
	if err := fds.Unmarshal(data, &cfg); err != nil {
		// handle error
	}

Customization is available via struct field tags and by implementing the
fds.Marshaler and fds.Unmarshaler interfaces. encoding.TextMarshaler and
encoding.TextUnmarshaler are honored for scalars.

Options such as MaxDepth, Strict and Indent tune parsing and formatting.
*/
package fds
