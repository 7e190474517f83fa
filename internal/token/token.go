package token

// Type is the type of a line token.
type Type string

// Separator is the structural character that splits a key from its value.
type Separator byte

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A line that cannot be classified
	EOF     Type = "EOF"     // End of input

	BLANK   Type = "BLANK"   // A line made only of spaces
	COMMENT Type = "COMMENT" // #text
	ENTRY   Type = "ENTRY"   // key: value, key:, key= base64
)

const (
	NONE   Separator = 0
	COLON  Separator = ':'
	EQUALS Separator = '='
)

// Line is a single classified source line.
type Line struct {
	Type Type
	// Number is the 1-based line number in the normalized input.
	Number int
	// Indent is the count of leading spaces.
	Indent int
	// Text is the raw line as it appeared in the input.
	Text string

	// Comment holds the text after '#' for COMMENT lines.
	Comment string

	// Key is the raw, still escaped key for ENTRY lines.
	Key string
	Sep Separator
	// Value is the raw value with leading spaces removed.
	Value string

	// Err describes why an ILLEGAL line could not be classified.
	Err error
}

// String returns the separator as text.
func (s Separator) String() string {
	if s == NONE {
		return ""
	}
	return string(rune(s))
}

// IsHeader reports whether the line opens a section: a colon entry with no
// value.
func (l Line) IsHeader() bool {
	return l.Type == ENTRY && l.Sep == COLON && l.Value == ""
}
