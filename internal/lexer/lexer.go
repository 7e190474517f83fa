package lexer

import (
	"errors"
	"strings"

	"github.com/KimNorgaard/go-fds/internal/strutil"
	"github.com/KimNorgaard/go-fds/internal/token"
)

var (
	// ErrNoSeparator is reported for a line with neither ':' nor '='.
	ErrNoSeparator = errors.New("line purpose unknown")
	// ErrEmptyKey is reported for a line whose separator is its first character.
	ErrEmptyKey = errors.New("empty key label")
)

// BOM is the UTF-8 byte order mark Normalize strips from the start of input.
const BOM = "\ufeff"

// Lexer holds the state for splitting FDS source into classified lines.
type Lexer struct {
	lines []string
	pos   int
}

// New creates and returns a new Lexer over the normalized input.
func New(input []byte) *Lexer {
	return &Lexer{lines: strutil.SplitFast(Normalize(string(input)), '\n')}
}

// Normalize strips a leading byte order mark and converts CRLF and lone CR
// line endings to LF.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, BOM)
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NextLine scans and returns the next line. After the last line it returns
// a token of type EOF.
func (l *Lexer) NextLine() token.Line {
	if l.pos >= len(l.lines) {
		return token.Line{Type: token.EOF, Number: l.pos + 1}
	}
	text := l.lines[l.pos]
	l.pos++
	return Classify(text, l.pos)
}

// Classify turns one raw line into a token. number is the 1-based line
// number recorded on the result.
func Classify(text string, number int) token.Line {
	line := token.Line{Number: number, Text: text}

	indent := 0
	for indent < len(text) && text[indent] == ' ' {
		indent++
	}
	line.Indent = indent
	if indent == len(text) {
		line.Type = token.BLANK
		return line
	}

	datum := strings.TrimRight(text[indent:], " ")
	if datum[0] == '#' {
		line.Type = token.COMMENT
		line.Comment = datum[1:]
		return line
	}

	spot := strings.IndexAny(datum, ":=")
	if spot < 0 {
		line.Type = token.ILLEGAL
		line.Err = ErrNoSeparator
		return line
	}
	if spot == 0 {
		line.Type = token.ILLEGAL
		line.Err = ErrEmptyKey
		return line
	}

	line.Type = token.ENTRY
	line.Key = datum[:spot]
	line.Sep = token.Separator(datum[spot])
	line.Value = strings.TrimLeft(datum[spot+1:], " ")
	return line
}
