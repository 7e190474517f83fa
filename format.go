package fds

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-fds/internal/escape"
	"github.com/KimNorgaard/go-fds/internal/lexer"
)

// formatter writes a section tree to an output stream.
type formatter struct {
	w    io.Writer
	opts *options
}

// newFormatter returns a new formatter that writes to w.
func newFormatter(w io.Writer, opts *options) *formatter {
	return &formatter{w: w, opts: opts}
}

// format writes s and everything below it, starting at the base indent.
func (f *formatter) format(s *Section) error {
	// A reader drops a byte order mark at the very start, so a first key
	// beginning with one needs another in front of it.
	if f.opts.baseIndent == 0 && len(s.keys) > 0 && len(s.data[s.keys[0]].Comments) == 0 &&
		strings.HasPrefix(s.keys[0], lexer.BOM) {
		if err := f.write(lexer.BOM); err != nil {
			return err
		}
	}
	return f.writeSection(s, f.opts.baseIndent, 0)
}

func (f *formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *formatter) writeIndent(width int) error {
	if width == 0 {
		return nil
	}
	return f.write(strings.Repeat(" ", width))
}

func (f *formatter) writeSection(s *Section, width, depth int) error {
	if depth > f.opts.maxDepth {
		return fmt.Errorf("fds: %w: depth %d exceeds the limit of %d", ErrMaxDepth, depth, f.opts.maxDepth)
	}
	for key, v := range s.All() {
		if err := f.writeComments(v.Comments, width); err != nil {
			return err
		}
		if err := f.writeIndent(width); err != nil {
			return err
		}
		if err := f.write(escape.Key(key)); err != nil {
			return err
		}
		if err := f.writeValue(v, width, depth); err != nil {
			return err
		}
	}
	return nil
}

func (f *formatter) writeComments(comments []string, width int) error {
	for _, c := range comments {
		// A comment holding line breaks becomes several comment lines.
		for _, line := range strings.Split(strings.ReplaceAll(c, "\r\n", "\n"), "\n") {
			if err := f.writeIndent(width); err != nil {
				return err
			}
			if err := f.write("#" + line + f.opts.newline); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *formatter) writeValue(v *Value, width, depth int) error {
	switch v.Kind() {
	case KindSection:
		if err := f.write(":" + f.opts.newline); err != nil {
			return err
		}
		return f.writeSection(v.section, width+f.opts.indent, depth+1)
	case KindBlob:
		if len(v.blob) == 0 {
			return f.write("=" + f.opts.newline)
		}
		return f.write("= " + base64.StdEncoding.EncodeToString(v.blob) + f.opts.newline)
	case KindScalar:
		return f.write(": " + escape.Value(v.scalar.Text()) + f.opts.newline)
	default:
		panic(fmt.Sprintf("fds: invalid value kind %v", v.Kind()))
	}
}

// Format returns the textual form of s. Keys appear in insertion order,
// each preceded by its comment lines, with nested sections indented by
// four spaces per level unless the Indent option says otherwise.
func Format(s *Section, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := newFormatter(&buf, o).format(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
