package fds

import (
	"encoding/base64"
	"fmt"

	"github.com/KimNorgaard/go-fds/internal/escape"
	"github.com/KimNorgaard/go-fds/internal/lexer"
	"github.com/KimNorgaard/go-fds/internal/token"
)

// pendingHeader is a "key:" line whose section is only created once a later
// entry turns out to be indented deeper than the line before it.
type pendingHeader struct {
	line     token.Line
	comments []string
}

// level is the section open at one indentation width.
type level struct {
	section *Section
	// depth counts the sections between the root and section. Stray
	// indentation shares the depth of the section it stays in.
	depth int
}

// parser turns a stream of classified lines into a section tree. It makes a
// single pass and never looks back at an earlier line.
type parser struct {
	l    *lexer.Lexer
	opts *options

	root    *Section
	current level
	// indents maps a leading-space count to the level open at that width.
	indents    map[int]level
	prevIndent int

	comments []string
	pending  *pendingHeader
}

func newParser(l *lexer.Lexer, opts *options) *parser {
	root := NewSection()
	root.StartingLine = 1
	top := level{section: root}
	return &parser{
		l:       l,
		opts:    opts,
		root:    root,
		current: top,
		indents: map[int]level{0: top},
	}
}

// Parse consumes every line and returns the root section, or the first
// error encountered.
func (p *parser) Parse() (*Section, error) {
	for {
		line := p.l.NextLine()
		switch line.Type {
		case token.EOF:
			return p.finish()
		case token.BLANK:
			continue
		case token.COMMENT:
			p.comments = append(p.comments, line.Comment)
			continue
		}
		if err := p.parseLine(line); err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseLine(line token.Line) error {
	if line.Indent < p.prevIndent {
		if err := p.dedent(line); err != nil {
			return err
		}
	}
	if line.Type == token.ILLEGAL {
		return p.errorf(line, line.Err, "%s", line.Err)
	}
	if err := p.resolvePending(line); err != nil {
		return err
	}
	if err := p.parseEntry(line); err != nil {
		return err
	}
	p.prevIndent = line.Indent
	return nil
}

// dedent returns to the section registered at exactly line.Indent and
// closes every deeper one.
func (p *parser) dedent(line token.Line) error {
	lv, ok := p.indents[line.Indent]
	if !ok {
		return p.errorf(line, ErrUnmatchedIndent,
			"spaced incorrectly: %d spaces is less than the previous %d but matches no enclosing section",
			line.Indent, p.prevIndent)
	}
	p.current = lv
	for width := range p.indents {
		if width > line.Indent {
			delete(p.indents, width)
		}
	}
	return nil
}

// resolvePending looks at the indentation of the entry that follows a
// pending header. Deeper indentation confirms the header as a section of
// the current one. Otherwise the header keeps waiting for a deeper line,
// unless parsing is strict.
func (p *parser) resolvePending(line token.Line) error {
	if line.Indent <= p.prevIndent {
		if p.pending != nil && p.opts.strict {
			return p.errorf(p.pending.line, ErrDanglingHeader, "%s", ErrDanglingHeader)
		}
		return nil
	}
	if p.pending == nil {
		if p.opts.strict {
			return p.errorf(line, ErrUnexpectedIndent, "%s", ErrUnexpectedIndent)
		}
		// The deeper lines stay in the current section; remember the width
		// so a later return to it is not a mismatch.
		p.indents[line.Indent] = p.current
		return nil
	}

	depth := p.current.depth + 1
	if depth > p.opts.maxDepth {
		return p.errorf(line, ErrMaxDepth, "%s: depth %d exceeds the limit of %d", ErrMaxDepth, depth, p.opts.maxDepth)
	}
	sub := NewSection()
	sub.StartingLine = p.pending.line.Number
	p.current.section.Set(escape.UnescapeKey(p.pending.line.Key), SectionValue(sub, p.pending.comments...))
	p.current = level{section: sub, depth: depth}
	p.indents[line.Indent] = p.current
	p.pending = nil
	return nil
}

func (p *parser) parseEntry(line token.Line) error {
	key := escape.UnescapeKey(line.Key)
	switch line.Sep {
	case token.EQUALS:
		if line.Value == "" {
			p.current.section.Set(key, BlobValue([]byte{}, p.takeComments()...))
			return nil
		}
		data, err := base64.StdEncoding.DecodeString(line.Value)
		if err != nil {
			return p.errorf(line, ErrInvalidBase64, "%s: %v", ErrInvalidBase64, err)
		}
		p.current.section.Set(key, BlobValue(data, p.takeComments()...))
	case token.COLON:
		if line.Value == "" {
			// A newer header replaces one still waiting.
			p.pending = &pendingHeader{line: line, comments: p.takeComments()}
			return nil
		}
		sc := Interpret(escape.UnescapeValue(line.Value))
		p.current.section.Set(key, ScalarValue(sc, p.takeComments()...))
	default:
		return p.errorf(line, ErrNoSeparator, "internal issue: unrecognized separator %q", line.Sep.String())
	}
	return nil
}

func (p *parser) finish() (*Section, error) {
	if p.pending != nil && p.opts.strict {
		return nil, p.errorf(p.pending.line, ErrDanglingHeader, "%s", ErrDanglingHeader)
	}
	return p.root, nil
}

// takeComments hands over the buffered comment lines and starts a new
// buffer.
func (p *parser) takeComments() []string {
	c := p.comments
	p.comments = nil
	return c
}

func (p *parser) errorf(line token.Line, err error, format string, args ...any) *ParseError {
	return &ParseError{
		Line:   line.Number,
		Text:   line.Text,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
