package fds

import "fmt"

const (
	defaultMaxDepth = 1000
	defaultIndent   = 4
	defaultNewline  = "\n"
)

// Option configures parsing, formatting and struct mapping.
type Option func(*options) error

type options struct {
	maxDepth   int
	strict     bool
	indent     int
	baseIndent int
	newline    string
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth: defaultMaxDepth,
		indent:   defaultIndent,
		newline:  defaultNewline,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth sets the maximum section nesting depth. Parsing a deeper input
// fails with ErrMaxDepth, and formatting or mapping a deeper tree fails
// too. This keeps adversarial input from exhausting the stack.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("fds: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Strict makes the parser reject two inputs it otherwise tolerates: a line
// indented deeper than the previous one when no section header is waiting
// (ErrUnexpectedIndent), and a section header whose next entry is not
// indented deeper (ErrDanglingHeader).
func Strict() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// Indent sets the number of spaces each nesting level adds when formatting.
// Nesting is carried by indentation alone, so it must be at least one.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces <= 0 {
			return fmt.Errorf("fds: indent spaces must be positive")
		}
		o.indent = spaces
		return nil
	}
}

// BaseIndent sets the indentation of the outermost keys when formatting.
func BaseIndent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("fds: base indent cannot be negative")
		}
		o.baseIndent = spaces
		return nil
	}
}

// Newline sets the line terminator used when formatting.
func Newline(s string) Option {
	return func(o *options) error {
		if s == "" {
			return fmt.Errorf("fds: newline cannot be empty")
		}
		o.newline = s
		return nil
	}
}
