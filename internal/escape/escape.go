// Package escape implements the backslash escape grammar used for keys and
// scalar values.
//
//	\s  backslash        \c  ':'
//	\n  line feed        \e  '='
//	\r  carriage return  \x  '#'
//	\t  tab              \_  space
//	\-  nothing (marks an empty key or value)
//
// Keys escape the structural characters ':', '=' and '#' plus any leading
// spaces. Values only need the line-breaking characters and the spaces at
// either end, which the parser would otherwise trim.
package escape

import "strings"

// Empty is the escaped form of the empty value.
const Empty = `\-`

// Key escapes a key so that it survives as the left-hand side of a line.
func Key(s string) string {
	if s == "" {
		return Empty
	}
	if !needsKeyEscape(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	leading := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != ' ' {
			leading = false
		}
		switch c {
		case ':':
			b.WriteString(`\c`)
		case '=':
			b.WriteString(`\e`)
		case '#':
			b.WriteString(`\x`)
		case ' ':
			if leading {
				b.WriteString(`\_`)
			} else {
				b.WriteByte(c)
			}
		default:
			writeCommon(&b, c)
		}
	}
	return b.String()
}

// Value escapes scalar text so that it survives as the right-hand side of a
// line.
func Value(s string) string {
	if s == "" {
		return Empty
	}
	first := strings.IndexFunc(s, notSpace)
	if first < 0 {
		return strings.Repeat(`\_`, len(s))
	}
	last := strings.LastIndexFunc(s, notSpace)
	if first == 0 && last == len(s)-1 && !strings.ContainsAny(s, "\\\n\r\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' && (i < first || i > last) {
			b.WriteString(`\_`)
			continue
		}
		writeCommon(&b, c)
	}
	return b.String()
}

// UnescapeKey reverses Key.
func UnescapeKey(s string) string {
	return unescape(s)
}

// UnescapeValue reverses Value.
func UnescapeValue(s string) string {
	return unescape(s)
}

func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 's':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'c':
			b.WriteByte(':')
		case 'e':
			b.WriteByte('=')
		case 'x':
			b.WriteByte('#')
		case '_':
			b.WriteByte(' ')
		case '-':
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func writeCommon(b *strings.Builder, c byte) {
	switch c {
	case '\\':
		b.WriteString(`\s`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		b.WriteByte(c)
	}
}

func needsKeyEscape(s string) bool {
	if s != "" && s[0] == ' ' {
		return true
	}
	return strings.ContainsAny(s, ":=#\\\n\r\t")
}

func notSpace(r rune) bool { return r != ' ' }
