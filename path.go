package fds

import (
	"fmt"
	"strings"
)

// PathSeparator splits the parts of a dotted path such as "server.tls.cert".
// A key that itself contains a dot cannot be reached by path; use Get on the
// enclosing section instead.
const PathSeparator = "."

// Lookup follows a dotted path of exact-case keys.
func (s *Section) Lookup(path string) (*Value, bool) {
	return s.lookup(path, (*Section).Get)
}

// LookupLowered follows a dotted path ignoring ASCII case at every step.
func (s *Section) LookupLowered(path string) (*Value, bool) {
	return s.lookup(path, (*Section).GetLowered)
}

func (s *Section) lookup(path string, get func(*Section, string) (*Value, bool)) (*Value, bool) {
	cur := s
	parts := strings.Split(path, PathSeparator)
	for i, part := range parts {
		v, ok := get(cur, part)
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		if cur, ok = v.Section(); !ok {
			return nil, false
		}
	}
	return nil, false
}

// SetPath stores v at a dotted path, creating missing intermediate sections.
// It fails if an intermediate key holds something other than a section.
func (s *Section) SetPath(path string, v *Value) error {
	parts := strings.Split(path, PathSeparator)
	cur := s
	for i, part := range parts[:len(parts)-1] {
		next, ok := cur.Get(part)
		if !ok {
			sub := NewSection()
			cur.Set(part, SectionValue(sub))
			cur = sub
			continue
		}
		sub, ok := next.Section()
		if !ok {
			return fmt.Errorf("fds: cannot set %q: %q holds a %s, not a section",
				path, strings.Join(parts[:i+1], PathSeparator), next.Kind())
		}
		cur = sub
	}
	cur.Set(parts[len(parts)-1], v)
	return nil
}

// GetSection returns the section at path.
func (s *Section) GetSection(path string) (*Section, bool) {
	v, ok := s.Lookup(path)
	if !ok {
		return nil, false
	}
	return v.Section()
}

// GetBytes returns the binary data at path.
func (s *Section) GetBytes(path string) ([]byte, bool) {
	v, ok := s.Lookup(path)
	if !ok {
		return nil, false
	}
	return v.Blob()
}

// GetString returns the text of the scalar at path.
func (s *Section) GetString(path string) (string, bool) {
	sc, ok := s.scalarAt(path)
	if !ok {
		return "", false
	}
	return sc.Text(), true
}

// GetInt returns the scalar at path as an integer. Strings and floats that
// hold whole numbers are coerced.
func (s *Section) GetInt(path string) (int64, bool) {
	sc, ok := s.scalarAt(path)
	if !ok {
		return 0, false
	}
	i, err := sc.Int64()
	return i, err == nil
}

// GetFloat returns the scalar at path as a float.
func (s *Section) GetFloat(path string) (float64, bool) {
	sc, ok := s.scalarAt(path)
	if !ok {
		return 0, false
	}
	f, err := sc.Float64()
	return f, err == nil
}

// GetBool returns the scalar at path as a boolean.
func (s *Section) GetBool(path string) (bool, bool) {
	sc, ok := s.scalarAt(path)
	if !ok {
		return false, false
	}
	b, err := sc.Bool()
	return b, err == nil
}

func (s *Section) scalarAt(path string) (Scalar, bool) {
	v, ok := s.Lookup(path)
	if !ok {
		return Scalar{}, false
	}
	return v.Scalar()
}
