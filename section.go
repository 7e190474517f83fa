package fds

import (
	"fmt"
	"iter"
	"slices"

	"github.com/KimNorgaard/go-fds/internal/strutil"
)

// Section is an ordered collection of keyed values. Keys keep the case they
// were stored with and the order they were first inserted in; a parallel
// index keyed by the ASCII lower-cased key serves case-insensitive lookups.
//
// A Section is not safe for concurrent mutation.
type Section struct {
	// StartingLine is the 1-based line the section began on. It is only set
	// by the parser and is not maintained across later edits.
	StartingLine int

	keys    []string
	data    map[string]*Value
	lowered map[string]*Value
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{
		data:    make(map[string]*Value),
		lowered: make(map[string]*Value),
	}
}

func (s *Section) init() {
	if s.data == nil {
		s.data = make(map[string]*Value)
		s.lowered = make(map[string]*Value)
	}
}

// Set stores v under key. Replacing an existing key keeps its position.
// Both the exact and the case-folded index are updated together.
func (s *Section) Set(key string, v *Value) {
	if v == nil {
		panic("fds: Set with nil *Value")
	}
	s.init()
	if _, ok := s.data[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.data[key] = v
	s.lowered[strutil.ToLowerFast(key)] = v
}

// Get returns the value stored under exactly key.
func (s *Section) Get(key string) (*Value, bool) {
	v, ok := s.data[key]
	return v, ok
}

// GetLowered returns the value stored under key, ignoring ASCII case. When
// several keys fold to the same form, the most recently set one wins.
func (s *Section) GetLowered(key string) (*Value, bool) {
	v, ok := s.lowered[strutil.ToLowerFast(key)]
	return v, ok
}

// Has reports whether key is present with exactly this case.
func (s *Section) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// HasLowered reports whether key is present in any ASCII case.
func (s *Section) HasLowered(key string) bool {
	_, ok := s.lowered[strutil.ToLowerFast(key)]
	return ok
}

// Remove deletes key and reports whether it was present.
func (s *Section) Remove(key string) bool {
	v, ok := s.data[key]
	if !ok {
		return false
	}
	delete(s.data, key)
	s.keys = slices.DeleteFunc(s.keys, func(k string) bool { return k == key })

	low := strutil.ToLowerFast(key)
	if s.lowered[low] != v {
		return true
	}
	delete(s.lowered, low)
	for i := len(s.keys) - 1; i >= 0; i-- {
		if strutil.EqualFoldFast(s.keys[i], key) {
			s.lowered[low] = s.data[s.keys[i]]
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order.
func (s *Section) Keys() []string {
	return slices.Clone(s.keys)
}

// Len returns the number of keys.
func (s *Section) Len() int { return len(s.keys) }

// All iterates over the entries in insertion order.
func (s *Section) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, k := range s.keys {
			if !yield(k, s.data[k]) {
				return
			}
		}
	}
}

// Equal reports whether s and o hold the same keys in the same order with
// equal values. Comments and starting lines are ignored.
func (s *Section) Equal(o *Section) bool {
	if s == nil || o == nil {
		return s == o
	}
	if !slices.Equal(s.keys, o.keys) {
		return false
	}
	for _, k := range s.keys {
		if !s.data[k].Equal(o.data[k]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of s.
func (s *Section) Clone() *Section {
	c := NewSection()
	c.StartingLine = s.StartingLine
	for k, v := range s.All() {
		c.Set(k, v.Clone())
	}
	return c
}

// String serializes the section with default options.
func (s *Section) String() string {
	b, err := Format(s)
	if err != nil {
		return fmt.Sprintf("!(%v)", err)
	}
	return string(b)
}
