package fds

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ScalarKind is the inferred type of a Scalar.
type ScalarKind int

const (
	StringScalar ScalarKind = iota
	BoolScalar
	IntScalar
	FloatScalar
)

func (k ScalarKind) String() string {
	switch k {
	case BoolScalar:
		return "boolean"
	case IntScalar:
		return "integer"
	case FloatScalar:
		return "float"
	default:
		return "string"
	}
}

// Scalar is a type-inferred textual value. It remembers the text it was
// inferred from so that rendering gives that text back unchanged.
type Scalar struct {
	kind ScalarKind
	text string
	b    bool
	i    int64
	f    float64
}

// Interpret infers a Scalar from unescaped value text. Booleans are tried
// first, then integers, then floats; anything else is a string.
func Interpret(text string) Scalar {
	switch {
	case strings.EqualFold(text, "true"):
		return Scalar{kind: BoolScalar, text: text, b: true}
	case strings.EqualFold(text, "false"):
		return Scalar{kind: BoolScalar, text: text}
	}
	if isIntegerText(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Scalar{kind: IntScalar, text: text, i: i}
		}
	}
	if isIntegerText(text) || isFloatText(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Scalar{kind: FloatScalar, text: text, f: f}
		}
	}
	return Scalar{kind: StringScalar, text: text}
}

// NewString returns a string scalar.
func NewString(s string) Scalar { return Scalar{kind: StringScalar, text: s} }

// NewBool returns a boolean scalar.
func NewBool(b bool) Scalar { return Scalar{kind: BoolScalar, text: strconv.FormatBool(b), b: b} }

// NewInt returns an integer scalar.
func NewInt(i int64) Scalar {
	return Scalar{kind: IntScalar, text: strconv.FormatInt(i, 10), i: i}
}

// NewFloat returns a float scalar. Its text always carries a decimal point or
// an exponent so that it reads back as a float. NaN and infinities have no
// float syntax and are stored as their string form.
func NewFloat(f float64) Scalar {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}
	return Scalar{kind: FloatScalar, text: text, f: f}
}

// Kind returns the inferred type.
func (s Scalar) Kind() ScalarKind { return s.kind }

// Text returns the textual rendering of the scalar, unescaped.
func (s Scalar) Text() string { return s.text }

// Interface returns the typed value: bool, int64, float64 or string.
func (s Scalar) Interface() any {
	switch s.kind {
	case BoolScalar:
		return s.b
	case IntScalar:
		return s.i
	case FloatScalar:
		return s.f
	default:
		return s.text
	}
}

// Bool returns the scalar as a boolean, coercing other kinds when possible.
func (s Scalar) Bool() (bool, error) { return cast.ToBoolE(s.Interface()) }

// Int64 returns the scalar as an integer, coercing other kinds when possible.
func (s Scalar) Int64() (int64, error) {
	if s.kind == FloatScalar {
		if s.f != math.Trunc(s.f) || s.f >= math.MaxInt64 || s.f < math.MinInt64 {
			return 0, &ScalarError{Scalar: s, Target: "int64"}
		}
	}
	return cast.ToInt64E(s.Interface())
}

// Float64 returns the scalar as a float, coercing other kinds when possible.
func (s Scalar) Float64() (float64, error) { return cast.ToFloat64E(s.Interface()) }

// String returns the scalar's text.
func (s Scalar) String() string { return s.text }

// Equal reports whether s and o have the same kind and typed value. The
// source text is not compared, so "007" equals 7.
func (s Scalar) Equal(o Scalar) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case BoolScalar:
		return s.b == o.b
	case IntScalar:
		return s.i == o.i
	case FloatScalar:
		return s.f == o.f || (math.IsNaN(s.f) && math.IsNaN(o.f))
	default:
		return s.text == o.text
	}
}

// isIntegerText matches [+-]?[0-9]+.
func isIntegerText(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatText matches [+-]?(digits[.digits]|.digits)([eE][+-]?digits)?.
func isFloatText(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	mant, exp, hasExp := strings.Cut(strings.Replace(s, "E", "e", 1), "e")
	if hasExp {
		if exp != "" && (exp[0] == '+' || exp[0] == '-') {
			exp = exp[1:]
		}
		if !allDigits(exp) || exp == "" {
			return false
		}
	}
	whole, frac, hasDot := strings.Cut(mant, ".")
	if !allDigits(whole) || !allDigits(frac) {
		return false
	}
	if hasDot {
		return whole != "" || frac != ""
	}
	return whole != ""
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
