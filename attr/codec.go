package attr

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts lexical text into a Value of kind k.
//
// Scalars parse with strconv in the strict forms described in the package
// doc; no surrounding whitespace is trimmed. Floats accept decimal and
// hexadecimal-significand notation (strconv.ParseFloat covers both, so the
// hex fallback of the classic readers is inherent here). Vectors split on
// runs of whitespace and parse each element as the element kind; empty text
// yields the empty vector. KindString and KindObject take the text verbatim.
// Complexity: O(len(text))
func Parse(text string, k Kind) (Value, error) {
	switch k {
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Bool(b), nil

	case KindUint8:
		u, err := strconv.ParseUint(text, 10, 8)
		if err != nil {
			// boolean columns may carry true/false spellings
			if b, berr := strconv.ParseBool(text); berr == nil {
				return Bool(b).asUint8(), nil
			}

			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Uint8(uint8(u)), nil

	case KindInt32:
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Int32(int32(i)), nil

	case KindInt64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Int64(i), nil

	case KindFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Float32(float32(f)), nil

	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
		}

		return Float64(f), nil

	case KindBoolVector:
		fields := strings.Fields(text)
		out := make([]uint8, 0, len(fields))
		for _, f := range fields {
			ev, err := Parse(f, KindUint8)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
			}
			u, _ := ev.Uint8()
			out = append(out, u)
		}

		return BoolVector(out), nil

	case KindInt32Vector:
		fields := strings.Fields(text)
		out := make([]int32, 0, len(fields))
		for _, f := range fields {
			i, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
			}
			out = append(out, int32(i))
		}

		return Int32Vector(out), nil

	case KindInt64Vector:
		fields := strings.Fields(text)
		out := make([]int64, 0, len(fields))
		for _, f := range fields {
			i, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
			}
			out = append(out, i)
		}

		return Int64Vector(out), nil

	case KindFloat64Vector:
		fields := strings.Fields(text)
		out := make([]float64, 0, len(fields))
		for _, f := range fields {
			fv, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %q as %s", ErrParse, text, k)
			}
			out = append(out, fv)
		}

		return Float64Vector(out), nil

	case KindStringVector:
		return StringVector(strings.Fields(text)), nil

	case KindString:
		return String(text), nil

	case KindObject:
		return Object(text), nil

	default:
		return Value{}, fmt.Errorf("%w: cannot parse as %s", ErrKindMismatch, k)
	}
}

// Print renders v in its lexical form. Printing inverts Parse bit-exactly
// for every kind, floats included. The zero Value prints as "".
// Complexity: O(n) for vectors and strings, O(1) otherwise.
func Print(v Value) string {
	switch v.kind {
	case KindBool, KindUint8, KindInt32, KindInt64:
		return strconv.FormatInt(v.num, 10)
	case KindFloat32:
		return strconv.FormatFloat(v.fp, 'x', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.fp, 'x', -1, 64)
	case KindBoolVector:
		s, _ := v.BoolVector()
		var b strings.Builder
		for i, e := range s {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatUint(uint64(e), 10))
		}

		return b.String()
	case KindInt32Vector:
		s, _ := v.Int32Vector()
		var b strings.Builder
		for i, e := range s {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(int64(e), 10))
		}

		return b.String()
	case KindInt64Vector:
		s, _ := v.Int64Vector()
		var b strings.Builder
		for i, e := range s {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(e, 10))
		}

		return b.String()
	case KindFloat64Vector:
		s, _ := v.Float64Vector()
		var b strings.Builder
		for i, e := range s {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(e, 'x', -1, 64))
		}

		return b.String()
	case KindStringVector:
		s, _ := v.StringVector()

		return strings.Join(s, " ")
	case KindString, KindObject:
		return v.str
	default:
		return ""
	}
}

// asUint8 reinterprets a KindBool value as KindUint8, for boolean spellings
// inside byte columns.
func (v Value) asUint8() Value {
	return Uint8(uint8(v.num))
}
