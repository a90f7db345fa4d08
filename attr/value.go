package attr

import "math"

// Value is a tagged container for one attribute datum. The zero Value has
// KindInvalid and carries nothing. Values are immutable; vector constructors
// and accessors share the backing slice with the caller.
type Value struct {
	kind Kind
	num  int64   // KindBool (0/1), KindUint8, KindInt32, KindInt64
	fp   float64 // KindFloat32 (widened, exact), KindFloat64
	str  string  // KindString, KindObject
	vec  any     // vector kinds: []uint8, []int32, []int64, []float64, []string
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	var n int64
	if b {
		n = 1
	}

	return Value{kind: KindBool, num: n}
}

// Uint8 wraps an 8-bit unsigned integer.
func Uint8(u uint8) Value { return Value{kind: KindUint8, num: int64(u)} }

// Int32 wraps a 32-bit signed integer.
func Int32(i int32) Value { return Value{kind: KindInt32, num: int64(i)} }

// Int64 wraps a 64-bit signed integer.
func Int64(i int64) Value { return Value{kind: KindInt64, num: i} }

// Float32 wraps an IEEE-754 single. Widening to the internal double slot is
// exact, so the original bits are recoverable.
func Float32(f float32) Value { return Value{kind: KindFloat32, fp: float64(f)} }

// Float64 wraps an IEEE-754 double.
func Float64(f float64) Value { return Value{kind: KindFloat64, fp: f} }

// BoolVector wraps a byte vector.
func BoolVector(v []uint8) Value { return Value{kind: KindBoolVector, vec: v} }

// Int32Vector wraps an int32 vector.
func Int32Vector(v []int32) Value { return Value{kind: KindInt32Vector, vec: v} }

// Int64Vector wraps an int64 vector.
func Int64Vector(v []int64) Value { return Value{kind: KindInt64Vector, vec: v} }

// Float64Vector wraps a float64 vector.
func Float64Vector(v []float64) Value { return Value{kind: KindFloat64Vector, vec: v} }

// StringVector wraps a string vector.
func StringVector(v []string) Value { return Value{kind: KindStringVector, vec: v} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Object wraps an opaque object payload.
func Object(payload string) Value { return Value{kind: KindObject, str: payload} }

// ValueOf wraps a plain Go value in a Value. Recognized types are the
// storage types of the kind table plus int (stored as KindInt64). The
// second result is false for unrecognized types; object payloads must be
// built explicitly with Object.
// Complexity: O(1)
func ValueOf(v any) (Value, bool) {
	switch x := v.(type) {
	case bool:
		return Bool(x), true
	case uint8:
		return Uint8(x), true
	case int32:
		return Int32(x), true
	case int64:
		return Int64(x), true
	case int:
		return Int64(int64(x)), true
	case float32:
		return Float32(x), true
	case float64:
		return Float64(x), true
	case []uint8:
		return BoolVector(x), true
	case []int32:
		return Int32Vector(x), true
	case []int64:
		return Int64Vector(x), true
	case []float64:
		return Float64Vector(x), true
	case []string:
		return StringVector(x), true
	case string:
		return String(x), true
	case Value:
		return x, true
	default:
		return Value{}, false
	}
}

// Kind reports the tag of v.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a datum.
func (v Value) IsValid() bool { return v.kind.Valid() }

// Bool unwraps a KindBool value.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}

	return v.num != 0, true
}

// Uint8 unwraps a KindUint8 value.
func (v Value) Uint8() (uint8, bool) {
	if v.kind != KindUint8 {
		return 0, false
	}

	return uint8(v.num), true
}

// Int32 unwraps a KindInt32 value.
func (v Value) Int32() (int32, bool) {
	if v.kind != KindInt32 {
		return 0, false
	}

	return int32(v.num), true
}

// Int64 unwraps a KindInt64 value.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindInt64 {
		return 0, false
	}

	return v.num, true
}

// Float32 unwraps a KindFloat32 value.
func (v Value) Float32() (float32, bool) {
	if v.kind != KindFloat32 {
		return 0, false
	}

	return float32(v.fp), true
}

// Float64 unwraps a KindFloat64 value.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindFloat64 {
		return 0, false
	}

	return v.fp, true
}

// BoolVector unwraps a KindBoolVector value.
func (v Value) BoolVector() ([]uint8, bool) {
	if v.kind != KindBoolVector {
		return nil, false
	}
	s, _ := v.vec.([]uint8)

	return s, true
}

// Int32Vector unwraps a KindInt32Vector value.
func (v Value) Int32Vector() ([]int32, bool) {
	if v.kind != KindInt32Vector {
		return nil, false
	}
	s, _ := v.vec.([]int32)

	return s, true
}

// Int64Vector unwraps a KindInt64Vector value.
func (v Value) Int64Vector() ([]int64, bool) {
	if v.kind != KindInt64Vector {
		return nil, false
	}
	s, _ := v.vec.([]int64)

	return s, true
}

// Float64Vector unwraps a KindFloat64Vector value.
func (v Value) Float64Vector() ([]float64, bool) {
	if v.kind != KindFloat64Vector {
		return nil, false
	}
	s, _ := v.vec.([]float64)

	return s, true
}

// StringVector unwraps a KindStringVector value.
func (v Value) StringVector() ([]string, bool) {
	if v.kind != KindStringVector {
		return nil, false
	}
	s, _ := v.vec.([]string)

	return s, true
}

// Str unwraps a KindString value.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}

	return v.str, true
}

// Object unwraps a KindObject payload.
func (v Value) Object() (string, bool) {
	if v.kind != KindObject {
		return "", false
	}

	return v.str, true
}

// Interface returns the datum as a plain Go value of its storage type, or
// nil for the zero Value.
// Complexity: O(1)
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.num != 0
	case KindUint8:
		return uint8(v.num)
	case KindInt32:
		return int32(v.num)
	case KindInt64:
		return v.num
	case KindFloat32:
		return float32(v.fp)
	case KindFloat64:
		return v.fp
	case KindBoolVector, KindInt32Vector, KindInt64Vector, KindFloat64Vector, KindStringVector:
		return v.vec
	case KindString, KindObject:
		return v.str
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and the same datum.
// Floating-point comparison is bit-exact: NaN equals NaN with the same bit
// pattern, and +0 differs from -0. Vectors compare element-wise under the
// same rule; nil and empty vectors are equal.
// Complexity: O(n) for vectors, O(1) otherwise.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool, KindUint8, KindInt32, KindInt64:
		return v.num == o.num
	case KindFloat32:
		return math.Float32bits(float32(v.fp)) == math.Float32bits(float32(o.fp))
	case KindFloat64:
		return math.Float64bits(v.fp) == math.Float64bits(o.fp)
	case KindBoolVector:
		a, _ := v.BoolVector()
		b, _ := o.BoolVector()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	case KindInt32Vector:
		a, _ := v.Int32Vector()
		b, _ := o.Int32Vector()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	case KindInt64Vector:
		a, _ := v.Int64Vector()
		b, _ := o.Int64Vector()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	case KindFloat64Vector:
		a, _ := v.Float64Vector()
		b, _ := o.Float64Vector()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if math.Float64bits(a[i]) != math.Float64bits(b[i]) {
				return false
			}
		}

		return true
	case KindStringVector:
		a, _ := v.StringVector()
		b, _ := o.StringVector()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	case KindString, KindObject:
		return v.str == o.str
	default:
		return true
	}
}

// String renders v in its lexical form; it is shorthand for Print(v).
func (v Value) String() string { return Print(v) }
