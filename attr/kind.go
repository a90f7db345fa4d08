package attr

// Kind is the runtime tag of an attribute value. The set is closed: every
// value the codecs move between a document and a host graph has exactly one
// Kind from this enumeration.
type Kind uint8

const (
	// KindInvalid is the zero Kind; it tags no value.
	KindInvalid Kind = iota

	// KindBool holds a true boolean. It shares the "boolean" type-name with
	// KindUint8; on output both print 0/1.
	KindBool

	// KindUint8 holds an 8-bit unsigned integer. Documents declare it as
	// "boolean" (legacy alias), and readers resolve "boolean" to this kind.
	KindUint8

	// KindInt32 holds a 32-bit signed integer ("int").
	KindInt32

	// KindInt64 holds a 64-bit signed integer ("long").
	KindInt64

	// KindFloat32 holds an IEEE-754 single ("float").
	KindFloat32

	// KindFloat64 holds an IEEE-754 double ("double").
	KindFloat64

	// KindBoolVector holds a []uint8 ("vector_boolean").
	KindBoolVector

	// KindInt32Vector holds a []int32 ("vector_int").
	KindInt32Vector

	// KindInt64Vector holds a []int64 ("vector_long").
	KindInt64Vector

	// KindFloat64Vector holds a []float64 ("vector_double"; documents may
	// also declare it as "vector_float").
	KindFloat64Vector

	// KindStringVector holds a []string ("vector_string").
	KindStringVector

	// KindString holds a string.
	KindString

	// KindObject holds an opaque object payload ("python_object"). The codec
	// moves the payload verbatim; interpretation belongs to the host.
	KindObject
)

// kindCount bounds the enumeration; new kinds go before this line.
const kindCount = int(KindObject) + 1

// typeNames maps each kind to its canonical GraphML attr.type string.
var typeNames = [kindCount]string{
	KindBool:          "boolean",
	KindUint8:         "boolean",
	KindInt32:         "int",
	KindInt64:         "long",
	KindFloat32:       "float",
	KindFloat64:       "double",
	KindBoolVector:    "vector_boolean",
	KindInt32Vector:   "vector_int",
	KindInt64Vector:   "vector_long",
	KindFloat64Vector: "vector_double",
	KindStringVector:  "vector_string",
	KindString:        "string",
	KindObject:        "python_object",
}

// nameKinds maps every accepted input type name to its kind. The mapping is
// many-to-one: "boolean" resolves to KindUint8 and "vector_float" is a read
// alias of "vector_double".
var nameKinds = map[string]Kind{
	"boolean":        KindUint8,
	"int":            KindInt32,
	"long":           KindInt64,
	"float":          KindFloat32,
	"double":         KindFloat64,
	"vector_boolean": KindBoolVector,
	"vector_int":     KindInt32Vector,
	"vector_long":    KindInt64Vector,
	"vector_float":   KindFloat64Vector,
	"vector_double":  KindFloat64Vector,
	"vector_string":  KindStringVector,
	"string":         KindString,
	"python_object":  KindObject,
}

// debugNames are used by Kind.String for diagnostics only.
var debugNames = [kindCount]string{
	KindInvalid:       "invalid",
	KindBool:          "bool",
	KindUint8:         "uint8",
	KindInt32:         "int32",
	KindInt64:         "int64",
	KindFloat32:       "float32",
	KindFloat64:       "float64",
	KindBoolVector:    "[]uint8",
	KindInt32Vector:   "[]int32",
	KindInt64Vector:   "[]int64",
	KindFloat64Vector: "[]float64",
	KindStringVector:  "[]string",
	KindString:        "string",
	KindObject:        "object",
}

// TypeName returns the canonical GraphML attr.type string for k. Kinds
// outside the table (including KindInvalid) report "string", the emitter's
// default for unknown value shapes.
// Complexity: O(1)
func (k Kind) TypeName() string {
	if int(k) < kindCount && typeNames[k] != "" {
		return typeNames[k]
	}

	return "string"
}

// KindOf resolves an attr.type string from a document to its kind.
// The second result is false for names outside the accepted set.
// Complexity: O(1)
func KindOf(name string) (Kind, bool) {
	k, ok := nameKinds[name]

	return k, ok
}

// KindFor reports the kind corresponding to the dynamic type of v.
// Recognized Go types are exactly the storage types of the kind table,
// plus int, which maps to KindInt64. The second result is false for any
// other type.
// Complexity: O(1)
func KindFor(v any) (Kind, bool) {
	val, ok := ValueOf(v)

	return val.Kind(), ok
}

// Valid reports whether k is a member of the closed kind set.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < kindCount
}

// String names k for diagnostics and error text.
func (k Kind) String() string {
	if int(k) < kindCount {
		return debugNames[k]
	}

	return "invalid"
}

// Zero returns the zero value of kind k: false, 0, 0.0, the empty vector,
// or the empty string. The zero of KindInvalid is the zero Value.
// Complexity: O(1)
func (k Kind) Zero() Value {
	switch k {
	case KindBool:
		return Bool(false)
	case KindUint8:
		return Uint8(0)
	case KindInt32:
		return Int32(0)
	case KindInt64:
		return Int64(0)
	case KindFloat32:
		return Float32(0)
	case KindFloat64:
		return Float64(0)
	case KindBoolVector:
		return BoolVector(nil)
	case KindInt32Vector:
		return Int32Vector(nil)
	case KindInt64Vector:
		return Int64Vector(nil)
	case KindFloat64Vector:
		return Float64Vector(nil)
	case KindStringVector:
		return StringVector(nil)
	case KindString:
		return String("")
	case KindObject:
		return Object("")
	default:
		return Value{}
	}
}
