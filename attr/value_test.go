package attr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/grafio/attr"
)

func TestValueOf_CoversStorageTypes(t *testing.T) {
	cases := []struct {
		in   any
		kind attr.Kind
	}{
		{true, attr.KindBool},
		{uint8(3), attr.KindUint8},
		{int32(-5), attr.KindInt32},
		{int64(9), attr.KindInt64},
		{11, attr.KindInt64},
		{float32(1.5), attr.KindFloat32},
		{2.5, attr.KindFloat64},
		{[]uint8{1}, attr.KindBoolVector},
		{[]int32{1}, attr.KindInt32Vector},
		{[]int64{1}, attr.KindInt64Vector},
		{[]float64{1}, attr.KindFloat64Vector},
		{[]string{"x"}, attr.KindStringVector},
		{"s", attr.KindString},
	}
	for _, c := range cases {
		v, ok := attr.ValueOf(c.in)
		assert.True(t, ok, "%T", c.in)
		assert.Equal(t, c.kind, v.Kind(), "%T", c.in)
	}

	_, ok := attr.ValueOf(map[string]int{})
	assert.False(t, ok)
}

func TestValue_AccessorsRejectWrongKind(t *testing.T) {
	v := attr.Int32(7)
	_, ok := v.Int64()
	assert.False(t, ok)
	_, ok = v.Str()
	assert.False(t, ok)

	i, ok := v.Int32()
	assert.True(t, ok)
	assert.Equal(t, int32(7), i)
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, int64(4), attr.Int64(4).Interface())
	assert.Equal(t, "p", attr.Object("p").Interface())
	assert.Equal(t, []float64{1, 2}, attr.Float64Vector([]float64{1, 2}).Interface())
	assert.Nil(t, attr.Value{}.Interface())
}

func TestValue_EqualBitExactFloats(t *testing.T) {
	assert.True(t, attr.Float64(1.5).Equal(attr.Float64(1.5)))
	assert.False(t, attr.Float64(0).Equal(attr.Float64(math.Copysign(0, -1))), "+0 and -0 differ bitwise")
	assert.True(t, attr.Float64(math.NaN()).Equal(attr.Float64(math.NaN())), "same NaN payload compares equal")
	assert.False(t, attr.Float64(1).Equal(attr.Float32(1)), "kinds differ")
}

func TestValue_EqualVectors(t *testing.T) {
	a := attr.Float64Vector([]float64{1, 2, 3})
	b := attr.Float64Vector([]float64{1, 2, 3})
	c := attr.Float64Vector([]float64{1, 2})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, attr.StringVector(nil).Equal(attr.StringVector([]string{})), "nil and empty are equal")
}

func TestValue_StringAndObjectDistinct(t *testing.T) {
	s := attr.String("x")
	o := attr.Object("x")
	assert.False(t, s.Equal(o))
	_, ok := s.Object()
	assert.False(t, ok)
	_, ok = o.Str()
	assert.False(t, ok)
}
