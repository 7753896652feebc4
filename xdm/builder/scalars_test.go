package builder

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/xdmkit/internal/format"
	"github.com/joshuapare/xdmkit/xdm"
)

func TestScalars_ReadBack(t *testing.T) {
	var s ValueStorage
	var tv xdm.TaggedValue

	read := func(write func(*ValueStorage)) *xdm.TaggedValue {
		s.Reset()
		write(&s)
		require.NoError(t, xdm.Validate(s.Bytes()))
		s.TaggedValue(&tv)
		return &tv
	}

	var l xdm.Long
	read(func(s *ValueStorage) { PutInteger(s, math.MinInt64) }).Value(&l)
	assert.Equal(t, format.TagInteger, tv.Tag())
	assert.Equal(t, int64(math.MinInt64), l.Long())

	read(func(s *ValueStorage) { PutLong(s, 42) }).Value(&l)
	assert.Equal(t, format.TagLong, tv.Tag())
	assert.Equal(t, int64(42), l.Long())

	var i xdm.Int
	read(func(s *ValueStorage) { PutInt(s, -7) }).Value(&i)
	assert.Equal(t, int32(-7), i.Int())

	var sh xdm.Short
	read(func(s *ValueStorage) { PutShort(s, math.MaxInt16) }).Value(&sh)
	assert.Equal(t, int16(math.MaxInt16), sh.Short())

	var by xdm.Byte
	read(func(s *ValueStorage) { PutByte(s, -128) }).Value(&by)
	assert.Equal(t, int8(-128), by.Byte())

	var b xdm.Boolean
	read(func(s *ValueStorage) { PutBoolean(s, true) }).Value(&b)
	assert.True(t, b.Boolean())

	var f xdm.Float
	read(func(s *ValueStorage) { PutFloat(s, 1.5) }).Value(&f)
	assert.Equal(t, float32(1.5), f.Float())

	var d xdm.Double
	read(func(s *ValueStorage) { PutDouble(s, math.Inf(-1)) }).Value(&d)
	assert.True(t, math.IsInf(d.Double(), -1))

	var dec xdm.Decimal
	read(func(s *ValueStorage) { PutDecimal(s, 2, 12345) }).Value(&dec)
	assert.Equal(t, uint8(2), dec.Scale())
	assert.Equal(t, int64(12345), dec.Unscaled())
	assert.Equal(t, 0, dec.Rat().Cmp(big.NewRat(12345, 100)))

	var str xdm.String
	read(func(s *ValueStorage) { require.NoError(t, PutString(s, format.TagUntypedAtomic, "héllo")) }).Value(&str)
	assert.Equal(t, format.TagUntypedAtomic, tv.Tag())
	assert.Equal(t, "héllo", str.String())
	assert.Equal(t, len("héllo"), str.UTF8Length())
}

func TestPutString_RejectsNonStringTag(t *testing.T) {
	var s ValueStorage
	err := PutString(&s, format.TagInteger, "1")
	require.ErrorIs(t, err, format.ErrBadTag)
	require.Zero(t, s.Len())
}
