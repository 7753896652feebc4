package builder

import (
	"fmt"
	"math"

	"github.com/joshuapare/xdmkit/internal/format"
)

// PutString appends a string-like tagged value (xs:string, xs:untypedAtomic, xs:anyURI).
func PutString(s *ValueStorage, tag format.Tag, v string) error {
	if !tag.IsStringLike() {
		return fmt.Errorf("builder: %s is not a string type: %w", tag, format.ErrBadTag)
	}
	s.WriteTag(tag)
	putStringPayload(s, v)
	return nil
}

func putStringPayload(s *ValueStorage, v string) {
	s.Grow(format.StringSize(len(v)))
	s.WriteU32(uint32(len(v)))
	s.buf = append(s.buf, v...)
}

// PutBoolean appends an xs:boolean.
func PutBoolean(s *ValueStorage, v bool) {
	s.WriteTag(format.TagBoolean)
	if v {
		_ = s.WriteByte(1)
	} else {
		_ = s.WriteByte(0)
	}
}

// PutInteger appends an xs:integer.
func PutInteger(s *ValueStorage, v int64) {
	s.WriteTag(format.TagInteger)
	s.WriteU64(uint64(v))
}

// PutLong appends an xs:long.
func PutLong(s *ValueStorage, v int64) {
	s.WriteTag(format.TagLong)
	s.WriteU64(uint64(v))
}

// PutInt appends an xs:int.
func PutInt(s *ValueStorage, v int32) {
	s.WriteTag(format.TagInt)
	s.WriteI32(v)
}

// PutShort appends an xs:short.
func PutShort(s *ValueStorage, v int16) {
	s.WriteTag(format.TagShort)
	s.WriteU16(uint16(v))
}

// PutByte appends an xs:byte.
func PutByte(s *ValueStorage, v int8) {
	s.WriteTag(format.TagByte)
	_ = s.WriteByte(byte(v))
}

// PutFloat appends an xs:float.
func PutFloat(s *ValueStorage, v float32) {
	s.WriteTag(format.TagFloat)
	s.WriteU32(math.Float32bits(v))
}

// PutDouble appends an xs:double.
func PutDouble(s *ValueStorage, v float64) {
	s.WriteTag(format.TagDouble)
	s.WriteU64(math.Float64bits(v))
}

// PutDecimal appends an xs:decimal equal to unscaled * 10^-scale.
func PutDecimal(s *ValueStorage, scale uint8, unscaled int64) {
	s.WriteTag(format.TagDecimal)
	_ = s.WriteByte(scale)
	s.WriteU64(uint64(unscaled))
}
