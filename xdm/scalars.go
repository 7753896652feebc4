package xdm

import (
	"math"
	"math/big"

	"github.com/joshuapare/xdmkit/internal/format"
)

// String is a view over a string payload: a 4-byte length then UTF-8 bytes.
// It serves xs:string, xs:untypedAtomic, xs:anyURI and the string fields of
// node bodies.
type String struct {
	Pointable
}

// UTF8Length returns the encoded byte length.
func (s *String) UTF8Length() int {
	return int(format.ReadU32(s.bytes, s.start))
}

// UTF8Bytes returns the encoded bytes without copying.
func (s *String) UTF8Bytes() []byte {
	off := s.start + format.StringDataOffset
	end := off + s.UTF8Length()
	return s.bytes[off:end:end]
}

func (s *String) String() string {
	return string(s.UTF8Bytes())
}

// Boolean is a view over an xs:boolean payload.
type Boolean struct {
	Pointable
}

func (v *Boolean) Boolean() bool { return v.bytes[v.start] != 0 }

// Long is a view over an xs:integer or xs:long payload.
type Long struct {
	Pointable
}

func (v *Long) Long() int64 { return int64(format.ReadU64(v.bytes, v.start)) }

// Int is a view over an xs:int payload.
type Int struct {
	Pointable
}

func (v *Int) Int() int32 { return format.ReadI32(v.bytes, v.start) }

// Short is a view over an xs:short payload.
type Short struct {
	Pointable
}

func (v *Short) Short() int16 { return int16(format.ReadU16(v.bytes, v.start)) }

// Byte is a view over an xs:byte payload.
type Byte struct {
	Pointable
}

func (v *Byte) Byte() int8 { return int8(v.bytes[v.start]) }

// Float is a view over an xs:float payload.
type Float struct {
	Pointable
}

func (v *Float) Float() float32 {
	return math.Float32frombits(format.ReadU32(v.bytes, v.start))
}

// Double is a view over an xs:double payload.
type Double struct {
	Pointable
}

func (v *Double) Double() float64 {
	return math.Float64frombits(format.ReadU64(v.bytes, v.start))
}

// Decimal is a view over an xs:decimal payload: scale byte then the unscaled
// value. The number is Unscaled() * 10^-Scale().
type Decimal struct {
	Pointable
}

func (v *Decimal) Scale() uint8 { return v.bytes[v.start] }

func (v *Decimal) Unscaled() int64 {
	return int64(format.ReadU64(v.bytes, v.start+format.DecimalScaleSize))
}

// Rat returns the exact decimal value.
func (v *Decimal) Rat() *big.Rat {
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.Scale())), nil)
	return new(big.Rat).SetFrac(big.NewInt(v.Unscaled()), den)
}
