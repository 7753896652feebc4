package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestError_IsByCode(t *testing.T) {
	err := NewError(XPTY0004, "entry 3 of the left operand is xs:string", nil)
	require.ErrorIs(t, err, ErrWrongItemType)
	require.NotErrorIs(t, err, ErrWrongArgumentKind)

	wrapped := fmt.Errorf("union: %w", err)
	require.ErrorIs(t, wrapped, ErrWrongItemType)

	var typed *Error
	require.ErrorAs(t, wrapped, &typed)
	require.Equal(t, ErrKindItemType, typed.Code.Kind())
}

func TestError_MessageAndCause(t *testing.T) {
	cause := errors.New("truncated")
	err := NewError(SYSE0001, "decode operand", cause)
	require.Equal(t, "SYSE0001: decode operand: truncated", err.Error())
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrInternal)

	var nilErr *Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestErrorCode_Kind(t *testing.T) {
	require.Equal(t, ErrKindArgument, FORG0006.Kind())
	require.Equal(t, ErrKindItemType, XPTY0004.Kind())
	require.Equal(t, ErrKindInternal, SYSE0001.Kind())
	require.Equal(t, ErrKindInternal, ErrorCode("XXXX0000").Kind())
}
