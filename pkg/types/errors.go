package types

// ErrorCode is an XQuery error code (the local part of the err: QName).
type ErrorCode string

const (
	// FORG0006 is raised when an argument has the wrong kind: for the set
	// operators, an operand that is neither a node nor a sequence.
	FORG0006 ErrorCode = "FORG0006"
	// XPTY0004 is raised when an item does not match the required type: for
	// the set operators, a sequence entry that is not a node.
	XPTY0004 ErrorCode = "XPTY0004"
	// SYSE0001 is raised for unexpected failures below the evaluator, such
	// as a region that cannot be decoded.
	SYSE0001 ErrorCode = "SYSE0001"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindArgument ErrKind = iota // operand shape does not fit the operation
	ErrKindItemType                // an item inside an operand has the wrong type
	ErrKindInternal                // codec or buffer failure
)

// Kind returns the category of c. Unknown codes are internal.
func (c ErrorCode) Kind() ErrKind {
	switch c {
	case FORG0006:
		return ErrKindArgument
	case XPTY0004:
		return ErrKindItemType
	}
	return ErrKindInternal
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := string(e.Code) + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same code, so wrapped instances carrying
// extra context still match the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e != nil && t != nil && t.Code == e.Code
}

// Sentinels commonly returned by evaluators.
var (
	// ErrWrongArgumentKind indicates an operand that is not a node or a sequence.
	ErrWrongArgumentKind = &Error{Code: FORG0006, Msg: "invalid argument type"}
	// ErrWrongItemType indicates a sequence entry of the wrong type.
	ErrWrongItemType = &Error{Code: XPTY0004, Msg: "type mismatch"}
	// ErrInternal indicates an unexpected codec failure.
	ErrInternal = &Error{Code: SYSE0001, Msg: "internal error"}
)

// NewError returns a new *Error with code, message and optional cause.
func NewError(code ErrorCode, msg string, cause error) *Error {
	return &Error{Code: code, Msg: msg, Err: cause}
}
