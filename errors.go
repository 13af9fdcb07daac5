package yagi

import "errors"

type ErrorKind int

const (
	InvalidUnit ErrorKind = iota + 1
	GainOutOfRange
	BoomLengthOutOfRange
	BoomDiameterTooLarge
	DiameterOutOfRange
	MalformedInput
)

var ErrorKinds = [...]string{
	"Unknown-ErrorKind",
	"InvalidUnit",
	"GainOutOfRange",
	"BoomLengthOutOfRange",
	"BoomDiameterTooLarge",
	"DiameterOutOfRange",
	"MalformedInput",
}

func (k ErrorKind) String() string {
	if k < InvalidUnit || k > MalformedInput {
		return ErrorKinds[0]
	}
	return ErrorKinds[k]
}

// Error is returned for every rejected request. Msg is meant for the user.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Sentinels for errors.Is, matched on Kind only.
var (
	ErrInvalidUnit          = &Error{Kind: InvalidUnit}
	ErrGainOutOfRange       = &Error{Kind: GainOutOfRange}
	ErrBoomLengthOutOfRange = &Error{Kind: BoomLengthOutOfRange}
	ErrBoomDiameterTooLarge = &Error{Kind: BoomDiameterTooLarge}
	ErrDiameterOutOfRange   = &Error{Kind: DiameterOutOfRange}
	ErrMalformedInput       = &Error{Kind: MalformedInput}
)

// NewError wraps err (may be nil) with a kind and user message.
func NewError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a design error, or 0 for anything else.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
