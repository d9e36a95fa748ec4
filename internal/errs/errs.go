// Package errs classifies rules violations.
//
// Every failure the engine reports carries one of three kinds: the caller passed
// a bad target (Argument), the request conflicts with the current game state
// (State), or the player lacks the resources, cards or supply (Insufficient).
// Callers test the kind with errors.Is against ErrArgument, ErrState or
// ErrInsufficient, and specific conditions against the sentinel values the
// owning package declares.
package errs

import "errors"

// Kind is the failure class of an Error.
type Kind int

const (
	KindArgument Kind = iota + 1
	KindState
	KindInsufficient
)

var kindNames = map[Kind]string{
	KindArgument:     "argument",
	KindState:        "state",
	KindInsufficient: "insufficient",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Error is a classified rules error.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String() + " error"
	}
	return e.Message
}

// Is matches a bare kind marker (an Error with no message) by kind.
// Errors with a message only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message == "" {
		return t.Kind == e.Kind
	}
	return t == e
}

// Kind markers for errors.Is.
var (
	ErrArgument     = &Error{Kind: KindArgument}
	ErrState        = &Error{Kind: KindState}
	ErrInsufficient = &Error{Kind: KindInsufficient}
)

// Argument returns a new argument error.
func Argument(msg string) *Error { return &Error{Kind: KindArgument, Message: msg} }

// State returns a new state error.
func State(msg string) *Error { return &Error{Kind: KindState, Message: msg} }

// Insufficient returns a new insufficiency error.
func Insufficient(msg string) *Error { return &Error{Kind: KindInsufficient, Message: msg} }

// KindOf reports the kind of the first classified error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
