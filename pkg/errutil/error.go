package errutil

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnauthorized        Kind = "Unauthorized"
	KindForbidden           Kind = "Forbidden"
	KindValidation          Kind = "ValidationError"
	KindNotEligible         Kind = "NotEligible"
	KindInsufficientBalance Kind = "InsufficientBalance"
	KindMissingDestination  Kind = "MissingDestination"
	KindNotFound            Kind = "NotFound"
	KindInvalidTransition   Kind = "InvalidTransition"
	KindStoreUnavailable    Kind = "StoreUnavailable"
)

// Error is the single error type returned across service boundaries.
// Fields are merged into the JSON body next to "code" and "error".
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]interface{}
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, errutil.ErrNotEligible).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

type Option func(*Error)

func WithField(key string, value interface{}) Option {
	return func(e *Error) {
		if e.Fields == nil {
			e.Fields = make(map[string]interface{})
		}
		e.Fields[key] = value
	}
}

func WithErr(err error) Option {
	return func(e *Error) { e.Err = err }
}

func New(kind Kind, message string, opts ...Option) *Error {
	e := &Error{Kind: kind, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Sentinels for errors.Is.
var (
	ErrUnauthorized        = &Error{Kind: KindUnauthorized}
	ErrForbidden           = &Error{Kind: KindForbidden}
	ErrValidation          = &Error{Kind: KindValidation}
	ErrNotEligible         = &Error{Kind: KindNotEligible}
	ErrInsufficientBalance = &Error{Kind: KindInsufficientBalance}
	ErrMissingDestination  = &Error{Kind: KindMissingDestination}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInvalidTransition   = &Error{Kind: KindInvalidTransition}
	ErrStoreUnavailable    = &Error{Kind: KindStoreUnavailable}
)

func Unauthorized(msg string) *Error {
	return New(KindUnauthorized, msg)
}

func Forbidden(msg string) *Error {
	return New(KindForbidden, msg)
}

func Validation(field, msg string) *Error {
	return New(KindValidation, msg, WithField("field", field))
}

func NotFound(msg string) *Error {
	return New(KindNotFound, msg)
}

func InvalidTransition(msg, status string) *Error {
	return New(KindInvalidTransition, msg, WithField("status", status))
}

func MissingDestination() *Error {
	return New(KindMissingDestination, "no payout destination on file")
}

func StoreUnavailable(err error) *Error {
	return New(KindStoreUnavailable, "storage temporarily unavailable, retry the request", WithErr(err))
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
