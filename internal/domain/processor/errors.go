package processor

import (
	"errors"

	"MercadoPagoBridge/internal/domain/gateway"
)

type Kind string

const (
	KindProvider        Kind = "provider_error"
	KindConfiguration   Kind = "configuration_error"
	KindCorrelation     Kind = "correlation_error"
	KindNotImplemented  Kind = "not_implemented"
	KindConflictIgnored Kind = "conflict_ignored"
)

// Error is the structured failure every processor operation returns.
// Detail chains the message and detail of a wrapped *Error so the root cause
// survives several layers of wrapping.
type Error struct {
	Kind    Kind
	Message string
	Code    string
	Detail  string

	err error
}

// Kind-only values for errors.Is.
var (
	ErrProvider       = &Error{Kind: KindProvider}
	ErrConfiguration  = &Error{Kind: KindConfiguration}
	ErrCorrelation    = &Error{Kind: KindCorrelation}
	ErrNotImplemented = &Error{Kind: KindNotImplemented}
)

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches another *Error of the same kind when the target carries no
// message, so ErrProvider and friends work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

func buildError(kind Kind, message string, cause error) *Error {
	e := &Error{Kind: kind, Message: message, err: cause}
	if cause == nil {
		return e
	}

	var inner *Error
	if errors.As(cause, &inner) {
		e.Code = inner.Code
		e.Detail = inner.Message + "\n" + inner.Detail
		return e
	}

	if apiErr, ok := gateway.AsAPIError(cause); ok {
		e.Code = apiErr.Code
		e.Detail = apiErr.Message
		return e
	}

	e.Detail = cause.Error()
	return e
}
