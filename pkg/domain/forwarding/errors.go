package forwarding

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a forwarded call did not produce a relayable response.
type Kind int

const (
	Unknown Kind = iota
	MalformedInput
	MissingField
	BadStatus
	ConnectionFailed
	Timeout
	Transport
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "malformed_input"
	case MissingField:
		return "missing_field"
	case BadStatus:
		return "bad_status"
	case ConnectionFailed:
		return "connection_failed"
	case Timeout:
		return "timeout"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// Outbound reports whether the kind originates from the external call
// rather than from the inbound request.
func (k Kind) Outbound() bool {
	switch k {
	case BadStatus, ConnectionFailed, Timeout, Transport:
		return true
	default:
		return false
	}
}

var (
	ErrMalformedInput = errors.New("invalid JSON in request body")
	ErrMissingMessage = errors.New("request body is missing a non-empty Message")
)

type Error struct {
	Kind Kind
	// Detail is the caller-facing description; empty for Unknown.
	Detail string
	// StatusCode is set for BadStatus.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(kind Kind, err error) *Error {
	e := &Error{Kind: kind, Err: err}
	if err != nil && kind != Unknown {
		e.Detail = err.Error()
	}
	return e
}

// NewBadStatusError describes a non-2xx outbound response the way the
// common HTTP client libraries word it, e.g.
// "404 Client Error: Not Found for url: https://host/path".
func NewBadStatusError(statusCode int, url string) *Error {
	class := "Unexpected"
	switch {
	case statusCode >= 500:
		class = "Server"
	case statusCode >= 400:
		class = "Client"
	}
	detail := fmt.Sprintf("%d %s Error: %s for url: %s", statusCode, class, http.StatusText(statusCode), url)
	return &Error{
		Kind:       BadStatus,
		Detail:     detail,
		StatusCode: statusCode,
		Err:        errors.New(detail),
	}
}

// KindOf returns the Kind carried by err, Unknown when err is not an *Error.
func KindOf(err error) Kind {
	var fwdErr *Error
	if errors.As(err, &fwdErr) {
		return fwdErr.Kind
	}
	return Unknown
}

// AsError converts any error into an *Error, keeping existing
// classifications.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var fwdErr *Error
	if errors.As(err, &fwdErr) {
		return fwdErr
	}
	return NewError(Unknown, err)
}
