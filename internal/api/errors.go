package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrBodyTooLarge is wrapped by the TransportError returned when a response
// body exceeds the client's read limit.
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// ErrorKind classifies fetch failures.
type ErrorKind int

const (
	// KindUnknown is any error not produced by this package.
	KindUnknown ErrorKind = iota
	// KindHTTPStatus is a response with a non-2xx status.
	KindHTTPStatus
	// KindTransport is a failure to reach the backend or read its response.
	KindTransport
	// KindParse is a response body that is not valid JSON.
	KindParse
	// KindCanceled is a fetch abandoned because its context ended.
	KindCanceled
)

// String returns the kind's log label.
func (k ErrorKind) String() string {
	switch k {
	case KindHTTPStatus:
		return "http_status"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// HTTPStatusError is returned when the backend answers with a non-2xx status.
type HTTPStatusError struct {
	StatusCode int
	URL        string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// TransportError wraps network failures: DNS, refused connections, TLS,
// timeouts and truncated bodies.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError wraps a body that could not be decoded as JSON.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind reports which class of failure err is.
func Kind(err error) ErrorKind {
	var statusErr *HTTPStatusError
	var parseErr *ParseError
	var transportErr *TransportError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.As(err, &parseErr):
		return KindParse
	case IsCanceled(err):
		return KindCanceled
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindUnknown
	}
}

// IsCanceled reports whether err was caused by context cancellation.
// Deadline expiry is a transport failure, not a cancellation.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
