package errors

import (
	stderrors "errors"
	"fmt"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

// TransportError means the backend could not be reached at all.
type TransportError struct {
	Method string
	URL    string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func NewTransportError(method, url string, cause error) *TransportError {
	return &TransportError{Method: method, URL: url, Cause: cause}
}

func IsTransportError(err error) (*TransportError, bool) {
	var te *TransportError
	if stderrors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// StatusError is a non-2xx answer from a backend.
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error: %d (%s %s)", e.Status, e.Method, e.URL)
}

func NewStatusError(method, url string, status int) *StatusError {
	return &StatusError{Method: method, URL: url, Status: status}
}

func IsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// DecodeError keeps the raw body so callers can fall back to the text.
type DecodeError struct {
	URL   string
	Raw   string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func NewDecodeError(url, raw string, cause error) *DecodeError {
	return &DecodeError{URL: url, Raw: raw, Cause: cause}
}

func IsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsUpstreamError reports whether err came from talking to a backend.
func IsUpstreamError(err error) bool {
	if _, ok := IsTransportError(err); ok {
		return true
	}
	if _, ok := IsStatusError(err); ok {
		return true
	}
	_, ok := IsDecodeError(err)
	return ok
}

// IsMissing reports a NotFoundError or a 404 from a backend.
func IsMissing(err error) bool {
	if _, ok := IsNotFoundError(err); ok {
		return true
	}
	se, ok := IsStatusError(err)
	return ok && se.Status == 404
}
