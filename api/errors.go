package api

import (
	"errors"
	"fmt"
)

// TransportError is a failed round trip: the request could not be sent or
// the upstream answered with a non-2xx status. Status is 0 in the former case.
type TransportError struct {
	URL    string
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		if e.Body != "" {
			return fmt.Sprintf("GET %s: unexpected status %d: %s", e.URL, e.Status, e.Body)
		}
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the body did not have the expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsDecode reports whether err is or wraps a *DecodeError.
func IsDecode(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
