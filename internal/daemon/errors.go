package daemon

import (
	"fmt"
	"strconv"
)

// CodeConnRefused is reported when the daemon could not be reached at all.
const CodeConnRefused = "E_CONN_REFUSED"

// RequestError is a failed call to a node daemon. StatusCode is zero when no
// HTTP response was received (dial failure, timeout, TLS error).
type RequestError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.HasResponse() {
		return fmt.Sprintf("daemon %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("daemon %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the daemon answered with an HTTP response.
func (e *RequestError) HasResponse() bool {
	return e.StatusCode != 0
}

// Code is the short identifier shown to users: E_CONN_REFUSED without a
// response, otherwise the HTTP status code.
func (e *RequestError) Code() string {
	if !e.HasResponse() {
		return CodeConnRefused
	}
	return strconv.Itoa(e.StatusCode)
}
