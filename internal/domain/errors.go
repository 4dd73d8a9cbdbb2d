package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse marks a provider response that decoded but lacks the
// expected shape (e.g. no route feature).
var ErrMalformedResponse = errors.New("malformed provider response")

// ConfigError reports missing or invalid configuration. It is fatal.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Key, e.Reason)
}

// NotFoundError is returned when a place name resolves to no coordinates.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no location found for %q", e.Query)
}

// TransportError covers network failures, timeouts, non-success HTTP status
// codes and undecodable responses.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": transport failure"
	}
}

func (e *TransportError) Unwrap() error { return e.Err }
