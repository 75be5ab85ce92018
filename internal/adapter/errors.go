package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrExpiredToken = errors.New("expired token")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrUpstream     = errors.New("upstream error")
	ErrNoSession    = errors.New("no session")
)

// XRPCError is a failed XRPC call. It unwraps to one of the sentinel errors
// above.
type XRPCError struct {
	NSID    string
	Status  int
	Name    string
	Message string

	kind error
}

func (e *XRPCError) Error() string {
	msg := e.Name
	if e.Message != "" {
		if msg != "" {
			msg += ": "
		}
		msg += e.Message
	}
	if msg == "" {
		return fmt.Sprintf("%s: %v (http %d)", e.NSID, e.kind, e.Status)
	}
	return fmt.Sprintf("%s: %v (http %d): %s", e.NSID, e.kind, e.Status, msg)
}

func (e *XRPCError) Unwrap() error {
	return e.kind
}
