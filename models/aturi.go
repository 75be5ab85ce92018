package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidATURI is returned when a string is not an at:// record URI.
var ErrInvalidATURI = errors.New("invalid at-uri")

const atURIScheme = "at://"

// ATURI is a parsed at://<authority>/<collection>/<rkey> record reference.
type ATURI struct {
	Authority  string
	Collection string
	RKey       string
}

// ParseATURI splits a record URI into its authority, collection and record
// key. All three segments are required.
func ParseATURI(raw string) (ATURI, error) {
	if !strings.HasPrefix(raw, atURIScheme) {
		return ATURI{}, fmt.Errorf("%w: %q", ErrInvalidATURI, raw)
	}

	parts := strings.Split(strings.TrimPrefix(raw, atURIScheme), "/")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return ATURI{}, fmt.Errorf("%w: %q", ErrInvalidATURI, raw)
	}

	return ATURI{Authority: parts[0], Collection: parts[1], RKey: parts[2]}, nil
}

// String formats the URI back into its at:// form.
func (u ATURI) String() string {
	return atURIScheme + u.Authority + "/" + u.Collection + "/" + u.RKey
}
