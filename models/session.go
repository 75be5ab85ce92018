// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSession is returned by [ImportSession] when the exported string
// cannot be decoded or lacks the identity or refresh token.
var ErrInvalidSession = errors.New("invalid session")

// SessionEvent identifies why the client's session changed.
type SessionEvent string

const (
	// SessionCreate is emitted after a successful credential login.
	SessionCreate SessionEvent = "create"

	// SessionRefresh is emitted after the access token was refreshed.
	SessionRefresh SessionEvent = "refresh"

	// SessionImport is emitted after a previously exported session was
	// resumed. Imported sessions are already persisted.
	SessionImport SessionEvent = "import"
)

// Session is the authenticated identity held by the API client.
//
// It is exchanged with the session file in its exported form (see
// [Session.Export]); the file content is treated as opaque by everything
// except this type.
type Session struct {
	// DID is the canonical account identifier.
	DID string `json:"did"`

	// Handle is the human-readable account identifier.
	Handle string `json:"handle"`

	// AccessJWT authorises regular XRPC calls. Short lived.
	AccessJWT string `json:"accessJwt"`

	// RefreshJWT is exchanged for a new AccessJWT via refreshSession.
	RefreshJWT string `json:"refreshJwt"`

	// Service is the base URL of the XRPC service that issued the session.
	Service string `json:"service,omitempty"`
}

// Export serialises the session into the opaque token string persisted to
// the session file.
func (s Session) Export() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("export session: %w", err)
	}
	return string(b), nil
}

// ImportSession parses a token produced by [Session.Export].
func ImportSession(exported string) (Session, error) {
	var s Session
	if err := json.Unmarshal([]byte(strings.TrimSpace(exported)), &s); err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if s.DID == "" || s.RefreshJWT == "" {
		return Session{}, ErrInvalidSession
	}
	return s, nil
}
