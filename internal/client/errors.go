package client

import "errors"

// ErrUninitialized is returned by feed operations invoked before a
// successful Initialize.
var ErrUninitialized = errors.New("backend not initialized: call Initialize first")
