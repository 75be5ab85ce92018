// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests before they reach the Bluesky service.
//
// Validator is a generic interface; [RequestValidator] implements it for the
// feed, post and like requests of the service layer, and for single
// identifier strings scoped by a field name (e.g. [FieldDID]).
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
