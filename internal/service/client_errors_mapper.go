// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/koji-m/Bluedog/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. The original error stays in the chain so its XRPC name and message
// are still reported.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNoSession):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrExpiredToken):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbidden, err)

	case errors.Is(err, adapter.ErrRateLimited):
		return fmt.Errorf("%w: %w", ErrRateLimited, err)

	case errors.Is(err, adapter.ErrUpstream):
		return fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}

	return err
}
