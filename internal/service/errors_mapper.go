// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/my-group/internal/store"
)

// mapStoreError wraps a repository error into the service kind it belongs to.
// The store error stays in the chain for logging.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	var kind error
	switch {
	case errors.Is(err, store.ErrLoginAlreadyExists):
		kind = ErrDuplicateUsername
	case errors.Is(err, store.ErrLocationAlreadyExists):
		kind = ErrDuplicateCode
	case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, store.ErrLocationNotFound):
		kind = ErrNotFound
	case errors.Is(err, store.ErrReferenceViolation):
		kind = ErrInvalidReference
	case errors.Is(err, store.ErrHasDependents):
		kind = ErrConflict
	case errors.Is(err, store.ErrInvalidValue):
		kind = ErrValidation
	case errors.Is(err, store.ErrStoreUnavailable):
		kind = ErrUnavailable
	default:
		kind = ErrInternal
	}

	return fmt.Errorf("%w: %w", kind, err)
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
