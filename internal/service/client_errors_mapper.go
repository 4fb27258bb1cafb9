// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-feed-board/internal/adapter"
)

// ErrNotLoggedIn is the client-side rendering of a 401: the session cookie
// is missing, expired, or tampered with, and the user must sign in again.
var ErrNotLoggedIn = errors.New("not logged in")

// mapAdapterError translates the adapter's transport error into a service
// business error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrNotLoggedIn
	case errors.Is(err, adapter.ErrNotFound):
		return ErrTweetNotFound
	}

	return err
}
