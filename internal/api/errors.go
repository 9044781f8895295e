// Copyright (c) 2026 Carlos Gonzalez <carlos.gonzalez.dev@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for configuration and classifiable server conditions.
// These enable callers to detect specific conditions via errors.Is/As while
// keeping messages consistent.
var (
	ErrBaseURLNotSet = errors.New("API base URL is not set")
	ErrTokenNotSet   = errors.New("API token is not set")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
)

// ErrorContext carries the request context used to build a friendly,
// actionable message for an API failure.
type ErrorContext struct {
	Host       string
	Collection string
	Operation  string
	Resource   string
}

// Friendly wraps an HTTP failure with enough context that the user can tell
// what was being asked of which server, and what to check.
func Friendly(status int, body string, ec ErrorContext) error {
	var cause error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		cause = fmt.Errorf("%w: check the api.token entry in craftboard.yaml or CRAFTBOARD_TOKEN", ErrUnauthorized)
	case http.StatusNotFound:
		cause = fmt.Errorf("%w: check the collection IDs in craftboard.yaml", ErrNotFound)
	default:
		if body != "" {
			cause = fmt.Errorf("status %d: %s", status, body)
		} else {
			cause = fmt.Errorf("status %d", status)
		}
	}

	where := ec.Host
	if ec.Collection != "" {
		where += "/" + ec.Collection
	}

	return fmt.Errorf("failed to %s %s on %s: %w", ec.Operation, ec.Resource, where, cause)
}
