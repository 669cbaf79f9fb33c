// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMalformedBody is returned when a request body is not valid JSON or
	// does not fit the expected shape.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrPanicRecovered wraps the value of a panic caught by the recovery
	// middleware.
	ErrPanicRecovered = errors.New("panic recovered")
)
