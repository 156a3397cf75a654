// Copyright 2025 The api-kit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package endpoint

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for resolution and request construction. These are wrapped
// with fmt.Errorf and %w when context is added; classify with errors.Is.
var (
	// ErrNoUnstablePath is returned when no candidate version reaches any
	// stable variant and the history registers no unstable fallback. This is
	// a configuration defect in the endpoint declaration, not a transient
	// condition.
	ErrNoUnstablePath = errors.New("endpoint not supported by negotiated versions and no unstable fallback path is defined")

	// ErrEndpointRemoved is returned when every candidate version agrees the
	// endpoint has been removed. The endpoint is permanently unavailable for
	// this version set.
	ErrEndpointRemoved = errors.New("endpoint was removed")

	// ErrMissingAuth is returned when a variant requires authentication and
	// the supplied authenticator's scheme is not among the accepted ones.
	ErrMissingAuth = errors.New("missing authorization")

	// History construction errors.
	ErrNilVariant      = errors.New("variant cannot be nil")
	ErrEmptyMethod     = errors.New("variant method cannot be empty")
	ErrStableOrder     = errors.New("stable entries must be in strictly ascending version order")
	ErrDuplicateMarker = errors.New("lifecycle marker already set")
)

// MethodMismatchError reports an incoming request whose method does not
// match the selected variant.
type MethodMismatchError struct {
	Expected string
	Actual   string
}

// Error implements error.
func (e *MethodMismatchError) Error() string {
	return fmt.Sprintf("method mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// HTTPStatus maps a resolution error to the HTTP status a server should
// answer with when the failure surfaces on the serving side.
//
//	ErrEndpointRemoved    → 410 Gone
//	ErrMissingAuth        → 401 Unauthorized
//	ErrNoUnstablePath     → 404 Not Found
//	*MethodMismatchError  → 405 Method Not Allowed
//
// Anything else maps to 500 Internal Server Error.
func HTTPStatus(err error) int {
	var mm *MethodMismatchError
	switch {
	case errors.Is(err, ErrEndpointRemoved):
		return http.StatusGone
	case errors.Is(err, ErrMissingAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNoUnstablePath):
		return http.StatusNotFound
	case errors.As(err, &mm):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
