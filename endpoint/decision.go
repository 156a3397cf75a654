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

// DecisionKind classifies an endpoint's availability for a candidate
// version set.
type DecisionKind int

const (
	// KindUnstable means no stable variant is reachable; the unstable
	// fallback applies if one is registered.
	KindUnstable DecisionKind = iota

	// KindStable means at least one candidate version reaches a stable
	// variant.
	KindStable

	// KindRemoved means every candidate version agrees the endpoint has
	// been removed.
	KindRemoved
)

// String returns the kind's name.
func (k DecisionKind) String() string {
	switch k {
	case KindUnstable:
		return "unstable"
	case KindStable:
		return "stable"
	case KindRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Decision is the availability classification for one resolution call.
// It is derived fresh from the history and candidate set on every call and
// never cached.
//
// The deprecation/removal flags are only meaningful when Kind is KindStable.
type Decision struct {
	Kind DecisionKind

	// AnyDeprecated is set when the endpoint is deprecated from the point of
	// view of at least one candidate version. Implied by AllDeprecated.
	AnyDeprecated bool

	// AllDeprecated is set when every candidate version has passed the
	// deprecation version.
	AllDeprecated bool

	// AnyRemoved is set when at least one candidate version has passed the
	// removal version (but not all of them, or Kind would be KindRemoved).
	AnyRemoved bool
}
