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

package version

// Version is the constraint for protocol version types.
//
// Compare must implement a total order:
//   - negative if the receiver sorts before other
//   - zero if they are equal
//   - positive if the receiver sorts after other
//
// Versions are copied and compared by value; implementations should be small
// value types.
type Version[V any] interface {
	Compare(other V) int
}

// AnyAtLeast reports whether any candidate compares >= threshold.
// An empty candidate set yields false.
func AnyAtLeast[V Version[V]](candidates []V, threshold V) bool {
	for _, c := range candidates {
		if c.Compare(threshold) >= 0 {
			return true
		}
	}
	return false
}

// AllAtLeast reports whether every candidate compares >= threshold.
// An empty candidate set yields true (vacuous truth); callers that need a
// different policy for empty sets must check length themselves.
func AllAtLeast[V Version[V]](candidates []V, threshold V) bool {
	for _, c := range candidates {
		if c.Compare(threshold) < 0 {
			return false
		}
	}
	return true
}
