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

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Semver is a semantic protocol version.
//
// The zero value is not usable; construct with [ParseSemver] or [MustSemver].
// Comparison follows semver precedence: build metadata is ignored and
// pre-release versions sort before their associated release.
type Semver struct {
	v *semver.Version
}

// ParseSemver parses s as a semantic version. Loose forms such as "1.2" are
// accepted and normalized ("1.2.0").
func ParseSemver(s string) (Semver, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return Semver{}, fmt.Errorf("version: parse %q: %w", s, err)
	}
	return Semver{v: v}, nil
}

// MustSemver is like [ParseSemver] but panics on error. Intended for
// package-level version constants:
//
//	var V2 = version.MustSemver("2.0.0")
func MustSemver(s string) Semver {
	v, err := ParseSemver(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare implements [Version]. A zero-value Semver sorts before any parsed
// version and equal to another zero value.
func (s Semver) Compare(other Semver) int {
	switch {
	case s.v == nil && other.v == nil:
		return 0
	case s.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return s.v.Compare(other.v)
}

// String returns the normalized version string, or "" for the zero value.
func (s Semver) String() string {
	if s.v == nil {
		return ""
	}
	return s.v.String()
}
