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

// Package version defines the ordering contract for protocol versions and
// provides the two implementations used by most APIs.
//
// A version is any value with a total order. Endpoint histories are generic
// over the version type, so an API can use whatever versioning scheme it
// already speaks:
//
//   - [Ordinal] for plain integer protocol revisions (1, 2, 3, ...)
//   - [Semver] for semantic versions ("1.4.0", "2.0.0-rc.1", ...)
//
// Custom version types only need a Compare method:
//
//	type Date struct{ Year, Month int }
//
//	func (d Date) Compare(other Date) int { ... }
//
//	history, err := endpoint.NewHistory[Date](...)
//
// # Choosing a version type
//
// Ordinal is the right default for internal protocols where versions are
// negotiated as small integers. Semver fits public APIs that advertise
// semantic version strings; it wraps github.com/Masterminds/semver and
// follows its precedence rules (build metadata ignored, pre-releases sort
// before their release).
package version
