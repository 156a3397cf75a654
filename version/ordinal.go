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
	"cmp"
	"strconv"
)

// Ordinal is an integer protocol version.
//
// Use it when peers negotiate plain revision numbers:
//
//	const (
//	    V1 = version.Ordinal(1)
//	    V2 = version.Ordinal(2)
//	)
type Ordinal uint64

// Compare implements [Version].
func (o Ordinal) Compare(other Ordinal) int {
	return cmp.Compare(o, other)
}

// String returns the decimal representation.
func (o Ordinal) String() string {
	return strconv.FormatUint(uint64(o), 10)
}
