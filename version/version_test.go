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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdinalCompare(t *testing.T) {
	t.Parallel()

	assert.Negative(t, Ordinal(1).Compare(Ordinal(2)))
	assert.Zero(t, Ordinal(2).Compare(Ordinal(2)))
	assert.Positive(t, Ordinal(3).Compare(Ordinal(2)))
	assert.Equal(t, "7", Ordinal(7).String())
}

func TestSemver(t *testing.T) {
	t.Parallel()

	t.Run("parse and compare", func(t *testing.T) {
		t.Parallel()
		v1, err := ParseSemver("1.4.0")
		require.NoError(t, err)
		v2, err := ParseSemver("2.0.0")
		require.NoError(t, err)

		assert.Negative(t, v1.Compare(v2))
		assert.Positive(t, v2.Compare(v1))
		assert.Zero(t, v1.Compare(MustSemver("1.4.0")))
	})

	t.Run("loose form is normalized", func(t *testing.T) {
		t.Parallel()
		v, err := ParseSemver("1.2")
		require.NoError(t, err)
		assert.Equal(t, "1.2.0", v.String())
	})

	t.Run("prerelease sorts before release", func(t *testing.T) {
		t.Parallel()
		rc := MustSemver("2.0.0-rc.1")
		assert.Negative(t, rc.Compare(MustSemver("2.0.0")))
	})

	t.Run("invalid input fails", func(t *testing.T) {
		t.Parallel()
		_, err := ParseSemver("not-a-version")
		assert.Error(t, err)
	})

	t.Run("must panics on invalid input", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { MustSemver("nope") })
	})

	t.Run("zero value sorts first", func(t *testing.T) {
		t.Parallel()
		var zero Semver
		assert.Negative(t, zero.Compare(MustSemver("0.0.1")))
		assert.Zero(t, zero.Compare(Semver{}))
		assert.Empty(t, zero.String())
	})
}

func TestAnyAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, AnyAtLeast([]Ordinal{1, 5}, 3))
	assert.False(t, AnyAtLeast([]Ordinal{1, 2}, 3))
	assert.True(t, AnyAtLeast([]Ordinal{3}, 3))
	assert.False(t, AnyAtLeast(nil, Ordinal(1)), "empty set has no qualifying element")
}

func TestAllAtLeast(t *testing.T) {
	t.Parallel()

	assert.True(t, AllAtLeast([]Ordinal{3, 4}, 3))
	assert.False(t, AllAtLeast([]Ordinal{2, 4}, 3))
	assert.True(t, AllAtLeast(nil, Ordinal(1)), "vacuously true for the empty set")
}
