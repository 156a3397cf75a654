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

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNone(t *testing.T) {
	t.Parallel()

	assert.Empty(t, None{}.SchemeID())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, None{}.Apply(req, struct{}{}))
	assert.Empty(t, req.Header)
}

func TestCheckHeaderValue(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckHeaderValue("token-123"))
	assert.NoError(t, CheckHeaderValue(""))

	for _, bad := range []string{"a\rb", "a\nb", "a\x00b", "evil\r\nX-Injected: 1"} {
		assert.ErrorIs(t, CheckHeaderValue(bad), ErrInvalidHeaderValue)
	}
}
