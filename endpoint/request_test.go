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
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansg191/api-kit/auth"
	"github.com/ansg191/api-kit/auth/basic"
	"github.com/ansg191/api-kit/auth/bearer"
	"github.com/ansg191/api-kit/version"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	h := MustHistory[version.Ordinal](
		Stable(version.Ordinal(1), &Metadata{
			Method:  http.MethodPost,
			Auth:    []auth.Scheme{bearer.Auth{}},
			Path:    "/v1/rooms/{room_id}/send",
			Headers: []Header{{Name: "X-Requested-With", Value: "api-kit"}},
		}),
	)

	t.Run("complete request", func(t *testing.T) {
		t.Parallel()
		req, err := NewRequest(context.Background(), h, ord(1),
			"https://example.org/",
			map[string]string{"room_id": "general"},
			nil,
			map[string]string{"msg": "hi"},
			bearer.Auth{}, "tok123",
		)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "https://example.org/v1/rooms/general/send", req.URL.String())
		assert.Equal(t, "Bearer tok123", req.Header.Get("Authorization"))
		assert.Equal(t, "api-kit", req.Header.Get("X-Requested-With"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"msg":"hi"}`, string(body))
	})

	t.Run("nil body means no body", func(t *testing.T) {
		t.Parallel()
		req, err := NewRequest(context.Background(), h, ord(1),
			"https://example.org",
			map[string]string{"room_id": "general"},
			nil, nil,
			bearer.Auth{}, "tok123",
		)
		require.NoError(t, err)
		assert.Nil(t, req.Body)
		assert.Empty(t, req.Header.Get("Content-Type"))
	})

	t.Run("unaccepted scheme is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewRequest(context.Background(), h, ord(1),
			"https://example.org",
			map[string]string{"room_id": "general"},
			nil, nil,
			basic.Auth{}, basic.Credentials{Username: "u", Password: "p"},
		)
		require.ErrorIs(t, err, ErrMissingAuth)
	})

	t.Run("unauthenticated variant accepts None", func(t *testing.T) {
		t.Parallel()
		open := MustHistory[version.Ordinal](
			Stable(version.Ordinal(1), &Metadata{
				Method: http.MethodGet,
				Path:   "/v1/ping",
			}),
		)
		req, err := NewRequest(context.Background(), open, ord(1),
			"https://example.org", nil, nil, nil,
			auth.None{}, struct{}{},
		)
		require.NoError(t, err)
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("resolution failure propagates", func(t *testing.T) {
		t.Parallel()
		_, err := NewRequest(context.Background(), h, ord(0),
			"https://example.org", nil, nil, nil,
			bearer.Auth{}, "tok",
		)
		require.ErrorIs(t, err, ErrNoUnstablePath)
	})
}

func TestMatchRequest(t *testing.T) {
	t.Parallel()

	m := &Metadata{Method: http.MethodPut, Path: "/v1/things/{id}"}

	req := httptest.NewRequest(http.MethodPut, "/v1/things/1", nil)
	assert.NoError(t, MatchRequest(m, req))

	req = httptest.NewRequest(http.MethodGet, "/v1/things/1", nil)
	err := MatchRequest(m, req)
	var mm *MethodMismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, http.MethodPut, mm.Expected)
	assert.Equal(t, http.MethodGet, mm.Actual)
}

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusGone, HTTPStatus(ErrEndpointRemoved))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(ErrMissingAuth))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNoUnstablePath))
	assert.Equal(t, http.StatusMethodNotAllowed,
		HTTPStatus(&MethodMismatchError{Expected: "GET", Actual: "POST"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(io.EOF))
}
