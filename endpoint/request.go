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
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ansg191/api-kit/auth"
	"github.com/ansg191/api-kit/version"
)

// NewRequest builds a complete *http.Request for the variant selected for
// the candidate version set.
//
// The request is assembled in order: variant selection, URL rendering, JSON
// body encoding (a nil body means no body), variant headers, then
// authentication. When the variant declares accepted auth schemes, the
// supplied authenticator must be one of them or [ErrMissingAuth] is
// returned; use [auth.None] with struct{}{} data for unauthenticated calls.
//
// The returned request carries ctx and is ready to hand to an http.Client;
// this function performs no I/O.
func NewRequest[V version.Version[V], D any](
	ctx context.Context,
	h *History[V],
	candidates []V,
	baseURL string,
	pathArgs, query any,
	body any,
	authn auth.Authenticator[D],
	data D,
) (*http.Request, error) {
	m, err := h.SelectVariant(candidates)
	if err != nil {
		return nil, err
	}

	u, err := m.MakeURL(baseURL, pathArgs, query)
	if err != nil {
		return nil, err
	}

	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	var req *http.Request
	if payload != nil {
		req, err = http.NewRequestWithContext(ctx, m.Method, u, payload)
	} else {
		req, err = http.NewRequestWithContext(ctx, m.Method, u, nil)
	}
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, hdr := range m.Headers {
		req.Header.Set(hdr.Name, hdr.Value)
	}

	if len(m.Auth) > 0 && !m.ContainsAuth(authn) {
		return nil, fmt.Errorf("%w: variant does not accept scheme %q",
			ErrMissingAuth, authn.SchemeID())
	}
	if err := authn.Apply(req, data); err != nil {
		return nil, err
	}

	return req, nil
}

// MatchRequest checks an incoming request against the selected variant.
// It is the server-side guard applied before a generated handler decodes
// the request.
func MatchRequest(m *Metadata, req *http.Request) error {
	if req.Method != m.Method {
		return &MethodMismatchError{Expected: m.Method, Actual: req.Method}
	}
	return nil
}
