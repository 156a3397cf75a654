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

// Package bearer implements the HTTP Bearer token authentication scheme
// (RFC 6750).
package bearer

import (
	"net/http"

	"github.com/ansg191/api-kit/auth"
)

// SchemeID is the identifier bearer authentication registers under.
const SchemeID = "bearer"

// Auth adds an Authorization header carrying the token.
type Auth struct{}

var _ auth.Authenticator[string] = Auth{}

// SchemeID implements [auth.Scheme].
func (Auth) SchemeID() string { return SchemeID }

// Apply implements [auth.Authenticator].
func (Auth) Apply(req *http.Request, token string) error {
	if err := auth.CheckHeaderValue(token); err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}
