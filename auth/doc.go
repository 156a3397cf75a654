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

// Package auth defines the authentication capability consumed by endpoint
// metadata and request construction.
//
// A [Scheme] identifies an authentication mechanism by a unique string.
// Endpoint variants declare which schemes they accept; the declaration only
// needs the identifier, never credentials:
//
//	var getUser = &endpoint.Metadata{
//	    Method: http.MethodGet,
//	    Auth:   []auth.Scheme{bearer.Auth{}},
//	    Path:   "/users/{id}",
//	}
//
// An [Authenticator] is a Scheme that can also mutate a request with
// credentials. The credential payload is typed per scheme: a token string
// for bearer, a username/password pair for basic. Callers that need no
// authentication use [None].
//
// Concrete schemes live in the subpackages auth/basic and auth/bearer.
package auth
