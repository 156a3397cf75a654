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
	"strings"

	"github.com/ansg191/api-kit/auth"
	"github.com/ansg191/api-kit/urltemplate"
)

// Header is one (name, value) pair attached to every request for a variant.
type Header struct {
	Name  string
	Value string
}

// Metadata is one concrete shape of an endpoint: its HTTP method, accepted
// authentication schemes, path template, and extra headers.
//
// Metadata values are declared as literals at process start, shared by
// pointer, and never mutated afterwards. No validation happens at
// declaration; a malformed path template surfaces as an error when the
// variant is first used to render a URL.
type Metadata struct {
	// Method is the HTTP verb, e.g. http.MethodGet.
	Method string

	// Auth lists the authentication schemes this variant accepts, in
	// preference order. Empty means the variant is unauthenticated.
	Auth []auth.Scheme

	// Path is the URL path template with {name} placeholders, e.g.
	// "/v1/rooms/{room_id}/event/{event_id}".
	Path string

	// Headers are extra headers set on every request for this variant.
	Headers []Header
}

// ContainsAuth reports whether scheme's identifier appears in the variant's
// accepted schemes. The check is an exact string match on the identifier;
// order is irrelevant.
func (m *Metadata) ContainsAuth(scheme auth.Scheme) bool {
	id := scheme.SchemeID()
	for _, a := range m.Auth {
		if a.SchemeID() == id {
			return true
		}
	}
	return false
}

// MakeURL renders the variant's path template into a full request URL.
//
// Exactly one trailing "/" is stripped from baseURL before concatenation, so
// "https://example.org/" and "https://example.org" are equivalent. Path
// arguments and query parameters follow the shapes accepted by
// [urltemplate.Render]; templating and serialization failures are returned
// unchanged.
func (m *Metadata) MakeURL(baseURL string, pathArgs, query any) (string, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	return urltemplate.Render(baseURL, m.Path, pathArgs, query)
}
