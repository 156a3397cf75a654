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
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrInvalidHeaderValue is returned when credentials would produce an HTTP
// header value containing forbidden characters.
var ErrInvalidHeaderValue = errors.New("auth: invalid header value")

// Scheme identifies an authentication mechanism.
type Scheme interface {
	// SchemeID returns the unique identifier of the scheme, e.g. "bearer".
	// The empty string is reserved for [None].
	SchemeID() string
}

// Authenticator is a Scheme that can attach credentials to a request.
// D is the credential payload the scheme requires.
//
// Apply is called after the request is built, headers are set, and the body
// is attached. It must only mutate request headers.
type Authenticator[D any] interface {
	Scheme

	Apply(req *http.Request, data D) error
}

// None is the no-op authenticator. Its scheme identifier is the empty
// string and Apply leaves the request untouched.
type None struct{}

// SchemeID implements [Scheme].
func (None) SchemeID() string { return "" }

// Apply implements [Authenticator].
func (None) Apply(*http.Request, struct{}) error { return nil }

// CheckHeaderValue validates that v is usable as an HTTP header value.
// Header injection via CR, LF, or NUL in credential material is rejected
// here rather than surfacing as a malformed request on the wire.
func CheckHeaderValue(v string) error {
	if strings.ContainsAny(v, "\r\n\x00") {
		return fmt.Errorf("%w: control character in %q", ErrInvalidHeaderValue, v)
	}
	return nil
}
