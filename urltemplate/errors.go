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

package urltemplate

import "errors"

// Static errors for template rendering. Rendering failures wrap one of
// these with fmt.Errorf and %w so callers can classify with errors.Is.
var (
	// ErrUnfilledPlaceholder indicates the template contains a {name}
	// placeholder with no matching path argument.
	ErrUnfilledPlaceholder = errors.New("unfilled template placeholder")

	// ErrUnsupportedArgs indicates the path arguments or query value is not
	// a supported shape (struct, map, or url.Values).
	ErrUnsupportedArgs = errors.New("unsupported argument type")

	// ErrValueNotSupported indicates a path argument value could not be
	// converted to a string.
	ErrValueNotSupported = errors.New("value not supported")

	// ErrInvalidEndpoint indicates the rendered URL is not valid.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)
