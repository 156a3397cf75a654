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

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"
)

// Render builds the full request URL for a path template.
//
// baseURL is concatenated verbatim with the expanded template; callers are
// responsible for separator hygiene (endpoint.Metadata strips the trailing
// slash before delegating here). The rendered URL is validated with
// url.ParseRequestURI before being returned.
func Render(baseURL, template string, pathArgs, queryParams any) (string, error) {
	path, err := expand(template, pathArgs)
	if err != nil {
		return "", err
	}

	full := baseURL + path

	qs, err := encodeQuery(queryParams)
	if err != nil {
		return "", err
	}
	if qs != "" {
		full += "?" + qs
	}

	if _, err := url.ParseRequestURI(full); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	return full, nil
}

// expand substitutes {name} placeholders in template from pathArgs.
// Substituted values are path-escaped. Literal text passes through verbatim.
func expand(template string, pathArgs any) (string, error) {
	if !strings.ContainsRune(template, '{') {
		return template, nil
	}

	args, err := argValues(pathArgs)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(template))

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		b.WriteString(rest[:open])

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidEndpoint, template)
		}

		name := rest[open+1 : open+end]
		value, ok := args[name]
		if !ok {
			return "", fmt.Errorf("%w: {%s}", ErrUnfilledPlaceholder, name)
		}
		b.WriteString(url.PathEscape(value))

		rest = rest[open+end+1:]
	}
}

// encodeQuery serializes query parameters into an encoded query string.
// Returns "" when params is nil or produces no pairs.
func encodeQuery(params any) (string, error) {
	switch q := params.(type) {
	case nil:
		return "", nil
	case url.Values:
		return q.Encode(), nil
	case map[string]string:
		values := make(url.Values, len(q))
		for k, v := range q {
			values.Set(k, v)
		}
		return values.Encode(), nil
	}

	v := reflect.ValueOf(params)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: query %T", ErrUnsupportedArgs, params)
	}

	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}
	return values.Encode(), nil
}
