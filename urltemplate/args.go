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
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// TagPath is the struct tag selecting the placeholder name for a field.
const TagPath = "path"

// argValues flattens path arguments into a name -> value table.
//
// Supported shapes:
//   - nil (empty table)
//   - map[string]string
//   - any map with string keys (values converted via cast)
//   - struct or pointer to struct (`path` tags, field name fallback,
//     "-" skips, anonymous embedded structs are flattened)
func argValues(args any) (map[string]string, error) {
	if args == nil {
		return nil, nil
	}

	if m, ok := args.(map[string]string); ok {
		return m, nil
	}

	v := reflect.ValueOf(args)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrUnsupportedArgs, v.Type().Key())
		}
		out := make(map[string]string, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			s, err := cast.ToStringE(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("%w: key %q: %v", ErrValueNotSupported, iter.Key().String(), err)
			}
			out[iter.Key().String()] = s
		}
		return out, nil

	case reflect.Struct:
		out := make(map[string]string, v.NumField())
		if err := structArgValues(v, out); err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedArgs, args)
	}
}

// structArgValues appends the fields of struct value v into out.
func structArgValues(v reflect.Value, out map[string]string) error {
	t := v.Type()
	for i, n := 0, t.NumField(); i < n; i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		fv := v.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct {
			if err := structArgValues(fv, out); err != nil {
				return err
			}
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		// Nil pointer fields are treated as absent.
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		s, err := cast.ToStringE(fv.Interface())
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrValueNotSupported, field.Name, err)
		}
		out[name] = s
	}
	return nil
}

// fieldName resolves the placeholder name for a struct field: the `path`
// tag if present, otherwise the field name.
func fieldName(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup(TagPath)
	if !ok {
		return field.Name
	}
	// Allow "name,options" forms even though no options are defined today.
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	if tag == "" {
		return field.Name
	}
	return tag
}
