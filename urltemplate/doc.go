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

// Package urltemplate renders endpoint path templates into full request URLs.
//
// A template is a URL path containing {name} placeholders:
//
//	/rooms/{room_id}/messages/{event_id}
//
// [Render] substitutes each placeholder from the supplied path arguments,
// appends an encoded query string, and validates the result:
//
//	u, err := urltemplate.Render(
//	    "https://example.org",
//	    "/rooms/{room_id}/messages/{event_id}",
//	    RoomEvent{RoomID: "!a:example.org", EventID: "$ev"},
//	    ListOptions{Limit: 10},
//	)
//
// Path arguments may be a struct (fields selected by `path:"name"` tags,
// falling back to the field name), a map[string]string, or a map[string]any.
// Substituted values are path-escaped. A placeholder with no matching
// argument is an error; arguments the template never mentions are ignored.
//
// Query parameters may be a struct (serialized with
// github.com/google/go-querystring, `url` tags), a map[string]string, or
// url.Values. A nil query adds nothing.
package urltemplate
