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

// Package endpoint declares versioned HTTP API endpoints and resolves which
// concrete variant of an endpoint applies for a negotiated set of protocol
// versions.
//
// # Declaring an endpoint
//
// An endpoint is described by a [History]: the timeline of its concrete
// shapes ([Metadata] values) across protocol versions, plus optional
// deprecation and removal markers. Histories are built once, at process
// start, with functional options:
//
//	var getEvent = endpoint.MustHistory[version.Ordinal](
//	    endpoint.Unstable[version.Ordinal](&endpoint.Metadata{
//	        Method: http.MethodGet,
//	        Path:   "/unstable/rooms/{room_id}/event/{event_id}",
//	    }),
//	    endpoint.Stable(version.Ordinal(1), &endpoint.Metadata{
//	        Method: http.MethodGet,
//	        Auth:   []auth.Scheme{bearer.Auth{}},
//	        Path:   "/v1/rooms/{room_id}/event/{event_id}",
//	    }),
//	    endpoint.DeprecatedIn(version.Ordinal(3)),
//	    endpoint.RemovedIn(version.Ordinal(4)),
//	)
//
// Stable entries must be supplied in strictly ascending version order;
// [NewHistory] rejects anything else. A built History is immutable and safe
// for unsynchronized concurrent use.
//
// # Resolving a variant
//
// Given the versions the negotiating peers support, the resolution engine
// classifies the endpoint's availability and picks a variant:
//
//	variant, err := getEvent.SelectVariant(peerVersions)
//
// The classification rules (see [History.VersioningDecision]) are
// deliberately asymmetric: a single peer new enough to know the stable shape
// is enough to use it, and a single peer that has passed the deprecation
// version is enough to flag deprecation, but every peer must agree the
// endpoint is removed before it is treated as gone. One older peer keeps a
// removed endpoint reachable from that peer's point of view.
//
// # Building requests
//
// [History.MakeEndpointURL] composes variant selection with URL rendering,
// and [NewRequest] produces a complete *http.Request with body, headers,
// and authentication applied. Sending the request is the caller's job; this
// package performs no I/O.
package endpoint
