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

import "github.com/ansg191/api-kit/version"

// VersioningDecision classifies the endpoint's availability for the
// candidate version set. It is a pure function over the history's tables;
// nothing is cached between calls.
//
// Precedence:
//
//  1. Removed: the removal marker is set and every candidate is at or past
//     it. All peers must agree the endpoint is gone; a single older peer
//     keeps it available from that peer's perspective. An empty candidate
//     set satisfies "every" vacuously.
//  2. Stable: at least one candidate reaches the first stable entry. One
//     sufficiently new peer is enough to justify the stable shape. The
//     deprecation flags follow the same asymmetry: any peer past the
//     deprecation marker sets AnyDeprecated, all peers past it set
//     AllDeprecated, and any peer past the removal marker sets AnyRemoved.
//  3. Unstable: everything else.
func (h *History[V]) VersioningDecision(candidates []V) Decision {
	if h.removedIn != nil && version.AllAtLeast(candidates, *h.removedIn) {
		return Decision{Kind: KindRemoved}
	}

	if addedIn, ok := h.AddedIn(); ok && version.AnyAtLeast(candidates, addedIn) {
		d := Decision{Kind: KindStable}
		if h.deprecatedIn != nil {
			d.AllDeprecated = version.AllAtLeast(candidates, *h.deprecatedIn)
			d.AnyDeprecated = d.AllDeprecated || version.AnyAtLeast(candidates, *h.deprecatedIn)
		}
		if h.removedIn != nil {
			d.AnyRemoved = version.AnyAtLeast(candidates, *h.removedIn)
		}
		return d
	}

	return Decision{Kind: KindUnstable}
}

// StableVariantFor returns the newest stable variant some candidate version
// is new enough to understand: entries are scanned most-recent-first and the
// first whose version is <= any candidate wins. ok is false when no entry
// qualifies.
//
// Enlarging the candidate set with newer versions never selects an older
// variant.
func (h *History[V]) StableVariantFor(candidates []V) (m *Metadata, ok bool) {
	for i := len(h.stable) - 1; i >= 0; i-- {
		if version.AnyAtLeast(candidates, h.stable[i].Version) {
			return h.stable[i].Variant, true
		}
	}
	return nil, false
}

// SelectVariant resolves the variant to use for the candidate version set.
//
// Unstable decisions return the most recently registered unstable variant,
// or [ErrNoUnstablePath] when none is registered. Stable decisions return
// the [StableVariantFor] result. Removed decisions return
// [ErrEndpointRemoved].
func (h *History[V]) SelectVariant(candidates []V) (*Metadata, error) {
	d := h.VersioningDecision(candidates)
	h.observer.resolved(d)

	switch d.Kind {
	case KindStable:
		if d.AnyDeprecated {
			h.observer.deprecated(d)
		}
		m, ok := h.StableVariantFor(candidates)
		if !ok {
			// A stable decision guarantees some candidate reaches the first
			// stable entry, so the scan cannot miss. Getting here means the
			// history tables are corrupt.
			panic("endpoint: stable decision but no qualifying stable variant; malformed version history")
		}
		return m, nil

	case KindRemoved:
		h.observer.removed()
		return nil, ErrEndpointRemoved

	default:
		if len(h.unstable) == 0 {
			return nil, ErrNoUnstablePath
		}
		return h.unstable[len(h.unstable)-1], nil
	}
}

// MakeEndpointURL selects the variant for the candidate version set and
// renders its URL. See [Metadata.MakeURL] for the rendering rules.
func (h *History[V]) MakeEndpointURL(candidates []V, baseURL string, pathArgs, query any) (string, error) {
	m, err := h.SelectVariant(candidates)
	if err != nil {
		return "", err
	}
	return m.MakeURL(baseURL, pathArgs, query)
}
