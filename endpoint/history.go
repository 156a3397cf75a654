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
	"fmt"
	"slices"

	"github.com/ansg191/api-kit/version"
)

// StableEntry pairs a stable variant with the version that introduced it.
type StableEntry[V version.Version[V]] struct {
	Version V
	Variant *Metadata
}

// History records an endpoint's variants across the protocol version
// timeline: unstable (pre-release) variants most-recent-last, stable entries
// in strictly ascending version order, and optional deprecation/removal
// markers.
//
// A History is immutable after construction and safe for unsynchronized
// concurrent use. Endpoint evolution is expressed by declaring a new entry
// in source, never by mutating a live History.
type History[V version.Version[V]] struct {
	unstable     []*Metadata
	stable       []StableEntry[V]
	deprecatedIn *V
	removedIn    *V
	observer     *Observer
}

// HistoryOption configures a [History] during construction.
type HistoryOption[V version.Version[V]] func(*History[V]) error

// Unstable registers an unstable (pre-release) variant. When no candidate
// version reaches a stable entry, the most recently registered unstable
// variant is used.
func Unstable[V version.Version[V]](m *Metadata) HistoryOption[V] {
	return func(h *History[V]) error {
		if err := checkVariant(m); err != nil {
			return err
		}
		h.unstable = append(h.unstable, m)
		return nil
	}
}

// Stable registers a stable variant introduced in v. Entries must be
// supplied in strictly ascending version order; [NewHistory] rejects
// out-of-order declarations.
func Stable[V version.Version[V]](v V, m *Metadata) HistoryOption[V] {
	return func(h *History[V]) error {
		if err := checkVariant(m); err != nil {
			return err
		}
		h.stable = append(h.stable, StableEntry[V]{Version: v, Variant: m})
		return nil
	}
}

// DeprecatedIn marks the version from which the endpoint is deprecated.
func DeprecatedIn[V version.Version[V]](v V) HistoryOption[V] {
	return func(h *History[V]) error {
		if h.deprecatedIn != nil {
			return fmt.Errorf("%w: deprecated", ErrDuplicateMarker)
		}
		h.deprecatedIn = &v
		return nil
	}
}

// RemovedIn marks the version from which the endpoint is removed. It should
// be no older than the last stable entry's version; declaring otherwise is a
// caller error the resolver does not detect.
func RemovedIn[V version.Version[V]](v V) HistoryOption[V] {
	return func(h *History[V]) error {
		if h.removedIn != nil {
			return fmt.Errorf("%w: removed", ErrDuplicateMarker)
		}
		h.removedIn = &v
		return nil
	}
}

// WithObserver attaches resolution callbacks to the history.
func WithObserver[V version.Version[V]](opts ...ObserverOption) HistoryOption[V] {
	return func(h *History[V]) error {
		obs := &Observer{}
		for _, opt := range opts {
			opt(obs)
		}
		h.observer = obs
		return nil
	}
}

// NewHistory assembles an endpoint's version history from the given options
// and validates it: variants must be non-nil with a method, lifecycle
// markers may appear once, and stable versions must be strictly ascending.
//
// Example:
//
//	h, err := endpoint.NewHistory[version.Ordinal](
//	    endpoint.Stable(version.Ordinal(1), variantV1),
//	    endpoint.Stable(version.Ordinal(2), variantV2),
//	    endpoint.DeprecatedIn(version.Ordinal(2)),
//	    endpoint.RemovedIn(version.Ordinal(3)),
//	)
func NewHistory[V version.Version[V]](opts ...HistoryOption[V]) (*History[V], error) {
	h := &History[V]{}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("invalid history: %w", err)
		}
	}

	for i := 1; i < len(h.stable); i++ {
		if h.stable[i-1].Version.Compare(h.stable[i].Version) >= 0 {
			return nil, fmt.Errorf("%w: entry %d (%v) does not follow entry %d (%v)",
				ErrStableOrder, i, h.stable[i].Version, i-1, h.stable[i-1].Version)
		}
	}

	return h, nil
}

// MustHistory is like [NewHistory] but panics on error. Intended for
// package-level endpoint declarations, where a bad history is a programming
// error that should fail at init.
func MustHistory[V version.Version[V]](opts ...HistoryOption[V]) *History[V] {
	h, err := NewHistory(opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// UnstableVariants returns the registered unstable variants,
// most-recent-last. The returned slice is a copy.
func (h *History[V]) UnstableVariants() []*Metadata {
	return slices.Clone(h.unstable)
}

// StableEntries returns the stable entries in ascending version order.
// The returned slice is a copy.
func (h *History[V]) StableEntries() []StableEntry[V] {
	return slices.Clone(h.stable)
}

// AddedIn returns the version that introduced the first stable variant.
// ok is false when the history has no stable entries.
func (h *History[V]) AddedIn() (v V, ok bool) {
	if len(h.stable) == 0 {
		return v, false
	}
	return h.stable[0].Version, true
}

// Deprecated returns the deprecation marker, if set.
func (h *History[V]) Deprecated() (v V, ok bool) {
	if h.deprecatedIn == nil {
		return v, false
	}
	return *h.deprecatedIn, true
}

// Removed returns the removal marker, if set.
func (h *History[V]) Removed() (v V, ok bool) {
	if h.removedIn == nil {
		return v, false
	}
	return *h.removedIn, true
}

// checkVariant validates a variant at declaration time. Path templates are
// deliberately not validated here; malformed templates surface when first
// rendered.
func checkVariant(m *Metadata) error {
	if m == nil {
		return ErrNilVariant
	}
	if m.Method == "" {
		return ErrEmptyMethod
	}
	return nil
}
