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

// Observer holds optional callbacks for resolution events. It is the
// library's observability surface: callers plug logging or metrics into the
// hooks instead of the core depending on either.
//
// Callbacks are invoked synchronously during SelectVariant and must not
// block. They never affect the resolution result.
//
// Example:
//
//	endpoint.WithObserver[version.Ordinal](
//	    endpoint.WithOnDeprecated(func(d endpoint.Decision) {
//	        log.Warn("deprecated endpoint used", "all", d.AllDeprecated)
//	    }),
//	)
type Observer struct {
	// OnResolved is called for every resolution with the derived decision.
	OnResolved func(Decision)

	// OnDeprecated is called when a stable variant is selected and the
	// decision carries a deprecation flag.
	OnDeprecated func(Decision)

	// OnRemoved is called when resolution fails because the endpoint is
	// removed for the candidate set.
	OnRemoved func()
}

// ObserverOption configures an [Observer].
type ObserverOption func(*Observer)

// WithOnResolved sets the callback invoked on every resolution.
func WithOnResolved(fn func(Decision)) ObserverOption {
	return func(o *Observer) { o.OnResolved = fn }
}

// WithOnDeprecated sets the callback invoked when a deprecated variant is
// selected.
func WithOnDeprecated(fn func(Decision)) ObserverOption {
	return func(o *Observer) { o.OnDeprecated = fn }
}

// WithOnRemoved sets the callback invoked when resolution hits a removed
// endpoint.
func WithOnRemoved(fn func()) ObserverOption {
	return func(o *Observer) { o.OnRemoved = fn }
}

// notify helpers are nil-safe so resolution code never branches on whether
// an observer is configured.

func (o *Observer) resolved(d Decision) {
	if o == nil || o.OnResolved == nil {
		return
	}
	o.OnResolved(d)
}

func (o *Observer) deprecated(d Decision) {
	if o == nil || o.OnDeprecated == nil {
		return
	}
	o.OnDeprecated(d)
}

func (o *Observer) removed() {
	if o == nil || o.OnRemoved == nil {
		return
	}
	o.OnRemoved()
}
