/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package resolver

import (
	"fmt"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/internal/logging"
	"dirpx.dev/lstream/strategy"
	"dirpx.dev/lstream/utils/inflect"
	uref "dirpx.dev/lstream/utils/reflect"
)

// Option configures a resolver built by New.
type Option func(*resolver)

// WithStrategies replaces the naming chain used to derive class names from
// values. The default chain is Named -> Reflect.
func WithStrategies(strategies ...apis.Strategy) Option {
	return func(r *resolver) {
		r.chain = NewChain(strategies...)
	}
}

// WithAttributeNamer replaces the rule used to derive a class name for an
// empty collection from its attribute name. Nil keeps the default.
func WithAttributeNamer(fn apis.AttributeNamer) Option {
	return func(r *resolver) {
		if fn != nil {
			r.attr = fn
		}
	}
}

// New constructs an apis.Resolver that looks classes up in reg.
func New(reg apis.Registry, opts ...Option) apis.Resolver {
	r := &resolver{
		reg:   reg,
		chain: NewChain(strategy.NewNamedStrategy(), strategy.NewReflectStrategy()),
		attr:  strategy.AttributeName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// resolver derives class names and looks them up in a class registry.
type resolver struct {
	reg   apis.Registry
	chain Chain
	attr  apis.AttributeNamer
}

// Ensure resolver implements apis.Resolver.
var _ apis.Resolver = (*resolver)(nil)

// ResolveValue resolves the class wrapping a single value.
func (r *resolver) ResolveValue(explicit, attribute string, raw any, cfg apis.Config) (apis.Class, bool, error) {
	log := logging.L()

	if explicit != "" {
		c, ok := r.lookup(explicit)
		if !ok {
			return nil, false, apis.NotDefined(explicit)
		}
		return c, true, nil
	}

	base := r.chain.Resolve(raw, cfg)
	if base == "" {
		log.Trace().Str("component", "resolver").Str("attribute", attribute).
			Msg("Value has no type name, passing through")
		return nil, false, nil
	}

	name := base + cfg.Suffix
	c, ok := r.lookup(name)
	if !ok {
		log.Debug().Str("component", "resolver").Str("attribute", attribute).Str("class", name).
			Msg("Class not defined, passing value through")
		return nil, false, nil
	}
	if _, isCollection := c.(apis.CollectionClass); isCollection {
		log.Debug().Str("component", "resolver").Str("attribute", attribute).Str("class", name).
			Msg("Class wraps collections, passing value through")
		return nil, false, nil
	}

	log.Trace().Str("component", "resolver").Str("attribute", attribute).Str("class", name).
		Msg("Resolved value class")
	return c, true, nil
}

// ResolveCollection resolves the class wrapping the elements of a collection.
func (r *resolver) ResolveCollection(explicit, attribute string, items []any, cfg apis.Config) (apis.Class, error) {
	if explicit != "" {
		return r.explicitCollection(explicit, cfg)
	}

	var name string
	if len(items) > 0 {
		base := r.chain.Resolve(items[0], cfg)
		if base == "" {
			return nil, apis.NotDefined(unnamed(items[0]) + cfg.Suffix)
		}
		name = base + cfg.Suffix
	} else {
		name = r.attr(attribute) + cfg.Suffix
	}

	c, ok := r.lookup(name)
	if !ok {
		return nil, apis.NotDefined(name)
	}

	logging.L().Trace().Str("component", "resolver").Str("attribute", attribute).Str("class", name).
		Int("items", len(items)).Msg("Resolved collection class")
	return c, nil
}

// explicitCollection looks up an explicit collection class, optionally
// retrying in singular form.
func (r *resolver) explicitCollection(explicit string, cfg apis.Config) (apis.Class, error) {
	if c, ok := r.lookup(explicit); ok {
		return c, nil
	}
	if cfg.SingularizeExplicit {
		if one, changed := inflect.Singular(explicit, cfg.Suffix); changed {
			if c, ok := r.lookup(one); ok {
				logging.L().Debug().Str("component", "resolver").Str("class", explicit).Str("singular", one).
					Msg("Using singular class for collection")
				return c, nil
			}
		}
	}
	return nil, apis.NotDefined(explicit)
}

// unnamed describes a value the naming chain cannot name: nil, an anonymous
// type, or a builtin hidden by the config. The result only labels the
// error and is never looked up.
func unnamed(v any) string {
	if v == nil {
		return "Nil"
	}
	return uref.Exported(fmt.Sprintf("%T", v))
}

func (r *resolver) lookup(name string) (apis.Class, bool) {
	if r.reg == nil {
		return nil, false
	}
	return r.reg.Lookup(name)
}
