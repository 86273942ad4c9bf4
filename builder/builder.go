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

package builder

import (
	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/internal/logging"
	"dirpx.dev/lstream/registry"
	"dirpx.dev/lstream/resolver"
	"dirpx.dev/lstream/strategy"
)

// Option configures the default builder.
type Option func(*builder)

// WithAttributeNamer sets the empty-collection naming rule handed to every
// resolver the builder constructs.
func WithAttributeNamer(fn apis.AttributeNamer) Option {
	return func(b *builder) {
		b.attr = fn
	}
}

// New creates and returns a new instance of an apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// builder is the default apis.Builder.
type builder struct {
	attr apis.AttributeNamer
}

// BuildRegistry builds and returns a new class registry. If a pre-existing
// registry is provided, its classes are copied into the new registry.
func (b *builder) BuildRegistry(_ apis.Config, prev apis.Registry) apis.Registry {
	nreg := registry.New()
	if prev != nil {
		for _, c := range prev.Entries() {
			_ = nreg.Register(c)
		}
	}
	return nreg
}

// BuildTypeRegistry builds and returns a new type name registry normalizing
// with cfg. If a pre-existing registry is provided, its entries are copied
// into the new registry; entries that no longer normalize are dropped.
func (b *builder) BuildTypeRegistry(cfg apis.Config, prev apis.TypeRegistry) apis.TypeRegistry {
	nreg := registry.NewTypes(cfg)
	if prev != nil {
		log := logging.Component("builder")
		for _, e := range prev.Entries() {
			if err := nreg.Register(e.Type, e.Name); err != nil {
				log.Warn().Err(err).Str("type", e.Type.String()).
					Msg("Dropping type name on rebuild")
			}
		}
	}
	return nreg
}

// BuildResolver builds and returns a new class resolver over reg, naming
// values through the chain Named -> type registry -> reflection.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, names apis.TypeRegistry, _ apis.Resolver) apis.Resolver {
	return resolver.New(reg,
		resolver.WithStrategies(
			strategy.NewNamedStrategy(),
			strategy.NewTypeNameStrategy(names),
			strategy.NewReflectStrategy(),
		),
		resolver.WithAttributeNamer(b.attr),
	)
}
