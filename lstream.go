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

package lstream

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/lstream/apis"
	"dirpx.dev/lstream/builder"
	"dirpx.dev/lstream/config"
	"dirpx.dev/lstream/internal/logging"
)

// init publishes the default snapshot.
func init() {
	st.Store(fresh(config.DefaultConfig(), builder.New()))
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("lstream: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("lstream: builder returned nil resolver")
)

// SetLogger installs l as the logger used by every lstream package.
// The default logger discards everything.
func SetLogger(l zerolog.Logger) {
	logging.Set(l)
}

// Lookup returns the class registered under name in the global registry.
func Lookup(name string) (apis.Class, bool) {
	return st.Load().reg.Lookup(name)
}

// RegisterType names a Go type for class derivation: after
// RegisterType(reflect.TypeOf(PostRecord{}), "Post"), values of type
// PostRecord (or *PostRecord) are wrapped by "PostStream".
func RegisterType(t reflect.Type, name string) error {
	return st.Load().names.Register(t, name)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds every
// unpinned layer. Registered classes and type names are carried over.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, cfg, old.bld))
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds every unpinned layer.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(rebuild(old, old.cfg, b))
}

// Registry returns the global class registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// TypeRegistry returns the global type name registry.
func TypeRegistry() apis.TypeRegistry {
	return st.Load().names
}

// SetRegistry sets and pins the global class registry. The resolver is
// rebuilt on top of it unless pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.reg = reg
	next.preg = true
	if !next.pres {
		next.res = next.bld.BuildResolver(next.cfg, reg, next.names, old.res)
	}
	st.Store(next.mustValid())
}

// Resolver returns the global class resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver sets and pins the global class resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.res = res
	next.pres = true
	st.Store(next)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged (rebuilding
// it when unpinned); non-nil registries and resolvers are pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	next.preg, next.pres = reg != nil, res != nil

	if next.preg {
		next.reg = reg
	} else {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
		next.names = next.bld.BuildTypeRegistry(next.cfg, old.names)
	}
	if next.pres {
		next.res = res
	} else {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, next.names, old.res)
	}
	st.Store(next.mustValid())
}

// Reset publishes a brand-new default snapshot: default configuration,
// default builder, empty registries, nothing pinned. Every previously
// defined class is forgotten.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(fresh(config.DefaultConfig(), builder.New()))
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops configuration changes from rebuilding the registry.
func PinRegistry() {
	setPins(func(s *state) { s.preg = true })
}

// UnpinRegistry lets configuration changes rebuild the registry again.
func UnpinRegistry() {
	setPins(func(s *state) { s.preg = false })
}

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops configuration changes from rebuilding the resolver.
func PinResolver() {
	setPins(func(s *state) { s.pres = true })
}

// UnpinResolver lets configuration changes rebuild the resolver again.
func UnpinResolver() {
	setPins(func(s *state) { s.pres = false })
}

func setPins(fn func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	fn(next)
	st.Store(next)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// current returns the published snapshot.
func current() *state {
	return st.Load()
}

// state is the global snapshot.
// Immutable once published via st.Store; never mutate fields of a published
// state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global class registry.
	reg apis.Registry
	// names is the global type name registry.
	names apis.TypeRegistry
	// res is the global class resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the reg is pinned.
	preg bool
	// pres indicates whether the res is pinned.
	pres bool
}

// fresh builds a snapshot with empty registries.
func fresh(cfg apis.Config, bld apis.Builder) *state {
	s := &state{cfg: cfg, bld: bld}
	s.reg = bld.BuildRegistry(cfg, nil)
	s.names = bld.BuildTypeRegistry(cfg, nil)
	s.res = bld.BuildResolver(cfg, s.reg, s.names, nil)
	return s.mustValid()
}

// rebuild derives a snapshot from old with cfg and bld, rebuilding every
// unpinned layer.
func rebuild(old *state, cfg apis.Config, bld apis.Builder) *state {
	next := old.clone()
	next.cfg, next.bld = cfg, bld
	if !next.preg {
		next.reg = bld.BuildRegistry(cfg, old.reg)
		next.names = bld.BuildTypeRegistry(cfg, old.names)
	}
	if !next.pres {
		next.res = bld.BuildResolver(cfg, next.reg, next.names, old.res)
	}
	return next.mustValid()
}

func (s *state) clone() *state {
	c := *s
	return &c
}

// mustValid panics when a builder produced a nil layer.
func (s *state) mustValid() *state {
	if s.reg == nil || s.names == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	return s
}
