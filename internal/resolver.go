package internal

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/validmsg/pkg/logger"
	"github.com/dmitrymomot/validmsg/pkg/messages"
	"github.com/dmitrymomot/validmsg/pkg/modules"
)

// Names of the source a message set was resolved from, used in logs.
const (
	originContainer = "container"
	originModule    = "module"
	originDefaults  = "defaults"
)

// Injector provides consumer-registered message sources by key.
// The resolver asks for messages.RegistryKey.
type Injector interface {
	Lookup(key string) (messages.Source, bool)
}

// Resolver decides which message source backs the validation messages and
// caches the result.
//
// Sources are tried in order: the injector, then the messages module in the
// module map, then the default set. The resolved set is cached until the
// injector is replaced.
//
// A Resolver is safe for concurrent use. One lock guards both the injector
// and the cache, so a SetInjector call is visible to every later GetMessages.
type Resolver struct {
	injector Injector
	cached   *messages.Set
	logger   *slog.Logger
	modules  modules.Map
	defaults messages.Map
	mu       sync.Mutex
}

// NewResolver creates a resolver with the given options.
//
// Example:
//
//	r := internal.NewResolver(
//	    internal.WithInjector(registry),
//	    internal.WithModules(mods),
//	)
//	set, err := r.Messages()
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		defaults: messages.Defaults(),
		logger:   logger.NewNope(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Messages returns the message set for the resolver's configured modules,
// using the cache when it is populated.
func (r *Resolver) Messages() (*messages.Set, error) {
	return r.GetMessages(r.modules, true)
}

// GetMessages returns the resolved message set.
//
// With useCache set and a cached set present, the cached set is returned as
// is. Otherwise the sources are consulted again, with mods scanned for the
// messages module, and the result replaces the cache whatever useCache was.
// A failed resolution leaves the cache untouched.
func (r *Resolver) GetMessages(mods modules.Map, useCache bool) (*messages.Set, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if useCache && r.cached != nil {
		return r.cached, nil
	}

	set, origin, err := r.resolve(mods)
	if err != nil {
		return nil, err
	}

	r.cached = set
	r.logger.Debug("validation messages resolved",
		slog.String("source", origin),
		slog.Bool("use_cache", useCache),
	)

	return set, nil
}

// SetInjector replaces the injector and drops the cached set, so the next
// GetMessages call resolves again. A nil injector disables the container
// lookup.
func (r *Resolver) SetInjector(inj Injector) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.injector = inj
	r.cached = nil
}

// Reset drops the cached set without changing the injector.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}

// Defaults returns a copy of the default set the resolver merges against.
func (r *Resolver) Defaults() messages.Map {
	return r.defaults.Clone()
}

func (r *Resolver) resolve(mods modules.Map) (*messages.Set, string, error) {
	if r.injector != nil {
		set, err := r.loadFromInjector()
		if err != nil {
			return nil, "", err
		}
		if set != nil {
			return set, originContainer, nil
		}
	}

	if set := r.loadFromModules(mods); set != nil {
		return set, originModule, nil
	}

	return messages.WithDefaults(nil, r.defaults), originDefaults, nil
}

func (r *Resolver) loadFromInjector() (*messages.Set, error) {
	src, ok := r.injector.Lookup(messages.RegistryKey)
	if !ok {
		return nil, nil
	}

	set, err := src.Resolve(r.defaults)
	if err != nil {
		r.logger.Error("invalid validation messages source",
			slog.String("kind", src.Kind().String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("resolve %q from injector: %w", messages.RegistryKey, err)
	}

	return set, nil
}

func (r *Resolver) loadFromModules(mods modules.Map) *messages.Set {
	paths := mods.Matches()
	if len(paths) == 0 {
		return nil
	}

	if len(paths) > 1 {
		r.logger.Warn("several validation messages modules found, using the first",
			slog.String("module", paths[0]),
			slog.Any("ignored", paths[1:]),
		)
	}

	return messages.WithDefaults(mods[paths[0]].Default, r.defaults)
}
