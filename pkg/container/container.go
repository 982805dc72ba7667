// Package container provides a small registry that serves as the injection
// source for validation messages. Consumers register a tagged message source
// under a key; the resolver looks it up with [Registry.Lookup].
//
//	reg := container.New()
//	reg.Register(messages.RegistryKey, messages.FromMap(messages.Map{
//	    "presence": "{description} is required",
//	}))
//	resolver := validmsg.New(validmsg.WithInjector(reg))
//
// A Registry is safe for concurrent use. Registering a new source does not
// invalidate sets a resolver already cached; call SetInjector on the
// resolver to force re-resolution.
package container

import (
	"sync"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

// Registry maps keys to message sources.
type Registry struct {
	entries map[string]messages.Source
	mu      sync.RWMutex
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]messages.Source)}
}

// Register stores src under key, replacing any previous entry.
func (r *Registry) Register(key string, src messages.Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = src
}

// Unregister removes the entry for key.
func (r *Registry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Lookup returns the source registered under key. A nil registry has no
// entries.
func (r *Registry) Lookup(key string) (messages.Source, bool) {
	if r == nil {
		return messages.Source{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	src, ok := r.entries[key]
	return src, ok
}
