package validmsg

import "sync"

var (
	defaultResolverMu sync.RWMutex
	defaultResolver   = New()
)

// Default returns the process-wide resolver used by the package-level
// functions.
func Default() *Resolver {
	defaultResolverMu.RLock()
	defer defaultResolverMu.RUnlock()
	return defaultResolver
}

// SetDefault replaces the process-wide resolver. A nil resolver restores a
// fresh one with no injector and no modules.
func SetDefault(r *Resolver) {
	if r == nil {
		r = New()
	}

	defaultResolverMu.Lock()
	defer defaultResolverMu.Unlock()
	defaultResolver = r
}

// GetMessages resolves messages with the process-wide resolver.
// See Resolver.GetMessages.
func GetMessages(mods Modules, useCache bool) (*Set, error) {
	return Default().GetMessages(mods, useCache)
}

// SetInjector replaces the injector of the process-wide resolver and drops
// its cached set.
func SetInjector(inj Injector) {
	Default().SetInjector(inj)
}
