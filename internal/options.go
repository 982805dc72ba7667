package internal

import (
	"log/slog"

	"github.com/dmitrymomot/validmsg/pkg/messages"
	"github.com/dmitrymomot/validmsg/pkg/modules"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithInjector sets the injection source consulted first.
func WithInjector(inj Injector) Option {
	return func(r *Resolver) {
		r.injector = inj
	}
}

// WithModules sets the module map scanned for a messages module by
// Resolver.Messages.
//
// Example:
//
//	mods, err := modules.Load(files)
//	if err != nil {
//	    return err
//	}
//	r := internal.NewResolver(internal.WithModules(mods))
func WithModules(mods modules.Map) Option {
	return func(r *Resolver) {
		r.modules = mods
	}
}

// WithDefaults replaces the bundled default set. The map is copied.
// A nil map is ignored.
func WithDefaults(defaults messages.Map) Option {
	return func(r *Resolver) {
		if defaults != nil {
			r.defaults = defaults.Clone()
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
