package validmsg

import (
	"log/slog"

	"github.com/dmitrymomot/validmsg/internal"
)

// WithInjector sets the injection source consulted first.
func WithInjector(inj Injector) Option {
	return internal.WithInjector(inj)
}

// WithModules sets the module map scanned for a "validations/messages" module.
//
// Example:
//
//	//go:embed app
//	var files embed.FS
//
//	mods, err := modules.Load(files)
//	if err != nil {
//	    return err
//	}
//	r := validmsg.New(validmsg.WithModules(mods))
func WithModules(mods Modules) Option {
	return internal.WithModules(mods)
}

// WithDefaultMessages replaces the bundled default set.
func WithDefaultMessages(defaults Map) Option {
	return internal.WithDefaults(defaults)
}

// WithLogger sets the resolver's logger. Resolution is silent by default.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}
