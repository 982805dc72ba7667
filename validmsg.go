package validmsg

import (
	"github.com/dmitrymomot/validmsg/internal"
	"github.com/dmitrymomot/validmsg/pkg/messages"
	"github.com/dmitrymomot/validmsg/pkg/modules"
)

// Type aliases - public API
type (
	// Resolver picks the message source and caches the resolved set.
	Resolver = internal.Resolver

	// Option configures a Resolver.
	Option = internal.Option

	// Injector provides consumer-registered message sources by key.
	Injector = internal.Injector

	// Set is a resolved message set.
	Set = messages.Set

	// Map maps rule keys to message templates.
	Map = messages.Map

	// M is a placeholder context for formatting.
	M = messages.M

	// Source is a tagged consumer message source.
	Source = messages.Source

	// Factory builds a message Instance with defaults injected.
	Factory = messages.Factory

	// Instance is a consumer message object.
	Instance = messages.Instance

	// Lookuper is implemented by message objects with a custom lookup.
	Lookuper = messages.Lookuper

	// LookupFunc adapts a function to Lookuper.
	LookupFunc = messages.LookupFunc

	// Object is a ready-made message Instance.
	Object = messages.Object

	// Modules maps module paths to loaded modules.
	Modules = modules.Map

	// Module is a loaded messages module.
	Module = modules.Module
)

// RegistryKey is the key consumers register their message source under.
const RegistryKey = messages.RegistryKey

// ErrInvalidMessageSource is returned when the registered message source has
// an unsupported shape.
var ErrInvalidMessageSource = messages.ErrInvalidMessageSource

// Constructors

// New creates a resolver with the given options.
//
// Example:
//
//	reg := container.New()
//	reg.Register(validmsg.RegistryKey, validmsg.FromMap(validmsg.Map{
//	    "presence": "{description} is required",
//	}))
//
//	r := validmsg.New(validmsg.WithInjector(reg))
//	set, err := r.Messages()
func New(opts ...Option) *Resolver {
	return internal.NewResolver(opts...)
}

// FromFactory tags f as a factory source.
func FromFactory(f Factory) Source {
	return messages.FromFactory(f)
}

// FromInstance tags inst as an instance source.
func FromInstance(inst Instance) Source {
	return messages.FromInstance(inst)
}

// FromMap tags m as a plain map source.
func FromMap(m Map) Source {
	return messages.FromMap(m)
}

// Helpers

// Defaults returns a copy of the bundled default messages.
func Defaults() Map {
	return messages.Defaults()
}

// WithDefaults merges user over defaults without modifying either.
func WithDefaults(user, defaults Map) *Set {
	return messages.WithDefaults(user, defaults)
}

// FormatMessage replaces {name} placeholders in template with values from
// context. Unknown placeholders are kept.
func FormatMessage(template string, context M) string {
	return messages.FormatMessage(template, context)
}

// DescriptionFor turns a key into a human readable label.
func DescriptionFor(key string) string {
	return messages.DescriptionFor(key)
}
