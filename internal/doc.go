// Package internal implements the validation message resolver.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/validmsg" instead, which re-exports the public API.
//
// # Resolution Order
//
// [Resolver.GetMessages] consults, in order:
//
//  1. the injector, for the source registered under messages.RegistryKey;
//  2. the module map, for a path ending in "validations/messages";
//  3. the default set.
//
// The first source that produces a set wins. A registered source of an
// invalid shape fails the call with messages.ErrInvalidMessageSource; it does
// not fall through to the module map.
//
// # Caching
//
// The last resolved set is cached. GetMessages with useCache returns it
// without resolving again; SetInjector and Reset drop it.
package internal
