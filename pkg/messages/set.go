package messages

import (
	"maps"
	"slices"
)

// Set is a resolved message set. Lookups go through three tiers: templates
// the set holds explicitly, then the consumer's custom lookup (if any), then
// the default set.
//
// A Set is read-only after construction and safe for concurrent use, as long
// as the wrapped consumer lookup is.
type Set struct {
	entries  Map
	defaults Map
	lookup   Lookuper
	instance Instance
}

// Resolve returns the template for key and whether one was found.
func (s *Set) Resolve(key string) (string, bool) {
	if v, ok := s.entries[key]; ok {
		return v, true
	}

	if s.lookup != nil {
		if v, ok := s.lookup.MessageForKey(key); ok && v != "" {
			return v, true
		}
	}

	v, ok := s.defaults[key]
	return v, ok
}

// Get returns the template for key, or an empty string.
func (s *Set) Get(key string) string {
	v, _ := s.Resolve(key)
	return v
}

// Has reports whether key resolves to a template.
func (s *Set) Has(key string) bool {
	_, ok := s.Resolve(key)
	return ok
}

// Keys returns the sorted union of explicit and default keys.
// Keys only known to a custom lookup are not listed.
func (s *Set) Keys() []string {
	seen := make(map[string]struct{}, len(s.entries)+len(s.defaults))
	for k := range s.entries {
		seen[k] = struct{}{}
	}
	for k := range s.defaults {
		seen[k] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Entries returns a copy of the templates the set holds explicitly.
func (s *Set) Entries() Map {
	return s.entries.Clone()
}

// Defaults returns a copy of the default set the Set was resolved with.
func (s *Set) Defaults() Map {
	return s.defaults.Clone()
}

// Instance returns the consumer object backing the set, or nil when the set
// was built from a plain map.
func (s *Set) Instance() Instance {
	return s.instance
}

// FormatMessage is FormatMessage exposed on the set.
func (s *Set) FormatMessage(template string, context M) string {
	return FormatMessage(template, context)
}

// DescriptionFor is DescriptionFor exposed on the set.
func (s *Set) DescriptionFor(key string) string {
	return DescriptionFor(key)
}

// MessageFor resolves key and formats it with context. When key resolves to
// nothing the "invalid" template is used instead.
func (s *Set) MessageFor(key string, context M) string {
	template, ok := s.Resolve(key)
	if !ok || template == "" {
		template = s.Get(InvalidKey)
	}
	return FormatMessage(template, context)
}

// TranslateMessage formats the message for key with values.
// Its signature matches validator.TranslateFunc, so a Set can translate
// validation errors directly:
//
//	errs.Translate(set.TranslateMessage)
func (s *Set) TranslateMessage(key string, values map[string]any) string {
	return s.MessageFor(key, values)
}
