package messages

import "maps"

// WithDefaults merges user over defaults and returns the result as a Set.
// Every key of defaults is present, user entries win on conflicts and keys
// only present in user are kept. Neither input is modified; the original
// defaults stay available through Set.Defaults.
func WithDefaults(user, defaults Map) *Set {
	merged := make(Map, len(defaults)+len(user))
	maps.Copy(merged, defaults)
	maps.Copy(merged, user)

	return &Set{
		entries:  merged,
		defaults: defaults.Clone(),
	}
}
