package messages

// Object is a ready-made Instance for consumers that do not need their own
// type. Entries are returned as the object's own templates and Lookup, when
// set, acts as the custom lookup.
//
// An Object receives the defaults when it is resolved, so share one only
// through a single resolver.
type Object struct {
	Entries  Map
	Lookup   LookupFunc
	defaults Map
}

// Messages implements Instance.
func (o *Object) Messages() Map {
	return o.Entries
}

// MessageForKey implements Lookuper.
func (o *Object) MessageForKey(key string) (string, bool) {
	return o.Lookup.MessageForKey(key)
}

// SetDefaults implements DefaultsReceiver.
func (o *Object) SetDefaults(defaults Map) {
	o.defaults = defaults
}

// Defaults returns the defaults injected into o, or nil before resolution.
func (o *Object) Defaults() Map {
	return o.defaults
}

// NewObjectFactory returns a Factory that builds a fresh Object per
// resolution, with defaults injected at construction.
func NewObjectFactory(entries Map, lookup LookupFunc) Factory {
	return func(defaults Map) (Instance, error) {
		return &Object{
			Entries:  entries.Clone(),
			Lookup:   lookup,
			defaults: defaults,
		}, nil
	}
}
