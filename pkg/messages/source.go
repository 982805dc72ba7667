package messages

import "fmt"

// Lookuper is implemented by message objects that resolve keys themselves.
// Returning false, or an empty string, means the key is unknown and the
// next tier is consulted.
type Lookuper interface {
	MessageForKey(key string) (string, bool)
}

// LookupFunc adapts a plain function to the Lookuper interface.
type LookupFunc func(key string) (string, bool)

// MessageForKey calls f(key).
func (f LookupFunc) MessageForKey(key string) (string, bool) {
	if f == nil {
		return "", false
	}
	return f(key)
}

// Instance is a consumer-supplied message object. Messages returns the
// templates the object defines directly; it may also implement Lookuper
// and DefaultsReceiver.
type Instance interface {
	Messages() Map
}

// DefaultsReceiver is implemented by instances that keep a reference to the
// defaults injected when the instance is resolved.
type DefaultsReceiver interface {
	SetDefaults(defaults Map)
}

// Factory builds a message Instance with the default set injected at
// construction time.
type Factory func(defaults Map) (Instance, error)

// Kind tags the shape of a Source.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFactory
	KindInstance
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindFactory:
		return "factory"
	case KindInstance:
		return "instance"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Source is a consumer message source as returned by an injection source.
// The zero value is invalid; build one with FromFactory, FromInstance or FromMap.
type Source struct {
	factory  Factory
	instance Instance
	entries  Map
	kind     Kind
}

// FromFactory tags f as a factory source.
func FromFactory(f Factory) Source {
	return Source{kind: KindFactory, factory: f}
}

// FromInstance tags inst as an already constructed message object.
func FromInstance(inst Instance) Source {
	return Source{kind: KindInstance, instance: inst}
}

// FromMap tags m as a plain map of templates. A nil map is valid and
// resolves to the defaults.
func FromMap(m Map) Source {
	return Source{kind: KindMap, entries: m}
}

// Kind reports the shape of s.
func (s Source) Kind() Kind {
	return s.kind
}

// Resolve turns s into a Set backed by defaults.
//
//   - factory: the factory is called with a copy of defaults and the
//     resulting instance is wrapped;
//   - instance: defaults are injected into the instance if it implements
//     DefaultsReceiver, then it is wrapped;
//   - map: the map is merged over defaults with WithDefaults.
//
// Any other shape, including a nil factory or instance, yields
// ErrInvalidMessageSource.
func (s Source) Resolve(defaults Map) (*Set, error) {
	switch s.kind {
	case KindFactory:
		if s.factory == nil {
			return nil, fmt.Errorf("%w: nil factory", ErrInvalidMessageSource)
		}
		inst, err := s.factory(defaults.Clone())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFactoryFailed, err)
		}
		if inst == nil {
			return nil, fmt.Errorf("%w: factory returned nil instance", ErrInvalidMessageSource)
		}
		return newInstanceSet(inst, defaults), nil

	case KindInstance:
		if s.instance == nil {
			return nil, fmt.Errorf("%w: nil instance", ErrInvalidMessageSource)
		}
		if r, ok := s.instance.(DefaultsReceiver); ok {
			r.SetDefaults(defaults.Clone())
		}
		return newInstanceSet(s.instance, defaults), nil

	case KindMap:
		return WithDefaults(s.entries, defaults), nil

	default:
		return nil, fmt.Errorf("%w: got %s", ErrInvalidMessageSource, s.kind)
	}
}

func newInstanceSet(inst Instance, defaults Map) *Set {
	set := &Set{
		entries:  inst.Messages().Clone(),
		defaults: defaults.Clone(),
		instance: inst,
	}
	if l, ok := inst.(Lookuper); ok {
		set.lookup = l
	}
	return set
}
