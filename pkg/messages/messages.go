package messages

import (
	_ "embed"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// RegistryKey is the key a consumer registers its message source under
// in the injection source.
const RegistryKey = "validation:messages"

// InvalidKey names the template used when a key resolves to nothing.
const InvalidKey = "invalid"

// M is a placeholder context for FormatMessage.
type M map[string]any

// Map maps a rule key to a message template.
type Map map[string]string

// Clone returns a shallow copy of m. A nil map clones to an empty one.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	maps.Copy(out, m)
	return out
}

// Keys returns the keys of m in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

//go:embed defaults.yaml
var defaultsYAML []byte

var defaultMessages = mustLoadDefaults(defaultsYAML)

func mustLoadDefaults(data []byte) Map {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		panic("messages: bundled defaults are invalid: " + err.Error())
	}
	return m
}

// Defaults returns a copy of the bundled default message set.
// Callers may modify the result freely.
func Defaults() Map {
	return defaultMessages.Clone()
}
