package modules

import (
	"regexp"
	"slices"

	"github.com/dmitrymomot/validmsg/pkg/messages"
)

// messagesPath identifies a user-authored messages module by its path suffix.
var messagesPath = regexp.MustCompile(`(?i)validations/messages$`)

// Module is a loaded messages module. Default is its default export and may
// be nil.
type Module struct {
	Default messages.Map
}

// Map maps module paths to loaded modules.
type Map map[string]Module

// Matches returns the paths ending in "validations/messages", compared
// case-insensitively, in sorted order.
func (m Map) Matches() []string {
	var paths []string
	for path := range m {
		if IsMessagesPath(path) {
			paths = append(paths, path)
		}
	}
	slices.Sort(paths)
	return paths
}

// Find returns the first messages module in path order.
func (m Map) Find() (string, Module, bool) {
	paths := m.Matches()
	if len(paths) == 0 {
		return "", Module{}, false
	}
	return paths[0], m[paths[0]], true
}

// IsMessagesPath reports whether path names a messages module.
func IsMessagesPath(path string) bool {
	return messagesPath.MatchString(path)
}
