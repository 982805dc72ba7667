// Package modules finds a user-authored messages module among loaded
// modules.
//
// A module map is keyed by module path. The messages module is the one whose
// path ends in "validations/messages", compared case-insensitively:
//
//	mods := modules.Map{
//	    "my-app/validations/messages": {Default: messages.Map{"presence": "required"}},
//	}
//	path, mod, ok := mods.Find()
//
// When several paths match, the first one in sorted order wins.
//
// [Load] builds a module map from JSON, YAML or TOML files in an fs.FS, which
// pairs well with embed.FS:
//
//	//go:embed validations
//	var files embed.FS
//
//	mods, err := modules.Load(files)
package modules
