// Package validmsg resolves the human readable messages shown for failed
// form validations.
//
// Given a rule key such as "presence" or "tooShort", a message set returns the
// template to display. The set is resolved once from, in priority order, a
// consumer-registered source, a user-authored messages module and the bundled
// defaults, then cached.
//
// # Quick Start
//
// Without any configuration the bundled defaults are used:
//
//	set, err := validmsg.GetMessages(nil, true)
//	if err != nil {
//	    return err
//	}
//	msg := set.MessageFor("tooShort", validmsg.M{
//	    "description": set.DescriptionFor("password"),
//	    "min":         8,
//	})
//	// "Password is too short (minimum is 8 characters)"
//
// # Registered Sources
//
// Register a source with an injector such as [container.Registry]. A source
// is one of three shapes:
//
//	validmsg.FromMap(validmsg.Map{"presence": "{description} is required"})
//	validmsg.FromInstance(&validmsg.Object{Lookup: translator.MessageForKey})
//	validmsg.FromFactory(func(defaults validmsg.Map) (validmsg.Instance, error) {
//	    return newMessages(defaults), nil
//	})
//
// Maps are merged over the defaults. Instances and factory products keep their
// own templates and custom lookup, with the defaults as the last resort.
//
// # Messages Modules
//
// Without a registered source, the resolver looks for a module whose path ends
// in "validations/messages" and merges its templates over the defaults:
//
//	//go:embed app
//	var files embed.FS
//
//	mods, err := modules.Load(files) // app/validations/messages.yaml
//	r := validmsg.New(validmsg.WithModules(mods))
//
// # Caching
//
// The resolved set is cached per resolver. [SetInjector] replaces the injector
// and drops the cache. The package-level functions use a process-wide
// resolver; create your own with [New] to keep state explicit.
//
// # Validation Errors
//
// [Set.TranslateMessage] matches the validator.TranslateFunc signature:
//
//	errs.Translate(set.TranslateMessage)
package validmsg
