// Package messages holds validation message sets: the bundled defaults, the
// merge of user templates over them, and placeholder formatting.
//
// # Default Set
//
// [Defaults] returns the templates shipped with the package, keyed by rule
// ("presence", "tooShort", "email", ...). Templates use single-brace
// placeholders:
//
//	"{description} is too short (minimum is {min} characters)"
//
// # Sources
//
// A consumer supplies messages as one of three shapes, tagged explicitly:
//
//	messages.FromMap(messages.Map{"presence": "{description} is required"})
//	messages.FromInstance(&messages.Object{Lookup: myLookup})
//	messages.FromFactory(messages.NewObjectFactory(entries, myLookup))
//
// [Source.Resolve] turns any of them into a [Set] backed by the defaults.
//
// # Lookup Order
//
// [Set.Resolve] checks, in order, the templates held by the set, the
// consumer's custom lookup ([Lookuper]) and finally the default set. A custom
// lookup that returns false or an empty string falls through to the default.
//
// # Formatting
//
//	set.MessageFor("tooShort", messages.M{
//	    "description": set.DescriptionFor("password"),
//	    "min":         8,
//	})
//	// "Password is too short (minimum is 8 characters)"
package messages
