package messages

import "errors"

var (
	// ErrInvalidMessageSource is returned when a registered message source is
	// neither a factory, an instance nor a plain map.
	ErrInvalidMessageSource = errors.New("messages: source must be a factory, an instance or a map")

	// ErrFactoryFailed wraps errors returned by a consumer Factory.
	ErrFactoryFailed = errors.New("messages: factory failed")
)
