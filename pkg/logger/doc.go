// Package logger builds the slog loggers used by validmsg.
//
// Library code defaults to [NewNope], so resolving messages is silent unless
// a logger is passed in:
//
//	resolver := validmsg.New(validmsg.WithLogger(logger.New(os.Stderr, slog.LevelDebug)))
//
// The resolver logs at debug level which source produced the message set and
// at warn level when several messages modules match.
//
// [NewWithSentry] additionally forwards warnings and errors to Sentry when a
// DSN is configured; the msgcheck command uses it so failed checks in CI are
// reported. Call [Flush] before exiting.
package logger
