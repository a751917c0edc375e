// Package logger builds configured slog.Logger instances for envbadge and
// its demo tooling. It offers format selection (JSON for aggregation, text
// for development), functional options for level/output/static attributes,
// and a handler decorator that injects context-derived attributes such as
// the current environment at log time.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("envbadge-demo"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "badge rendered", logger.Env("staging"))
//
// Noop returns a discard-everything logger for components whose logging is
// gated behind a debug flag.
//
// # Error Handling
//
// New never fails; WithFormat panics on unknown formats to keep
// misconfiguration from surviving startup.
package logger
