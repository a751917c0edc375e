// Package httpserver is a small wrapper around net/http powering the
// envbadge demo server: environment-tagged Config, graceful shutdown on
// context cancellation or interrupt/TERM, and structured logging via slog.
//
// # Usage
//
//	var cfg httpserver.Config
//	if err := env.Parse(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(slog.Default()))
//	if err := srv.Run(ctx, router); err != nil {
//	    slog.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run wraps listen errors with ErrStart, Shutdown wraps shutdown errors
// with ErrShutdown; use errors.Is to distinguish them.
package httpserver
