// Package environment defines the set of runtime environments recognized by
// envbadge (development, production, staging, test) and helpers to parse,
// validate and propagate the current environment through context.Context,
// HTTP requests and structured logs.
//
// The typed string Environment has predefined constants Development,
// Production, Staging and Test. Parse performs the exact-match validation the
// detection pipeline depends on: only the four canonical lowercase names are
// accepted, never aliases. The context predicates IsDevelopment, IsProduction
// and IsStaging additionally tolerate the common short aliases (dev, prod,
// stage) since context values may originate outside this module.
//
// # Usage
//
// Set the environment on an HTTP server:
//
//	mux := http.NewServeMux()
//	mux.Handle("/", handler)
//	envAwareMux := environment.Middleware(environment.Production)(mux)
//	http.ListenAndServe(":8080", envAwareMux)
//
// Retrieve the environment from a context:
//
//	env := environment.FromContext(ctx)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to a slog logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// # Error Handling
//
// All helpers are allocation-free and never return errors. Missing or
// unrecognized values result in the zero value ("") or a false second return.
package environment
