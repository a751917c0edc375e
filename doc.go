// Package envbadge renders a fixed-position badge indicating the current
// runtime environment (development, production, staging or test), with
// auto-detection from host signals, configurable styling and keyboard
// accessible dismissal.
//
// The badge never talks to a browser directly: all rendering goes through
// the dom interfaces, so the component runs unchanged against a real page
// (pkg/dom/jsdom, js/wasm builds), an in-memory document (pkg/dom/memdom,
// tests and server-side rendering), or any other host surface.
//
// # Detection
//
// CurrentEnvironment resolves fresh on every call, first match wins:
//
//  1. a configured override (WithOverride), unconditionally
//  2. development, when auto-detect is disabled
//  3. bundler variables in fixed priority order: VITE_ENV, REACT_APP_ENV,
//     NEXT_PUBLIC_ENV, VUE_APP_ENV, NUXT_ENV
//  4. the generic NODE_ENV signal
//  5. hostname heuristics ("staging"/"stage" -> staging, "test" -> test,
//     any other non-local hostname -> production, else development)
//
// Variable values must match one of the four canonical environment names
// exactly; anything else falls through to the next signal.
//
// # Usage
//
//	w, ok := jsdom.Current()
//	if !ok {
//	    return // server-side render, nothing to do
//	}
//
//	badge := envbadge.New(
//	    envbadge.WithWindow(w),
//	    envbadge.WithPosition(envbadge.BottomRight),
//	    envbadge.WithSize(envbadge.SizeMedium),
//	)
//	badge.Init()
//	defer badge.Destroy()
//
// Configuration can also come from ENVBADGE_* variables and a .env file:
//
//	opts, err := envbadge.FromEnv()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	badge := envbadge.New(append(opts, envbadge.WithWindow(w))...)
//
// # Lifecycle
//
// An indicator owns zero or one badge element. Init tears down any previous
// element before re-creating, Destroy removes every registered listener and
// the element, and both are idempotent. UpdateConfig merges options over the
// existing configuration and re-initializes. Clicking the badge, or pressing
// Enter or Space while it holds focus, dismisses it.
//
// # Error Handling
//
// Init and Destroy never return errors. Host failures during either are
// recovered at the top level, reported on the debug logging channel when
// WithDebug is enabled, and leave the indicator absent. FromEnv, LoadTheme
// and LoadThemeFile return sentinel errors (ErrParsingConfig,
// ErrInvalidConfig, ErrInvalidTheme) inspectable with errors.Is.
package envbadge
