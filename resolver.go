package envbadge

import (
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/envbadge/pkg/environment"
)

// bundlerSignals are the variables consulted by detection. Struct order
// matters nowhere; the priority order lives in resolve.
type bundlerSignals struct {
	ViteEnv       string `env:"VITE_ENV"`
	ReactAppEnv   string `env:"REACT_APP_ENV"`
	NextPublicEnv string `env:"NEXT_PUBLIC_ENV"`
	VueAppEnv     string `env:"VUE_APP_ENV"`
	NuxtEnv       string `env:"NUXT_ENV"`
	NodeEnv       string `env:"NODE_ENV"`
}

// resolve determines the current environment. It runs fresh on every call so
// late-bound variables are honored; nothing is cached.
//
// Priority, first match wins:
//  1. configured override, unconditionally
//  2. auto-detect disabled -> development
//  3. bundler-specific variables in fixed order
//  4. the generic NODE_ENV signal
//  5. hostname heuristics, defaulting to development
func resolve(cfg *config) environment.Environment {
	if cfg.override != "" {
		return cfg.override
	}
	if !cfg.autoDetect {
		return environment.Development
	}

	var sig bundlerSignals
	// A parse failure only means the signals are unreadable; detection then
	// falls through to the hostname.
	_ = env.ParseWithOptions(&sig, env.Options{Environment: cfg.environMap()})

	for _, v := range []string{sig.ViteEnv, sig.ReactAppEnv, sig.NextPublicEnv, sig.VueAppEnv, sig.NuxtEnv} {
		if e, ok := environment.Parse(v); ok {
			return e
		}
	}
	if e, ok := environment.Parse(sig.NodeEnv); ok {
		return e
	}

	return resolveHostname(cfg.hostname())
}

// devMarkers are the hostname fragments that rule out production.
var devMarkers = []string{"localhost", "127.0.0.1", "dev", "staging", "test"}

// resolveHostname classifies a hostname. Any non-empty hostname without a
// dev/staging/test marker counts as production; this is deliberately
// permissive and kept for behavior compatibility.
func resolveHostname(hostname string) environment.Environment {
	h := strings.ToLower(hostname)

	switch {
	case strings.Contains(h, "staging"), strings.Contains(h, "stage"):
		return environment.Staging
	case strings.Contains(h, "test"):
		return environment.Test
	case h != "" && !containsAny(h, devMarkers):
		return environment.Production
	default:
		return environment.Development
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
