package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for the logger that emits the
// current environment under the "env" key when one is set on the context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
