package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Env records an environment name under the key "env".
func Env(env string) slog.Attr {
	return slog.String("env", env)
}

// Hostname records the host name under the key "hostname".
func Hostname(name string) slog.Attr {
	return slog.String("hostname", name)
}

// ElementID records an element identifier under the key "element_id".
func ElementID(id string) slog.Attr {
	return slog.String("element_id", id)
}

// UserAgent records the host user agent under the key "user_agent".
func UserAgent(ua string) slog.Attr {
	return slog.String("user_agent", ua)
}
