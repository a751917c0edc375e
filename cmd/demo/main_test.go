package main

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envbadge"
	"github.com/dmitrymomot/envbadge/pkg/logger"
)

// startupOptions mimics FromEnv output with spare capacity, so an unsafe
// shared append in a handler would reuse the same backing-array slot.
func startupOptions() []envbadge.Option {
	opts := make([]envbadge.Option, 0, 8)
	return append(opts,
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithSize(envbadge.SizeMedium),
		envbadge.WithPosition(envbadge.BottomRight),
	)
}

func TestDemoPagePerRequestIsolation(t *testing.T) {
	t.Parallel()

	handler := demoPage(startupOptions(), logger.Noop())

	hosts := map[string]string{
		"staging.example.com": "staging",
		"my-test-site.io":     "test",
		"app.example.com":     "production",
		"localhost":           "development",
	}

	var wg sync.WaitGroup
	for host, want := range hosts {
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				req := httptest.NewRequest("GET", "http://"+host+"/", nil)
				req.Host = host
				rec := httptest.NewRecorder()
				handler(rec, req)

				assert.Contains(t, rec.Body.String(), "<strong>"+want+"</strong>",
					"response for %s must reflect its own request's environment", host)
			}()
		}
	}
	wg.Wait()
}

func TestCurrentEnvironmentPerRequestIsolation(t *testing.T) {
	t.Parallel()

	handler := currentEnvironment(startupOptions())

	hosts := map[string]string{
		"staging.example.com": "staging",
		"app.example.com":     "production",
	}

	var wg sync.WaitGroup
	for host, want := range hosts {
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				req := httptest.NewRequest("GET", "http://"+host+"/api/environment", nil)
				req.Host = host
				rec := httptest.NewRecorder()
				handler(rec, req)

				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, want, body["environment"])
			}()
		}
	}
	wg.Wait()
}

func TestRequestHostname(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		want string
	}{
		{host: "app.example.com:8080", want: "app.example.com"},
		{host: "app.example.com", want: "app.example.com"},
		{host: "127.0.0.1:3000", want: "127.0.0.1"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "http://"+tt.host+"/", nil)
		req.Host = tt.host
		assert.Equal(t, tt.want, requestHostname(req))
	}
}
