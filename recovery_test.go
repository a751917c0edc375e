package envbadge_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/envbadge"
	"github.com/dmitrymomot/envbadge/pkg/dom"
	"github.com/dmitrymomot/envbadge/pkg/dom/memdom"
	"github.com/dmitrymomot/envbadge/pkg/environment"
	"github.com/dmitrymomot/envbadge/pkg/logger"
)

// faultyWindow delegates to memdom but panics on document access, modeling a
// host binding blowing up mid-initialization.
type faultyWindow struct {
	*memdom.Window
}

func (w *faultyWindow) Document() dom.Document {
	panic("host surface unavailable")
}

func TestInitRecoversFromHostFailure(t *testing.T) {
	t.Parallel()

	w := &faultyWindow{Window: memdom.NewWindow(memdom.WithHostname("localhost"))}
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

	assert.NotPanics(t, badge.Init)

	// The component is indistinguishable from absent: destroy is a clean
	// no-op and resolution still works.
	assert.NotPanics(t, badge.Destroy)
	assert.Equal(t, environment.Development, badge.CurrentEnvironment())
}

func TestRecoveredFailureIsLoggedInDebugMode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := &faultyWindow{Window: memdom.NewWindow()}
	badge := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithDebug(true),
		envbadge.WithLogger(logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithFormat(logger.FormatText),
		)),
	)

	badge.Init()

	assert.Contains(t, buf.String(), "recovered from host failure")
	assert.Contains(t, buf.String(), "host surface unavailable")
}

func TestNothingIsLoggedWithoutDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := &faultyWindow{Window: memdom.NewWindow()}
	badge := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithLogger(logger.New(
			logger.WithOutput(&buf),
			logger.WithLevel(slog.LevelDebug),
		)),
	)

	badge.Init()

	assert.Empty(t, buf.String())
}
