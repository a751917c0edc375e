package envbadge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envbadge"
	"github.com/dmitrymomot/envbadge/pkg/dom/memdom"
	"github.com/dmitrymomot/envbadge/pkg/environment"
)

// badgeCount walks the body subtree counting elements with the given id.
func badgeCount(t *testing.T, w *memdom.Window, id string) int {
	t.Helper()

	body, ok := w.Document().Body()
	if !ok {
		return 0
	}

	var count func(el *memdom.Element) int
	count = func(el *memdom.Element) int {
		n := 0
		if el.ID() == id {
			n++
		}
		for _, c := range el.Children() {
			n += count(c)
		}
		return n
	}
	return count(body.(*memdom.Element))
}

func badgeElement(t *testing.T, w *memdom.Window) *memdom.Element {
	t.Helper()

	el, ok := w.Document().ElementByID(envbadge.DefaultElementID)
	require.True(t, ok, "expected badge element to be present")
	return el.(*memdom.Element)
}

func TestInitRendersBadge(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("staging.example.com"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
	badge.Init()

	el := badgeElement(t, w)
	assert.Equal(t, "STAGING", el.Text())
	assert.Equal(t, "#ff9800", el.Style("background-color"))
	assert.Equal(t, "fixed", el.Style("position"))
	assert.Equal(t, "0", el.Style("bottom"))
	assert.Equal(t, "0", el.Style("right"))
	assert.Equal(t, "6px 0 0 0", el.Style("border-radius"))
	assert.Equal(t, "12px", el.Style("font-size"))
	assert.Equal(t, "4px 8px", el.Style("padding"))

	// Accessibility surface.
	assert.Equal(t, "status", el.Attribute("role"))
	assert.Equal(t, "0", el.Attribute("tabindex"))
	assert.Equal(t, "Current environment: staging", el.Attribute("aria-label"))
}

func TestInitIsIdempotent(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

	badge.Init()
	badge.Init()

	assert.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID))
}

func TestDestroyRemovesEverything(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

	badge.Init()
	el := badgeElement(t, w)
	require.NotZero(t, el.ListenerCount())

	badge.Destroy()

	assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
	assert.Zero(t, el.ListenerCount(), "teardown must deregister every listener")
	assert.False(t, el.Attached())

	// Idempotent.
	badge.Destroy()
	assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
}

func TestDisabledIndicatorRendersNothing(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("app.example.com"))
	badge := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithEnabled(false),
	)
	badge.Init()

	assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
	// Resolution still works while rendering is off.
	assert.Equal(t, environment.Production, badge.CurrentEnvironment())
}

func TestDisablingRemovesExistingBadge(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

	badge.Init()
	require.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID))

	badge.UpdateConfig(envbadge.WithEnabled(false))
	assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
}

func TestNoWindowIsSilentNoOp(t *testing.T) {
	t.Parallel()

	badge := envbadge.New(envbadge.WithEnviron(map[string]string{}))

	assert.NotPanics(t, func() {
		badge.Init()
		badge.Destroy()
	})
}

func TestUpdateConfigRecreatesBadge(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

	badge.Init()
	before := badgeElement(t, w)
	require.Equal(t, "12px", before.Style("font-size"))

	badge.UpdateConfig(envbadge.WithSize(envbadge.SizeLarge))

	assert.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID), "old badge must be replaced, not duplicated")
	after := badgeElement(t, w)
	assert.Equal(t, "14px", after.Style("font-size"))
	assert.Equal(t, "6px 12px", after.Style("padding"))
	assert.False(t, before.Attached())
}

func TestUpdateConfigMergesOverExisting(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithLabel(environment.Development, "LOCAL"),
	)
	badge.Init()

	// Changing position keeps the earlier label customization.
	badge.UpdateConfig(envbadge.WithPosition(envbadge.TopLeft))

	el := badgeElement(t, w)
	assert.Equal(t, "LOCAL", el.Text())
	assert.Equal(t, "0", el.Style("top"))
	assert.Equal(t, "0", el.Style("left"))
	assert.Equal(t, "0 0 6px 0", el.Style("border-radius"))
}

func TestClickDismissesBadge(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
	badge.Init()

	badgeElement(t, w).Dispatch(memdom.NewEvent("click"))

	assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
}

func TestHoverFeedback(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
	badge.Init()

	el := badgeElement(t, w)
	require.Equal(t, "0.8", el.Style("opacity"))

	el.Dispatch(memdom.NewEvent("mouseenter"))
	assert.Equal(t, "1", el.Style("opacity"))
	assert.Equal(t, "scale(1.05)", el.Style("transform"))

	el.Dispatch(memdom.NewEvent("mouseleave"))
	assert.Equal(t, "0.8", el.Style("opacity"))
	assert.Equal(t, "scale(1)", el.Style("transform"))
}

func TestKeyboardDismissal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		dismissed bool
	}{
		{name: "enter dismisses", key: "Enter", dismissed: true},
		{name: "space dismisses", key: " ", dismissed: true},
		{name: "escape is ignored", key: "Escape", dismissed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := memdom.NewWindow(memdom.WithHostname("localhost"))
			badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
			badge.Init()

			ev := memdom.NewKeyEvent("keydown", tt.key)
			badgeElement(t, w).Dispatch(ev)

			if tt.dismissed {
				assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
				assert.True(t, ev.DefaultPrevented(), "default key action must be suppressed")
			} else {
				assert.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID))
				assert.False(t, ev.DefaultPrevented())
			}
		})
	}
}

func TestDeferredInsertion(t *testing.T) {
	t.Parallel()

	t.Run("badge attaches on the frame tick", func(t *testing.T) {
		t.Parallel()

		w := memdom.NewWindow(memdom.WithHostname("localhost"))
		w.DeferFrames()

		badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
		badge.Init()

		assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
		w.Flush()
		assert.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID))
	})

	t.Run("destroy cancels a pending frame", func(t *testing.T) {
		t.Parallel()

		w := memdom.NewWindow(memdom.WithHostname("localhost"))
		w.DeferFrames()

		badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
		badge.Init()
		badge.Destroy()
		w.Flush()

		assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
	})

	t.Run("missing body drops the badge quietly", func(t *testing.T) {
		t.Parallel()

		w := memdom.NewWindow(memdom.WithoutBody())
		badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))

		assert.NotPanics(t, badge.Init)
		assert.Equal(t, 0, badgeCount(t, w, envbadge.DefaultElementID))
	})
}

func TestUniqueElementIDs(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))

	a := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithUniqueElementID(),
	)
	b := envbadge.New(
		envbadge.WithWindow(w),
		envbadge.WithEnviron(map[string]string{}),
		envbadge.WithUniqueElementID(),
	)

	a.Init()
	b.Init()

	body, ok := w.Document().Body()
	require.True(t, ok)
	children := body.(*memdom.Element).Children()
	require.Len(t, children, 2, "independent instances must coexist")
	assert.NotEqual(t, children[0].ID(), children[1].ID())
	for _, c := range children {
		assert.True(t, strings.HasPrefix(c.ID(), "envbadge-"))
	}
}

func TestStaleElementWithSameIDIsReplaced(t *testing.T) {
	t.Parallel()

	w := memdom.NewWindow(memdom.WithHostname("localhost"))
	doc := w.Document()

	stale := doc.CreateElement("div")
	stale.SetID(envbadge.DefaultElementID)
	body, _ := doc.Body()
	body.AppendChild(stale)

	badge := envbadge.New(envbadge.WithWindow(w), envbadge.WithEnviron(map[string]string{}))
	badge.Init()

	assert.Equal(t, 1, badgeCount(t, w, envbadge.DefaultElementID))
	assert.Equal(t, "DEV", badgeElement(t, w).Text())
}
